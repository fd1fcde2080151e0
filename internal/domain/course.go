package domain

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Module is a lesson unit owned by exactly one course. It has no existence
// outside its owning course.
type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Duration    string `json:"duration"`
	IsCompleted bool   `json:"isCompleted"`
}

// Course is one learning offering. EnrolledStudents is the live set of
// enrolled identity ids; TotalEnrolled is the aggregate counter carried over
// from fixture data and kept separate from the set.
type Course struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Instructor       string   `json:"instructor"`
	Duration         string   `json:"duration"`
	Level            Level    `json:"level"`
	Category         string   `json:"category,omitempty"`
	Price            float64  `json:"price,omitempty"`
	IsPublished      bool     `json:"isPublished"`
	Thumbnail        string   `json:"thumbnail"`
	Image            string   `json:"image"`
	Rating           float64  `json:"rating"`
	Status           Status   `json:"status"`
	EnrolledStudents []string `json:"enrolledStudents"`
	TotalEnrolled    int      `json:"totalEnrolled"`
	Modules          []Module `json:"modules"`
}

func (c *Course) IsEnrolled(identityID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == identityID {
			return true
		}
	}
	return false
}
