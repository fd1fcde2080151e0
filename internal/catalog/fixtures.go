package catalog

import "eduverse/internal/domain"

// fixtureCourse is the authoring-time shape of the built-in offerings. The
// numeric EnrolledStudents counter predates per-identity enrollment tracking
// and becomes Course.TotalEnrolled at seed time.
type fixtureCourse struct {
	ID               string
	Title            string
	Description      string
	Instructor       string
	Duration         string
	Level            domain.Level
	Category         string
	Price            float64
	IsPublished      bool
	Thumbnail        string
	EnrolledStudents int
	Rating           float64
	Modules          []domain.Module
}

// seedCourses maps the fixtures into the runtime shape.
func seedCourses() []domain.Course {
	courses := make([]domain.Course, 0, len(fixtures))
	for _, f := range fixtures {
		status := domain.StatusInactive
		if f.IsPublished {
			status = domain.StatusActive
		}
		modules := f.Modules
		if modules == nil {
			modules = []domain.Module{}
		}
		courses = append(courses, domain.Course{
			ID:               f.ID,
			Title:            f.Title,
			Description:      f.Description,
			Instructor:       f.Instructor,
			Duration:         f.Duration,
			Level:            f.Level,
			Category:         f.Category,
			Price:            f.Price,
			IsPublished:      f.IsPublished,
			Thumbnail:        f.Thumbnail,
			Image:            f.Thumbnail,
			Rating:           f.Rating,
			Status:           status,
			EnrolledStudents: []string{},
			TotalEnrolled:    f.EnrolledStudents,
			Modules:          modules,
		})
	}
	return courses
}

var fixtures = []fixtureCourse{
	{
		ID:               "1",
		Title:            "Introduction to Web Development",
		Description:      "Learn the fundamentals of web development including HTML, CSS, and JavaScript.",
		Instructor:       "Teacher User",
		Duration:         "8 weeks",
		Level:            domain.LevelBeginner,
		Category:         "Web Development",
		Price:            49.99,
		IsPublished:      true,
		Thumbnail:        "https://images.unsplash.com/photo-1593720213428-28a5b9e94613?auto=format&fit=crop&w=500&q=60",
		EnrolledStudents: 120,
		Rating:           4.8,
		Modules: []domain.Module{
			{
				ID:          "1-1",
				Title:       "HTML Basics",
				Content:     "This module covers the basic structure of HTML documents, tags, attributes, and semantic HTML.",
				Duration:    "1 week",
				IsCompleted: true,
			},
			{
				ID:       "1-2",
				Title:    "CSS Fundamentals",
				Content:  "Learn how to style web pages using CSS, including selectors, properties, and responsive design.",
				Duration: "2 weeks",
			},
			{
				ID:       "1-3",
				Title:    "JavaScript Essentials",
				Content:  "Introduction to JavaScript programming, including variables, functions, and DOM manipulation.",
				Duration: "3 weeks",
			},
			{
				ID:       "1-4",
				Title:    "Building Your First Website",
				Content:  "Combine your HTML, CSS, and JavaScript skills to build a complete website from scratch.",
				Duration: "2 weeks",
			},
		},
	},
	{
		ID:               "2",
		Title:            "Data Science Fundamentals",
		Description:      "An introduction to data science concepts, tools, and methodologies.",
		Instructor:       "Teacher User",
		Duration:         "10 weeks",
		Level:            domain.LevelIntermediate,
		Category:         "Data Science",
		Price:            59.99,
		IsPublished:      true,
		Thumbnail:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=500&q=60",
		EnrolledStudents: 85,
		Rating:           4.6,
		Modules: []domain.Module{
			{
				ID:       "2-1",
				Title:    "Introduction to Python",
				Content:  "Learn the basics of Python programming language, essential for data science.",
				Duration: "2 weeks",
			},
			{
				ID:       "2-2",
				Title:    "Data Analysis with Pandas",
				Content:  "Explore data manipulation and analysis using the Pandas library.",
				Duration: "3 weeks",
			},
			{
				ID:       "2-3",
				Title:    "Data Visualization",
				Content:  "Learn to create meaningful visualizations using Matplotlib and Seaborn.",
				Duration: "2 weeks",
			},
			{
				ID:       "2-4",
				Title:    "Introduction to Machine Learning",
				Content:  "Understand the basics of machine learning algorithms and their applications.",
				Duration: "3 weeks",
			},
		},
	},
	{
		ID:               "3",
		Title:            "Mobile App Development with React Native",
		Description:      "Build cross-platform mobile applications using React Native framework.",
		Instructor:       "Teacher User",
		Duration:         "12 weeks",
		Level:            domain.LevelAdvanced,
		Category:         "Mobile Development",
		Price:            69.99,
		IsPublished:      false,
		Thumbnail:        "https://images.unsplash.com/photo-1581276879432-15e50529f34b?auto=format&fit=crop&w=500&q=60",
		EnrolledStudents: 65,
		Rating:           4.9,
		Modules: []domain.Module{
			{
				ID:       "3-1",
				Title:    "React Fundamentals",
				Content:  "Understanding React concepts and JSX syntax.",
				Duration: "2 weeks",
			},
			{
				ID:       "3-2",
				Title:    "React Native Basics",
				Content:  "Introduction to React Native components and styling.",
				Duration: "3 weeks",
			},
			{
				ID:       "3-3",
				Title:    "Navigation and State Management",
				Content:  "Implementing navigation between screens and managing application state.",
				Duration: "3 weeks",
			},
			{
				ID:       "3-4",
				Title:    "Building and Deploying Apps",
				Content:  "Learn to build and deploy your application to app stores.",
				Duration: "4 weeks",
			},
		},
	},
}
