package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduverse/internal/domain"
)

type CourseRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"index;not null" json:"title"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	Duration    string    `json:"duration"`
	Level       string    `gorm:"size:20" json:"level"`
	Category    string    `gorm:"index" json:"category"`
	Thumbnail   string    `json:"thumbnail"`
	Price       float64   `json:"price"`
	Published   bool      `gorm:"default:false" json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (CourseRecord) TableName() string {
	return "courses"
}

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *CourseRecord) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *CourseRepository) List(ctx context.Context, search, category string, limit, offset int) ([]CourseRecord, int64, error) {
	var courses []CourseRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&CourseRecord{})
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Limit(limit).Offset(offset).Order("created_at desc").Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*CourseRecord, error) {
	var course CourseRecord
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// Update performs a full replace of the row, matching the put-item semantics
// the admin screens expect.
func (r *CourseRepository) Update(ctx context.Context, course *CourseRecord) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&CourseRecord{}, "id = ?", id).Error
}
