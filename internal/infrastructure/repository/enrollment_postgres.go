package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduverse/internal/domain"
)

type EnrollmentRecord struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	CourseID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"courseId"`
	EnrolledAt time.Time `json:"enrolledAt"`
	Progress   int       `gorm:"default:0" json:"progress"`
	Status     string    `gorm:"size:20;default:'active'" json:"status"`
}

func (EnrollmentRecord) TableName() string {
	return "enrollments"
}

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*EnrollmentRecord, error) {
	var existing EnrollmentRecord
	err := r.db.WithContext(ctx).
		First(&existing, "user_id = ? AND course_id = ?", userID, courseID).Error
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &EnrollmentRecord{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC(),
		Status:     "active",
	}
	if err := r.db.WithContext(ctx).Create(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]EnrollmentRecord, error) {
	var enrollments []EnrollmentRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("enrolled_at desc").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) Unenroll(ctx context.Context, userID, courseID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&EnrollmentRecord{}, "user_id = ? AND course_id = ?", userID, courseID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
