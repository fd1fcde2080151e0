// Package repository is the administrative passthrough store behind the
// admin screens: plain one-to-one verb-to-query mappings over a managed
// database, no business logic.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduverse/internal/domain"
)

var ErrAlreadyExists = errors.New("record already exists")

type UserRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;size:100" json:"email"`
	FirstName string    `gorm:"size:50" json:"firstName"`
	LastName  string    `gorm:"size:50" json:"lastName"`
	Role      string    `gorm:"size:20;index" json:"role"`
	Status    string    `gorm:"size:20;default:'Active'" json:"status"`
	JoinDate  time.Time `json:"joinDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (UserRecord) TableName() string {
	return "users"
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *UserRecord) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.JoinDate.IsZero() {
		user.JoinDate = time.Now().UTC()
	}
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrAlreadyExists
		}
		return result.Error
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]UserRecord, error) {
	var users []UserRecord
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*UserRecord, error) {
	var user UserRecord
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *UserRecord) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&UserRecord{}, "id = ?", id).Error
}
