package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"eduverse/internal/domain"
)

// testDB connects to the database named by TEST_POSTGRES_DSN and migrates the
// schema. Tests are skipped when the variable is unset so the suite runs
// without a database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.AutoMigrate(&UserRecord{}, &CourseRecord{}, &EnrollmentRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM enrollments")
		db.Exec("DELETE FROM courses")
		db.Exec("DELETE FROM users")
	})
	return db
}

func seedUser(t *testing.T, repo *UserRepository, email string) *UserRecord {
	t.Helper()
	user := &UserRecord{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Role:      "student",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCourse(t *testing.T, repo *CourseRepository, title, category string) *CourseRecord {
	t.Helper()
	course := &CourseRecord{
		Title:      title,
		Instructor: "Dr. Sarah Johnson",
		Category:   category,
		Level:      "Beginner",
		Price:      49.99,
	}
	if err := repo.Create(context.Background(), course); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func TestUserRepository(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := seedUser(t, repo, "repo-user@example.com")
	if created.ID == uuid.Nil {
		t.Fatal("id not assigned on create")
	}
	if created.JoinDate.IsZero() {
		t.Fatal("join date not defaulted")
	}

	if err := repo.Create(ctx, &UserRecord{Email: "repo-user@example.com"}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("duplicate email err = %v, want ErrAlreadyExists", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "repo-user@example.com" {
		t.Fatalf("got = %+v", got)
	}

	got.Status = "Inactive"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, _ := repo.GetByID(ctx, created.ID)
	if again.Status != "Inactive" {
		t.Fatalf("status = %s after update", again.Status)
	}

	users, err := repo.List(ctx)
	if err != nil || len(users) != 1 {
		t.Fatalf("List = %d users, %v", len(users), err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID after delete err = %v, want ErrNotFound", err)
	}
}

func TestCourseRepositoryListFilters(t *testing.T) {
	db := testDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedCourse(t, repo, fmt.Sprintf("Go Course %d", i), "programming")
	}
	seedCourse(t, repo, "Watercolor Basics", "art")

	all, total, err := repo.List(ctx, "", "", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 4 || len(all) != 4 {
		t.Fatalf("List = %d/%d, want 4/4", len(all), total)
	}

	_, total, err = repo.List(ctx, "", "programming", 10, 0)
	if err != nil || total != 3 {
		t.Fatalf("category filter total = %d, %v", total, err)
	}

	_, total, err = repo.List(ctx, "watercolor", "", 10, 0)
	if err != nil || total != 1 {
		t.Fatalf("search total = %d, %v", total, err)
	}

	page, total, err := repo.List(ctx, "", "", 2, 2)
	if err != nil || total != 4 || len(page) != 2 {
		t.Fatalf("page = %d of %d, %v", len(page), total, err)
	}
}

func TestEnrollmentRepository(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	courses := NewCourseRepository(db)
	enrollments := NewEnrollmentRepository(db)
	ctx := context.Background()

	user := seedUser(t, users, "enroll@example.com")
	course := seedCourse(t, courses, "Enrollment Course", "programming")

	record, err := enrollments.Enroll(ctx, user.ID, course.ID)
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if record.Status == "" || record.EnrolledAt.After(time.Now().Add(time.Minute)) {
		t.Fatalf("record = %+v", record)
	}

	if _, err := enrollments.Enroll(ctx, user.ID, course.ID); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("duplicate enroll err = %v, want ErrAlreadyExists", err)
	}

	list, err := enrollments.ListByUser(ctx, user.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListByUser = %d, %v", len(list), err)
	}

	if err := enrollments.Unenroll(ctx, user.ID, course.ID); err != nil {
		t.Fatalf("Unenroll: %v", err)
	}
	if err := enrollments.Unenroll(ctx, user.ID, course.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second unenroll err = %v, want ErrNotFound", err)
	}
}
