package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrSignupRejected         = errors.New("signup rejected")
	ErrNoSession              = errors.New("no active session")
	ErrNotFound               = errors.New("not found")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Identity is the public projection of one platform account. It never
// carries the credential; that lives only on the directory Account.
type Identity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Status       Status `json:"status"`
	Department   string `json:"department,omitempty"`
	CoursesCount int    `json:"coursesCount,omitempty"`
	JoinDate     string `json:"joinDate"`
	Avatar       string `json:"avatar,omitempty"`
	Bio          string `json:"bio,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
}

// Account is a directory entry: the identity plus its plaintext credential.
// The snapshot field names match the persisted directory format.
type Account struct {
	Password string   `json:"password"`
	Identity Identity `json:"userInfo"`
}

// NewIdentity carries the fields of an administrative "add identity" request.
type NewIdentity struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
	Bio        string `json:"bio"`
}

func (ni NewIdentity) FullName() string {
	return strings.TrimSpace(ni.FirstName + " " + ni.LastName)
}

// PlatformStats is the read-side aggregation over the directory.
type PlatformStats struct {
	TotalStudents int    `json:"totalStudents"`
	TotalTeachers int    `json:"totalTeachers"`
	TotalCourses  int    `json:"totalCourses"`
	TotalRevenue  string `json:"totalRevenue"`
}
