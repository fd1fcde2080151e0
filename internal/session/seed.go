package session

import (
	"time"

	"eduverse/internal/domain"
)

// seedAccounts builds the demo directory used on first run, one admin, five
// teachers and one student with fixed credentials.
func seedAccounts() map[string]domain.Account {
	today := time.Now().Format("2006-01-02")

	return map[string]domain.Account{
		"admin@eduverse.com": {
			Password: "admin123",
			Identity: domain.Identity{
				ID:       "1",
				Name:     "Admin User",
				Email:    "admin@eduverse.com",
				Role:     domain.RoleAdmin,
				Status:   domain.StatusActive,
				JoinDate: today,
				Avatar:   "https://ui-avatars.com/api/?name=Admin+User&background=0D8ABC&color=fff",
			},
		},
		"sarah.johnson@eduverse.com": {
			Password: "teacher123",
			Identity: domain.Identity{
				ID:           "2",
				Name:         "Dr. Sarah Johnson",
				Email:        "sarah.johnson@eduverse.com",
				Role:         domain.RoleTeacher,
				Status:       domain.StatusActive,
				Department:   "Computer Science",
				CoursesCount: 3,
				JoinDate:     "2024-09-15",
				Avatar:       "https://ui-avatars.com/api/?name=Sarah+Johnson&background=2F855A&color=fff",
			},
		},
		"james.wilson@eduverse.com": {
			Password: "teacher123",
			Identity: domain.Identity{
				ID:           "3",
				Name:         "Prof. James Wilson",
				Email:        "james.wilson@eduverse.com",
				Role:         domain.RoleTeacher,
				Status:       domain.StatusActive,
				Department:   "Mathematics",
				CoursesCount: 2,
				JoinDate:     "2024-10-10",
				Avatar:       "https://ui-avatars.com/api/?name=James+Wilson&background=4F46E5&color=fff",
			},
		},
		"michael.brown@eduverse.com": {
			Password: "teacher123",
			Identity: domain.Identity{
				ID:           "4",
				Name:         "Dr. Michael Brown",
				Email:        "michael.brown@eduverse.com",
				Role:         domain.RoleTeacher,
				Status:       domain.StatusActive,
				Department:   "Computer Science",
				CoursesCount: 4,
				JoinDate:     "2024-11-05",
				Avatar:       "https://ui-avatars.com/api/?name=Michael+Brown&background=9333EA&color=fff",
			},
		},
		"emily.chen@eduverse.com": {
			Password: "teacher123",
			Identity: domain.Identity{
				ID:           "5",
				Name:         "Prof. Emily Chen",
				Email:        "emily.chen@eduverse.com",
				Role:         domain.RoleTeacher,
				Status:       domain.StatusActive,
				Department:   "Design",
				CoursesCount: 2,
				JoinDate:     "2025-01-20",
				Avatar:       "https://ui-avatars.com/api/?name=Emily+Chen&background=EC4899&color=fff",
			},
		},
		"robert.davis@eduverse.com": {
			Password: "teacher123",
			Identity: domain.Identity{
				ID:           "6",
				Name:         "Dr. Robert Davis",
				Email:        "robert.davis@eduverse.com",
				Role:         domain.RoleTeacher,
				Status:       domain.StatusInactive,
				Department:   "Engineering",
				CoursesCount: 3,
				JoinDate:     "2025-02-10",
				Avatar:       "https://ui-avatars.com/api/?name=Robert+Davis&background=D97706&color=fff",
			},
		},
		"student@eduverse.com": {
			Password: "student123",
			Identity: domain.Identity{
				ID:       "7",
				Name:     "Student User",
				Email:    "student@eduverse.com",
				Role:     domain.RoleStudent,
				Status:   domain.StatusActive,
				JoinDate: today,
				Avatar:   "https://ui-avatars.com/api/?name=Student+User&background=6B46C1&color=fff",
			},
		},
	}
}
