package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eduverse/internal/domain"
	"eduverse/internal/infrastructure/repository"
	"eduverse/internal/pkg/logger"
)

// RegistryHandler exposes the administrative passthrough store: each route
// is a direct verb-to-repository call with no extra logic, the way the admin
// screens' service layer expects.
type RegistryHandler struct {
	users       *repository.UserRepository
	courses     *repository.CourseRepository
	enrollments *repository.EnrollmentRepository
	log         *logger.Logger
}

func NewRegistryHandler(
	users *repository.UserRepository,
	courses *repository.CourseRepository,
	enrollments *repository.EnrollmentRepository,
	log *logger.Logger,
) *RegistryHandler {
	return &RegistryHandler{users: users, courses: courses, enrollments: enrollments, log: log}
}

// GET /api/v1/admin/registry/users
func (h *RegistryHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// POST /api/v1/admin/registry/users
func (h *RegistryHandler) CreateUser(c *gin.Context) {
	var user repository.UserRecord
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user with this email already exists"})
			return
		}
		h.internalError(c, "create user", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GET /api/v1/admin/registry/users/:id
func (h *RegistryHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.internalError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /api/v1/admin/registry/users/:id
func (h *RegistryHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.internalError(c, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/v1/admin/registry/courses
func (h *RegistryHandler) ListCourses(c *gin.Context) {
	limit := 20
	offset := 0
	courses, total, err := h.courses.List(c.Request.Context(), c.Query("search"), c.Query("category"), limit, offset)
	if err != nil {
		h.internalError(c, "list courses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses, "total": total})
}

// POST /api/v1/admin/registry/courses
func (h *RegistryHandler) CreateCourse(c *gin.Context) {
	var course repository.CourseRecord
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.courses.Create(c.Request.Context(), &course); err != nil {
		h.internalError(c, "create course", err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// PUT /api/v1/admin/registry/courses/:id
func (h *RegistryHandler) UpdateCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if _, err := h.courses.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		h.internalError(c, "get course", err)
		return
	}

	var course repository.CourseRecord
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course.ID = id

	if err := h.courses.Update(c.Request.Context(), &course); err != nil {
		h.internalError(c, "update course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// DELETE /api/v1/admin/registry/courses/:id
func (h *RegistryHandler) DeleteCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		h.internalError(c, "delete course", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type enrollReq struct {
	UserID   string `json:"userId" binding:"required"`
	CourseID string `json:"courseId" binding:"required"`
}

// POST /api/v1/admin/registry/enrollments
func (h *RegistryHandler) Enroll(c *gin.Context) {
	var req enrollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid courseId"})
		return
	}

	enrollment, err := h.enrollments.Enroll(c.Request.Context(), userID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already enrolled in this course"})
			return
		}
		h.internalError(c, "enroll", err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

// GET /api/v1/admin/registry/enrollments/:userId
func (h *RegistryHandler) ListEnrollments(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	enrollments, err := h.enrollments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, "list enrollments", err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

// DELETE /api/v1/admin/registry/enrollments/:userId/:courseId
func (h *RegistryHandler) Unenroll(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid courseId"})
		return
	}

	if err := h.enrollments.Unenroll(c.Request.Context(), userID, courseID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
			return
		}
		h.internalError(c, "unenroll", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *RegistryHandler) internalError(c *gin.Context, op string, err error) {
	h.log.Error("registry "+op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
