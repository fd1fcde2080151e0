package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eduverse/internal/catalog"
	"eduverse/internal/domain"
	"eduverse/internal/session"
)

type CourseHandler struct {
	courses  *catalog.Store
	sessions *session.Store
}

func NewCourseHandler(courses *catalog.Store, sessions *session.Store) *CourseHandler {
	return &CourseHandler{courses: courses, sessions: sessions}
}

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.courses.List())
}

// GET /api/v1/courses/:id
func (h *CourseHandler) GetOne(c *gin.Context) {
	course, ok := h.courses.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

type createCourseReq struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Instructor  string          `json:"instructor"`
	Duration    string          `json:"duration"`
	Level       domain.Level    `json:"level" binding:"required"`
	Category    string          `json:"category"`
	Price       float64         `json:"price"`
	IsPublished bool            `json:"isPublished"`
	Thumbnail   string          `json:"thumbnail"`
	Modules     []domain.Module `json:"modules"`
}

// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.New().String()

	modules := req.Modules
	if modules == nil {
		modules = []domain.Module{}
	}
	for i := range modules {
		if modules[i].ID == "" {
			modules[i].ID = id + "-" + strconv.Itoa(i+1)
		}
	}

	status := domain.StatusInactive
	if req.IsPublished {
		status = domain.StatusActive
	}

	course := domain.Course{
		ID:               id,
		Title:            req.Title,
		Description:      req.Description,
		Instructor:       req.Instructor,
		Duration:         req.Duration,
		Level:            req.Level,
		Category:         req.Category,
		Price:            req.Price,
		IsPublished:      req.IsPublished,
		Thumbnail:        req.Thumbnail,
		Image:            req.Thumbnail,
		Status:           status,
		EnrolledStudents: []string{},
		Modules:          modules,
	}

	h.courses.Add(c.Request.Context(), course)
	c.JSON(http.StatusCreated, course)
}

// PUT /api/v1/courses/:id
//
// Full replace: the caller sends the complete course, merged beforehand.
func (h *CourseHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.courses.GetByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	var course domain.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course.ID = id

	h.courses.Update(c.Request.Context(), id, course)
	c.JSON(http.StatusOK, course)
}

// DELETE /api/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	h.courses.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/v1/courses/:id/enroll
func (h *CourseHandler) Enroll(c *gin.Context) {
	identity, ok := h.sessions.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	id := c.Param("id")
	if _, found := h.courses.GetByID(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	h.courses.Enroll(c.Request.Context(), id, identity.ID)
	course, _ := h.courses.GetByID(id)
	c.JSON(http.StatusOK, course)
}

// POST /api/v1/courses/:id/unenroll
func (h *CourseHandler) Unenroll(c *gin.Context) {
	identity, ok := h.sessions.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	id := c.Param("id")
	if _, found := h.courses.GetByID(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	h.courses.Unenroll(c.Request.Context(), id, identity.ID)
	course, _ := h.courses.GetByID(id)
	c.JSON(http.StatusOK, course)
}

// GET /api/v1/student/courses
//
// Courses the signed-in identity is enrolled in.
func (h *CourseHandler) EnrolledCourses(c *gin.Context) {
	identity, ok := h.sessions.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	enrolled := make([]domain.Course, 0)
	for _, course := range h.courses.List() {
		if course.IsEnrolled(identity.ID) {
			enrolled = append(enrolled, course)
		}
	}
	c.JSON(http.StatusOK, enrolled)
}

// GET /api/v1/teacher/courses
//
// Courses whose instructor name matches the signed-in identity. Instructor
// is free text, not a foreign key.
func (h *CourseHandler) TeachingCourses(c *gin.Context) {
	identity, ok := h.sessions.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	teaching := make([]domain.Course, 0)
	for _, course := range h.courses.List() {
		if course.Instructor == identity.Name {
			teaching = append(teaching, course)
		}
	}
	c.JSON(http.StatusOK, teaching)
}
