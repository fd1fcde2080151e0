package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"eduverse/internal/domain"
	"eduverse/internal/session"
)

type UserHandler struct {
	sessions *session.Store
}

func NewUserHandler(sessions *session.Store) *UserHandler {
	return &UserHandler{sessions: sessions}
}

// GET /api/v1/admin/users
func (h *UserHandler) List(c *gin.Context) {
	identities := h.sessions.ListAll()
	// Directory order is unspecified; present by numeric id.
	sort.Slice(identities, func(i, j int) bool {
		a, _ := strconv.Atoi(identities[i].ID)
		b, _ := strconv.Atoi(identities[j].ID)
		return a < b
	})
	c.JSON(http.StatusOK, identities)
}

type addUserReq struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
	Bio        string `json:"bio"`
}

// POST /api/v1/admin/users
func (h *UserHandler) Add(c *gin.Context) {
	var req addUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role := domain.Role(req.Role)
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	id := h.sessions.AddIdentity(c.Request.Context(), domain.NewIdentity{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Role:       role,
		Department: req.Department,
		Avatar:     req.Avatar,
		Bio:        req.Bio,
	})
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/v1/admin/users/:id/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := domain.Status(req.Status)
	if status != domain.StatusActive && status != domain.StatusInactive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	h.sessions.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	c.Status(http.StatusNoContent)
}

type departmentReq struct {
	Department string `json:"department" binding:"required"`
}

// PATCH /api/v1/admin/users/:id/department
func (h *UserHandler) UpdateDepartment(c *gin.Context) {
	var req departmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.sessions.UpdateDepartment(c.Request.Context(), c.Param("id"), req.Department)
	c.Status(http.StatusNoContent)
}

// DELETE /api/v1/admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	h.sessions.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GET /api/v1/admin/stats
func (h *UserHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.Stats())
}
