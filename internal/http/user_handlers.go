package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/simpbb/internal/http/middleware"
	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	result, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "login berhasil", gin.H{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"user":       userBody(result.User),
	})
}

func (h *Handler) me(c *gin.Context) {
	user, found := middleware.MustUser(c)
	if !found {
		fail(c, http.StatusUnauthorized, "token tidak ditemukan")
		return
	}
	ok(c, "data pengguna ditemukan", userBody(user))
}

func (h *Handler) listUsers(c *gin.Context) {
	page, limit := pageParams(c)
	users, total, err := h.users.List(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	paginated(c, "data pengguna ditemukan", userBodies(users), total, page, limit)
}

func (h *Handler) getUser(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data pengguna ditemukan", userBody(user))
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	user, err := h.users.Create(c.Request.Context(), service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "pengguna berhasil dibuat", userBody(user))
}

type updateUserRequest struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	FullName   *string `json:"full_name"`
	Role       *string `json:"role"`
	IsActive   *bool   `json:"is_active"`
	IsVerified *bool   `json:"is_verified"`
}

func (r updateUserRequest) toInput() service.UpdateUserInput {
	input := service.UpdateUserInput{
		Email:      r.Email,
		Password:   r.Password,
		FullName:   r.FullName,
		IsActive:   r.IsActive,
		IsVerified: r.IsVerified,
	}
	if r.Role != nil {
		role := model.Role(*r.Role)
		input.Role = &role
	}
	return input
}

func (h *Handler) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	user, err := h.users.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "pengguna berhasil diperbarui", userBody(user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "pengguna berhasil dihapus", nil)
}

func (h *Handler) getProfile(c *gin.Context) {
	user, found := middleware.MustUser(c)
	if !found {
		fail(c, http.StatusUnauthorized, "token tidak ditemukan")
		return
	}
	ok(c, "data pengguna ditemukan", userBody(user))
}

func (h *Handler) updateProfile(c *gin.Context) {
	user, found := middleware.MustUser(c)
	if !found {
		fail(c, http.StatusUnauthorized, "token tidak ditemukan")
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	updated, err := h.users.UpdateProfile(c.Request.Context(), user.ID, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "profil berhasil diperbarui", userBody(updated))
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	user, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "pendaftaran berhasil, kode verifikasi telah dikirim ke email", userBody(user))
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (h *Handler) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	user, err := h.users.Verify(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "akun berhasil diverifikasi", userBody(user))
}
