package handler

import (
	"net/http"
	"strings"

	"github.com/ME-Tii/customer-list/internal/middleware"
	"github.com/ME-Tii/customer-list/internal/models"
	"github.com/ME-Tii/customer-list/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler exposes account views and admin operations.
type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

func userView(u *models.User) gin.H {
	return gin.H{
		"username":      u.Username,
		"email":         u.Email,
		"role":          u.Role,
		"accessGranted": u.AccessGranted,
		"lastSeen":      u.LastSeen,
		"created_at":    u.CreatedAt,
	}
}

// Me returns the current account.
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}
	util.Success(c, util.Response{"user": userView(user)})
}

// List returns every account, without credentials.
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.DB.Order("username ASC").Find(&users).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "list users failed")
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userView(&users[i]))
	}
	util.Success(c, util.Response{"users": out})
}

type accessReq struct {
	Username      string `json:"username" binding:"required"`
	AccessGranted bool   `json:"accessGranted"`
}

// UpdateAccess grants or revokes the verified-area flag.
func (h *UserHandler) UpdateAccess(c *gin.Context) {
	var req accessReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username required")
		return
	}

	res := h.DB.Model(&models.User{}).
		Where("username = ?", strings.TrimSpace(req.Username)).
		Update("access_granted", req.AccessGranted)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update user failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		return
	}

	verb := "revoked"
	if req.AccessGranted {
		verb = "granted"
	}
	util.Success(c, util.Response{
		"message": "Access " + verb + " for " + req.Username,
	})
}

type deleteUserReq struct {
	Username string `json:"username" binding:"required"`
}

// Delete removes an account.
func (h *UserHandler) Delete(c *gin.Context) {
	var req deleteUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username required")
		return
	}

	res := h.DB.Where("username = ?", strings.TrimSpace(req.Username)).
		Delete(&models.User{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete user failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		return
	}

	util.Success(c, util.Response{
		"message": "User " + req.Username + " deleted successfully",
	})
}
