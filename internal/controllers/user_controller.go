package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safecity/backend/internal/middleware"
	"github.com/safecity/backend/internal/stores"
)

type UserController struct {
	users *stores.UserStore
}

func NewUserController(users *stores.UserStore) *UserController {
	return &UserController{users: users}
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetCurrentUser returns the authenticated user's profile.
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, err := uc.users.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, stores.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// UpdateCurrentUser renames the authenticated user.
func (uc *UserController) UpdateCurrentUser(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	user, err := uc.users.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
		return
	}

	user.Name = req.Name
	if _, err := uc.users.Update(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// GetUsers lists every account. Admin only.
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.users.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
		return
	}

	for i := range users {
		users[i].Password = ""
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}
