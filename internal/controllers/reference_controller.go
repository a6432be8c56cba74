package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safecity/backend/internal/stores"
)

type ReferenceController struct {
	references *stores.ReferenceStore
}

func NewReferenceController(references *stores.ReferenceStore) *ReferenceController {
	return &ReferenceController{references: references}
}

// GetRoles lists the seeded roles.
func (rc *ReferenceController) GetRoles(c *gin.Context) {
	roles, err := rc.references.Roles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch roles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": roles})
}

// GetCategories lists the seeded incident categories.
func (rc *ReferenceController) GetCategories(c *gin.Context) {
	categories, err := rc.references.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}
