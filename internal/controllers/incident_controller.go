package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/safecity/backend/internal/logger"
	"github.com/safecity/backend/internal/middleware"
	"github.com/safecity/backend/internal/models"
	"github.com/safecity/backend/internal/stores"
)

type IncidentController struct {
	incidents     *stores.IncidentStore
	notifications *stores.NotificationStore
}

func NewIncidentController(incidents *stores.IncidentStore, notifications *stores.NotificationStore) *IncidentController {
	return &IncidentController{incidents: incidents, notifications: notifications}
}

type CreateIncidentRequest struct {
	Description *string `json:"description"`
	PhotoURL    *string `json:"photoUrl"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CategoryID  int64   `json:"categoryId"`
	Status      string  `json:"status"`
}

type UpdateIncidentRequest struct {
	Description *string `json:"description"`
	PhotoURL    *string `json:"photoUrl"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CategoryID  int64   `json:"categoryId"`
	Status      string  `json:"status"`
}

// GetIncidents lists incidents, optionally filtered by status, userId or
// categoryId. Filters are exclusive; the first one present wins.
func (ic *IncidentController) GetIncidents(c *gin.Context) {
	var (
		incidents []models.Incident
		err       error
	)

	switch {
	case c.Query("status") != "":
		incidents, err = ic.incidents.GetByStatus(models.IncidentStatus(c.Query("status")))
	case c.Query("userId") != "":
		var userID uint64
		if userID, err = strconv.ParseUint(c.Query("userId"), 10, 32); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid userId"})
			return
		}
		incidents, err = ic.incidents.GetByUser(uint(userID))
	case c.Query("categoryId") != "":
		var categoryID uint64
		if categoryID, err = strconv.ParseUint(c.Query("categoryId"), 10, 32); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid categoryId"})
			return
		}
		incidents, err = ic.incidents.GetByCategory(uint(categoryID))
	default:
		incidents, err = ic.incidents.GetAll()
	}

	if err != nil {
		logger.WithError(err, "incident_controller").Error("Failed to fetch incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch incidents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": incidents})
}

// GetNearby lists incidents within radius kilometers of a point.
func (ic *IncidentController) GetNearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	radius, errRadius := strconv.ParseFloat(c.DefaultQuery("radius", "5"), 64)
	if errLat != nil || errLon != nil || errRadius != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "lat, lon and a positive radius are required"})
		return
	}

	incidents, err := ic.incidents.Nearby(lat, lon, radius)
	if err != nil {
		logger.WithError(err, "incident_controller").Error("Proximity search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch incidents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": incidents})
}

// GetIncident returns a single incident by id.
func (ic *IncidentController) GetIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	incident, err := ic.incidents.GetByID(id)
	if err != nil {
		if errors.Is(err, stores.ErrIncidentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Incident not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch incident"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": incident})
}

// CreateIncident stores a new report for the authenticated user.
func (ic *IncidentController) CreateIncident(c *gin.Context) {
	var req CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	incident := models.Incident{
		UserID:      middleware.CurrentUserID(c),
		CategoryID:  models.NormalizeCategoryID(req.CategoryID),
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      models.IncidentStatus(req.Status),
	}

	if err := ic.incidents.Create(&incident); err != nil {
		logger.WithError(err, "incident_controller").Error("Failed to create incident")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create incident"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": incident})
}

// UpdateIncident overwrites an incident's mutable fields. Owners may edit
// their reports; authorities and admins may additionally move the status.
func (ic *IncidentController) UpdateIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	existing, err := ic.incidents.GetByID(id)
	if err != nil {
		if errors.Is(err, stores.ErrIncidentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Incident not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch incident"})
		return
	}

	userID := middleware.CurrentUserID(c)
	role := c.GetString("user_role")
	isOwner := existing.UserID == userID
	isAuthority := role == models.RoleAuthority || role == models.RoleAdmin
	if !isOwner && !isAuthority {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not allowed to update this incident"})
		return
	}

	incident := models.Incident{
		ID:          id,
		CategoryID:  models.NormalizeCategoryID(req.CategoryID),
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      models.IncidentStatus(req.Status),
	}
	// Only authorities move incidents through the status taxonomy.
	if !isAuthority {
		incident.Status = existing.Status
	}

	affected, err := ic.incidents.Update(&incident)
	if err != nil {
		logger.WithError(err, "incident_controller").Error("Failed to update incident")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update incident"})
		return
	}

	if isAuthority && !isOwner && incident.Status.Valid() && incident.Status != existing.Status {
		ic.notifyStatusChange(existing, incident.Status)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "affected": affected})
}

// DeleteIncident removes a report. Owners delete their own; admins any.
func (ic *IncidentController) DeleteIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existing, err := ic.incidents.GetByID(id)
	if err != nil {
		if errors.Is(err, stores.ErrIncidentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Incident not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch incident"})
		return
	}

	userID := middleware.CurrentUserID(c)
	if existing.UserID != userID && c.GetString("user_role") != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not allowed to delete this incident"})
		return
	}

	affected, err := ic.incidents.Delete(id)
	if err != nil {
		logger.WithError(err, "incident_controller").Error("Failed to delete incident")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete incident"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "affected": affected})
}

// notifyStatusChange tells the report's owner that an authority moved the
// status. A failed notification is logged, never surfaced: the status
// update already committed.
func (ic *IncidentController) notifyStatusChange(incident *models.Incident, status models.IncidentStatus) {
	ownerID := incident.UserID
	incidentID := incident.ID
	notification := models.Notification{
		UserID:     &ownerID,
		IncidentID: &incidentID,
		Title:      "Statut mis à jour",
		Message:    fmt.Sprintf("Votre signalement n°%d est passé au statut « %s »", incident.ID, status),
	}
	if err := ic.notifications.Create(&notification); err != nil {
		logger.WithError(err, "incident_controller").Warn("Failed to create status notification")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
