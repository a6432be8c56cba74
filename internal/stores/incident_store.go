package stores

import (
	"errors"

	"github.com/safecity/backend/internal/geo"
	"github.com/safecity/backend/internal/logger"
	"github.com/safecity/backend/internal/models"
	"gorm.io/gorm"
)

var ErrIncidentNotFound = errors.New("incident not found")

// IncidentStore owns every read and write against the incidents table.
// Writes run in their own transaction; reads come back newest first.
type IncidentStore struct {
	db *gorm.DB
}

func NewIncidentStore(db *gorm.DB) *IncidentStore {
	return &IncidentStore{db: db}
}

// Create inserts a new incident. An absent or invalid status is replaced
// with "Nouveau" on the incident itself before the write; a category id
// that is not a positive reference stores NULL.
func (s *IncidentStore) Create(incident *models.Incident) error {
	if !incident.Status.Valid() {
		if incident.Status != "" {
			logger.WithStore("incident_store").WithField("status", incident.Status).
				Warn("Invalid incident status, defaulting to Nouveau")
		}
		incident.Status = models.StatusNew
	}
	incident.CategoryID = normalizeCategory(incident.CategoryID)

	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(incident).Error
	})
}

// GetByID returns the incident with the given id, or ErrIncidentNotFound.
func (s *IncidentStore) GetByID(id uint) (*models.Incident, error) {
	var incident models.Incident
	if err := s.db.First(&incident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}
	return &incident, nil
}

// GetAll returns every incident, newest first.
func (s *IncidentStore) GetAll() ([]models.Incident, error) {
	var incidents []models.Incident
	err := s.db.Order("date_creation DESC").Find(&incidents).Error
	return incidents, err
}

// GetByStatus returns the incidents carrying the given status, newest
// first. An invalid status yields an empty list, not an error.
func (s *IncidentStore) GetByStatus(status models.IncidentStatus) ([]models.Incident, error) {
	if !status.Valid() {
		logger.WithStore("incident_store").WithField("status", status).
			Warn("Invalid status filter, returning no incidents")
		return []models.Incident{}, nil
	}

	var incidents []models.Incident
	err := s.db.Where("statut = ?", status).
		Order("date_creation DESC").
		Find(&incidents).Error
	return incidents, err
}

// GetByUser returns the incidents reported by a user, newest first.
func (s *IncidentStore) GetByUser(userID uint) ([]models.Incident, error) {
	var incidents []models.Incident
	err := s.db.Where("id_utilisateur = ?", userID).
		Order("date_creation DESC").
		Find(&incidents).Error
	return incidents, err
}

// GetByCategory returns the incidents filed under a category, newest first.
func (s *IncidentStore) GetByCategory(categoryID uint) ([]models.Incident, error) {
	var incidents []models.Incident
	err := s.db.Where("id_categorie = ?", categoryID).
		Order("date_creation DESC").
		Find(&incidents).Error
	return incidents, err
}

// Update overwrites the mutable fields of the incident identified by
// incident.ID and reports how many rows were affected (0 when the id does
// not exist). Photo URL and coordinates are always written; description
// only when non-nil; status only when it validates, otherwise the stored
// status stays untouched and a warning is logged; the category id goes
// through the same positive-or-NULL rule as Create.
func (s *IncidentStore) Update(incident *models.Incident) (int64, error) {
	updates := map[string]interface{}{
		"photo_url":    incident.PhotoURL,
		"latitude":     incident.Latitude,
		"longitude":    incident.Longitude,
		"id_categorie": normalizeCategory(incident.CategoryID),
	}
	if incident.Description != nil {
		updates["description"] = incident.Description
	}
	if incident.Status.Valid() {
		updates["statut"] = incident.Status
	} else if incident.Status != "" {
		logger.WithStore("incident_store").WithField("status", incident.Status).
			Warn("Invalid incident status on update, keeping stored value")
	}

	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Incident{}).
			Where("id_incident = ?", incident.ID).
			Updates(updates)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// Delete removes the incident with the given id and reports how many rows
// were affected (0 or 1).
func (s *IncidentStore) Delete(id uint) (int64, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Incident{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// Nearby returns the incidents within radiusKm of (lat, lon), newest
// first. Candidates come from an inclusive bounding-box scan over the
// (latitude, longitude) index; the exact great-circle distance then
// discards the corners the box over-approximates.
func (s *IncidentStore) Nearby(lat, lon, radiusKm float64) ([]models.Incident, error) {
	deltaLat, deltaLon := geo.BoundingBox(lat, radiusKm)

	var candidates []models.Incident
	err := s.db.
		Where("latitude BETWEEN ? AND ?", lat-deltaLat, lat+deltaLat).
		Where("longitude BETWEEN ? AND ?", lon-deltaLon, lon+deltaLon).
		Order("date_creation DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	incidents := make([]models.Incident, 0, len(candidates))
	for _, incident := range candidates {
		if geo.Haversine(lat, lon, incident.Latitude, incident.Longitude) <= radiusKm {
			incidents = append(incidents, incident)
		}
	}
	return incidents, nil
}

// Count returns the total number of stored incidents.
func (s *IncidentStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Incident{}).Count(&count).Error
	return count, err
}

// normalizeCategory enforces the positive-or-NULL category convention on
// every write path.
func normalizeCategory(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
