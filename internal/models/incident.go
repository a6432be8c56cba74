package models

import (
	"time"
)

type IncidentStatus string

// Stored status values. The on-disk wording predates this service and
// must not change: existing rows carry it.
const (
	StatusNew        IncidentStatus = "Nouveau"
	StatusInProgress IncidentStatus = "En cours"
	StatusResolved   IncidentStatus = "Traité"
)

// Valid reports whether s is one of the three canonical status values.
func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type Incident struct {
	ID          uint           `json:"id" gorm:"column:id_incident;primaryKey;autoIncrement"`
	UserID      uint           `json:"userId" gorm:"column:id_utilisateur;not null"`
	User        *User          `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	CategoryID  *uint          `json:"categoryId" gorm:"column:id_categorie"`
	Category    *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Description *string        `json:"description" gorm:"column:description;type:text"`
	PhotoURL    *string        `json:"photoUrl" gorm:"column:photo_url"`
	Latitude    float64        `json:"latitude" gorm:"column:latitude;index:idx_incidents_position,priority:1"`
	Longitude   float64        `json:"longitude" gorm:"column:longitude;index:idx_incidents_position,priority:2"`
	Status      IncidentStatus `json:"status" gorm:"column:statut;not null;default:'Nouveau';check:statut IN ('Nouveau','En cours','Traité')"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"column:date_creation;autoCreateTime"`
}

func (Incident) TableName() string {
	return "incidents"
}
