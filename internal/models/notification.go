package models

import (
	"time"
)

type Notification struct {
	ID         uint      `json:"id" gorm:"column:id_notification;primaryKey;autoIncrement"`
	UserID     *uint     `json:"userId" gorm:"column:id_utilisateur"`
	User       *User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	IncidentID *uint     `json:"incidentId" gorm:"column:id_incident"`
	Incident   *Incident `json:"-" gorm:"foreignKey:IncidentID;references:ID;constraint:OnDelete:SET NULL"`
	Title      string    `json:"title" gorm:"column:titre;not null"`
	Message    string    `json:"message" gorm:"column:message;type:text"`
	TargetZone string    `json:"targetZone" gorm:"column:zone_cible"`
	IsRead     bool      `json:"isRead" gorm:"column:is_read;not null;default:0;check:is_read IN (0,1)"`
	SentAt     time.Time `json:"sentAt" gorm:"column:date_envoi;autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
