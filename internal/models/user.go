package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"column:id_utilisateur;primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"column:nom;not null"`
	Email     string    `json:"email" gorm:"column:email;type:TEXT COLLATE NOCASE;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:mot_de_passe;not null"`
	RoleID    uint      `json:"roleId" gorm:"column:id_role;not null"`
	Role      *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:date_creation;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
