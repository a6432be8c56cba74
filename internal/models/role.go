package models

// Role names seeded at schema creation. The stored values keep the
// wording used by the mobile application.
const (
	RoleAdmin     = "Admin"
	RoleAuthority = "Autorité"
	RoleCitizen   = "Citoyen"
)

// DefaultRoles lists the reference rows seeded into the roles table.
var DefaultRoles = []string{RoleAdmin, RoleAuthority, RoleCitizen}

type Role struct {
	ID   uint   `json:"id" gorm:"column:id_role;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:nom_role;unique;not null"`
}

func (Role) TableName() string {
	return "roles"
}
