package models

// Category names seeded at schema creation.
const (
	CategoryTheft     = "Vol"
	CategoryAccident  = "Accident"
	CategoryFire      = "Incendie"
	CategoryBreakdown = "Panne"
	CategoryOther     = "Autre"
)

// DefaultCategories lists the reference rows seeded into the categories table.
var DefaultCategories = []string{
	CategoryTheft,
	CategoryAccident,
	CategoryFire,
	CategoryBreakdown,
	CategoryOther,
}

type Category struct {
	ID   uint   `json:"id" gorm:"column:id_categorie;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:nom_categorie;unique;not null"`
}

func (Category) TableName() string {
	return "categories"
}

// NormalizeCategoryID maps the mobile client's category field onto a
// nullable reference: anything that is not a positive id stores NULL.
func NormalizeCategoryID(id int64) *uint {
	if id <= 0 {
		return nil
	}
	normalized := uint(id)
	return &normalized
}
