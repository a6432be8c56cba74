package stores

import (
	"errors"

	"github.com/safecity/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound     = errors.New("role not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ReferenceStore reads the static lookup tables. Rows are written once,
// at schema creation.
type ReferenceStore struct {
	db *gorm.DB
}

func NewReferenceStore(db *gorm.DB) *ReferenceStore {
	return &ReferenceStore{db: db}
}

// Roles returns every role ordered by id.
func (s *ReferenceStore) Roles() ([]models.Role, error) {
	var roles []models.Role
	err := s.db.Order("id_role").Find(&roles).Error
	return roles, err
}

// RoleByID returns a single role, or ErrRoleNotFound.
func (s *ReferenceStore) RoleByID(id uint) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

// RoleByName returns the role with the given name, or ErrRoleNotFound.
func (s *ReferenceStore) RoleByName(name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.Where("nom_role = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

// Categories returns every category ordered by name.
func (s *ReferenceStore) Categories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("nom_categorie").Find(&categories).Error
	return categories, err
}

// CategoryByID returns a single category, or ErrCategoryNotFound.
func (s *ReferenceStore) CategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
