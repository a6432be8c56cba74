package stores

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/safecity/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore handles account rows and credential checks.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// HashPassword returns the hex-encoded SHA-256 digest of password.
// The digest is unsalted: rows written by the mobile application carry
// this exact format and both sides must keep producing it.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Create registers a new account. The plaintext password is digested
// before storage. Returns ErrEmailTaken when the address is already in
// use (case-insensitive).
func (s *UserStore) Create(user *models.User, password string) error {
	taken, err := s.EmailExists(user.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	user.Password = HashPassword(password)
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

// GetByID returns the user with the given id, or ErrUserNotFound.
func (s *UserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user registered under email. The email column
// collates case-insensitively, so the match is too.
func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetAll returns every account ordered by id.
func (s *UserStore) GetAll() ([]models.User, error) {
	var users []models.User
	err := s.db.Preload("Role").Order("id_utilisateur").Find(&users).Error
	return users, err
}

// Authenticate verifies the email/password pair and returns the matching
// user. Both a missing account and a digest mismatch come back as
// ErrInvalidCredentials so callers cannot probe for registered addresses.
func (s *UserStore) Authenticate(email, password string) (*models.User, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != HashPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EmailExists reports whether an account is registered under email.
func (s *UserStore) EmailExists(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ChangePassword swaps the stored digest after verifying the current one.
func (s *UserStore) ChangePassword(userID uint, current, next string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if user.Password != HashPassword(current) {
		return ErrInvalidCredentials
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.User{}).
			Where("id_utilisateur = ?", userID).
			Update("mot_de_passe", HashPassword(next)).Error
	})
}

// Update overwrites a user's name and role.
func (s *UserStore) Update(user *models.User) (int64, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id_utilisateur = ?", user.ID).
			Updates(map[string]interface{}{
				"nom":     user.Name,
				"id_role": user.RoleID,
			})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// Delete removes the account with the given id. Incidents reported by
// the user go with it (schema cascade).
func (s *UserStore) Delete(id uint) (int64, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.User{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
