package stores

import (
	"github.com/safecity/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationStore writes alert rows and flips their read flag. After
// creation, is_read is the only column that ever changes.
type NotificationStore struct {
	db *gorm.DB
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

// Create stores a new notification.
func (s *NotificationStore) Create(notification *models.Notification) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(notification).Error
	})
}

// GetByUser returns a user's notifications, most recent first.
func (s *NotificationStore) GetByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("id_utilisateur = ?", userID).
		Order("date_envoi DESC").
		Find(&notifications).Error
	return notifications, err
}

// UnreadCount returns how many of a user's notifications are unread.
func (s *NotificationStore) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("id_utilisateur = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flips is_read on a single notification owned by userID and
// reports how many rows were affected (0 or 1).
func (s *NotificationStore) MarkRead(id, userID uint) (int64, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Notification{}).
			Where("id_notification = ? AND id_utilisateur = ?", id, userID).
			Update("is_read", true)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// MarkAllRead flips is_read on every unread notification of a user.
func (s *NotificationStore) MarkAllRead(userID uint) (int64, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Notification{}).
			Where("id_utilisateur = ? AND is_read = ?", userID, false).
			Update("is_read", true)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// Delete removes a notification owned by userID.
func (s *NotificationStore) Delete(id, userID uint) (int64, error) {
	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id_notification = ? AND id_utilisateur = ?", id, userID).
			Delete(&models.Notification{})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
