package repositories

import (
	"fmt"

	"github.com/wandermh/backend/internal/models"
	"gorm.io/gorm"
)

// SavedAttractionRepository defines the interface for saved attraction operations
type SavedAttractionRepository interface {
	SaveAttraction(saved *models.SavedAttraction) error
	UnsaveAttraction(userID uint, attractionID string) error
	IsAttractionSaved(userID uint, attractionID string) (bool, error)
	GetSavedAttractionsByUser(userID uint) ([]models.SavedAttraction, error)
}

// PostgresSavedAttractionRepository implements SavedAttractionRepository
type PostgresSavedAttractionRepository struct {
	db *gorm.DB
}

func NewPostgresSavedAttractionRepository(db *gorm.DB) *PostgresSavedAttractionRepository {
	return &PostgresSavedAttractionRepository{db: db}
}

func (r *PostgresSavedAttractionRepository) SaveAttraction(saved *models.SavedAttraction) error {
	return r.db.Create(saved).Error
}

func (r *PostgresSavedAttractionRepository) UnsaveAttraction(userID uint, attractionID string) error {
	res := r.db.Where("user_id = ? AND attraction_id = ?", userID, attractionID).Delete(&models.SavedAttraction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("saved attraction not found")
	}
	return nil
}

func (r *PostgresSavedAttractionRepository) IsAttractionSaved(userID uint, attractionID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedAttraction{}).Where("user_id = ? AND attraction_id = ?", userID, attractionID).Count(&count).Error
	return count > 0, err
}

func (r *PostgresSavedAttractionRepository) GetSavedAttractionsByUser(userID uint) ([]models.SavedAttraction, error) {
	var saved []models.SavedAttraction
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&saved).Error
	return saved, err
}
