package services

import (
	"fmt"
	"strings"

	"tourism-backend/models"

	"gorm.io/gorm"
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

func (s *ContactService) Create(in models.CreateContactInput) (models.Contact, error) {
	if err := requireFields("email", in.Email, "message", in.Message); err != nil {
		return models.Contact{}, err
	}

	c := models.Contact{
		Name:    optional(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}

	var stored models.Contact
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		return tx.First(&stored, c.ID).Error
	})
	if err != nil {
		return models.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return stored, nil
}

// List returns all contact messages, newest first.
func (s *ContactService) List() ([]models.Contact, error) {
	contacts := []models.Contact{}
	if err := s.DB.Order("created_at DESC").Order("id DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}
