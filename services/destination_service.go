package services

import (
	"errors"
	"fmt"
	"strings"

	"tourism-backend/models"

	"gorm.io/gorm"
)

type DestinationService struct {
	DB *gorm.DB
}

func NewDestinationService(db *gorm.DB) *DestinationService {
	return &DestinationService{DB: db}
}

func (s *DestinationService) List() ([]models.Destination, error) {
	destinations := []models.Destination{}
	if err := s.DB.Order("id ASC").Find(&destinations).Error; err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return destinations, nil
}

// Get looks a destination up by its path id. Ids that do not parse are reported as ErrNotFound.
func (s *DestinationService) Get(rawID string) (models.Destination, error) {
	id, ok := parseID(rawID)
	if !ok {
		return models.Destination{}, ErrNotFound
	}

	var d models.Destination
	if err := s.DB.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Destination{}, ErrNotFound
		}
		return models.Destination{}, fmt.Errorf("get destination %d: %w", id, err)
	}
	return d, nil
}

// Create validates the input, inserts it and returns the stored row.
func (s *DestinationService) Create(in models.CreateDestinationInput) (models.Destination, error) {
	if err := requireFields("name", in.Name); err != nil {
		return models.Destination{}, err
	}

	d := models.Destination{
		Name:    strings.TrimSpace(in.Name),
		Summary: optional(in.Summary),
		Details: optional(in.Details),
		Region:  optional(in.Region),
		Image:   optional(in.Image),
	}

	var stored models.Destination
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&d).Error; err != nil {
			return err
		}
		return tx.First(&stored, d.ID).Error
	})
	if err != nil {
		return models.Destination{}, fmt.Errorf("create destination: %w", err)
	}
	return stored, nil
}
