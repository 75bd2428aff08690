package services

import (
	"fmt"
	"strings"

	"tourism-backend/models"

	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB for the bookings table.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create validates the input, inserts the booking and re-reads it in the same transaction.
// The destination reference is stored as given; it is not checked against existing destinations.
func (s *BookingService) Create(in models.CreateBookingInput) (models.Booking, error) {
	if err := requireFields("name", in.Name, "email", in.Email); err != nil {
		return models.Booking{}, err
	}

	guests := 1
	if in.Guests.Valid && in.Guests.Int != 0 {
		guests = int(in.Guests.Int)
	}

	// Ids that cannot exist are stored as no destination.
	var destinationID *uint
	if in.DestinationID.Valid && in.DestinationID.Int > 0 {
		id := uint(in.DestinationID.Int)
		destinationID = &id
	}

	b := models.Booking{
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Phone:         optional(in.Phone),
		DestinationID: destinationID,
		Guests:        guests,
		StartDate:     optional(in.StartDate),
		EndDate:       optional(in.EndDate),
		Notes:         optional(in.Notes),
	}

	var stored models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Destination").Create(&b).Error; err != nil {
			return err
		}
		return tx.First(&stored, b.ID).Error
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}
	return stored, nil
}

// List returns every booking, newest first, with the referenced destination's name.
func (s *BookingService) List() ([]models.BookingWithDestination, error) {
	rows := []models.BookingWithDestination{}
	err := s.DB.Model(&models.Booking{}).
		Select("bookings.*, destinations.name AS destination_name").
		Joins("LEFT JOIN destinations ON destinations.id = bookings.destination_id").
		Order("bookings.created_at DESC").
		Order("bookings.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return rows, nil
}

// Delete removes one booking. ErrNotFound is returned when nothing matched, including unparsable ids.
func (s *BookingService) Delete(rawID string) error {
	id, ok := parseID(rawID)
	if !ok {
		return ErrNotFound
	}

	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete booking %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
