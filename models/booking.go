package models

import "time"

type Booking struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Email         string  `gorm:"not null" json:"email"`
	Phone         *string `json:"phone"`
	DestinationID *uint   `gorm:"column:destination_id;index" json:"destination_id"`
	Guests        int     `gorm:"default:1" json:"guests"`
	StartDate     *string `gorm:"column:start_date" json:"start_date"`
	EndDate       *string `gorm:"column:end_date" json:"end_date"`
	Notes         *string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`

	// Declares the foreign key in the schema only; the reference is never preloaded.
	Destination *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"-"`
}

// BookingWithDestination is a booking row joined with its destination's name.
// DestinationName is nil when the booking has no destination or the reference dangles.
type BookingWithDestination struct {
	Booking
	DestinationName *string `json:"destination_name"`
}

// CreateBookingInput is the body of POST /api/bookings.
// Numeric fields accept numbers or numeric strings.
type CreateBookingInput struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	Phone         *string `json:"phone"`
	DestinationID FlexInt `json:"destination_id"`
	Guests        FlexInt `json:"guests"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Notes         *string `json:"notes"`
}
