package models

import "time"

// Contact is an inbound message from the public contact form.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      *string   `json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateContactInput struct {
	Name    *string `json:"name"`
	Email   string  `json:"email" binding:"required"`
	Message string  `json:"message" binding:"required"`
}
