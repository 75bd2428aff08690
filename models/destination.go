package models

type Destination struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Summary *string `gorm:"size:512" json:"summary"`
	Details *string `gorm:"type:text" json:"details"`
	Region  *string `json:"region"`
	Image   *string `json:"image"`
}

// CreateDestinationInput is the body of POST /api/destinations.
type CreateDestinationInput struct {
	Name    string  `json:"name" binding:"required"`
	Summary *string `json:"summary"`
	Details *string `json:"details"`
	Region  *string `json:"region"`
	Image   *string `json:"image"`
}
