// controllers/booking_controller.go
package controllers

import (
	"log"
	"net/http"

	"tourism-backend/models"
	"tourism-backend/services"
	"tourism-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking (POST /api/bookings)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var in models.CreateBookingInput
	if !bindJSON(c, &in) {
		return
	}

	booking, err := ctrl.BookingSvc.Create(in)
	if err != nil {
		respondServiceError(c, err, "", "Failed to create booking")
		return
	}

	log.Printf("✅ Booking %d created for %s", booking.ID, booking.Email)
	utils.JSONData(c, http.StatusCreated, booking)
}

// GetBookings (GET /api/bookings), admin only
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List()
	if err != nil {
		respondServiceError(c, err, "", "Failed to load bookings")
		return
	}
	utils.JSONData(c, http.StatusOK, bookings)
}

// DeleteBooking (DELETE /api/bookings/:id), admin only
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.BookingSvc.Delete(id); err != nil {
		respondServiceError(c, err, "Booking not found", "Failed to delete booking")
		return
	}

	log.Printf("✅ Booking %s deleted.", id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
