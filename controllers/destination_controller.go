package controllers

import (
	"net/http"

	"tourism-backend/models"
	"tourism-backend/services"
	"tourism-backend/utils"

	"github.com/gin-gonic/gin"
)

type DestinationController struct {
	DestinationSvc *services.DestinationService
}

func NewDestinationController(svc *services.DestinationService) *DestinationController {
	return &DestinationController{DestinationSvc: svc}
}

// ListDestinations (GET /api/destinations)
func (ctrl *DestinationController) ListDestinations(c *gin.Context) {
	destinations, err := ctrl.DestinationSvc.List()
	if err != nil {
		respondServiceError(c, err, "", "Failed to load destinations")
		return
	}
	utils.JSONData(c, http.StatusOK, destinations)
}

// GetDestination (GET /api/destinations/:id)
func (ctrl *DestinationController) GetDestination(c *gin.Context) {
	d, err := ctrl.DestinationSvc.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Destination not found", "Failed to load destination")
		return
	}
	utils.JSONData(c, http.StatusOK, d)
}

// CreateDestination (POST /api/destinations), admin only
func (ctrl *DestinationController) CreateDestination(c *gin.Context) {
	var in models.CreateDestinationInput
	if !bindJSON(c, &in) {
		return
	}

	d, err := ctrl.DestinationSvc.Create(in)
	if err != nil {
		respondServiceError(c, err, "", "Failed to create destination")
		return
	}
	utils.JSONData(c, http.StatusCreated, d)
}
