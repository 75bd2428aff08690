package controllers

import (
	"net/http"

	"tourism-backend/models"
	"tourism-backend/services"
	"tourism-backend/utils"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactSvc *services.ContactService
}

func NewContactController(svc *services.ContactService) *ContactController {
	return &ContactController{ContactSvc: svc}
}

// CreateContact (POST /api/contact)
func (ctrl *ContactController) CreateContact(c *gin.Context) {
	var in models.CreateContactInput
	if !bindJSON(c, &in) {
		return
	}

	contact, err := ctrl.ContactSvc.Create(in)
	if err != nil {
		respondServiceError(c, err, "", "Failed to save message")
		return
	}
	utils.JSONData(c, http.StatusCreated, contact)
}

// GetContacts (GET /api/contacts), admin only
func (ctrl *ContactController) GetContacts(c *gin.Context) {
	contacts, err := ctrl.ContactSvc.List()
	if err != nil {
		respondServiceError(c, err, "", "Failed to load messages")
		return
	}
	utils.JSONData(c, http.StatusOK, contacts)
}
