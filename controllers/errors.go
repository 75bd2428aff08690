package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"tourism-backend/services"
	"tourism-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondServiceError maps service errors onto status codes.
// notFound is the message used for services.ErrNotFound, failed the one used for storage errors.
func respondServiceError(c *gin.Context, err error, notFound, failed string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, notFound)
	default:
		log.Printf("❌ DB ERROR %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		details := err.Error()
		if cause := errors.Unwrap(err); cause != nil {
			details = cause.Error()
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, failed, details)
	}
}

// bindJSON decodes the body and runs the `binding` tags. Missing required fields are
// reported the same way the services report blank ones.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		utils.JSONError(c, http.StatusBadRequest, (&services.ValidationError{Fields: fields}).Error())
		return false
	}

	utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid request payload", err.Error())
	return false
}
