package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/velomad/rideplanner/internal/core/domain"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type deleteResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Error: message})
}

// newValidationErrorResponse turns validator errors into a 422 with one entry
// per failing field. Non-validator errors (malformed JSON, wrong types) get a
// generic 422 since they never carry field detail.
func newValidationErrorResponse(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "Invalid request payload"})
		return
	}

	fields := make([]fieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, fieldError{
			Field:   fe.Field(),
			Message: ruleMessage(fe),
		})
	}
	c.JSON(http.StatusUnprocessableEntity, errorResponse{
		Error:  "Validation failed",
		Fields: fields,
	})
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "max":
		return "value is longer than " + fe.Param() + " characters"
	case "min":
		return "value is shorter than " + fe.Param() + " characters"
	default:
		return "failed '" + fe.Tag() + "' validation"
	}
}

// respondRideError maps ride service errors onto the HTTP surface: validation
// failures are 422, a missing path id is 404, a body coffee_shop_id resolving
// to no shop is 400, anything else is an unclassified 500.
func respondRideError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	switch {
	case errors.As(err, &vErrs):
		newValidationErrorResponse(c, err)
	case errors.Is(err, domain.ErrShopReference):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRideNotFound):
		newErrorResponse(c, http.StatusNotFound, "Ride not found")
	default:
		newErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respondShopError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	switch {
	case errors.As(err, &vErrs):
		newValidationErrorResponse(c, err)
	case errors.Is(err, domain.ErrShopNotFound):
		newErrorResponse(c, http.StatusNotFound, "Shop not found")
	default:
		newErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
