package httputil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// RequestURL returns the base URL of the server as seen by the client.
func RequestURL(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	if forwarded := c.Request.Header.Get("x-forwarded-proto"); forwarded != "" {
		scheme = forwarded
	}

	return scheme + "://" + c.Request.Host
}

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)

// BindData binds the request body to the struct passed in.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(&data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, validationErrorToText(fieldError))
		}

		return fmt.Errorf("%w: %s", ErrInvalidBody, strings.Join(messages, ", "))
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// validationErrorToText renders one validation failure for end users.
func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be larger than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
