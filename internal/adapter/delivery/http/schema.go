package http

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortener/internal/entity"
)

const statusError = "error"

const absoluteURLTag = "absolute_url"

// urlRequest represents the structure for a request to shorten a URL.
type urlRequest struct {
	TargetURL string `json:"target_url" validate:"required,absolute_url"`
}

// secretKeyRequest represents the structure for an admin request authorized by a secret key.
type secretKeyRequest struct {
	SecretKey string `json:"secret_key" validate:"required"`
}

// createURLResponse is returned once a URL has been shortened.
// URL carries the public key, AdminURL the secret key.
type createURLResponse struct {
	URL       string `json:"url"`
	AdminURL  string `json:"admin_url"`
	TargetURL string `json:"target_url"`
	IsActive  bool   `json:"is_active"`
	Clicks    int64  `json:"clicks"`
}

func toCreateURLResponse(url *entity.URL) createURLResponse {
	return createURLResponse{
		URL:       url.Key,
		AdminURL:  url.SecretKey,
		TargetURL: url.TargetURL,
		IsActive:  url.IsActive,
		Clicks:    url.Clicks,
	}
}

// urlResponse represents the full stored record.
type urlResponse struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	SecretKey string    `json:"secret_key"`
	TargetURL string    `json:"target_url"`
	IsActive  bool      `json:"is_active"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toURLResponse(url *entity.URL) urlResponse {
	return urlResponse{
		ID:        url.ID,
		Key:       url.Key,
		SecretKey: url.SecretKey,
		TargetURL: url.TargetURL,
		IsActive:  url.IsActive,
		Clicks:    url.Clicks,
		CreatedAt: url.CreatedAt,
		UpdatedAt: url.UpdatedAt,
	}
}

func toURLListResponse(urls []entity.URL) []urlResponse {
	resp := make([]urlResponse, 0, len(urls))
	for i := range urls {
		resp = append(resp, toURLResponse(&urls[i]))
	}
	return resp
}

type messageResponse struct {
	Message string `json:"message"`
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)

// urlNotFoundResponse names the requested URL so that a missing key and an
// inactive one produce the same body.
func urlNotFoundResponse(r *http.Request) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: fmt.Sprintf("URL '%s' doesn't exist", requestURL(r)),
	}
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case absoluteURLTag:
		return "invalid url"
	default:
		return "invalid value"
	}
}

func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	errs, ok := err.(validator.ValidationErrors)
	if ok {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}

// isAbsoluteURL accepts URLs carrying both a scheme and a host.
func isAbsoluteURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	return err == nil && u.IsAbs() && u.Host != ""
}

// newValidate returns a validator that reports JSON field names and knows the absolute_url tag.
func newValidate() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation(absoluteURLTag, isAbsoluteURL); err != nil {
		panic(err)
	}

	return validate
}
