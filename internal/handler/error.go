package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const (
	pushFieldsRequired = "token, title and body are required"
	mailFieldsRequired = "uid, title and content are required"
	missingEmail       = "User does not have an email"
)

var errMethodNotAllowed = errors.New(http.StatusText(http.StatusMethodNotAllowed))

type ErrorHandler struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"error"`
}

func (e *ErrorHandler) Error() string {
	return fmt.Sprintf("error code: %s, message: %s", e.ErrorCode, e.Message)
}

func GetRequestError(err error) error {
	return &ErrorHandler{
		ErrorCode: "E101",
		Message:   err.Error(),
	}
}

func GetInternalError(err error) error {
	return &ErrorHandler{
		ErrorCode: "E102",
		Message:   err.Error(),
	}
}

func GetMethodError(err error) error {
	return &ErrorHandler{
		ErrorCode: "E103",
		Message:   err.Error(),
	}
}

// bindingError reports missing fields with a fixed message; a body that
// cannot be decoded keeps the decoder's text.
func bindingError(err error, required string) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) || errors.Is(err, io.EOF) {
		return GetRequestError(errors.New(required))
	}
	return GetRequestError(err)
}
