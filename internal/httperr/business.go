package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// WriteBusiness maps a business error onto an HTTP response and reports
// whether it handled the error. Non-business errors are left to the
// caller's generic 500 path.
func WriteBusiness(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status := http.StatusBadRequest
	switch be.Code {
	case "conflict", "duplicate_active_appointment":
		status = http.StatusConflict
	case "appointment_not_found", "student_not_found", "block_not_found", "group_not_found":
		status = http.StatusNotFound
	}

	msg := be.Message
	if msg == "" {
		msg = be.Code
	}

	Write(c, status, be.Code, msg)
	return true
}
