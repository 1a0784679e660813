package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// StatusForError maps a service error to its HTTP status class.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFamilyAdmin),
		errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrCannotRemoveCreator),
		errors.Is(err, ErrCannotLeaveAsCreator),
		errors.Is(err, ErrInviteNotForYou):
		return http.StatusForbidden
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrFamilyNotFound),
		errors.Is(err, ErrNotFamilyMember),
		errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrInviteNotFound),
		errors.Is(err, ErrJoinRequestNotFound),
		errors.Is(err, ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrAlreadyFamilyMember),
		errors.Is(err, ErrDuplicateJoinRequest),
		errors.Is(err, ErrJoinRequestNotPending),
		errors.Is(err, ErrAssigneeNotMember):
		return http.StatusConflict
	case errors.Is(err, ErrInviteExpired), errors.Is(err, ErrInviteAlreadyUsed):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code := StatusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("Unexpected error: %v", err)
		message = "Internal server error"
	}

	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}
