package apperr

import (
	"errors"
	"net/http"
)

// Error is a typed, status-aware application error. Fields carries
// per-field validation messages when the code is validation_error.
type Error struct {
	Code    string            `json:"code"`
	Message string            `json:"message,omitempty"`
	Status  int               `json:"-"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match two apperr values by code, so sentinel
// comparisons like errors.Is(err, apperr.ErrConflict) work on copies.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

var (
	ErrValidation   = New("validation_error", http.StatusBadRequest, "")
	ErrConflict     = New("conflict", http.StatusConflict, "")
	ErrIntegrity    = New("integrity_error", http.StatusConflict, "")
	ErrNotFound     = New("not_found", http.StatusNotFound, "")
	ErrUnauthorized = New("unauthorized", http.StatusUnauthorized, "")
	ErrForbidden    = New("forbidden", http.StatusForbidden, "")
	ErrInternal     = New("internal_error", http.StatusInternalServerError, "")
)

// Validation builds a field-level validation error. The whole operation
// it belongs to must not have written anything.
func Validation(field, message string) *Error {
	e := *ErrValidation
	e.Message = message
	e.Fields = map[string]string{field: message}
	return &e
}

// Conflict marks a uniqueness violation on the named field.
func Conflict(field, message string) *Error {
	e := *ErrConflict
	e.Message = message
	e.Fields = map[string]string{field: message}
	return &e
}

func Integrity(message string) *Error {
	e := *ErrIntegrity
	e.Message = message
	return &e
}

func NotFound(message string) *Error {
	e := *ErrNotFound
	e.Message = message
	return &e
}

func Forbidden(message string) *Error {
	e := *ErrForbidden
	e.Message = message
	return &e
}

func Wrap(err error, base *Error, message string) *Error {
	if err == nil {
		return nil
	}
	if base == nil {
		base = ErrInternal
	}
	e := *base
	if message != "" {
		e.Message = message
	}
	e.Err = err
	return &e
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

func Status(err error) int {
	if e, ok := As(err); ok && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// Payload is the JSON body rendered for an error response.
func Payload(err error) map[string]any {
	if err == nil {
		return map[string]any{}
	}
	if e, ok := As(err); ok {
		p := map[string]any{"code": e.Code, "message": e.Error()}
		if len(e.Fields) > 0 {
			p["fields"] = e.Fields
		}
		return p
	}
	return map[string]any{"code": "internal_error", "message": err.Error()}
}
