package faults

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

type Category string

const (
	ValidationError         Category = "ValidationError"
	DuplicateError          Category = "DuplicateError"
	DependencyConflictError Category = "DependencyConflictError"
	NotFoundError           Category = "NotFoundError"
	StorageIOError          Category = "StorageIOError"
	ImportRowError          Category = "ImportRowError"
)

type TypedError struct {
	Category Category
	Message  string
	Cause    error
}

func (e *TypedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" && e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return string(e.Category)
}

func (e *TypedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func New(category Category, message string) *TypedError {
	return &TypedError{Category: category, Message: message}
}

func Wrap(category Category, message string, cause error) *TypedError {
	return &TypedError{Category: category, Message: message, Cause: cause}
}

func IsCategory(err error, category Category) bool {
	c, ok := CategoryOf(err)
	return ok && c == category
}

// CategoryOf returns the category of the outermost TypedError in err's chain.
func CategoryOf(err error) (Category, bool) {
	if err == nil {
		return "", false
	}
	var typedErr *TypedError
	if !errors.As(err, &typedErr) {
		return "", false
	}
	return typedErr.Category, true
}

// Storage translates an error coming out of gorm/sqlite into the taxonomy.
// Errors that already carry a category pass through untouched.
func Storage(message string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := CategoryOf(err); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(NotFoundError, message, err)
	case IsUniqueViolation(err):
		return Wrap(DuplicateError, message, err)
	case IsForeignKeyViolation(err):
		// a write pointing at a row that does not exist is bad input
		return Wrap(ValidationError, message, err)
	}
	return Wrap(StorageIOError, message, err)
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// HTTPStatus maps an error to the status code the HTTP layer answers with.
func HTTPStatus(err error) int {
	c, _ := CategoryOf(err)
	switch c {
	case ValidationError, ImportRowError:
		return http.StatusBadRequest
	case DuplicateError, DependencyConflictError:
		return http.StatusConflict
	case NotFoundError:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
