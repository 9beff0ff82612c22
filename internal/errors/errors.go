// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	// ErrInvalidRequest means an optimization request failed validation;
	// nothing is computed.
	ErrInvalidRequest = errors.New("invalid optimization request")
	// ErrNoQuotesForUnderlying means the quote table holds no quotes for
	// the requested underlying. The caller may retry with other input.
	ErrNoQuotesForUnderlying = errors.New("no quotes for underlying")
	// ErrInvalidSpreadShape means a manual spread's strikes do not form
	// the requested shape. Rejected before any computation.
	ErrInvalidSpreadShape = errors.New("invalid spread shape")
	ErrInvalidQuote       = errors.New("invalid option quote")
	ErrDataNotFound       = errors.New("data not found")
	ErrDatabaseError      = errors.New("database error")
	ErrConfigInvalid      = errors.New("invalid configuration")
	ErrMalformedCSV       = errors.New("malformed csv input")
)

// ValidationError represents a validation error on a single field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// RequestError wraps ErrInvalidRequest with the failing field.
type RequestError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%v: %s (%v): %s", ErrInvalidRequest, e.Field, e.Value, e.Message)
}

func (e *RequestError) Unwrap() error {
	return ErrInvalidRequest
}

// NewRequestError creates a new RequestError.
func NewRequestError(field string, value interface{}, message string) *RequestError {
	return &RequestError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// SpreadShapeError wraps ErrInvalidSpreadShape with the offending strikes.
type SpreadShapeError struct {
	SoldStrike   float64
	BoughtStrike float64
	Message      string
}

func (e *SpreadShapeError) Error() string {
	return fmt.Sprintf("%v: sold %.2f / bought %.2f: %s",
		ErrInvalidSpreadShape, e.SoldStrike, e.BoughtStrike, e.Message)
}

func (e *SpreadShapeError) Unwrap() error {
	return ErrInvalidSpreadShape
}

// NewSpreadShapeError creates a new SpreadShapeError.
func NewSpreadShapeError(soldStrike, boughtStrike float64, message string) *SpreadShapeError {
	return &SpreadShapeError{
		SoldStrike:   soldStrike,
		BoughtStrike: boughtStrike,
		Message:      message,
	}
}

// DataError represents a data-related error.
type DataError struct {
	DataType string
	Symbol   string
	Message  string
	Err      error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data error [%s] %s: %s: %v", e.DataType, e.Symbol, e.Message, e.Err)
	}
	return fmt.Sprintf("data error [%s] %s: %s", e.DataType, e.Symbol, e.Message)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// NewDataError creates a new DataError.
func NewDataError(dataType, symbol, message string, err error) *DataError {
	return &DataError{
		DataType: dataType,
		Symbol:   symbol,
		Message:  message,
		Err:      err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
