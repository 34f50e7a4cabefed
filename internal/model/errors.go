package model

import (
	"errors"
	"fmt"
)

// Error classes returned by the codec. Use errors.Is to classify.
var (
	ErrUnsupportedCombination = errors.New("unsupported version/profile/dialect combination")
	ErrUnsupportedTaxType     = errors.New("unsupported tax type")
	ErrMalformedDocument      = errors.New("malformed document")
	ErrMissingRequiredField   = errors.New("missing required field")
)

// CombinationError is returned when a (version, profile, dialect) triple
// cannot be produced
type CombinationError struct {
	Version Version
	Profile Profile
	Dialect Dialect
}

func (e *CombinationError) Error() string {
	return fmt.Sprintf("%v: version %s, profile %s, dialect %s",
		ErrUnsupportedCombination, e.Version, e.Profile, e.Dialect)
}

func (e *CombinationError) Unwrap() error {
	return ErrUnsupportedCombination
}

// NewCombinationError creates a new combination error
func NewCombinationError(v Version, p Profile, d Dialect) *CombinationError {
	return &CombinationError{Version: v, Profile: p, Dialect: d}
}

// TaxTypeError reports a tax type code the target profile does not accept
type TaxTypeError struct {
	Profile  Profile
	TaxType  TaxType
	Location string
}

func (e *TaxTypeError) Error() string {
	code := e.TaxType.Code()
	if code == "" {
		code = "<unknown>"
	}
	return fmt.Sprintf("%v: %s not allowed in profile %s (%s)", ErrUnsupportedTaxType, code, e.Profile, e.Location)
}

func (e *TaxTypeError) Unwrap() error {
	return ErrUnsupportedTaxType
}

// NewTaxTypeError creates a new tax type error
func NewTaxTypeError(p Profile, t TaxType, location string) *TaxTypeError {
	return &TaxTypeError{Profile: p, TaxType: t, Location: location}
}

// DocumentError reports input that cannot be classified or parsed
type DocumentError struct {
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s (%v)", ErrMalformedDocument, e.Message, e.Cause)
	}
	return fmt.Sprintf("%v: %s", ErrMalformedDocument, e.Message)
}

func (e *DocumentError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrMalformedDocument, e.Cause}
	}
	return []error{ErrMalformedDocument}
}

// NewDocumentError creates a new document error
func NewDocumentError(message string, cause error) *DocumentError {
	return &DocumentError{Message: message, Cause: cause}
}

// FieldError reports a structurally mandatory value missing from a document
type FieldError struct {
	Field   string
	Dialect Dialect
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s (%s)", ErrMissingRequiredField, e.Field, e.Dialect)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// NewFieldError creates a new field error
func NewFieldError(field string, d Dialect) *FieldError {
	return &FieldError{Field: field, Dialect: d}
}

// ParseError reports a failure while reading a document of a given dialect
type ParseError struct {
	Dialect Dialect
	Field   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error [%s] field=%s: %s: %v", e.Dialect, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error [%s] field=%s: %s", e.Dialect, e.Field, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(d Dialect, field, message string, cause error) *ParseError {
	return &ParseError{
		Dialect: d,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError represents a model inconsistency detected by Validate
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}
