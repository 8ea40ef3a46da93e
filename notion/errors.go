package notion

import (
	"errors"
	"fmt"

	"github.com/foomo/notion-mcp/notion/vo"
)

// Kind classifies a client failure. Its string form prefixes every error
// message so callers can match on the kind without parsing.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindTransport       Kind = "transport"
	KindRemoteAPI       Kind = "remote_api"
	KindDeserialization Kind = "deserialization"
	KindBody            Kind = "body"
)

// Sentinel errors for programmatic handling with errors.Is.
var (
	ErrValidation      = errors.New("validation")
	ErrTransport       = errors.New("transport")
	ErrRemoteAPI       = errors.New("remote_api")
	ErrDeserialization = errors.New("deserialization")
	ErrBody            = errors.New("body")
)

// Validation reasons.
var (
	ErrMissingParent        = errors.New("missing_parent")
	ErrAmbiguousParent      = errors.New("ambiguous_parent")
	ErrMissingDestination   = errors.New("missing_destination")
	ErrAmbiguousDestination = errors.New("ambiguous_destination")
	ErrMissingField         = errors.New("missing_field")
	ErrAmbiguousField       = errors.New("ambiguous_field")
	ErrInvalidID            = errors.New("invalid_id")
	ErrInvalidSchema        = errors.New("invalid_schema")
)

var kindSentinels = map[Kind]error{
	KindValidation:      ErrValidation,
	KindTransport:       ErrTransport,
	KindRemoteAPI:       ErrRemoteAPI,
	KindDeserialization: ErrDeserialization,
	KindBody:            ErrBody,
}

// Error is returned by every Send. Op names the endpoint as "METHOD /route".
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// APIError is the structured error body of a non-2xx response.
type APIError struct {
	Object          string `json:"object"`
	Status          int    `json:"status"`
	Code            string `json:"code"`
	Message         string `json:"message"`
	RequestID       string `json:"request_id,omitempty"`
	DeveloperSurvey string `json:"developer_survey,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("status %d %s: %s", e.Status, e.Code, e.Message)
}

func validationError(op string, reason error, detail string) error {
	if detail != "" {
		reason = fmt.Errorf("%w: %s", reason, detail)
	}
	return &Error{Kind: KindValidation, Op: op, Err: reason}
}

// missingField reports a required builder field that was never set.
func missingField(op, field string) error {
	return validationError(op, ErrMissingField, "`"+field+"` is not set")
}

// validateSchema rejects a status schema whose groups name unknown options.
func validateSchema(op, name string, schema *vo.PropertySchema) error {
	if schema == nil || schema.Status == nil {
		return nil
	}
	if err := schema.Status.Validate(); err != nil {
		return validationError(op, ErrInvalidSchema, fmt.Sprintf("property %q: %s", name, err))
	}
	return nil
}
