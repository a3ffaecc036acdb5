// Package errors defines typed errors with categories for user-facing
// reporting. Kinds follow the failure surfaces of a database admin tool:
// configuration, connectivity, schema DDL, and ad-hoc queries. Wrapping
// keeps the underlying driver error available for errors.Is/As chains.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ConfigInvalid indicates bad or missing connection configuration.
	ConfigInvalid Kind = "config_invalid"
	// ConnectionFailed indicates the database server could not be reached.
	ConnectionFailed Kind = "connection_failed"
	// SchemaFailed indicates a DDL operation failed.
	SchemaFailed Kind = "schema_failed"
	// QueryFailed indicates a DML or query statement failed.
	QueryFailed Kind = "query_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf reports the category of err, or the empty Kind when err does not
// carry one anywhere in its chain.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
