package utils

import "fmt"

// NotFoundError reports a lookup that matched zero rows. Handlers map it to
// HTTP 404.
type NotFoundError struct {
	Entity string
	Key    string
	Value  interface{}
}

func NewNotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: "id", Value: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %v not found.", e.Entity, e.Key, e.Value)
}

// ValidationError reports a client payload that failed a schema or
// field-whitelist check. Handlers map it to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
