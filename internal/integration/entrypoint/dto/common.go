// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/google/uuid"

// uuidPtrToString converts an optional UUID to an optional string.
func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// ParseUUIDPtr parses an optional UUID string from a request body.
func ParseUUIDPtr(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
