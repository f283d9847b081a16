package domain

import "errors"

var (
	// ErrInvalidEndpoint is returned when a connect request lacks a source or target
	ErrInvalidEndpoint = errors.New("invalid endpoint reference")
	// ErrUnknownEndpoint is returned in strict mode when an endpoint names no node
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	// ErrDuplicateID is returned when a sequence holds the same ID twice
	ErrDuplicateID = errors.New("duplicate element id")
	// ErrEmptyElement is returned when encoding an element with no variant set
	ErrEmptyElement = errors.New("empty element")
)
