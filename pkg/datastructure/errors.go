package datastructure

import "errors"

var (
	// ErrInvalidArgument point tidak valid, endpoint edge belum ada di graph, atau length negatif
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrVertexNotFound point tidak ada di graph
	ErrVertexNotFound = errors.New("vertex not found")
)
