package core

import (
	"errors"
)

var (
	ErrInvalidScene       = errors.New("invalid scene configuration")
	ErrUnknownFormat      = errors.New("unknown scene file format")
	ErrUnknownShape       = errors.New("unknown mesh shape")
	ErrGeometryNotFound   = errors.New("geometry not registered")
	ErrQueueFull          = errors.New("queue is full")
	ErrQueueEmpty         = errors.New("queue is empty")
	ErrWatcherClosed      = errors.New("asset watcher already closed")
	ErrInvalidUniformSize = errors.New("uniform buffer object must be 192 bytes")
	ErrUnknown            = errors.New("unknown")
)
