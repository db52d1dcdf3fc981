package engine

import "errors"

var (
	// ErrUnknownCommand is returned when a command name has no binding.
	ErrUnknownCommand = errors.New("engine: unknown command")

	// ErrVertexCount indicates a vertex set that is not a cube.
	ErrVertexCount = errors.New("engine: cube needs exactly 8 vertices")
)
