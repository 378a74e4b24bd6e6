package application

import (
	"errors"
	"fmt"

	"github.com/bnema/zksh/internal/domain"
)

// CommandError is a local validation failure raised before any remote call.
type CommandError struct {
	Name   string
	Params string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// PathError records the node a failed operation addressed.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// RenderError turns any dispatch failure into the single line shown to the user.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		switch {
		case errors.Is(cmdErr.Err, domain.ErrUnknownCommand):
			return fmt.Sprintf("Unknown command: %s", cmdErr.Name)
		case errors.Is(cmdErr.Err, domain.ErrArity):
			return fmt.Sprintf("Wrong number of arguments, expected parameters: %s", cmdErr.Params)
		}
	}

	if errors.Is(err, domain.ErrNotConnected) {
		return "Not connected."
	}

	path := ""
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		path = pathErr.Path
	}

	if code, ok := domain.CodeOf(err); ok {
		return renderServiceCode(code, path)
	}

	if errors.Is(err, domain.ErrLineTooLong) {
		return fmt.Sprintf("Error: %v, line ignored.", err)
	}

	if errors.Is(err, domain.ErrInvalidUTF8) {
		return fmt.Sprintf("Error: data at %s is not valid UTF-8.", path)
	}

	return fmt.Sprintf("Error: %v", err)
}

func renderServiceCode(code domain.ErrorCode, path string) string {
	switch code {
	case domain.CodeNoNode:
		return fmt.Sprintf("Path %s does not exist.", path)
	case domain.CodeNotEmpty:
		return fmt.Sprintf("Path %s is not empty.", path)
	default:
		return fmt.Sprintf("Unknown error: %s", code)
	}
}
