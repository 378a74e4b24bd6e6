package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotConnected   = errors.New("not connected")
	ErrInvalidUTF8    = errors.New("data is not valid UTF-8")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
	ErrLineTooLong    = errors.New("input line too long")
)

// ErrorCode is a failure reported by the coordination service.
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeNoNode
	CodeNotEmpty
	CodeNodeExists
	CodeBadVersion
	CodeNoAuth
	CodeAuthFailed
	CodeInvalidACL
	CodeNoChildrenForEphemerals
	CodeSessionExpired
	CodeSessionMoved
	CodeConnectionClosed
	CodeClosing
	CodeBadArguments
	CodeInvalidPath
	CodeAPIError
	CodeNoServer
	CodeNothing
)

var codeNames = map[ErrorCode]string{
	CodeUnknown:                 "Unknown",
	CodeNoNode:                  "NoNode",
	CodeNotEmpty:                "NotEmpty",
	CodeNodeExists:              "NodeExists",
	CodeBadVersion:              "BadVersion",
	CodeNoAuth:                  "NoAuth",
	CodeAuthFailed:              "AuthFailed",
	CodeInvalidACL:              "InvalidACL",
	CodeNoChildrenForEphemerals: "NoChildrenForEphemerals",
	CodeSessionExpired:          "SessionExpired",
	CodeSessionMoved:            "SessionMoved",
	CodeConnectionClosed:        "ConnectionClosed",
	CodeClosing:                 "Closing",
	CodeBadArguments:            "BadArguments",
	CodeInvalidPath:             "InvalidPath",
	CodeAPIError:                "APIError",
	CodeNoServer:                "NoServer",
	CodeNothing:                 "Nothing",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// ServiceError carries a service failure code and the client error behind it.
type ServiceError struct {
	Code ErrorCode
	Err  error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code.String()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is matches another ServiceError by code so sentinels like
// &ServiceError{Code: CodeNoNode} work with errors.Is.
func (e *ServiceError) Is(target error) bool {
	var other *ServiceError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

func NewServiceError(code ErrorCode, err error) *ServiceError {
	return &ServiceError{Code: code, Err: err}
}

// CodeOf extracts the service code from err, or CodeUnknown.
func CodeOf(err error) (ErrorCode, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code, true
	}
	return CodeUnknown, false
}
