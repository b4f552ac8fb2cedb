package entities

import (
	"errors"
	"fmt"
)

// ErrEmptyAddress is returned when the address is empty or whitespace only
var ErrEmptyAddress = errors.New("no address provided")

// ErrorKind enumerates the ways a balance lookup can fail
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindNetwork
	KindResponseFormat
	KindStorage
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindResponseFormat:
		return "response_format"
	case KindStorage:
		return "storage"
	default:
		return "unexpected"
	}
}

// FetchError is a classified balance lookup failure
type FetchError struct {
	Kind ErrorKind
	// Key is the offending response key for KindResponseFormat
	Key string
	Err error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindResponseFormat:
		if e.Err != nil {
			return fmt.Sprintf("unexpected response format at %q: %v", e.Key, e.Err)
		}
		return fmt.Sprintf("unexpected response format: missing %q", e.Key)
	case KindStorage:
		return fmt.Sprintf("storage error: %v", e.Err)
	default:
		return fmt.Sprintf("unexpected error: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps a transport or HTTP status failure
func NewNetworkError(err error) *FetchError {
	return &FetchError{Kind: KindNetwork, Err: err}
}

// NewResponseFormatError reports a missing or mistyped response key
func NewResponseFormatError(key string, err error) *FetchError {
	return &FetchError{Kind: KindResponseFormat, Key: key, Err: err}
}

// NewStorageError wraps a failure to persist a record
func NewStorageError(err error) *FetchError {
	return &FetchError{Kind: KindStorage, Err: err}
}

// NewUnexpectedError wraps any failure outside the other kinds
func NewUnexpectedError(err error) *FetchError {
	return &FetchError{Kind: KindUnexpected, Err: err}
}

// KindOf returns the kind of a classified error, or KindUnexpected
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnexpected
}
