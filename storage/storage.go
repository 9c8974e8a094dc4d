package storage

import (
	"errors"
	"fmt"
)

// History holds recorded messages per key. A key exists once it has
// received its first message; sequences are append-only.
type History interface {
	Append(key, msg string) error
	Messages(key string) ([]string, error)
	Has(key string) bool
	Keys() ([]string, error)
	Close() error
}

var ErrKeyNotFound = errors.New("key not found")

// KeyNotFoundError reports a lookup of a key that was never recorded.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrKeyNotFound, e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

func keyNotFound(key string) error {
	return &KeyNotFoundError{Key: key}
}
