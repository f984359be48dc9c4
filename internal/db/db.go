// Package db defines the key-value storage contract used by the narrative
// cache.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrKeyNotFound signals a missing key.
var ErrKeyNotFound = errors.New("key not found")

// Op identifies the failed storage operation.
type Op string

// Storage operations.
const (
	OpGet Op = "get"
	OpSet Op = "set"
)

// Error wraps a storage failure with the operation that produced it.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("db %s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Store is the key-value storage contract.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
	Close()
}
