// Package store defines the local key/value medium that task and profile
// state is mirrored into. Values are whole JSON documents; every write
// replaces the previous document for that key.
package store

import "errors"

// Well-known document keys.
const (
	KeyTasks   = "tasks"
	KeyProfile = "profile"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Storage is implemented by every backend.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
