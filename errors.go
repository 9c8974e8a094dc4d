package globallog

import "github.com/will-x86/globallog/storage"

// ErrKeyNotFound is returned by lookups of keys that never received a message.
var ErrKeyNotFound = storage.ErrKeyNotFound

type KeyNotFoundError = storage.KeyNotFoundError
