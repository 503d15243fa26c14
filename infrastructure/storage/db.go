package storage

import (
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type OpenOptions struct {
	Path     string
	ReadOnly bool
	Debug    bool
}

// Open opens the Badger database backing every repository of this package.
// ReadOnly opens bypass the directory lock so tooling can inspect a live
// store.
func Open(opts OpenOptions) (*badger.DB, error) {
	options := badger.DefaultOptions(opts.Path)

	if opts.Debug {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	if opts.ReadOnly {
		options = options.WithReadOnly(true).WithBypassLockGuard(true)
	}
	return badger.Open(options)
}

// OpenInMemory opens a throwaway database, used by tests.
func OpenInMemory(log *slog.Logger) (*badger.DB, error) {
	log.Debug("Opening in-memory badger")
	return badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}
