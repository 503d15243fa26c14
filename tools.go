//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep Go-based tools invoked
// via `go generate` (mockgen) tracked in go.mod so a fresh checkout can
// regenerate mocks without a "missing go.sum entry" error.
package teammate_chat

import (
	_ "go.uber.org/mock/mockgen"
)
