//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They pin mockgen, invoked through
// the go:generate lines of infrastructure/synadm, so go.mod / go.sum stay in sync.
package matrix_contacts

import (
	_ "go.uber.org/mock/mockgen"
)
