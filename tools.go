//go:build tools

// Package partylab pins the code generators used by go:generate so that
// go.mod and go.sum track them like any other dependency.
package partylab

import (
	_ "go.uber.org/mock/mockgen"
)
