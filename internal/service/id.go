package service

import (
	"strings"

	"github.com/google/uuid"
)

// newID returns a 32-character lowercase hex identifier.
func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
