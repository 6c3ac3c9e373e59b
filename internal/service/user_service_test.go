package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationCodeLength(t *testing.T) {
	assert.Len(t, verificationCode(7), 7)
	assert.Len(t, verificationCode(0), 6)
	assert.Len(t, verificationCode(-3), 6)
}

func TestVerificationCodeCharset(t *testing.T) {
	code := verificationCode(64)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeCharset, r), "unexpected character %q", r)
	}
}

func TestNewIDHasNoDashes(t *testing.T) {
	id := newID()
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
}
