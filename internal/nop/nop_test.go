package nop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("010203004005006017")
	require.NoError(t, err)
	assert.Equal(t, "01", c.KdPropinsi)
	assert.Equal(t, "02", c.KdDati2)
	assert.Equal(t, "030", c.KdKecamatan)
	assert.Equal(t, "040", c.KdKelurahan)
	assert.Equal(t, "050", c.KdBlok)
	assert.Equal(t, "0601", c.NoUrut)
	assert.Equal(t, "7", c.KdJnsOp)
}

func TestParseIgnoresFormatting(t *testing.T) {
	dotted, err := Parse("01.02.030.040.050.0601.7")
	require.NoError(t, err)
	plain, err := Parse("010203004005006017")
	require.NoError(t, err)
	assert.Equal(t, plain, dotted)
}

func TestParseRejectsWrongLength(t *testing.T) {
	for _, raw := range []string{"", "0102030040050060", "0102030040050060171", "abcdef"} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrInvalid, "input %q", raw)
	}
}

func TestComposeRoundTrip(t *testing.T) {
	const raw = "327301000100230125"
	c, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, Compose(c))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		value string
		width int
		want  string
	}{
		{"7", 3, "007"},
		{"0601", 4, "0601"},
		{"12345", 4, "1234"},
		{" 42 ", 3, "042"},
		{"ab", 3, "AB"},
		{"abcd", 3, "ABC"},
		{"   ", 3, ""},
		{"", 3, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.value, tt.width), "Normalize(%q, %d)", tt.value, tt.width)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "01.02.030.040.050.0601.7", Format("010203004005006017"))
	assert.Equal(t, "not-a-nop", Format("not-a-nop"))
}
