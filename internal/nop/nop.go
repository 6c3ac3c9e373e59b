// Package nop handles the 18-digit tax object number (Nomor Objek
// Pajak) used as the composite key across SISMIOP tables.
package nop

import (
	"errors"
	"strings"
	"unicode"
)

// ErrInvalid is returned when a value does not reduce to exactly 18 digits.
var ErrInvalid = errors.New("nop must contain exactly 18 digits")

// Components are the seven fixed-width segments of a NOP.
type Components struct {
	KdPropinsi  string // 2 digits
	KdDati2     string // 2 digits
	KdKecamatan string // 3 digits
	KdKelurahan string // 3 digits
	KdBlok      string // 3 digits
	NoUrut      string // 4 digits
	KdJnsOp     string // 1 digit
}

// Digits strips every non-digit rune.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse splits a NOP into its components. Formatting characters such as
// dots are ignored, but the remaining digits must number exactly 18.
func Parse(raw string) (Components, error) {
	digits := Digits(raw)
	if len(digits) != 18 {
		return Components{}, ErrInvalid
	}
	return Components{
		KdPropinsi:  digits[0:2],
		KdDati2:     digits[2:4],
		KdKecamatan: digits[4:7],
		KdKelurahan: digits[7:10],
		KdBlok:      digits[10:13],
		NoUrut:      digits[13:17],
		KdJnsOp:     digits[17:18],
	}, nil
}

// Compose concatenates the components back into the 18-digit form.
func Compose(c Components) string {
	return c.KdPropinsi + c.KdDati2 + c.KdKecamatan + c.KdKelurahan + c.KdBlok + c.NoUrut + c.KdJnsOp
}

// Normalize coerces a user-supplied code to a fixed width. Digit input
// is zero-padded on the left and truncated to width; non-digit residue
// is uppercased and truncated; blank input collapses to "".
func Normalize(value string, width int) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
	if stripped == "" {
		return ""
	}
	digits := Digits(stripped)
	if digits != "" {
		for len(digits) < width {
			digits = "0" + digits
		}
		return digits[:width]
	}
	upper := strings.ToUpper(stripped)
	if len(upper) > width {
		upper = upper[:width]
	}
	return upper
}

// Format renders the dotted display form xx.xx.xxx.xxx.xxx.xxxx.x.
// Input that is not a valid NOP is returned unchanged.
func Format(raw string) string {
	c, err := Parse(raw)
	if err != nil {
		return raw
	}
	return strings.Join([]string{
		c.KdPropinsi, c.KdDati2, c.KdKecamatan, c.KdKelurahan, c.KdBlok, c.NoUrut, c.KdJnsOp,
	}, ".")
}
