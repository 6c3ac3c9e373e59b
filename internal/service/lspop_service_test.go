package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingJpbFields(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateLspopInput
		missing []string
	}{
		{
			name:    "jpb 01 without interior codes",
			input:   CreateLspopInput{KdJpb: "01"},
			missing: []string{"kd_dinding", "kd_langit_langit", "kd_lantai"},
		},
		{
			name: "jpb 01 complete",
			input: CreateLspopInput{
				KdJpb: "01", KdDinding: "3", KdLantai: "2", KdLangitLangit: "2",
			},
		},
		{
			name:    "jpb 02 without construction",
			input:   CreateLspopInput{KdJpb: "02", JnsAtapBng: "4"},
			missing: []string{"jns_konstruksi_bng"},
		},
		{
			name:    "jpb 03 without floors and system value",
			input:   CreateLspopInput{KdJpb: "03", JnsKonstruksiBng: "2"},
			missing: []string{"jml_lantai_bng", "nilai_sistem_bng"},
		},
		{
			name:  "unknown jpb has no required fields",
			input: CreateLspopInput{KdJpb: "09"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, missingJpbFields(tt.input))
		})
	}
}

func TestCodeLabelIgnoresLeadingZeros(t *testing.T) {
	assert.Equal(t, "Beton", codeLabel(dindingLabels, "02"))
	assert.Equal(t, "Beton", codeLabel(dindingLabels, "2"))
	assert.Equal(t, "", codeLabel(dindingLabels, "99"))
}

func TestJnsTransaksiLabel(t *testing.T) {
	assert.Equal(t, "pendaftaran", JnsTransaksiLabel("1"))
	assert.Equal(t, "pemuktahiran", JnsTransaksiLabel("2"))
	assert.Equal(t, "penghapusan", JnsTransaksiLabel("3"))
	assert.Equal(t, "", JnsTransaksiLabel("9"))
}
