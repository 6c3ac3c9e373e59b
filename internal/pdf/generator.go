package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the printable e-SPPT for one tax year. The subjek
// detail may be nil when the object has no joined taxpayer row.
func (g *Generator) Generate(sppt *model.SpptLegacy, object *model.SpopDetail) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	dotted := nop.Format(sppt.KdPropinsi + sppt.KdDati2 + sppt.KdKecamatan +
		sppt.KdKelurahan + sppt.KdBlok + sppt.NoUrut + sppt.KdJnsOp)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "SURAT PEMBERITAHUAN PAJAK TERHUTANG", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "PAJAK BUMI DAN BANGUNAN PERDESAAN DAN PERKOTAAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("TAHUN PAJAK %s", sppt.ThnPajakSppt), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("NOP: %s", dotted), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	writeRow := func(label, value string) {
		pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, ": "+value, "", 1, "L", false, 0, "")
	}

	writeRow("Nama Wajib Pajak", sppt.NmWpSppt)
	writeRow("Alamat Wajib Pajak", taxpayerAddress(sppt))
	if object != nil {
		writeRow("Letak Objek Pajak", objectAddress(object))
		writeRow("Kelurahan/Kecamatan", strings.TrimSpace(object.NmKelurahan+" / "+object.NmKecamatan))
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 7, "Uraian", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Luas (m2)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(0, 7, "NJOP (Rp)", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(70, 7, "Bumi", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, formatRupiah(sppt.LuasBumiSppt), "1", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, formatRupiah(sppt.NjopBumiSppt), "1", 1, "R", false, 0, "")
	pdf.CellFormat(70, 7, "Bangunan", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, formatRupiah(sppt.LuasBngSppt), "1", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, formatRupiah(sppt.NjopBngSppt), "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	writeAmount := func(label string, amount int64) {
		pdf.CellFormat(110, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Rp "+formatRupiah(amount), "", 1, "R", false, 0, "")
	}
	writeAmount("NJOP sebagai dasar pengenaan PBB", sppt.NjopSppt)
	writeAmount("NJOPTKP", sppt.NjoptkpSppt)
	writeAmount("PBB yang terhutang", sppt.PbbTerhutangSppt)
	if sppt.FaktorPengurangSppt != 0 {
		writeAmount("Faktor pengurang", sppt.FaktorPengurangSppt)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 8, "PBB YANG HARUS DIBAYAR", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Rp "+formatRupiah(sppt.PbbYgHarusDibayarSppt), "T", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if sppt.TglJatuhTempoSppt != nil {
		pdf.CellFormat(0, 6, "Jatuh tempo: "+sppt.TglJatuhTempoSppt.Format("02-01-2006"), "", 1, "L", false, 0, "")
	}
	if sppt.TglTerbitSppt != nil {
		pdf.CellFormat(0, 6, "Tanggal terbit: "+sppt.TglTerbitSppt.Format("02-01-2006"), "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Dokumen ini dicetak secara elektronik dan sah tanpa tanda tangan.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName builds the attachment name for one year and NOP.
func FileName(year, nop18 string) string {
	return fmt.Sprintf("esppt_%s_%s.pdf", year, nop18)
}

func taxpayerAddress(sppt *model.SpptLegacy) string {
	parts := []string{sppt.JlnWpSppt, sppt.BlokKavNoWpSppt}
	if sppt.RTWpSppt != "" || sppt.RWWpSppt != "" {
		parts = append(parts, fmt.Sprintf("RT %s RW %s", sppt.RTWpSppt, sppt.RWWpSppt))
	}
	parts = append(parts, sppt.KelurahanWpSppt, sppt.KotaWpSppt)
	return joinNonEmpty(parts)
}

func objectAddress(object *model.SpopDetail) string {
	parts := []string{object.JalanOp, object.BlokKavNoOp}
	if object.RTOp != "" || object.RWOp != "" {
		parts = append(parts, fmt.Sprintf("RT %s RW %s", object.RTOp, object.RWOp))
	}
	return joinNonEmpty(parts)
}

func joinNonEmpty(parts []string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, ", ")
}

// formatRupiah renders an amount with Indonesian thousand separators.
func formatRupiah(v int64) string {
	s := fmt.Sprintf("%d", v)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(r)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
