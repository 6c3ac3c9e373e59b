package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adiprasetyo/simpbb/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the registration export workbook: one summary sheet
// and one row per intake with the resolved wilayah and subjek labels.
func (g *Generator) Generate(registrations []model.RegistrationDetail) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Pendaftaran SPOP"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"No",
		"NOP",
		"No Formulir",
		"Nama Lengkap",
		"NIK",
		"Status Subjek",
		"Pekerjaan",
		"Provinsi",
		"Kabupaten/Kota",
		"Kecamatan",
		"Kelurahan",
		"Blok",
		"No Urut",
		"Jenis Tanah",
		"Luas Tanah (m2)",
		"Status",
		"Petugas",
		"Tanggal Pelaksanaan",
		"Tanggal Pengajuan",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, reg := range registrations {
		row := i + 2
		values := []interface{}{
			i + 1,
			reg.NOP,
			reg.NoFormulir,
			reg.NamaLengkap,
			reg.NIK,
			reg.StatusSubjekLabel,
			reg.PekerjaanSubjekLabel,
			reg.ProvinsiDetail.Nama,
			reg.KabupatenDetail.Nama,
			reg.KecamatanDetail.Nama,
			reg.KelurahanDetail.Nama,
			reg.BlokOp,
			reg.NoUrutOp,
			reg.JenisTanahLabel,
			reg.LuasTanah,
			reg.Status,
			reg.NamaPetugas,
			formatDate(reg.TanggalPelaksanaan),
			reg.SubmittedAt.Format("02-01-2006 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 5)
	_ = file.SetColWidth(sheet, "B", "C", 24)
	_ = file.SetColWidth(sheet, "D", "D", 30)
	_ = file.SetColWidth(sheet, "E", "E", 20)
	_ = file.SetColWidth(sheet, "F", "N", 18)
	_ = file.SetColWidth(sheet, "O", "S", 16)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName builds the attachment name for an export generated now.
func FileName(now time.Time) string {
	return fmt.Sprintf("pendaftaran_spop_%s.xlsx", now.Format("20060102_150405"))
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02-01-2006")
}
