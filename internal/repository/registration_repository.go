package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

const registrationColumns = `
	id, nop, no_formulir, nama_awal, nik_awal, alamat_rumah_awal, no_telp_awal,
	provinsi_op, kabupaten_op, kecamatan_op, kelurahan_op, blok_op, no_urut_op, kode_khusus,
	nama_lengkap, nik, status_subjek, pekerjaan_subjek, npwp, no_telp_subjek,
	jalan_subjek, blok_kav_no_subjek, kelurahan_subjek, kecamatan_subjek,
	kabupaten_subjek, provinsi_subjek, rt_subjek, rw_subjek, kode_pos_subjek,
	jenis_tanah, luas_tanah,
	file_ktp, file_sertifikat, file_sppt_tetangga, file_foto_objek, file_surat_kuasa, file_pendukung,
	tanggal_pelaksanaan, foto_objek_pajak, nama_petugas, nip, status,
	COALESCE(keterangan, '') AS keterangan,
	kelas_bumi_njop, kelas_bangunan_njop, submitted_at`

type registrationRow struct {
	ID                 string
	NOP                string
	NoFormulir         string
	NamaAwal           string
	NikAwal            string
	AlamatRumahAwal    string
	NoTelpAwal         string
	ProvinsiOp         int
	KabupatenOp        int
	KecamatanOp        int
	KelurahanOp        int
	BlokOp             string
	NoUrutOp           string
	KodeKhusus         int
	NamaLengkap        string
	Nik                string
	StatusSubjek       int
	PekerjaanSubjek    int
	Npwp               string
	NoTelpSubjek       string
	JalanSubjek        string
	BlokKavNoSubjek    string
	KelurahanSubjek    int
	KecamatanSubjek    int
	KabupatenSubjek    int
	ProvinsiSubjek     int
	RtSubjek           string
	RwSubjek           string
	KodePosSubjek      string
	JenisTanah         int
	LuasTanah          float64
	FileKtp            string
	FileSertifikat     string
	FileSpptTetangga   string
	FileFotoObjek      string
	FileSuratKuasa     string
	FilePendukung      string
	TanggalPelaksanaan *time.Time
	FotoObjekPajak     string
	NamaPetugas        string
	Nip                string
	Status             string
	Keterangan         string
	KelasBumiNjop      int
	KelasBangunanNjop  int
	SubmittedAt        time.Time
}

func (row registrationRow) toModel() model.Registration {
	return model.Registration{
		ID:                 row.ID,
		NOP:                row.NOP,
		NoFormulir:         row.NoFormulir,
		NamaAwal:           row.NamaAwal,
		NikAwal:            row.NikAwal,
		AlamatRumahAwal:    row.AlamatRumahAwal,
		NoTelpAwal:         row.NoTelpAwal,
		ProvinsiOp:         row.ProvinsiOp,
		KabupatenOp:        row.KabupatenOp,
		KecamatanOp:        row.KecamatanOp,
		KelurahanOp:        row.KelurahanOp,
		BlokOp:             row.BlokOp,
		NoUrutOp:           row.NoUrutOp,
		KodeKhusus:         row.KodeKhusus,
		NamaLengkap:        row.NamaLengkap,
		NIK:                row.Nik,
		StatusSubjek:       row.StatusSubjek,
		PekerjaanSubjek:    row.PekerjaanSubjek,
		NPWP:               row.Npwp,
		NoTelpSubjek:       row.NoTelpSubjek,
		JalanSubjek:        row.JalanSubjek,
		BlokKavNoSubjek:    row.BlokKavNoSubjek,
		KelurahanSubjek:    row.KelurahanSubjek,
		KecamatanSubjek:    row.KecamatanSubjek,
		KabupatenSubjek:    row.KabupatenSubjek,
		ProvinsiSubjek:     row.ProvinsiSubjek,
		RTSubjek:           row.RtSubjek,
		RWSubjek:           row.RwSubjek,
		KodePosSubjek:      row.KodePosSubjek,
		JenisTanah:         row.JenisTanah,
		LuasTanah:          row.LuasTanah,
		FileKtp:            row.FileKtp,
		FileSertifikat:     row.FileSertifikat,
		FileSpptTetangga:   row.FileSpptTetangga,
		FileFotoObjek:      row.FileFotoObjek,
		FileSuratKuasa:     row.FileSuratKuasa,
		FilePendukung:      row.FilePendukung,
		TanggalPelaksanaan: row.TanggalPelaksanaan,
		FotoObjekPajak:     row.FotoObjekPajak,
		NamaPetugas:        row.NamaPetugas,
		NIP:                row.Nip,
		Status:             row.Status,
		Keterangan:         row.Keterangan,
		KelasBumiNjop:      row.KelasBumiNjop,
		KelasBangunanNjop:  row.KelasBangunanNjop,
		SubmittedAt:        row.SubmittedAt,
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO spop_registration (
			id, nop, no_formulir, nama_awal, nik_awal, alamat_rumah_awal, no_telp_awal,
			provinsi_op, kabupaten_op, kecamatan_op, kelurahan_op, blok_op, no_urut_op, kode_khusus,
			nama_lengkap, nik, status_subjek, pekerjaan_subjek, npwp, no_telp_subjek,
			jalan_subjek, blok_kav_no_subjek, kelurahan_subjek, kecamatan_subjek,
			kabupaten_subjek, provinsi_subjek, rt_subjek, rw_subjek, kode_pos_subjek,
			jenis_tanah, luas_tanah,
			file_ktp, file_sertifikat, file_sppt_tetangga, file_foto_objek, file_surat_kuasa, file_pendukung,
			status, keterangan
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.ID, reg.NOP, reg.NoFormulir, reg.NamaAwal, reg.NikAwal, reg.AlamatRumahAwal, reg.NoTelpAwal,
		reg.ProvinsiOp, reg.KabupatenOp, reg.KecamatanOp, reg.KelurahanOp, reg.BlokOp, reg.NoUrutOp, reg.KodeKhusus,
		reg.NamaLengkap, reg.NIK, reg.StatusSubjek, reg.PekerjaanSubjek, reg.NPWP, reg.NoTelpSubjek,
		reg.JalanSubjek, reg.BlokKavNoSubjek, reg.KelurahanSubjek, reg.KecamatanSubjek,
		reg.KabupatenSubjek, reg.ProvinsiSubjek, reg.RTSubjek, reg.RWSubjek, reg.KodePosSubjek,
		reg.JenisTanah, reg.LuasTanah,
		reg.FileKtp, reg.FileSertifikat, reg.FileSpptTetangga, reg.FileFotoObjek, reg.FileSuratKuasa, reg.FilePendukung,
		reg.Status, reg.Keterangan,
	).Error
}

func (r *RegistrationRepository) ExistsByNOP(ctx context.Context, nop string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM spop_registration WHERE nop = ?`, nop,
	).Scan(&count).Error
	return count > 0, err
}

// NextKodeKhusus returns max(kode_khusus)+1 across all registrations.
func (r *RegistrationRepository) NextKodeKhusus(ctx context.Context) (int, error) {
	var current int
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(MAX(kode_khusus), 0) FROM spop_registration`,
	).Scan(&current).Error
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}

func (r *RegistrationRepository) List(ctx context.Context, offset, limit int) ([]model.Registration, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM spop_registration`).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []registrationRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT`+registrationColumns+` FROM spop_registration ORDER BY submitted_at DESC LIMIT ? OFFSET ?`,
		limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	regs := make([]model.Registration, 0, len(rows))
	for _, row := range rows {
		regs = append(regs, row.toModel())
	}
	return regs, total, nil
}

// ListAll returns every registration newest first, for exports.
func (r *RegistrationRepository) ListAll(ctx context.Context) ([]model.Registration, error) {
	var rows []registrationRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT` + registrationColumns + ` FROM spop_registration ORDER BY submitted_at DESC`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	regs := make([]model.Registration, 0, len(rows))
	for _, row := range rows {
		regs = append(regs, row.toModel())
	}
	return regs, nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*model.Registration, error) {
	var row registrationRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT`+registrationColumns+` FROM spop_registration WHERE id = ? LIMIT 1`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	reg := row.toModel()
	return &reg, nil
}

func (r *RegistrationRepository) GetByNOP(ctx context.Context, nop string) (*model.Registration, error) {
	var row registrationRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT`+registrationColumns+` FROM spop_registration WHERE nop = ? LIMIT 1`, nop,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	reg := row.toModel()
	return &reg, nil
}

// Update applies the given column set. Callers pass only changed fields.
func (r *RegistrationRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	assignments := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for column, value := range fields {
		assignments = append(assignments, column+" = ?")
		args = append(args, value)
	}
	args = append(args, id)

	res := r.db.WithContext(ctx).Exec(
		fmt.Sprintf(`UPDATE spop_registration SET %s WHERE id = ?`, strings.Join(assignments, ", ")),
		args...,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Raw(
			`SELECT COUNT(*) FROM spop_registration WHERE id = ?`, id,
		).Scan(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM spop_registration WHERE id = ?`, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
