package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
)

type LspopRepository struct {
	db *gorm.DB
}

func NewLspopRepository(db *gorm.DB) *LspopRepository {
	return &LspopRepository{db: db}
}

const lampiranColumns = `
	id, spop_id, nop, no_formulir, jns_pelayanan, kd_jpb, no_bng,
	jns_penggunaan_bng, luas_bangunan_m2, jml_lantai_bng,
	thn_dibangun_bng, thn_renovasi_bng, daya_listrik, kondisi_bng,
	jns_konstruksi_bng, jns_atap_bng, kd_dinding, kd_lantai, kd_langit_langit,
	nilai_sistem_bng, kelas_bangunan_njop, nama_petugas, nip,
	tanggal_pelaksanaan, status, COALESCE(keterangan, '') AS keterangan, created_at`

type lampiranRow struct {
	ID                 string
	SpopID             string
	NOP                string
	NoFormulir         string
	JnsPelayanan       string
	KdJpb              string
	NoBng              int
	JnsPenggunaanBng   string
	LuasBangunanM2     float64
	JmlLantaiBng       int
	ThnDibangunBng     string
	ThnRenovasiBng     string
	DayaListrik        int
	KondisiBng         string
	JnsKonstruksiBng   string
	JnsAtapBng         string
	KdDinding          string
	KdLantai           string
	KdLangitLangit     string
	NilaiSistemBng     int64
	KelasBangunanNjop  int
	NamaPetugas        string
	Nip                string
	TanggalPelaksanaan *time.Time
	Status             string
	Keterangan         string
	CreatedAt          time.Time
}

func (row lampiranRow) toModel() model.Lampiran {
	return model.Lampiran{
		ID:                 row.ID,
		SpopID:             row.SpopID,
		NOP:                row.NOP,
		NoFormulir:         row.NoFormulir,
		JnsPelayanan:       row.JnsPelayanan,
		KdJpb:              row.KdJpb,
		NoBng:              row.NoBng,
		JnsPenggunaanBng:   row.JnsPenggunaanBng,
		LuasBangunanM2:     row.LuasBangunanM2,
		JmlLantaiBng:       row.JmlLantaiBng,
		ThnDibangunBng:     row.ThnDibangunBng,
		ThnRenovasiBng:     row.ThnRenovasiBng,
		DayaListrik:        row.DayaListrik,
		KondisiBng:         row.KondisiBng,
		JnsKonstruksiBng:   row.JnsKonstruksiBng,
		JnsAtapBng:         row.JnsAtapBng,
		KdDinding:          row.KdDinding,
		KdLantai:           row.KdLantai,
		KdLangitLangit:     row.KdLangitLangit,
		NilaiSistemBng:     row.NilaiSistemBng,
		KelasBangunanNjop:  row.KelasBangunanNjop,
		NamaPetugas:        row.NamaPetugas,
		NIP:                row.Nip,
		TanggalPelaksanaan: row.TanggalPelaksanaan,
		Status:             row.Status,
		Keterangan:         row.Keterangan,
		CreatedAt:          row.CreatedAt,
	}
}

func (r *LspopRepository) Create(ctx context.Context, l *model.Lampiran) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO lampiran_spop (
			id, spop_id, nop, no_formulir, jns_pelayanan, kd_jpb, no_bng,
			jns_penggunaan_bng, luas_bangunan_m2, jml_lantai_bng,
			thn_dibangun_bng, thn_renovasi_bng, daya_listrik, kondisi_bng,
			jns_konstruksi_bng, jns_atap_bng, kd_dinding, kd_lantai, kd_langit_langit,
			nilai_sistem_bng, kelas_bangunan_njop, nama_petugas, nip,
			tanggal_pelaksanaan, status, keterangan
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.SpopID, l.NOP, l.NoFormulir, l.JnsPelayanan, l.KdJpb, l.NoBng,
		l.JnsPenggunaanBng, l.LuasBangunanM2, l.JmlLantaiBng,
		l.ThnDibangunBng, l.ThnRenovasiBng, l.DayaListrik, l.KondisiBng,
		l.JnsKonstruksiBng, l.JnsAtapBng, l.KdDinding, l.KdLantai, l.KdLangitLangit,
		l.NilaiSistemBng, l.KelasBangunanNjop, l.NamaPetugas, l.NIP,
		l.TanggalPelaksanaan, l.Status, l.Keterangan,
	).Error
}

func (r *LspopRepository) List(ctx context.Context, nopFilter string, offset, limit int) ([]model.Lampiran, int64, error) {
	where := ""
	var args []interface{}
	if nopFilter != "" {
		where = ` WHERE nop = ?`
		args = append(args, nopFilter)
	}

	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM lampiran_spop`+where, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []lampiranRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT`+lampiranColumns+` FROM lampiran_spop`+where+` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		append(args, limit, offset)...,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.Lampiran, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, total, nil
}

func (r *LspopRepository) GetByID(ctx context.Context, id string) (*model.Lampiran, error) {
	var row lampiranRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT`+lampiranColumns+` FROM lampiran_spop WHERE id = ? LIMIT 1`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	l := row.toModel()
	return &l, nil
}

// Update applies the given column set, callers pass only changed fields.
func (r *LspopRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
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
		fmt.Sprintf(`UPDATE lampiran_spop SET %s WHERE id = ?`, strings.Join(assignments, ", ")),
		args...,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Raw(
			`SELECT COUNT(*) FROM lampiran_spop WHERE id = ?`, id,
		).Scan(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (r *LspopRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM lampiran_spop WHERE id = ?`, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
