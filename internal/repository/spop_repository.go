package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
)

type SpopRepository struct {
	db *gorm.DB
}

func NewSpopRepository(db *gorm.DB) *SpopRepository {
	return &SpopRepository{db: db}
}

// SpopFilter narrows the legacy tax object listing. Components wins over
// the per-code prefixes when set.
type SpopFilter struct {
	Components  *nop.Components
	KdPropinsi  string
	KdDati2     string
	KdKecamatan string
	KdKelurahan string
	KdBlok      string
	KdJnsOp     string
	NmWp        string
	JalanOp     string
}

const spopColumns = `
	s.kd_propinsi, s.kd_dati2, s.kd_kecamatan, s.kd_kelurahan, s.kd_blok, s.no_urut, s.kd_jns_op,
	TRIM(s.subjek_pajak_id) AS subjek_pajak_id,
	s.no_formulir_spop, s.jns_transaksi_op,
	COALESCE(s.no_persil, '') AS no_persil,
	s.jalan_op,
	COALESCE(s.blok_kav_no_op, '') AS blok_kav_no_op,
	COALESCE(s.kelurahan_op, '') AS kelurahan_op,
	COALESCE(s.rw_op, '') AS rw_op,
	COALESCE(s.rt_op, '') AS rt_op,
	s.kd_status_wp, s.luas_bumi,
	COALESCE(s.kd_znt, '') AS kd_znt,
	s.jns_bumi, s.nilai_sistem_bumi,
	s.tgl_pendataan_op,
	COALESCE(s.nm_pendataan_op, '') AS nm_pendataan_op,
	COALESCE(s.nip_pendata, '') AS nip_pendata,
	s.tgl_pemeriksaan_op,
	COALESCE(s.nm_pemeriksaan_op, '') AS nm_pemeriksaan_op,
	COALESCE(s.nip_pemeriksa_op, '') AS nip_pemeriksa_op,
	s.tgl_perekaman_op,
	COALESCE(s.nip_perekam_op, '') AS nip_perekam_op,
	COALESCE(s.kd_propinsi_bersama, '') AS kd_propinsi_bersama,
	COALESCE(s.kd_dati2_bersama, '') AS kd_dati2_bersama,
	COALESCE(s.kd_kecamatan_bersama, '') AS kd_kecamatan_bersama,
	COALESCE(s.kd_kelurahan_bersama, '') AS kd_kelurahan_bersama,
	COALESCE(s.kd_blok_bersama, '') AS kd_blok_bersama,
	COALESCE(s.no_urut_bersama, '') AS no_urut_bersama,
	COALESCE(s.kd_jns_op_bersama, '') AS kd_jns_op_bersama,
	COALESCE(s.kd_propinsi_asal, '') AS kd_propinsi_asal,
	COALESCE(s.kd_dati2_asal, '') AS kd_dati2_asal,
	COALESCE(s.kd_kecamatan_asal, '') AS kd_kecamatan_asal,
	COALESCE(s.kd_kelurahan_asal, '') AS kd_kelurahan_asal,
	COALESCE(s.kd_blok_asal, '') AS kd_blok_asal,
	COALESCE(s.no_urut_asal, '') AS no_urut_asal,
	COALESCE(s.kd_jns_op_asal, '') AS kd_jns_op_asal,
	COALESCE(s.no_sppt_lama, '') AS no_sppt_lama`

func componentConditions(alias string) string {
	return alias + `.kd_propinsi = ? AND ` + alias + `.kd_dati2 = ? AND ` +
		alias + `.kd_kecamatan = ? AND ` + alias + `.kd_kelurahan = ? AND ` +
		alias + `.kd_blok = ? AND ` + alias + `.no_urut = ? AND ` + alias + `.kd_jns_op = ?`
}

func componentArgs(c nop.Components) []interface{} {
	return []interface{}{
		c.KdPropinsi, c.KdDati2, c.KdKecamatan, c.KdKelurahan, c.KdBlok, c.NoUrut, c.KdJnsOp,
	}
}

func (f SpopFilter) where() (string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.Components != nil {
		conds = append(conds, componentConditions("s"))
		args = append(args, componentArgs(*f.Components)...)
	} else {
		prefixes := []struct {
			column string
			value  string
		}{
			{"s.kd_propinsi", f.KdPropinsi},
			{"s.kd_dati2", f.KdDati2},
			{"s.kd_kecamatan", f.KdKecamatan},
			{"s.kd_kelurahan", f.KdKelurahan},
			{"s.kd_blok", f.KdBlok},
		}
		for _, p := range prefixes {
			if p.value != "" {
				conds = append(conds, p.column+" LIKE ?")
				args = append(args, p.value+"%")
			}
		}
	}
	if f.KdJnsOp != "" {
		conds = append(conds, "s.kd_jns_op = ?")
		args = append(args, f.KdJnsOp)
	}
	if f.NmWp != "" {
		conds = append(conds, "LOWER(TRIM(COALESCE(d.nm_wp, ''))) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.NmWp)+"%")
	}
	if f.JalanOp != "" {
		conds = append(conds, "LOWER(s.jalan_op) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.JalanOp)+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// SpopListItem is one row of the legacy search listing.
type SpopListItem struct {
	Components     nop.Components
	NmWp           string
	JalanOp        string
	JnsTransaksiOp string
	NoFormulirSpop string
}

func (r *SpopRepository) List(ctx context.Context, f SpopFilter, offset, limit int) ([]SpopListItem, int64, error) {
	where, args := f.where()
	join := ` FROM spop s LEFT JOIN dat_subjek_pajak d ON TRIM(d.subjek_pajak_id) = TRIM(s.subjek_pajak_id)`

	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*)`+join+where, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		KdPropinsi     string
		KdDati2        string
		KdKecamatan    string
		KdKelurahan    string
		KdBlok         string
		NoUrut         string
		KdJnsOp        string
		NmWp           string
		JalanOp        string
		JnsTransaksiOp string
		NoFormulirSpop string
	}
	query := `
		SELECT
			s.kd_propinsi, s.kd_dati2, s.kd_kecamatan, s.kd_kelurahan, s.kd_blok, s.no_urut, s.kd_jns_op,
			TRIM(COALESCE(d.nm_wp, '')) AS nm_wp,
			s.jalan_op, s.jns_transaksi_op, s.no_formulir_spop` + join + where + `
		ORDER BY s.kd_propinsi, s.kd_dati2, s.kd_kecamatan, s.kd_kelurahan, s.kd_blok, s.no_urut, s.kd_jns_op
		LIMIT ? OFFSET ?`
	if err := r.db.WithContext(ctx).Raw(query, append(args, limit, offset)...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]SpopListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, SpopListItem{
			Components: nop.Components{
				KdPropinsi:  row.KdPropinsi,
				KdDati2:     row.KdDati2,
				KdKecamatan: row.KdKecamatan,
				KdKelurahan: row.KdKelurahan,
				KdBlok:      row.KdBlok,
				NoUrut:      row.NoUrut,
				KdJnsOp:     row.KdJnsOp,
			},
			NmWp:           row.NmWp,
			JalanOp:        row.JalanOp,
			JnsTransaksiOp: row.JnsTransaksiOp,
			NoFormulirSpop: row.NoFormulirSpop,
		})
	}
	return items, total, nil
}

type spopRow struct {
	KdPropinsi         string
	KdDati2            string
	KdKecamatan        string
	KdKelurahan        string
	KdBlok             string
	NoUrut             string
	KdJnsOp            string
	SubjekPajakID      string
	NoFormulirSpop     string
	JnsTransaksiOp     string
	NoPersil           string
	JalanOp            string
	BlokKavNoOp        string
	KelurahanOp        string
	RwOp               string
	RtOp               string
	KdStatusWp         string
	LuasBumi           float64
	KdZnt              string
	JnsBumi            string
	NilaiSistemBumi    int64
	TglPendataanOp     *time.Time
	NmPendataanOp      string
	NipPendata         string
	TglPemeriksaanOp   *time.Time
	NmPemeriksaanOp    string
	NipPemeriksaOp     string
	TglPerekamanOp     time.Time
	NipPerekamOp       string
	KdPropinsiBersama  string
	KdDati2Bersama     string
	KdKecamatanBersama string
	KdKelurahanBersama string
	KdBlokBersama      string
	NoUrutBersama      string
	KdJnsOpBersama     string
	KdPropinsiAsal     string
	KdDati2Asal        string
	KdKecamatanAsal    string
	KdKelurahanAsal    string
	KdBlokAsal         string
	NoUrutAsal         string
	KdJnsOpAsal        string
	NoSpptLama         string
}

func (row spopRow) toModel() model.Spop {
	return model.Spop{
		KdPropinsi:         row.KdPropinsi,
		KdDati2:            row.KdDati2,
		KdKecamatan:        row.KdKecamatan,
		KdKelurahan:        row.KdKelurahan,
		KdBlok:             row.KdBlok,
		NoUrut:             row.NoUrut,
		KdJnsOp:            row.KdJnsOp,
		SubjekPajakID:      row.SubjekPajakID,
		NoFormulirSpop:     row.NoFormulirSpop,
		JnsTransaksiOp:     row.JnsTransaksiOp,
		NoPersil:           row.NoPersil,
		JalanOp:            row.JalanOp,
		BlokKavNoOp:        row.BlokKavNoOp,
		KelurahanOp:        row.KelurahanOp,
		RWOp:               row.RwOp,
		RTOp:               row.RtOp,
		KdStatusWp:         row.KdStatusWp,
		LuasBumi:           row.LuasBumi,
		KdZnt:              row.KdZnt,
		JnsBumi:            row.JnsBumi,
		NilaiSistemBumi:    row.NilaiSistemBumi,
		TglPendataanOp:     row.TglPendataanOp,
		NmPendataanOp:      row.NmPendataanOp,
		NipPendata:         row.NipPendata,
		TglPemeriksaanOp:   row.TglPemeriksaanOp,
		NmPemeriksaanOp:    row.NmPemeriksaanOp,
		NipPemeriksaOp:     row.NipPemeriksaOp,
		TglPerekamanOp:     row.TglPerekamanOp,
		NipPerekamOp:       row.NipPerekamOp,
		KdPropinsiBersama:  row.KdPropinsiBersama,
		KdDati2Bersama:     row.KdDati2Bersama,
		KdKecamatanBersama: row.KdKecamatanBersama,
		KdKelurahanBersama: row.KdKelurahanBersama,
		KdBlokBersama:      row.KdBlokBersama,
		NoUrutBersama:      row.NoUrutBersama,
		KdJnsOpBersama:     row.KdJnsOpBersama,
		KdPropinsiAsal:     row.KdPropinsiAsal,
		KdDati2Asal:        row.KdDati2Asal,
		KdKecamatanAsal:    row.KdKecamatanAsal,
		KdKelurahanAsal:    row.KdKelurahanAsal,
		KdBlokAsal:         row.KdBlokAsal,
		NoUrutAsal:         row.NoUrutAsal,
		KdJnsOpAsal:        row.KdJnsOpAsal,
		NoSpptLama:         row.NoSpptLama,
	}
}

// GetDetail loads the tax object joined with its subjek and wilayah names.
func (r *SpopRepository) GetDetail(ctx context.Context, c nop.Components) (*model.SpopDetail, error) {
	var row struct {
		spopRow
		SubjekID      string
		NmWp          string
		JalanWp       string
		BlokKavNoWp   string
		RwWp          string
		RtWp          string
		KelurahanWp   string
		KotaWp        string
		KdPosWp       string
		TelpWp        string
		SubjekNpwp    string
		EmailWp       string
		StatusPekerja string
		NmPropinsi    string
		NmDati2       string
		NmKecamatan   string
		NmKelurahan   string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+spopColumns+`,
			TRIM(COALESCE(d.subjek_pajak_id, '')) AS subjek_id,
			TRIM(COALESCE(d.nm_wp, '')) AS nm_wp,
			TRIM(COALESCE(d.jalan_wp, '')) AS jalan_wp,
			TRIM(COALESCE(d.blok_kav_no_wp, '')) AS blok_kav_no_wp,
			TRIM(COALESCE(d.rw_wp, '')) AS rw_wp,
			TRIM(COALESCE(d.rt_wp, '')) AS rt_wp,
			TRIM(COALESCE(d.kelurahan_wp, '')) AS kelurahan_wp,
			TRIM(COALESCE(d.kota_wp, '')) AS kota_wp,
			TRIM(COALESCE(d.kd_pos_wp, '')) AS kd_pos_wp,
			TRIM(COALESCE(d.telp_wp, '')) AS telp_wp,
			TRIM(COALESCE(d.npwp, '')) AS subjek_npwp,
			TRIM(COALESCE(d.email_wp, '')) AS email_wp,
			COALESCE(d.status_pekerjaan_wp, '') AS status_pekerja,
			TRIM(COALESCE(rp.nm_propinsi, '')) AS nm_propinsi,
			TRIM(COALESCE(rd.nm_dati2, '')) AS nm_dati2,
			TRIM(COALESCE(rc.nm_kecamatan, '')) AS nm_kecamatan,
			TRIM(COALESCE(rk.nm_kelurahan, '')) AS nm_kelurahan
		FROM spop s
		LEFT JOIN dat_subjek_pajak d ON TRIM(d.subjek_pajak_id) = TRIM(s.subjek_pajak_id)
		LEFT JOIN ref_propinsi rp ON rp.kd_propinsi = SUBSTR(s.kd_propinsi, 1, 2)
		LEFT JOIN ref_dati2 rd ON rd.kd_propinsi = SUBSTR(s.kd_propinsi, 1, 2)
			AND rd.kd_dati2 = SUBSTR(s.kd_dati2, 1, 2)
		LEFT JOIN ref_kecamatan rc ON rc.kd_propinsi = SUBSTR(s.kd_propinsi, 1, 2)
			AND rc.kd_dati2 = SUBSTR(s.kd_dati2, 1, 2)
			AND rc.kd_kecamatan = SUBSTR(s.kd_kecamatan, 1, 3)
		LEFT JOIN ref_kelurahan rk ON rk.kd_propinsi = SUBSTR(s.kd_propinsi, 1, 2)
			AND rk.kd_dati2 = SUBSTR(s.kd_dati2, 1, 2)
			AND rk.kd_kecamatan = SUBSTR(s.kd_kecamatan, 1, 3)
			AND rk.kd_kelurahan = SUBSTR(s.kd_kelurahan, 1, 3)
		WHERE `+componentConditions("s")+`
		LIMIT 1`, componentArgs(c)...).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.KdPropinsi == "" {
		return nil, gorm.ErrRecordNotFound
	}

	detail := &model.SpopDetail{
		Spop:        row.spopRow.toModel(),
		NmPropinsi:  row.NmPropinsi,
		NmDati2:     row.NmDati2,
		NmKecamatan: row.NmKecamatan,
		NmKelurahan: row.NmKelurahan,
	}
	if row.SubjekID != "" {
		detail.Subjek = &model.SubjekPajak{
			SubjekPajakID:     row.SubjekID,
			NmWp:              row.NmWp,
			JalanWp:           row.JalanWp,
			BlokKavNoWp:       row.BlokKavNoWp,
			RWWp:              row.RwWp,
			RTWp:              row.RtWp,
			KelurahanWp:       row.KelurahanWp,
			KotaWp:            row.KotaWp,
			KdPosWp:           row.KdPosWp,
			TelpWp:            row.TelpWp,
			NPWP:              row.SubjekNpwp,
			EmailWp:           row.EmailWp,
			StatusPekerjaanWp: row.StatusPekerja,
		}
	}
	return detail, nil
}

func (r *SpopRepository) Exists(ctx context.Context, c nop.Components) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM spop s WHERE `+componentConditions("s"), componentArgs(c)...,
	).Scan(&count).Error
	return count > 0, err
}

func (r *SpopRepository) SubjekExists(ctx context.Context, subjekPajakID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM dat_subjek_pajak WHERE TRIM(subjek_pajak_id) = ?`,
		strings.TrimSpace(subjekPajakID),
	).Scan(&count).Error
	return count > 0, err
}

func (r *SpopRepository) FormNumberExists(ctx context.Context, noFormulir string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM spop WHERE no_formulir_spop = ?`, noFormulir,
	).Scan(&count).Error
	return count > 0, err
}

func (r *SpopRepository) Create(ctx context.Context, s *model.Spop) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO spop (
			kd_propinsi, kd_dati2, kd_kecamatan, kd_kelurahan, kd_blok, no_urut, kd_jns_op,
			subjek_pajak_id, no_formulir_spop, jns_transaksi_op, no_persil,
			jalan_op, blok_kav_no_op, kelurahan_op, rw_op, rt_op,
			kd_status_wp, luas_bumi, kd_znt, jns_bumi, nilai_sistem_bumi,
			tgl_pendataan_op, nm_pendataan_op, nip_pendata,
			tgl_pemeriksaan_op, nm_pemeriksaan_op, nip_pemeriksa_op,
			kd_propinsi_bersama, kd_dati2_bersama, kd_kecamatan_bersama, kd_kelurahan_bersama,
			kd_blok_bersama, no_urut_bersama, kd_jns_op_bersama,
			kd_propinsi_asal, kd_dati2_asal, kd_kecamatan_asal, kd_kelurahan_asal,
			kd_blok_asal, no_urut_asal, kd_jns_op_asal, no_sppt_lama
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.KdPropinsi, s.KdDati2, s.KdKecamatan, s.KdKelurahan, s.KdBlok, s.NoUrut, s.KdJnsOp,
		s.SubjekPajakID, s.NoFormulirSpop, s.JnsTransaksiOp, nullable(s.NoPersil),
		s.JalanOp, nullable(s.BlokKavNoOp), nullable(s.KelurahanOp), nullable(s.RWOp), nullable(s.RTOp),
		s.KdStatusWp, s.LuasBumi, nullable(s.KdZnt), s.JnsBumi, s.NilaiSistemBumi,
		s.TglPendataanOp, nullable(s.NmPendataanOp), nullable(s.NipPendata),
		s.TglPemeriksaanOp, nullable(s.NmPemeriksaanOp), nullable(s.NipPemeriksaOp),
		nullable(s.KdPropinsiBersama), nullable(s.KdDati2Bersama), nullable(s.KdKecamatanBersama), nullable(s.KdKelurahanBersama),
		nullable(s.KdBlokBersama), nullable(s.NoUrutBersama), nullable(s.KdJnsOpBersama),
		nullable(s.KdPropinsiAsal), nullable(s.KdDati2Asal), nullable(s.KdKecamatanAsal), nullable(s.KdKelurahanAsal),
		nullable(s.KdBlokAsal), nullable(s.NoUrutAsal), nullable(s.KdJnsOpAsal), nullable(s.NoSpptLama),
	).Error
}

func (r *SpopRepository) Update(ctx context.Context, s *model.Spop) error {
	args := []interface{}{
		s.SubjekPajakID, s.JnsTransaksiOp, s.JalanOp, nullable(s.BlokKavNoOp), nullable(s.KelurahanOp),
		nullable(s.RWOp), nullable(s.RTOp), s.KdStatusWp, s.LuasBumi, nullable(s.KdZnt),
		s.JnsBumi, s.NilaiSistemBumi,
		s.TglPendataanOp, nullable(s.NmPendataanOp), nullable(s.NipPendata),
		s.TglPemeriksaanOp, nullable(s.NmPemeriksaanOp), nullable(s.NipPemeriksaOp),
		nullable(s.NoPersil),
		nullable(s.KdPropinsiBersama), nullable(s.KdDati2Bersama), nullable(s.KdKecamatanBersama), nullable(s.KdKelurahanBersama),
		nullable(s.KdBlokBersama), nullable(s.NoUrutBersama), nullable(s.KdJnsOpBersama),
		nullable(s.KdPropinsiAsal), nullable(s.KdDati2Asal), nullable(s.KdKecamatanAsal), nullable(s.KdKelurahanAsal),
		nullable(s.KdBlokAsal), nullable(s.NoUrutAsal), nullable(s.KdJnsOpAsal), nullable(s.NoSpptLama),
	}
	args = append(args, componentArgs(nop.Components{
		KdPropinsi:  s.KdPropinsi,
		KdDati2:     s.KdDati2,
		KdKecamatan: s.KdKecamatan,
		KdKelurahan: s.KdKelurahan,
		KdBlok:      s.KdBlok,
		NoUrut:      s.NoUrut,
		KdJnsOp:     s.KdJnsOp,
	})...)
	return r.db.WithContext(ctx).Exec(`
		UPDATE spop s SET
			subjek_pajak_id = ?, jns_transaksi_op = ?, jalan_op = ?, blok_kav_no_op = ?, kelurahan_op = ?,
			rw_op = ?, rt_op = ?, kd_status_wp = ?, luas_bumi = ?, kd_znt = ?,
			jns_bumi = ?, nilai_sistem_bumi = ?,
			tgl_pendataan_op = ?, nm_pendataan_op = ?, nip_pendata = ?,
			tgl_pemeriksaan_op = ?, nm_pemeriksaan_op = ?, nip_pemeriksa_op = ?,
			no_persil = ?,
			kd_propinsi_bersama = ?, kd_dati2_bersama = ?, kd_kecamatan_bersama = ?, kd_kelurahan_bersama = ?,
			kd_blok_bersama = ?, no_urut_bersama = ?, kd_jns_op_bersama = ?,
			kd_propinsi_asal = ?, kd_dati2_asal = ?, kd_kecamatan_asal = ?, kd_kelurahan_asal = ?,
			kd_blok_asal = ?, no_urut_asal = ?, kd_jns_op_asal = ?, no_sppt_lama = ?
		WHERE `+componentConditions("s"), args...,
	).Error
}

func (r *SpopRepository) Delete(ctx context.Context, c nop.Components) error {
	res := r.db.WithContext(ctx).Exec(
		`DELETE FROM spop WHERE `+componentConditions("spop"), componentArgs(c)...,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// nullable maps "" to NULL for optional legacy columns.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
