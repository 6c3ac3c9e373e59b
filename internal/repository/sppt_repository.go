package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
)

type SpptRepository struct {
	db *gorm.DB
}

func NewSpptRepository(db *gorm.DB) *SpptRepository {
	return &SpptRepository{db: db}
}

func (r *SpptRepository) InsertNotice(ctx context.Context, n *model.Notice) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO sppt (id, spop_id, lspop_id, nop, bumi_njop, bangunan_njop, njoptkp, pbb_persen, create_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.SpopID, n.LspopID, n.NOP, n.BumiNjop, n.BangunanNjop, n.Njoptkp, n.PbbPersen, n.CreateAt,
	).Error
}

// ListNoticesByNOP returns every derived notice for one 18-digit NOP,
// newest first, enriched with the rows the assessment was computed from.
func (r *SpptRepository) ListNoticesByNOP(ctx context.Context, nop18 string) ([]model.NoticeDetail, error) {
	var rows []struct {
		ID                 string
		SpopID             string
		LspopID            string
		NOP                string
		BumiNjop           int64
		BangunanNjop       int64
		Njoptkp            int64
		PbbPersen          int64
		CreateAt           time.Time
		Persen             float64
		LuasTanah          float64
		KelasBumi          string
		KelasBangunan      string
		LuasBangunanM2     float64
		NamaLengkap        string
		RegistrationStatus string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id, s.spop_id, s.lspop_id, s.nop, s.bumi_njop, s.bangunan_njop,
			s.njoptkp, s.pbb_persen, s.create_at,
			COALESCE(p.pbb_persen, 0) AS persen,
			COALESCE(r.luas_tanah, 0) AS luas_tanah,
			COALESCE(kb.kelas, '') AS kelas_bumi,
			COALESCE(kbg.kelas, '') AS kelas_bangunan,
			COALESCE(l.luas_bangunan_m2, 0) AS luas_bangunan_m2,
			COALESCE(r.nama_lengkap, '') AS nama_lengkap,
			COALESCE(r.status, '') AS registration_status
		FROM sppt s
		LEFT JOIN pbb_p2 p ON p.id = s.pbb_persen
		LEFT JOIN spop_registration r ON r.id = s.spop_id
		LEFT JOIN lampiran_spop l ON l.id = s.lspop_id
		LEFT JOIN kelas_bumi_njop kb ON kb.id = r.kelas_bumi_njop
		LEFT JOIN kelas_bangunan_njop kbg ON kbg.id = l.kelas_bangunan_njop
		WHERE s.nop = ?
		ORDER BY s.create_at DESC`, nop18,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]model.NoticeDetail, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.NoticeDetail{
			Notice: model.Notice{
				ID:           row.ID,
				SpopID:       row.SpopID,
				LspopID:      row.LspopID,
				NOP:          row.NOP,
				BumiNjop:     row.BumiNjop,
				BangunanNjop: row.BangunanNjop,
				Njoptkp:      row.Njoptkp,
				PbbPersen:    row.PbbPersen,
				CreateAt:     row.CreateAt,
			},
			Persen:             row.Persen,
			LuasTanah:          row.LuasTanah,
			KelasBumi:          row.KelasBumi,
			KelasBangunan:      row.KelasBangunan,
			LuasBangunanM2:     row.LuasBangunanM2,
			NamaLengkap:        row.NamaLengkap,
			RegistrationStatus: row.RegistrationStatus,
		})
	}
	return items, nil
}

const spptLegacyColumns = `
	kd_propinsi, kd_dati2, kd_kecamatan, kd_kelurahan, kd_blok, no_urut, kd_jns_op,
	thn_pajak_sppt, siklus_sppt,
	nm_wp_sppt,
	COALESCE(jln_wp_sppt, '') AS jln_wp_sppt,
	COALESCE(blok_kav_no_wp_sppt, '') AS blok_kav_no_wp_sppt,
	COALESCE(rw_wp_sppt, '') AS rw_wp_sppt,
	COALESCE(rt_wp_sppt, '') AS rt_wp_sppt,
	COALESCE(kelurahan_wp_sppt, '') AS kelurahan_wp_sppt,
	COALESCE(kota_wp_sppt, '') AS kota_wp_sppt,
	COALESCE(kd_pos_wp_sppt, '') AS kd_pos_wp_sppt,
	COALESCE(npwp_sppt, '') AS npwp_sppt,
	COALESCE(kd_kls_tanah, '') AS kd_kls_tanah,
	COALESCE(kd_kls_bng, '') AS kd_kls_bng,
	luas_bumi_sppt, luas_bng_sppt, njop_bumi_sppt, njop_bng_sppt, njop_sppt,
	njoptkp_sppt, pbb_terhutang_sppt, faktor_pengurang_sppt,
	pbb_yg_harus_dibayar_sppt, status_pembayaran_sppt,
	tgl_jatuh_tempo_sppt, tgl_terbit_sppt`

type spptLegacyRow struct {
	KdPropinsi            string
	KdDati2               string
	KdKecamatan           string
	KdKelurahan           string
	KdBlok                string
	NoUrut                string
	KdJnsOp               string
	ThnPajakSppt          string
	SiklusSppt            int
	NmWpSppt              string
	JlnWpSppt             string
	BlokKavNoWpSppt       string
	RwWpSppt              string
	RtWpSppt              string
	KelurahanWpSppt       string
	KotaWpSppt            string
	KdPosWpSppt           string
	NpwpSppt              string
	KdKlsTanah            string
	KdKlsBng              string
	LuasBumiSppt          int64
	LuasBngSppt           int64
	NjopBumiSppt          int64
	NjopBngSppt           int64
	NjopSppt              int64
	NjoptkpSppt           int64
	PbbTerhutangSppt      int64
	FaktorPengurangSppt   int64
	PbbYgHarusDibayarSppt int64
	StatusPembayaranSppt  string
	TglJatuhTempoSppt     *time.Time
	TglTerbitSppt         *time.Time
}

func (row spptLegacyRow) toModel() model.SpptLegacy {
	return model.SpptLegacy{
		KdPropinsi:            row.KdPropinsi,
		KdDati2:               row.KdDati2,
		KdKecamatan:           row.KdKecamatan,
		KdKelurahan:           row.KdKelurahan,
		KdBlok:                row.KdBlok,
		NoUrut:                row.NoUrut,
		KdJnsOp:               row.KdJnsOp,
		ThnPajakSppt:          row.ThnPajakSppt,
		SiklusSppt:            row.SiklusSppt,
		NmWpSppt:              row.NmWpSppt,
		JlnWpSppt:             row.JlnWpSppt,
		BlokKavNoWpSppt:       row.BlokKavNoWpSppt,
		RWWpSppt:              row.RwWpSppt,
		RTWpSppt:              row.RtWpSppt,
		KelurahanWpSppt:       row.KelurahanWpSppt,
		KotaWpSppt:            row.KotaWpSppt,
		KdPosWpSppt:           row.KdPosWpSppt,
		NpwpSppt:              row.NpwpSppt,
		KdKlsTanah:            row.KdKlsTanah,
		KdKlsBng:              row.KdKlsBng,
		LuasBumiSppt:          row.LuasBumiSppt,
		LuasBngSppt:           row.LuasBngSppt,
		NjopBumiSppt:          row.NjopBumiSppt,
		NjopBngSppt:           row.NjopBngSppt,
		NjopSppt:              row.NjopSppt,
		NjoptkpSppt:           row.NjoptkpSppt,
		PbbTerhutangSppt:      row.PbbTerhutangSppt,
		FaktorPengurangSppt:   row.FaktorPengurangSppt,
		PbbYgHarusDibayarSppt: row.PbbYgHarusDibayarSppt,
		StatusPembayaranSppt:  row.StatusPembayaranSppt,
		TglJatuhTempoSppt:     row.TglJatuhTempoSppt,
		TglTerbitSppt:         row.TglTerbitSppt,
	}
}

func (r *SpptRepository) DistinctYears(ctx context.Context) ([]string, error) {
	var years []string
	err := r.db.WithContext(ctx).Raw(
		`SELECT DISTINCT thn_pajak_sppt FROM sppt_legacy ORDER BY thn_pajak_sppt DESC`,
	).Scan(&years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

func (r *SpptRepository) GetLegacy(ctx context.Context, year string, c nop.Components) (*model.SpptLegacy, error) {
	var row spptLegacyRow
	args := append(componentArgs(c), year)
	err := r.db.WithContext(ctx).Raw(
		`SELECT`+spptLegacyColumns+` FROM sppt_legacy WHERE `+
			componentConditions("sppt_legacy")+` AND thn_pajak_sppt = ? LIMIT 1`,
		args...,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ThnPajakSppt == "" {
		return nil, gorm.ErrRecordNotFound
	}
	m := row.toModel()
	return &m, nil
}

func (r *SpptRepository) ListLegacyAllYears(ctx context.Context, c nop.Components) ([]model.SpptLegacy, error) {
	var rows []spptLegacyRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT`+spptLegacyColumns+` FROM sppt_legacy WHERE `+
			componentConditions("sppt_legacy")+` ORDER BY thn_pajak_sppt DESC`,
		componentArgs(c)...,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]model.SpptLegacy, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}

// ListPayments returns the recorded installments for one year of one object.
func (r *SpptRepository) ListPayments(ctx context.Context, year string, c nop.Components) ([]model.Payment, error) {
	var rows []struct {
		ThnPajakSppt      string
		PembayaranSpptKe  int
		JmlSpptYgDibayar  int64
		DendaSppt         int64
		TglPembayaranSppt *time.Time
	}
	args := append(componentArgs(c), year)
	err := r.db.WithContext(ctx).Raw(`
		SELECT thn_pajak_sppt, pembayaran_sppt_ke, jml_sppt_yg_dibayar, denda_sppt, tgl_pembayaran_sppt
		FROM pembayaran_sppt
		WHERE `+componentConditions("pembayaran_sppt")+` AND thn_pajak_sppt = ?
		ORDER BY pembayaran_sppt_ke`, args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]model.Payment, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.Payment{
			ThnPajakSppt:      row.ThnPajakSppt,
			PembayaranSpptKe:  row.PembayaranSpptKe,
			JmlSpptYgDibayar:  row.JmlSpptYgDibayar,
			DendaSppt:         row.DendaSppt,
			TglPembayaranSppt: row.TglPembayaranSppt,
		})
	}
	return items, nil
}

func (r *SpptRepository) CreateOpRegistration(ctx context.Context, reg *model.OpRegistration) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO op_registration (id, nop, nik, nama, email, no_telp, alamat, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.ID, reg.NOP, reg.NIK, reg.Nama, reg.Email, reg.NoTelp, reg.Alamat, reg.Status,
	).Error
}
