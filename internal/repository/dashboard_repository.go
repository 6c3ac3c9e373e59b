package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// DashboardFilter narrows the legacy assessment tables by tax year and
// zero-padded region codes. Empty fields are skipped.
type DashboardFilter struct {
	Year        string
	KdPropinsi  string
	KdDati2     string
	KdKecamatan string
	KdKelurahan string
}

func (f DashboardFilter) where() (string, []interface{}) {
	clause := ` WHERE thn_pajak_sppt = ?`
	args := []interface{}{f.Year}
	if f.KdPropinsi != "" {
		clause += ` AND kd_propinsi = ?`
		args = append(args, f.KdPropinsi)
	}
	if f.KdDati2 != "" {
		clause += ` AND kd_dati2 = ?`
		args = append(args, f.KdDati2)
	}
	if f.KdKecamatan != "" {
		clause += ` AND kd_kecamatan = ?`
		args = append(args, f.KdKecamatan)
	}
	if f.KdKelurahan != "" {
		clause += ` AND kd_kelurahan = ?`
		args = append(args, f.KdKelurahan)
	}
	return clause, args
}

func (r *DashboardRepository) Cards(ctx context.Context, f DashboardFilter) (*model.DashboardCards, error) {
	where, args := f.where()

	var object struct {
		JumlahObjek    int64
		TotalLuasBng   int64
		TotalTerhutang int64
		JumlahLunas    int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS jumlah_objek,
			COALESCE(SUM(luas_bng_sppt), 0) AS total_luas_bng,
			COALESCE(SUM(pbb_terhutang_sppt), 0) AS total_terhutang,
			COALESCE(SUM(CASE WHEN status_pembayaran_sppt IN ('1', 'L', 'LUNAS', 'Y') THEN 1 ELSE 0 END), 0) AS jumlah_lunas
		FROM sppt_legacy`+where, args...,
	).Scan(&object).Error
	if err != nil {
		return nil, err
	}

	var realisasi int64
	err = r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(jml_sppt_yg_dibayar), 0) FROM pembayaran_sppt`+where, args...,
	).Scan(&realisasi).Error
	if err != nil {
		return nil, err
	}

	return &model.DashboardCards{
		JumlahObjek:    object.JumlahObjek,
		TotalLuasBng:   object.TotalLuasBng,
		TotalTerhutang: object.TotalTerhutang,
		JumlahLunas:    object.JumlahLunas,
		TotalRealisasi: realisasi,
	}, nil
}

// MonthlyRealisasi sums recorded payments per calendar month of the payment
// date. Months without payments are absent, callers fill the gaps.
func (r *DashboardRepository) MonthlyRealisasi(ctx context.Context, f DashboardFilter) (map[int]int64, error) {
	where, args := f.where()

	var rows []struct {
		Bulan int
		Total int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT MONTH(tgl_pembayaran_sppt) AS bulan, COALESCE(SUM(jml_sppt_yg_dibayar), 0) AS total
		FROM pembayaran_sppt`+where+` AND tgl_pembayaran_sppt IS NOT NULL
		GROUP BY MONTH(tgl_pembayaran_sppt)`, args...,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[int]int64, len(rows))
	for _, row := range rows {
		totals[row.Bulan] = row.Total
	}
	return totals, nil
}
