package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
)

type RefRepository struct {
	db *gorm.DB
}

func NewRefRepository(db *gorm.DB) *RefRepository {
	return &RefRepository{db: db}
}

// --- provinsi ---

func (r *RefRepository) ListProvinsi(ctx context.Context, offset, limit int) ([]model.Provinsi, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM provinsi`).Scan(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.Provinsi
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kode, nama FROM provinsi ORDER BY id LIMIT ? OFFSET ?`, limit, offset,
	).Scan(&rows).Error
	return rows, total, err
}

func (r *RefRepository) AllProvinsi(ctx context.Context) ([]model.Provinsi, error) {
	var rows []model.Provinsi
	err := r.db.WithContext(ctx).Raw(`SELECT id, kode, nama FROM provinsi ORDER BY id`).Scan(&rows).Error
	return rows, err
}

func (r *RefRepository) GetProvinsi(ctx context.Context, id int) (*model.Provinsi, error) {
	var row model.Provinsi
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kode, nama FROM provinsi WHERE id = ? LIMIT 1`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *RefRepository) CreateProvinsi(ctx context.Context, p *model.Provinsi) (int, error) {
	return r.insertReturningID(ctx,
		`INSERT INTO provinsi (kode, nama) VALUES (?, ?)`,
		p.Kode, p.Nama,
	)
}

func (r *RefRepository) UpdateProvinsi(ctx context.Context, p *model.Provinsi) error {
	return r.execOne(ctx, `UPDATE provinsi SET kode = ?, nama = ? WHERE id = ?`, p.Kode, p.Nama, p.ID)
}

func (r *RefRepository) DeleteProvinsi(ctx context.Context, id int) error {
	return r.execOne(ctx, `DELETE FROM provinsi WHERE id = ?`, id)
}

// --- kabupaten ---

func (r *RefRepository) ListKabupaten(ctx context.Context, offset, limit int) ([]model.Kabupaten, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM kabupaten_kota`).Scan(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.Kabupaten
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, provinsi_id, kode, nama FROM kabupaten_kota ORDER BY id LIMIT ? OFFSET ?`, limit, offset,
	).Scan(&rows).Error
	return rows, total, err
}

func (r *RefRepository) AllKabupaten(ctx context.Context) ([]model.Kabupaten, error) {
	var rows []model.Kabupaten
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, provinsi_id, kode, nama FROM kabupaten_kota ORDER BY id`,
	).Scan(&rows).Error
	return rows, err
}

func (r *RefRepository) GetKabupaten(ctx context.Context, id int) (*model.Kabupaten, error) {
	var row model.Kabupaten
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, provinsi_id, kode, nama FROM kabupaten_kota WHERE id = ? LIMIT 1`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *RefRepository) CreateKabupaten(ctx context.Context, k *model.Kabupaten) (int, error) {
	return r.insertReturningID(ctx,
		`INSERT INTO kabupaten_kota (provinsi_id, kode, nama) VALUES (?, ?, ?)`,
		k.ProvinsiID, k.Kode, k.Nama,
	)
}

func (r *RefRepository) UpdateKabupaten(ctx context.Context, k *model.Kabupaten) error {
	return r.execOne(ctx,
		`UPDATE kabupaten_kota SET provinsi_id = ?, kode = ?, nama = ? WHERE id = ?`,
		k.ProvinsiID, k.Kode, k.Nama, k.ID,
	)
}

func (r *RefRepository) DeleteKabupaten(ctx context.Context, id int) error {
	return r.execOne(ctx, `DELETE FROM kabupaten_kota WHERE id = ?`, id)
}

// --- kecamatan ---

func (r *RefRepository) ListKecamatan(ctx context.Context, offset, limit int) ([]model.Kecamatan, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM kecamatan`).Scan(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.Kecamatan
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kabupaten_id, kode, nama FROM kecamatan ORDER BY id LIMIT ? OFFSET ?`, limit, offset,
	).Scan(&rows).Error
	return rows, total, err
}

func (r *RefRepository) AllKecamatan(ctx context.Context) ([]model.Kecamatan, error) {
	var rows []model.Kecamatan
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kabupaten_id, kode, nama FROM kecamatan ORDER BY id`,
	).Scan(&rows).Error
	return rows, err
}

func (r *RefRepository) GetKecamatan(ctx context.Context, id int) (*model.Kecamatan, error) {
	var row model.Kecamatan
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kabupaten_id, kode, nama FROM kecamatan WHERE id = ? LIMIT 1`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *RefRepository) CreateKecamatan(ctx context.Context, k *model.Kecamatan) (int, error) {
	return r.insertReturningID(ctx,
		`INSERT INTO kecamatan (kabupaten_id, kode, nama) VALUES (?, ?, ?)`,
		k.KabupatenID, k.Kode, k.Nama,
	)
}

func (r *RefRepository) UpdateKecamatan(ctx context.Context, k *model.Kecamatan) error {
	return r.execOne(ctx,
		`UPDATE kecamatan SET kabupaten_id = ?, kode = ?, nama = ? WHERE id = ?`,
		k.KabupatenID, k.Kode, k.Nama, k.ID,
	)
}

func (r *RefRepository) DeleteKecamatan(ctx context.Context, id int) error {
	return r.execOne(ctx, `DELETE FROM kecamatan WHERE id = ?`, id)
}

// --- kelurahan ---

func (r *RefRepository) ListKelurahan(ctx context.Context, offset, limit int) ([]model.Kelurahan, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM kelurahan`).Scan(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.Kelurahan
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kecamatan_id, kode, nama FROM kelurahan ORDER BY id LIMIT ? OFFSET ?`, limit, offset,
	).Scan(&rows).Error
	return rows, total, err
}

func (r *RefRepository) AllKelurahan(ctx context.Context) ([]model.Kelurahan, error) {
	var rows []model.Kelurahan
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kecamatan_id, kode, nama FROM kelurahan ORDER BY id`,
	).Scan(&rows).Error
	return rows, err
}

func (r *RefRepository) GetKelurahan(ctx context.Context, id int) (*model.Kelurahan, error) {
	var row model.Kelurahan
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kecamatan_id, kode, nama FROM kelurahan WHERE id = ? LIMIT 1`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *RefRepository) CreateKelurahan(ctx context.Context, k *model.Kelurahan) (int, error) {
	return r.insertReturningID(ctx,
		`INSERT INTO kelurahan (kecamatan_id, kode, nama) VALUES (?, ?, ?)`,
		k.KecamatanID, k.Kode, k.Nama,
	)
}

func (r *RefRepository) UpdateKelurahan(ctx context.Context, k *model.Kelurahan) error {
	return r.execOne(ctx,
		`UPDATE kelurahan SET kecamatan_id = ?, kode = ?, nama = ? WHERE id = ?`,
		k.KecamatanID, k.Kode, k.Nama, k.ID,
	)
}

func (r *RefRepository) DeleteKelurahan(ctx context.Context, id int) error {
	return r.execOne(ctx, `DELETE FROM kelurahan WHERE id = ?`, id)
}

// --- NJOP classes ---

func (r *RefRepository) listNjopClasses(ctx context.Context, table string, offset, limit int) ([]model.NjopClass, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM ` + table).Scan(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.NjopClass
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kelas, min_nilai, max_nilai, njop_per_m2 FROM `+table+` ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset,
	).Scan(&rows).Error
	return rows, total, err
}

func (r *RefRepository) getNjopClass(ctx context.Context, table string, id int) (*model.NjopClass, error) {
	var row model.NjopClass
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, kelas, min_nilai, max_nilai, njop_per_m2 FROM `+table+` WHERE id = ? LIMIT 1`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *RefRepository) ListKelasBumi(ctx context.Context, offset, limit int) ([]model.NjopClass, int64, error) {
	return r.listNjopClasses(ctx, "kelas_bumi_njop", offset, limit)
}

func (r *RefRepository) GetKelasBumi(ctx context.Context, id int) (*model.NjopClass, error) {
	return r.getNjopClass(ctx, "kelas_bumi_njop", id)
}

func (r *RefRepository) CreateKelasBumi(ctx context.Context, k *model.NjopClass) (int, error) {
	return r.insertReturningID(ctx,
		`INSERT INTO kelas_bumi_njop (kelas, min_nilai, max_nilai, njop_per_m2) VALUES (?, ?, ?, ?)`,
		k.Kelas, k.MinNilai, k.MaxNilai, k.NjopPerM2,
	)
}

func (r *RefRepository) UpdateKelasBumi(ctx context.Context, k *model.NjopClass) error {
	return r.execOne(ctx,
		`UPDATE kelas_bumi_njop SET kelas = ?, min_nilai = ?, max_nilai = ?, njop_per_m2 = ? WHERE id = ?`,
		k.Kelas, k.MinNilai, k.MaxNilai, k.NjopPerM2, k.ID,
	)
}

func (r *RefRepository) DeleteKelasBumi(ctx context.Context, id int) error {
	return r.execOne(ctx, `DELETE FROM kelas_bumi_njop WHERE id = ?`, id)
}

func (r *RefRepository) ListKelasBangunan(ctx context.Context, offset, limit int) ([]model.NjopClass, int64, error) {
	return r.listNjopClasses(ctx, "kelas_bangunan_njop", offset, limit)
}

func (r *RefRepository) GetKelasBangunan(ctx context.Context, id int) (*model.NjopClass, error) {
	return r.getNjopClass(ctx, "kelas_bangunan_njop", id)
}

func (r *RefRepository) CreateKelasBangunan(ctx context.Context, k *model.NjopClass) (int, error) {
	return r.insertReturningID(ctx,
		`INSERT INTO kelas_bangunan_njop (kelas, min_nilai, max_nilai, njop_per_m2) VALUES (?, ?, ?, ?)`,
		k.Kelas, k.MinNilai, k.MaxNilai, k.NjopPerM2,
	)
}

func (r *RefRepository) UpdateKelasBangunan(ctx context.Context, k *model.NjopClass) error {
	return r.execOne(ctx,
		`UPDATE kelas_bangunan_njop SET kelas = ?, min_nilai = ?, max_nilai = ?, njop_per_m2 = ? WHERE id = ?`,
		k.Kelas, k.MinNilai, k.MaxNilai, k.NjopPerM2, k.ID,
	)
}

func (r *RefRepository) DeleteKelasBangunan(ctx context.Context, id int) error {
	return r.execOne(ctx, `DELETE FROM kelas_bangunan_njop WHERE id = ?`, id)
}

// --- lookups ---

func (r *RefRepository) lookupList(ctx context.Context, table string) ([]model.LookupItem, error) {
	var rows []model.LookupItem
	err := r.db.WithContext(ctx).Raw(`SELECT id, nama FROM ` + table + ` ORDER BY id`).Scan(&rows).Error
	return rows, err
}

func (r *RefRepository) AllStatusSubjek(ctx context.Context) ([]model.LookupItem, error) {
	return r.lookupList(ctx, "status_subjek")
}

func (r *RefRepository) AllPekerjaanSubjek(ctx context.Context) ([]model.LookupItem, error) {
	return r.lookupList(ctx, "pekerjaan_subjek")
}

func (r *RefRepository) AllJenisTanah(ctx context.Context) ([]model.LookupItem, error) {
	return r.lookupList(ctx, "jenis_tanah")
}

// --- tarif ---

func (r *RefRepository) GetTarif(ctx context.Context, id int64) (*model.PbbTarif, error) {
	var row model.PbbTarif
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, daerah, pbb_persen AS persen, created_at FROM pbb_p2 WHERE id = ? LIMIT 1`, id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *RefRepository) AllTarif(ctx context.Context) ([]model.PbbTarif, error) {
	var rows []model.PbbTarif
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, daerah, pbb_persen AS persen, created_at FROM pbb_p2 ORDER BY id`,
	).Scan(&rows).Error
	return rows, err
}

// --- helpers ---

// insertReturningID runs the insert and reads LAST_INSERT_ID on the same
// connection.
func (r *RefRepository) insertReturningID(ctx context.Context, sql string, args ...interface{}) (int, error) {
	var id int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(sql, args...).Error; err != nil {
			return err
		}
		return tx.Raw(`SELECT LAST_INSERT_ID()`).Scan(&id).Error
	})
	return id, err
}

func (r *RefRepository) execOne(ctx context.Context, sql string, args ...interface{}) error {
	res := r.db.WithContext(ctx).Exec(sql, args...)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
