package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/repository"
)

type RefService struct {
	repo *repository.RefRepository
}

func NewRefService(repo *repository.RefRepository) *RefService {
	return &RefService{repo: repo}
}

func refNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s tidak ditemukan", ErrNotFound, what)
	}
	return err
}

func emptyUpdate(kode, nama string) error {
	if strings.TrimSpace(kode) == "" && strings.TrimSpace(nama) == "" {
		return fmt.Errorf("%w: tidak ada field yang diubah", ErrValidation)
	}
	return nil
}

// provinsi

func (s *RefService) ListProvinsi(ctx context.Context, page, limit int) ([]model.Provinsi, int64, error) {
	return s.repo.ListProvinsi(ctx, (page-1)*limit, limit)
}

func (s *RefService) GetProvinsi(ctx context.Context, id int) (*model.Provinsi, error) {
	p, err := s.repo.GetProvinsi(ctx, id)
	if err != nil {
		return nil, refNotFound(err, "provinsi")
	}
	return p, nil
}

func (s *RefService) CreateProvinsi(ctx context.Context, p model.Provinsi) (*model.Provinsi, error) {
	if strings.TrimSpace(p.Nama) == "" {
		return nil, fmt.Errorf("%w: nama wajib diisi", ErrValidation)
	}
	id, err := s.repo.CreateProvinsi(ctx, &p)
	if err != nil {
		return nil, err
	}
	return s.GetProvinsi(ctx, id)
}

func (s *RefService) UpdateProvinsi(ctx context.Context, id int, kode, nama string) (*model.Provinsi, error) {
	if err := emptyUpdate(kode, nama); err != nil {
		return nil, err
	}
	current, err := s.GetProvinsi(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(kode) != "" {
		current.Kode = kode
	}
	if strings.TrimSpace(nama) != "" {
		current.Nama = nama
	}
	if err := s.repo.UpdateProvinsi(ctx, current); err != nil {
		return nil, refNotFound(err, "provinsi")
	}
	return current, nil
}

func (s *RefService) DeleteProvinsi(ctx context.Context, id int) error {
	if err := s.repo.DeleteProvinsi(ctx, id); err != nil {
		return refNotFound(err, "provinsi")
	}
	return nil
}

// kabupaten/kota

func (s *RefService) ListKabupaten(ctx context.Context, page, limit int) ([]model.Kabupaten, int64, error) {
	return s.repo.ListKabupaten(ctx, (page-1)*limit, limit)
}

func (s *RefService) GetKabupaten(ctx context.Context, id int) (*model.Kabupaten, error) {
	k, err := s.repo.GetKabupaten(ctx, id)
	if err != nil {
		return nil, refNotFound(err, "kabupaten/kota")
	}
	return k, nil
}

func (s *RefService) CreateKabupaten(ctx context.Context, k model.Kabupaten) (*model.Kabupaten, error) {
	if strings.TrimSpace(k.Nama) == "" {
		return nil, fmt.Errorf("%w: nama wajib diisi", ErrValidation)
	}
	if _, err := s.GetProvinsi(ctx, k.ProvinsiID); err != nil {
		return nil, fmt.Errorf("%w: provinsi induk tidak ditemukan", ErrInvalidInput)
	}
	id, err := s.repo.CreateKabupaten(ctx, &k)
	if err != nil {
		return nil, err
	}
	return s.GetKabupaten(ctx, id)
}

func (s *RefService) UpdateKabupaten(ctx context.Context, id int, kode, nama string) (*model.Kabupaten, error) {
	if err := emptyUpdate(kode, nama); err != nil {
		return nil, err
	}
	current, err := s.GetKabupaten(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(kode) != "" {
		current.Kode = kode
	}
	if strings.TrimSpace(nama) != "" {
		current.Nama = nama
	}
	if err := s.repo.UpdateKabupaten(ctx, current); err != nil {
		return nil, refNotFound(err, "kabupaten/kota")
	}
	return current, nil
}

func (s *RefService) DeleteKabupaten(ctx context.Context, id int) error {
	if err := s.repo.DeleteKabupaten(ctx, id); err != nil {
		return refNotFound(err, "kabupaten/kota")
	}
	return nil
}

// kecamatan

func (s *RefService) ListKecamatan(ctx context.Context, page, limit int) ([]model.Kecamatan, int64, error) {
	return s.repo.ListKecamatan(ctx, (page-1)*limit, limit)
}

func (s *RefService) GetKecamatan(ctx context.Context, id int) (*model.Kecamatan, error) {
	k, err := s.repo.GetKecamatan(ctx, id)
	if err != nil {
		return nil, refNotFound(err, "kecamatan")
	}
	return k, nil
}

func (s *RefService) CreateKecamatan(ctx context.Context, k model.Kecamatan) (*model.Kecamatan, error) {
	if strings.TrimSpace(k.Nama) == "" {
		return nil, fmt.Errorf("%w: nama wajib diisi", ErrValidation)
	}
	if _, err := s.GetKabupaten(ctx, k.KabupatenID); err != nil {
		return nil, fmt.Errorf("%w: kabupaten/kota induk tidak ditemukan", ErrInvalidInput)
	}
	id, err := s.repo.CreateKecamatan(ctx, &k)
	if err != nil {
		return nil, err
	}
	return s.GetKecamatan(ctx, id)
}

func (s *RefService) UpdateKecamatan(ctx context.Context, id int, kode, nama string) (*model.Kecamatan, error) {
	if err := emptyUpdate(kode, nama); err != nil {
		return nil, err
	}
	current, err := s.GetKecamatan(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(kode) != "" {
		current.Kode = kode
	}
	if strings.TrimSpace(nama) != "" {
		current.Nama = nama
	}
	if err := s.repo.UpdateKecamatan(ctx, current); err != nil {
		return nil, refNotFound(err, "kecamatan")
	}
	return current, nil
}

func (s *RefService) DeleteKecamatan(ctx context.Context, id int) error {
	if err := s.repo.DeleteKecamatan(ctx, id); err != nil {
		return refNotFound(err, "kecamatan")
	}
	return nil
}

// kelurahan

func (s *RefService) ListKelurahan(ctx context.Context, page, limit int) ([]model.Kelurahan, int64, error) {
	return s.repo.ListKelurahan(ctx, (page-1)*limit, limit)
}

func (s *RefService) GetKelurahan(ctx context.Context, id int) (*model.Kelurahan, error) {
	k, err := s.repo.GetKelurahan(ctx, id)
	if err != nil {
		return nil, refNotFound(err, "kelurahan")
	}
	return k, nil
}

func (s *RefService) CreateKelurahan(ctx context.Context, k model.Kelurahan) (*model.Kelurahan, error) {
	if strings.TrimSpace(k.Nama) == "" {
		return nil, fmt.Errorf("%w: nama wajib diisi", ErrValidation)
	}
	if _, err := s.GetKecamatan(ctx, k.KecamatanID); err != nil {
		return nil, fmt.Errorf("%w: kecamatan induk tidak ditemukan", ErrInvalidInput)
	}
	id, err := s.repo.CreateKelurahan(ctx, &k)
	if err != nil {
		return nil, err
	}
	return s.GetKelurahan(ctx, id)
}

func (s *RefService) UpdateKelurahan(ctx context.Context, id int, kode, nama string) (*model.Kelurahan, error) {
	if err := emptyUpdate(kode, nama); err != nil {
		return nil, err
	}
	current, err := s.GetKelurahan(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(kode) != "" {
		current.Kode = kode
	}
	if strings.TrimSpace(nama) != "" {
		current.Nama = nama
	}
	if err := s.repo.UpdateKelurahan(ctx, current); err != nil {
		return nil, refNotFound(err, "kelurahan")
	}
	return current, nil
}

func (s *RefService) DeleteKelurahan(ctx context.Context, id int) error {
	if err := s.repo.DeleteKelurahan(ctx, id); err != nil {
		return refNotFound(err, "kelurahan")
	}
	return nil
}

// kelas NJOP

type NjopClassInput struct {
	Kelas     *string
	MinNilai  *int64
	MaxNilai  *int64
	NjopPerM2 *float64
}

func (in NjopClassInput) apply(current *model.NjopClass) bool {
	changed := false
	if in.Kelas != nil {
		current.Kelas = *in.Kelas
		changed = true
	}
	if in.MinNilai != nil {
		current.MinNilai = *in.MinNilai
		changed = true
	}
	if in.MaxNilai != nil {
		current.MaxNilai = *in.MaxNilai
		changed = true
	}
	if in.NjopPerM2 != nil {
		current.NjopPerM2 = *in.NjopPerM2
		changed = true
	}
	return changed
}

func (s *RefService) ListKelasBumi(ctx context.Context, page, limit int) ([]model.NjopClass, int64, error) {
	return s.repo.ListKelasBumi(ctx, (page-1)*limit, limit)
}

func (s *RefService) GetKelasBumi(ctx context.Context, id int) (*model.NjopClass, error) {
	k, err := s.repo.GetKelasBumi(ctx, id)
	if err != nil {
		return nil, refNotFound(err, "kelas bumi")
	}
	return k, nil
}

func (s *RefService) CreateKelasBumi(ctx context.Context, k model.NjopClass) (*model.NjopClass, error) {
	if strings.TrimSpace(k.Kelas) == "" {
		return nil, fmt.Errorf("%w: kelas wajib diisi", ErrValidation)
	}
	id, err := s.repo.CreateKelasBumi(ctx, &k)
	if err != nil {
		return nil, err
	}
	return s.GetKelasBumi(ctx, id)
}

func (s *RefService) UpdateKelasBumi(ctx context.Context, id int, input NjopClassInput) (*model.NjopClass, error) {
	current, err := s.GetKelasBumi(ctx, id)
	if err != nil {
		return nil, err
	}
	if !input.apply(current) {
		return nil, fmt.Errorf("%w: tidak ada field yang diubah", ErrValidation)
	}
	if err := s.repo.UpdateKelasBumi(ctx, current); err != nil {
		return nil, refNotFound(err, "kelas bumi")
	}
	return current, nil
}

func (s *RefService) DeleteKelasBumi(ctx context.Context, id int) error {
	if err := s.repo.DeleteKelasBumi(ctx, id); err != nil {
		return refNotFound(err, "kelas bumi")
	}
	return nil
}

func (s *RefService) ListKelasBangunan(ctx context.Context, page, limit int) ([]model.NjopClass, int64, error) {
	return s.repo.ListKelasBangunan(ctx, (page-1)*limit, limit)
}

func (s *RefService) GetKelasBangunan(ctx context.Context, id int) (*model.NjopClass, error) {
	k, err := s.repo.GetKelasBangunan(ctx, id)
	if err != nil {
		return nil, refNotFound(err, "kelas bangunan")
	}
	return k, nil
}

func (s *RefService) CreateKelasBangunan(ctx context.Context, k model.NjopClass) (*model.NjopClass, error) {
	if strings.TrimSpace(k.Kelas) == "" {
		return nil, fmt.Errorf("%w: kelas wajib diisi", ErrValidation)
	}
	id, err := s.repo.CreateKelasBangunan(ctx, &k)
	if err != nil {
		return nil, err
	}
	return s.GetKelasBangunan(ctx, id)
}

func (s *RefService) UpdateKelasBangunan(ctx context.Context, id int, input NjopClassInput) (*model.NjopClass, error) {
	current, err := s.GetKelasBangunan(ctx, id)
	if err != nil {
		return nil, err
	}
	if !input.apply(current) {
		return nil, fmt.Errorf("%w: tidak ada field yang diubah", ErrValidation)
	}
	if err := s.repo.UpdateKelasBangunan(ctx, current); err != nil {
		return nil, refNotFound(err, "kelas bangunan")
	}
	return current, nil
}

func (s *RefService) DeleteKelasBangunan(ctx context.Context, id int) error {
	if err := s.repo.DeleteKelasBangunan(ctx, id); err != nil {
		return refNotFound(err, "kelas bangunan")
	}
	return nil
}
