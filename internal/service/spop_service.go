package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
	"github.com/adiprasetyo/simpbb/internal/repository"
)

// jnsTransaksiLabels maps the SISMIOP transaction code to its label.
var jnsTransaksiLabels = map[string]string{
	"1": "pendaftaran",
	"2": "pemuktahiran",
	"3": "penghapusan",
}

func JnsTransaksiLabel(code string) string {
	return jnsTransaksiLabels[strings.TrimSpace(code)]
}

type SpopService struct {
	repo *repository.SpopRepository
}

func NewSpopService(repo *repository.SpopRepository) *SpopService {
	return &SpopService{repo: repo}
}

type SpopSearchInput struct {
	NOP         string
	KdPropinsi  string
	KdDati2     string
	KdKecamatan string
	KdKelurahan string
	KdBlok      string
	KdJnsOp     string
	NmWp        string
	JalanOp     string
}

func (s *SpopService) Search(ctx context.Context, input SpopSearchInput, page, limit int) ([]repository.SpopListItem, int64, error) {
	filter := repository.SpopFilter{
		KdPropinsi:  input.KdPropinsi,
		KdDati2:     input.KdDati2,
		KdKecamatan: input.KdKecamatan,
		KdKelurahan: input.KdKelurahan,
		KdBlok:      input.KdBlok,
		KdJnsOp:     input.KdJnsOp,
		NmWp:        input.NmWp,
		JalanOp:     input.JalanOp,
	}
	if strings.TrimSpace(input.NOP) != "" {
		c, err := nop.Parse(input.NOP)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: nop harus terdiri dari 18 digit", ErrValidation)
		}
		filter.Components = &c
	}
	offset := (page - 1) * limit
	return s.repo.List(ctx, filter, offset, limit)
}

func (s *SpopService) Detail(ctx context.Context, c nop.Components) (*model.SpopDetail, error) {
	detail, err := s.repo.GetDetail(ctx, c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: objek pajak tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	return detail, nil
}

func (s *SpopService) DetailByNOP(ctx context.Context, raw string) (*model.SpopDetail, error) {
	c, err := nop.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: nop harus terdiri dari 18 digit", ErrValidation)
	}
	return s.Detail(ctx, c)
}

// Create stores a new tax object. The subjek must already exist and the
// seven-component key must be free.
func (s *SpopService) Create(ctx context.Context, spop model.Spop) (*model.SpopDetail, error) {
	c := nop.Components{
		KdPropinsi:  spop.KdPropinsi,
		KdDati2:     spop.KdDati2,
		KdKecamatan: spop.KdKecamatan,
		KdKelurahan: spop.KdKelurahan,
		KdBlok:      spop.KdBlok,
		NoUrut:      spop.NoUrut,
		KdJnsOp:     spop.KdJnsOp,
	}
	if err := requireComponents(c); err != nil {
		return nil, err
	}

	ok, err := s.repo.SubjekExists(ctx, spop.SubjekPajakID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: subjek pajak %s tidak ditemukan", ErrInvalidInput, spop.SubjekPajakID)
	}

	exists, err := s.repo.Exists(ctx, c)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: objek pajak dengan nop tersebut sudah ada", ErrConflict)
	}

	spop.NoFormulirSpop, err = s.freeFormNumber(ctx)
	if err != nil {
		return nil, err
	}
	spop.TglPerekamanOp = time.Now()

	if err := s.repo.Create(ctx, &spop); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: objek pajak dengan nop tersebut sudah ada", ErrConflict)
		}
		return nil, err
	}
	return s.Detail(ctx, c)
}

// freeFormNumber draws random 11-digit numbers until one is unused.
func (s *SpopService) freeFormNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		candidate := fmt.Sprintf("%011d", rand.Int63n(100000000000))
		taken, err := s.repo.FormNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("gagal menghasilkan nomor formulir unik")
}

func (s *SpopService) Update(ctx context.Context, spop model.Spop) (*model.SpopDetail, error) {
	c := nop.Components{
		KdPropinsi:  spop.KdPropinsi,
		KdDati2:     spop.KdDati2,
		KdKecamatan: spop.KdKecamatan,
		KdKelurahan: spop.KdKelurahan,
		KdBlok:      spop.KdBlok,
		NoUrut:      spop.NoUrut,
		KdJnsOp:     spop.KdJnsOp,
	}
	if err := requireComponents(c); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, c)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: objek pajak tidak ditemukan", ErrNotFound)
	}

	if err := s.repo.Update(ctx, &spop); err != nil {
		return nil, err
	}
	return s.Detail(ctx, c)
}

func (s *SpopService) Delete(ctx context.Context, c nop.Components) error {
	if err := requireComponents(c); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, c); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("%w: objek pajak tidak ditemukan", ErrNotFound)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return fmt.Errorf("%w: objek pajak masih dirujuk data lain", ErrConflict)
		}
		return err
	}
	return nil
}

// Riwayat builds the recorded field activities for one tax object, oldest
// first. Callers pass either a raw NOP or all seven components.
func (s *SpopService) Riwayat(ctx context.Context, rawNOP string, c nop.Components) ([]model.RiwayatEntry, error) {
	var key nop.Components
	if strings.TrimSpace(rawNOP) != "" {
		parsed, err := nop.Parse(rawNOP)
		if err != nil {
			return nil, fmt.Errorf("%w: nop harus terdiri dari 18 digit", ErrValidation)
		}
		key = parsed
	} else {
		if err := requireComponents(c); err != nil {
			return nil, err
		}
		key = c
	}

	detail, err := s.Detail(ctx, key)
	if err != nil {
		return nil, err
	}

	var entries []model.RiwayatEntry
	if detail.TglPendataanOp != nil {
		entries = append(entries, model.RiwayatEntry{
			Aktivitas: "Pendataan",
			Tanggal:   *detail.TglPendataanOp,
			Petugas:   detail.NmPendataanOp,
			NIP:       detail.NipPendata,
		})
	}
	if detail.TglPemeriksaanOp != nil {
		entries = append(entries, model.RiwayatEntry{
			Aktivitas: "Pemeriksaan",
			Tanggal:   *detail.TglPemeriksaanOp,
			Petugas:   detail.NmPemeriksaanOp,
			NIP:       detail.NipPemeriksaOp,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Tanggal.Before(entries[j].Tanggal)
	})
	return entries, nil
}

func requireComponents(c nop.Components) error {
	if c.KdPropinsi == "" || c.KdDati2 == "" || c.KdKecamatan == "" ||
		c.KdKelurahan == "" || c.KdBlok == "" || c.NoUrut == "" || c.KdJnsOp == "" {
		return fmt.Errorf("%w: seluruh komponen nop wajib diisi", ErrValidation)
	}
	return nil
}
