package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
	"github.com/adiprasetyo/simpbb/internal/repository"
)

type SpptService struct {
	repo  *repository.SpptRepository
	spops *repository.SpopRepository
}

func NewSpptService(repo *repository.SpptRepository, spops *repository.SpopRepository) *SpptService {
	return &SpptService{repo: repo, spops: spops}
}

// NoticesByNOP returns the derived notices for one NOP, newest first,
// with the aggregate the billing view shows. Land value counts once
// (the max across notices), building values accumulate per addendum.
func (s *SpptService) NoticesByNOP(ctx context.Context, rawNOP string) ([]model.NoticeDetail, *model.NoticeSummary, error) {
	c, err := nop.Parse(rawNOP)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: nop harus terdiri dari 18 digit", ErrValidation)
	}
	digits := nop.Compose(c)

	notices, err := s.repo.ListNoticesByNOP(ctx, digits)
	if err != nil {
		return nil, nil, err
	}
	if len(notices) == 0 {
		return nil, nil, fmt.Errorf("%w: sppt untuk nop %s tidak ditemukan", ErrNotFound, nop.Format(digits))
	}

	summary := &model.NoticeSummary{
		Njoptkp: notices[0].Njoptkp,
		Persen:  notices[0].Persen,
	}
	for _, n := range notices {
		if n.BumiNjop > summary.BumiNjop {
			summary.BumiNjop = n.BumiNjop
		}
		summary.BangunanNjop += n.BangunanNjop
	}
	summary.TotalNjop = summary.BumiNjop + summary.BangunanNjop
	base := summary.TotalNjop - summary.Njoptkp
	if base < 0 {
		base = 0
	}
	summary.PbbTerhutang = int64(float64(base) * summary.Persen)

	return notices, summary, nil
}

func (s *SpptService) Years(ctx context.Context) ([]string, error) {
	years, err := s.repo.DistinctYears(ctx)
	if err != nil {
		return nil, err
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("%w: belum ada tahun pajak", ErrNotFound)
	}
	return years, nil
}

// LegacyDetail returns one year's assessment with its recorded
// installments.
func (s *SpptService) LegacyDetail(ctx context.Context, year, rawNOP string) (*model.SpptLegacy, []model.Payment, error) {
	if len(year) != 4 || strings.TrimLeft(year, "0123456789") != "" {
		return nil, nil, fmt.Errorf("%w: tahun pajak harus 4 digit", ErrValidation)
	}
	c, err := nop.Parse(rawNOP)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: nop harus terdiri dari 18 digit", ErrValidation)
	}
	row, err := s.repo.GetLegacy(ctx, year, c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: sppt tahun %s tidak ditemukan", ErrNotFound, year)
		}
		return nil, nil, err
	}
	payments, err := s.repo.ListPayments(ctx, year, c)
	if err != nil {
		return nil, nil, err
	}
	return row, payments, nil
}

func (s *SpptService) LegacyBatch(ctx context.Context, rawNOP string) ([]model.SpptLegacy, error) {
	c, err := nop.Parse(rawNOP)
	if err != nil {
		return nil, fmt.Errorf("%w: nop harus terdiri dari 18 digit", ErrValidation)
	}
	rows, err := s.repo.ListLegacyAllYears(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sppt tidak ditemukan", ErrNotFound)
	}
	return rows, nil
}

// Verifikasi resolves the tax object and subjek behind a NOP. When a
// subjek id is supplied it must belong to that object.
func (s *SpptService) Verifikasi(ctx context.Context, rawNOP, subjekID string) (*model.SpopDetail, error) {
	c, err := nop.Parse(rawNOP)
	if err != nil {
		return nil, fmt.Errorf("%w: nop harus terdiri dari 18 digit", ErrValidation)
	}
	detail, err := s.spops.GetDetail(ctx, c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: objek pajak tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	if subjekID != "" && strings.TrimSpace(detail.SubjekPajakID) != strings.TrimSpace(subjekID) {
		return nil, fmt.Errorf("%w: objek pajak tidak ditemukan", ErrNotFound)
	}
	return detail, nil
}

type EspptResult struct {
	Object  *model.SpopDetail
	Notices []model.SpptLegacy
}

// Esppt is the public lookup. Mismatches return the same not-found error
// as absent objects so the endpoint leaks nothing about what exists.
func (s *SpptService) Esppt(ctx context.Context, rawNOP, ktp string) (*EspptResult, error) {
	if strings.TrimSpace(rawNOP) == "" {
		return nil, fmt.Errorf("%w: nop wajib diisi", ErrValidation)
	}
	c, err := nop.Parse(rawNOP)
	if err != nil {
		return nil, fmt.Errorf("%w: nop harus terdiri dari 18 digit", ErrValidation)
	}

	detail, err := s.spops.GetDetail(ctx, c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: data tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	if ktp != "" && strings.TrimSpace(detail.SubjekPajakID) != strings.TrimSpace(ktp) {
		return nil, fmt.Errorf("%w: data tidak ditemukan", ErrNotFound)
	}

	rows, err := s.repo.ListLegacyAllYears(ctx, c)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: data tidak ditemukan", ErrNotFound)
	}
	return &EspptResult{Object: detail, Notices: rows}, nil
}

type OpRegistrationInput struct {
	NOP    string
	NIK    string
	Nama   string
	Email  string
	NoTelp string
	Alamat string
}

// RegisterObject stages a public claim on an existing tax object.
func (s *SpptService) RegisterObject(ctx context.Context, input OpRegistrationInput) (*model.OpRegistration, error) {
	if strings.TrimSpace(input.NOP) == "" {
		return nil, fmt.Errorf("%w: nop wajib diisi", ErrValidation)
	}
	if strings.TrimSpace(input.Nama) == "" {
		return nil, fmt.Errorf("%w: nama wajib diisi", ErrValidation)
	}
	reg := &model.OpRegistration{
		ID:     newID(),
		NOP:    nop.Format(input.NOP),
		NIK:    input.NIK,
		Nama:   input.Nama,
		Email:  input.Email,
		NoTelp: input.NoTelp,
		Alamat: input.Alamat,
		Status: "submitted",
	}
	if err := s.repo.CreateOpRegistration(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Enotice gathers the data the printable notice needs.
func (s *SpptService) Enotice(ctx context.Context, year, rawNOP string) (*model.SpptLegacy, *model.SpopDetail, error) {
	row, _, err := s.LegacyDetail(ctx, year, rawNOP)
	if err != nil {
		return nil, nil, err
	}
	c, _ := nop.Parse(rawNOP)
	detail, err := s.spops.GetDetail(ctx, c)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}
	return row, detail, nil
}
