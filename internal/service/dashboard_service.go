package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
	"github.com/adiprasetyo/simpbb/internal/repository"
)

type DashboardService struct {
	repo *repository.DashboardRepository
}

func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

type DashboardInput struct {
	Year        string
	KdPropinsi  string
	KdDati2     string
	KdKecamatan string
	KdKelurahan string
}

func (in DashboardInput) filter() (repository.DashboardFilter, error) {
	year := strings.TrimSpace(in.Year)
	if len(year) != 4 || strings.TrimLeft(year, "0123456789") != "" {
		return repository.DashboardFilter{}, fmt.Errorf("%w: tahun pajak harus 4 digit", ErrValidation)
	}
	f := repository.DashboardFilter{Year: year}
	if strings.TrimSpace(in.KdPropinsi) != "" {
		f.KdPropinsi = nop.Normalize(in.KdPropinsi, 2)
	}
	if strings.TrimSpace(in.KdDati2) != "" {
		f.KdDati2 = nop.Normalize(in.KdDati2, 2)
	}
	if strings.TrimSpace(in.KdKecamatan) != "" {
		f.KdKecamatan = nop.Normalize(in.KdKecamatan, 3)
	}
	if strings.TrimSpace(in.KdKelurahan) != "" {
		f.KdKelurahan = nop.Normalize(in.KdKelurahan, 3)
	}
	return f, nil
}

func (s *DashboardService) Cards(ctx context.Context, input DashboardInput) (*model.DashboardCards, error) {
	f, err := input.filter()
	if err != nil {
		return nil, err
	}
	return s.repo.Cards(ctx, f)
}

// Graph returns twelve points, one per calendar month, with zero
// realisation for months without payments.
func (s *DashboardService) Graph(ctx context.Context, input DashboardInput) ([]model.GraphPoint, error) {
	f, err := input.filter()
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.MonthlyRealisasi(ctx, f)
	if err != nil {
		return nil, err
	}
	points := make([]model.GraphPoint, 0, 12)
	for month := 1; month <= 12; month++ {
		points = append(points, model.GraphPoint{Bulan: month, Realisasi: totals[month]})
	}
	return points, nil
}
