package service

import (
	"context"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/repository"
)

type DropdownService struct {
	refs *repository.RefRepository
}

func NewDropdownService(refs *repository.RefRepository) *DropdownService {
	return &DropdownService{refs: refs}
}

// SpopDropdowns is everything the public registration form needs to
// render its selects in one round trip.
type SpopDropdowns struct {
	Provinsi        []model.Provinsi
	Kabupaten       []model.Kabupaten
	Kecamatan       []model.Kecamatan
	Kelurahan       []model.Kelurahan
	StatusSubjek    []model.LookupItem
	PekerjaanSubjek []model.LookupItem
	JenisTanah      []model.LookupItem
}

func (s *DropdownService) Spop(ctx context.Context) (*SpopDropdowns, error) {
	provinsi, err := s.refs.AllProvinsi(ctx)
	if err != nil {
		return nil, err
	}
	kabupaten, err := s.refs.AllKabupaten(ctx)
	if err != nil {
		return nil, err
	}
	kecamatan, err := s.refs.AllKecamatan(ctx)
	if err != nil {
		return nil, err
	}
	kelurahan, err := s.refs.AllKelurahan(ctx)
	if err != nil {
		return nil, err
	}
	statusSubjek, err := s.refs.AllStatusSubjek(ctx)
	if err != nil {
		return nil, err
	}
	pekerjaanSubjek, err := s.refs.AllPekerjaanSubjek(ctx)
	if err != nil {
		return nil, err
	}
	jenisTanah, err := s.refs.AllJenisTanah(ctx)
	if err != nil {
		return nil, err
	}
	return &SpopDropdowns{
		Provinsi:        provinsi,
		Kabupaten:       kabupaten,
		Kecamatan:       kecamatan,
		Kelurahan:       kelurahan,
		StatusSubjek:    statusSubjek,
		PekerjaanSubjek: pekerjaanSubjek,
		JenisTanah:      jenisTanah,
	}, nil
}
