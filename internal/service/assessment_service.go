package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/config"
	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
)

// RateSource resolves NJOP class brackets and PBB-P2 rate rows.
type RateSource interface {
	GetKelasBumi(ctx context.Context, id int) (*model.NjopClass, error)
	GetKelasBangunan(ctx context.Context, id int) (*model.NjopClass, error)
	GetKabupaten(ctx context.Context, id int) (*model.Kabupaten, error)
	GetTarif(ctx context.Context, id int64) (*model.PbbTarif, error)
	AllTarif(ctx context.Context) ([]model.PbbTarif, error)
}

// NoticeStore persists derived tax notices.
type NoticeStore interface {
	InsertNotice(ctx context.Context, n *model.Notice) error
}

type AssessmentService struct {
	rates   RateSource
	notices NoticeStore
	cfg     config.PBBConfig
}

func NewAssessmentService(rates RateSource, notices NoticeStore, cfg config.PBBConfig) *AssessmentService {
	return &AssessmentService{rates: rates, notices: notices, cfg: cfg}
}

// Assess derives and stores one tax notice for a registration and its
// building addendum. A registration that is not yet approved is skipped
// without error and without a notice.
func (s *AssessmentService) Assess(ctx context.Context, reg *model.Registration, lampiran *model.Lampiran) (*model.Notice, error) {
	if strings.ToLower(strings.TrimSpace(reg.Status)) != "disetujui" {
		return nil, nil
	}

	regDigits := nop.Digits(reg.NOP)
	lspopDigits := nop.Digits(lampiran.NOP)
	if len(regDigits) != 18 || regDigits != lspopDigits {
		return nil, fmt.Errorf("%w: nop lampiran tidak sesuai dengan nop pendaftaran", ErrInvalidInput)
	}

	bumiNjop, err := s.landValue(ctx, reg)
	if err != nil {
		return nil, err
	}
	bangunanNjop, err := s.buildingValue(ctx, lampiran)
	if err != nil {
		return nil, err
	}

	tarif, err := s.pickTarif(ctx, reg)
	if err != nil {
		return nil, err
	}

	notice := &model.Notice{
		ID:           newID(),
		SpopID:       reg.ID,
		LspopID:      lampiran.ID,
		NOP:          regDigits,
		BumiNjop:     bumiNjop,
		BangunanNjop: bangunanNjop,
		Njoptkp:      s.cfg.NJOPTKP,
		PbbPersen:    tarif.ID,
		CreateAt:     time.Now(),
	}
	if err := s.notices.InsertNotice(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// Owed computes the payable amount from a notice and its rate fraction.
func Owed(bumiNjop, bangunanNjop, njoptkp int64, persen float64) int64 {
	base := bumiNjop + bangunanNjop - njoptkp
	if base < 0 {
		base = 0
	}
	return roundHalfUp(float64(base) * persen)
}

func (s *AssessmentService) landValue(ctx context.Context, reg *model.Registration) (int64, error) {
	if reg.KelasBumiNjop == 0 {
		return 0, nil
	}
	class, err := s.rates.GetKelasBumi(ctx, reg.KelasBumiNjop)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return int64(reg.LuasTanah) * int64(class.NjopPerM2), nil
}

func (s *AssessmentService) buildingValue(ctx context.Context, lampiran *model.Lampiran) (int64, error) {
	if lampiran.KelasBangunanNjop == 0 {
		return 0, nil
	}
	class, err := s.rates.GetKelasBangunan(ctx, lampiran.KelasBangunanNjop)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return int64(lampiran.LuasBangunanM2) * int64(class.NjopPerM2), nil
}

// pickTarif resolves the applicable pbb_p2 row: a fixed row id when the
// deployment configures one, otherwise a match of the registration's
// kabupaten name against pbb_p2.daerah.
func (s *AssessmentService) pickTarif(ctx context.Context, reg *model.Registration) (*model.PbbTarif, error) {
	if s.cfg.TarifID != 0 {
		tarif, err := s.rates.GetTarif(ctx, s.cfg.TarifID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: tarif pbb dengan id %d tidak ditemukan", ErrInvalidInput, s.cfg.TarifID)
			}
			return nil, err
		}
		return tarif, nil
	}

	kabupaten, err := s.rates.GetKabupaten(ctx, reg.KabupatenOp)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: kabupaten/kota pendaftaran tidak ditemukan", ErrInvalidInput)
		}
		return nil, err
	}

	wanted := normalizeDaerah(kabupaten.Nama)
	tarifs, err := s.rates.AllTarif(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tarifs {
		if normalizeDaerah(tarifs[i].Daerah) == wanted {
			return &tarifs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: tarif pbb untuk daerah %q tidak ditemukan", ErrInvalidInput, kabupaten.Nama)
}

// normalizeDaerah strips digits, lowercases, and trims so that names like
// "Kabupaten Hulu Sungai Tengah 01" and "kabupaten hulu sungai tengah"
// compare equal.
func normalizeDaerah(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= '0' && r <= '9' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// roundHalfUp rounds to the nearest integer with ties going up. Inputs
// here are never negative.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
