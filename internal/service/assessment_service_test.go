package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/config"
	"github.com/adiprasetyo/simpbb/internal/model"
)

type fakeRates struct {
	bumi      map[int]model.NjopClass
	bangunan  map[int]model.NjopClass
	kabupaten map[int]model.Kabupaten
	tarifs    []model.PbbTarif
}

func (f *fakeRates) GetKelasBumi(_ context.Context, id int) (*model.NjopClass, error) {
	if c, ok := f.bumi[id]; ok {
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRates) GetKelasBangunan(_ context.Context, id int) (*model.NjopClass, error) {
	if c, ok := f.bangunan[id]; ok {
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRates) GetKabupaten(_ context.Context, id int) (*model.Kabupaten, error) {
	if k, ok := f.kabupaten[id]; ok {
		return &k, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRates) GetTarif(_ context.Context, id int64) (*model.PbbTarif, error) {
	for i := range f.tarifs {
		if f.tarifs[i].ID == id {
			return &f.tarifs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRates) AllTarif(_ context.Context) ([]model.PbbTarif, error) {
	return f.tarifs, nil
}

type fakeNotices struct {
	inserted []model.Notice
}

func (f *fakeNotices) InsertNotice(_ context.Context, n *model.Notice) error {
	f.inserted = append(f.inserted, *n)
	return nil
}

func approvedRegistration() *model.Registration {
	return &model.Registration{
		ID:            "reg-1",
		NOP:           "01.02.030.040.050.0601.7",
		KabupatenOp:   2,
		LuasTanah:     100,
		KelasBumiNjop: 1,
		Status:        "disetujui",
	}
}

func buildingLampiran() *model.Lampiran {
	return &model.Lampiran{
		ID:                "lsp-1",
		NOP:               "010203004005006017",
		LuasBangunanM2:    80,
		KelasBangunanNjop: 1,
	}
}

func testRates() *fakeRates {
	return &fakeRates{
		bumi:      map[int]model.NjopClass{1: {ID: 1, Kelas: "050", NjopPerM2: 500000}},
		bangunan:  map[int]model.NjopClass{1: {ID: 1, Kelas: "030", NjopPerM2: 300000}},
		kabupaten: map[int]model.Kabupaten{2: {ID: 2, Nama: "Kabupaten Hulu Sungai Tengah"}},
		tarifs:    []model.PbbTarif{{ID: 7, Daerah: "kabupaten hulu sungai tengah", Persen: 0.002}},
	}
}

func TestAssessComputesNoticeValues(t *testing.T) {
	notices := &fakeNotices{}
	svc := NewAssessmentService(testRates(), notices, config.PBBConfig{NJOPTKP: 12000000})

	notice, err := svc.Assess(context.Background(), approvedRegistration(), buildingLampiran())
	require.NoError(t, err)
	require.NotNil(t, notice)
	require.Len(t, notices.inserted, 1)

	assert.Equal(t, int64(50000000), notice.BumiNjop)
	assert.Equal(t, int64(24000000), notice.BangunanNjop)
	assert.Equal(t, int64(12000000), notice.Njoptkp)
	assert.Equal(t, int64(7), notice.PbbPersen)
	assert.Equal(t, "010203004005006017", notice.NOP)

	owed := Owed(notice.BumiNjop, notice.BangunanNjop, notice.Njoptkp, 0.002)
	assert.Equal(t, int64(124000), owed)
}

func TestAssessSkipsUnapprovedRegistration(t *testing.T) {
	notices := &fakeNotices{}
	svc := NewAssessmentService(testRates(), notices, config.PBBConfig{NJOPTKP: 12000000})

	reg := approvedRegistration()
	reg.Status = "menunggu verifikasi"

	notice, err := svc.Assess(context.Background(), reg, buildingLampiran())
	require.NoError(t, err)
	assert.Nil(t, notice)
	assert.Empty(t, notices.inserted)
}

func TestAssessRejectsMismatchedNOP(t *testing.T) {
	svc := NewAssessmentService(testRates(), &fakeNotices{}, config.PBBConfig{NJOPTKP: 12000000})

	lampiran := buildingLampiran()
	lampiran.NOP = "010203004005006018"

	_, err := svc.Assess(context.Background(), approvedRegistration(), lampiran)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAssessFixedTarifMissing(t *testing.T) {
	svc := NewAssessmentService(testRates(), &fakeNotices{}, config.PBBConfig{NJOPTKP: 12000000, TarifID: 99})

	_, err := svc.Assess(context.Background(), approvedRegistration(), buildingLampiran())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAssessUnmatchedDaerah(t *testing.T) {
	rates := testRates()
	rates.tarifs = []model.PbbTarif{{ID: 1, Daerah: "kota lain", Persen: 0.001}}
	svc := NewAssessmentService(rates, &fakeNotices{}, config.PBBConfig{NJOPTKP: 12000000})

	_, err := svc.Assess(context.Background(), approvedRegistration(), buildingLampiran())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAssessMissingLandClassValuesZero(t *testing.T) {
	notices := &fakeNotices{}
	svc := NewAssessmentService(testRates(), notices, config.PBBConfig{NJOPTKP: 12000000})

	reg := approvedRegistration()
	reg.KelasBumiNjop = 0

	notice, err := svc.Assess(context.Background(), reg, buildingLampiran())
	require.NoError(t, err)
	assert.Equal(t, int64(0), notice.BumiNjop)
	assert.Equal(t, int64(24000000), notice.BangunanNjop)
}

func TestOwedRoundsHalfUp(t *testing.T) {
	// base x persen = 100.5 rounds up, 100.4 rounds down
	assert.Equal(t, int64(101), Owed(1005, 0, 0, 0.1))
	assert.Equal(t, int64(100), Owed(1004, 0, 0, 0.1))
}

func TestOwedZeroBelowThreshold(t *testing.T) {
	assert.Equal(t, int64(0), Owed(5000000, 4000000, 12000000, 0.002))
}

func TestNormalizeDaerahStripsDigitsAndCase(t *testing.T) {
	assert.Equal(t, "kabupaten hulu sungai tengah",
		normalizeDaerah(" Kabupaten Hulu Sungai Tengah 01 "))
}
