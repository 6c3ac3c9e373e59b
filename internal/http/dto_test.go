package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
	"github.com/adiprasetyo/simpbb/internal/repository"
)

func TestSpopListBodies(t *testing.T) {
	items := []repository.SpopListItem{
		{
			Components: nop.Components{
				KdPropinsi:  "63",
				KdDati2:     "07",
				KdKecamatan: "050",
				KdKelurahan: "004",
				KdBlok:      "005",
				NoUrut:      "0123",
				KdJnsOp:     "0",
			},
			NmWp:           "BUDI SANTOSO",
			JalanOp:        "JL MERDEKA",
			JnsTransaksiOp: "1",
			NoFormulirSpop: "00000012345",
		},
	}

	bodies := spopListBodies(items)
	require.Len(t, bodies, 1)
	assert.Equal(t, "63.07.050.004.005.0123.0", bodies[0].NOP)
	assert.Equal(t, "pendaftaran", bodies[0].TransaksiLabel)
	assert.Equal(t, "BUDI SANTOSO", bodies[0].NmWp)
}

func TestSpptLegacyBodyComposesNOP(t *testing.T) {
	body := spptLegacyBody(&model.SpptLegacy{
		KdPropinsi:   "63",
		KdDati2:      "07",
		KdKecamatan:  "050",
		KdKelurahan:  "004",
		KdBlok:       "005",
		NoUrut:       "0123",
		KdJnsOp:      "0",
		ThnPajakSppt: "2024",
		NjopSppt:     150_000_000,
	})
	assert.Equal(t, "63.07.050.004.005.0123.0", body.NOP)
	assert.Equal(t, "2024", body.ThnPajakSppt)
}

func TestNoticeDetailBodiesComputeOwed(t *testing.T) {
	details := []model.NoticeDetail{
		{
			Notice: model.Notice{
				ID:           "n-1",
				NOP:          "630705000400501230",
				BumiNjop:     50_000_000,
				BangunanNjop: 24_000_000,
				Njoptkp:      12_000_000,
			},
			Persen: 0.002,
		},
	}

	bodies := noticeDetailBodies(details)
	require.Len(t, bodies, 1)
	assert.Equal(t, int64(124_000), bodies[0].PbbTerhutang)
	assert.Equal(t, "63.07.050.004.005.0123.0", bodies[0].NOP)
}

func TestSubjekBodyNil(t *testing.T) {
	assert.Nil(t, subjekBody(nil))
}

func TestPaymentBodies(t *testing.T) {
	paid := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	bodies := paymentBodies([]model.Payment{
		{
			ThnPajakSppt:      "2024",
			PembayaranSpptKe:  1,
			JmlSpptYgDibayar:  124_000,
			DendaSppt:         0,
			TglPembayaranSppt: &paid,
		},
	})
	require.Len(t, bodies, 1)
	assert.Equal(t, "2024", bodies[0].ThnPajakSppt)
	assert.Equal(t, int64(124_000), bodies[0].JmlSpptYgDibayar)
	assert.Equal(t, &paid, bodies[0].TglPembayaranSppt)
}

func TestPaymentBodiesEmpty(t *testing.T) {
	assert.NotNil(t, paymentBodies(nil))
	assert.Empty(t, paymentBodies(nil))
}
