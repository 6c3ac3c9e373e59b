package http

import (
	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/simpbb/internal/service"
)

func dashboardInput(c *gin.Context) service.DashboardInput {
	return service.DashboardInput{
		Year:        c.Query("year"),
		KdPropinsi:  c.Query("kd_propinsi"),
		KdDati2:     c.Query("kd_dati2"),
		KdKecamatan: c.Query("kd_kecamatan"),
		KdKelurahan: c.Query("kd_kelurahan"),
	}
}

func (h *Handler) dashboardCards(c *gin.Context) {
	cards, err := h.dashboards.Cards(c.Request.Context(), dashboardInput(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data dashboard ditemukan", gin.H{
		"jumlah_objek":    cards.JumlahObjek,
		"total_luas_bng":  cards.TotalLuasBng,
		"total_terhutang": cards.TotalTerhutang,
		"jumlah_lunas":    cards.JumlahLunas,
		"total_realisasi": cards.TotalRealisasi,
	})
}

func (h *Handler) dashboardGraph(c *gin.Context) {
	points, err := h.dashboards.Graph(c.Request.Context(), dashboardInput(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	data := make([]gin.H, 0, len(points))
	for _, p := range points {
		data = append(data, gin.H{"bulan": p.Bulan, "realisasi": p.Realisasi})
	}
	ok(c, "data realisasi ditemukan", data)
}
