package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/simpbb/internal/service"
)

type createLspopRequest struct {
	NOP              string  `json:"nop"`
	JnsPelayanan     string  `json:"jns_pelayanan"`
	KdJpb            string  `json:"kd_jpb"`
	NoBng            int     `json:"no_bng"`
	JnsPenggunaanBng string  `json:"jns_penggunaan_bng"`
	LuasBangunanM2   float64 `json:"luas_bangunan_m2"`
	JmlLantaiBng     int     `json:"jml_lantai_bng"`
	ThnDibangunBng   string  `json:"thn_dibangun_bng"`
	ThnRenovasiBng   string  `json:"thn_renovasi_bng"`
	DayaListrik      int     `json:"daya_listrik"`
	KondisiBng       string  `json:"kondisi_bng"`
	JnsKonstruksiBng string  `json:"jns_konstruksi_bng"`
	JnsAtapBng       string  `json:"jns_atap_bng"`
	KdDinding        string  `json:"kd_dinding"`
	KdLantai         string  `json:"kd_lantai"`
	KdLangitLangit   string  `json:"kd_langit_langit"`
	NilaiSistemBng   int64   `json:"nilai_sistem_bng"`
}

func (h *Handler) createLspop(c *gin.Context) {
	var req createLspopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	detail, notice, err := h.lspops.Create(c.Request.Context(), service.CreateLspopInput{
		NOP:              req.NOP,
		JnsPelayanan:     req.JnsPelayanan,
		KdJpb:            req.KdJpb,
		NoBng:            req.NoBng,
		JnsPenggunaanBng: req.JnsPenggunaanBng,
		LuasBangunanM2:   req.LuasBangunanM2,
		JmlLantaiBng:     req.JmlLantaiBng,
		ThnDibangunBng:   req.ThnDibangunBng,
		ThnRenovasiBng:   req.ThnRenovasiBng,
		DayaListrik:      req.DayaListrik,
		KondisiBng:       req.KondisiBng,
		JnsKonstruksiBng: req.JnsKonstruksiBng,
		JnsAtapBng:       req.JnsAtapBng,
		KdDinding:        req.KdDinding,
		KdLantai:         req.KdLantai,
		KdLangitLangit:   req.KdLangitLangit,
		NilaiSistemBng:   req.NilaiSistemBng,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	data := gin.H{"lspop": lampiranBody(detail)}
	if notice != nil {
		data["sppt"] = noticeBody(notice)
	}
	created(c, "data bangunan berhasil disimpan", data)
}

func (h *Handler) listLspop(c *gin.Context) {
	page, limit := pageParams(c)
	details, total, err := h.lspops.List(c.Request.Context(), c.Query("nop"), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	paginated(c, "data bangunan ditemukan", lampiranBodies(details), total, page, limit)
}

func (h *Handler) getLspop(c *gin.Context) {
	detail, err := h.lspops.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data bangunan ditemukan", lampiranBody(detail))
}

type updateLspopRequest struct {
	JnsPelayanan     *string  `json:"jns_pelayanan"`
	KdJpb            *string  `json:"kd_jpb"`
	NoBng            *int     `json:"no_bng"`
	JnsPenggunaanBng *string  `json:"jns_penggunaan_bng"`
	LuasBangunanM2   *float64 `json:"luas_bangunan_m2"`
	JmlLantaiBng     *int     `json:"jml_lantai_bng"`
	ThnDibangunBng   *string  `json:"thn_dibangun_bng"`
	ThnRenovasiBng   *string  `json:"thn_renovasi_bng"`
	DayaListrik      *int     `json:"daya_listrik"`
	KondisiBng       *string  `json:"kondisi_bng"`
	JnsKonstruksiBng *string  `json:"jns_konstruksi_bng"`
	JnsAtapBng       *string  `json:"jns_atap_bng"`
	KdDinding        *string  `json:"kd_dinding"`
	KdLantai         *string  `json:"kd_lantai"`
	KdLangitLangit   *string  `json:"kd_langit_langit"`
	NilaiSistemBng   *int64   `json:"nilai_sistem_bng"`
}

func (h *Handler) updateLspop(c *gin.Context) {
	var req updateLspopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	detail, err := h.lspops.Update(c.Request.Context(), c.Param("id"), service.UpdateLspopInput{
		JnsPelayanan:     req.JnsPelayanan,
		KdJpb:            req.KdJpb,
		NoBng:            req.NoBng,
		JnsPenggunaanBng: req.JnsPenggunaanBng,
		LuasBangunanM2:   req.LuasBangunanM2,
		JmlLantaiBng:     req.JmlLantaiBng,
		ThnDibangunBng:   req.ThnDibangunBng,
		ThnRenovasiBng:   req.ThnRenovasiBng,
		DayaListrik:      req.DayaListrik,
		KondisiBng:       req.KondisiBng,
		JnsKonstruksiBng: req.JnsKonstruksiBng,
		JnsAtapBng:       req.JnsAtapBng,
		KdDinding:        req.KdDinding,
		KdLantai:         req.KdLantai,
		KdLangitLangit:   req.KdLangitLangit,
		NilaiSistemBng:   req.NilaiSistemBng,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data bangunan berhasil diperbarui", lampiranBody(detail))
}

type staffLspopRequest struct {
	Status             string `json:"status"`
	Keterangan         string `json:"keterangan"`
	NamaPetugas        string `json:"nama_petugas"`
	NIP                string `json:"nip"`
	KelasBangunanNjop  string `json:"kelas_bangunan_njop"`
	TanggalPelaksanaan string `json:"tanggal_pelaksanaan"`
}

func (h *Handler) staffUpdateLspop(c *gin.Context) {
	var req staffLspopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	input := service.StaffLspopUpdateInput{
		Status:            req.Status,
		Keterangan:        req.Keterangan,
		NamaPetugas:       req.NamaPetugas,
		NIP:               req.NIP,
		KelasBangunanNjop: req.KelasBangunanNjop,
	}
	if req.TanggalPelaksanaan != "" {
		parsed, err := parseDate(req.TanggalPelaksanaan)
		if err != nil {
			fail(c, http.StatusBadRequest, "tanggal_pelaksanaan tidak valid")
			return
		}
		input.TanggalPelaksanaan = &parsed
	}
	detail, err := h.lspops.StaffUpdate(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data bangunan berhasil diverifikasi", lampiranBody(detail))
}

func (h *Handler) deleteLspop(c *gin.Context) {
	if err := h.lspops.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data bangunan berhasil dihapus", nil)
}
