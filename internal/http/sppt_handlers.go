package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/simpbb/internal/nop"
	"github.com/adiprasetyo/simpbb/internal/pdf"
	"github.com/adiprasetyo/simpbb/internal/service"
)

// listNotices serves the derived notices and keeps the standard
// envelope; everything else on the sppt group answers with the legacy
// one.
func (h *Handler) listNotices(c *gin.Context) {
	notices, summary, err := h.sppts.NoticesByNOP(c.Request.Context(), c.Query("nop"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data sppt ditemukan", gin.H{
		"notices": noticeDetailBodies(notices),
		"summary": noticeSummaryBody(summary),
	})
}

type verifikasiRequest struct {
	NOP           string `json:"nop"`
	SubjekPajakID string `json:"subjek_pajak_id"`
}

func (h *Handler) verifikasiSppt(c *gin.Context) {
	var req verifikasiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		legacyFail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	detail, err := h.sppts.Verifikasi(c.Request.Context(), req.NOP, req.SubjekPajakID)
	if err != nil {
		h.handleLegacyError(c, err)
		return
	}
	legacyOK(c, "objek pajak terverifikasi", spopDetailBody(detail))
}

func (h *Handler) searchSpptSpop(c *gin.Context) {
	input := service.SpopSearchInput{
		NOP:         c.Query("nop"),
		KdPropinsi:  c.Query("kd_propinsi"),
		KdDati2:     c.Query("kd_dati2"),
		KdKecamatan: c.Query("kd_kecamatan"),
		KdKelurahan: c.Query("kd_kelurahan"),
		KdBlok:      c.Query("kd_blok"),
		KdJnsOp:     c.Query("kd_jns_op"),
		NmWp:        c.Query("nm_wp"),
		JalanOp:     c.Query("jalan_op"),
	}
	page, limit := pageParams(c)

	items, total, err := h.spops.Search(c.Request.Context(), input, page, limit)
	if err != nil {
		h.handleLegacyError(c, err)
		return
	}
	pagination := newPagination(total, page, limit)
	legacyOK(c, "data objek pajak ditemukan", gin.H{
		"items":      spopListBodies(items),
		"pagination": pagination,
	})
}

func (h *Handler) spptYears(c *gin.Context) {
	years, err := h.sppts.Years(c.Request.Context())
	if err != nil {
		h.handleLegacyError(c, err)
		return
	}
	legacyOK(c, "tahun pajak ditemukan", years)
}

func (h *Handler) getLegacySppt(c *gin.Context) {
	sppt, payments, err := h.sppts.LegacyDetail(c.Request.Context(), c.Param("year"), c.Param("nop"))
	if err != nil {
		h.handleLegacyError(c, err)
		return
	}
	legacyOK(c, "data sppt ditemukan", gin.H{
		"sppt":       spptLegacyBody(sppt),
		"pembayaran": paymentBodies(payments),
	})
}

func (h *Handler) batchLegacySppt(c *gin.Context) {
	items, err := h.sppts.LegacyBatch(c.Request.Context(), c.Param("nop"))
	if err != nil {
		h.handleLegacyError(c, err)
		return
	}
	legacyOK(c, "data sppt ditemukan", spptLegacyBodies(items))
}

func (h *Handler) legacySpptPDF(c *gin.Context) {
	year, rawNOP := c.Param("year"), c.Param("nop")
	sppt, object, err := h.sppts.Enotice(c.Request.Context(), year, rawNOP)
	if err != nil {
		h.handleLegacyError(c, err)
		return
	}
	content, err := h.pdf.Generate(sppt, object)
	if err != nil {
		h.handleLegacyError(c, err)
		return
	}
	name := pdf.FileName(year, nop.Digits(rawNOP))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", content)
}

type espptRequest struct {
	NOP string `json:"nop"`
	KTP string `json:"ktp"`
}

func (h *Handler) esppt(c *gin.Context) {
	req := espptRequest{NOP: c.Query("nop"), KTP: c.Query("ktp")}
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&req); err != nil {
			legacyFail(c, http.StatusBadRequest, "payload tidak valid")
			return
		}
	}
	result, err := h.sppts.Esppt(c.Request.Context(), req.NOP, req.KTP)
	if err != nil {
		h.handleLegacyError(c, err)
		return
	}
	legacyOK(c, "data sppt ditemukan", gin.H{
		"objek_pajak": spopDetailBody(result.Object),
		"sppt":        spptLegacyBodies(result.Notices),
	})
}

type opRegistrationRequest struct {
	NOP    string `json:"nop"`
	NIK    string `json:"nik"`
	Nama   string `json:"nama"`
	Email  string `json:"email"`
	NoTelp string `json:"no_telp"`
	Alamat string `json:"alamat"`
}

func (h *Handler) registerOp(c *gin.Context) {
	var req opRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		legacyFail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	staged, err := h.sppts.RegisterObject(c.Request.Context(), service.OpRegistrationInput{
		NOP:    req.NOP,
		NIK:    req.NIK,
		Nama:   req.Nama,
		Email:  req.Email,
		NoTelp: req.NoTelp,
		Alamat: req.Alamat,
	})
	if err != nil {
		h.handleLegacyError(c, err)
		return
	}
	legacyCreated(c, "pendaftaran objek pajak diterima", gin.H{
		"id":     staged.ID,
		"nop":    staged.NOP,
		"status": staged.Status,
	})
}
