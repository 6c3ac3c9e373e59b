package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
	"github.com/adiprasetyo/simpbb/internal/service"
)

func (h *Handler) searchSpop(c *gin.Context) {
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
		h.handleError(c, err)
		return
	}

	pagination := newPagination(total, page, limit)
	prev, next := searchLinks(c, page, pagination.Pages)
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "data objek pajak ditemukan",
		Data:    spopListBodies(items),
		Meta: &Meta{
			Pagination: &pagination,
			Links:      &Links{Prev: prev, Next: next},
		},
	})
}

type spopRequest struct {
	NOP             string     `json:"nop"`
	KdPropinsi      string     `json:"kd_propinsi"`
	KdDati2         string     `json:"kd_dati2"`
	KdKecamatan     string     `json:"kd_kecamatan"`
	KdKelurahan     string     `json:"kd_kelurahan"`
	KdBlok          string     `json:"kd_blok"`
	NoUrut          string     `json:"no_urut"`
	KdJnsOp         string     `json:"kd_jns_op"`
	SubjekPajakID   string     `json:"subjek_pajak_id"`
	JnsTransaksiOp  string     `json:"jns_transaksi_op"`
	NoPersil        string     `json:"no_persil"`
	JalanOp         string     `json:"jalan_op"`
	BlokKavNoOp     string     `json:"blok_kav_no_op"`
	KelurahanOp     string     `json:"kelurahan_op"`
	RWOp            string     `json:"rw_op"`
	RTOp            string     `json:"rt_op"`
	KdStatusWp      string     `json:"kd_status_wp"`
	LuasBumi        float64    `json:"luas_bumi"`
	KdZnt           string     `json:"kd_znt"`
	JnsBumi         string     `json:"jns_bumi"`
	NilaiSistemBumi int64      `json:"nilai_sistem_bumi"`
	TglPendataanOp  *time.Time `json:"tgl_pendataan_op"`
	NmPendataanOp   string     `json:"nm_pendataan_op"`
	NipPendata      string     `json:"nip_pendata"`
	TglPemeriksaan  *time.Time `json:"tgl_pemeriksaan_op"`
	NmPemeriksaanOp string     `json:"nm_pemeriksaan_op"`
	NipPemeriksaOp  string     `json:"nip_pemeriksa_op"`
	NipPerekamOp    string     `json:"nip_perekam_op"`
	NoSpptLama      string     `json:"no_sppt_lama"`
}

func (r spopRequest) toModel() model.Spop {
	return model.Spop{
		KdPropinsi:       r.KdPropinsi,
		KdDati2:          r.KdDati2,
		KdKecamatan:      r.KdKecamatan,
		KdKelurahan:      r.KdKelurahan,
		KdBlok:           r.KdBlok,
		NoUrut:           r.NoUrut,
		KdJnsOp:          r.KdJnsOp,
		SubjekPajakID:    r.SubjekPajakID,
		JnsTransaksiOp:   r.JnsTransaksiOp,
		NoPersil:         r.NoPersil,
		JalanOp:          r.JalanOp,
		BlokKavNoOp:      r.BlokKavNoOp,
		KelurahanOp:      r.KelurahanOp,
		RWOp:             r.RWOp,
		RTOp:             r.RTOp,
		KdStatusWp:       r.KdStatusWp,
		LuasBumi:         r.LuasBumi,
		KdZnt:            r.KdZnt,
		JnsBumi:          r.JnsBumi,
		NilaiSistemBumi:  r.NilaiSistemBumi,
		TglPendataanOp:   r.TglPendataanOp,
		NmPendataanOp:    r.NmPendataanOp,
		NipPendata:       r.NipPendata,
		TglPemeriksaanOp: r.TglPemeriksaan,
		NmPemeriksaanOp:  r.NmPemeriksaanOp,
		NipPemeriksaOp:   r.NipPemeriksaOp,
		NipPerekamOp:     r.NipPerekamOp,
		NoSpptLama:       r.NoSpptLama,
	}
}

func (h *Handler) createSpop(c *gin.Context) {
	var req spopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	spop := req.toModel()
	if req.NOP != "" {
		parsed, err := nop.Parse(req.NOP)
		if err != nil {
			fail(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		spop.KdPropinsi = parsed.KdPropinsi
		spop.KdDati2 = parsed.KdDati2
		spop.KdKecamatan = parsed.KdKecamatan
		spop.KdKelurahan = parsed.KdKelurahan
		spop.KdBlok = parsed.KdBlok
		spop.NoUrut = parsed.NoUrut
		spop.KdJnsOp = parsed.KdJnsOp
	}
	detail, err := h.spops.Create(c.Request.Context(), spop)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "objek pajak berhasil disimpan", spopDetailBody(detail))
}

func (h *Handler) getSpopByNOP(c *gin.Context) {
	detail, err := h.spops.DetailByNOP(c.Request.Context(), c.Param("nop"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data objek pajak ditemukan", spopDetailBody(detail))
}

// pathComponents reads the seven NOP segments from the route path.
func pathComponents(c *gin.Context) nop.Components {
	return nop.Components{
		KdPropinsi:  c.Param("kd_propinsi"),
		KdDati2:     c.Param("kd_dati2"),
		KdKecamatan: c.Param("kd_kecamatan"),
		KdKelurahan: c.Param("kd_kelurahan"),
		KdBlok:      c.Param("kd_blok"),
		NoUrut:      c.Param("no_urut"),
		KdJnsOp:     c.Param("kd_jns_op"),
	}
}

func (h *Handler) getSpop(c *gin.Context) {
	detail, err := h.spops.Detail(c.Request.Context(), pathComponents(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data objek pajak ditemukan", spopDetailBody(detail))
}

func (h *Handler) updateSpopByNOP(c *gin.Context) {
	parsed, err := nop.Parse(c.Param("nop"))
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.updateSpopComponents(c, parsed)
}

func (h *Handler) updateSpop(c *gin.Context) {
	h.updateSpopComponents(c, pathComponents(c))
}

func (h *Handler) updateSpopComponents(c *gin.Context, key nop.Components) {
	var req spopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	spop := req.toModel()
	spop.KdPropinsi = key.KdPropinsi
	spop.KdDati2 = key.KdDati2
	spop.KdKecamatan = key.KdKecamatan
	spop.KdKelurahan = key.KdKelurahan
	spop.KdBlok = key.KdBlok
	spop.NoUrut = key.NoUrut
	spop.KdJnsOp = key.KdJnsOp

	detail, err := h.spops.Update(c.Request.Context(), spop)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "objek pajak berhasil diperbarui", spopDetailBody(detail))
}

func (h *Handler) deleteSpopByNOP(c *gin.Context) {
	parsed, err := nop.Parse(c.Param("nop"))
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.deleteSpopComponents(c, parsed)
}

func (h *Handler) deleteSpop(c *gin.Context) {
	h.deleteSpopComponents(c, pathComponents(c))
}

func (h *Handler) deleteSpopComponents(c *gin.Context, key nop.Components) {
	if err := h.spops.Delete(c.Request.Context(), key); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "objek pajak berhasil dihapus", nil)
}

func (h *Handler) riwayatSpop(c *gin.Context) {
	components := nop.Components{
		KdPropinsi:  c.Query("kd_propinsi"),
		KdDati2:     c.Query("kd_dati2"),
		KdKecamatan: c.Query("kd_kecamatan"),
		KdKelurahan: c.Query("kd_kelurahan"),
		KdBlok:      c.Query("kd_blok"),
		NoUrut:      c.Query("no_urut"),
		KdJnsOp:     c.Query("kd_jns_op"),
	}
	entries, err := h.spops.Riwayat(c.Request.Context(), c.Query("nop"), components)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "riwayat objek pajak ditemukan", riwayatBodies(entries))
}
