package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/service"
)

type wilayahRequest struct {
	Kode     string `json:"kode"`
	Nama     string `json:"nama"`
	ParentID int    `json:"parent_id"`
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		fail(c, http.StatusBadRequest, "id tidak valid")
		return 0, false
	}
	return id, true
}

func bindWilayah(c *gin.Context) (wilayahRequest, bool) {
	var req wilayahRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return req, false
	}
	return req, true
}

func wilayahBody(id int, kode, nama string) gin.H {
	return gin.H{"id": id, "kode": kode, "nama": nama}
}

func (h *Handler) listProvinsi(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := h.refs.ListProvinsi(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	data := make([]gin.H, 0, len(items))
	for _, p := range items {
		data = append(data, wilayahBody(p.ID, p.Kode, p.Nama))
	}
	paginated(c, "data provinsi ditemukan", data, total, page, limit)
}

func (h *Handler) getProvinsi(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	p, err := h.refs.GetProvinsi(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data provinsi ditemukan", wilayahBody(p.ID, p.Kode, p.Nama))
}

func (h *Handler) createProvinsi(c *gin.Context) {
	req, valid := bindWilayah(c)
	if !valid {
		return
	}
	p, err := h.refs.CreateProvinsi(c.Request.Context(), model.Provinsi{Kode: req.Kode, Nama: req.Nama})
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "provinsi berhasil disimpan", wilayahBody(p.ID, p.Kode, p.Nama))
}

func (h *Handler) updateProvinsi(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	req, valid := bindWilayah(c)
	if !valid {
		return
	}
	p, err := h.refs.UpdateProvinsi(c.Request.Context(), id, req.Kode, req.Nama)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "provinsi berhasil diperbarui", wilayahBody(p.ID, p.Kode, p.Nama))
}

func (h *Handler) deleteProvinsi(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.refs.DeleteProvinsi(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "provinsi berhasil dihapus", nil)
}

func (h *Handler) listKabupaten(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := h.refs.ListKabupaten(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	data := make([]gin.H, 0, len(items))
	for _, k := range items {
		data = append(data, gin.H{"id": k.ID, "provinsi_id": k.ProvinsiID, "kode": k.Kode, "nama": k.Nama})
	}
	paginated(c, "data kabupaten ditemukan", data, total, page, limit)
}

func (h *Handler) getKabupaten(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	k, err := h.refs.GetKabupaten(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data kabupaten ditemukan", gin.H{"id": k.ID, "provinsi_id": k.ProvinsiID, "kode": k.Kode, "nama": k.Nama})
}

func (h *Handler) createKabupaten(c *gin.Context) {
	req, valid := bindWilayah(c)
	if !valid {
		return
	}
	k, err := h.refs.CreateKabupaten(c.Request.Context(), model.Kabupaten{ProvinsiID: req.ParentID, Kode: req.Kode, Nama: req.Nama})
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "kabupaten berhasil disimpan", gin.H{"id": k.ID, "provinsi_id": k.ProvinsiID, "kode": k.Kode, "nama": k.Nama})
}

func (h *Handler) updateKabupaten(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	req, valid := bindWilayah(c)
	if !valid {
		return
	}
	k, err := h.refs.UpdateKabupaten(c.Request.Context(), id, req.Kode, req.Nama)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kabupaten berhasil diperbarui", gin.H{"id": k.ID, "provinsi_id": k.ProvinsiID, "kode": k.Kode, "nama": k.Nama})
}

func (h *Handler) deleteKabupaten(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.refs.DeleteKabupaten(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kabupaten berhasil dihapus", nil)
}

func (h *Handler) listKecamatan(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := h.refs.ListKecamatan(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	data := make([]gin.H, 0, len(items))
	for _, k := range items {
		data = append(data, gin.H{"id": k.ID, "kabupaten_id": k.KabupatenID, "kode": k.Kode, "nama": k.Nama})
	}
	paginated(c, "data kecamatan ditemukan", data, total, page, limit)
}

func (h *Handler) getKecamatan(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	k, err := h.refs.GetKecamatan(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data kecamatan ditemukan", gin.H{"id": k.ID, "kabupaten_id": k.KabupatenID, "kode": k.Kode, "nama": k.Nama})
}

func (h *Handler) createKecamatan(c *gin.Context) {
	req, valid := bindWilayah(c)
	if !valid {
		return
	}
	k, err := h.refs.CreateKecamatan(c.Request.Context(), model.Kecamatan{KabupatenID: req.ParentID, Kode: req.Kode, Nama: req.Nama})
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "kecamatan berhasil disimpan", gin.H{"id": k.ID, "kabupaten_id": k.KabupatenID, "kode": k.Kode, "nama": k.Nama})
}

func (h *Handler) updateKecamatan(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	req, valid := bindWilayah(c)
	if !valid {
		return
	}
	k, err := h.refs.UpdateKecamatan(c.Request.Context(), id, req.Kode, req.Nama)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kecamatan berhasil diperbarui", gin.H{"id": k.ID, "kabupaten_id": k.KabupatenID, "kode": k.Kode, "nama": k.Nama})
}

func (h *Handler) deleteKecamatan(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.refs.DeleteKecamatan(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kecamatan berhasil dihapus", nil)
}

func (h *Handler) listKelurahan(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := h.refs.ListKelurahan(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	data := make([]gin.H, 0, len(items))
	for _, k := range items {
		data = append(data, gin.H{"id": k.ID, "kecamatan_id": k.KecamatanID, "kode": k.Kode, "nama": k.Nama})
	}
	paginated(c, "data kelurahan ditemukan", data, total, page, limit)
}

func (h *Handler) getKelurahan(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	k, err := h.refs.GetKelurahan(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data kelurahan ditemukan", gin.H{"id": k.ID, "kecamatan_id": k.KecamatanID, "kode": k.Kode, "nama": k.Nama})
}

func (h *Handler) createKelurahan(c *gin.Context) {
	req, valid := bindWilayah(c)
	if !valid {
		return
	}
	k, err := h.refs.CreateKelurahan(c.Request.Context(), model.Kelurahan{KecamatanID: req.ParentID, Kode: req.Kode, Nama: req.Nama})
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "kelurahan berhasil disimpan", gin.H{"id": k.ID, "kecamatan_id": k.KecamatanID, "kode": k.Kode, "nama": k.Nama})
}

func (h *Handler) updateKelurahan(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	req, valid := bindWilayah(c)
	if !valid {
		return
	}
	k, err := h.refs.UpdateKelurahan(c.Request.Context(), id, req.Kode, req.Nama)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kelurahan berhasil diperbarui", gin.H{"id": k.ID, "kecamatan_id": k.KecamatanID, "kode": k.Kode, "nama": k.Nama})
}

func (h *Handler) deleteKelurahan(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.refs.DeleteKelurahan(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kelurahan berhasil dihapus", nil)
}

type njopClassRequest struct {
	Kelas     *string  `json:"kelas"`
	MinNilai  *int64   `json:"min_nilai"`
	MaxNilai  *int64   `json:"max_nilai"`
	NjopPerM2 *float64 `json:"njop_per_m2"`
}

func (r njopClassRequest) toModel() model.NjopClass {
	var k model.NjopClass
	if r.Kelas != nil {
		k.Kelas = *r.Kelas
	}
	if r.MinNilai != nil {
		k.MinNilai = *r.MinNilai
	}
	if r.MaxNilai != nil {
		k.MaxNilai = *r.MaxNilai
	}
	if r.NjopPerM2 != nil {
		k.NjopPerM2 = *r.NjopPerM2
	}
	return k
}

func (r njopClassRequest) toInput() service.NjopClassInput {
	return service.NjopClassInput{
		Kelas:     r.Kelas,
		MinNilai:  r.MinNilai,
		MaxNilai:  r.MaxNilai,
		NjopPerM2: r.NjopPerM2,
	}
}

func (h *Handler) listKelasBumi(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := h.refs.ListKelasBumi(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	paginated(c, "data kelas bumi ditemukan", njopClassBodies(items), total, page, limit)
}

func (h *Handler) getKelasBumi(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	k, err := h.refs.GetKelasBumi(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data kelas bumi ditemukan", njopClassBody(*k))
}

func (h *Handler) createKelasBumi(c *gin.Context) {
	var req njopClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	k, err := h.refs.CreateKelasBumi(c.Request.Context(), req.toModel())
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "kelas bumi berhasil disimpan", njopClassBody(*k))
}

func (h *Handler) updateKelasBumi(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req njopClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	k, err := h.refs.UpdateKelasBumi(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kelas bumi berhasil diperbarui", njopClassBody(*k))
}

func (h *Handler) deleteKelasBumi(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.refs.DeleteKelasBumi(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kelas bumi berhasil dihapus", nil)
}

func (h *Handler) listKelasBangunan(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := h.refs.ListKelasBangunan(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	paginated(c, "data kelas bangunan ditemukan", njopClassBodies(items), total, page, limit)
}

func (h *Handler) getKelasBangunan(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	k, err := h.refs.GetKelasBangunan(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data kelas bangunan ditemukan", njopClassBody(*k))
}

func (h *Handler) createKelasBangunan(c *gin.Context) {
	var req njopClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	k, err := h.refs.CreateKelasBangunan(c.Request.Context(), req.toModel())
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "kelas bangunan berhasil disimpan", njopClassBody(*k))
}

func (h *Handler) updateKelasBangunan(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req njopClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	k, err := h.refs.UpdateKelasBangunan(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kelas bangunan berhasil diperbarui", njopClassBody(*k))
}

func (h *Handler) deleteKelasBangunan(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.refs.DeleteKelasBangunan(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "kelas bangunan berhasil dihapus", nil)
}
