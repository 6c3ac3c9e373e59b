package http

import (
	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/service"
)

func lookupBodies(items []model.LookupItem) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, gin.H{"id": item.ID, "nama": item.Nama})
	}
	return out
}

func dropdownBody(d *service.SpopDropdowns) gin.H {
	provinsi := make([]gin.H, 0, len(d.Provinsi))
	for _, p := range d.Provinsi {
		provinsi = append(provinsi, gin.H{"id": p.ID, "kode": p.Kode, "nama": p.Nama})
	}
	kabupaten := make([]gin.H, 0, len(d.Kabupaten))
	for _, k := range d.Kabupaten {
		kabupaten = append(kabupaten, gin.H{"id": k.ID, "provinsi_id": k.ProvinsiID, "kode": k.Kode, "nama": k.Nama})
	}
	kecamatan := make([]gin.H, 0, len(d.Kecamatan))
	for _, k := range d.Kecamatan {
		kecamatan = append(kecamatan, gin.H{"id": k.ID, "kabupaten_id": k.KabupatenID, "kode": k.Kode, "nama": k.Nama})
	}
	kelurahan := make([]gin.H, 0, len(d.Kelurahan))
	for _, k := range d.Kelurahan {
		kelurahan = append(kelurahan, gin.H{"id": k.ID, "kecamatan_id": k.KecamatanID, "kode": k.Kode, "nama": k.Nama})
	}
	return gin.H{
		"provinsi":         provinsi,
		"kabupaten":        kabupaten,
		"kecamatan":        kecamatan,
		"kelurahan":        kelurahan,
		"status_subjek":    lookupBodies(d.StatusSubjek),
		"pekerjaan_subjek": lookupBodies(d.PekerjaanSubjek),
		"jenis_tanah":      lookupBodies(d.JenisTanah),
	}
}

func (h *Handler) spopDropdowns(c *gin.Context) {
	dropdowns, err := h.dropdowns.Spop(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "data dropdown ditemukan", dropdownBody(dropdowns))
}
