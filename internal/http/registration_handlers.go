package http

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adiprasetyo/simpbb/internal/excel"
	"github.com/adiprasetyo/simpbb/internal/service"
)

type createRegistrationRequest struct {
	NamaAwal        string  `json:"nama_awal"`
	NikAwal         string  `json:"nik_awal"`
	AlamatRumahAwal string  `json:"alamat_rumah_awal"`
	NoTelpAwal      string  `json:"no_telp_awal"`
	ProvinsiOp      int     `json:"provinsi_op"`
	KabupatenOp     int     `json:"kabupaten_op"`
	KecamatanOp     int     `json:"kecamatan_op"`
	KelurahanOp     int     `json:"kelurahan_op"`
	BlokOp          string  `json:"blok_op"`
	NoUrutOp        string  `json:"no_urut_op"`
	KodeKhusus      int     `json:"kode_khusus"`
	NamaLengkap     string  `json:"nama_lengkap"`
	NIK             string  `json:"nik"`
	StatusSubjek    int     `json:"status_subjek"`
	PekerjaanSubjek int     `json:"pekerjaan_subjek"`
	NPWP            string  `json:"npwp"`
	NoTelpSubjek    string  `json:"no_telp_subjek"`
	JalanSubjek     string  `json:"jalan_subjek"`
	BlokKavNoSubjek string  `json:"blok_kav_no_subjek"`
	KelurahanSubjek int     `json:"kelurahan_subjek"`
	KecamatanSubjek int     `json:"kecamatan_subjek"`
	KabupatenSubjek int     `json:"kabupaten_subjek"`
	ProvinsiSubjek  int     `json:"provinsi_subjek"`
	RTSubjek        string  `json:"rt_subjek"`
	RWSubjek        string  `json:"rw_subjek"`
	KodePosSubjek   string  `json:"kode_pos_subjek"`
	JenisTanah      int     `json:"jenis_tanah"`
	LuasTanah       float64 `json:"luas_tanah"`
}

func (h *Handler) createRegistration(c *gin.Context) {
	if c.ContentType() == "application/json" {
		var req createRegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "payload tidak valid")
			return
		}
		detail, err := h.registrations.Create(c.Request.Context(), service.CreateRegistrationInput{
			NamaAwal:        req.NamaAwal,
			NikAwal:         req.NikAwal,
			AlamatRumahAwal: req.AlamatRumahAwal,
			NoTelpAwal:      req.NoTelpAwal,
			ProvinsiOp:      req.ProvinsiOp,
			KabupatenOp:     req.KabupatenOp,
			KecamatanOp:     req.KecamatanOp,
			KelurahanOp:     req.KelurahanOp,
			BlokOp:          req.BlokOp,
			NoUrutOp:        req.NoUrutOp,
			KodeKhusus:      req.KodeKhusus,
			NamaLengkap:     req.NamaLengkap,
			NIK:             req.NIK,
			StatusSubjek:    req.StatusSubjek,
			PekerjaanSubjek: req.PekerjaanSubjek,
			NPWP:            req.NPWP,
			NoTelpSubjek:    req.NoTelpSubjek,
			JalanSubjek:     req.JalanSubjek,
			BlokKavNoSubjek: req.BlokKavNoSubjek,
			KelurahanSubjek: req.KelurahanSubjek,
			KecamatanSubjek: req.KecamatanSubjek,
			KabupatenSubjek: req.KabupatenSubjek,
			ProvinsiSubjek:  req.ProvinsiSubjek,
			RTSubjek:        req.RTSubjek,
			RWSubjek:        req.RWSubjek,
			KodePosSubjek:   req.KodePosSubjek,
			JenisTanah:      req.JenisTanah,
			LuasTanah:       req.LuasTanah,
		})
		if err != nil {
			h.handleError(c, err)
			return
		}
		created(c, "pendaftaran berhasil diajukan", registrationBody(detail))
		return
	}

	input := service.CreateRegistrationInput{
		NamaAwal:        c.PostForm("nama_awal"),
		NikAwal:         c.PostForm("nik_awal"),
		AlamatRumahAwal: c.PostForm("alamat_rumah_awal"),
		NoTelpAwal:      c.PostForm("no_telp_awal"),
		ProvinsiOp:      formInt(c, "provinsi_op"),
		KabupatenOp:     formInt(c, "kabupaten_op"),
		KecamatanOp:     formInt(c, "kecamatan_op"),
		KelurahanOp:     formInt(c, "kelurahan_op"),
		BlokOp:          c.PostForm("blok_op"),
		NoUrutOp:        c.PostForm("no_urut_op"),
		KodeKhusus:      formInt(c, "kode_khusus"),
		NamaLengkap:     c.PostForm("nama_lengkap"),
		NIK:             c.PostForm("nik"),
		StatusSubjek:    formInt(c, "status_subjek"),
		PekerjaanSubjek: formInt(c, "pekerjaan_subjek"),
		NPWP:            c.PostForm("npwp"),
		NoTelpSubjek:    c.PostForm("no_telp_subjek"),
		JalanSubjek:     c.PostForm("jalan_subjek"),
		BlokKavNoSubjek: c.PostForm("blok_kav_no_subjek"),
		KelurahanSubjek: formInt(c, "kelurahan_subjek"),
		KecamatanSubjek: formInt(c, "kecamatan_subjek"),
		KabupatenSubjek: formInt(c, "kabupaten_subjek"),
		ProvinsiSubjek:  formInt(c, "provinsi_subjek"),
		RTSubjek:        c.PostForm("rt_subjek"),
		RWSubjek:        c.PostForm("rw_subjek"),
		KodePosSubjek:   c.PostForm("kode_pos_subjek"),
		JenisTanah:      formInt(c, "jenis_tanah"),
		LuasTanah:       formFloat(c, "luas_tanah"),
	}

	files := map[string]*string{
		"file_ktp":           &input.FileKtp,
		"file_sertifikat":    &input.FileSertifikat,
		"file_sppt_tetangga": &input.FileSpptTetangga,
		"file_foto_objek":    &input.FileFotoObjek,
		"file_surat_kuasa":   &input.FileSuratKuasa,
		"file_pendukung":     &input.FilePendukung,
	}
	for field, target := range files {
		file, err := c.FormFile(field)
		if err != nil {
			continue
		}
		saved, err := h.saveUpload(c, file)
		if err != nil {
			h.handleError(c, err)
			return
		}
		*target = saved
	}

	detail, err := h.registrations.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	created(c, "pendaftaran berhasil diajukan", registrationBody(detail))
}

func (h *Handler) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%s%s", strings.ReplaceAll(uuid.New().String(), "-", ""), filepath.Ext(file.Filename))
	dst := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func (h *Handler) listRegistrations(c *gin.Context) {
	page, limit := pageParams(c)
	details, total, err := h.registrations.List(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	paginated(c, "daftar pendaftaran", registrationBodies(details), total, page, limit)
}

func (h *Handler) getRegistration(c *gin.Context) {
	detail, err := h.registrations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "detail pendaftaran", registrationBody(detail))
}

type updateRegistrationRequest struct {
	NamaLengkap     *string  `json:"nama_lengkap"`
	NIK             *string  `json:"nik"`
	StatusSubjek    *int     `json:"status_subjek"`
	PekerjaanSubjek *int     `json:"pekerjaan_subjek"`
	NPWP            *string  `json:"npwp"`
	NoTelpSubjek    *string  `json:"no_telp_subjek"`
	JalanSubjek     *string  `json:"jalan_subjek"`
	BlokKavNoSubjek *string  `json:"blok_kav_no_subjek"`
	KelurahanSubjek *int     `json:"kelurahan_subjek"`
	KecamatanSubjek *int     `json:"kecamatan_subjek"`
	KabupatenSubjek *int     `json:"kabupaten_subjek"`
	ProvinsiSubjek  *int     `json:"provinsi_subjek"`
	RTSubjek        *string  `json:"rt_subjek"`
	RWSubjek        *string  `json:"rw_subjek"`
	KodePosSubjek   *string  `json:"kode_pos_subjek"`
	JenisTanah      *int     `json:"jenis_tanah"`
	LuasTanah       *float64 `json:"luas_tanah"`
}

func (h *Handler) updateRegistration(c *gin.Context) {
	var req updateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}
	detail, err := h.registrations.Update(c.Request.Context(), c.Param("id"), service.UpdateRegistrationInput{
		NamaLengkap:     req.NamaLengkap,
		NIK:             req.NIK,
		StatusSubjek:    req.StatusSubjek,
		PekerjaanSubjek: req.PekerjaanSubjek,
		NPWP:            req.NPWP,
		NoTelpSubjek:    req.NoTelpSubjek,
		JalanSubjek:     req.JalanSubjek,
		BlokKavNoSubjek: req.BlokKavNoSubjek,
		KelurahanSubjek: req.KelurahanSubjek,
		KecamatanSubjek: req.KecamatanSubjek,
		KabupatenSubjek: req.KabupatenSubjek,
		ProvinsiSubjek:  req.ProvinsiSubjek,
		RTSubjek:        req.RTSubjek,
		RWSubjek:        req.RWSubjek,
		KodePosSubjek:   req.KodePosSubjek,
		JenisTanah:      req.JenisTanah,
		LuasTanah:       req.LuasTanah,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "pendaftaran diperbarui", registrationBody(detail))
}

type staffUpdateRequest struct {
	Status             *string `json:"status"`
	Keterangan         *string `json:"keterangan"`
	NamaPetugas        *string `json:"nama_petugas"`
	NIP                *string `json:"nip"`
	TanggalPelaksanaan *string `json:"tanggal_pelaksanaan"`
	FotoObjekPajak     *string `json:"foto_objek_pajak"`
	KelasBumiNjop      *int    `json:"kelas_bumi_njop"`
	KelasBangunanNjop  *int    `json:"kelas_bangunan_njop"`
}

func (h *Handler) staffUpdateRegistration(c *gin.Context) {
	var req staffUpdateRequest
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form := func(field string) *string {
			if v, present := c.GetPostForm(field); present {
				return &v
			}
			return nil
		}
		formNum := func(field string) *int {
			if v, present := c.GetPostForm(field); present {
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
					return &n
				}
			}
			return nil
		}
		req = staffUpdateRequest{
			Status:             form("status"),
			Keterangan:         form("keterangan"),
			NamaPetugas:        form("nama_petugas"),
			NIP:                form("nip"),
			TanggalPelaksanaan: form("tanggal_pelaksanaan"),
			KelasBumiNjop:      formNum("kelas_bumi_njop"),
			KelasBangunanNjop:  formNum("kelas_bangunan_njop"),
		}
		if file, err := c.FormFile("foto_objek_pajak"); err == nil {
			saved, err := h.saveUpload(c, file)
			if err != nil {
				h.handleError(c, err)
				return
			}
			req.FotoObjekPajak = &saved
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "payload tidak valid")
		return
	}

	input := service.StaffUpdateInput{
		Status:            req.Status,
		Keterangan:        req.Keterangan,
		NamaPetugas:       req.NamaPetugas,
		NIP:               req.NIP,
		FotoObjekPajak:    req.FotoObjekPajak,
		KelasBumiNjop:     req.KelasBumiNjop,
		KelasBangunanNjop: req.KelasBangunanNjop,
	}
	if req.TanggalPelaksanaan != nil {
		parsed, err := parseDate(*req.TanggalPelaksanaan)
		if err != nil {
			fail(c, http.StatusBadRequest, "tanggal_pelaksanaan tidak valid")
			return
		}
		input.TanggalPelaksanaan = &parsed
	}

	detail, err := h.registrations.StaffUpdate(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "pendaftaran diperbarui", registrationBody(detail))
}

func (h *Handler) deleteRegistration(c *gin.Context) {
	if err := h.registrations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	ok(c, "pendaftaran dihapus", nil)
}

func (h *Handler) exportRegistrations(c *gin.Context) {
	details, err := h.registrations.ExportData(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	content, err := h.excel.Generate(details)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := excel.FileName(time.Now())
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

func formInt(c *gin.Context, field string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(c.PostForm(field)))
	return v
}

func formFloat(c *gin.Context, field string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(c.PostForm(field)), 64)
	return v
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", raw)
}
