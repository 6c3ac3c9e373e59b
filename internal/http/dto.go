package http

import (
	"time"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
	"github.com/adiprasetyo/simpbb/internal/repository"
	"github.com/adiprasetyo/simpbb/internal/service"
)

// The model package stays free of wire concerns, so every JSON shape
// lives here.

type regionTripleDTO struct {
	ID   int    `json:"id"`
	Kode string `json:"kode"`
	Nama string `json:"nama"`
}

func regionTriple(t model.RegionTriple) regionTripleDTO {
	return regionTripleDTO{ID: t.ID, Kode: t.Kode, Nama: t.Nama}
}

type registrationDTO struct {
	ID                   string          `json:"id"`
	NOP                  string          `json:"nop"`
	NoFormulir           string          `json:"no_formulir"`
	NamaAwal             string          `json:"nama_awal"`
	NikAwal              string          `json:"nik_awal"`
	AlamatRumahAwal      string          `json:"alamat_rumah_awal"`
	NoTelpAwal           string          `json:"no_telp_awal"`
	ProvinsiOp           regionTripleDTO `json:"provinsi_op"`
	KabupatenOp          regionTripleDTO `json:"kabupaten_op"`
	KecamatanOp          regionTripleDTO `json:"kecamatan_op"`
	KelurahanOp          regionTripleDTO `json:"kelurahan_op"`
	BlokOp               string          `json:"blok_op"`
	NoUrutOp             string          `json:"no_urut_op"`
	KodeKhusus           int             `json:"kode_khusus"`
	NamaLengkap          string          `json:"nama_lengkap"`
	NIK                  string          `json:"nik"`
	StatusSubjek         int             `json:"status_subjek"`
	StatusSubjekLabel    string          `json:"status_subjek_label"`
	PekerjaanSubjek      int             `json:"pekerjaan_subjek"`
	PekerjaanSubjekLabel string          `json:"pekerjaan_subjek_label"`
	NPWP                 string          `json:"npwp"`
	NoTelpSubjek         string          `json:"no_telp_subjek"`
	JalanSubjek          string          `json:"jalan_subjek"`
	BlokKavNoSubjek      string          `json:"blok_kav_no_subjek"`
	ProvinsiSubjek       regionTripleDTO `json:"provinsi_subjek"`
	KabupatenSubjek      regionTripleDTO `json:"kabupaten_subjek"`
	KecamatanSubjek      regionTripleDTO `json:"kecamatan_subjek"`
	KelurahanSubjek      regionTripleDTO `json:"kelurahan_subjek"`
	RTSubjek             string          `json:"rt_subjek"`
	RWSubjek             string          `json:"rw_subjek"`
	KodePosSubjek        string          `json:"kode_pos_subjek"`
	JenisTanah           int             `json:"jenis_tanah"`
	JenisTanahLabel      string          `json:"jenis_tanah_label"`
	LuasTanah            float64         `json:"luas_tanah"`
	FileKtp              string          `json:"file_ktp"`
	FileSertifikat       string          `json:"file_sertifikat"`
	FileSpptTetangga     string          `json:"file_sppt_tetangga"`
	FileFotoObjek        string          `json:"file_foto_objek"`
	FileSuratKuasa       string          `json:"file_surat_kuasa"`
	FilePendukung        string          `json:"file_pendukung"`
	TanggalPelaksanaan   *time.Time      `json:"tanggal_pelaksanaan"`
	FotoObjekPajak       string          `json:"foto_objek_pajak"`
	NamaPetugas          string          `json:"nama_petugas"`
	NIP                  string          `json:"nip"`
	Status               string          `json:"status"`
	Keterangan           string          `json:"keterangan"`
	KelasBumiNjop        int             `json:"kelas_bumi_njop"`
	KelasBangunanNjop    int             `json:"kelas_bangunan_njop"`
	SubmittedAt          time.Time       `json:"submitted_at"`
}

func registrationBody(d *model.RegistrationDetail) registrationDTO {
	return registrationDTO{
		ID:                   d.ID,
		NOP:                  d.NOP,
		NoFormulir:           d.NoFormulir,
		NamaAwal:             d.NamaAwal,
		NikAwal:              d.NikAwal,
		AlamatRumahAwal:      d.AlamatRumahAwal,
		NoTelpAwal:           d.NoTelpAwal,
		ProvinsiOp:           regionTriple(d.ProvinsiDetail),
		KabupatenOp:          regionTriple(d.KabupatenDetail),
		KecamatanOp:          regionTriple(d.KecamatanDetail),
		KelurahanOp:          regionTriple(d.KelurahanDetail),
		BlokOp:               d.BlokOp,
		NoUrutOp:             d.NoUrutOp,
		KodeKhusus:           d.KodeKhusus,
		NamaLengkap:          d.NamaLengkap,
		NIK:                  d.NIK,
		StatusSubjek:         d.StatusSubjek,
		StatusSubjekLabel:    d.StatusSubjekLabel,
		PekerjaanSubjek:      d.PekerjaanSubjek,
		PekerjaanSubjekLabel: d.PekerjaanSubjekLabel,
		NPWP:                 d.NPWP,
		NoTelpSubjek:         d.NoTelpSubjek,
		JalanSubjek:          d.JalanSubjek,
		BlokKavNoSubjek:      d.BlokKavNoSubjek,
		ProvinsiSubjek:       regionTriple(d.ProvinsiSubjekDetail),
		KabupatenSubjek:      regionTriple(d.KabupatenSubjekDetail),
		KecamatanSubjek:      regionTriple(d.KecamatanSubjekDetail),
		KelurahanSubjek:      regionTriple(d.KelurahanSubjekDetail),
		RTSubjek:             d.RTSubjek,
		RWSubjek:             d.RWSubjek,
		KodePosSubjek:        d.KodePosSubjek,
		JenisTanah:           d.JenisTanah,
		JenisTanahLabel:      d.JenisTanahLabel,
		LuasTanah:            d.LuasTanah,
		FileKtp:              d.FileKtp,
		FileSertifikat:       d.FileSertifikat,
		FileSpptTetangga:     d.FileSpptTetangga,
		FileFotoObjek:        d.FileFotoObjek,
		FileSuratKuasa:       d.FileSuratKuasa,
		FilePendukung:        d.FilePendukung,
		TanggalPelaksanaan:   d.TanggalPelaksanaan,
		FotoObjekPajak:       d.FotoObjekPajak,
		NamaPetugas:          d.NamaPetugas,
		NIP:                  d.NIP,
		Status:               d.Status,
		Keterangan:           d.Keterangan,
		KelasBumiNjop:        d.KelasBumiNjop,
		KelasBangunanNjop:    d.KelasBangunanNjop,
		SubmittedAt:          d.SubmittedAt,
	}
}

func registrationBodies(details []model.RegistrationDetail) []registrationDTO {
	out := make([]registrationDTO, 0, len(details))
	for i := range details {
		out = append(out, registrationBody(&details[i]))
	}
	return out
}

type njopClassDTO struct {
	ID        int     `json:"id"`
	Kelas     string  `json:"kelas"`
	MinNilai  int64   `json:"min_nilai"`
	MaxNilai  int64   `json:"max_nilai"`
	NjopPerM2 float64 `json:"njop_per_m2"`
}

func njopClassBody(k model.NjopClass) njopClassDTO {
	return njopClassDTO{ID: k.ID, Kelas: k.Kelas, MinNilai: k.MinNilai, MaxNilai: k.MaxNilai, NjopPerM2: k.NjopPerM2}
}

func njopClassBodies(items []model.NjopClass) []njopClassDTO {
	out := make([]njopClassDTO, 0, len(items))
	for _, k := range items {
		out = append(out, njopClassBody(k))
	}
	return out
}

type lampiranDTO struct {
	ID                 string        `json:"id"`
	SpopID             string        `json:"spop_id"`
	NOP                string        `json:"nop"`
	NoFormulir         string        `json:"no_formulir"`
	JnsPelayanan       string        `json:"jns_pelayanan"`
	KdJpb              string        `json:"kd_jpb"`
	NoBng              int           `json:"no_bng"`
	JnsPenggunaanBng   string        `json:"jns_penggunaan_bng"`
	JnsPenggunaanLabel string        `json:"jns_penggunaan_label"`
	LuasBangunanM2     float64       `json:"luas_bangunan_m2"`
	JmlLantaiBng       int           `json:"jml_lantai_bng"`
	ThnDibangunBng     string        `json:"thn_dibangun_bng"`
	ThnRenovasiBng     string        `json:"thn_renovasi_bng"`
	DayaListrik        int           `json:"daya_listrik"`
	KondisiBng         string        `json:"kondisi_bng"`
	KondisiLabel       string        `json:"kondisi_label"`
	JnsKonstruksiBng   string        `json:"jns_konstruksi_bng"`
	KonstruksiLabel    string        `json:"konstruksi_label"`
	JnsAtapBng         string        `json:"jns_atap_bng"`
	AtapLabel          string        `json:"atap_label"`
	KdDinding          string        `json:"kd_dinding"`
	DindingLabel       string        `json:"dinding_label"`
	KdLantai           string        `json:"kd_lantai"`
	LantaiLabel        string        `json:"lantai_label"`
	KdLangitLangit     string        `json:"kd_langit_langit"`
	LangitLangitLabel  string        `json:"langit_langit_label"`
	NilaiSistemBng     int64         `json:"nilai_sistem_bng"`
	KelasBangunanNjop  int           `json:"kelas_bangunan_njop"`
	KelasBangunan      *njopClassDTO `json:"kelas_bangunan"`
	NamaPetugas        string        `json:"nama_petugas"`
	NIP                string        `json:"nip"`
	TanggalPelaksanaan *time.Time    `json:"tanggal_pelaksanaan"`
	Status             string        `json:"status"`
	Keterangan         string        `json:"keterangan"`
	Pendaftar          string        `json:"pendaftar"`
	StatusPendaftaran  string        `json:"status_pendaftaran"`
	CreatedAt          time.Time     `json:"created_at"`
}

func lampiranBody(d *model.LampiranDetail) lampiranDTO {
	dto := lampiranDTO{
		ID:                 d.ID,
		SpopID:             d.SpopID,
		NOP:                d.NOP,
		NoFormulir:         d.NoFormulir,
		JnsPelayanan:       d.JnsPelayanan,
		KdJpb:              d.KdJpb,
		NoBng:              d.NoBng,
		JnsPenggunaanBng:   d.JnsPenggunaanBng,
		JnsPenggunaanLabel: d.JnsPenggunaanLabel,
		LuasBangunanM2:     d.LuasBangunanM2,
		JmlLantaiBng:       d.JmlLantaiBng,
		ThnDibangunBng:     d.ThnDibangunBng,
		ThnRenovasiBng:     d.ThnRenovasiBng,
		DayaListrik:        d.DayaListrik,
		KondisiBng:         d.KondisiBng,
		KondisiLabel:       d.KondisiLabel,
		JnsKonstruksiBng:   d.JnsKonstruksiBng,
		KonstruksiLabel:    d.KonstruksiLabel,
		JnsAtapBng:         d.JnsAtapBng,
		AtapLabel:          d.AtapLabel,
		KdDinding:          d.KdDinding,
		DindingLabel:       d.DindingLabel,
		KdLantai:           d.KdLantai,
		LantaiLabel:        d.LantaiLabel,
		KdLangitLangit:     d.KdLangitLangit,
		LangitLangitLabel:  d.LangitLangitLabel,
		NilaiSistemBng:     d.NilaiSistemBng,
		KelasBangunanNjop:  d.KelasBangunanNjop,
		NamaPetugas:        d.NamaPetugas,
		NIP:                d.NIP,
		TanggalPelaksanaan: d.TanggalPelaksanaan,
		Status:             d.Status,
		Keterangan:         d.Keterangan,
		Pendaftar:          d.RegistrationName,
		StatusPendaftaran:  d.RegistrationStatus,
		CreatedAt:          d.CreatedAt,
	}
	if d.KelasBangunan != nil {
		body := njopClassBody(*d.KelasBangunan)
		dto.KelasBangunan = &body
	}
	return dto
}

func lampiranBodies(details []model.LampiranDetail) []lampiranDTO {
	out := make([]lampiranDTO, 0, len(details))
	for i := range details {
		out = append(out, lampiranBody(&details[i]))
	}
	return out
}

type noticeDTO struct {
	ID           string    `json:"id"`
	SpopID       string    `json:"spop_id"`
	LspopID      string    `json:"lspop_id"`
	NOP          string    `json:"nop"`
	BumiNjop     int64     `json:"bumi_njop"`
	BangunanNjop int64     `json:"bangunan_njop"`
	Njoptkp      int64     `json:"njoptkp"`
	PbbPersen    int64     `json:"pbb_persen"`
	CreateAt     time.Time `json:"create_at"`
}

func noticeBody(n *model.Notice) noticeDTO {
	return noticeDTO{
		ID:           n.ID,
		SpopID:       n.SpopID,
		LspopID:      n.LspopID,
		NOP:          nop.Format(n.NOP),
		BumiNjop:     n.BumiNjop,
		BangunanNjop: n.BangunanNjop,
		Njoptkp:      n.Njoptkp,
		PbbPersen:    n.PbbPersen,
		CreateAt:     n.CreateAt,
	}
}

type noticeDetailDTO struct {
	noticeDTO
	Persen            float64 `json:"persen"`
	LuasTanah         float64 `json:"luas_tanah"`
	KelasBumi         string  `json:"kelas_bumi"`
	KelasBangunan     string  `json:"kelas_bangunan"`
	LuasBangunanM2    float64 `json:"luas_bangunan_m2"`
	NamaLengkap       string  `json:"nama_lengkap"`
	StatusPendaftaran string  `json:"status_pendaftaran"`
	PbbTerhutang      int64   `json:"pbb_terhutang"`
}

func noticeDetailBodies(details []model.NoticeDetail) []noticeDetailDTO {
	out := make([]noticeDetailDTO, 0, len(details))
	for i := range details {
		d := &details[i]
		out = append(out, noticeDetailDTO{
			noticeDTO:         noticeBody(&d.Notice),
			Persen:            d.Persen,
			LuasTanah:         d.LuasTanah,
			KelasBumi:         d.KelasBumi,
			KelasBangunan:     d.KelasBangunan,
			LuasBangunanM2:    d.LuasBangunanM2,
			NamaLengkap:       d.NamaLengkap,
			StatusPendaftaran: d.RegistrationStatus,
			PbbTerhutang:      service.Owed(d.BumiNjop, d.BangunanNjop, d.Njoptkp, d.Persen),
		})
	}
	return out
}

type noticeSummaryDTO struct {
	BumiNjop     int64   `json:"bumi_njop"`
	BangunanNjop int64   `json:"bangunan_njop"`
	TotalNjop    int64   `json:"total_njop"`
	Njoptkp      int64   `json:"njoptkp"`
	Persen       float64 `json:"persen"`
	PbbTerhutang int64   `json:"pbb_terhutang"`
}

func noticeSummaryBody(s *model.NoticeSummary) noticeSummaryDTO {
	return noticeSummaryDTO{
		BumiNjop:     s.BumiNjop,
		BangunanNjop: s.BangunanNjop,
		TotalNjop:    s.TotalNjop,
		Njoptkp:      s.Njoptkp,
		Persen:       s.Persen,
		PbbTerhutang: s.PbbTerhutang,
	}
}

type spopListItemDTO struct {
	NOP            string `json:"nop"`
	KdPropinsi     string `json:"kd_propinsi"`
	KdDati2        string `json:"kd_dati2"`
	KdKecamatan    string `json:"kd_kecamatan"`
	KdKelurahan    string `json:"kd_kelurahan"`
	KdBlok         string `json:"kd_blok"`
	NoUrut         string `json:"no_urut"`
	KdJnsOp        string `json:"kd_jns_op"`
	NmWp           string `json:"nm_wp"`
	JalanOp        string `json:"jalan_op"`
	JnsTransaksiOp string `json:"jns_transaksi_op"`
	TransaksiLabel string `json:"transaksi_label"`
	NoFormulirSpop string `json:"no_formulir_spop"`
}

func spopListBodies(items []repository.SpopListItem) []spopListItemDTO {
	out := make([]spopListItemDTO, 0, len(items))
	for _, item := range items {
		c := item.Components
		out = append(out, spopListItemDTO{
			NOP:            nop.Format(nop.Compose(c)),
			KdPropinsi:     c.KdPropinsi,
			KdDati2:        c.KdDati2,
			KdKecamatan:    c.KdKecamatan,
			KdKelurahan:    c.KdKelurahan,
			KdBlok:         c.KdBlok,
			NoUrut:         c.NoUrut,
			KdJnsOp:        c.KdJnsOp,
			NmWp:           item.NmWp,
			JalanOp:        item.JalanOp,
			JnsTransaksiOp: item.JnsTransaksiOp,
			TransaksiLabel: service.JnsTransaksiLabel(item.JnsTransaksiOp),
			NoFormulirSpop: item.NoFormulirSpop,
		})
	}
	return out
}

type subjekDTO struct {
	SubjekPajakID     string `json:"subjek_pajak_id"`
	NmWp              string `json:"nm_wp"`
	JalanWp           string `json:"jalan_wp"`
	BlokKavNoWp       string `json:"blok_kav_no_wp"`
	RWWp              string `json:"rw_wp"`
	RTWp              string `json:"rt_wp"`
	KelurahanWp       string `json:"kelurahan_wp"`
	KotaWp            string `json:"kota_wp"`
	KdPosWp           string `json:"kd_pos_wp"`
	TelpWp            string `json:"telp_wp"`
	NPWP              string `json:"npwp"`
	EmailWp           string `json:"email_wp"`
	StatusPekerjaanWp string `json:"status_pekerjaan_wp"`
}

func subjekBody(s *model.SubjekPajak) *subjekDTO {
	if s == nil {
		return nil
	}
	return &subjekDTO{
		SubjekPajakID:     s.SubjekPajakID,
		NmWp:              s.NmWp,
		JalanWp:           s.JalanWp,
		BlokKavNoWp:       s.BlokKavNoWp,
		RWWp:              s.RWWp,
		RTWp:              s.RTWp,
		KelurahanWp:       s.KelurahanWp,
		KotaWp:            s.KotaWp,
		KdPosWp:           s.KdPosWp,
		TelpWp:            s.TelpWp,
		NPWP:              s.NPWP,
		EmailWp:           s.EmailWp,
		StatusPekerjaanWp: s.StatusPekerjaanWp,
	}
}

type spopDetailDTO struct {
	NOP             string     `json:"nop"`
	KdPropinsi      string     `json:"kd_propinsi"`
	KdDati2         string     `json:"kd_dati2"`
	KdKecamatan     string     `json:"kd_kecamatan"`
	KdKelurahan     string     `json:"kd_kelurahan"`
	KdBlok          string     `json:"kd_blok"`
	NoUrut          string     `json:"no_urut"`
	KdJnsOp         string     `json:"kd_jns_op"`
	SubjekPajakID   string     `json:"subjek_pajak_id"`
	NoFormulirSpop  string     `json:"no_formulir_spop"`
	JnsTransaksiOp  string     `json:"jns_transaksi_op"`
	TransaksiLabel  string     `json:"transaksi_label"`
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
	TglPerekamanOp  time.Time  `json:"tgl_perekaman_op"`
	NipPerekamOp    string     `json:"nip_perekam_op"`
	NoSpptLama      string     `json:"no_sppt_lama"`
	NmPropinsi      string     `json:"nm_propinsi"`
	NmDati2         string     `json:"nm_dati2"`
	NmKecamatan     string     `json:"nm_kecamatan"`
	NmKelurahan     string     `json:"nm_kelurahan"`
	Subjek          *subjekDTO `json:"subjek_pajak"`
}

func spopDetailBody(d *model.SpopDetail) spopDetailDTO {
	c := nop.Components{
		KdPropinsi:  d.KdPropinsi,
		KdDati2:     d.KdDati2,
		KdKecamatan: d.KdKecamatan,
		KdKelurahan: d.KdKelurahan,
		KdBlok:      d.KdBlok,
		NoUrut:      d.NoUrut,
		KdJnsOp:     d.KdJnsOp,
	}
	return spopDetailDTO{
		NOP:             nop.Format(nop.Compose(c)),
		KdPropinsi:      d.KdPropinsi,
		KdDati2:         d.KdDati2,
		KdKecamatan:     d.KdKecamatan,
		KdKelurahan:     d.KdKelurahan,
		KdBlok:          d.KdBlok,
		NoUrut:          d.NoUrut,
		KdJnsOp:         d.KdJnsOp,
		SubjekPajakID:   d.SubjekPajakID,
		NoFormulirSpop:  d.NoFormulirSpop,
		JnsTransaksiOp:  d.JnsTransaksiOp,
		TransaksiLabel:  service.JnsTransaksiLabel(d.JnsTransaksiOp),
		NoPersil:        d.NoPersil,
		JalanOp:         d.JalanOp,
		BlokKavNoOp:     d.BlokKavNoOp,
		KelurahanOp:     d.KelurahanOp,
		RWOp:            d.RWOp,
		RTOp:            d.RTOp,
		KdStatusWp:      d.KdStatusWp,
		LuasBumi:        d.LuasBumi,
		KdZnt:           d.KdZnt,
		JnsBumi:         d.JnsBumi,
		NilaiSistemBumi: d.NilaiSistemBumi,
		TglPendataanOp:  d.TglPendataanOp,
		NmPendataanOp:   d.NmPendataanOp,
		NipPendata:      d.NipPendata,
		TglPemeriksaan:  d.TglPemeriksaanOp,
		NmPemeriksaanOp: d.NmPemeriksaanOp,
		NipPemeriksaOp:  d.NipPemeriksaOp,
		TglPerekamanOp:  d.TglPerekamanOp,
		NipPerekamOp:    d.NipPerekamOp,
		NoSpptLama:      d.NoSpptLama,
		NmPropinsi:      d.NmPropinsi,
		NmDati2:         d.NmDati2,
		NmKecamatan:     d.NmKecamatan,
		NmKelurahan:     d.NmKelurahan,
		Subjek:          subjekBody(d.Subjek),
	}
}

type riwayatDTO struct {
	Aktivitas string    `json:"aktivitas"`
	Tanggal   time.Time `json:"tanggal"`
	Petugas   string    `json:"petugas"`
	NIP       string    `json:"nip"`
}

func riwayatBodies(entries []model.RiwayatEntry) []riwayatDTO {
	out := make([]riwayatDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, riwayatDTO{Aktivitas: e.Aktivitas, Tanggal: e.Tanggal, Petugas: e.Petugas, NIP: e.NIP})
	}
	return out
}

type spptLegacyDTO struct {
	NOP                   string     `json:"nop"`
	ThnPajakSppt          string     `json:"thn_pajak_sppt"`
	SiklusSppt            int        `json:"siklus_sppt"`
	NmWpSppt              string     `json:"nm_wp_sppt"`
	JlnWpSppt             string     `json:"jln_wp_sppt"`
	BlokKavNoWpSppt       string     `json:"blok_kav_no_wp_sppt"`
	RWWpSppt              string     `json:"rw_wp_sppt"`
	RTWpSppt              string     `json:"rt_wp_sppt"`
	KelurahanWpSppt       string     `json:"kelurahan_wp_sppt"`
	KotaWpSppt            string     `json:"kota_wp_sppt"`
	KdPosWpSppt           string     `json:"kd_pos_wp_sppt"`
	NpwpSppt              string     `json:"npwp_sppt"`
	KdKlsTanah            string     `json:"kd_kls_tanah"`
	KdKlsBng              string     `json:"kd_kls_bng"`
	LuasBumiSppt          int64      `json:"luas_bumi_sppt"`
	LuasBngSppt           int64      `json:"luas_bng_sppt"`
	NjopBumiSppt          int64      `json:"njop_bumi_sppt"`
	NjopBngSppt           int64      `json:"njop_bng_sppt"`
	NjopSppt              int64      `json:"njop_sppt"`
	NjoptkpSppt           int64      `json:"njoptkp_sppt"`
	PbbTerhutangSppt      int64      `json:"pbb_terhutang_sppt"`
	FaktorPengurangSppt   int64      `json:"faktor_pengurang_sppt"`
	PbbYgHarusDibayarSppt int64      `json:"pbb_yg_harus_dibayar_sppt"`
	StatusPembayaranSppt  string     `json:"status_pembayaran_sppt"`
	TglJatuhTempoSppt     *time.Time `json:"tgl_jatuh_tempo_sppt"`
	TglTerbitSppt         *time.Time `json:"tgl_terbit_sppt"`
}

func spptLegacyBody(s *model.SpptLegacy) spptLegacyDTO {
	c := nop.Components{
		KdPropinsi:  s.KdPropinsi,
		KdDati2:     s.KdDati2,
		KdKecamatan: s.KdKecamatan,
		KdKelurahan: s.KdKelurahan,
		KdBlok:      s.KdBlok,
		NoUrut:      s.NoUrut,
		KdJnsOp:     s.KdJnsOp,
	}
	return spptLegacyDTO{
		NOP:                   nop.Format(nop.Compose(c)),
		ThnPajakSppt:          s.ThnPajakSppt,
		SiklusSppt:            s.SiklusSppt,
		NmWpSppt:              s.NmWpSppt,
		JlnWpSppt:             s.JlnWpSppt,
		BlokKavNoWpSppt:       s.BlokKavNoWpSppt,
		RWWpSppt:              s.RWWpSppt,
		RTWpSppt:              s.RTWpSppt,
		KelurahanWpSppt:       s.KelurahanWpSppt,
		KotaWpSppt:            s.KotaWpSppt,
		KdPosWpSppt:           s.KdPosWpSppt,
		NpwpSppt:              s.NpwpSppt,
		KdKlsTanah:            s.KdKlsTanah,
		KdKlsBng:              s.KdKlsBng,
		LuasBumiSppt:          s.LuasBumiSppt,
		LuasBngSppt:           s.LuasBngSppt,
		NjopBumiSppt:          s.NjopBumiSppt,
		NjopBngSppt:           s.NjopBngSppt,
		NjopSppt:              s.NjopSppt,
		NjoptkpSppt:           s.NjoptkpSppt,
		PbbTerhutangSppt:      s.PbbTerhutangSppt,
		FaktorPengurangSppt:   s.FaktorPengurangSppt,
		PbbYgHarusDibayarSppt: s.PbbYgHarusDibayarSppt,
		StatusPembayaranSppt:  s.StatusPembayaranSppt,
		TglJatuhTempoSppt:     s.TglJatuhTempoSppt,
		TglTerbitSppt:         s.TglTerbitSppt,
	}
}

func spptLegacyBodies(items []model.SpptLegacy) []spptLegacyDTO {
	out := make([]spptLegacyDTO, 0, len(items))
	for i := range items {
		out = append(out, spptLegacyBody(&items[i]))
	}
	return out
}

type paymentDTO struct {
	ThnPajakSppt      string     `json:"thn_pajak_sppt"`
	PembayaranSpptKe  int        `json:"pembayaran_sppt_ke"`
	JmlSpptYgDibayar  int64      `json:"jml_sppt_yg_dibayar"`
	DendaSppt         int64      `json:"denda_sppt"`
	TglPembayaranSppt *time.Time `json:"tgl_pembayaran_sppt"`
}

func paymentBodies(payments []model.Payment) []paymentDTO {
	out := make([]paymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentDTO{
			ThnPajakSppt:      p.ThnPajakSppt,
			PembayaranSpptKe:  p.PembayaranSpptKe,
			JmlSpptYgDibayar:  p.JmlSpptYgDibayar,
			DendaSppt:         p.DendaSppt,
			TglPembayaranSppt: p.TglPembayaranSppt,
		})
	}
	return out
}

type userDTO struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func userBody(u *model.User) userDTO {
	return userDTO{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       string(u.Role),
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

func userBodies(users []model.User) []userDTO {
	out := make([]userDTO, 0, len(users))
	for i := range users {
		out = append(out, userBody(&users[i]))
	}
	return out
}
