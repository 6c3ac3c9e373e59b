package model

import "time"

// Registration is a citizen-submitted SPOP intake row. NOP is stored in
// the dotted display form.
type Registration struct {
	ID                 string
	NOP                string
	NoFormulir         string
	NamaAwal           string
	NikAwal            string
	AlamatRumahAwal    string
	NoTelpAwal         string
	ProvinsiOp         int
	KabupatenOp        int
	KecamatanOp        int
	KelurahanOp        int
	BlokOp             string
	NoUrutOp           string
	KodeKhusus         int
	NamaLengkap        string
	NIK                string
	StatusSubjek       int
	PekerjaanSubjek    int
	NPWP               string
	NoTelpSubjek       string
	JalanSubjek        string
	BlokKavNoSubjek    string
	KelurahanSubjek    int
	KecamatanSubjek    int
	KabupatenSubjek    int
	ProvinsiSubjek     int
	RTSubjek           string
	RWSubjek           string
	KodePosSubjek      string
	JenisTanah         int
	LuasTanah          float64
	FileKtp            string
	FileSertifikat     string
	FileSpptTetangga   string
	FileFotoObjek      string
	FileSuratKuasa     string
	FilePendukung      string
	TanggalPelaksanaan *time.Time
	FotoObjekPajak     string
	NamaPetugas        string
	NIP                string
	Status             string
	Keterangan         string
	KelasBumiNjop      int
	KelasBangunanNjop  int
	SubmittedAt        time.Time
}

// RegionTriple is the resolved id/kode/nama of one wilayah level.
type RegionTriple struct {
	ID   int
	Kode string
	Nama string
}

// RegistrationDetail is a Registration enriched with lookup labels for
// API responses and exports.
type RegistrationDetail struct {
	Registration
	ProvinsiDetail        RegionTriple
	KabupatenDetail       RegionTriple
	KecamatanDetail       RegionTriple
	KelurahanDetail       RegionTriple
	ProvinsiSubjekDetail  RegionTriple
	KabupatenSubjekDetail RegionTriple
	KecamatanSubjekDetail RegionTriple
	KelurahanSubjekDetail RegionTriple
	StatusSubjekLabel     string
	PekerjaanSubjekLabel  string
	JenisTanahLabel       string
}
