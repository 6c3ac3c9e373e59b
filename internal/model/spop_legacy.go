package model

import "time"

// Spop is a SISMIOP tax object row keyed by the seven NOP components.
type Spop struct {
	KdPropinsi       string
	KdDati2          string
	KdKecamatan      string
	KdKelurahan      string
	KdBlok           string
	NoUrut           string
	KdJnsOp          string
	SubjekPajakID    string
	NoFormulirSpop   string
	JnsTransaksiOp   string
	NoPersil         string
	JalanOp          string
	BlokKavNoOp      string
	RWOp             string
	RTOp             string
	KelurahanOp      string
	KdStatusWp       string
	LuasBumi         float64
	KdZnt            string
	JnsBumi          string
	NilaiSistemBumi  int64
	TglPendataanOp   *time.Time
	NmPendataanOp    string
	NipPendata       string
	TglPemeriksaanOp *time.Time
	NmPemeriksaanOp  string
	NipPemeriksaOp   string
	TglPerekamanOp   time.Time
	NipPerekamOp     string

	// shared-object and prior-object references
	KdPropinsiBersama  string
	KdDati2Bersama     string
	KdKecamatanBersama string
	KdKelurahanBersama string
	KdBlokBersama      string
	NoUrutBersama      string
	KdJnsOpBersama     string
	KdPropinsiAsal     string
	KdDati2Asal        string
	KdKecamatanAsal    string
	KdKelurahanAsal    string
	KdBlokAsal         string
	NoUrutAsal         string
	KdJnsOpAsal        string
	NoSpptLama         string
}

type SubjekPajak struct {
	SubjekPajakID     string
	NmWp              string
	JalanWp           string
	BlokKavNoWp       string
	RWWp              string
	RTWp              string
	KelurahanWp       string
	KotaWp            string
	KdPosWp           string
	TelpWp            string
	NPWP              string
	EmailWp           string
	StatusPekerjaanWp string
}

// SpopDetail joins the tax object with its subjek and wilayah names.
type SpopDetail struct {
	Spop
	Subjek      *SubjekPajak
	NmPropinsi  string
	NmDati2     string
	NmKecamatan string
	NmKelurahan string
}

// RiwayatEntry is one dated event in a tax object's history.
type RiwayatEntry struct {
	Aktivitas string
	Tanggal   time.Time
	Petugas   string
	NIP       string
}
