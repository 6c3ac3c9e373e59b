package model

import "time"

// Lampiran is an LSPOP building addendum attached to a registration.
type Lampiran struct {
	ID                 string
	SpopID             string
	NOP                string
	NoFormulir         string
	JnsPelayanan       string
	KdJpb              string
	NoBng              int
	JnsPenggunaanBng   string
	LuasBangunanM2     float64
	JmlLantaiBng       int
	ThnDibangunBng     string
	ThnRenovasiBng     string
	DayaListrik        int
	KondisiBng         string
	JnsKonstruksiBng   string
	JnsAtapBng         string
	KdDinding          string
	KdLantai           string
	KdLangitLangit     string
	NilaiSistemBng     int64
	KelasBangunanNjop  int
	NamaPetugas        string
	NIP                string
	TanggalPelaksanaan *time.Time
	Status             string
	Keterangan         string
	CreatedAt          time.Time
}

// LampiranDetail carries the labels joined in for responses.
type LampiranDetail struct {
	Lampiran
	JnsPenggunaanLabel string
	KondisiLabel       string
	KonstruksiLabel    string
	AtapLabel          string
	DindingLabel       string
	LantaiLabel        string
	LangitLangitLabel  string
	KelasBangunan      *NjopClass
	RegistrationName   string
	RegistrationStatus string
}
