package model

import "time"

type Provinsi struct {
	ID   int
	Kode string
	Nama string
}

type Kabupaten struct {
	ID         int
	ProvinsiID int
	Kode       string
	Nama       string
}

type Kecamatan struct {
	ID          int
	KabupatenID int
	Kode        string
	Nama        string
}

type Kelurahan struct {
	ID          int
	KecamatanID int
	Kode        string
	Nama        string
}

// NjopClass is one bracket of the land or building NJOP class table.
type NjopClass struct {
	ID        int
	Kelas     string
	MinNilai  int64
	MaxNilai  int64
	NjopPerM2 float64
}

// PbbTarif is a pbb_p2 row: the regional PBB-P2 rate.
type PbbTarif struct {
	ID        int64
	Daerah    string
	Persen    float64
	CreatedAt time.Time
}

// LookupItem is a simple id+name dropdown entry.
type LookupItem struct {
	ID   int
	Nama string
}
