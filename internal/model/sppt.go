package model

import "time"

// Notice is one derived tax notice row from the sppt table.
type Notice struct {
	ID           string
	SpopID       string
	LspopID      string
	NOP          string
	BumiNjop     int64
	BangunanNjop int64
	Njoptkp      int64
	PbbPersen    int64 // pbb_p2 row id applied at assessment time
	CreateAt     time.Time
}

// NoticeDetail joins a notice with the inputs it was computed from.
type NoticeDetail struct {
	Notice
	Persen             float64
	LuasTanah          float64
	KelasBumi          string
	KelasBangunan      string
	LuasBangunanM2     float64
	NamaLengkap        string
	RegistrationStatus string
}

// NoticeSummary aggregates every notice for one NOP.
type NoticeSummary struct {
	BumiNjop     int64
	BangunanNjop int64
	TotalNjop    int64
	Njoptkp      int64
	Persen       float64
	PbbTerhutang int64
}

// SpptLegacy is a year-keyed SISMIOP assessment row.
type SpptLegacy struct {
	KdPropinsi            string
	KdDati2               string
	KdKecamatan           string
	KdKelurahan           string
	KdBlok                string
	NoUrut                string
	KdJnsOp               string
	ThnPajakSppt          string
	SiklusSppt            int
	NmWpSppt              string
	JlnWpSppt             string
	BlokKavNoWpSppt       string
	RWWpSppt              string
	RTWpSppt              string
	KelurahanWpSppt       string
	KotaWpSppt            string
	KdPosWpSppt           string
	NpwpSppt              string
	KdKlsTanah            string
	KdKlsBng              string
	LuasBumiSppt          int64
	LuasBngSppt           int64
	NjopBumiSppt          int64
	NjopBngSppt           int64
	NjopSppt              int64
	NjoptkpSppt           int64
	PbbTerhutangSppt      int64
	FaktorPengurangSppt   int64
	PbbYgHarusDibayarSppt int64
	StatusPembayaranSppt  string
	TglJatuhTempoSppt     *time.Time
	TglTerbitSppt         *time.Time
}

// Payment is one installment from pembayaran_sppt.
type Payment struct {
	ThnPajakSppt      string
	PembayaranSpptKe  int
	JmlSpptYgDibayar  int64
	DendaSppt         int64
	TglPembayaranSppt *time.Time
}

// OpRegistration is a public staging request for an existing tax object.
type OpRegistration struct {
	ID        string
	NOP       string
	NIK       string
	Nama      string
	Email     string
	NoTelp    string
	Alamat    string
	Status    string
	CreatedAt time.Time
}
