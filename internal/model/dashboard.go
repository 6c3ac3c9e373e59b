package model

// DashboardCards are the headline figures for one tax year and region scope.
type DashboardCards struct {
	JumlahObjek    int64
	TotalLuasBng   int64
	TotalTerhutang int64
	JumlahLunas    int64
	TotalRealisasi int64
}

// GraphPoint is one month of payment realisation.
type GraphPoint struct {
	Bulan     int
	Realisasi int64
}
