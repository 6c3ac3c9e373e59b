package service

import "strings"

// SISMIOP building attribute code tables. Codes arrive as strings that may
// carry leading zeros, lookups go through codeLabel.

var jnsPenggunaanLabels = map[string]string{
	"1":  "Perumahan",
	"2":  "Perkantoran Swasta",
	"3":  "Pabrik",
	"4":  "Toko/Apotik/Pasar/Ruko",
	"5":  "Rumah Sakit/Klinik",
	"6":  "Olahraga/Rekreasi",
	"7":  "Hotel/Wisma",
	"8":  "Bengkel/Gudang/Pertanian",
	"9":  "Gedung Pemerintah",
	"10": "Lain-lain",
	"11": "Bangunan Tidak Kena Pajak",
	"12": "Bangunan Parkir",
	"13": "Apartemen",
	"14": "Pompa Bensin",
	"15": "Tangki Minyak",
	"16": "Gedung Sekolah",
}

var kondisiLabels = map[string]string{
	"1": "Sangat Baik",
	"2": "Baik",
	"3": "Sedang",
	"4": "Jelek",
}

var konstruksiLabels = map[string]string{
	"1": "Baja",
	"2": "Beton",
	"3": "Batu Bata",
	"4": "Kayu",
}

var atapLabels = map[string]string{
	"1": "Decrabon/Beton/Genteng Glazur",
	"2": "Genteng Beton/Aluminium",
	"3": "Genteng Biasa/Sirap",
	"4": "Asbes",
	"5": "Seng",
}

var dindingLabels = map[string]string{
	"1": "Kaca/Aluminium",
	"2": "Beton",
	"3": "Batu Bata/Conblok",
	"4": "Kayu",
	"5": "Seng",
	"6": "Tidak Ada",
}

var lantaiLabels = map[string]string{
	"1": "Marmer",
	"2": "Keramik",
	"3": "Teraso",
	"4": "Ubin PC/Papan",
	"5": "Semen",
}

var langitLangitLabels = map[string]string{
	"1": "Akustik/Jati",
	"2": "Triplek/Asbes Bambu",
	"3": "Tidak Ada",
}

func codeLabel(table map[string]string, code string) string {
	code = strings.TrimSpace(code)
	trimmed := strings.TrimLeft(code, "0")
	if trimmed == "" {
		trimmed = code
	}
	return table[trimmed]
}
