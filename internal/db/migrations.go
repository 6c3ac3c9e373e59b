package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS ipbb_user (
		id CHAR(32) PRIMARY KEY,
		username VARCHAR(64) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NOT NULL DEFAULT '',
		role VARCHAR(16) NOT NULL DEFAULT 'staff',
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		is_verified TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_ipbb_user_username (username),
		UNIQUE KEY uq_ipbb_user_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS user_verification (
		id CHAR(32) PRIMARY KEY,
		user_id CHAR(32) NOT NULL,
		code VARCHAR(16) NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_user_verification_user (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS spop_registration (
		id CHAR(32) PRIMARY KEY,
		nop VARCHAR(24) NOT NULL,
		no_formulir VARCHAR(32) NOT NULL DEFAULT '',
		nama_awal VARCHAR(255) NOT NULL DEFAULT '',
		nik_awal VARCHAR(32) NOT NULL DEFAULT '',
		alamat_rumah_awal VARCHAR(255) NOT NULL DEFAULT '',
		no_telp_awal VARCHAR(32) NOT NULL DEFAULT '',
		provinsi_op INT NOT NULL DEFAULT 0,
		kabupaten_op INT NOT NULL DEFAULT 0,
		kecamatan_op INT NOT NULL DEFAULT 0,
		kelurahan_op INT NOT NULL DEFAULT 0,
		blok_op VARCHAR(8) NOT NULL DEFAULT '',
		no_urut_op VARCHAR(8) NOT NULL DEFAULT '',
		kode_khusus INT NOT NULL DEFAULT 0,
		nama_lengkap VARCHAR(255) NOT NULL DEFAULT '',
		nik VARCHAR(32) NOT NULL DEFAULT '',
		status_subjek INT NOT NULL DEFAULT 0,
		pekerjaan_subjek INT NOT NULL DEFAULT 0,
		npwp VARCHAR(32) NOT NULL DEFAULT '',
		no_telp_subjek VARCHAR(32) NOT NULL DEFAULT '',
		jalan_subjek VARCHAR(255) NOT NULL DEFAULT '',
		blok_kav_no_subjek VARCHAR(64) NOT NULL DEFAULT '',
		kelurahan_subjek INT NOT NULL DEFAULT 0,
		kecamatan_subjek INT NOT NULL DEFAULT 0,
		kabupaten_subjek INT NOT NULL DEFAULT 0,
		provinsi_subjek INT NOT NULL DEFAULT 0,
		rt_subjek VARCHAR(8) NOT NULL DEFAULT '',
		rw_subjek VARCHAR(8) NOT NULL DEFAULT '',
		kode_pos_subjek VARCHAR(10) NOT NULL DEFAULT '',
		jenis_tanah INT NOT NULL DEFAULT 0,
		luas_tanah DECIMAL(18,2) NOT NULL DEFAULT 0,
		file_ktp VARCHAR(255) NOT NULL DEFAULT '',
		file_sertifikat VARCHAR(255) NOT NULL DEFAULT '',
		file_sppt_tetangga VARCHAR(255) NOT NULL DEFAULT '',
		file_foto_objek VARCHAR(255) NOT NULL DEFAULT '',
		file_surat_kuasa VARCHAR(255) NOT NULL DEFAULT '',
		file_pendukung VARCHAR(255) NOT NULL DEFAULT '',
		tanggal_pelaksanaan DATETIME NULL,
		foto_objek_pajak VARCHAR(255) NOT NULL DEFAULT '',
		nama_petugas VARCHAR(255) NOT NULL DEFAULT '',
		nip VARCHAR(32) NOT NULL DEFAULT '',
		status VARCHAR(64) NOT NULL DEFAULT 'menunggu verifikasi',
		keterangan TEXT,
		kelas_bumi_njop INT NOT NULL DEFAULT 0,
		kelas_bangunan_njop INT NOT NULL DEFAULT 0,
		submitted_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_spop_registration_nop (nop)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS lampiran_spop (
		id CHAR(32) PRIMARY KEY,
		spop_id CHAR(32) NOT NULL DEFAULT '',
		nop VARCHAR(24) NOT NULL,
		no_formulir VARCHAR(32) NOT NULL DEFAULT '',
		jns_pelayanan VARCHAR(8) NOT NULL DEFAULT '',
		kd_jpb VARCHAR(4) NOT NULL DEFAULT '',
		no_bng INT NOT NULL DEFAULT 1,
		jns_penggunaan_bng VARCHAR(4) NOT NULL DEFAULT '',
		luas_bangunan_m2 DECIMAL(18,2) NOT NULL DEFAULT 0,
		jml_lantai_bng INT NOT NULL DEFAULT 1,
		thn_dibangun_bng VARCHAR(8) NOT NULL DEFAULT '',
		thn_renovasi_bng VARCHAR(8) NOT NULL DEFAULT '',
		daya_listrik INT NOT NULL DEFAULT 0,
		kondisi_bng VARCHAR(4) NOT NULL DEFAULT '',
		jns_konstruksi_bng VARCHAR(4) NOT NULL DEFAULT '',
		jns_atap_bng VARCHAR(4) NOT NULL DEFAULT '',
		kd_dinding VARCHAR(4) NOT NULL DEFAULT '',
		kd_lantai VARCHAR(4) NOT NULL DEFAULT '',
		kd_langit_langit VARCHAR(4) NOT NULL DEFAULT '',
		nilai_sistem_bng BIGINT NOT NULL DEFAULT 0,
		kelas_bangunan_njop INT NOT NULL DEFAULT 0,
		nama_petugas VARCHAR(255) NOT NULL DEFAULT '',
		nip VARCHAR(32) NOT NULL DEFAULT '',
		tanggal_pelaksanaan DATETIME NULL,
		status VARCHAR(64) NOT NULL DEFAULT '',
		keterangan TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_lampiran_spop_nop (nop),
		KEY idx_lampiran_spop_spop (spop_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS sppt (
		id CHAR(32) PRIMARY KEY,
		spop_id CHAR(32) NOT NULL,
		lspop_id CHAR(32) NOT NULL,
		nop CHAR(18) NOT NULL,
		bumi_njop BIGINT NOT NULL DEFAULT 0,
		bangunan_njop BIGINT NOT NULL DEFAULT 0,
		njoptkp BIGINT NOT NULL DEFAULT 0,
		pbb_persen BIGINT NOT NULL DEFAULT 0,
		create_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_sppt_nop (nop)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS op_registration (
		id CHAR(32) PRIMARY KEY,
		nop VARCHAR(24) NOT NULL DEFAULT '',
		nik VARCHAR(32) NOT NULL DEFAULT '',
		nama VARCHAR(255) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		no_telp VARCHAR(32) NOT NULL DEFAULT '',
		alamat VARCHAR(255) NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL DEFAULT 'submitted',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS spop (
		kd_propinsi CHAR(2) NOT NULL,
		kd_dati2 CHAR(2) NOT NULL,
		kd_kecamatan CHAR(3) NOT NULL,
		kd_kelurahan CHAR(3) NOT NULL,
		kd_blok CHAR(3) NOT NULL,
		no_urut CHAR(4) NOT NULL,
		kd_jns_op CHAR(1) NOT NULL,
		subjek_pajak_id CHAR(30) NOT NULL,
		no_formulir_spop CHAR(11) NOT NULL,
		jns_transaksi_op CHAR(1) NOT NULL DEFAULT '1',
		no_persil VARCHAR(5) NULL,
		jalan_op VARCHAR(30) NOT NULL DEFAULT '',
		blok_kav_no_op VARCHAR(15) NULL,
		kelurahan_op VARCHAR(40) NULL,
		rw_op CHAR(2) NULL,
		rt_op CHAR(3) NULL,
		kd_status_wp CHAR(1) NOT NULL DEFAULT '1',
		luas_bumi DECIMAL(18,2) NOT NULL DEFAULT 0,
		kd_znt CHAR(2) NULL,
		jns_bumi CHAR(1) NOT NULL DEFAULT '1',
		nilai_sistem_bumi BIGINT NOT NULL DEFAULT 0,
		tgl_pendataan_op DATE NULL,
		nm_pendataan_op VARCHAR(30) NULL,
		nip_pendata VARCHAR(30) NULL,
		tgl_pemeriksaan_op DATE NULL,
		nm_pemeriksaan_op VARCHAR(30) NULL,
		nip_pemeriksa_op VARCHAR(30) NULL,
		kd_propinsi_bersama CHAR(2) NULL,
		kd_dati2_bersama CHAR(2) NULL,
		kd_kecamatan_bersama CHAR(3) NULL,
		kd_kelurahan_bersama CHAR(3) NULL,
		kd_blok_bersama CHAR(3) NULL,
		no_urut_bersama CHAR(4) NULL,
		kd_jns_op_bersama CHAR(1) NULL,
		kd_propinsi_asal CHAR(2) NULL,
		kd_dati2_asal CHAR(2) NULL,
		kd_kecamatan_asal CHAR(3) NULL,
		kd_kelurahan_asal CHAR(3) NULL,
		kd_blok_asal CHAR(3) NULL,
		no_urut_asal CHAR(4) NULL,
		kd_jns_op_asal CHAR(1) NULL,
		no_sppt_lama VARCHAR(30) NULL,
		tgl_perekaman_op DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		nip_perekam_op VARCHAR(30) NULL,
		PRIMARY KEY (kd_propinsi, kd_dati2, kd_kecamatan, kd_kelurahan, kd_blok, no_urut, kd_jns_op),
		UNIQUE KEY uq_spop_no_formulir (no_formulir_spop),
		KEY idx_spop_subjek (subjek_pajak_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS dat_subjek_pajak (
		subjek_pajak_id CHAR(30) PRIMARY KEY,
		nm_wp VARCHAR(60) NOT NULL DEFAULT '',
		jalan_wp VARCHAR(40) NULL,
		blok_kav_no_wp VARCHAR(15) NULL,
		rw_wp CHAR(2) NULL,
		rt_wp CHAR(3) NULL,
		kelurahan_wp VARCHAR(40) NULL,
		kota_wp VARCHAR(40) NULL,
		kd_pos_wp VARCHAR(10) NULL,
		telp_wp VARCHAR(20) NULL,
		npwp VARCHAR(15) NULL,
		email_wp VARCHAR(50) NULL,
		status_pekerjaan_wp CHAR(1) NOT NULL DEFAULT '0'
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS sppt_legacy (
		kd_propinsi CHAR(2) NOT NULL,
		kd_dati2 CHAR(2) NOT NULL,
		kd_kecamatan CHAR(3) NOT NULL,
		kd_kelurahan CHAR(3) NOT NULL,
		kd_blok CHAR(3) NOT NULL,
		no_urut CHAR(4) NOT NULL,
		kd_jns_op CHAR(1) NOT NULL,
		thn_pajak_sppt CHAR(4) NOT NULL,
		siklus_sppt SMALLINT NOT NULL DEFAULT 1,
		nm_wp_sppt VARCHAR(60) NOT NULL DEFAULT '',
		jln_wp_sppt VARCHAR(60) NULL,
		blok_kav_no_wp_sppt VARCHAR(15) NULL,
		rw_wp_sppt CHAR(2) NULL,
		rt_wp_sppt CHAR(3) NULL,
		kelurahan_wp_sppt VARCHAR(40) NULL,
		kota_wp_sppt VARCHAR(40) NULL,
		kd_pos_wp_sppt VARCHAR(10) NULL,
		npwp_sppt VARCHAR(15) NULL,
		kd_kls_tanah CHAR(3) NULL,
		kd_kls_bng CHAR(3) NULL,
		luas_bumi_sppt BIGINT NOT NULL DEFAULT 0,
		luas_bng_sppt BIGINT NOT NULL DEFAULT 0,
		njop_bumi_sppt BIGINT NOT NULL DEFAULT 0,
		njop_bng_sppt BIGINT NOT NULL DEFAULT 0,
		njop_sppt BIGINT NOT NULL DEFAULT 0,
		njoptkp_sppt BIGINT NOT NULL DEFAULT 0,
		pbb_terhutang_sppt BIGINT NOT NULL DEFAULT 0,
		faktor_pengurang_sppt BIGINT NOT NULL DEFAULT 0,
		pbb_yg_harus_dibayar_sppt BIGINT NOT NULL DEFAULT 0,
		status_pembayaran_sppt CHAR(1) NOT NULL DEFAULT '0',
		tgl_jatuh_tempo_sppt DATE NULL,
		tgl_terbit_sppt DATE NULL,
		PRIMARY KEY (kd_propinsi, kd_dati2, kd_kecamatan, kd_kelurahan, kd_blok, no_urut, kd_jns_op, thn_pajak_sppt)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS pembayaran_sppt (
		kd_propinsi CHAR(2) NOT NULL,
		kd_dati2 CHAR(2) NOT NULL,
		kd_kecamatan CHAR(3) NOT NULL,
		kd_kelurahan CHAR(3) NOT NULL,
		kd_blok CHAR(3) NOT NULL,
		no_urut CHAR(4) NOT NULL,
		kd_jns_op CHAR(1) NOT NULL,
		thn_pajak_sppt CHAR(4) NOT NULL,
		pembayaran_sppt_ke SMALLINT NOT NULL DEFAULT 1,
		jml_sppt_yg_dibayar BIGINT NOT NULL DEFAULT 0,
		denda_sppt BIGINT NOT NULL DEFAULT 0,
		tgl_pembayaran_sppt DATE NULL,
		tgl_rekam_byr_sppt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (kd_propinsi, kd_dati2, kd_kecamatan, kd_kelurahan, kd_blok, no_urut, kd_jns_op, thn_pajak_sppt, pembayaran_sppt_ke)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS ref_propinsi (
		kd_propinsi CHAR(2) PRIMARY KEY,
		nm_propinsi VARCHAR(40) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS ref_dati2 (
		kd_propinsi CHAR(2) NOT NULL,
		kd_dati2 CHAR(2) NOT NULL,
		nm_dati2 VARCHAR(40) NOT NULL,
		PRIMARY KEY (kd_propinsi, kd_dati2)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS ref_kecamatan (
		kd_propinsi CHAR(2) NOT NULL,
		kd_dati2 CHAR(2) NOT NULL,
		kd_kecamatan CHAR(3) NOT NULL,
		nm_kecamatan VARCHAR(40) NOT NULL,
		PRIMARY KEY (kd_propinsi, kd_dati2, kd_kecamatan)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS ref_kelurahan (
		kd_propinsi CHAR(2) NOT NULL,
		kd_dati2 CHAR(2) NOT NULL,
		kd_kecamatan CHAR(3) NOT NULL,
		kd_kelurahan CHAR(3) NOT NULL,
		kd_sektor CHAR(2) NULL,
		nm_kelurahan VARCHAR(40) NOT NULL,
		no_kelurahan SMALLINT NULL,
		kd_pos_kelurahan VARCHAR(10) NULL,
		PRIMARY KEY (kd_propinsi, kd_dati2, kd_kecamatan, kd_kelurahan)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS provinsi (
		id INT AUTO_INCREMENT PRIMARY KEY,
		kode VARCHAR(4) NOT NULL,
		nama VARCHAR(128) NOT NULL,
		UNIQUE KEY uq_provinsi_kode (kode)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS kabupaten_kota (
		id INT AUTO_INCREMENT PRIMARY KEY,
		provinsi_id INT NOT NULL,
		kode VARCHAR(4) NOT NULL,
		nama VARCHAR(128) NOT NULL,
		KEY idx_kabupaten_provinsi (provinsi_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS kecamatan (
		id INT AUTO_INCREMENT PRIMARY KEY,
		kabupaten_id INT NOT NULL,
		kode VARCHAR(4) NOT NULL,
		nama VARCHAR(128) NOT NULL,
		KEY idx_kecamatan_kabupaten (kabupaten_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS kelurahan (
		id INT AUTO_INCREMENT PRIMARY KEY,
		kecamatan_id INT NOT NULL,
		kode VARCHAR(4) NOT NULL,
		nama VARCHAR(128) NOT NULL,
		KEY idx_kelurahan_kecamatan (kecamatan_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS kelas_bumi_njop (
		id INT AUTO_INCREMENT PRIMARY KEY,
		kelas VARCHAR(8) NOT NULL,
		min_nilai BIGINT NOT NULL DEFAULT 0,
		max_nilai BIGINT NOT NULL DEFAULT 0,
		njop_per_m2 DECIMAL(18,2) NOT NULL DEFAULT 0,
		UNIQUE KEY uq_kelas_bumi_kelas (kelas)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS kelas_bangunan_njop (
		id INT AUTO_INCREMENT PRIMARY KEY,
		kelas VARCHAR(8) NOT NULL,
		min_nilai BIGINT NOT NULL DEFAULT 0,
		max_nilai BIGINT NOT NULL DEFAULT 0,
		njop_per_m2 DECIMAL(18,2) NOT NULL DEFAULT 0,
		UNIQUE KEY uq_kelas_bangunan_kelas (kelas)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS pbb_p2 (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		daerah VARCHAR(128) NOT NULL,
		pbb_persen DECIMAL(8,5) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS status_subjek (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nama VARCHAR(64) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS pekerjaan_subjek (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nama VARCHAR(64) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS jenis_tanah (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nama VARCHAR(64) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
