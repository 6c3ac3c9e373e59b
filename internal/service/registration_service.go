package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
	"github.com/adiprasetyo/simpbb/internal/repository"
)

type RegistrationService struct {
	repo *repository.RegistrationRepository
	refs *repository.RefRepository
}

func NewRegistrationService(repo *repository.RegistrationRepository, refs *repository.RefRepository) *RegistrationService {
	return &RegistrationService{repo: repo, refs: refs}
}

type CreateRegistrationInput struct {
	NamaAwal         string
	NikAwal          string
	AlamatRumahAwal  string
	NoTelpAwal       string
	ProvinsiOp       int
	KabupatenOp      int
	KecamatanOp      int
	KelurahanOp      int
	BlokOp           string
	NoUrutOp         string
	KodeKhusus       int
	NamaLengkap      string
	NIK              string
	StatusSubjek     int
	PekerjaanSubjek  int
	NPWP             string
	NoTelpSubjek     string
	JalanSubjek      string
	BlokKavNoSubjek  string
	KelurahanSubjek  int
	KecamatanSubjek  int
	KabupatenSubjek  int
	ProvinsiSubjek   int
	RTSubjek         string
	RWSubjek         string
	KodePosSubjek    string
	JenisTanah       int
	LuasTanah        float64
	FileKtp          string
	FileSertifikat   string
	FileSpptTetangga string
	FileFotoObjek    string
	FileSuratKuasa   string
	FilePendukung    string
}

// Create validates the wilayah chain, derives the NOP, and stores the
// intake row. The NOP must be unique across registrations.
func (s *RegistrationService) Create(ctx context.Context, input CreateRegistrationInput) (*model.RegistrationDetail, error) {
	provinsi, kabupaten, kecamatan, kelurahan, err := s.resolveChain(ctx,
		input.ProvinsiOp, input.KabupatenOp, input.KecamatanOp, input.KelurahanOp)
	if err != nil {
		return nil, err
	}

	blok := nop.Normalize(input.BlokOp, 3)
	noUrut := nop.Normalize(input.NoUrutOp, 4)
	if blok == "" {
		return nil, fmt.Errorf("%w: blok wajib diisi", ErrValidation)
	}
	if noUrut == "" {
		return nil, fmt.Errorf("%w: no_urut wajib diisi", ErrValidation)
	}

	kodeKhusus := input.KodeKhusus
	if kodeKhusus == 0 {
		kodeKhusus, err = s.repo.NextKodeKhusus(ctx)
		if err != nil {
			return nil, err
		}
	}

	dotted := strings.Join([]string{
		nop.Normalize(provinsi.Kode, 2),
		nop.Normalize(kabupaten.Kode, 2),
		nop.Normalize(kecamatan.Kode, 3),
		nop.Normalize(kelurahan.Kode, 3),
		blok,
		noUrut,
		nop.Normalize(fmt.Sprintf("%d", kodeKhusus), 1),
	}, ".")

	exists, err := s.repo.ExistsByNOP(ctx, dotted)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: nop %s sudah terdaftar", ErrConflict, dotted)
	}

	reg := &model.Registration{
		ID:               newID(),
		NOP:              dotted,
		NoFormulir:       time.Now().Format("2006.01.02.15.04"),
		NamaAwal:         input.NamaAwal,
		NikAwal:          input.NikAwal,
		AlamatRumahAwal:  input.AlamatRumahAwal,
		NoTelpAwal:       input.NoTelpAwal,
		ProvinsiOp:       input.ProvinsiOp,
		KabupatenOp:      input.KabupatenOp,
		KecamatanOp:      input.KecamatanOp,
		KelurahanOp:      input.KelurahanOp,
		BlokOp:           blok,
		NoUrutOp:         noUrut,
		KodeKhusus:       kodeKhusus,
		NamaLengkap:      input.NamaLengkap,
		NIK:              input.NIK,
		StatusSubjek:     input.StatusSubjek,
		PekerjaanSubjek:  input.PekerjaanSubjek,
		NPWP:             input.NPWP,
		NoTelpSubjek:     input.NoTelpSubjek,
		JalanSubjek:      input.JalanSubjek,
		BlokKavNoSubjek:  input.BlokKavNoSubjek,
		KelurahanSubjek:  input.KelurahanSubjek,
		KecamatanSubjek:  input.KecamatanSubjek,
		KabupatenSubjek:  input.KabupatenSubjek,
		ProvinsiSubjek:   input.ProvinsiSubjek,
		RTSubjek:         input.RTSubjek,
		RWSubjek:         input.RWSubjek,
		KodePosSubjek:    input.KodePosSubjek,
		JenisTanah:       input.JenisTanah,
		LuasTanah:        input.LuasTanah,
		FileKtp:          input.FileKtp,
		FileSertifikat:   input.FileSertifikat,
		FileSpptTetangga: input.FileSpptTetangga,
		FileFotoObjek:    input.FileFotoObjek,
		FileSuratKuasa:   input.FileSuratKuasa,
		FilePendukung:    input.FilePendukung,
		Status:           "menunggu verifikasi",
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: nop %s sudah terdaftar", ErrConflict, dotted)
		}
		return nil, err
	}

	stored, err := s.repo.GetByID(ctx, reg.ID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, stored)
}

func (s *RegistrationService) List(ctx context.Context, page, limit int) ([]model.RegistrationDetail, int64, error) {
	offset := (page - 1) * limit
	regs, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	details := make([]model.RegistrationDetail, 0, len(regs))
	for i := range regs {
		d, err := s.enrich(ctx, &regs[i])
		if err != nil {
			return nil, 0, err
		}
		details = append(details, *d)
	}
	return details, total, nil
}

func (s *RegistrationService) Get(ctx context.Context, id string) (*model.RegistrationDetail, error) {
	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	return s.enrich(ctx, reg)
}

func (s *RegistrationService) GetByNOP(ctx context.Context, dotted string) (*model.RegistrationDetail, error) {
	reg, err := s.repo.GetByNOP(ctx, dotted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	return s.enrich(ctx, reg)
}

type UpdateRegistrationInput struct {
	NamaLengkap     *string
	NIK             *string
	StatusSubjek    *int
	PekerjaanSubjek *int
	NPWP            *string
	NoTelpSubjek    *string
	JalanSubjek     *string
	BlokKavNoSubjek *string
	KelurahanSubjek *int
	KecamatanSubjek *int
	KabupatenSubjek *int
	ProvinsiSubjek  *int
	RTSubjek        *string
	RWSubjek        *string
	KodePosSubjek   *string
	JenisTanah      *int
	LuasTanah       *float64
}

func (in UpdateRegistrationInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	put := func(column string, v interface{}, set bool) {
		if set {
			fields[column] = v
		}
	}
	put("nama_lengkap", deref(in.NamaLengkap), in.NamaLengkap != nil)
	put("nik", deref(in.NIK), in.NIK != nil)
	put("status_subjek", derefInt(in.StatusSubjek), in.StatusSubjek != nil)
	put("pekerjaan_subjek", derefInt(in.PekerjaanSubjek), in.PekerjaanSubjek != nil)
	put("npwp", deref(in.NPWP), in.NPWP != nil)
	put("no_telp_subjek", deref(in.NoTelpSubjek), in.NoTelpSubjek != nil)
	put("jalan_subjek", deref(in.JalanSubjek), in.JalanSubjek != nil)
	put("blok_kav_no_subjek", deref(in.BlokKavNoSubjek), in.BlokKavNoSubjek != nil)
	put("kelurahan_subjek", derefInt(in.KelurahanSubjek), in.KelurahanSubjek != nil)
	put("kecamatan_subjek", derefInt(in.KecamatanSubjek), in.KecamatanSubjek != nil)
	put("kabupaten_subjek", derefInt(in.KabupatenSubjek), in.KabupatenSubjek != nil)
	put("provinsi_subjek", derefInt(in.ProvinsiSubjek), in.ProvinsiSubjek != nil)
	put("rt_subjek", deref(in.RTSubjek), in.RTSubjek != nil)
	put("rw_subjek", deref(in.RWSubjek), in.RWSubjek != nil)
	put("kode_pos_subjek", deref(in.KodePosSubjek), in.KodePosSubjek != nil)
	put("jenis_tanah", derefInt(in.JenisTanah), in.JenisTanah != nil)
	if in.LuasTanah != nil {
		fields["luas_tanah"] = *in.LuasTanah
	}
	return fields
}

func (s *RegistrationService) Update(ctx context.Context, id string, input UpdateRegistrationInput) (*model.RegistrationDetail, error) {
	fields := input.fields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: tidak ada field yang diubah", ErrValidation)
	}
	if err := s.applyUpdate(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

type StaffUpdateInput struct {
	Status             *string
	Keterangan         *string
	NamaPetugas        *string
	NIP                *string
	TanggalPelaksanaan *time.Time
	FotoObjekPajak     *string
	KelasBumiNjop      *int
	KelasBangunanNjop  *int
}

// StaffUpdate applies the verification outcome fields only staff may set.
func (s *RegistrationService) StaffUpdate(ctx context.Context, id string, input StaffUpdateInput) (*model.RegistrationDetail, error) {
	fields := map[string]interface{}{}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Keterangan != nil {
		fields["keterangan"] = *input.Keterangan
	}
	if input.NamaPetugas != nil {
		fields["nama_petugas"] = *input.NamaPetugas
	}
	if input.NIP != nil {
		fields["nip"] = *input.NIP
	}
	if input.TanggalPelaksanaan != nil {
		fields["tanggal_pelaksanaan"] = *input.TanggalPelaksanaan
	}
	if input.FotoObjekPajak != nil {
		fields["foto_objek_pajak"] = *input.FotoObjekPajak
	}
	if input.KelasBumiNjop != nil {
		fields["kelas_bumi_njop"] = *input.KelasBumiNjop
	}
	if input.KelasBangunanNjop != nil {
		fields["kelas_bangunan_njop"] = *input.KelasBangunanNjop
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: tidak ada field yang diubah", ErrValidation)
	}
	if err := s.applyUpdate(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *RegistrationService) applyUpdate(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: pendaftaran tidak ditemukan", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: pendaftaran tidak ditemukan", ErrNotFound)
		}
		return err
	}
	return nil
}

// ExportData returns every registration with labels resolved, for the
// spreadsheet export.
func (s *RegistrationService) ExportData(ctx context.Context) ([]model.RegistrationDetail, error) {
	regs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]model.RegistrationDetail, 0, len(regs))
	for i := range regs {
		d, err := s.enrich(ctx, &regs[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// resolveChain loads the object wilayah rows and checks each level is a
// child of the next one up.
func (s *RegistrationService) resolveChain(ctx context.Context, provinsiID, kabupatenID, kecamatanID, kelurahanID int) (*model.Provinsi, *model.Kabupaten, *model.Kecamatan, *model.Kelurahan, error) {
	kelurahan, err := s.refs.GetKelurahan(ctx, kelurahanID)
	if err != nil {
		return nil, nil, nil, nil, chainErr("kelurahan", err)
	}
	kecamatan, err := s.refs.GetKecamatan(ctx, kecamatanID)
	if err != nil {
		return nil, nil, nil, nil, chainErr("kecamatan", err)
	}
	kabupaten, err := s.refs.GetKabupaten(ctx, kabupatenID)
	if err != nil {
		return nil, nil, nil, nil, chainErr("kabupaten/kota", err)
	}
	provinsi, err := s.refs.GetProvinsi(ctx, provinsiID)
	if err != nil {
		return nil, nil, nil, nil, chainErr("provinsi", err)
	}
	if kelurahan.KecamatanID != kecamatan.ID ||
		kecamatan.KabupatenID != kabupaten.ID ||
		kabupaten.ProvinsiID != provinsi.ID {
		return nil, nil, nil, nil, fmt.Errorf("%w: wilayah objek pajak tidak berelasi", ErrInvalidInput)
	}
	return provinsi, kabupaten, kecamatan, kelurahan, nil
}

func chainErr(level string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s tidak ditemukan", ErrInvalidInput, level)
	}
	return err
}

func (s *RegistrationService) enrich(ctx context.Context, reg *model.Registration) (*model.RegistrationDetail, error) {
	detail := &model.RegistrationDetail{Registration: *reg}

	detail.ProvinsiDetail = s.provinsiTriple(ctx, reg.ProvinsiOp)
	detail.KabupatenDetail = s.kabupatenTriple(ctx, reg.KabupatenOp)
	detail.KecamatanDetail = s.kecamatanTriple(ctx, reg.KecamatanOp)
	detail.KelurahanDetail = s.kelurahanTriple(ctx, reg.KelurahanOp)
	detail.ProvinsiSubjekDetail = s.provinsiTriple(ctx, reg.ProvinsiSubjek)
	detail.KabupatenSubjekDetail = s.kabupatenTriple(ctx, reg.KabupatenSubjek)
	detail.KecamatanSubjekDetail = s.kecamatanTriple(ctx, reg.KecamatanSubjek)
	detail.KelurahanSubjekDetail = s.kelurahanTriple(ctx, reg.KelurahanSubjek)

	var err error
	detail.StatusSubjekLabel, err = s.lookupLabel(ctx, s.refs.AllStatusSubjek, reg.StatusSubjek)
	if err != nil {
		return nil, err
	}
	detail.PekerjaanSubjekLabel, err = s.lookupLabel(ctx, s.refs.AllPekerjaanSubjek, reg.PekerjaanSubjek)
	if err != nil {
		return nil, err
	}
	detail.JenisTanahLabel, err = s.lookupLabel(ctx, s.refs.AllJenisTanah, reg.JenisTanah)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *RegistrationService) provinsiTriple(ctx context.Context, id int) model.RegionTriple {
	if id == 0 {
		return model.RegionTriple{}
	}
	p, err := s.refs.GetProvinsi(ctx, id)
	if err != nil {
		return model.RegionTriple{ID: id}
	}
	return model.RegionTriple{ID: p.ID, Kode: p.Kode, Nama: p.Nama}
}

func (s *RegistrationService) kabupatenTriple(ctx context.Context, id int) model.RegionTriple {
	if id == 0 {
		return model.RegionTriple{}
	}
	k, err := s.refs.GetKabupaten(ctx, id)
	if err != nil {
		return model.RegionTriple{ID: id}
	}
	return model.RegionTriple{ID: k.ID, Kode: k.Kode, Nama: k.Nama}
}

func (s *RegistrationService) kecamatanTriple(ctx context.Context, id int) model.RegionTriple {
	if id == 0 {
		return model.RegionTriple{}
	}
	k, err := s.refs.GetKecamatan(ctx, id)
	if err != nil {
		return model.RegionTriple{ID: id}
	}
	return model.RegionTriple{ID: k.ID, Kode: k.Kode, Nama: k.Nama}
}

func (s *RegistrationService) kelurahanTriple(ctx context.Context, id int) model.RegionTriple {
	if id == 0 {
		return model.RegionTriple{}
	}
	k, err := s.refs.GetKelurahan(ctx, id)
	if err != nil {
		return model.RegionTriple{ID: id}
	}
	return model.RegionTriple{ID: k.ID, Kode: k.Kode, Nama: k.Nama}
}

func (s *RegistrationService) lookupLabel(ctx context.Context, list func(context.Context) ([]model.LookupItem, error), id int) (string, error) {
	if id == 0 {
		return "", nil
	}
	items, err := list(ctx)
	if err != nil {
		return "", err
	}
	for _, item := range items {
		if item.ID == id {
			return item.Nama, nil
		}
	}
	return "", nil
}

func deref(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func derefInt(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
