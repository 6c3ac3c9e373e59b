package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/nop"
	"github.com/adiprasetyo/simpbb/internal/repository"
)

// jpbRequiredFields lists the building attributes each JPB group must
// provide before an addendum is accepted.
var jpbRequiredFields = map[string][]string{
	"01": {"kd_dinding", "kd_lantai", "kd_langit_langit"},
	"02": {"jns_konstruksi_bng", "jns_atap_bng"},
	"03": {"jns_konstruksi_bng", "jml_lantai_bng", "nilai_sistem_bng"},
}

type LspopService struct {
	repo       *repository.LspopRepository
	regs       *repository.RegistrationRepository
	refs       *repository.RefRepository
	assessment *AssessmentService
}

func NewLspopService(repo *repository.LspopRepository, regs *repository.RegistrationRepository, refs *repository.RefRepository, assessment *AssessmentService) *LspopService {
	return &LspopService{repo: repo, regs: regs, refs: refs, assessment: assessment}
}

type CreateLspopInput struct {
	NOP              string
	JnsPelayanan     string
	KdJpb            string
	NoBng            int
	JnsPenggunaanBng string
	LuasBangunanM2   float64
	JmlLantaiBng     int
	ThnDibangunBng   string
	ThnRenovasiBng   string
	DayaListrik      int
	KondisiBng       string
	JnsKonstruksiBng string
	JnsAtapBng       string
	KdDinding        string
	KdLantai         string
	KdLangitLangit   string
	NilaiSistemBng   int64
}

// Create stores a building addendum under an approved registration and
// immediately runs the assessment for it.
func (s *LspopService) Create(ctx context.Context, input CreateLspopInput) (*model.LampiranDetail, *model.Notice, error) {
	if strings.TrimSpace(input.NOP) == "" {
		return nil, nil, fmt.Errorf("%w: nop wajib diisi", ErrInvalidInput)
	}
	dotted := nop.Format(input.NOP)

	parent, err := s.regs.GetByNOP(ctx, dotted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: pendaftaran dengan nop %s tidak ditemukan", ErrInvalidInput, dotted)
		}
		return nil, nil, err
	}
	if strings.ToLower(strings.TrimSpace(parent.Status)) != "disetujui" {
		return nil, nil, fmt.Errorf("%w: pendaftaran dengan nop %s belum disetujui", ErrInvalidInput, dotted)
	}

	if missing := missingJpbFields(input); len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: field wajib untuk jpb %s belum diisi: %s",
			ErrValidation, input.KdJpb, strings.Join(missing, ", "))
	}

	lampiran := &model.Lampiran{
		ID:               newID(),
		SpopID:           parent.ID,
		NOP:              dotted,
		NoFormulir:       time.Now().Format("2006.01.02.15.04"),
		JnsPelayanan:     input.JnsPelayanan,
		KdJpb:            input.KdJpb,
		NoBng:            input.NoBng,
		JnsPenggunaanBng: input.JnsPenggunaanBng,
		LuasBangunanM2:   input.LuasBangunanM2,
		JmlLantaiBng:     input.JmlLantaiBng,
		ThnDibangunBng:   input.ThnDibangunBng,
		ThnRenovasiBng:   input.ThnRenovasiBng,
		DayaListrik:      input.DayaListrik,
		KondisiBng:       input.KondisiBng,
		JnsKonstruksiBng: input.JnsKonstruksiBng,
		JnsAtapBng:       input.JnsAtapBng,
		KdDinding:        input.KdDinding,
		KdLantai:         input.KdLantai,
		KdLangitLangit:   input.KdLangitLangit,
		NilaiSistemBng:   input.NilaiSistemBng,
		// The building class is assigned later during staff review.
		KelasBangunanNjop: parent.KelasBangunanNjop,
	}
	if lampiran.NoBng == 0 {
		lampiran.NoBng = 1
	}

	if err := s.repo.Create(ctx, lampiran); err != nil {
		return nil, nil, err
	}

	notice, err := s.assessment.Assess(ctx, parent, lampiran)
	if err != nil {
		return nil, nil, err
	}

	detail, err := s.enrich(ctx, lampiran)
	if err != nil {
		return nil, nil, err
	}
	return detail, notice, nil
}

func missingJpbFields(input CreateLspopInput) []string {
	required, ok := jpbRequiredFields[input.KdJpb]
	if !ok {
		return nil
	}
	present := map[string]bool{
		"kd_dinding":         strings.TrimSpace(input.KdDinding) != "",
		"kd_lantai":          strings.TrimSpace(input.KdLantai) != "",
		"kd_langit_langit":   strings.TrimSpace(input.KdLangitLangit) != "",
		"jns_konstruksi_bng": strings.TrimSpace(input.JnsKonstruksiBng) != "",
		"jns_atap_bng":       strings.TrimSpace(input.JnsAtapBng) != "",
		"jml_lantai_bng":     input.JmlLantaiBng != 0,
		"nilai_sistem_bng":   input.NilaiSistemBng != 0,
	}
	var missing []string
	for _, field := range required {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	sort.Strings(missing)
	return missing
}

func (s *LspopService) List(ctx context.Context, nopFilter string, page, limit int) ([]model.LampiranDetail, int64, error) {
	if nopFilter != "" {
		nopFilter = nop.Format(nopFilter)
	}
	offset := (page - 1) * limit
	items, total, err := s.repo.List(ctx, nopFilter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	details := make([]model.LampiranDetail, 0, len(items))
	for i := range items {
		d, err := s.enrich(ctx, &items[i])
		if err != nil {
			return nil, 0, err
		}
		details = append(details, *d)
	}
	return details, total, nil
}

func (s *LspopService) Get(ctx context.Context, id string) (*model.LampiranDetail, error) {
	lampiran, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lampiran tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	return s.enrich(ctx, lampiran)
}

type UpdateLspopInput struct {
	JnsPelayanan     *string
	KdJpb            *string
	NoBng            *int
	JnsPenggunaanBng *string
	LuasBangunanM2   *float64
	JmlLantaiBng     *int
	ThnDibangunBng   *string
	ThnRenovasiBng   *string
	DayaListrik      *int
	KondisiBng       *string
	JnsKonstruksiBng *string
	JnsAtapBng       *string
	KdDinding        *string
	KdLantai         *string
	KdLangitLangit   *string
	NilaiSistemBng   *int64
}

func (s *LspopService) Update(ctx context.Context, id string, input UpdateLspopInput) (*model.LampiranDetail, error) {
	fields := map[string]interface{}{}
	setStr := func(column string, p *string) {
		if p != nil {
			fields[column] = *p
		}
	}
	setInt := func(column string, p *int) {
		if p != nil {
			fields[column] = *p
		}
	}
	setStr("jns_pelayanan", input.JnsPelayanan)
	setStr("kd_jpb", input.KdJpb)
	setInt("no_bng", input.NoBng)
	setStr("jns_penggunaan_bng", input.JnsPenggunaanBng)
	if input.LuasBangunanM2 != nil {
		fields["luas_bangunan_m2"] = *input.LuasBangunanM2
	}
	setInt("jml_lantai_bng", input.JmlLantaiBng)
	setStr("thn_dibangun_bng", input.ThnDibangunBng)
	setStr("thn_renovasi_bng", input.ThnRenovasiBng)
	setInt("daya_listrik", input.DayaListrik)
	setStr("kondisi_bng", input.KondisiBng)
	setStr("jns_konstruksi_bng", input.JnsKonstruksiBng)
	setStr("jns_atap_bng", input.JnsAtapBng)
	setStr("kd_dinding", input.KdDinding)
	setStr("kd_lantai", input.KdLantai)
	setStr("kd_langit_langit", input.KdLangitLangit)
	if input.NilaiSistemBng != nil {
		fields["nilai_sistem_bng"] = *input.NilaiSistemBng
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: tidak ada field yang diubah", ErrValidation)
	}
	if err := s.applyUpdate(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

type StaffLspopUpdateInput struct {
	Status             string
	Keterangan         string
	NamaPetugas        string
	NIP                string
	KelasBangunanNjop  string
	TanggalPelaksanaan *time.Time
}

// StaffUpdate applies only the fields the reviewer actually filled in.
func (s *LspopService) StaffUpdate(ctx context.Context, id string, input StaffLspopUpdateInput) (*model.LampiranDetail, error) {
	fields := map[string]interface{}{}
	if strings.TrimSpace(input.Status) != "" {
		fields["status"] = input.Status
	}
	if strings.TrimSpace(input.Keterangan) != "" {
		fields["keterangan"] = input.Keterangan
	}
	if strings.TrimSpace(input.NamaPetugas) != "" {
		fields["nama_petugas"] = input.NamaPetugas
	}
	if strings.TrimSpace(input.NIP) != "" {
		fields["nip"] = input.NIP
	}
	if strings.TrimSpace(input.KelasBangunanNjop) != "" {
		kelas, err := strconv.Atoi(strings.TrimSpace(input.KelasBangunanNjop))
		if err != nil {
			return nil, fmt.Errorf("%w: kelas_bangunan_njop harus berupa angka", ErrValidation)
		}
		fields["kelas_bangunan_njop"] = kelas
	}
	if input.TanggalPelaksanaan != nil {
		fields["tanggal_pelaksanaan"] = *input.TanggalPelaksanaan
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: tidak ada field yang diubah", ErrValidation)
	}
	if err := s.applyUpdate(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *LspopService) applyUpdate(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: lampiran tidak ditemukan", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *LspopService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: lampiran tidak ditemukan", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *LspopService) enrich(ctx context.Context, lampiran *model.Lampiran) (*model.LampiranDetail, error) {
	detail := &model.LampiranDetail{
		Lampiran:           *lampiran,
		JnsPenggunaanLabel: codeLabel(jnsPenggunaanLabels, lampiran.JnsPenggunaanBng),
		KondisiLabel:       codeLabel(kondisiLabels, lampiran.KondisiBng),
		KonstruksiLabel:    codeLabel(konstruksiLabels, lampiran.JnsKonstruksiBng),
		AtapLabel:          codeLabel(atapLabels, lampiran.JnsAtapBng),
		DindingLabel:       codeLabel(dindingLabels, lampiran.KdDinding),
		LantaiLabel:        codeLabel(lantaiLabels, lampiran.KdLantai),
		LangitLangitLabel:  codeLabel(langitLangitLabels, lampiran.KdLangitLangit),
	}

	if lampiran.KelasBangunanNjop != 0 {
		if class, err := s.refs.GetKelasBangunan(ctx, lampiran.KelasBangunanNjop); err == nil {
			detail.KelasBangunan = class
		}
	}
	if lampiran.SpopID != "" {
		if reg, err := s.regs.GetByID(ctx, lampiran.SpopID); err == nil {
			detail.RegistrationName = reg.NamaLengkap
			detail.RegistrationStatus = reg.Status
		}
	}
	return detail, nil
}
