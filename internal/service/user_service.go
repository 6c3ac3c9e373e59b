package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/auth"
	"github.com/adiprasetyo/simpbb/internal/config"
	"github.com/adiprasetyo/simpbb/internal/model"
	"github.com/adiprasetyo/simpbb/internal/repository"
)

// CodeMailer delivers verification codes to new accounts.
type CodeMailer interface {
	SendVerificationCode(recipient, code string, expiresAt time.Time) error
}

type UserService struct {
	repo   *repository.UserRepository
	issuer *auth.Issuer
	mailer CodeMailer
	cfg    config.RegistrationConfig
}

func NewUserService(repo *repository.UserRepository, issuer *auth.Issuer, mailer CodeMailer, cfg config.RegistrationConfig) *UserService {
	return &UserService{repo: repo, issuer: issuer, mailer: mailer, cfg: cfg}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: username atau password salah", ErrUnauthorized)
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("%w: username atau password salah", ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: akun tidak aktif", ErrUnauthorized)
	}
	if !user.IsVerified {
		return nil, fmt.Errorf("%w: akun belum terverifikasi", ErrUnauthorized)
	}

	token, expiresAt, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	return s.repo.List(ctx, (page-1)*limit, limit)
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     model.Role
}

// Create is the admin path: the account comes up active and verified.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if err := s.validateNewAccount(ctx, input.Username, input.Email, input.Password); err != nil {
		return nil, err
	}
	if input.Role != model.RoleAdmin && input.Role != model.RoleStaff {
		return nil, fmt.Errorf("%w: role harus admin atau staff", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		ID:           newID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         input.Role,
		IsActive:     true,
		IsVerified:   true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username atau email sudah terdaftar", ErrInvalidInput)
		}
		return nil, err
	}
	return s.Get(ctx, user.ID)
}

type UpdateUserInput struct {
	Email      *string
	Password   *string
	FullName   *string
	Role       *model.Role
	IsActive   *bool
	IsVerified *bool
}

func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if input.Email != nil && *input.Email != user.Email {
		if other, err := s.repo.GetByEmail(ctx, *input.Email); err == nil && other.ID != id {
			return nil, fmt.Errorf("%w: email sudah terdaftar", ErrInvalidInput)
		}
		user.Email = *input.Email
		changed = true
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		changed = true
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
		changed = true
	}
	if input.Role != nil {
		if *input.Role != model.RoleAdmin && *input.Role != model.RoleStaff {
			return nil, fmt.Errorf("%w: role harus admin atau staff", ErrInvalidInput)
		}
		user.Role = *input.Role
		changed = true
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
		changed = true
	}
	if input.IsVerified != nil {
		user.IsVerified = *input.IsVerified
		changed = true
	}
	if !changed {
		return nil, fmt.Errorf("%w: tidak ada field yang diubah", ErrValidation)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email sudah terdaftar", ErrInvalidInput)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user tidak ditemukan", ErrNotFound)
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// UpdateProfile is the self-service path, account flags and role are
// not updatable here.
func (s *UserService) UpdateProfile(ctx context.Context, id string, input UpdateUserInput) (*model.User, error) {
	input.Role = nil
	input.IsActive = nil
	input.IsVerified = nil
	return s.Update(ctx, id, input)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user tidak ditemukan", ErrNotFound)
		}
		return err
	}
	return nil
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// Register is the public staff signup: the account starts unverified and
// receives a verification code by email. A failed send rolls the staged
// code back so registration can be retried cleanly.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if err := s.validateNewAccount(ctx, input.Username, input.Email, input.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		ID:           newID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         model.RoleStaff,
		IsActive:     true,
		IsVerified:   false,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username atau email sudah terdaftar", ErrInvalidInput)
		}
		return nil, err
	}

	if err := s.sendCode(ctx, user); err != nil {
		return nil, err
	}
	return s.Get(ctx, user.ID)
}

func (s *UserService) sendCode(ctx context.Context, user *model.User) error {
	code := verificationCode(s.cfg.CodeLength)
	staged := &model.VerificationCode{
		ID:        newID(),
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.CodeExpireMinutes) * time.Minute),
	}
	if err := s.repo.StageVerification(ctx, staged); err != nil {
		return err
	}
	if err := s.mailer.SendVerificationCode(user.Email, code, staged.ExpiresAt); err != nil {
		// keep the account, drop the unusable code
		_ = s.repo.DeleteVerifications(ctx, user.ID)
		return fmt.Errorf("gagal mengirim email verifikasi: %w", err)
	}
	return nil
}

// Verify activates an account from an emailed code.
func (s *UserService) Verify(ctx context.Context, email, code string) (*model.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: kode verifikasi tidak valid", ErrInvalidInput)
		}
		return nil, err
	}

	staged, err := s.repo.GetVerification(ctx, user.ID, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: kode verifikasi tidak valid", ErrInvalidInput)
		}
		return nil, err
	}
	if time.Now().After(staged.ExpiresAt) {
		return nil, fmt.Errorf("%w: kode verifikasi sudah kedaluwarsa", ErrInvalidInput)
	}

	if err := s.repo.MarkVerified(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteVerifications(ctx, user.ID); err != nil {
		return nil, err
	}
	return s.Get(ctx, user.ID)
}

func (s *UserService) validateNewAccount(ctx context.Context, username, email, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: username dan email wajib diisi", ErrValidation)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password minimal 8 karakter", ErrValidation)
	}
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return fmt.Errorf("%w: username sudah terdaftar", ErrInvalidInput)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return fmt.Errorf("%w: email sudah terdaftar", ErrInvalidInput)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func verificationCode(length int) string {
	if length <= 0 {
		length = 6
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}
