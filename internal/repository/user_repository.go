package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/adiprasetyo/simpbb/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, username, email, password_hash, full_name, role,
	is_active, is_verified, created_at, updated_at`

type userRow struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (row userRow) toModel() *model.User {
	return &model.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		FullName:     row.FullName,
		Role:         model.Role(row.Role),
		IsActive:     row.IsActive,
		IsVerified:   row.IsVerified,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg interface{}) (*model.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT`+userColumns+` FROM ipbb_user WHERE `+where+` LIMIT 1`, arg,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return row.toModel(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getBy(ctx, "username = ?", username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]model.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM ipbb_user`).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []userRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT`+userColumns+` FROM ipbb_user ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *row.toModel())
	}
	return users, total, nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO ipbb_user (id, username, email, password_hash, full_name, role, is_active, is_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FullName, string(u.Role), u.IsActive, u.IsVerified,
	).Error
}

func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE ipbb_user
		SET username = ?, email = ?, password_hash = ?, full_name = ?, role = ?, is_active = ?, is_verified = ?
		WHERE id = ?`,
		u.Username, u.Email, u.PasswordHash, u.FullName, string(u.Role), u.IsActive, u.IsVerified, u.ID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM ipbb_user WHERE id = ?`, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) StageVerification(ctx context.Context, v *model.VerificationCode) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO user_verification (id, user_id, code, expires_at)
		VALUES (?, ?, ?, ?)`,
		v.ID, v.UserID, v.Code, v.ExpiresAt,
	).Error
}

func (r *UserRepository) GetVerification(ctx context.Context, userID, code string) (*model.VerificationCode, error) {
	var row struct {
		ID        string
		UserID    string
		Code      string
		ExpiresAt time.Time
		CreatedAt time.Time
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, user_id, code, expires_at, created_at
		FROM user_verification
		WHERE user_id = ? AND code = ?
		ORDER BY created_at DESC LIMIT 1`,
		userID, code,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.VerificationCode{
		ID:        row.ID,
		UserID:    row.UserID,
		Code:      row.Code,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *UserRepository) DeleteVerifications(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Exec(
		`DELETE FROM user_verification WHERE user_id = ?`, userID,
	).Error
}

func (r *UserRepository) MarkVerified(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE ipbb_user SET is_verified = 1 WHERE id = ?`, userID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
