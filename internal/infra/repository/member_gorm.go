package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type MemberGormRepository struct {
	db *gorm.DB
}

func NewMemberGormRepository(db *gorm.DB) *MemberGormRepository {
	return &MemberGormRepository{db: db}
}

// 新規会員作成。email一意制約に当たったら ErrDuplicateEmail に変換する。
func (r *MemberGormRepository) Create(ctx context.Context, member *model.Member) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if isUniqueViolation(err) {
			return repo.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *MemberGormRepository) FindByEmail(ctx context.Context, email string) (model.Member, error) {
	var m model.Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Member{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Member{}, err
	}
	return m, nil
}

func (r *MemberGormRepository) FindByID(ctx context.Context, memberID int64) (model.Member, error) {
	var m model.Member
	err := r.db.WithContext(ctx).Where("id = ?", memberID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Member{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Member{}, err
	}
	return m, nil
}

// PostgreSQLの unique_violation (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
