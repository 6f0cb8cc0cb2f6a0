package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = 15 * time.Minute

const bcryptCost = 12

// 会員登録・ログイン。
type MemberUsecase struct {
	members   repo.MemberRepository
	jwtSecret []byte
}

func NewMemberUsecase(members repo.MemberRepository, jwtSecret []byte) *MemberUsecase {
	return &MemberUsecase{members: members, jwtSecret: jwtSecret}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

type MemberOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

type LoginOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Register は会員を新規登録する。
// 登録済みメールなら固定メッセージで拒否し、何も保存されない。
func (u *MemberUsecase) Register(ctx context.Context, in RegisterInput) (MemberOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return MemberOutput{}, NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if in.Name == "" {
		return MemberOutput{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if len(in.Password) < 8 {
		return MemberOutput{}, NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return MemberOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	member := model.Member{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Address:      in.Address,
		Role:         model.RoleUser,
	}

	if err := u.members.Create(ctx, &member); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return MemberOutput{}, NewHTTPError(http.StatusConflict, "already registered member")
		}
		return MemberOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toMemberOutput(member), nil
}

// Login はパスワードを検証してアクセストークンを発行する。
func (u *MemberUsecase) Login(ctx context.Context, email string, password string) (LoginOutput, error) {
	if email == "" || password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	member, err := u.members.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		//存在しないメールでもパスワード違いと同じ応答にする
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(member.ID, 10),
		"email": member.Email,
		"role":  string(member.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.jwtSecret)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		AccessToken: signed,
		ExpiresIn:   int(accessTokenTTL.Seconds()),
	}, nil
}

func toMemberOutput(m model.Member) MemberOutput {
	return MemberOutput{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Address: m.Address,
		Role:    string(m.Role),
	}
}
