package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var testJWTSecret = []byte("test-secret")

func TestMemberUsecase_Register_Success(t *testing.T) {
	members := new(MemberRepoMock)
	uc := usecase.NewMemberUsecase(members, testJWTSecret)

	var saved *model.Member
	members.On("Create", mock.Anything, mock.AnythingOfType("*model.Member")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Member)
			saved.ID = 1
		}).
		Return(nil)

	out, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "山田太郎",
		Email:    "taro@example.com",
		Password: "password123",
		Address:  "東京都",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "taro@example.com", out.Email)
	assert.Equal(t, "USER", out.Role)

	//平文は保存されず、ハッシュが元のパスワードと照合できる
	assert.NotEqual(t, "password123", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("password123")))
}

func TestMemberUsecase_Register_DuplicateEmail(t *testing.T) {
	members := new(MemberRepoMock)
	uc := usecase.NewMemberUsecase(members, testJWTSecret)

	members.On("Create", mock.Anything, mock.AnythingOfType("*model.Member")).
		Return(repo.ErrDuplicateEmail)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "山田太郎",
		Email:    "taro@example.com",
		Password: "password123",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "already registered member", he.Message)
}

func TestMemberUsecase_Register_ShortPassword(t *testing.T) {
	members := new(MemberRepoMock)
	uc := usecase.NewMemberUsecase(members, testJWTSecret)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "山田太郎",
		Email:    "taro@example.com",
		Password: "short",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMemberUsecase_Login_Success(t *testing.T) {
	members := new(MemberRepoMock)
	uc := usecase.NewMemberUsecase(members, testJWTSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)

	members.On("FindByEmail", mock.Anything, "taro@example.com").
		Return(model.Member{
			ID:           5,
			Email:        "taro@example.com",
			PasswordHash: string(hash),
			Role:         model.RoleUser,
		}, nil)

	out, err := uc.Login(context.Background(), "taro@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Greater(t, out.ExpiresIn, 0)

	//発行したトークンに会員情報が載っている
	tok, err := jwt.Parse(out.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return testJWTSecret, nil
	})
	assert.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "5", claims["sub"])
	assert.Equal(t, "taro@example.com", claims["email"])
	assert.Equal(t, "USER", claims["role"])
}

func TestMemberUsecase_Login_WrongPassword(t *testing.T) {
	members := new(MemberRepoMock)
	uc := usecase.NewMemberUsecase(members, testJWTSecret)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	members.On("FindByEmail", mock.Anything, "taro@example.com").
		Return(model.Member{Email: "taro@example.com", PasswordHash: string(hash)}, nil)

	_, err := uc.Login(context.Background(), "taro@example.com", "wrong-password")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
	assertErrContains(t, err, "invalid email or password")
}

func TestMemberUsecase_Login_UnknownEmail(t *testing.T) {
	members := new(MemberRepoMock)
	uc := usecase.NewMemberUsecase(members, testJWTSecret)

	members.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(model.Member{}, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), "nobody@example.com", "password123")

	//存在しないメールもパスワード違いと同じ401になる
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
	assertErrContains(t, err, "invalid email or password")
}
