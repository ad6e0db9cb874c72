package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type SignUpInput struct {
	Name     string
	Username string
	Password string
}

type IAuthService interface {
	SignUp(ctx context.Context, current *model.Session, in SignUpInput) (*model.Session, error)
	SignIn(ctx context.Context, current *model.Session, username, password string) (*model.Session, error)
	SignOut(ctx context.Context, current *model.Session) error
}

type AuthService struct {
	userRepo       db.IUserRepository
	sessionService ISessionService
	logger         *zerolog.Logger
	hashCost       int
	now            func() time.Time
}

func NewAuthService(userRepo db.IUserRepository, sessionService ISessionService, logger *zerolog.Logger) *AuthService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &AuthService{
		userRepo:       userRepo,
		sessionService: sessionService,
		logger:         logger,
		hashCost:       bcrypt.DefaultCost,
		now:            time.Now,
	}
}

func (a *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SignUp 建立帳號與 profile 後直接登入
//
// 錯誤:
//   - 400: username 已被使用, 密碼空白或超過 72 bytes
//   - 500: 建立帳號失敗
func (a *AuthService) SignUp(ctx context.Context, current *model.Session, in SignUpInput) (*model.Session, error) {
	if err := checkPassword("password", in.Password); err != nil {
		return nil, err
	}
	exists, err := a.userRepo.ExistsUsername(ctx, in.Username)
	if err != nil {
		return nil, internal(err)
	}
	if exists {
		return nil, ErrUsernameTaken.WithDetails(map[string]string{"username": ErrUsernameTaken.Message})
	}

	hash, err := a.hashPassword(in.Password)
	if err != nil {
		return nil, hashFailure("password", err)
	}

	user := &model.User{
		Username:     in.Username,
		PasswordHash: hash,
		IsActive:     true,
	}
	profile := &model.Profile{FullName: in.Name}
	if err := a.userRepo.CreateUserWithProfile(ctx, user, profile); err != nil {
		// 同名註冊同時送出, exists 檢查都通過時由唯一索引擋下
		if errors.Is(err, db.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken.WithDetails(map[string]string{"username": ErrUsernameTaken.Message})
		}
		return nil, internal(err)
	}
	a.logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	return a.login(ctx, current, user)
}

func (a *AuthService) SignIn(ctx context.Context, current *model.Session, username, password string) (*model.Session, error) {
	user, err := a.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, internal(err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return a.login(ctx, current, user)
}

func (a *AuthService) login(ctx context.Context, current *model.Session, user *model.User) (*model.Session, error) {
	session, err := a.sessionService.Login(ctx, current, user)
	if err != nil {
		return nil, internal(err)
	}
	if err := a.userRepo.UpdateLastLogin(ctx, user.ID, a.now().UTC()); err != nil {
		a.logger.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to update last login")
	}
	return session, nil
}

func (a *AuthService) SignOut(ctx context.Context, current *model.Session) error {
	if err := a.sessionService.Logout(ctx, current); err != nil {
		return internal(err)
	}
	return nil
}

var _ IAuthService = (*AuthService)(nil)
