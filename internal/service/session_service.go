package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/redis_repo"
	"github.com/google/uuid"
)

type ISessionService interface {
	Start(ctx context.Context) (*model.Session, error)
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Login(ctx context.Context, current *model.Session, user *model.User) (*model.Session, error)
	Logout(ctx context.Context, current *model.Session) error
}

type SessionService struct {
	sessionRepo redis_repo.ISessionRepository
	cartRepo    redis_repo.ICartRepository
	now         func() time.Time
}

func NewSessionService(sessionRepo redis_repo.ISessionRepository, cartRepo redis_repo.ICartRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		cartRepo:    cartRepo,
		now:         time.Now,
	}
}

// Start 建立匿名 session, 購物車從這裡開始
func (s *SessionService) Start(ctx context.Context) (*model.Session, error) {
	session := &model.Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get 找不到時回傳 redis_repo.ErrSessionNotFound, 找到會順便延長效期
func (s *SessionService) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Touch(ctx, sessionID); err != nil {
		return nil, err
	}
	return session, nil
}

// Login 換發新的 session id, 匿名時期的購物車一併帶過去
func (s *SessionService) Login(ctx context.Context, current *model.Session, user *model.User) (*model.Session, error) {
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: s.now().UTC(),
	}
	if user.Profile != nil {
		session.ProfileID = user.Profile.ID
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	if current != nil && current.ID != "" {
		if err := s.cartRepo.Move(ctx, current.ID, session.ID); err != nil {
			return nil, err
		}
		if err := s.sessionRepo.Delete(ctx, current.ID); err != nil {
			return nil, fmt.Errorf("failed to drop previous session: %w", err)
		}
	}
	return session, nil
}

// Logout session 與購物車一起清掉
func (s *SessionService) Logout(ctx context.Context, current *model.Session) error {
	if current == nil || current.ID == "" {
		return nil
	}
	if err := s.cartRepo.Clear(ctx, current.ID); err != nil {
		return err
	}
	return s.sessionRepo.Delete(ctx, current.ID)
}

var _ ISessionService = (*SessionService)(nil)
