package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bff/models"
	"bff/services/logger"

	"github.com/redis/go-redis/v9"
)

// SessionPersister lưu session bền qua reload
type SessionPersister interface {
	Load(ctx context.Context, sessionID string) (*models.Session, error)
	Save(ctx context.Context, sessionID string, session *models.Session) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionPersister lưu session vào Redis theo TTL
type RedisSessionPersister struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionPersister(rdb *redis.Client, ttl time.Duration) *RedisSessionPersister {
	return &RedisSessionPersister{rdb: rdb, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (p *RedisSessionPersister) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	if err := GetFromRedis(ctx, p.rdb, sessionKey(sessionID), &session); err != nil {
		return nil, err
	}
	if session.User == nil && !session.IsAuthenticated {
		return nil, nil
	}
	return &session, nil
}

func (p *RedisSessionPersister) Save(ctx context.Context, sessionID string, session *models.Session) error {
	return SetToRedis(ctx, p.rdb, sessionKey(sessionID), session, p.ttl)
}

func (p *RedisSessionPersister) Delete(ctx context.Context, sessionID string) error {
	return DeleteFromRedis(ctx, p.rdb, sessionKey(sessionID))
}

// SessionStore giữ danh tính đã xác thực của một phiên trình duyệt.
// Mutation chỉ đi qua Login/Logout/UpdateUser; mỗi mutation đều được
// persist lại để phiên sống qua reload.
type SessionStore struct {
	mu        sync.Mutex
	sessionID string
	session   models.Session
	api       *APIClient
	persister SessionPersister
	logger    logger.Logger
}

// SessionStoreOptions chứa các dependency của SessionStore
type SessionStoreOptions struct {
	SessionID string
	API       *APIClient
	Persister SessionPersister
	Logger    logger.Logger
}

// NewSessionStore tạo store cho một phiên, nạp lại trạng thái đã persist nếu có
func NewSessionStore(ctx context.Context, opts SessionStoreOptions) *SessionStore {
	store := &SessionStore{
		sessionID: opts.SessionID,
		api:       opts.API,
		persister: opts.Persister,
		logger:    opts.Logger,
	}

	if opts.Persister != nil {
		if saved, err := opts.Persister.Load(ctx, opts.SessionID); err != nil {
			store.logger.Error("Không nạp được session %s từ storage: %v", opts.SessionID, err)
		} else if saved != nil {
			store.session = *saved
		}
	}

	return store
}

// Login đặt danh tính và credential cho phiên
func (s *SessionStore) Login(ctx context.Context, user *models.User, accessToken string) {
	s.mu.Lock()
	s.session = models.Session{
		User:            user,
		AccessToken:     accessToken,
		IsAuthenticated: true,
		UpdatedAt:       time.Now(),
	}
	s.mu.Unlock()
	s.persist(ctx)
}

// Logout xóa danh tính, credential và cờ xác thực
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	if s.persister != nil {
		if err := s.persister.Delete(ctx, s.sessionID); err != nil {
			s.logger.Error("Không xóa được session %s: %v", s.sessionID, err)
		}
	}
}

// UpdateUser gộp các field cập nhật vào danh tính hiện tại; no-op nếu chưa đăng nhập
func (s *SessionStore) UpdateUser(ctx context.Context, patch models.UserPatch) {
	s.mu.Lock()
	if s.session.User == nil {
		s.mu.Unlock()
		return
	}
	s.session.User.Merge(patch)
	s.session.UpdatedAt = time.Now()
	s.mu.Unlock()
	s.persist(ctx)
}

// Current trả về bản copy trạng thái phiên hiện tại
func (s *SessionStore) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Token trả về access token của phiên, rỗng nếu chưa đăng nhập
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.AccessToken
}

// Revalidate kiểm tra lại phiên với backend qua /auth/me.
// 401/403 từ backend (vd user vừa bị block) thì buộc logout;
// lỗi khác giữ nguyên trạng thái để không đá user ra vì backend chập chờn.
func (s *SessionStore) Revalidate(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return nil
	}

	envelope, err := s.api.Get(ctx, "/auth/me", token)
	if err != nil {
		if IsAuthError(err) {
			s.logger.Info("Session %s hết hiệu lực, buộc logout", s.sessionID)
			s.Logout(ctx)
		}
		return err
	}

	var user models.User
	if err := envelope.DecodeData(&user); err != nil {
		return err
	}

	s.Login(ctx, &user, token)
	return nil
}

func (s *SessionStore) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	session := s.Current()
	if err := s.persister.Save(ctx, s.sessionID, &session); err != nil {
		s.logger.Error("Không persist được session %s: %v", s.sessionID, err)
	}
}
