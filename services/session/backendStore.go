package session

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/config"
	"go.uber.org/zap"
)

// Backend stores session tokens under random session ids.
// Load returns ErrSessionNotFound when the id is unknown or expired
type Backend interface {
	Load(ctx context.Context, id string) (string, error)
	Save(ctx context.Context, id, token string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type backendStore struct {
	logger  *zap.Logger
	cfg     *config.AppConfig
	backend Backend
}

// NewBackendStore creates a Store that keeps a session id in a cookie and the token in backend
func NewBackendStore(logger *zap.Logger, cfg *config.AppConfig, backend Backend) Store {
	return &backendStore{
		logger:  logger,
		cfg:     cfg,
		backend: backend,
	}
}

func (s *backendStore) GetToken(ctx *gin.Context) (string, error) {
	if token, ok := cachedToken(ctx); ok {
		return token, nil
	}

	id, err := ctx.Cookie(TokenKey)
	if err != nil || id == "" {
		cacheToken(ctx, "")
		return "", nil
	}

	token, err := s.backend.Load(ctx, id)
	if err != nil {
		if errors.Cause(err) == ErrSessionNotFound {
			cacheToken(ctx, "")
			return "", nil
		}
		return "", errors.Wrap(err, "could not load session")
	}

	cacheToken(ctx, token)
	return token, nil
}

// SetToken saves token under a new session id and drops the session the request came with
func (s *backendStore) SetToken(ctx *gin.Context, token string) error {
	if previous, err := ctx.Cookie(TokenKey); err == nil && previous != "" {
		err = s.backend.Delete(ctx, previous)
		if err != nil && errors.Cause(err) != ErrSessionNotFound {
			s.logger.Warn("could not delete previous session", zap.Error(err))
		}
	}

	id := uuid.New().String()

	err := s.backend.Save(ctx, id, token, time.Duration(s.cfg.Session.TTLSeconds)*time.Second)
	if err != nil {
		return errors.Wrap(err, "could not save session")
	}

	ctx.SetCookie(TokenKey, id, s.cfg.Session.TTLSeconds, "/", s.cfg.Session.CookieDomain, s.cfg.Session.CookieSecure, true)
	cacheToken(ctx, token)
	return nil
}

func (s *backendStore) ClearToken(ctx *gin.Context) error {
	cacheToken(ctx, "")
	ctx.SetCookie(TokenKey, "", -1, "/", s.cfg.Session.CookieDomain, s.cfg.Session.CookieSecure, true)

	id, err := ctx.Cookie(TokenKey)
	if err != nil || id == "" {
		return nil
	}

	err = s.backend.Delete(ctx, id)
	if err != nil && errors.Cause(err) != ErrSessionNotFound {
		return errors.Wrap(err, "could not delete session")
	}
	return nil
}
