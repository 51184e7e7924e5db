package session

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/environment"
	"github.com/sedtender/tender_portal/utils"
	"github.com/sedtender/tender_portal/utils/auth"
	"go.uber.org/zap"
)

type cookieStore struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	secret       []byte
	timeProvider utils.TimeProvider
}

// NewCookieStore creates a Store that keeps the token in a cookie, sealed with the SESSION_SECRET env var
func NewCookieStore(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, timeProvider utils.TimeProvider) (Store, error) {
	secret := env.Get(environment.SessionSecret)
	if secret == "" {
		return nil, errors.New("SESSION_SECRET must be defined to use cookie sessions")
	}

	return &cookieStore{
		logger:       logger,
		cfg:          cfg,
		secret:       []byte(secret),
		timeProvider: timeProvider,
	}, nil
}

func (s *cookieStore) GetToken(ctx *gin.Context) (string, error) {
	if token, ok := cachedToken(ctx); ok {
		return token, nil
	}

	sealed, err := ctx.Cookie(TokenKey)
	if err != nil || sealed == "" {
		cacheToken(ctx, "")
		return "", nil
	}

	token, err := auth.OpenToken(sealed, s.timeProvider.Now().Unix(), s.secret)
	if err != nil {
		s.logger.Debug("ignoring invalid session cookie", zap.Error(err))
		cacheToken(ctx, "")
		return "", nil
	}

	cacheToken(ctx, token)
	return token, nil
}

func (s *cookieStore) SetToken(ctx *gin.Context, token string) error {
	now := s.timeProvider.Now()
	ttl := time.Duration(s.cfg.Session.TTLSeconds) * time.Second

	var expiresAt int64
	if ttl > 0 {
		expiresAt = now.Add(ttl).Unix()
	}

	sealed, err := auth.SealToken(token, now.Unix(), expiresAt, s.secret)
	if err != nil {
		return errors.Wrap(err, "could not seal session token")
	}

	ctx.SetCookie(TokenKey, sealed, s.cfg.Session.TTLSeconds, "/", s.cfg.Session.CookieDomain, s.cfg.Session.CookieSecure, true)
	cacheToken(ctx, token)
	return nil
}

func (s *cookieStore) ClearToken(ctx *gin.Context) error {
	ctx.SetCookie(TokenKey, "", -1, "/", s.cfg.Session.CookieDomain, s.cfg.Session.CookieSecure, true)
	cacheToken(ctx, "")
	return nil
}
