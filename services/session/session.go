package session

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// TokenKey is the name under which the session token is kept,
// both as the cookie name and as the storage key
const TokenKey = "access_token"

// tokenCtxKey caches the token resolved for the current request
const tokenCtxKey = "session_token"

// ErrSessionNotFound is returned by a Backend when no token is stored under the session id
var ErrSessionNotFound = errors.New("session not found")

// Store keeps the API bearer token of the user across requests.
// GetToken returns an empty token and no error when the user has no session
type Store interface {
	GetToken(ctx *gin.Context) (string, error)
	SetToken(ctx *gin.Context, token string) error
	ClearToken(ctx *gin.Context) error
}

func cachedToken(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(tokenCtxKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}

func cacheToken(ctx *gin.Context, token string) {
	ctx.Set(tokenCtxKey, token)
}
