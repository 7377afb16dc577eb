package graph

import (
	"context"
	"net/http"
	"time"

	"github.com/miteshrathod09/sick-fits/internal/model"
)

type contextKey int

const (
	userContextKey contextKey = iota
	sessionContextKey
	cookieContextKey
)

// WithUser attaches the authenticated user for this request.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFrom returns the authenticated user, or nil for anonymous requests.
func UserFrom(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// WithSessionID attaches the session token id backing this request's cookie.
func WithSessionID(ctx context.Context, tokenID string) context.Context {
	return context.WithValue(ctx, sessionContextKey, tokenID)
}

func SessionIDFrom(ctx context.Context) string {
	tokenID, _ := ctx.Value(sessionContextKey).(string)
	return tokenID
}

const (
	cookieName   = "token"
	cookieMaxAge = 365 * 24 * time.Hour
)

// CookieWriter lets resolvers set or clear the session cookie on the
// response without knowing about the HTTP layer.
type CookieWriter struct {
	w      http.ResponseWriter
	secure bool
}

func NewCookieWriter(w http.ResponseWriter, secure bool) *CookieWriter {
	return &CookieWriter{w: w, secure: secure}
}

func (cw *CookieWriter) SetToken(token string) {
	http.SetCookie(cw.w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cw.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (cw *CookieWriter) Clear() {
	http.SetCookie(cw.w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cw.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func WithCookieWriter(ctx context.Context, cw *CookieWriter) context.Context {
	return context.WithValue(ctx, cookieContextKey, cw)
}

func cookieWriterFrom(ctx context.Context) *CookieWriter {
	cw, _ := ctx.Value(cookieContextKey).(*CookieWriter)
	return cw
}
