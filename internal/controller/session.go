package controller

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/unclebandit/campaign-dashboard/internal/session"
	"github.com/unclebandit/campaign-dashboard/internal/view"
)

const (
	sessionName     = "dashboard-session"
	sessionIDKey    = "sid"
	flashKeySuccess = "success"
	flashKeyError   = "error"
)

// Sessions ties the visitor's cookie to the session ID that keys their
// cached backend tokens.
type Sessions struct {
	Store  sessions.Store
	Logger *slog.Logger
}

// NewCookieStore builds the signed cookie store used in production.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func (s *Sessions) get(r *http.Request) *sessions.Session {
	// An undecodable cookie still yields a fresh session.
	sess, err := s.Store.Get(r, sessionName)
	if err != nil {
		s.Logger.Debug("Discarding invalid session cookie", "error", err)
	}
	return sess
}

// Middleware assigns every visitor a random session ID and exposes it to
// the token cache through the request context.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.get(r)
		id, _ := sess.Values[sessionIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[sessionIDKey] = id
			if err := sess.Save(r, w); err != nil {
				s.Logger.Error("Failed to save session", "error", err)
			}
		}
		next.ServeHTTP(w, r.WithContext(session.WithID(r.Context(), id)))
	})
}

func (s *Sessions) flash(w http.ResponseWriter, r *http.Request, key, message string) {
	sess := s.get(r)
	sess.AddFlash(message, key)
	if err := sess.Save(r, w); err != nil {
		s.Logger.Error("Failed to save flash", "error", err)
	}
}

func (s *Sessions) FlashSuccess(w http.ResponseWriter, r *http.Request, message string) {
	s.flash(w, r, flashKeySuccess, message)
}

func (s *Sessions) FlashError(w http.ResponseWriter, r *http.Request, message string) {
	s.flash(w, r, flashKeyError, message)
}

// Flashes pops pending notifications from the session.
func (s *Sessions) Flashes(w http.ResponseWriter, r *http.Request) view.Flashes {
	sess := s.get(r)
	var out view.Flashes
	success := sess.Flashes(flashKeySuccess)
	failure := sess.Flashes(flashKeyError)
	if len(success) == 0 && len(failure) == 0 {
		return out
	}
	out.Success = toStrings(success)
	out.Error = toStrings(failure)
	if err := sess.Save(r, w); err != nil {
		s.Logger.Error("Failed to clear flashes", "error", err)
	}
	return out
}

func toStrings(vals []any) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
