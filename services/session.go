package services

import (
	"net/http"

	"github.com/gorilla/sessions"

	"Cinerank/config"
)

const sessionName = "cinerank-session"

// Sessions wraps the cookie store; the only session state this app keeps is
// one-shot flash messages shown on the list page.
type Sessions struct {
	store *sessions.CookieStore
}

func NewSessions(cfg *config.Config) *Sessions {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Sessions{store: store}
}

// AddFlash queues a message for the next rendered page.
func (s *Sessions) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return err
	}
	session.AddFlash(message)
	return session.Save(r, w)
}

// Flashes drains and returns queued messages.
func (s *Sessions) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return nil
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() removes the messages from the session; persist the removal.
	_ = session.Save(r, w)

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
