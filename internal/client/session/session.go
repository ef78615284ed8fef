// Package session manages the login/logout lifecycle: it turns an access
// token into an active user, builds the entity store and the alert notifier
// for that user, and tears both down on logout.
package session

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mygaadi/mygaadi/internal/client/alerts"
	"github.com/mygaadi/mygaadi/internal/client/config"
	"github.com/mygaadi/mygaadi/internal/client/storage"
	"github.com/mygaadi/mygaadi/internal/client/store"
	"github.com/mygaadi/mygaadi/internal/common"
	"github.com/mygaadi/mygaadi/internal/logging"
)

// Claims is the subset of the access token the client reads. The token is
// issued and verified server-side; the client only extracts identity from
// it, so the signature is not checked here.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Manager owns the per-session collaborators. One Manager lives for the
// process; Login/Logout swap the session underneath it.
type Manager struct {
	cfg      *config.Config
	adapter  storage.Adapter
	setStore alerts.SetStore
	sink     alerts.Sink
	log      logging.Logger

	store    *store.Store
	set      *alerts.NotifiedSet
	notifier *alerts.Notifier
}

func NewManager(cfg *config.Config, adapter storage.Adapter, setStore alerts.SetStore, sink alerts.Sink, log logging.Logger) *Manager {
	return &Manager{
		cfg:      cfg,
		adapter:  adapter,
		setStore: setStore,
		sink:     sink,
		log:      log.With("component", "session"),
	}
}

// Login parses the access token, initializes the entity store for the token
// subject and starts the periodic alert check. Returns the user id on
// success and common.ErrInvalidToken when the token cannot be read. A second
// login while a session is active is rejected with common.ErrSessionActive;
// the caller must log out explicitly so the running notifier is stopped and
// the old session's data handling stays deliberate.
func (m *Manager) Login(ctx context.Context, token string) (string, error) {
	if m.store != nil {
		return "", common.ErrSessionActive
	}

	userID, email, err := parseToken(token)
	if err != nil {
		return "", err
	}

	st := store.New(m.adapter, m.log)
	if err := st.Initialize(ctx, userID, email); err != nil {
		return "", err
	}

	m.store = st
	m.set = alerts.NewNotifiedSet(m.setStore, userID, m.log)
	m.notifier = alerts.NewNotifier(st, m.set, m.sink, m.cfg.ReminderLeadTime, m.cfg.NotificationsEnabled, m.log)
	if err := m.notifier.Start(m.cfg.AlertCheckSpec); err != nil {
		m.log.Error(ctx, "starting alert schedule failed", "err", err)
	}

	m.log.Info(ctx, "logged in", "user", userID)
	return userID, nil
}

// Logout stops the alert schedule and clears the session state. The
// notified-alert set is wiped only when the user opted into clearing local
// data on logout; otherwise already-surfaced alerts stay suppressed across
// sessions on this device.
func (m *Manager) Logout(ctx context.Context) error {
	if m.store == nil {
		return nil
	}

	if m.notifier != nil {
		m.notifier.Stop()
	}
	if m.cfg.ClearDataOnLogout && m.set != nil {
		if err := m.set.Clear(ctx); err != nil {
			m.log.Error(ctx, "clearing notified alerts failed", "err", err)
		}
	}

	err := m.store.Logout(ctx)
	m.store = nil
	m.set = nil
	m.notifier = nil
	m.log.Info(ctx, "logged out")
	return err
}

// Store returns the entity store of the active session, or nil when logged
// out.
func (m *Manager) Store() *store.Store {
	return m.store
}

// Notifier returns the alert notifier of the active session, or nil when
// logged out.
func (m *Manager) Notifier() *alerts.Notifier {
	return m.notifier
}

// LoggedIn reports whether a session is active.
func (m *Manager) LoggedIn() bool {
	return m.store != nil && m.store.Ready()
}

// parseToken extracts the subject and email claims without verifying the
// signature.
func parseToken(token string) (userID, email string, err error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", "", errors.Join(common.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", "", common.ErrInvalidToken
	}
	return claims.Subject, claims.Email, nil
}
