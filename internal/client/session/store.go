package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/storedash/internal/client/api"
	"github.com/dmitrijs2005/storedash/internal/client/repositories/sessioncache"
	"github.com/dmitrijs2005/storedash/internal/logging"
)

// Fallback banner messages for operations where the server sent no usable
// message of its own.
const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgRefreshFailed      = "Token refresh failed"
	MsgNetworkError       = "Network error occurred"
)

// ErrNoRefreshToken is returned by Refresh when the session holds no refresh
// token; no network call is made in that case. The text is shown to the user
// as-is.
var ErrNoRefreshToken = errors.New("No refresh token available")

// OpError carries the user-facing banner text for a failed operation, with
// the underlying cause available via errors.Unwrap.
type OpError struct {
	Message string
	Err     error
}

func (e *OpError) Error() string { return e.Message }

func (e *OpError) Unwrap() error { return e.Err }

// Store owns the Session and applies all state transitions. Safe for
// concurrent use; see the package doc for what that does and does not
// guarantee.
type Store struct {
	client api.Client
	cache  sessioncache.Repository
	log    logging.Logger

	now func() time.Time

	mu  sync.Mutex
	cur Session
}

// NewStore builds a Store around the given API client. cache may be nil, in
// which case the session lives only in memory.
func NewStore(client api.Client, cache sessioncache.Repository, log logging.Logger) *Store {
	return &Store{
		client: client,
		cache:  cache,
		log:    log.With("component", "session"),
		now:    time.Now,
	}
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Login performs exactly one network call. On success the session becomes
// Authenticated; on failure it is left untouched and the returned *OpError
// carries the server's message, falling back to MsgLoginFailed.
func (s *Store) Login(ctx context.Context, email, password string, remember bool) error {
	res, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password, Remember: remember})
	if err != nil {
		return s.opError(err, MsgLoginFailed)
	}

	s.applyAuth(ctx, res)
	s.log.Info(ctx, "logged in", "user", res.User.Email)
	return nil
}

// Register performs exactly one network call; the password confirmation never
// leaves the client. Success and failure behave exactly like Login, with
// MsgRegistrationFailed as the fallback.
func (s *Store) Register(ctx context.Context, firstName, lastName, email, password string) error {
	res, err := s.client.Register(ctx, api.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		return s.opError(err, MsgRegistrationFailed)
	}

	s.applyAuth(ctx, res)
	s.log.Info(ctx, "registered", "user", res.User.Email)
	return nil
}

// Refresh exchanges the stored refresh token for a new pair. It fails fast
// with ErrNoRefreshToken when the session holds none, without touching the
// network. Any failure, including the fast path, wipes the whole session.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	refreshToken := s.cur.RefreshToken
	s.mu.Unlock()

	if refreshToken == "" {
		s.wipe(ctx)
		return &OpError{Message: ErrNoRefreshToken.Error(), Err: ErrNoRefreshToken}
	}

	pair, err := s.client.Refresh(ctx, refreshToken)
	if err != nil {
		s.wipe(ctx)
		s.log.Warn(ctx, "refresh failed, session cleared", "error", err)
		if errors.Is(err, api.ErrUnavailable) {
			return &OpError{Message: MsgNetworkError, Err: err}
		}
		return &OpError{Message: MsgRefreshFailed, Err: err}
	}

	s.mu.Lock()
	s.cur.AccessToken = pair.AccessToken
	s.cur.RefreshToken = pair.RefreshToken
	s.cur.ExpiresAt = s.expiryFrom(pair.ExpiresIn)
	cur := s.cur
	s.mu.Unlock()

	s.persist(ctx, cur)
	s.log.Debug(ctx, "tokens refreshed", "expires_at", cur.ExpiresAt)
	return nil
}

// Logout best-effort-notifies the server when an access token is present and
// always clears the session. It never fails and is idempotent from the
// anonymous state.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	accessToken := s.cur.AccessToken
	s.mu.Unlock()

	if accessToken != "" {
		if err := s.client.Logout(ctx, accessToken); err != nil {
			s.log.Warn(ctx, "server logout failed, clearing locally anyway", "error", err)
		}
	}
	s.wipe(ctx)
}

// Clear wipes the session without contacting the server.
func (s *Store) Clear(ctx context.Context) {
	s.wipe(ctx)
}

// Restore loads a previously persisted session, if any. The restored record
// still has to pass the gate before anything protected renders.
func (s *Store) Restore(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	saved, err := s.cache.Load(ctx)
	if err != nil {
		return err
	}
	if saved == nil {
		return nil
	}

	s.mu.Lock()
	s.cur = Session{
		User:            saved.User,
		AccessToken:     saved.AccessToken,
		RefreshToken:    saved.RefreshToken,
		IsAuthenticated: saved.IsAuthenticated,
		ExpiresAt:       saved.ExpiresAt,
	}
	s.mu.Unlock()
	return nil
}

// applyAuth installs the result of a successful login or register.
func (s *Store) applyAuth(ctx context.Context, res *api.AuthResult) {
	user := res.User

	s.mu.Lock()
	s.cur = Session{
		User:            &user,
		AccessToken:     res.AccessToken,
		RefreshToken:    res.RefreshToken,
		IsAuthenticated: true,
		ExpiresAt:       s.expiryFrom(res.ExpiresIn),
	}
	cur := s.cur
	s.mu.Unlock()

	s.persist(ctx, cur)
}

// wipe atomically resets every session field.
func (s *Store) wipe(ctx context.Context) {
	s.mu.Lock()
	s.cur = Session{}
	s.mu.Unlock()

	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}
}

func (s *Store) persist(ctx context.Context, cur Session) {
	if s.cache == nil {
		return
	}
	rec := sessioncache.Record{
		User:            cur.User,
		AccessToken:     cur.AccessToken,
		RefreshToken:    cur.RefreshToken,
		IsAuthenticated: cur.IsAuthenticated,
		ExpiresAt:       cur.ExpiresAt,
	}
	if err := s.cache.Save(ctx, rec); err != nil {
		// persistence is best-effort, the in-memory session stays authoritative
		s.log.Warn(ctx, "failed to persist session", "error", err)
	}
}

// expiryFrom converts a server-reported lifetime in seconds to an advisory
// epoch-milliseconds deadline.
func (s *Store) expiryFrom(expiresIn int64) int64 {
	if expiresIn <= 0 {
		return 0
	}
	return s.now().UnixMilli() + expiresIn*1000
}

// opError maps a client error to the banner text the UI shows.
func (s *Store) opError(err error, fallback string) error {
	if errors.Is(err, api.ErrUnavailable) {
		return &OpError{Message: MsgNetworkError, Err: err}
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &OpError{Message: apiErr.Message, Err: err}
	}
	return &OpError{Message: fallback, Err: err}
}
