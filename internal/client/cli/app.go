package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/storedash/internal/client/api"
	"github.com/dmitrijs2005/storedash/internal/client/config"
	"github.com/dmitrijs2005/storedash/internal/client/dashboard"
	"github.com/dmitrijs2005/storedash/internal/client/repositories/sessioncache"
	"github.com/dmitrijs2005/storedash/internal/client/session"
	"github.com/dmitrijs2005/storedash/internal/logging"

	_ "modernc.org/sqlite"
)

// App bundles everything the REPL needs.
type App struct {
	config *config.Config
	store  *session.Store
	dash   *dashboard.Service
	log    logging.Logger
	reader *bufio.Reader
	db     *sql.DB

	// nowFn is a test seam for the gate's clock.
	nowFn func() time.Time
}

// NewApp wires the client together: logger, HTTP API client, optional SQLite
// session cache, session store, dashboard data service. A previously
// persisted session is restored best-effort; it still has to pass the gate.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	var (
		cache sessioncache.Repository
		db    *sql.DB
	)
	if cfg.SessionCacheEnabled {
		var err error
		db, err = sessioncache.InitDatabase(ctx, cfg.SessionCacheDSN)
		if err != nil {
			return nil, err
		}
		cache = sessioncache.NewSQLiteRepository(db)
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)
	store := session.NewStore(apiClient, cache, log)

	if err := store.Restore(ctx); err != nil {
		log.Warn(ctx, "could not restore persisted session", "error", err)
	}

	return &App{
		config: cfg,
		store:  store,
		dash:   dashboard.NewService(),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		db:     db,
		nowFn:  time.Now,
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the session cache database, if any.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// status renders the prompt suffix: the user's email when logged in.
func (a *App) status() string {
	cur := a.store.Snapshot()
	if cur.IsAuthenticated && cur.User != nil {
		return "(" + cur.User.Email + ")"
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.store.Gate(a.nowFn()).Allow
}

// guard runs the session gate before a protected view. On a denial it
// performs the navigation effect: tells the user where to go and, when the
// session is beyond saving, clears it so the prompt drops back to anonymous.
func (a *App) guard(ctx context.Context) bool {
	d := a.store.Gate(a.nowFn())
	if d.Allow {
		return true
	}

	a.log.Debug(ctx, "gate denied", "reason", d.Reason.String())
	printlnFn("Please sign in to continue (" + a.config.LoginPath + ")")
	if d.Reason == session.ReasonMalformedToken || d.Reason == session.ReasonTokenExpired {
		a.store.Clear(ctx)
	}
	return false
}
