package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/arfidakai/Rapihin.ai/internal/client/api"
	"github.com/arfidakai/Rapihin.ai/internal/client/config"
	"github.com/arfidakai/Rapihin.ai/internal/client/credstore"
	"github.com/arfidakai/Rapihin.ai/internal/client/repositories/metadata"
	"github.com/arfidakai/Rapihin.ai/internal/client/services"
	"github.com/arfidakai/Rapihin.ai/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services behind the REPL. One App owns one credential store,
// one shared API client, and one formatting orchestrator.
type App struct {
	config  *config.Config
	auth    services.AuthService
	format  services.FormatService
	history services.HistoryService
	store   *credstore.Store
	log     logging.Logger
	reader  *bufio.Reader

	db *sql.DB // nil when local storage is unavailable
}

func NewApp(c *config.Config, log logging.Logger) *App {
	ctx := context.Background()

	var repo metadata.Repository
	db, err := credstore.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		// degrade to in-memory: the session just won't survive a restart
		log.Warn(ctx, "local storage unavailable", "error", err)
	} else {
		repo = metadata.NewSQLiteRepository(db)
	}

	store := credstore.New(repo, log)
	client := api.NewHTTPClient(c.APIBaseURL, store, c.RequestTimeout, c.FormatTimeout, log)

	return &App{
		config:  c,
		auth:    services.NewAuthService(client, store, log),
		format:  services.NewFormatService(client, c.OutputDir, log),
		history: services.NewHistoryService(client),
		store:   store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}
}

// Run re-validates any persisted session and enters the REPL. It returns
// when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if session, err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	} else if session.Authenticated() {
		printlnFn("Welcome back,", session.User.FullName)
	}

	printlnFn("Rapihin CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close tears down the formatting orchestrator (abandoning any in-flight
// request) and the local database.
func (a *App) Close() {
	a.format.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.Session().Authenticated()
}

func (a *App) getStatus() string {
	session := a.auth.Session()
	if session.User != nil {
		return "(" + session.User.Email + ")"
	}
	return ""
}
