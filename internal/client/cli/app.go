package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/dprasetya/storyline/internal/client/api"
	"github.com/dprasetya/storyline/internal/client/config"
	"github.com/dprasetya/storyline/internal/client/creds"
	"github.com/dprasetya/storyline/internal/client/services"
	"github.com/dprasetya/storyline/internal/client/store"
	"github.com/dprasetya/storyline/internal/logging"
	"github.com/dprasetya/storyline/internal/netx"
)

// Mode reflects the app's view of server reachability, updated by the
// online status watcher.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires the services together and drives the interactive loop.
type App struct {
	config    *config.Config
	auth      services.AuthService
	stories   services.StoryService
	favorites services.FavoriteService
	syncer    services.SyncService
	pushKeys  *api.PushKeyProvider
	store     *store.Store
	log       logging.Logger
	Mode      Mode
	reader    *bufio.Reader
}

// NewApp opens the local store and credential file and builds the service
// graph on top of them.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	credStore, err := creds.NewFileStore(c.CredentialsPath)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	apiClient := api.NewRESTClient(c.ServerBaseURL, credStore)
	online := func(ctx context.Context) bool { return netx.IsOnline(ctx, c.ServerBaseURL) }

	return &App{
		config:    c,
		auth:      services.NewAuthService(apiClient, credStore),
		stories:   services.NewStoryService(apiClient, st.Drafts, st.Cache, online, log),
		favorites: services.NewFavoriteService(st.Favorites),
		syncer:    services.NewSyncService(apiClient, st.Drafts, credStore, online, log),
		pushKeys:  api.NewPushKeyProvider(apiClient, c.VapidPublicKey),
		store:     st,
		log:       log,
		Mode:      ModeOffline,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the online status watcher and the interactive loop, and closes
// the store when the loop ends.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.startOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode == mode {
		return
	}
	a.Mode = mode
	a.log.Info(ctx, "connectivity changed", "mode", string(mode))

	// connectivity restored: drain pending drafts
	if mode == ModeOnline {
		go a.autoSync(ctx)
	}
}

func (a *App) autoSync(ctx context.Context) {
	result := a.syncer.SyncPending(ctx)
	if result.Skipped != "" || result.Total == 0 {
		return
	}
	printlnFn("Synced", result.Synced, "of", result.Total, "pending stories")
}

// startOnlineStatusWatcher probes server reachability on a ticker and flips
// the app mode on transitions.
func (a *App) startOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if netx.IsOnline(ctx, a.config.ServerBaseURL) {
				a.setMode(ctx, ModeOnline)
			} else {
				a.setMode(ctx, ModeOffline)
			}
		case <-ctx.Done():
			return
		}
	}
}
