package app

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/five82/missionctl/internal/chat"
	"github.com/five82/missionctl/internal/clock"
	"github.com/five82/missionctl/internal/config"
	"github.com/five82/missionctl/internal/fetch"
	"github.com/five82/missionctl/internal/launch"
	"github.com/five82/missionctl/internal/logging"
	"github.com/five82/missionctl/internal/news"
	"github.com/five82/missionctl/internal/prefs"
	"github.com/five82/missionctl/internal/ui"
)

// Options configure the missionctl application. Zero values defer to the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/missionctl/prefs.toml
	Stars      int    // negative disables the starfield
	Seed       int64
	Offline    bool
}

// Services are the data sources shared by the dashboard and the status probe.
type Services struct {
	Launch *launch.Client
	News   *news.Client
	Chat   chat.Backend
}

// Setup loads configuration, applies command-line overrides and opens the
// log file. Callers own the returned logger.
func Setup(opts Options) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logging: %w", err)
	}
	return cfg, logger, nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	switch {
	case opts.Stars < 0:
		cfg.Display.Stars = 0
	case opts.Stars > 0:
		cfg.Display.Stars = opts.Stars
	}
	if opts.Seed != 0 {
		cfg.Display.Seed = opts.Seed
	}
	if opts.Offline {
		cfg.Chat.Backend = config.BackendOffline
	}
}

// NewServices builds the API clients described by cfg.
func NewServices(cfg config.Config, logger *zap.Logger, getenv func(string) string) Services {
	launchHTTP := fetch.NewClient(fetch.WithLimiter(launch.NewLimiter(cfg.Launch.RequestsPerHour)))
	shared := fetch.NewClient()

	return Services{
		Launch: launch.NewClient(cfg.Launch.APIURL, launchHTTP),
		News:   news.NewClient(cfg.News.APIURL, shared, logger),
		Chat:   newBackend(cfg.Chat, shared, logger, getenv),
	}
}

// newBackend selects the chat backend. Misconfigured remote backends
// degrade to offline so the canned replies still work.
func newBackend(cfg config.ChatConfig, hc *fetch.Client, logger *zap.Logger, getenv func(string) string) chat.Backend {
	switch cfg.Backend {
	case config.BackendOffline:
		return chat.OfflineBackend{}
	case config.BackendOpenAI:
		if cfg.APIKey == "" && getenv("OPENAI_API_KEY") == "" {
			logger.Warn("openai chat backend has no api key, using offline replies")
			return chat.OfflineBackend{}
		}
		backend, err := chat.NewOpenAIBackend(cfg.APIKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			logger.Warn("openai chat backend unavailable, using offline replies", zap.Error(err))
			return chat.OfflineBackend{}
		}
		return backend
	default:
		return chat.HTTPBackend{Endpoint: cfg.Endpoint, Client: hc}
	}
}

// Run boots the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, logger, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	prefsFile, err := prefs.Open(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	userPrefs := prefsFile.Load()

	services := NewServices(cfg, logger, os.Getenv)

	localLayout := cfg.Display.LocalTimeFormat
	if localLayout == "" {
		localLayout = clock.LocaleLayout(os.Getenv)
	}

	seed := cfg.Display.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("missionctl starting",
		zap.String("chat_backend", cfg.Chat.Backend),
		zap.Int("stars", cfg.Display.Stars),
		zap.Int64("seed", seed))

	widget := chat.NewWidget(services.Chat,
		chat.WithTimeout(time.Duration(cfg.Chat.TimeoutSeconds)*time.Second),
		chat.WithLogger(logger))

	return ui.Run(ui.Options{
		Context: ctx,
		Resolver: launch.Resolver{
			Source: services.Launch,
			Limit:  cfg.Launch.Limit,
			Logger: logger,
		},
		News:        services.News,
		NewsLimit:   cfg.News.Limit,
		Chat:        widget,
		Stars:       cfg.Display.Stars,
		Rand:        rand.New(rand.NewSource(seed)),
		FPS:         cfg.Display.FPS,
		LocalLayout: localLayout,
		ThemeName:   userPrefs.Theme,
		Prefs:       &prefsFile,
		Logger:      logger,
	})
}
