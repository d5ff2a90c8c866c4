// Package cli wires the permission negotiator for the onboard commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/oneuniverse/onboard/internal/application/usecase"
	"github.com/oneuniverse/onboard/internal/cli/styles"
	"github.com/oneuniverse/onboard/internal/domain/build"
	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/domain/repository"
	"github.com/oneuniverse/onboard/internal/infrastructure/config"
	"github.com/oneuniverse/onboard/internal/infrastructure/messaging"
	"github.com/oneuniverse/onboard/internal/infrastructure/oauthclient"
	"github.com/oneuniverse/onboard/internal/infrastructure/persistence/sqlite"
	"github.com/oneuniverse/onboard/internal/infrastructure/platform"
	"github.com/oneuniverse/onboard/internal/infrastructure/popup"
	"github.com/oneuniverse/onboard/internal/infrastructure/portal"
	"github.com/oneuniverse/onboard/internal/infrastructure/telemetry"
	"github.com/oneuniverse/onboard/internal/logging"
)

const (
	serviceName   = "onboard"
	logDirName    = "logs"
	traceFileName = "traces.jsonl"
)

// Options tune how the app is assembled for one command.
type Options struct {
	// ConfigFile overrides the XDG config file.
	ConfigFile string
	// LogToFile sends logs to the data directory instead of stderr.
	// The interactive screen owns the terminal and sets this.
	LogToFile bool
	// WatchConfig reloads the config file when it changes.
	WatchConfig bool
	// Prompt receives device sign-in instructions. Defaults to stderr.
	Prompt io.Writer
	// NoDeviceSignIn skips the in-place sign-in so OAuth always uses popups.
	NoDeviceSignIn bool
	// BuildInfo is injected from main.
	BuildInfo build.Info
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Catalog   entity.Catalog

	// Use cases
	Negotiator *usecase.NegotiatePermissionsUseCase
	Audit      repository.ConsentAuditRepository

	Metrics *telemetry.Metrics
	Bus     *messaging.Bus

	configManager *config.Manager
	db            *sqlite.LazyDB
	conn          *dbus.Conn
	popups        *popup.Driver
	idle          *portal.IdleMonitor
	devices       *portal.DevicePortal

	// Context with logger
	ctx        context.Context
	cancel     context.CancelFunc
	logCleanup func()
	shutdown   []func(context.Context) error
}

// NewApp creates a CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err = mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCleanup := newLogger(cfg, opts.LogToFile)
	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))

	if created := mgr.CreatedConfigFile(); created != "" {
		logger.Info().Str("path", created).Msg("wrote default config")
	}

	a := &App{
		Config:        cfg,
		Theme:         styles.NewTheme(),
		BuildInfo:     opts.BuildInfo,
		Catalog:       entity.DefaultCatalog(),
		configManager: mgr,
		ctx:           ctx,
		cancel:        cancel,
		logCleanup:    logCleanup,
	}

	if opts.WatchConfig {
		mgr.OnConfigChange(func(*config.Config) {
			logger.Info().Msg("config changed, new values apply to the next negotiation")
		})
		if err = mgr.Watch(logger); err != nil {
			logger.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	if err = a.setupTelemetry(); err != nil {
		_ = a.Close()
		return nil, err
	}

	if cfg.Audit.Enabled {
		a.db = sqlite.NewLazyDB(cfg.Audit.DatabasePath)
		a.Audit = sqlite.NewLazyConsentAuditRepository(a.db)
	}

	var prompt oauthclient.Prompter
	if !opts.NoDeviceSignIn {
		w := opts.Prompt
		if w == nil {
			w = os.Stderr
		}
		prompt = devicePrompter(w)
	}
	host := a.buildHost(prompt)

	a.Negotiator = usecase.NewNegotiatePermissionsUseCase(
		usecase.DefaultStrategies(host, ToNegotiationConfig(cfg)),
		a.Audit,
		a.Metrics,
	)

	logger.Debug().
		Bool("audit", cfg.Audit.Enabled).
		Bool("session_bus", a.conn != nil).
		Bool("idle_supported", a.idle.Supported()).
		Str("idle_source", a.idle.Source()).
		Bool("device_portal", a.devices.PortalSupported()).
		Msg("app initialized")
	a.logIdleTime()

	return a, nil
}

func newLogger(cfg *config.Config, toFile bool) (zerolog.Logger, func()) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.TimeFormat = "15:04:05"
	if cfg.Logging.Format == "json" {
		logCfg.Format = "json"
	}

	if !toFile {
		return logging.New(logCfg), func() {}
	}

	dataDir, err := config.GetDataDir()
	if err != nil {
		return logging.New(logCfg), func() {}
	}
	logger, cleanup, err := logging.NewWithFile(logCfg, filepath.Join(dataDir, logDirName))
	if err != nil {
		logger.Warn().Err(err).Msg("file logging unavailable, using stderr")
	}
	return logger, cleanup
}

func (a *App) setupTelemetry() error {
	log := logging.FromContext(a.ctx)
	cfg := a.Config

	a.Metrics = telemetry.NewMetrics()
	if addr := cfg.Telemetry.MetricsAddr; addr != "" {
		go func() {
			if err := a.Metrics.Serve(a.ctx, addr); err != nil {
				log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
			}
		}()
	}

	if !cfg.Telemetry.Tracing {
		return nil
	}
	dataDir, err := config.GetDataDir()
	if err != nil {
		return fmt.Errorf("resolve trace dir: %w", err)
	}
	file, err := os.OpenFile(filepath.Join(dataDir, traceFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open trace file: %w", err)
	}
	shutdown, err := telemetry.Setup(a.ctx, serviceName, a.BuildInfo.Version, true, file)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("setup tracing: %w", err)
	}
	a.shutdown = append(a.shutdown, shutdown, func(context.Context) error { return file.Close() })
	return nil
}

// buildHost assembles the platform adapters. The session bus is optional:
// without it idle detection and the camera portal report unsupported.
func (a *App) buildHost(prompt oauthclient.Prompter) *platform.Host {
	log := logging.FromContext(a.ctx)
	cfg := a.Config

	conn, err := portal.ConnectSessionBus(a.ctx)
	if err != nil {
		log.Debug().Err(err).Msg("session bus unavailable")
	} else {
		a.conn = conn
	}

	a.Bus = messaging.NewBus(*log)
	a.popups = popup.NewDriver(popup.Config{
		ControlURL:  cfg.Browser.ControlURL,
		BrowserBin:  cfg.Browser.Bin,
		RedirectURL: cfg.OAuth.RedirectURL,
		Headless:    cfg.Browser.Headless,
	}, a.Bus)

	auth := oauthclient.New(oauthclient.Config{
		ClientID:      cfg.OAuth.ClientID,
		ClientSecret:  cfg.OAuth.ClientSecret,
		DeviceAuthURL: cfg.OAuth.DeviceAuthURL,
		TokenURL:      cfg.OAuth.TokenURL,
	}, prompt)

	a.idle = portal.NewIdleMonitor(a.ctx, a.conn)
	a.devices = portal.NewDevicePortal(a.ctx, a.conn, portal.NewCaptureProbe())

	return platform.NewHost(platform.Adapters{
		Auth:     auth,
		Popups:   a.popups,
		Messages: a.Bus,
		Idle:     a.idle,
		Media:    a.devices,
	})
}

func (a *App) logIdleTime() {
	if !a.idle.Supported() {
		return
	}
	log := logging.FromContext(a.ctx)
	idle, err := a.idle.IdleTime(a.ctx)
	if err != nil {
		log.Debug().Err(err).Str("source", a.idle.Source()).Msg("idle time unreadable")
		return
	}
	log.Debug().Dur("idle", idle).Str("source", a.idle.Source()).Msg("idle time readable")
}

func devicePrompter(w io.Writer) oauthclient.Prompter {
	return func(_ context.Context, code oauthclient.DeviceCode) error {
		_, err := fmt.Fprintf(w, "\nTo allow access, open %s and enter the code %s\n\n",
			code.VerificationURI, code.UserCode)
		return err
	}
}

// ToNegotiationConfig maps the loaded config onto the negotiator tunables.
func ToNegotiationConfig(cfg *config.Config) usecase.NegotiationConfig {
	return usecase.NegotiationConfig{
		OAuth: usecase.OAuthSettings{
			ClientID:          cfg.OAuth.ClientID,
			AuthURL:           cfg.OAuth.AuthURL,
			RedirectURL:       cfg.OAuth.RedirectURL,
			CalendarScope:     cfg.OAuth.CalendarScope,
			VideoHistoryScope: cfg.OAuth.VideoHistoryScope,
		},
		PollInterval: cfg.Negotiation.PollInterval,
		PopupTimeout: cfg.Negotiation.PopupTimeout,
		PopupWidth:   cfg.Negotiation.PopupWidth,
		PopupHeight:  cfg.Negotiation.PopupHeight,
	}
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error

	if a.cancel != nil {
		a.cancel()
	}
	if a.popups != nil {
		if open := a.popups.OpenPopups(); open > 0 {
			logging.FromContext(a.ctx).Debug().Int("open", open).Msg("closing browser with popups still open")
		}
		if err := a.popups.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close popups: %w", err))
		}
	}
	if a.Bus != nil {
		a.Bus.Shutdown()
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close session bus: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close audit database: %w", err))
		}
	}
	for _, fn := range a.shutdown {
		if err := fn(context.Background()); err != nil {
			errs = append(errs, err)
		}
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ConfigFile returns the path of the config file in use.
func (a *App) ConfigFile() string {
	return a.configManager.GetConfigFile()
}

// NewFlow starts a permission flow over the app's catalog.
func (a *App) NewFlow() *usecase.PermissionFlow {
	return usecase.NewPermissionFlow(a.Negotiator, a.Catalog)
}
