// Package popup opens OAuth popup windows in a Chromium browser driven over
// the DevTools protocol and reports their redirects as cross-window messages.
package popup

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/logging"
)

// Poster delivers a message to the listeners waiting on it.
type Poster interface {
	Post(msg port.Message) int
}

// Config configures the browser the popups open in.
type Config struct {
	// ControlURL attaches to an already running browser. Empty launches one.
	ControlURL string
	// BrowserBin overrides the browser binary used when launching.
	BrowserBin string
	// RedirectURL is the OAuth redirect URI the popups finish on.
	RedirectURL string
	// Headless hides the launched browser. Only useful for automation.
	Headless bool
}

// Driver opens popups. The browser is started on first use.
type Driver struct {
	cfg  Config
	bus  Poster
	mu   sync.Mutex
	l    *launcher.Launcher
	br   *rod.Browser
	open atomic.Int32
}

// NewDriver creates a driver that posts redirect results to bus.
func NewDriver(cfg Config, bus Poster) *Driver {
	return &Driver{cfg: cfg, bus: bus}
}

func (d *Driver) browser(ctx context.Context) (*rod.Browser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.br != nil {
		return d.br, nil
	}

	log := logging.FromContext(ctx)

	controlURL := d.cfg.ControlURL
	if controlURL == "" {
		l := launcher.New().Headless(d.cfg.Headless)
		if d.cfg.BrowserBin != "" {
			l = l.Bin(d.cfg.BrowserBin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		d.l = l
		controlURL = u
	}

	// The browser outlives any single negotiation context.
	br := rod.New().ControlURL(controlURL).Context(context.WithoutCancel(ctx))
	if err := br.Connect(); err != nil {
		d.cleanupLauncher()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	log.Debug().Str("control_url", controlURL).Msg("popup browser connected")
	d.br = br
	return br, nil
}

// Open opens a popup at req.URL. The window starts blank and the redirect
// watch is armed before navigating, so a redirect that completes during
// Open is still reported.
func (d *Driver) Open(ctx context.Context, req port.PopupRequest) (port.Popup, error) {
	log := logging.FromContext(ctx)

	br, err := d.browser(ctx)
	if err != nil {
		return nil, err
	}

	page, err := br.Page(proto.TargetCreateTarget{URL: "about:blank", NewWindow: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrPopupBlocked, err)
	}

	if req.Width > 0 && req.Height > 0 {
		if err := (proto.EmulationSetDeviceMetricsOverride{
			Width:             req.Width,
			Height:            req.Height,
			DeviceScaleFactor: 1.0,
			Mobile:            false,
		}).Call(page); err != nil {
			log.Debug().Err(err).Msg("failed to size popup")
		}
	}

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p := &rodPopup{
		browser: br,
		page:    page,
		cancel:  cancel,
		logger:  log.With().Str("popup", req.Name).Str("target", string(page.TargetID)).Logger(),
		onClose: func() { d.open.Add(-1) },
	}
	d.open.Add(1)
	p.watch(watchCtx, d.cfg.RedirectURL, d.bus)

	if err := page.Context(ctx).Navigate(req.URL); err != nil {
		if ctx.Err() != nil {
			_ = p.Close()
			return nil, ctx.Err()
		}
		// Nothing serves a loopback redirect URI, so its load fails. The
		// window stays open either way; the watch reports a redirect.
		p.logger.Debug().Err(err).Bool("redirected", p.posted.Load()).Msg("popup page failed to load")
	}

	p.logger.Debug().Msg("popup opened")
	return p, nil
}

// OpenPopups returns the number of popups opened and not yet closed.
func (d *Driver) OpenPopups() int {
	return int(d.open.Load())
}

// Close shuts the browser down if the driver launched it.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var err error
	if d.br != nil {
		err = d.br.Close()
		d.br = nil
	}
	d.cleanupLauncher()
	return err
}

func (d *Driver) cleanupLauncher() {
	if d.l != nil {
		d.l.Cleanup()
		d.l = nil
	}
}

type rodPopup struct {
	browser *rod.Browser
	page    *rod.Page
	cancel  context.CancelFunc
	logger  zerolog.Logger
	onClose func()

	posted    atomic.Bool
	closed    atomic.Bool
	closeOnce sync.Once
}

// watch reports the first navigation to the redirect URI. Document requests
// are watched as well as committed navigations: nothing listens on a
// loopback redirect URI, so the navigation itself never commits.
func (p *rodPopup) watch(ctx context.Context, redirectURL string, bus Poster) {
	inspect := func(navigated string) bool {
		msg, ok := ParseRedirect(navigated, redirectURL)
		if !ok || !p.posted.CompareAndSwap(false, true) {
			return false
		}
		p.logger.Debug().Str("type", string(msg.Type)).Msg("popup reached redirect")
		bus.Post(msg)
		return true
	}

	wait := p.page.Context(ctx).EachEvent(
		func(ev *proto.NetworkRequestWillBeSent) bool {
			if ev.Type != proto.NetworkResourceTypeDocument {
				return false
			}
			return inspect(ev.Request.URL + ev.Request.URLFragment)
		},
		func(ev *proto.PageFrameNavigated) bool {
			return inspect(ev.Frame.URL)
		},
	)
	go wait()
}

// Closed reports whether the window is gone.
func (p *rodPopup) Closed() bool {
	if p.closed.Load() {
		return true
	}
	pages, err := p.browser.Pages()
	if err != nil {
		// A dead browser has no windows.
		p.closed.Store(true)
		return true
	}
	for _, page := range pages {
		if page.TargetID == p.page.TargetID {
			return false
		}
	}
	p.closed.Store(true)
	return true
}

// Close closes the window. Closing an already closed window is a no-op.
func (p *rodPopup) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.cancel()
		if p.onClose != nil {
			p.onClose()
		}
		if p.closed.Swap(true) {
			return
		}
		if closeErr := p.page.Close(); closeErr != nil && !errors.Is(closeErr, context.Canceled) {
			err = fmt.Errorf("close popup: %w", closeErr)
		}
		p.logger.Debug().Msg("popup closed")
	})
	return err
}
