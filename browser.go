package compinject

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"github.com/alnah/go-compinject/internal/process"
)

// DefaultBrowserTimeout bounds page loads when the context has no deadline.
const DefaultBrowserTimeout = 30 * time.Second

// Browser launches headless Chrome on first use and opens pages as
// BrowserDocuments. Rod downloads Chromium on first run if none is found.
type Browser struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	bin      string
	timeout  time.Duration
	logger   *zap.Logger
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithBrowserBin sets the Chrome binary. Overrides ROD_BROWSER_BIN.
func WithBrowserBin(path string) BrowserOption {
	return func(b *Browser) {
		b.bin = path
	}
}

// WithBrowserTimeout sets the page load timeout.
// Panics if d is not positive (programmer error).
func WithBrowserTimeout(d time.Duration) BrowserOption {
	if d <= 0 {
		panic("compinject: WithBrowserTimeout duration must be positive")
	}
	return func(b *Browser) {
		b.timeout = d
	}
}

// WithBrowserLogger sets the logger for launch and page events.
func WithBrowserLogger(l *zap.Logger) BrowserOption {
	return func(b *Browser) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBrowser returns a Browser. No process is started until Open.
func NewBrowser(opts ...BrowserOption) *Browser {
	b := &Browser{
		timeout: DefaultBrowserTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ensureBrowser lazily connects to the browser.
func (b *Browser) ensureBrowser() error {
	if b.browser != nil {
		return nil
	}

	l := launcher.New()

	bin := b.bin
	if bin == "" {
		bin = os.Getenv("ROD_BROWSER_BIN")
	}
	if bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || bin != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		killLauncher(l)
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	b.browser = browser
	b.launcher = l
	b.logger.Debug("browser connected", zap.String("control_url", u))
	return nil
}

// Open navigates a new page to url and waits for it to load.
// The caller must Close the returned document.
func (b *Browser) Open(ctx context.Context, url string) (*BrowserDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	err := b.ensureBrowser()
	browser := b.browser
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	timeout := b.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			_ = page.Close()
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	b.logger.Debug("page loaded", zap.String("url", url))

	return NewBrowserDocument(page), nil
}

// Close shuts the browser down and kills any leftover Chrome processes.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.browser == nil {
		return nil
	}
	err := b.browser.Close()
	killLauncher(b.launcher)
	b.browser = nil
	b.launcher = nil
	return err
}

func killLauncher(l *launcher.Launcher) {
	if l == nil {
		return
	}
	process.KillTree(l.PID())
	l.Kill()
}
