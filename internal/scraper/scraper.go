package scraper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/Saucer42/hockey-schedule-ical/internal/game"
	"github.com/Saucer42/hockey-schedule-ical/internal/logger"
)

const (
	// ScheduleEndpoint is the URL substring identifying the background
	// response that carries the schedule grid data.
	ScheduleEndpoint = "/Schedule/GetTeamScheduleGrid"

	// UserAgent presented to the site. The grid endpoint serves desktop
	// browsers; a bare headless-Chrome agent gets an empty page.
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// NavigationTimeout bounds the whole page load. Exceeding it is fatal
	// to the run.
	NavigationTimeout = 60 * time.Second

	// settleTimeout caps how long we wait for in-flight requests to go
	// quiet after the document is ready. Running out is not an error.
	settleTimeout = 15 * time.Second

	// quietWindow is how long the network must stay idle to count as
	// settled.
	quietWindow = 500 * time.Millisecond

	// graceWait catches grid responses that arrive after the network
	// settles.
	graceWait = 5 * time.Second
)

// Result is what one page load produced: the raw schedule items from every
// captured grid response, in arrival order, plus the page's visible text.
// Zero items with a nil error means the page loaded but no schedule data
// could be found; callers decide whether that warrants more than a warning.
type Result struct {
	Items    []game.RawItem
	PageText string
}

// Scraper owns a headless Chrome allocator. One Scraper can serve multiple
// fetches; Close releases the browser.
type Scraper struct {
	endpoint string
	allocCtx context.Context
	cancel   context.CancelFunc
}

// New creates a Scraper backed by a headless Chrome instance.
func New() *Scraper {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Scraper{
		endpoint: ScheduleEndpoint,
		allocCtx: allocCtx,
		cancel:   cancel,
	}
}

// Close releases the browser.
func (s *Scraper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// FetchSchedule loads the team page and captures every background response
// whose URL contains the schedule endpoint. The response listener is
// attached before navigation starts, so a response that arrives during the
// initial load is still captured. After the document is ready the scraper
// waits for the network to go quiet plus a fixed grace period, then reads
// the page text and, if no grid response arrived, falls back to the
// rendered schedule table.
func (s *Scraper) FetchSchedule(ctx context.Context, pageURL string) (*Result, error) {
	browserCtx, cancelBrowser := chromedp.NewContext(s.allocCtx)
	defer cancelBrowser()

	// Honor a tighter caller deadline, otherwise bound the load ourselves.
	timeout := NavigationTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	capture := newResponseCapture(s.endpoint)
	tracker := newRequestTracker()

	// Listen before Navigate: events fire as soon as network.Enable runs,
	// so nothing between "start listening" and "start loading" is lost.
	chromedp.ListenTarget(runCtx, func(ev interface{}) {
		tracker.observe(ev)
		capture.observe(runCtx, ev)
	})

	var pageText, pageHTML string
	err := chromedp.Run(runCtx,
		network.Enable(),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		waitForNetworkSettle(tracker),
		chromedp.Sleep(graceWait),
		chromedp.Text("body", &pageText, chromedp.ByQuery),
		chromedp.OuterHTML("html", &pageHTML, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pageURL, err)
	}

	// The wait window is closed; drain the body readers before touching
	// the captured list.
	items := capture.items()

	if len(items) == 0 {
		logger.Info("no grid response captured, reading rendered table", logger.Fields{
			"url": pageURL,
		})
		fallback, err := parseScheduleTable(pageHTML)
		if err != nil {
			logger.Warn("rendered-table fallback failed", logger.Fields{"reason": err.Error()})
		} else {
			items = fallback
		}
	}

	return &Result{Items: items, PageText: pageText}, nil
}

// responseCapture collects the bodies of grid responses. observe runs on
// the event listener goroutine; body fetches run on their own goroutines
// because GetResponseBody blocks. items() is only called after the page
// wait closes, so reads never race the appends.
type responseCapture struct {
	endpoint string

	mu      sync.Mutex
	pending map[network.RequestID]string // request ID -> response URL
	raw     []game.RawItem

	readers sync.WaitGroup
}

func newResponseCapture(endpoint string) *responseCapture {
	return &responseCapture{
		endpoint: endpoint,
		pending:  make(map[network.RequestID]string),
	}
}

func (c *responseCapture) observe(ctx context.Context, ev interface{}) {
	switch e := ev.(type) {
	case *network.EventResponseReceived:
		if !strings.Contains(e.Response.URL, c.endpoint) {
			return
		}
		c.mu.Lock()
		c.pending[e.RequestID] = e.Response.URL
		c.mu.Unlock()

	case *network.EventLoadingFinished:
		// Bodies are only readable once loading finishes.
		c.mu.Lock()
		url, ok := c.pending[e.RequestID]
		delete(c.pending, e.RequestID)
		c.mu.Unlock()
		if !ok {
			return
		}
		c.readers.Add(1)
		go c.readBody(ctx, e.RequestID, url)
	}
}

func (c *responseCapture) readBody(ctx context.Context, id network.RequestID, url string) {
	defer c.readers.Done()

	chromeCtx := chromedp.FromContext(ctx)
	body, err := network.GetResponseBody(id).Do(cdp.WithExecutor(ctx, chromeCtx.Target))
	if err != nil {
		logger.Warn("could not read grid response body", logger.Fields{
			"url":    url,
			"reason": err.Error(),
		})
		return
	}

	items, err := extractItems(body)
	if err != nil {
		logger.Warn("could not parse grid response", logger.Fields{
			"url":    url,
			"reason": err.Error(),
		})
		return
	}

	logger.Info("captured grid response", logger.Fields{
		"url":   url,
		"items": len(items),
	})

	c.mu.Lock()
	c.raw = append(c.raw, items...)
	c.mu.Unlock()
}

func (c *responseCapture) items() []game.RawItem {
	c.readers.Wait()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw
}

// requestTracker counts in-flight requests so the scraper can tell when the
// page has stopped loading data.
type requestTracker struct {
	mu         sync.Mutex
	inflight   map[network.RequestID]struct{}
	lastChange time.Time
}

func newRequestTracker() *requestTracker {
	return &requestTracker{
		inflight:   make(map[network.RequestID]struct{}),
		lastChange: time.Now(),
	}
}

func (t *requestTracker) observe(ev interface{}) {
	switch e := ev.(type) {
	case *network.EventRequestWillBeSent:
		t.mu.Lock()
		t.inflight[e.RequestID] = struct{}{}
		t.lastChange = time.Now()
		t.mu.Unlock()
	case *network.EventLoadingFinished:
		t.settle(e.RequestID)
	case *network.EventLoadingFailed:
		t.settle(e.RequestID)
	}
}

func (t *requestTracker) settle(id network.RequestID) {
	t.mu.Lock()
	delete(t.inflight, id)
	t.lastChange = time.Now()
	t.mu.Unlock()
}

// quietSince reports whether no request has started or finished within the
// window and nothing is still in flight.
func (t *requestTracker) quietSince(window time.Duration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inflight) == 0 && time.Since(t.lastChange) >= window
}

// waitForNetworkSettle blocks until the network goes quiet or the settle
// budget runs out. Hitting the budget is not an error: a page with a
// long-polling widget would never settle, and the grace wait that follows
// still gives a late grid response time to land.
func waitForNetworkSettle(tracker *requestTracker) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		deadline := time.Now().Add(settleTimeout)
		for time.Now().Before(deadline) {
			if tracker.quietSince(quietWindow) {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(100 * time.Millisecond):
			}
		}
		logger.Debug("network did not settle within budget", nil)
		return nil
	}
}
