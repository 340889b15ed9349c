// Package linkcheck implements a basic link-health checker. It parses
// anchors out of fetched pages and probes each target, tolerating
// navigation failures: a dead link is a report entry, never a crash.
package linkcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/avb-dev/blogwatch/pkg/retry"
)

// Options configures a Checker.
type Options struct {
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// Concurrency bounds parallel probes.
	Concurrency int
	// MaxDepth is how many levels of same-host pages get parsed for more
	// links. 1 checks only the links on the start page.
	MaxDepth int
	// CheckExternal probes links on other hosts instead of recording
	// them as skipped.
	CheckExternal bool
	// RetryAttempts/RetryDelay retry probes that fail at the transport
	// level. HTTP error statuses are not retried.
	RetryAttempts int
	RetryDelay    time.Duration
	UserAgent     string
}

// DefaultOptions returns the options the CLI and the e2e suite start from.
func DefaultOptions() Options {
	return Options{
		Timeout:       10 * time.Second,
		Concurrency:   8,
		MaxDepth:      1,
		CheckExternal: false,
		RetryAttempts: 2,
		RetryDelay:    200 * time.Millisecond,
		UserAgent:     "blogwatch-linkcheck/1.0",
	}
}

// LinkStatus is the outcome for one discovered link.
type LinkStatus struct {
	URL      string `json:"url"`
	FoundOn  string `json:"found_on"`
	Status   int    `json:"status,omitempty"`
	OK       bool   `json:"ok"`
	External bool   `json:"external,omitempty"`
	Skipped  bool   `json:"skipped,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Report is the result of one link-check run.
type Report struct {
	RunID      string       `json:"run_id"`
	Target     string       `json:"target"`
	StartedAt  time.Time    `json:"started_at"`
	DurationMS int64        `json:"duration_ms"`
	Checked    int          `json:"checked"`
	Broken     int          `json:"broken"`
	Links      []LinkStatus `json:"links"`
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// BrokenLinks returns the subset of links that were probed and failed.
func (r *Report) BrokenLinks() []LinkStatus {
	var out []LinkStatus
	for _, l := range r.Links {
		if !l.OK && !l.Skipped {
			out = append(out, l)
		}
	}
	return out
}

// Checker probes links reachable from a start page.
type Checker struct {
	opts   Options
	client *http.Client
}

// New returns a Checker with the given options.
func New(opts Options) *Checker {
	def := DefaultOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = def.Concurrency
	}
	if opts.MaxDepth < 1 {
		opts.MaxDepth = def.MaxDepth
	}
	if opts.RetryAttempts < 1 {
		opts.RetryAttempts = def.RetryAttempts
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	return &Checker{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

type discovered struct {
	url      *url.URL
	foundOn  string
	external bool
}

// Check crawls same-host pages starting at target up to MaxDepth and
// probes every discovered link. It returns an error only for an
// unusable target URL or a canceled context; dead links and fetch
// failures land in the report.
func (c *Checker) Check(ctx context.Context, target string) (*Report, error) {
	start, err := url.Parse(target)
	if err != nil || start.Scheme == "" || start.Host == "" {
		return nil, fmt.Errorf("target %q is not an absolute URL", target)
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Target:    target,
		StartedAt: time.Now(),
	}

	// Both maps are keyed by normalized URL: links holds the first
	// sighting of each target, results the final outcome.
	links := map[string]*discovered{}
	results := map[string]LinkStatus{}
	frontier := []*url.URL{start}

	for depth := 0; depth < c.opts.MaxDepth && len(frontier) > 0; depth++ {
		var next []*url.URL
		for _, page := range frontier {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			key := normalize(page)
			if _, done := results[key]; done {
				continue
			}

			status, doc, ferr := c.fetchPage(ctx, page)
			ls := LinkStatus{URL: key, FoundOn: foundOn(links, key, target), Status: status, OK: ferr == nil && status < 400}
			if ferr != nil {
				ls.Error = ferr.Error()
			}
			results[key] = ls
			if doc == nil {
				continue
			}

			for _, d := range extractLinks(doc, page, start) {
				k := normalize(d.url)
				if _, seen := links[k]; !seen {
					links[k] = d
				}
				if !d.external && depth+1 < c.opts.MaxDepth {
					next = append(next, d.url)
				}
			}
		}
		frontier = next
	}

	// Probe everything discovered but not already fetched as a page.
	// Pending links are collected first so the goroutines below are the
	// only writers to results.
	pending := map[string]*discovered{}
	for key, d := range links {
		if _, done := results[key]; done {
			continue
		}
		if d.external && !c.opts.CheckExternal {
			results[key] = LinkStatus{URL: key, FoundOn: d.foundOn, External: true, Skipped: true, OK: true}
			continue
		}
		pending[key] = d
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(c.opts.Concurrency)
	for key, d := range pending {
		g.Go(func() error {
			ls := c.probe(ctx, key, d)
			mu.Lock()
			results[key] = ls
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for _, ls := range results {
		report.Links = append(report.Links, ls)
		if !ls.Skipped {
			report.Checked++
		}
		if !ls.OK {
			report.Broken++
		}
	}
	sort.Slice(report.Links, func(i, j int) bool { return report.Links[i].URL < report.Links[j].URL })
	report.DurationMS = time.Since(report.StartedAt).Milliseconds()
	return report, nil
}

func foundOn(links map[string]*discovered, key, fallback string) string {
	if d, ok := links[key]; ok {
		return d.foundOn
	}
	return fallback
}

func (c *Checker) fetchPage(ctx context.Context, u *url.URL) (int, *goquery.Document, error) {
	var (
		status int
		doc    *goquery.Document
	)
	err := retry.DoContext(ctx, c.opts.RetryAttempts, c.opts.RetryDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		doc = nil
		if status < 400 && strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
			doc, err = goquery.NewDocumentFromReader(resp.Body)
			if err != nil {
				return fmt.Errorf("parse %s: %w", u, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return status, doc, nil
}

func (c *Checker) probe(ctx context.Context, key string, d *discovered) LinkStatus {
	ls := LinkStatus{URL: key, FoundOn: d.foundOn, External: d.external}
	var status int
	err := retry.DoContext(ctx, c.opts.RetryAttempts, c.opts.RetryDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, key, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		status = resp.StatusCode
		return nil
	})
	if err != nil {
		ls.Error = err.Error()
		return ls
	}
	ls.Status = status
	ls.OK = status < 400
	return ls
}

// extractLinks returns the anchor targets on doc, resolved against page.
// Fragments, mailto: and javascript: links are ignored.
func extractLinks(doc *goquery.Document, page, start *url.URL) []*discovered {
	var out []*discovered
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
			return
		}
		u, err := page.Parse(href)
		if err != nil {
			return
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return
		}
		u.Fragment = ""
		out = append(out, &discovered{
			url:      u,
			foundOn:  normalize(page),
			external: u.Host != start.Host,
		})
	})
	return out
}

func normalize(u *url.URL) string {
	c := *u
	c.Fragment = ""
	return c.String()
}
