package pom

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Page wraps one browser tab with timeout-bounded semantic operations.
// Locators resolve lazily: a selector only touches the DOM when an
// operation needs the element.
type Page struct {
	rp  *rod.Page
	cfg Config
}

// Rod exposes the underlying rod page for operations the wrapper does
// not cover. Test code should prefer the semantic methods.
func (p *Page) Rod() *rod.Page { return p.rp }

// act returns the page bounded by the per-action timeout.
func (p *Page) act() *rod.Page { return p.rp.Timeout(p.cfg.Timeouts.Action) }

// Navigate loads url and waits for the load event.
func (p *Page) Navigate(url string) error {
	nav := p.rp.Timeout(p.cfg.Timeouts.Navigation)
	if err := nav.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := nav.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load %s: %w", url, err)
	}
	return nil
}

// URL returns the page's current URL.
func (p *Page) URL() (string, error) {
	info, err := p.rp.Info()
	if err != nil {
		return "", fmt.Errorf("failed to read page info: %w", err)
	}
	return info.URL, nil
}

// Title returns the document title.
func (p *Page) Title() (string, error) {
	info, err := p.rp.Info()
	if err != nil {
		return "", fmt.Errorf("failed to read page info: %w", err)
	}
	return info.Title, nil
}

// Text returns the visible text of the first element matching sel.
func (p *Page) Text(sel string) (string, error) {
	el, err := p.act().Element(sel)
	if err != nil {
		return "", fmt.Errorf("locate %q: %w", sel, err)
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("read text of %q: %w", sel, err)
	}
	return text, nil
}

// Texts returns the visible text of every element matching sel, in DOM order.
func (p *Page) Texts(sel string) ([]string, error) {
	els, err := p.act().Elements(sel)
	if err != nil {
		return nil, fmt.Errorf("locate %q: %w", sel, err)
	}
	out := make([]string, 0, len(els))
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			return nil, fmt.Errorf("read text of %q: %w", sel, err)
		}
		out = append(out, text)
	}
	return out, nil
}

// Count returns how many elements match sel.
func (p *Page) Count(sel string) (int, error) {
	els, err := p.act().Elements(sel)
	if err != nil {
		return 0, fmt.Errorf("locate %q: %w", sel, err)
	}
	return len(els), nil
}

// Click clicks the first element matching sel and waits for the
// resulting navigation (if any) to finish loading.
func (p *Page) Click(sel string) error {
	el, err := p.act().Element(sel)
	if err != nil {
		return fmt.Errorf("locate %q: %w", sel, err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %q: %w", sel, err)
	}
	if err := p.rp.Timeout(p.cfg.Timeouts.Navigation).WaitLoad(); err != nil {
		return fmt.Errorf("wait load after clicking %q: %w", sel, err)
	}
	return nil
}

// Visible reports whether the first element matching sel is rendered
// (has a box and is not display:none). It says nothing about the viewport;
// see InViewport.
func (p *Page) Visible(sel string) (bool, error) {
	el, err := p.act().Element(sel)
	if err != nil {
		return false, fmt.Errorf("locate %q: %w", sel, err)
	}
	visible, err := el.Visible()
	if err != nil {
		return false, fmt.Errorf("check visibility of %q: %w", sel, err)
	}
	return visible, nil
}

// InViewport reports whether any part of the first element matching sel
// intersects the current viewport.
func (p *Page) InViewport(sel string) (bool, error) {
	res, err := p.act().Eval(`(sel) => {
		const el = document.querySelector(sel);
		if (!el) return false;
		const r = el.getBoundingClientRect();
		return r.top < window.innerHeight && r.bottom > 0;
	}`, sel)
	if err != nil {
		return false, fmt.Errorf("check viewport intersection of %q: %w", sel, err)
	}
	return res.Value.Bool(), nil
}

// ScrollToBottom scrolls the window to the bottom of the document.
func (p *Page) ScrollToBottom() error {
	_, err := p.act().Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	if err != nil {
		return fmt.Errorf("scroll to bottom: %w", err)
	}
	return nil
}

// WaitStable waits until the DOM stops changing.
func (p *Page) WaitStable() error {
	return p.rp.WaitStable(p.cfg.Timeouts.Action)
}

// HTML returns the page's current serialized DOM.
func (p *Page) HTML() (string, error) {
	html, err := p.rp.HTML()
	if err != nil {
		return "", fmt.Errorf("read page HTML: %w", err)
	}
	return html, nil
}

// Screenshot captures a full-page screenshot into the report directory
// and returns the written path.
func (p *Page) Screenshot(name string) (string, error) {
	data, err := p.act().Screenshot(true, nil)
	if err != nil {
		return "", fmt.Errorf("capture screenshot: %w", err)
	}
	if err := os.MkdirAll(p.cfg.Report.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(p.cfg.Report.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// Close closes the tab. The browser stays up for other pages.
func (p *Page) Close() error {
	return p.rp.Close()
}
