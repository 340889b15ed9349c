//go:build e2e

package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avb-dev/blogwatch/internal/site"
	"github.com/avb-dev/blogwatch/pkg/pom"
)

// fixture wires a test up with everything it depends on: configuration,
// a target site, a browser, and page objects. Each test gets its own
// fixture; teardown runs through t.Cleanup in reverse order.
type fixture struct {
	cfg     pom.Config
	baseURL string
	browser *pom.Browser

	// hermetic is true when the fixture started the demo site itself.
	// Content-specific assertions only hold then.
	hermetic bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := pom.LoadConfig(os.Getenv("BLOGWATCH_CONFIG"))
	require.NoError(t, err, "load suite config")

	f := &fixture{cfg: cfg, baseURL: cfg.BaseURL}
	if f.baseURL == "" {
		srv := site.NewServer(site.DefaultConfig())
		addr, err := srv.Start()
		require.NoError(t, err, "start demo site")
		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			require.NoError(t, srv.Shutdown(ctx))
		})
		f.baseURL = "http://" + addr
		f.hermetic = true
		t.Logf("demo site listening on %s", addr)
	}

	browser, err := pom.Open(cfg)
	require.NoError(t, err, "launch browser")
	t.Cleanup(func() {
		require.NoError(t, browser.Close(), "close browser")
	})
	f.browser = browser
	return f
}

func (f *fixture) home(t *testing.T) *pom.HomePage {
	t.Helper()
	home, err := pom.OpenHome(f.browser, f.baseURL)
	require.NoError(t, err, "open homepage")
	return home
}

func (f *fixture) about(t *testing.T) *pom.AboutPage {
	t.Helper()
	about, err := pom.OpenAbout(f.browser, f.baseURL)
	require.NoError(t, err, "open about page")
	return about
}

func (f *fixture) post(t *testing.T, slug string) *pom.PostPage {
	t.Helper()
	post, err := pom.OpenPost(f.browser, f.baseURL, slug)
	require.NoError(t, err, "open post %s", slug)
	return post
}

// screenshotOnFailure captures the page into the report directory when
// the test ends in failure, to make remote CI runs debuggable.
func screenshotOnFailure(t *testing.T, p *pom.Page, name string) {
	t.Helper()
	t.Cleanup(func() {
		if !t.Failed() {
			return
		}
		path, err := p.Screenshot(name + ".png")
		if err != nil {
			t.Logf("screenshot failed: %v", err)
			return
		}
		t.Logf("screenshot saved to %s", path)
	})
}
