//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avb-dev/blogwatch/pkg/pom"
)

// TestViewport_DeviceEmulation: a device profile from config actually
// changes the browser's reported viewport.
func TestViewport_DeviceEmulation(t *testing.T) {
	f := newFixture(t)

	cfg := f.cfg
	cfg.Device = "iphone-x"
	require.NoError(t, pom.Validate(cfg))

	browser, err := pom.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, browser.Close()) })

	home, err := pom.OpenHome(browser, f.baseURL)
	require.NoError(t, err)

	res, err := home.Rod().Eval(`() => window.innerWidth`)
	require.NoError(t, err)
	width := res.Value.Int()
	assert.Equal(t, 375, width, "iPhone X emulation should report a 375px viewport")

	count, err := home.Posts().Count()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1, "homepage should render on mobile too")
}

// TestViewport_DefaultDesktop: with no device profile the configured
// viewport dimensions apply.
func TestViewport_DefaultDesktop(t *testing.T) {
	f := newFixture(t)

	home := f.home(t)

	res, err := home.Rod().Eval(`() => window.innerWidth`)
	require.NoError(t, err)
	assert.Equal(t, f.cfg.Viewport.Width, res.Value.Int())
}
