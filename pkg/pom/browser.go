// Package pom is the page-object layer of the suite. It wraps rod with
// page and component abstractions so test specifications read as semantic
// operations (open the homepage, click About, count posts) instead of
// selector plumbing.
package pom

import (
	"fmt"
	"sort"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/devices"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// deviceProfiles maps config names to rod emulation profiles.
var deviceProfiles = map[string]devices.Device{
	"iphone-x": devices.IPhoneX,
	"ipad":     devices.IPad,
	"pixel-2":  devices.Pixel2,
	"laptop":   devices.LaptopWithMDPIScreen,
}

func deviceProfile(name string) (devices.Device, bool) {
	d, ok := deviceProfiles[name]
	return d, ok
}

// DeviceNames returns the known device profile names, sorted.
func DeviceNames() []string {
	names := make([]string, 0, len(deviceProfiles))
	for name := range deviceProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Browser owns one Chrome instance. Each test opens its own Browser so no
// state crosses test boundaries; parallelism is left to the test runner.
type Browser struct {
	cfg     Config
	browser *rod.Browser
}

// Open launches Chrome per cfg and connects to it.
// Callers must Close the returned Browser, usually via defer or t.Cleanup.
func Open(cfg Config) (*Browser, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		Set("no-sandbox").
		Set("disable-gpu")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	b := rod.New().ControlURL(url)
	if cfg.SlowMo > 0 {
		b = b.SlowMotion(cfg.SlowMo)
	}
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to Chrome: %w", err)
	}

	return &Browser{cfg: cfg, browser: b}, nil
}

// Visit opens a fresh tab, applies the configured viewport or device
// profile, and navigates to url.
func (b *Browser) Visit(url string) (*Page, error) {
	rp, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	if b.cfg.Device != "" {
		d, ok := deviceProfile(b.cfg.Device)
		if !ok {
			return nil, fmt.Errorf("unknown device profile %q", b.cfg.Device)
		}
		if err := rp.Emulate(d); err != nil {
			return nil, fmt.Errorf("failed to emulate %s: %w", b.cfg.Device, err)
		}
	} else {
		err := rp.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             b.cfg.Viewport.Width,
			Height:            b.cfg.Viewport.Height,
			DeviceScaleFactor: 1,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set viewport: %w", err)
		}
	}

	p := &Page{rp: rp, cfg: b.cfg}
	if err := p.Navigate(url); err != nil {
		return nil, err
	}
	return p, nil
}

// Close shuts the browser down. Always call this (via defer or t.Cleanup)
// to prevent orphaned Chrome processes.
func (b *Browser) Close() error {
	if b.browser != nil {
		return b.browser.Close()
	}
	return nil
}
