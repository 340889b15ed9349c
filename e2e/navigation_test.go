//go:build e2e

package e2e

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avb-dev/blogwatch/internal/site"
)

var aboutPath = regexp.MustCompile(`(?i)/about`)

// TestNavigation_AboutChangesURL: clicking "About" in the nav bar lands
// on a URL matching /about/i.
func TestNavigation_AboutChangesURL(t *testing.T) {
	f := newFixture(t)

	home := f.home(t)
	screenshotOnFailure(t, home.Page, "nav-about")

	startURL, err := home.URL()
	require.NoError(t, err)

	about, err := home.GoToAbout()
	require.NoError(t, err)

	url, err := about.URL()
	require.NoError(t, err)
	assert.NotEqual(t, startURL, url, "URL should change after navigation")
	assert.Regexp(t, aboutPath, url)

	if f.hermetic {
		heading, err := about.Heading()
		require.NoError(t, err)
		assert.Equal(t, "About", heading)
	}
}

// TestNavigation_NavBarConsistent: every page renders the same nav links
// in the same order.
func TestNavigation_NavBarConsistent(t *testing.T) {
	f := newFixture(t)
	if !f.hermetic {
		t.Skip("nav link table only known for the demo site")
	}

	var want []string
	for _, l := range site.NavLinks() {
		want = append(want, l.Name)
	}

	pages := map[string]func() ([]string, error){
		"home":  func() ([]string, error) { return f.home(t).NavBar().LinkNames() },
		"about": func() ([]string, error) { return f.about(t).NavBar().LinkNames() },
		"post":  func() ([]string, error) { return f.post(t, site.Posts()[0].Slug).NavBar().LinkNames() },
	}
	for name, links := range pages {
		got, err := links()
		require.NoError(t, err, "nav links on %s", name)
		assert.Equal(t, want, got, "nav links on %s", name)
	}
}
