//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avb-dev/blogwatch/internal/site"
)

// TestHomepage_ShowsPosts: the homepage loads and lists at least one post.
// Against the hermetic site the list must match the seeded posts exactly.
func TestHomepage_ShowsPosts(t *testing.T) {
	f := newFixture(t)

	home := f.home(t)
	screenshotOnFailure(t, home.Page, "homepage")

	count, err := home.Posts().Count()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1, "homepage should show at least one post")

	if !f.hermetic {
		return
	}

	hero, err := home.HeroHeading()
	require.NoError(t, err)
	assert.Equal(t, site.HeroHeading, hero)

	titles, err := home.Posts().Titles()
	require.NoError(t, err)
	var want []string
	for _, p := range site.Posts() {
		want = append(want, p.Title)
	}
	assert.Equal(t, want, titles)
}

// TestHomepage_OpenPost: clicking a post card navigates to the post and
// the back link returns to the homepage.
func TestHomepage_OpenPost(t *testing.T) {
	f := newFixture(t)
	if !f.hermetic {
		t.Skip("post content assertions only hold on the demo site")
	}

	home := f.home(t)
	screenshotOnFailure(t, home.Page, "open-post")

	post, err := home.OpenPost(0)
	require.NoError(t, err)

	title, err := post.PostTitle()
	require.NoError(t, err)
	assert.Equal(t, site.Posts()[0].Title, title)

	tags, err := post.Tags()
	require.NoError(t, err)
	assert.Equal(t, site.Posts()[0].Tags, tags)

	back, err := post.BackHome()
	require.NoError(t, err)

	hero, err := back.HeroHeading()
	require.NoError(t, err)
	assert.Equal(t, site.HeroHeading, hero)
}
