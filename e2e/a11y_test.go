//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avb-dev/blogwatch/internal/site"
	"github.com/avb-dev/blogwatch/pkg/a11y"
)

// TestA11y_FlagsImagesWithoutAlt audits the rendered DOM of every page:
// the homepage must be clean, and exactly the seeded post must be flagged.
func TestA11y_FlagsImagesWithoutAlt(t *testing.T) {
	f := newFixture(t)
	if !f.hermetic {
		t.Skip("seeded violation only exists on the demo site")
	}

	home := f.home(t)
	html, err := home.HTML()
	require.NoError(t, err)
	violations, err := a11y.AuditString(html)
	require.NoError(t, err)
	assert.Empty(t, violations, "homepage should have no a11y violations")

	var seeded site.Post
	for _, p := range site.Posts() {
		if p.Image != "" && p.ImageAlt == "" {
			seeded = p
			break
		}
	}
	require.NotEmpty(t, seeded.Slug, "fixture data must seed one violation")

	post := f.post(t, seeded.Slug)
	screenshotOnFailure(t, post.Page, "a11y-"+seeded.Slug)

	html, err = post.HTML()
	require.NoError(t, err)
	violations, err = a11y.AuditString(html)
	require.NoError(t, err)

	require.Len(t, violations, 1)
	assert.Equal(t, a11y.RuleImgAlt, violations[0].Rule)
	assert.Contains(t, violations[0].Context, seeded.Image)
}
