package a11y

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avb-dev/blogwatch/internal/site"
)

func TestAuditFlagsMissingAlt(t *testing.T) {
	violations, err := AuditString(`<html><body>
		<img src="/a.png">
		<img src="/b.png" alt="a proper description">
		<img src="/c.png" alt="">
		<img src="/d.png" alt="   ">
		<img src="/e.png" role="presentation">
	</body></html>`)
	require.NoError(t, err)

	require.Len(t, violations, 3)
	assert.Equal(t, RuleImgAlt, violations[0].Rule)
	assert.Equal(t, `img[src="/a.png"]`, violations[0].Context)
	assert.Contains(t, violations[0].Detail, "no alt attribute")
	assert.Equal(t, `img[src="/c.png"]`, violations[1].Context)
	assert.Contains(t, violations[1].Detail, "empty alt")
	assert.Equal(t, `img[src="/d.png"]`, violations[2].Context)
}

func TestAuditCleanDocument(t *testing.T) {
	violations, err := AuditString(`<html><body><p>no images at all</p></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestAuditImageWithoutSrc(t *testing.T) {
	violations, err := AuditString(`<html><body><img></body></html>`)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "img #0", violations[0].Context)
}

func TestAuditDemoSite(t *testing.T) {
	srv := site.NewServer(site.DefaultConfig())
	addr, err := srv.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, srv.Shutdown(ctx))
	})

	fetch := func(path string) []Violation {
		resp, err := http.Get("http://" + addr + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		v, err := AuditString(string(body))
		require.NoError(t, err)
		return v
	}

	// The homepage is clean; exactly one seeded post page violates.
	assert.Empty(t, fetch("/"))

	var flagged int
	for _, p := range site.Posts() {
		v := fetch("/posts/" + p.Slug + "/")
		if p.Image != "" && p.ImageAlt == "" {
			require.Len(t, v, 1, "post %q should carry the seeded violation", p.Slug)
			assert.Equal(t, RuleImgAlt, v[0].Rule)
			flagged++
		} else {
			assert.Empty(t, v, "post %q should be clean", p.Slug)
		}
	}
	assert.Equal(t, 1, flagged)
}
