package site

import "html/template"

// NavLink is an entry in the site navigation bar.
type NavLink struct {
	Name string
	Href string
}

// NavLinks returns the navigation links rendered on every page, in order.
func NavLinks() []NavLink {
	return []NavLink{
		{Name: "Home", Href: "/"},
		{Name: "About", Href: "/about/"},
	}
}

// Post is a seeded blog post. Posts are loaded once and never mutated.
type Post struct {
	Slug    string
	Title   string
	Summary string
	Date    string
	Tags    []string
	Body    []string // paragraphs
	// Image is an optional illustration. ImageAlt left empty seeds an
	// accessibility violation for the audit tests.
	Image    string
	ImageAlt string
}

var posts = []Post{
	{
		Slug:    "hello-gopher",
		Title:   "Hello, Gopher",
		Summary: "First post on the demo blog.",
		Date:    "2025-01-12",
		Tags:    []string{"meta", "go"},
		Body: []string{
			"Welcome to the demo blog. This site exists so the end-to-end suite has a stable, hermetic target.",
			"Every element the page objects locate lives here, under version control, next to the tests that read it.",
		},
	},
	{
		Slug:    "headless-browsers",
		Title:   "Driving Headless Browsers from Go",
		Summary: "Notes on the DevTools protocol and lazy locators.",
		Date:    "2025-02-03",
		Tags:    []string{"testing", "cdp"},
		Body: []string{
			"Locators resolve lazily: nothing touches the DOM until an action needs the element.",
			"That makes page objects cheap to construct and safe to hold across navigations.",
		},
		Image:    "/static/gopher.png",
		ImageAlt: "", // intentionally missing alt text
	},
	{
		Slug:    "flaky-tests",
		Title:   "On Flaky Tests",
		Summary: "Retry budgets and why they are a smell.",
		Date:    "2025-03-21",
		Tags:    []string{"testing"},
		Body: []string{
			"A retry helper buys time to fix the real race. It is a tourniquet, not a cure.",
			"Keep the retry count in config so the suite can run strict in CI and lenient on laptops.",
		},
	},
}

// Posts returns the seeded posts, newest last. Callers must not mutate
// the returned slice.
func Posts() []Post {
	return posts
}

// PostBySlug returns the seeded post for slug, or false.
func PostBySlug(slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// HeroHeading is the h1 shown on the homepage hero section.
const HeroHeading = "The Demo Blog"

// FooterCopyright is the text inside the site footer.
const FooterCopyright = "© 2025 The Demo Blog"

// BrokenHref is a link seeded on the about page that resolves to a 404.
// The link checker tests depend on exactly this one being broken.
const BrokenHref = "/posts/drafts/"

const pagesHTML = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 720px; margin: 0 auto; padding: 0 1rem; }
nav.site-nav a { margin-right: 1rem; }
main { min-height: 160vh; }
article.post-card { border-bottom: 1px solid #ddd; padding: 1rem 0; }
footer#site-footer { padding: 2rem 0; color: #666; }
</style>
</head>
<body>
<nav class="site-nav">{{range .Nav}}<a href="{{.Href}}">{{.Name}}</a>{{end}}</nav>
{{end}}

{{define "foot"}}
<footer id="site-footer">
<p class="copyright">{{.Copyright}}</p>
<ul class="social">
<li><a href="/about/" rel="me">about the author</a></li>
</ul>
</footer>
</body>
</html>{{end}}

{{define "home"}}{{template "head" .}}
<section class="hero"><h1>{{.Hero}}</h1><p class="tagline">A hermetic target for browser tests.</p></section>
<main class="post-list">
{{range .Posts}}<article class="post-card">
<h2 class="post-title"><a href="/posts/{{.Slug}}/">{{.Title}}</a></h2>
<p class="post-summary">{{.Summary}}</p>
<time datetime="{{.Date}}">{{.Date}}</time>
</article>
{{end}}</main>
{{template "foot" .}}{{end}}

{{define "about"}}{{template "head" .}}
<main class="about">
<h1>About</h1>
<p class="about-body">This site is generated in-process by the test suite. Nothing here is real, which is exactly the point.</p>
<p>Unfinished material lives in <a href="{{.Broken}}">the drafts section</a>.</p>
</main>
{{template "foot" .}}{{end}}

{{define "post"}}{{template "head" .}}
<main>
<article class="post">
<h1 class="post-title">{{.Post.Title}}</h1>
<time datetime="{{.Post.Date}}">{{.Post.Date}}</time>
{{if .Post.Image}}<img src="{{.Post.Image}}" alt="{{.Post.ImageAlt}}">{{end}}
<div class="post-content">{{range .Post.Body}}<p>{{.}}</p>{{end}}</div>
<ul class="tags">{{range .Post.Tags}}<li class="tag">{{.}}</li>{{end}}</ul>
</article>
<a class="back-link" href="/">Back to home</a>
</main>
{{template "foot" .}}{{end}}
`

var tmpl = template.Must(template.New("pages").Parse(pagesHTML))

// pageData is the view model shared by all templates.
type pageData struct {
	Title     string
	Nav       []NavLink
	Hero      string
	Copyright string
	Broken    string
	Posts     []Post
	Post      *Post
}

func newPageData(title string) pageData {
	return pageData{
		Title:     title,
		Nav:       NavLinks(),
		Hero:      HeroHeading,
		Copyright: FooterCopyright,
		Broken:    BrokenHref,
	}
}

// gopherPNG is a valid 1x1 transparent PNG so <img> actually decodes
// instead of rendering a broken-image icon.
var gopherPNG = []byte{
	// signature
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	// IHDR: 1x1, 8-bit RGBA
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
	// IDAT: one zlib-deflated zero scanline
	0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41, 0x54,
	0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00, 0x05, 0x00, 0x01,
	0x0d, 0x0a, 0x2d, 0xb4,
	// IEND
	0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}
