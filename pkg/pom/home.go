package pom

import "strings"

// HomePage is the page object for the blog homepage: hero section plus
// the list of post cards.
type HomePage struct {
	*Page
}

// OpenHome navigates a fresh tab to the homepage of base.
func OpenHome(b *Browser, base string) (*HomePage, error) {
	p, err := b.Visit(joinURL(base, "/"))
	if err != nil {
		return nil, err
	}
	return &HomePage{Page: p}, nil
}

// HeroHeading returns the h1 of the hero section.
func (h *HomePage) HeroHeading() (string, error) {
	return h.Text(".hero h1")
}

// Posts returns the post list component.
func (h *HomePage) Posts() PostList {
	return PostList{page: h.Page}
}

// OpenPost opens the i-th post and returns its page object.
// The underlying tab navigates; the HomePage object is stale afterwards.
func (h *HomePage) OpenPost(i int) (*PostPage, error) {
	if err := h.Posts().Open(i); err != nil {
		return nil, err
	}
	return &PostPage{Page: h.Page}, nil
}

// GoToAbout clicks the About nav link and returns the about page object.
func (h *HomePage) GoToAbout() (*AboutPage, error) {
	if err := h.NavBar().ClickLink("About"); err != nil {
		return nil, err
	}
	return &AboutPage{Page: h.Page}, nil
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}
