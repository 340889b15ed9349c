package pom

import (
	"fmt"

	"github.com/go-rod/rod/lib/proto"
)

// Components are reusable per-section locator wrappers shared by the page
// objects: the nav bar and footer appear on every page, the post list only
// on the homepage.

const (
	selNavLinks     = "nav.site-nav a"
	selFooter       = "footer#site-footer"
	selCopyright    = "footer#site-footer .copyright"
	selSocialLinks  = "footer#site-footer ul.social a"
	selPostCard     = "article.post-card"
	selPostCardLink = "article.post-card .post-title a"
)

// NavBar wraps the site navigation present on every page.
type NavBar struct {
	page *Page
}

// NavBar returns the navigation component of this page.
func (p *Page) NavBar() NavBar { return NavBar{page: p} }

// LinkNames returns the nav link labels in display order.
func (n NavBar) LinkNames() ([]string, error) {
	return n.page.Texts(selNavLinks)
}

// ClickLink clicks the nav link whose label equals name and waits for the
// navigation to load.
func (n NavBar) ClickLink(name string) error {
	els, err := n.page.act().Elements(selNavLinks)
	if err != nil {
		return fmt.Errorf("locate nav links: %w", err)
	}
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			return fmt.Errorf("read nav link text: %w", err)
		}
		if text != name {
			continue
		}
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			return fmt.Errorf("click nav link %q: %w", name, err)
		}
		if err := n.page.rp.Timeout(n.page.cfg.Timeouts.Navigation).WaitLoad(); err != nil {
			return fmt.Errorf("wait load after nav link %q: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("nav link %q not found", name)
}

// Footer wraps the site footer.
type Footer struct {
	page *Page
}

// Footer returns the footer component of this page.
func (p *Page) Footer() Footer { return Footer{page: p} }

// Visible reports whether the footer is rendered at all.
func (f Footer) Visible() (bool, error) {
	return f.page.Visible(selFooter)
}

// InViewport reports whether the footer is currently on screen.
func (f Footer) InViewport() (bool, error) {
	return f.page.InViewport(selFooter)
}

// Copyright returns the footer copyright line.
func (f Footer) Copyright() (string, error) {
	return f.page.Text(selCopyright)
}

// SocialLinkCount returns how many links the footer's social list holds.
func (f Footer) SocialLinkCount() (int, error) {
	return f.page.Count(selSocialLinks)
}

// PostList wraps the homepage's list of post cards.
type PostList struct {
	page *Page
}

// Count returns the number of post cards.
func (l PostList) Count() (int, error) {
	return l.page.Count(selPostCard)
}

// Titles returns the post titles in display order.
func (l PostList) Titles() ([]string, error) {
	return l.page.Texts(selPostCardLink)
}

// Open clicks the i-th post's title link (0-based) and waits for the
// post page to load.
func (l PostList) Open(i int) error {
	els, err := l.page.act().Elements(selPostCardLink)
	if err != nil {
		return fmt.Errorf("locate post links: %w", err)
	}
	if i < 0 || i >= len(els) {
		return fmt.Errorf("post index %d out of range (have %d)", i, len(els))
	}
	if err := els[i].Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click post %d: %w", i, err)
	}
	if err := l.page.rp.Timeout(l.page.cfg.Timeouts.Navigation).WaitLoad(); err != nil {
		return fmt.Errorf("wait load after opening post %d: %w", i, err)
	}
	return nil
}
