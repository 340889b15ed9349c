package pom

// AboutPage is the page object for /about/.
type AboutPage struct {
	*Page
}

// OpenAbout navigates a fresh tab to the about page of base.
func OpenAbout(b *Browser, base string) (*AboutPage, error) {
	p, err := b.Visit(joinURL(base, "/about/"))
	if err != nil {
		return nil, err
	}
	return &AboutPage{Page: p}, nil
}

// Heading returns the about page's h1.
func (a *AboutPage) Heading() (string, error) {
	return a.Text("main.about h1")
}

// BodyText returns the about page's lead paragraph.
func (a *AboutPage) BodyText() (string, error) {
	return a.Text(".about-body")
}
