package pom

// PostPage is the page object for a single post under /posts/{slug}/.
type PostPage struct {
	*Page
}

// OpenPost navigates a fresh tab to the post with the given slug.
func OpenPost(b *Browser, base, slug string) (*PostPage, error) {
	p, err := b.Visit(joinURL(base, "/posts/"+slug+"/"))
	if err != nil {
		return nil, err
	}
	return &PostPage{Page: p}, nil
}

// PostTitle returns the post's h1.
func (p *PostPage) PostTitle() (string, error) {
	return p.Text("article.post h1.post-title")
}

// Content returns the post body text.
func (p *PostPage) Content() (string, error) {
	return p.Text(".post-content")
}

// Tags returns the post's tag labels.
func (p *PostPage) Tags() ([]string, error) {
	return p.Texts("ul.tags li.tag")
}

// BackHome clicks the back link and returns the homepage object.
func (p *PostPage) BackHome() (*HomePage, error) {
	if err := p.Click("a.back-link"); err != nil {
		return nil, err
	}
	return &HomePage{Page: p.Page}, nil
}
