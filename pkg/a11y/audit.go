// Package a11y audits rendered HTML for accessibility violations.
// The only rule implemented is img-alt: every <img> needs a non-empty
// alt attribute (or an explicit role="presentation" opt-out).
package a11y

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RuleImgAlt identifies the missing-alt-text rule in violations.
const RuleImgAlt = "img-alt"

// Violation is one flagged element.
type Violation struct {
	Rule string `json:"rule"`
	// Context identifies the offending element, e.g. `img[src="/a.png"]`.
	Context string `json:"context"`
	Detail  string `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Rule, v.Detail, v.Context)
}

// Audit scans the HTML read from r and returns all violations, in
// document order. A document with no images yields no violations.
func Audit(r io.Reader) ([]Violation, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var out []Violation
	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		if role, _ := s.Attr("role"); role == "presentation" {
			return
		}
		alt, exists := s.Attr("alt")
		if exists && strings.TrimSpace(alt) != "" {
			return
		}

		detail := "image has empty alt attribute"
		if !exists {
			detail = "image has no alt attribute"
		}
		out = append(out, Violation{
			Rule:    RuleImgAlt,
			Context: imgContext(s, i),
			Detail:  detail,
		})
	})
	return out, nil
}

// AuditString is Audit over an in-memory document, convenient for page
// objects that hand over their serialized DOM.
func AuditString(html string) ([]Violation, error) {
	return Audit(strings.NewReader(html))
}

func imgContext(s *goquery.Selection, i int) string {
	if src, ok := s.Attr("src"); ok && src != "" {
		return fmt.Sprintf("img[src=%q]", src)
	}
	return fmt.Sprintf("img #%d", i)
}
