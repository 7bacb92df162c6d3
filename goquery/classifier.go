// Package goquery implements component classification over parsed HTML
// using PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecomp"
	"golang.org/x/net/html"
)

// Ensure Classifier implements pagecomp.Classifier at compile time.
var _ pagecomp.Classifier = (*Classifier)(nil)

// Classifier maps DOM elements to UI component categories.
// Categories are evaluated independently, so one element may appear in
// several of them.
type Classifier struct {
	policy pagecomp.Policy
	match  pagecomp.MatchMode
	limits pagecomp.Limits
	rules  rules
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithPolicy selects the strict or loose rule set. Defaults to loose.
// The truncation limits follow the policy unless WithLimits is given.
func WithPolicy(p pagecomp.Policy) Option {
	return func(c *Classifier) {
		c.policy = p
	}
}

// WithMatchMode sets how loose-policy keywords are matched.
// Defaults to substring matching.
func WithMatchMode(m pagecomp.MatchMode) Option {
	return func(c *Classifier) {
		c.match = m
	}
}

// WithLimits overrides the policy's truncation limits. Zero fields keep
// the policy default.
func WithLimits(l pagecomp.Limits) Option {
	return func(c *Classifier) {
		c.limits = l
	}
}

// NewClassifier creates a new Classifier.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		policy: pagecomp.PolicyLoose,
		match:  pagecomp.MatchSubstring,
	}
	for _, opt := range opts {
		opt(c)
	}

	def := pagecomp.DefaultLimits(c.policy)
	if c.limits.Text == 0 {
		c.limits.Text = def.Text
	}
	if c.limits.Markup == 0 {
		c.limits.Markup = def.Markup
	}

	if c.policy == pagecomp.PolicyStrict {
		c.rules = strictRules()
	} else {
		c.rules = looseRules(newKeywordMatcher(c.match))
	}
	return c
}

// Policy returns the rule set in use.
func (c *Classifier) Policy() pagecomp.Policy {
	return c.policy
}

// Limits returns the truncation limits in use.
func (c *Classifier) Limits() pagecomp.Limits {
	return c.limits
}

// Classify parses html and collects component records per category in
// document order. Records are not deduplicated.
func (c *Classifier) Classify(rawHTML string) (*pagecomp.Components, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagecomp.Errorf(pagecomp.EINVALID, "failed to parse HTML: %v", err)
	}

	all := doc.Find("*")
	comps := &pagecomp.Components{}

	comps.Header = c.textRecords(all, pagecomp.CategoryHeader, c.rules.header)
	comps.Footer = c.textRecords(all, pagecomp.CategoryFooter, c.rules.footer)
	comps.TextBlock = c.textRecords(all, pagecomp.CategoryTextBlock, c.rules.textBlock)

	navs := all.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return c.rules.nav(s)
	})
	navs.Each(func(_ int, nav *goquery.Selection) {
		nav.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			comps.NavBar = append(comps.NavBar, c.linkRecord(a, pagecomp.CategoryNavBar))
		})
	})

	galleries := all.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return c.rules.gallery(s)
	})
	galleries.Each(func(_ int, gallery *goquery.Selection) {
		gallery.Find("img").Each(func(_ int, img *goquery.Selection) {
			comps.ImageGallery = append(comps.ImageGallery, imageRecord(img))
		})
	})
	all.Filter("img").Each(func(_ int, img *goquery.Selection) {
		if hasAncestor(img, c.rules.gallery) {
			return
		}
		comps.ImageGallery = append(comps.ImageGallery, imageRecord(img))
	})

	all.Filter("a[href]").Each(func(_ int, a *goquery.Selection) {
		if hasAncestor(a, c.rules.nav) {
			return
		}
		comps.LinkBlock = append(comps.LinkBlock, c.linkRecord(a, pagecomp.CategoryLinkBlock))
	})

	comps.ButtonBlock = c.markupRecords(all, pagecomp.CategoryButtonBlock, c.rules.button)

	all.Filter("form").Each(func(_ int, form *goquery.Selection) {
		action, _ := form.Attr("action")
		method, _ := form.Attr("method")
		comps.Forms = append(comps.Forms, pagecomp.NewFormRecord(action, method))
	})

	comps.Modals = c.markupRecords(all, pagecomp.CategoryModals, c.rules.modal)

	return comps, nil
}

// textRecords collects elements matching pred that have non-empty text.
func (c *Classifier) textRecords(all *goquery.Selection, cat pagecomp.Category, pred predicate) []pagecomp.TextRecord {
	var records []pagecomp.TextRecord
	all.Each(func(_ int, s *goquery.Selection) {
		if !pred(s) {
			return
		}
		text := c.text(s)
		if text == "" {
			return
		}
		records = append(records, pagecomp.TextRecord{
			Kind: cat,
			Tag:  goquery.NodeName(s),
			Text: pagecomp.Truncate(text, c.limits.Text),
		})
	})
	return records
}

// markupRecords collects the truncated outer HTML of elements matching pred.
func (c *Classifier) markupRecords(all *goquery.Selection, cat pagecomp.Category, pred predicate) []pagecomp.MarkupRecord {
	var records []pagecomp.MarkupRecord
	all.Each(func(_ int, s *goquery.Selection) {
		if !pred(s) {
			return
		}
		markup, err := goquery.OuterHtml(s)
		if err != nil {
			return
		}
		records = append(records, pagecomp.MarkupRecord{
			Kind: cat,
			HTML: pagecomp.Truncate(markup, c.limits.Markup),
		})
	})
	return records
}

func (c *Classifier) linkRecord(a *goquery.Selection, cat pagecomp.Category) pagecomp.LinkRecord {
	href, _ := a.Attr("href")
	return pagecomp.LinkRecord{Kind: cat, Href: href, Text: c.text(a)}
}

func imageRecord(img *goquery.Selection) pagecomp.ImageRecord {
	src, _ := img.Attr("src")
	alt, _ := img.Attr("alt")
	return pagecomp.ImageRecord{Src: src, Alt: alt}
}

// text returns the element's text. The strict policy concatenates stripped
// text nodes; the loose policy joins them with a space.
func (c *Classifier) text(s *goquery.Selection) string {
	sep := " "
	if c.policy == pagecomp.PolicyStrict {
		sep = ""
	}
	return Text(s, sep)
}

// Text joins the whitespace-trimmed, non-empty descendant text nodes of
// the selection with sep. Script, style and template content is skipped.
func Text(s *goquery.Selection, sep string) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "template":
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.Join(parts, sep)
}

// hasAncestor reports whether any ancestor of s satisfies pred.
func hasAncestor(s *goquery.Selection, pred predicate) bool {
	return s.Parents().FilterFunction(func(_ int, p *goquery.Selection) bool {
		return pred(p)
	}).Length() > 0
}
