package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecomp"
)

// predicate decides whether an element belongs to a category.
type predicate func(s *goquery.Selection) bool

// rules holds one predicate per element-level category. nav and gallery
// match containers; their anchors and images are collected separately.
type rules struct {
	header    predicate
	footer    predicate
	textBlock predicate
	nav       predicate
	gallery   predicate
	button    predicate
	modal     predicate
}

// Keyword sets of the loose policy.
var (
	headerKeywords  = []string{"header", "topbar", "title"}
	footerKeywords  = []string{"footer", "bottom"}
	textKeywords    = []string{"paragraph", "text-block"}
	navKeywords     = []string{"nav", "navbar", "menu"}
	galleryKeywords = []string{"gallery", "carousel", "slider"}
	buttonKeywords  = []string{"btn", "button"}
	modalKeywords   = []string{"modal", "dialog"}
)

var buttonInputTypes = map[string]bool{
	"button": true,
	"submit": true,
	"reset":  true,
}

func strictRules() rules {
	return rules{
		header:    tagIn("h1", "h2", "h3"),
		footer:    tagIn("footer"),
		textBlock: tagIn("p"),
		nav:       tagIn("nav"),
		gallery:   divClassContains("gallery"),
		button:    isButtonElement,
		modal:     divClassContains("modal"),
	}
}

func looseRules(m keywordMatcher) rules {
	kw := func(keywords ...string) predicate {
		return func(s *goquery.Selection) bool {
			return m.match(classAndID(s), keywords)
		}
	}
	return rules{
		header:    anyOf(tagIn("header", "h1", "h2", "h3"), kw(headerKeywords...)),
		footer:    anyOf(tagIn("footer"), kw(footerKeywords...)),
		textBlock: anyOf(tagIn("p"), kw(textKeywords...)),
		nav:       anyOf(tagIn("nav"), kw(navKeywords...)),
		gallery:   kw(galleryKeywords...),
		button:    anyOf(isButtonElement, kw(buttonKeywords...)),
		modal:     kw(modalKeywords...),
	}
}

func tagIn(tags ...string) predicate {
	return func(s *goquery.Selection) bool {
		name := goquery.NodeName(s)
		for _, t := range tags {
			if name == t {
				return true
			}
		}
		return false
	}
}

func anyOf(preds ...predicate) predicate {
	return func(s *goquery.Selection) bool {
		for _, p := range preds {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// isButtonElement matches <button> and inputs of type button, submit or reset.
func isButtonElement(s *goquery.Selection) bool {
	switch goquery.NodeName(s) {
	case "button":
		return true
	case "input":
		typ, _ := s.Attr("type")
		return buttonInputTypes[typ]
	}
	return false
}

// divClassContains matches div elements whose class attribute contains
// substr, ignoring case.
func divClassContains(substr string) predicate {
	return func(s *goquery.Selection) bool {
		if goquery.NodeName(s) != "div" {
			return false
		}
		class, _ := s.Attr("class")
		return strings.Contains(strings.ToLower(class), substr)
	}
}

// classAndID returns the lowercased class list joined by spaces followed by
// a space and the id.
func classAndID(s *goquery.Selection) string {
	class, _ := s.Attr("class")
	id, _ := s.Attr("id")
	return strings.ToLower(strings.Join(strings.Fields(class), " ") + " " + id)
}

// keywordMatcher tests a lowercased class/id string against keywords.
type keywordMatcher struct {
	word bool
}

func newKeywordMatcher(mode pagecomp.MatchMode) keywordMatcher {
	return keywordMatcher{word: mode == pagecomp.MatchWord}
}

func (m keywordMatcher) match(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if m.word {
			if containsWord(haystack, kw) {
				return true
			}
		} else if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// containsWord reports whether kw occurs in s bounded on both sides by a
// non-alphanumeric byte or the edge of s.
func containsWord(s, kw string) bool {
	if kw == "" {
		return false
	}
	for i := 0; i <= len(s)-len(kw); {
		j := strings.Index(s[i:], kw)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(kw)
		if (start == 0 || !isAlnum(s[start-1])) && (end == len(s) || !isAlnum(s[end])) {
			return true
		}
		i = start + 1
	}
	return false
}

func isAlnum(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}
