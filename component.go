package pagecomp

import (
	"encoding/json"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Category is a semantic UI component category.
type Category string

// Category constants.
const (
	CategoryHeader       Category = "header"
	CategoryFooter       Category = "footer"
	CategoryTextBlock    Category = "text_block"
	CategoryNavBar       Category = "nav_bar"
	CategoryImageGallery Category = "image_gallery"
	CategoryLinkBlock    Category = "link_block"
	CategoryButtonBlock  Category = "button_block"
	CategoryForms        Category = "forms"
	CategoryModals       Category = "modals"
)

// Categories lists every category in canonical order.
var Categories = []Category{
	CategoryHeader,
	CategoryFooter,
	CategoryTextBlock,
	CategoryNavBar,
	CategoryImageGallery,
	CategoryLinkBlock,
	CategoryButtonBlock,
	CategoryForms,
	CategoryModals,
}

// Record is a single matched element. Each category stores one fixed
// record shape; fields that were absent in the markup hold "".
type Record interface {
	Category() Category
}

// TextRecord is a header, footer or text block.
type TextRecord struct {
	Kind Category `json:"-"`
	Tag  string   `json:"tag"`
	Text string   `json:"text"`
}

func (r TextRecord) Category() Category { return r.Kind }

// LinkRecord is an anchor found in a navigation bar or a link block.
type LinkRecord struct {
	Kind Category `json:"-"`
	Href string   `json:"href"`
	Text string   `json:"text"`
}

func (r LinkRecord) Category() Category { return r.Kind }

// ImageRecord is an image inside a gallery or a standalone image.
type ImageRecord struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

func (r ImageRecord) Category() Category { return CategoryImageGallery }

// MarkupRecord holds truncated serialized markup of a button or modal.
type MarkupRecord struct {
	Kind Category `json:"-"`
	HTML string   `json:"html"`
}

func (r MarkupRecord) Category() Category { return r.Kind }

// DefaultFormMethod is used when a form declares no method.
const DefaultFormMethod = "GET"

// FormRecord is a form with its action and HTTP method.
type FormRecord struct {
	Action string `json:"action"`
	Method string `json:"method"`
}

func (r FormRecord) Category() Category { return CategoryForms }

// NewFormRecord returns a FormRecord with the method uppercased and
// defaulted to GET.
func NewFormRecord(action, method string) FormRecord {
	return FormRecord{Action: action, Method: normalizeMethod(method)}
}

func normalizeMethod(method string) string {
	if method == "" {
		return DefaultFormMethod
	}
	return strings.ToUpper(method)
}

// Components is the classification result of one document. Each slice
// keeps document traversal order.
type Components struct {
	Header       []TextRecord   `json:"header,omitempty"`
	Footer       []TextRecord   `json:"footer,omitempty"`
	TextBlock    []TextRecord   `json:"text_block,omitempty"`
	NavBar       []LinkRecord   `json:"nav_bar,omitempty"`
	ImageGallery []ImageRecord  `json:"image_gallery,omitempty"`
	LinkBlock    []LinkRecord   `json:"link_block,omitempty"`
	ButtonBlock  []MarkupRecord `json:"button_block,omitempty"`
	Forms        []FormRecord   `json:"forms,omitempty"`
	Modals       []MarkupRecord `json:"modals,omitempty"`
}

// Records returns the records of a category as a generic slice.
func (c *Components) Records(cat Category) []Record {
	switch cat {
	case CategoryHeader:
		return toRecords(c.Header)
	case CategoryFooter:
		return toRecords(c.Footer)
	case CategoryTextBlock:
		return toRecords(c.TextBlock)
	case CategoryNavBar:
		return toRecords(c.NavBar)
	case CategoryImageGallery:
		return toRecords(c.ImageGallery)
	case CategoryLinkBlock:
		return toRecords(c.LinkBlock)
	case CategoryButtonBlock:
		return toRecords(c.ButtonBlock)
	case CategoryForms:
		return toRecords(c.Forms)
	case CategoryModals:
		return toRecords(c.Modals)
	}
	return nil
}

// Count returns the total number of records across all categories.
func (c *Components) Count() int {
	n := 0
	for _, cat := range Categories {
		n += len(c.Records(cat))
	}
	return n
}

// Normalize removes duplicate records within each category, keeping the
// first occurrence, and applies per-shape defaults. Normalize is idempotent.
func (c *Components) Normalize() {
	c.Header = dedupe(c.Header)
	c.Footer = dedupe(c.Footer)
	c.TextBlock = dedupe(c.TextBlock)
	c.NavBar = dedupe(c.NavBar)
	c.ImageGallery = dedupe(c.ImageGallery)
	c.LinkBlock = dedupe(c.LinkBlock)
	c.ButtonBlock = dedupe(c.ButtonBlock)
	for i := range c.Forms {
		c.Forms[i].Method = normalizeMethod(c.Forms[i].Method)
	}
	c.Forms = dedupe(c.Forms)
	c.Modals = dedupe(c.Modals)
}

// dedupe keeps the first record of every distinct canonical serialization.
func dedupe[T Record](records []T) []T {
	if records == nil {
		return nil
	}
	seen := make(map[uint64]struct{}, len(records))
	out := make([]T, 0, len(records))
	for _, r := range records {
		sig := signature(r)
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, r)
	}
	return out
}

// signature hashes the JSON form of a record. Record shapes are fixed
// structs, so field order is stable.
func signature(r Record) uint64 {
	b, err := json.Marshal(r)
	if err != nil {
		// Records only hold strings; Marshal cannot fail.
		panic(err)
	}
	return xxhash.Sum64(b)
}

func toRecords[T Record](records []T) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

// Truncate shortens s to at most n Unicode code points.
// A non-positive n disables truncation.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
