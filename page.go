package pagecomp

import (
	"bytes"
	"encoding/json"
	"io"
)

// MaxFiles is the default number of archives processed per run.
const MaxFiles = 5

// Archive is one saved-page file supplied by the user.
type Archive struct {
	Name string
	Data []byte
}

// Page is the normalized classification result for one archive.
type Page struct {
	Name       string
	Components *Components
}

// PageSummary holds one Page per processed archive in upload order.
// File names are assumed to be unique within a run.
type PageSummary []*Page

// MarshalJSON encodes the summary as an object keyed by file name,
// preserving upload order.
func (s PageSummary) MarshalJSON() ([]byte, error) {
	fields := make([]jsonField, len(s))
	for i, p := range s {
		fields[i] = jsonField{Key: p.Name, Value: p.Components}
	}
	return marshalObject(fields)
}

// SampleSummary returns the fixed example summary shown when no archives
// were supplied.
func SampleSummary() PageSummary {
	return PageSummary{{
		Name: "sample.mhtml",
		Components: &Components{
			Header:       []TextRecord{{Kind: CategoryHeader, Tag: "h1", Text: "Welcome"}},
			Footer:       []TextRecord{{Kind: CategoryFooter, Tag: "footer", Text: "Contact"}},
			TextBlock:    []TextRecord{{Kind: CategoryTextBlock, Tag: "p", Text: "Lorem ipsum"}},
			ImageGallery: []ImageRecord{{Src: "logo.png", Alt: "Logo"}},
			NavBar:       []LinkRecord{{Kind: CategoryNavBar, Href: "/home", Text: "Home"}},
			LinkBlock:    []LinkRecord{{Kind: CategoryLinkBlock, Href: "/about", Text: "About"}},
			ButtonBlock:  []MarkupRecord{{Kind: CategoryButtonBlock, HTML: "<button>Click</button>"}},
			Forms:        []FormRecord{{Action: "/send", Method: "POST"}},
			Modals:       []MarkupRecord{{Kind: CategoryModals, HTML: "<div class='modal'>Modal</div>"}},
		},
	}}
}

type jsonField struct {
	Key   string
	Value any
}

// marshalObject encodes fields as a JSON object in the given order.
// Markup is kept readable: <, > and & are not escaped.
func marshalObject(fields []jsonField) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalValue(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalValue(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodeJSON writes v to w as indented JSON without HTML escaping.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
