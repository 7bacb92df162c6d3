// Package mhtml extracts HTML from saved-page MIME archives (.mhtml).
package mhtml

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"net/textproto"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagecomp"
	"golang.org/x/net/html/charset"
)

// Ensure Extractor implements pagecomp.ArchiveExtractor at compile time.
var _ pagecomp.ArchiveExtractor = (*Extractor)(nil)

// Extractor returns the first HTML part of an MHTML archive.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses r as a MIME message and walks its parts depth-first,
// including nested multiparts and the top-level entity. It returns the
// decoded text of the first text/html part with a non-empty payload.
// Invalid byte sequences are replaced with U+FFFD.
func (e *Extractor) Extract(r io.Reader) (string, error) {
	msg, err := mail.ReadMessage(bufio.NewReader(r))
	if err != nil {
		return "", pagecomp.Errorf(pagecomp.EINVALID, "malformed archive: %v", err)
	}

	html, err := findHTML(textproto.MIMEHeader(msg.Header), msg.Body)
	if err != nil {
		return "", err
	}
	if html == "" {
		return "", pagecomp.Errorf(pagecomp.ENOTFOUND, "no HTML content in archive")
	}
	return html, nil
}

// findHTML returns "" with a nil error when the entity holds no usable
// HTML part.
func findHTML(header textproto.MIMEHeader, body io.Reader) (string, error) {
	mediaType, params := contentType(header.Get("Content-Type"))

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return "", pagecomp.Errorf(pagecomp.EINVALID, "multipart entity without boundary")
		}
		mr := multipart.NewReader(body, boundary)
		for {
			part, err := mr.NextRawPart()
			if err == io.EOF {
				return "", nil
			}
			if err != nil {
				return "", pagecomp.Errorf(pagecomp.EINVALID, "malformed multipart body: %v", err)
			}
			html, err := findHTML(part.Header, part)
			if err != nil || html != "" {
				return html, err
			}
		}
	}

	if mediaType != "text/html" {
		return "", nil
	}

	payload, err := decodeTransfer(header.Get("Content-Transfer-Encoding"), body)
	if err != nil {
		return "", pagecomp.Errorf(pagecomp.EINVALID, "cannot decode HTML part: %v", err)
	}
	if len(payload) == 0 {
		return "", nil
	}
	return decodeText(payload, params["charset"]), nil
}

// contentType returns the lowercased media type and its parameters.
// A missing or unparsable header means text/plain.
func contentType(value string) (string, map[string]string) {
	if strings.TrimSpace(value) == "" {
		return "text/plain", nil
	}
	mediaType, params, err := mime.ParseMediaType(value)
	if err != nil && mediaType == "" {
		return "text/plain", nil
	}
	return mediaType, params
}

func decodeTransfer(encoding string, body io.Reader) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return io.ReadAll(base64.NewDecoder(base64.StdEncoding, body))
	case "quoted-printable":
		return io.ReadAll(quotedprintable.NewReader(body))
	default:
		return io.ReadAll(body)
	}
}

// decodeText converts payload from its declared charset to UTF-8.
// Unknown charsets are treated as UTF-8.
func decodeText(payload []byte, label string) string {
	label = strings.TrimSpace(label)
	if label != "" && !strings.EqualFold(label, "utf-8") {
		if r, err := charset.NewReaderLabel(label, bytes.NewReader(payload)); err == nil {
			if decoded, err := io.ReadAll(r); err == nil {
				payload = decoded
			}
		}
	}
	if utf8.Valid(payload) {
		return string(payload)
	}
	return strings.ToValidUTF8(string(payload), "\uFFFD")
}
