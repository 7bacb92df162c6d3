package mhtml_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagecomp"
	"github.com/fwojciec/pagecomp/mhtml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// archive joins lines with CRLF as saved-page archives do.
func archive(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns html part of multipart archive", func(t *testing.T) {
		t.Parallel()

		data := archive(
			"From: <Saved by Blink>",
			"MIME-Version: 1.0",
			`Content-Type: multipart/related; type="text/html"; boundary="----MultipartBoundary--abc"`,
			"",
			"------MultipartBoundary--abc",
			"Content-Type: text/css",
			"Content-Location: https://example.com/style.css",
			"",
			"body { color: red; }",
			"------MultipartBoundary--abc",
			"Content-Type: text/html",
			"Content-Location: https://example.com/",
			"",
			"<html><body><h1>Hi</h1></body></html>",
			"------MultipartBoundary--abc--",
			"",
		)

		html, err := mhtml.NewExtractor().Extract(strings.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, "<html><body><h1>Hi</h1></body></html>", html)
	})

	t.Run("decodes quoted-printable", func(t *testing.T) {
		t.Parallel()

		data := archive(
			"MIME-Version: 1.0",
			`Content-Type: multipart/related; boundary="B"`,
			"",
			"--B",
			"Content-Type: text/html; charset=utf-8",
			"Content-Transfer-Encoding: quoted-printable",
			"",
			`<p class=3D"intro">Caf=C3=A9 au lait and a very long line that is soft =`,
			`wrapped</p>`,
			"--B--",
			"",
		)

		html, err := mhtml.NewExtractor().Extract(strings.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, `<p class="intro">Café au lait and a very long line that is soft wrapped</p>`, html)
	})

	t.Run("decodes base64", func(t *testing.T) {
		t.Parallel()

		data := archive(
			"MIME-Version: 1.0",
			`Content-Type: multipart/related; boundary="B"`,
			"",
			"--B",
			"Content-Type: text/html",
			"Content-Transfer-Encoding: base64",
			"",
			"PGgxPkhlbGxvPC9oMT4=",
			"--B--",
			"",
		)

		html, err := mhtml.NewExtractor().Extract(strings.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, "<h1>Hello</h1>", html)
	})

	t.Run("converts declared charset to utf-8", func(t *testing.T) {
		t.Parallel()

		data := archive(
			"MIME-Version: 1.0",
			"Content-Type: text/html; charset=iso-8859-1",
			"Content-Transfer-Encoding: quoted-printable",
			"",
			"<p>Caf=E9</p>",
		)

		html, err := mhtml.NewExtractor().Extract(strings.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, "<p>Café</p>", html)
	})

	t.Run("replaces invalid utf-8 sequences", func(t *testing.T) {
		t.Parallel()

		data := archive(
			"MIME-Version: 1.0",
			"Content-Type: text/html",
			"Content-Transfer-Encoding: quoted-printable",
			"",
			"<p>a=FFb</p>",
		)

		html, err := mhtml.NewExtractor().Extract(strings.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, "<p>a\uFFFDb</p>", html)
	})

	t.Run("finds html in nested multipart", func(t *testing.T) {
		t.Parallel()

		data := archive(
			"MIME-Version: 1.0",
			`Content-Type: multipart/mixed; boundary="OUTER"`,
			"",
			"--OUTER",
			`Content-Type: multipart/alternative; boundary="INNER"`,
			"",
			"--INNER",
			"Content-Type: text/plain",
			"",
			"plain",
			"--INNER",
			"Content-Type: text/html",
			"",
			"<p>nested</p>",
			"--INNER--",
			"--OUTER--",
			"",
		)

		html, err := mhtml.NewExtractor().Extract(strings.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, "<p>nested</p>", html)
	})

	t.Run("skips empty html part", func(t *testing.T) {
		t.Parallel()

		data := archive(
			"MIME-Version: 1.0",
			`Content-Type: multipart/related; boundary="B"`,
			"",
			"--B",
			"Content-Type: text/html",
			"",
			"",
			"--B",
			"Content-Type: text/html",
			"",
			"<p>second</p>",
			"--B--",
			"",
		)

		html, err := mhtml.NewExtractor().Extract(strings.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, "<p>second</p>", html)
	})

	t.Run("no html part is not found", func(t *testing.T) {
		t.Parallel()

		data := archive(
			"MIME-Version: 1.0",
			`Content-Type: multipart/related; boundary="B"`,
			"",
			"--B",
			"Content-Type: text/css",
			"",
			"p {}",
			"--B--",
			"",
		)

		_, err := mhtml.NewExtractor().Extract(strings.NewReader(data))

		require.Error(t, err)
		assert.Equal(t, pagecomp.ENOTFOUND, pagecomp.ErrorCode(err))
	})

	t.Run("missing content type is not html", func(t *testing.T) {
		t.Parallel()

		_, err := mhtml.NewExtractor().Extract(strings.NewReader(archive("Subject: x", "", "<p>hi</p>")))

		require.Error(t, err)
		assert.Equal(t, pagecomp.ENOTFOUND, pagecomp.ErrorCode(err))
	})

	t.Run("multipart without boundary is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := mhtml.NewExtractor().Extract(strings.NewReader(archive("Content-Type: multipart/related", "", "body")))

		require.Error(t, err)
		assert.Equal(t, pagecomp.EINVALID, pagecomp.ErrorCode(err))
	})

	t.Run("garbage input is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := mhtml.NewExtractor().Extract(strings.NewReader("not a mime message at all"))

		require.Error(t, err)
		assert.Equal(t, pagecomp.EINVALID, pagecomp.ErrorCode(err))
	})
}
