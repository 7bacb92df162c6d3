package pagecomp_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/pagecomp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDigest(t *testing.T) {
	t.Parallel()

	t.Run("caps items per category", func(t *testing.T) {
		t.Parallel()

		c := &pagecomp.Components{}
		for _, s := range []string{"1", "2", "3", "4"} {
			c.Header = append(c.Header, pagecomp.TextRecord{Kind: pagecomp.CategoryHeader, Tag: "h2", Text: "h" + s})
			c.NavBar = append(c.NavBar, pagecomp.LinkRecord{Kind: pagecomp.CategoryNavBar, Href: "/" + s, Text: "n" + s})
			c.LinkBlock = append(c.LinkBlock, pagecomp.LinkRecord{Kind: pagecomp.CategoryLinkBlock, Href: "/" + s, Text: "l" + s})
			c.ImageGallery = append(c.ImageGallery, pagecomp.ImageRecord{Src: s + ".png"})
			c.ButtonBlock = append(c.ButtonBlock, pagecomp.MarkupRecord{Kind: pagecomp.CategoryButtonBlock, HTML: "<button>" + s + "</button>"})
			c.Modals = append(c.Modals, pagecomp.MarkupRecord{Kind: pagecomp.CategoryModals, HTML: "<div>" + s + "</div>"})
			c.Forms = append(c.Forms, pagecomp.FormRecord{Action: "/" + s, Method: "GET"})
		}

		d := pagecomp.NewDigest(c)

		assert.Equal(t, []string{"h2: h1", "h2: h2", "h2: h3"}, d.Header)
		assert.Equal(t, []string{"n1", "n2", "n3"}, d.NavBar)
		assert.Equal(t, []string{"l1", "l2"}, d.LinkBlock)
		assert.Equal(t, []string{"1.png", "2.png"}, d.ImageGallery)
		assert.Equal(t, []string{"<button>1</button>"}, d.ButtonBlock)
		assert.Equal(t, []string{"<div>1</div>"}, d.Modals)
		assert.Len(t, d.Forms, 4)
	})

	t.Run("labels images by alt before src", func(t *testing.T) {
		t.Parallel()

		d := pagecomp.NewDigest(&pagecomp.Components{
			ImageGallery: []pagecomp.ImageRecord{{Src: "a.png", Alt: "Logo"}, {Src: "b.png"}},
		})

		assert.Equal(t, []string{"Logo", "b.png"}, d.ImageGallery)
	})

	t.Run("empty components encode as empty lists", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(pagecomp.NewDigest(nil))

		require.NoError(t, err)
		assert.Equal(t, `{"header":[],"footer":[],"text_block":[],"nav_bar":[],"image_gallery":[],"link_block":[],"button_block":[],"forms":[],"modals":[]}`, string(data))
	})
}

func TestDigestSet_MarshalJSON(t *testing.T) {
	t.Parallel()

	summary := pagecomp.PageSummary{
		{Name: "b.mhtml", Components: &pagecomp.Components{}},
		{Name: "a.mhtml", Components: &pagecomp.Components{}},
	}

	data, err := json.Marshal(pagecomp.NewDigestSet(summary))

	require.NoError(t, err)
	assert.Regexp(t, `^\{"b\.mhtml":\{.*\},"a\.mhtml":\{.*\}\}$`, string(data))
}
