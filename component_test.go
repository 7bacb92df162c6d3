package pagecomp_test

import (
	"testing"

	"github.com/fwojciec/pagecomp"
	"github.com/stretchr/testify/assert"
)

func TestNewFormRecord(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagecomp.FormRecord{Action: "/s", Method: "POST"}, pagecomp.NewFormRecord("/s", "post"))
	assert.Equal(t, pagecomp.FormRecord{Action: "", Method: "GET"}, pagecomp.NewFormRecord("", ""))
}

func TestComponents_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("keeps first occurrence of duplicates", func(t *testing.T) {
		t.Parallel()

		c := &pagecomp.Components{
			NavBar: []pagecomp.LinkRecord{
				{Kind: pagecomp.CategoryNavBar, Href: "/a", Text: "A"},
				{Kind: pagecomp.CategoryNavBar, Href: "/b", Text: "B"},
				{Kind: pagecomp.CategoryNavBar, Href: "/a", Text: "A"},
			},
			Header: []pagecomp.TextRecord{
				{Kind: pagecomp.CategoryHeader, Tag: "h1", Text: "Hi"},
				{Kind: pagecomp.CategoryHeader, Tag: "h2", Text: "Hi"},
			},
		}

		c.Normalize()

		assert.Equal(t, []pagecomp.LinkRecord{
			{Kind: pagecomp.CategoryNavBar, Href: "/a", Text: "A"},
			{Kind: pagecomp.CategoryNavBar, Href: "/b", Text: "B"},
		}, c.NavBar)
		assert.Len(t, c.Header, 2)
	})

	t.Run("same record in different categories is kept in each", func(t *testing.T) {
		t.Parallel()

		c := &pagecomp.Components{
			ButtonBlock: []pagecomp.MarkupRecord{{Kind: pagecomp.CategoryButtonBlock, HTML: "<div>x</div>"}},
			Modals:      []pagecomp.MarkupRecord{{Kind: pagecomp.CategoryModals, HTML: "<div>x</div>"}},
		}

		c.Normalize()

		assert.Len(t, c.ButtonBlock, 1)
		assert.Len(t, c.Modals, 1)
	})

	t.Run("normalizes form methods before deduplication", func(t *testing.T) {
		t.Parallel()

		c := &pagecomp.Components{
			Forms: []pagecomp.FormRecord{{Action: "/s", Method: "post"}, {Action: "/s", Method: "POST"}, {Action: "/t"}},
		}

		c.Normalize()

		assert.Equal(t, []pagecomp.FormRecord{{Action: "/s", Method: "POST"}, {Action: "/t", Method: "GET"}}, c.Forms)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		c := pagecomp.SampleSummary()[0].Components
		c.ImageGallery = append(c.ImageGallery, c.ImageGallery[0])

		c.Normalize()
		once := *c
		c.Normalize()

		assert.Equal(t, once, *c)
		assert.Len(t, c.ImageGallery, 1)
	})
}

func TestComponents_Count(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9, pagecomp.SampleSummary()[0].Components.Count())
	assert.Zero(t, (&pagecomp.Components{}).Count())
}

func TestComponents_Records(t *testing.T) {
	t.Parallel()

	c := pagecomp.SampleSummary()[0].Components

	for _, cat := range pagecomp.Categories {
		records := c.Records(cat)
		if assert.Len(t, records, 1, cat) {
			assert.Equal(t, cat, records[0].Category())
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "héll", pagecomp.Truncate("héllo", 4))
	assert.Equal(t, "héllo", pagecomp.Truncate("héllo", 5))
	assert.Equal(t, "héllo", pagecomp.Truncate("héllo", 10))
	assert.Equal(t, "héllo", pagecomp.Truncate("héllo", 0))
	assert.Equal(t, "", pagecomp.Truncate("", 3))
}
