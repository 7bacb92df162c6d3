package pagecomp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/pagecomp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("folds header and footer into one group", func(t *testing.T) {
		t.Parallel()

		x := pagecomp.TextRecord{Kind: pagecomp.CategoryHeader, Tag: "h1", Text: "x"}
		y := pagecomp.TextRecord{Kind: pagecomp.CategoryFooter, Tag: "footer", Text: "y"}
		summary := pagecomp.PageSummary{{
			Name:       "a.mhtml",
			Components: &pagecomp.Components{Header: []pagecomp.TextRecord{x}, Footer: []pagecomp.TextRecord{y}},
		}}

		view := pagecomp.Aggregate(summary)

		require.Len(t, view, 1)
		g := view[0].Group(pagecomp.GroupHeaderFooter)
		require.NotNil(t, g)
		assert.Equal(t, 2, g.Count)
		assert.Equal(t, []pagecomp.Record{x, y}, g.Details)
	})

	t.Run("omits empty groups and keeps display order", func(t *testing.T) {
		t.Parallel()

		summary := pagecomp.PageSummary{{
			Name: "a.mhtml",
			Components: &pagecomp.Components{
				Modals: []pagecomp.MarkupRecord{{Kind: pagecomp.CategoryModals, HTML: "<div>m</div>"}},
				NavBar: []pagecomp.LinkRecord{{Kind: pagecomp.CategoryNavBar, Href: "/", Text: "Home"}},
			},
		}}

		view := pagecomp.Aggregate(summary)

		require.Len(t, view[0].Groups, 2)
		assert.Equal(t, pagecomp.GroupNavBar, view[0].Groups[0].Group)
		assert.Equal(t, pagecomp.GroupModal, view[0].Groups[1].Group)
		assert.Nil(t, view[0].Group(pagecomp.GroupForm))
		assert.Zero(t, view[0].Count(pagecomp.GroupForm))
	})

	t.Run("page without records has no groups", func(t *testing.T) {
		t.Parallel()

		view := pagecomp.Aggregate(pagecomp.PageSummary{{Name: "empty.mhtml", Components: &pagecomp.Components{}}})

		require.Len(t, view, 1)
		assert.Equal(t, "empty.mhtml", view[0].Name)
		assert.Empty(t, view[0].Groups)
	})

	t.Run("every category maps to a group", func(t *testing.T) {
		t.Parallel()

		for _, cat := range pagecomp.Categories {
			assert.NotEmpty(t, pagecomp.GroupOf(cat), cat)
		}
	})
}

func TestView_MarshalJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := pagecomp.EncodeJSON(&buf, pagecomp.Aggregate(pagecomp.SampleSummary()))

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, `"Header/Footer": {`)
	assert.Contains(t, output, `"count": 2`)
	assert.Contains(t, output, `"html": "<button>Click</button>"`)
	assert.Less(t, strings.Index(output, "Header/Footer"), strings.Index(output, "Navigation Bar"))
	assert.Less(t, strings.Index(output, "Form"), strings.Index(output, "Modal"))
}
