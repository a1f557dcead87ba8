package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseBold(t *testing.T) {
	got := Response("**bold** text")
	require.Equal(t, "<p><strong>bold</strong> text</p>", got)
}

func TestResponseHeading(t *testing.T) {
	got := Response("### Title")
	require.Equal(t, "<h1>Title</h1>", got)
}

func TestResponseList(t *testing.T) {
	got := Response("Intro\n- one\n- two")
	require.Equal(t, "<p>Intro</p><ul><li>one</li><li>two</li></ul>", got)
}

func TestResponseEmpty(t *testing.T) {
	require.Equal(t, "", Response(""))
}

func TestResponseSingleParagraph(t *testing.T) {
	got := Response("line one\nline two")
	require.Equal(t, "<p>line one<br>line two</p>", got)
}

func TestResponseMultipleBlocks(t *testing.T) {
	got := Response("first\n\nsecond")
	require.Equal(t, "<p>first</p><p>second</p>", got)
}

func TestResponseHeadingInsideBlock(t *testing.T) {
	got := Response("intro\n### Steps\noutro")
	require.Equal(t, "<p>intro</p><h1>Steps</h1><p>outro</p>", got)
}

func TestResponseListSkipsBlankLines(t *testing.T) {
	got := Response("Plan\n- a\n   \n- b")
	require.Equal(t, "<p>Plan</p><ul><li>a</li><li>b</li></ul>", got)
}

func TestResponseBoldInsideHeadingAndItems(t *testing.T) {
	got := Response("### **Hot** fixes\n- restart the **router**")
	require.Equal(t, "<h1><strong>Hot</strong> fixes</h1><ul><li>restart the <strong>router</strong></li></ul>", got)
}

func TestResponseUnmatchedBoldMarker(t *testing.T) {
	got := Response("**open only")
	require.Equal(t, "<p>**open only</p>", got)
}

func TestResponseOddMarkerCount(t *testing.T) {
	// Three markers: the first pair matches, the trailing one stays.
	got := Response("**a** and **b")
	require.Equal(t, "<p><strong>a</strong> and **b</p>", got)
}

func TestResponseEscapesHTML(t *testing.T) {
	got := Response("<script>alert(1)</script>")
	require.Equal(t, "<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>", got)
}

func TestResponseEscapesInsideList(t *testing.T) {
	got := Response("Options\n- a < b\n- c & d")
	require.Equal(t, "<p>Options</p><ul><li>a &lt; b</li><li>c &amp; d</li></ul>", got)
}

func TestResponseDeterministic(t *testing.T) {
	const in = "### Summary\n\nBilling is due.\n- pay online\n- pay in store\n\nThanks!"
	first := Response(in)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Response(in))
	}
	require.Equal(t,
		"<h1>Summary</h1><p>Billing is due.</p><ul><li>pay online</li><li>pay in store</li></ul><p>Thanks!</p>",
		first)
}
