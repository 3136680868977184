package html_parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"plain text":           {input: "  just   text \n here ", want: "just text here"},
		"entities":             {input: "Tom &amp; Jerry &#x27;quoted&#x27;", want: "Tom & Jerry 'quoted'"},
		"paragraph boundaries": {input: "first para<p>second para", want: "first para second para"},
		"inline tags":          {input: "This is a <i>test</i> paragraph.", want: "This is a test paragraph."},
		"anchor keeps text":    {input: `see <a href="https://x.com">the thread</a>`, want: "see the thread"},
		"escaped markup stays": {input: "use &lt;div&gt; here", want: "use <div> here"},
		"script dropped":       {input: "<p>Content</p><script>alert('x')</script>", want: "Content"},
		"empty":                {input: "   ", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clean(tc.input))
		})
	}
}

func TestCompact(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "a b", Compact("a   b", 10))
	})

	t.Run("long text truncated with ellipsis", func(t *testing.T) {
		got := Compact(strings.Repeat("x", 20), 10)
		assert.Equal(t, strings.Repeat("x", 9)+"…", got)
		assert.Equal(t, 10, utf8.RuneCountInString(got))
	})

	t.Run("default budget", func(t *testing.T) {
		got := Compact(strings.Repeat("word ", 200), 0)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), DefaultCompactBudget)
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("multibyte text is cut on rune boundaries", func(t *testing.T) {
		got := Compact(strings.Repeat("日本語", 10), 5)
		assert.Equal(t, "日本語日…", got)
	})
}
