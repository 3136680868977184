package url_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discussion-fetcher/domain"
)

func TestExtractURLs(t *testing.T) {
	tests := map[string]struct {
		text string
		want []string
	}{
		"plain":         {text: "see https://example.com/a.", want: []string{"https://example.com/a"}},
		"markdown link": {text: "read [the paper](https://arxiv.org/abs/1234) now", want: []string{"https://arxiv.org/abs/1234"}},
		"multiple":      {text: "http://a.com, and https://b.com/x?y=1!", want: []string{"http://a.com", "https://b.com/x?y=1"}},
		"no urls":       {text: "nothing to see here", want: []string{}},
		"quoted":        {text: `he said "https://q.com/z"`, want: []string{"https://q.com/z"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractURLs(tc.text))
		})
	}
}

func TestBuildCommentLinks(t *testing.T) {
	comments := []domain.Comment{
		{CommentID: "1", Text: "source: https://Example.com/paper/ and http://example.com/paper"},
		{CommentID: "2", Text: "also https://example.com/paper and https://other.org/x"},
	}
	titles := map[string]string{"https://example.com/paper": "The Paper"}

	links := BuildCommentLinks(comments, titles)

	require.Len(t, links, 2)
	assert.Equal(t, domain.Link{
		URL:       "https://example.com/paper",
		Source:    domain.LinkSourceComment,
		Title:     "The Paper",
		CommentID: "1",
	}, links[0])
	assert.Equal(t, "https://other.org/x", links[1].URL)
	assert.Equal(t, "2", links[1].CommentID)
	assert.Empty(t, links[1].Title)
}

func TestBuildCommentLinks_EmptyIsNotNil(t *testing.T) {
	links := BuildCommentLinks(nil, nil)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}
