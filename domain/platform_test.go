package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPlatform(t *testing.T) {
	tests := map[string]struct {
		tag  string
		url  string
		want Platform
	}{
		"explicit tag wins over url":        {tag: "Reddit", url: "https://news.ycombinator.com/item?id=1", want: PlatformReddit},
		"tag is case insensitive":           {tag: "TECHMEME", want: PlatformTechmeme},
		"hn alias":                          {tag: "hn", want: PlatformHackerNews},
		"hn item url":                       {url: "https://news.ycombinator.com/item?id=4242", want: PlatformHackerNews},
		"hn front page is not an item":      {url: "https://news.ycombinator.com/news", want: PlatformUnsupported},
		"reddit url":                        {url: "https://old.reddit.com/r/golang/comments/abc/x/", want: PlatformReddit},
		"reddit short link":                 {url: "https://redd.it/abc123", want: PlatformReddit},
		"techmeme url":                      {url: "https://www.techmeme.com/250101/p12#a250101p12", want: PlatformTechmeme},
		"scheme-less url":                   {url: "news.ycombinator.com/item?id=9", want: PlatformHackerNews},
		"lookalike hn host":                 {url: "https://notycombinator.com/item?id=9", want: PlatformUnsupported},
		"lookalike reddit host":             {url: "https://www.notreddit.com/r/x/comments/abc/", want: PlatformUnsupported},
		"reddit host as subdomain":          {url: "https://reddit.com.example.org/r/x/comments/abc/", want: PlatformUnsupported},
		"lookalike techmeme host":           {url: "https://faketechmeme.com/250101/p12", want: PlatformUnsupported},
		"bare reddit host":                  {url: "https://reddit.com/r/golang/comments/abc/x/", want: PlatformReddit},
		"unknown tag falls back to url":     {tag: "unknown_x", url: "https://example.com/post", want: PlatformUnsupported},
		"nothing to go on":                  {want: PlatformUnsupported},
		"unknown host":                      {url: "https://lobste.rs/s/abc", want: PlatformUnsupported},
		"partial tag match is not accepted": {tag: "reddit.com", url: "https://example.com", want: PlatformUnsupported},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyPlatform(tc.tag, tc.url))
		})
	}
}

func TestContentItem_MetadataAccessors(t *testing.T) {
	platform := " techmeme "
	item := &ContentItem{
		ID:       "c1",
		Platform: &platform,
		Metadata: map[string]any{
			"discussion_url": " https://www.techmeme.com/250101/p12 ",
			"aggregator":     map[string]any{"external_id": float64(250101)},
		},
	}

	assert.Equal(t, "techmeme", item.PlatformTag())
	assert.Equal(t, "https://www.techmeme.com/250101/p12", item.DiscussionURL())
	assert.Equal(t, "250101", item.AggregatorExternalID())

	var empty *ContentItem
	assert.Empty(t, empty.PlatformTag())
	assert.Empty(t, empty.DiscussionURL())
}

func TestDiscussionPayload_SetComments(t *testing.T) {
	p := NewPayload(ModeComments, "https://example.com", 5)
	p.SetComments([]Comment{{CommentID: "1", CompactText: "a"}, {CommentID: "2", CompactText: "b"}})

	assert.Equal(t, []string{"a", "b"}, p.CompactComments)
	assert.Equal(t, 2, p.Stats.FetchedCount)
	assert.Equal(t, 5, p.Stats.Cap)
	if assert.NotNil(t, p.SourceURL) {
		assert.Equal(t, "https://example.com", *p.SourceURL)
	}

	none := NewPayload(ModeNone, "", 5)
	assert.Nil(t, none.SourceURL)
	assert.NotNil(t, none.Links)
}
