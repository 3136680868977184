package domain

import (
	"fmt"
	"strings"
)

// Metadata keys read from and written to a content item's side-metadata.
const (
	MetadataDiscussionURL = "discussion_url"
	MetadataAggregator    = "aggregator"
	MetadataExternalID    = "external_id"
	MetadataTopComment    = "top_comment"
	MetadataCommentCount  = "comment_count"
)

// ContentItem is the stored article/post a discussion belongs to.
type ContentItem struct {
	ID       string         `db:"id"`
	Platform *string        `db:"platform"`
	Metadata map[string]any `db:"metadata"`
}

// PlatformTag returns the declared platform tag or "".
func (c *ContentItem) PlatformTag() string {
	if c == nil || c.Platform == nil {
		return ""
	}
	return strings.TrimSpace(*c.Platform)
}

// DiscussionURL returns metadata.discussion_url or "".
func (c *ContentItem) DiscussionURL() string {
	if c == nil || c.Metadata == nil {
		return ""
	}
	s, _ := c.Metadata[MetadataDiscussionURL].(string)
	return strings.TrimSpace(s)
}

// AggregatorExternalID returns metadata.aggregator.external_id rendered as a string.
func (c *ContentItem) AggregatorExternalID() string {
	if c == nil || c.Metadata == nil {
		return ""
	}
	agg, ok := c.Metadata[MetadataAggregator].(map[string]any)
	if !ok {
		return ""
	}
	switch v := agg[MetadataExternalID].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return fmt.Sprintf("%.0f", v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// CloneMetadata returns a shallow copy of the metadata map, never nil.
func (c *ContentItem) CloneMetadata() map[string]any {
	out := make(map[string]any, len(c.Metadata)+2)
	for k, v := range c.Metadata {
		out[k] = v
	}
	return out
}
