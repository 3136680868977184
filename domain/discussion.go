package domain

import "time"

// Status is the outcome recorded for one fetch.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPartial   Status = "partial"
	StatusFailed    Status = "failed"
)

// Mode describes what kind of discussion data a payload carries.
type Mode string

const (
	ModeComments       Mode = "comments"
	ModeDiscussionList Mode = "discussion_list"
	ModeNone           Mode = "none"
)

// LinkSource tells where a payload link was found.
type LinkSource string

const (
	LinkSourceComment         LinkSource = "comment"
	LinkSourceDiscussionGroup LinkSource = "discussion_group"
)

// Comment is one normalized comment. It only lives inside a payload.
type Comment struct {
	CommentID   string     `json:"comment_id"`
	ParentID    *string    `json:"parent_id"`
	Author      string     `json:"author"`
	Text        string     `json:"text"`
	CompactText string     `json:"compact_text"`
	Depth       int        `json:"depth"`
	CreatedAt   *time.Time `json:"created_at"`
	SourceURL   string     `json:"source_url"`
}

type GroupItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// DiscussionGroup is a labeled list of links ("More", "Forums", ...).
type DiscussionGroup struct {
	Label string      `json:"label"`
	Items []GroupItem `json:"items"`
}

type Link struct {
	URL        string     `json:"url"`
	Source     LinkSource `json:"source"`
	Title      string     `json:"title,omitempty"`
	CommentID  string     `json:"comment_id,omitempty"`
	GroupLabel string     `json:"group_label,omitempty"`
}

// Stats holds fetch counters. Optional fields are platform specific.
type Stats struct {
	FetchedCount         int  `json:"fetched_count"`
	Cap                  int  `json:"cap"`
	CapReached           bool `json:"cap_reached"`
	DeclaredCommentCount *int `json:"declared_comment_count,omitempty"`
	TotalSeen            *int `json:"total_seen,omitempty"`
	GroupCount           *int `json:"group_count,omitempty"`
	ItemCount            *int `json:"item_count,omitempty"`
}

// DiscussionPayload is the platform independent result of one fetch.
type DiscussionPayload struct {
	Mode             Mode              `json:"mode"`
	SourceURL        *string           `json:"source_url"`
	DiscussionGroups []DiscussionGroup `json:"discussion_groups"`
	Comments         []Comment         `json:"comments"`
	CompactComments  []string          `json:"compact_comments"`
	Links            []Link            `json:"links"`
	Stats            Stats             `json:"stats"`
}

// NewPayload returns an empty payload whose lists encode as [] rather than null.
func NewPayload(mode Mode, sourceURL string, cap int) *DiscussionPayload {
	p := &DiscussionPayload{
		Mode:             mode,
		DiscussionGroups: []DiscussionGroup{},
		Comments:         []Comment{},
		CompactComments:  []string{},
		Links:            []Link{},
		Stats:            Stats{Cap: cap},
	}
	if sourceURL != "" {
		p.SourceURL = &sourceURL
	}
	return p
}

// SetComments replaces the comments and keeps compact_comments parallel to them.
func (p *DiscussionPayload) SetComments(comments []Comment) {
	if comments == nil {
		comments = []Comment{}
	}
	p.Comments = comments
	p.CompactComments = make([]string, len(comments))
	for i, c := range comments {
		p.CompactComments[i] = c.CompactText
	}
	p.Stats.FetchedCount = len(comments)
}

// FetchOutcome is what a fetcher hands back on success.
type FetchOutcome struct {
	Status       Status
	ErrorMessage string
	Payload      *DiscussionPayload
}

// DiscussionRecord is the single stored discussion row for a content item.
type DiscussionRecord struct {
	ID           string             `db:"id"`
	ContentID    string             `db:"content_id"`
	Platform     *string            `db:"platform"`
	Status       Status             `db:"status"`
	Data         *DiscussionPayload `db:"discussion_data"`
	ErrorMessage *string            `db:"error_message"`
	FetchedAt    *time.Time         `db:"fetched_at"`
	CreatedAt    time.Time          `db:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at"`
}

// FetchResult is returned to whoever asked for the fetch.
type FetchResult struct {
	Success      bool   `json:"success"`
	Status       Status `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Retryable    bool   `json:"retryable"`
}
