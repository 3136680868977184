package reddit_api

import (
	"bytes"
	"encoding/json"
)

const (
	kindComment = "t1"
	kindLink    = "t3"
	kindMore    = "more"
)

// Submission is a post together with its comment forest.
type Submission struct {
	ID          string
	Name        string
	Permalink   string
	NumComments int
	Comments    []*Comment
}

// Comment is one node of the forest. Placeholder nodes have IsMore set and carry
// the ids they stand for in MoreChildren.
type Comment struct {
	ID           string
	Name         string
	ParentID     string
	Author       string
	Body         string
	BodyHTML     string
	CreatedUTC   float64
	Permalink    string
	Replies      []*Comment
	IsMore       bool
	MoreChildren []string
}

type listing struct {
	Kind string `json:"kind"`
	Data struct {
		Children []thing `json:"children"`
	} `json:"data"`
}

type thing struct {
	Kind string    `json:"kind"`
	Data thingData `json:"data"`
}

type thingData struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ParentID    string   `json:"parent_id"`
	Author      string   `json:"author"`
	Body        string   `json:"body"`
	BodyHTML    string   `json:"body_html"`
	CreatedUTC  float64  `json:"created_utc"`
	Permalink   string   `json:"permalink"`
	NumComments int      `json:"num_comments"`
	Children    []string `json:"children"`
	Replies     replies  `json:"replies"`
}

// replies is either "" or a nested listing.
type replies struct {
	Listing *listing
}

func (r *replies) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		r.Listing = nil
		return nil
	}
	var l listing
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	r.Listing = &l
	return nil
}

type moreChildrenResponse struct {
	JSON struct {
		Errors [][]any `json:"errors"`
		Data   struct {
			Things []thing `json:"things"`
		} `json:"data"`
	} `json:"json"`
}

func (t thing) toComment() *Comment {
	c := &Comment{
		ID:         t.Data.ID,
		Name:       t.Data.Name,
		ParentID:   t.Data.ParentID,
		Author:     t.Data.Author,
		Body:       t.Data.Body,
		BodyHTML:   t.Data.BodyHTML,
		CreatedUTC: t.Data.CreatedUTC,
		Permalink:  t.Data.Permalink,
	}
	if t.Kind == kindMore {
		c.IsMore = true
		c.MoreChildren = t.Data.Children
		return c
	}
	if t.Data.Replies.Listing != nil {
		c.Replies = convertThings(t.Data.Replies.Listing.Data.Children)
	}
	return c
}

func convertThings(things []thing) []*Comment {
	out := make([]*Comment, 0, len(things))
	for _, t := range things {
		if t.Kind != kindComment && t.Kind != kindMore {
			continue
		}
		out = append(out, t.toComment())
	}
	return out
}
