// ABOUTME: Authenticated client for the Reddit comment API
// ABOUTME: Loads a submission's forest and expands top-level "more" placeholders once
package reddit_api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"discussion-fetcher/config"
	"discussion-fetcher/domain"
	"discussion-fetcher/utils"
)

const (
	maxBodyBytes        = 8 << 20
	maxMoreChildrenIDs  = 100
	moreChildrenPath    = "/api/morechildren"
	submissionPathFmt   = "/comments/%s"
	defaultMoreChildren = 100
)

type Client struct {
	baseURL      string
	httpClient   *http.Client
	moreChildren int
}

// NewClient builds an OAuth2 client. A username switches from the app-only
// client-credentials grant to the password grant.
func NewClient(cfg config.RedditConfig, userAgent string) (*Client, error) {
	if !cfg.Configured() {
		return nil, domain.ErrRedditClientNotConfigured
	}

	base := utils.NewHTTPClient(cfg.RequestTimeout, userAgent)
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	var httpClient *http.Client
	if cfg.Username != "" {
		conf := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL, AuthStyle: oauth2.AuthStyleInHeader},
		}
		src := &passwordTokenSource{ctx: ctx, conf: conf, username: cfg.Username, password: cfg.Password}
		httpClient = oauth2.NewClient(ctx, oauth2.ReuseTokenSource(nil, src))
	} else {
		conf := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		httpClient = conf.Client(ctx)
	}
	httpClient.Timeout = cfg.RequestTimeout

	return NewClientWithHTTP(cfg.APIBaseURL, httpClient, cfg.MoreChildrenLimit), nil
}

// NewClientWithHTTP skips authentication; tests point it at a stub server.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, moreChildrenLimit int) *Client {
	if moreChildrenLimit <= 0 || moreChildrenLimit > maxMoreChildrenIDs {
		moreChildrenLimit = defaultMoreChildren
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   httpClient,
		moreChildren: moreChildrenLimit,
	}
}

type passwordTokenSource struct {
	ctx      context.Context
	conf     *oauth2.Config
	username string
	password string
}

func (s *passwordTokenSource) Token() (*oauth2.Token, error) {
	return s.conf.PasswordCredentialsToken(s.ctx, s.username, s.password)
}

// GetSubmission loads the submission with top-sorted comments and expands its
// top-level "more" placeholders in one extra request each. Deeper placeholders
// stay in the forest untouched.
func (c *Client) GetSubmission(ctx context.Context, id string) (*Submission, error) {
	q := url.Values{}
	q.Set("sort", "top")
	q.Set("raw_json", "1")
	endpoint := c.baseURL + fmt.Sprintf(submissionPathFmt, url.PathEscape(id)) + "?" + q.Encode()

	var listings []listing
	if err := c.getJSON(ctx, endpoint, &listings); err != nil {
		return nil, err
	}
	if len(listings) < 1 || len(listings[0].Data.Children) == 0 || listings[0].Data.Children[0].Kind != kindLink {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrSubmissionNotFound)
	}

	post := listings[0].Data.Children[0].Data
	sub := &Submission{
		ID:          post.ID,
		Name:        post.Name,
		Permalink:   post.Permalink,
		NumComments: post.NumComments,
	}
	if sub.Name == "" {
		sub.Name = kindLink + "_" + post.ID
	}
	if len(listings) > 1 {
		sub.Comments = convertThings(listings[1].Data.Children)
	}

	expanded, err := c.expandTopLevel(ctx, sub.Name, sub.Comments)
	if err != nil {
		return nil, err
	}
	sub.Comments = expanded
	return sub, nil
}

func (c *Client) expandTopLevel(ctx context.Context, linkName string, nodes []*Comment) ([]*Comment, error) {
	out := make([]*Comment, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsMore || len(n.MoreChildren) == 0 {
			out = append(out, n)
			continue
		}
		children, err := c.moreChildrenFor(ctx, linkName, n.MoreChildren)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}

// moreChildrenFor fetches the placeholder's ids and rebuilds them into a forest
// rooted at linkName.
func (c *Client) moreChildrenFor(ctx context.Context, linkName string, ids []string) ([]*Comment, error) {
	if len(ids) > c.moreChildren {
		ids = ids[:c.moreChildren]
	}

	q := url.Values{}
	q.Set("api_type", "json")
	q.Set("link_id", linkName)
	q.Set("children", strings.Join(ids, ","))
	q.Set("sort", "top")
	q.Set("raw_json", "1")

	var resp moreChildrenResponse
	if err := c.getJSON(ctx, c.baseURL+moreChildrenPath+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.JSON.Errors) > 0 {
		return nil, &APIError{StatusCode: http.StatusBadRequest, URL: moreChildrenPath, Message: fmt.Sprint(resp.JSON.Errors[0]...)}
	}

	byName := make(map[string]*Comment)
	var roots []*Comment
	for _, t := range resp.JSON.Data.Things {
		if t.Kind != kindComment && t.Kind != kindMore {
			continue
		}
		node := t.toComment()
		if node.Name == "" {
			node.Name = kindComment + "_" + node.ID
		}
		if parent, ok := byName[node.ParentID]; ok {
			parent.Replies = append(parent.Replies, node)
		} else if node.ParentID == linkName {
			roots = append(roots, node)
		}
		if !node.IsMore {
			byName[node.Name] = node
		}
	}
	return roots, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build reddit request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read reddit response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, URL: req.URL.Path, Message: apiMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode reddit response: %w", err)
	}
	return nil
}

func apiMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
	}
	if json.Unmarshal(body, &e) == nil {
		if e.Reason != "" {
			return e.Reason
		}
		return e.Message
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
