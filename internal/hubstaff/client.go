// Package hubstaff provides a client for the Hubstaff account and v2 REST APIs.
package hubstaff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hubsum/internal/model"
)

const (
	defaultAccountURL = "https://account.hubstaff.com"
	defaultAPIURL     = "https://api.hubstaff.com/v2"
	requestTimeout    = 30 * time.Second
	maxBodySize       = 8 << 20 // 8 MB

	// pageLimit is the maximum page size the activities endpoint accepts.
	pageLimit = 500
	// defaultPageDelay is the pause between successive page requests,
	// per Hubstaff's rate-limit guidance.
	defaultPageDelay = 400 * time.Millisecond
)

// ErrUnauthorized indicates the access token is expired or invalid.
var ErrUnauthorized = errors.New("hubstaff: unauthorized (access token expired or invalid)")

// Client talks to the Hubstaff token and activities endpoints.
type Client struct {
	accountURL string
	apiURL     string
	pageDelay  time.Duration
	http       *http.Client
}

// NewClient creates a client pointed at the production Hubstaff endpoints.
func NewClient() *Client {
	return &Client{
		accountURL: defaultAccountURL,
		apiURL:     defaultAPIURL,
		pageDelay:  defaultPageDelay,
		http:       &http.Client{},
	}
}

// RefreshToken exchanges a refresh token for a new access token.
// Hubstaff rotates the refresh token on every grant; the rotated token is
// returned in the grant but never persisted here — each run authenticates
// with the originally configured refresh token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (TokenGrant, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.accountURL+"/access_tokens", strings.NewReader(form.Encode()))
	if err != nil {
		return TokenGrant{}, fmt.Errorf("hubstaff: creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return TokenGrant{}, fmt.Errorf("hubstaff: token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return TokenGrant{}, fmt.Errorf("hubstaff: reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return TokenGrant{}, fmt.Errorf("hubstaff: refreshing token: status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var grant TokenGrant
	if err := json.Unmarshal(body, &grant); err != nil {
		return TokenGrant{}, fmt.Errorf("hubstaff: parsing token response: %w", err)
	}
	return grant, nil
}

// ActivityPager lazily walks the activities endpoint one page at a time.
// The cursor for each page comes from the previous response, so pages are
// always fetched sequentially.
type ActivityPager struct {
	c           *Client
	accessToken string
	orgID       string
	start, stop time.Time
	nextStartID int64
	started     bool
	done        bool
}

// Activities returns a pager over the organization's activities in [start, stop).
// Each call returns a fresh pager positioned at the first page.
func (c *Client) Activities(accessToken, orgID string, start, stop time.Time) *ActivityPager {
	return &ActivityPager{
		c:           c,
		accessToken: accessToken,
		orgID:       orgID,
		start:       start,
		stop:        stop,
	}
}

// Done reports whether the pager has returned its last page.
func (p *ActivityPager) Done() bool {
	return p.done
}

// Next fetches the next page of activities. Pages after the first are
// preceded by the client's inter-page pause. A failed page fetch ends the
// sequence; there is no partial-result recovery.
func (p *ActivityPager) Next(ctx context.Context) ([]model.Activity, error) {
	if p.done {
		return nil, nil
	}
	if p.started && p.c.pageDelay > 0 {
		time.Sleep(p.c.pageDelay)
	}
	p.started = true

	page, next, err := p.c.fetchPage(ctx, p.accessToken, p.orgID, p.start, p.stop, p.nextStartID)
	if err != nil {
		p.done = true
		return nil, err
	}

	p.nextStartID = next
	if next == 0 {
		p.done = true
	}
	return page, nil
}

// NextStartID returns the cursor the next page will be fetched from,
// or 0 when the sequence is exhausted.
func (p *ActivityPager) NextStartID() int64 {
	return p.nextStartID
}

// PageFunc is called after each fetched page with the page size and the
// cursor for the following page (0 on the last page).
type PageFunc func(fetched int, nextID int64)

// FetchAllActivities drains a pager over [start, stop), returning every
// activity in page order.
func (c *Client) FetchAllActivities(ctx context.Context, accessToken, orgID string, start, stop time.Time, onPage PageFunc) ([]model.Activity, error) {
	pager := c.Activities(accessToken, orgID, start, stop)

	var all []model.Activity
	for !pager.Done() {
		page, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if onPage != nil {
			onPage(len(page), pager.NextStartID())
		}
	}
	return all, nil
}

// fetchPage performs one authenticated GET against the activities endpoint.
func (c *Client) fetchPage(ctx context.Context, accessToken, orgID string, start, stop time.Time, startID int64) ([]model.Activity, int64, error) {
	q := url.Values{
		"time_slot[start]": {start.UTC().Format(time.RFC3339)},
		"time_slot[stop]":  {stop.UTC().Format(time.RFC3339)},
		"page_limit":       {strconv.Itoa(pageLimit)},
	}
	if startID > 0 {
		q.Set("page_start_id", strconv.FormatInt(startID, 10))
	}
	endpoint := fmt.Sprintf("%s/organizations/%s/activities?%s", c.apiURL, url.PathEscape(orgID), q.Encode())

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("hubstaff: creating activities request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("hubstaff: activities request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, 0, fmt.Errorf("hubstaff: reading activities response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, 0, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, 0, fmt.Errorf("hubstaff: fetching activities: status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var ar activitiesResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, 0, fmt.Errorf("hubstaff: parsing activities: %w", err)
	}
	return ar.Activities, ar.Pagination.NextPageStartID, nil
}
