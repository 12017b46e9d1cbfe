package hubstaff

import "hubsum/internal/model"

// TokenGrant is the token endpoint's response to a refresh grant.
type TokenGrant struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// activitiesResponse is the raw activities endpoint payload.
type activitiesResponse struct {
	Activities []model.Activity `json:"activities"`
	Pagination pagination       `json:"pagination"`
}

// pagination carries the cursor for the next page; 0 or absent means last page.
type pagination struct {
	NextPageStartID int64 `json:"next_page_start_id"`
}
