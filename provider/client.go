package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"forkful/models"
)

const (
	// DefaultLimit is the result count sent upstream when the caller does
	// not ask for one.
	DefaultLimit = 20
	// MaxLimit is the hard ceiling on results requested upstream.
	MaxLimit = 50
)

// UpstreamError is a non-2xx response from the recipe provider. The raw
// body is preserved so handlers can surface it verbatim.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Body)
}

// Client talks to the recipe provider. The API key rides on every call as
// a query parameter and an x-api-key header.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Request pairs the fully-resolved upstream URL, which doubles as the
// cache signature, with the fetch that performs the call. url.Values
// encodes keys in sorted order, so identical logical requests always
// produce the same signature.
type Request struct {
	Signature string
	Fetch     func(ctx context.Context) ([]byte, error)
}

// Search builds a complex search request. Empty optional filters are left
// off the URL; the defaults actually sent upstream (result count, recipe
// information flag) are always part of the signature.
func (c *Client) Search(q models.SearchQuery) Request {
	params := url.Values{}
	params.Set("apiKey", c.APIKey)
	params.Set("query", q.Term)
	params.Set("number", strconv.Itoa(DefaultLimit))
	params.Set("addRecipeInformation", "true")
	if q.Diet != "" {
		params.Set("diet", q.Diet)
	}
	if q.Cuisine != "" {
		params.Set("cuisine", q.Cuisine)
	}
	if q.MaxReadyTime > 0 {
		params.Set("maxReadyTime", strconv.Itoa(q.MaxReadyTime))
	}
	return c.request("/recipes/complexSearch", params)
}

// GetByID builds a single-recipe detail request.
func (c *Client) GetByID(id string) Request {
	params := url.Values{}
	params.Set("apiKey", c.APIKey)
	return c.request("/recipes/"+url.PathEscape(id)+"/information", params)
}

// FindByIngredients builds a find-by-ingredients request. Ranking 1
// maximizes used ingredients, 2 minimizes missing ones; anything else
// falls back to 1.
func (c *Client) FindByIngredients(ingredients []string, limit, ranking int) Request {
	if ranking != 2 {
		ranking = 1
	}
	params := url.Values{}
	params.Set("apiKey", c.APIKey)
	params.Set("ingredients", strings.Join(ingredients, ","))
	params.Set("number", strconv.Itoa(ClampLimit(limit)))
	params.Set("ranking", strconv.Itoa(ranking))
	return c.request("/recipes/findByIngredients", params)
}

// ClampLimit resolves a requested result count to [1, MaxLimit], using
// DefaultLimit when the caller passed nothing usable.
func ClampLimit(n int) int {
	if n <= 0 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

func (c *Client) request(path string, params url.Values) Request {
	full := c.BaseURL + path + "?" + params.Encode()
	return Request{
		Signature: full,
		Fetch: func(ctx context.Context) ([]byte, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
			if err != nil {
				return nil, err
			}
			req.Header.Set("x-api-key", c.APIKey)

			resp, err := c.HTTP.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
			}
			return body, nil
		},
	}
}
