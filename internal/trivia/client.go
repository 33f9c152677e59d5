package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultAPIURL      = "https://opentdb.com/api.php"
	defaultCategoryURL = "https://opentdb.com/api_category.php"

	// RequestTimeout bounds the wait for a provider response.
	RequestTimeout = 10 * time.Second

	defaultAmount = 10
)

// Provider status codes embedded in the response body, distinct from the
// HTTP status.
const (
	codeSuccess       = 0
	codeNoResults     = 1
	codeInvalidParam  = 2
	codeTokenNotFound = 3
	codeTokenEmpty    = 4
	codeRateLimit     = 5
)

// RawQuestion mirrors the Open Trivia DB question payload.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

type categoryResponse struct {
	TriviaCategories []Category `json:"trivia_categories"`
}

// Request describes one question fetch.
type Request struct {
	Amount     int
	Difficulty string // "easy", "medium" or "hard"
	Category   string // provider category id, "" for any
}

// Client fetches and normalizes questions from the Open Trivia Database.
type Client struct {
	httpClient  *http.Client
	apiURL      string
	categoryURL string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURLs overrides the provider endpoints.
func WithBaseURLs(api, category string) Option {
	return func(c *Client) {
		c.apiURL = api
		c.categoryURL = category
	}
}

// NewClient creates a Client with the default 10-second request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: RequestTimeout},
		apiURL:      defaultAPIURL,
		categoryURL: defaultCategoryURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchQuestions issues one request for multiple-choice questions and
// returns the normalized sequence. No retries are performed; retry is a
// user-level action.
func (c *Client) FetchQuestions(ctx context.Context, r Request) ([]Question, error) {
	if r.Amount <= 0 {
		r.Amount = defaultAmount
	}

	params := url.Values{}
	params.Set("amount", strconv.Itoa(r.Amount))
	params.Set("type", "multiple")
	if r.Difficulty != "" {
		params.Set("difficulty", r.Difficulty)
	}
	if r.Category != "" {
		params.Set("category", r.Category)
	}

	payload, err := c.get(ctx, c.apiURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, &RequestError{Err: fmt.Errorf("decode response: %w", err)}
	}

	switch resp.ResponseCode {
	case codeSuccess:
	case codeNoResults:
		return nil, ErrNoResults
	case codeInvalidParam:
		return nil, ErrInvalidParameter
	case codeRateLimit:
		return nil, ErrRateLimited
	default:
		// Token codes and anything unrecognized surface generically.
		return nil, &ProviderError{Code: resp.ResponseCode}
	}

	if len(resp.Results) == 0 {
		return nil, ErrEmptyResults
	}

	questions := make([]Question, 0, len(resp.Results))
	for i, raw := range resp.Results {
		questions = append(questions, buildQuestion(i, raw))
	}
	return questions, nil
}

// FetchCategories returns the provider's category list.
func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	payload, err := c.get(ctx, c.categoryURL)
	if err != nil {
		return nil, err
	}

	var resp categoryResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, &RequestError{Err: fmt.Errorf("decode categories: %w", err)}
	}
	return resp.TriviaCategories, nil
}

// Categories returns the provider's categories, falling back to the
// built-in default set on any failure.
func (c *Client) Categories(ctx context.Context) []Category {
	cats, err := c.FetchCategories(ctx)
	if err != nil || len(cats) == 0 {
		return DefaultCategories()
	}
	return cats
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return nil, ErrTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, &RequestError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	return buf, nil
}
