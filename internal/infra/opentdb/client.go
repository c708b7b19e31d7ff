// Package opentdb implements a client for the Open Trivia Database HTTP API.
package opentdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/domain/entities"
)

const (
	categoriesPath = "/api_category.php"
	questionsPath  = "/api.php"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrResponseCode     = errors.New("provider rejected the request")
	ErrMalformedBody    = errors.New("malformed response body")
)

// ResponseCode is the status code the provider embeds into question responses.
type ResponseCode int

const (
	CodeSuccess          ResponseCode = 0
	CodeNoResults        ResponseCode = 1
	CodeInvalidParameter ResponseCode = 2
	CodeTokenNotFound    ResponseCode = 3
	CodeTokenEmpty       ResponseCode = 4
	CodeRateLimit        ResponseCode = 5
)

func (c ResponseCode) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeNoResults:
		return "no results"
	case CodeInvalidParameter:
		return "invalid parameter"
	case CodeTokenNotFound:
		return "token not found"
	case CodeTokenEmpty:
		return "token empty"
	case CodeRateLimit:
		return "rate limit"
	default:
		return "code " + strconv.Itoa(int(c))
	}
}

// Client fetches categories and questions from the provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the provider rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type categoriesResponse struct {
	TriviaCategories []entities.Category `json:"trivia_categories"`
}

type questionsResponse struct {
	ResponseCode ResponseCode        `json:"response_code"`
	Results      []entities.Question `json:"results"`
}

// GetCategories returns the provider's category list in provider order.
func (c *Client) GetCategories(ctx context.Context) ([]entities.Category, error) {
	var resp categoriesResponse
	if err := c.get(ctx, categoriesPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	if resp.TriviaCategories == nil {
		return nil, fmt.Errorf("get categories: %w: missing trivia_categories", ErrMalformedBody)
	}

	return resp.TriviaCategories, nil
}

// GetQuestions returns up to amount questions of the given category.
// entities.CategoryAny leaves the category unrestricted.
func (c *Client) GetQuestions(ctx context.Context, categoryID, amount int) ([]entities.Question, error) {
	params := url.Values{}
	params.Set("amount", strconv.Itoa(amount))
	if categoryID != entities.CategoryAny {
		params.Set("category", strconv.Itoa(categoryID))
	}

	var resp questionsResponse
	if err := c.get(ctx, questionsPath, params, &resp); err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}

	if resp.ResponseCode != CodeSuccess {
		return nil, fmt.Errorf("get questions: %w: %s", ErrResponseCode, resp.ResponseCode)
	}

	return resp.Results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	c.logger.Debug("trivia request completed",
		zap.String("path", path),
		zap.String("query", params.Encode()),
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	return nil
}
