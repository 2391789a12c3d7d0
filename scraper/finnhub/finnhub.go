package finnhub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"market-mood/config"
	"market-mood/models"
	"market-mood/utils"
)

// maxBodyBytes caps how much of a response is read; a quote is tiny.
const maxBodyBytes = 1 << 20

// Client fetches a single quote from a Finnhub-compatible /quote endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	symbol     string
	logger     *utils.Logger
}

// New creates a Client from cfg. The request timeout bounds the whole
// exchange, including reading the body.
func New(cfg *config.Config, logger *utils.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.APIBaseURL,
		apiKey:     cfg.APIKey,
		symbol:     cfg.IndexSymbol,
		logger:     logger,
	}
}

// Symbol returns the ticker this client queries.
func (c *Client) Symbol() string {
	return c.symbol
}

// FetchQuote issues exactly one GET for the configured symbol. Every error it
// returns is a *FetchError.
func (c *Client) FetchQuote(ctx context.Context) (*models.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.quoteURL(), nil)
	if err != nil {
		return nil, &FetchError{
			Kind:    KindTransport,
			Message: fmt.Sprintf("API request error occurred: %v", err),
			Cause:   err,
		}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Info("[finnhub] Fetching quote for index: %s", c.symbol)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpStatusError(resp.StatusCode, body)
	}

	quote, err := decodeQuote(c.symbol, body)
	if err != nil {
		return nil, &FetchError{
			Kind:    KindDecode,
			Message: fmt.Sprintf("An unexpected error occurred: decode quote: %v", err),
			Cause:   err,
		}
	}

	c.logger.Debug("[finnhub] Quote %s: c=%v dp=%v", c.symbol, quote.CurrentPrice.Valid, quote.PercentChange.Valid)
	return quote, nil
}

// decodeQuote requires the body to be a JSON object. "c" and "dp" may be
// absent or null, but when present they must be JSON numbers.
func decodeQuote(symbol string, body []byte) (*models.Quote, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("quote body is not a JSON object")
	}

	quote := &models.Quote{Symbol: symbol}
	for key, dst := range map[string]*decimal.NullDecimal{
		"c":  &quote.CurrentPrice,
		"dp": &quote.PercentChange,
	} {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			continue
		}
		if !isJSONNumber(raw) {
			return nil, fmt.Errorf("field %q is not a number: %s", key, raw)
		}
		if err := dst.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
	}
	return quote, nil
}

func isJSONNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'))
}

func (c *Client) quoteURL() string {
	q := url.Values{}
	q.Set("symbol", c.symbol)
	q.Set("token", c.apiKey)
	return c.baseURL + "/quote?" + q.Encode()
}

// httpStatusError keeps the API's JSON error payload in the message when
// there is one.
func httpStatusError(status int, body []byte) *FetchError {
	msg := fmt.Sprintf("API HTTP error occurred: %d %s", status, http.StatusText(status))

	var details map[string]any
	if len(bytes.TrimSpace(body)) > 0 && json.Unmarshal(body, &details) == nil {
		msg = fmt.Sprintf("API HTTP error: %d %s - %v", status, http.StatusText(status), details)
	}

	return &FetchError{Kind: KindHTTPStatus, StatusCode: status, Message: msg}
}
