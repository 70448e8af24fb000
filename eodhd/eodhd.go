// Package eodhd fetches daily stock prices from eodhd.com.
package eodhd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/etnz/stockfolio/date"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the root of the EODHD API.
const DefaultBaseURL = "https://eodhd.com/api"

// Client queries the EODHD API.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the EODHD API. Responses are cached in cacheDir
// for the day, os.TempDir() if empty.
func NewClient(apiKey, cacheDir string) *Client {
	if cacheDir == "" {
		cacheDir = os.TempDir()
	}
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: newDailyCachingClient(cacheDir),
	}
}

// FetchStock returns a stock called name with the daily close prices of ticker over r, bounds included.
//
// The EODHD ticker format is "SYMBOL.EXCHANGE", e.g. "MCD.US".
func (c *Client) FetchStock(ctx context.Context, name, ticker string, r date.Range) (*stockfolio.Stock, error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json&from=2024-01-01&to=2024-12-31
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	},
	q := url.Values{}
	q.Set("api_token", c.APIKey)
	q.Set("fmt", "json")
	q.Set("from", r.From.String())
	q.Set("to", r.To.String())
	addr := fmt.Sprintf("%s/eod/%s?%s", c.BaseURL, url.PathEscape(ticker), q.Encode())

	type Info struct {
		Date  date.Date       `json:"date"`
		Close decimal.Decimal `json:"close"`
	}

	var content []Info
	if err := jwget(ctx, c.HTTPClient, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch %s prices: %w", ticker, err)
	}

	prices := make(map[date.Date]float64, len(content))
	for _, info := range content {
		prices[info.Date] = info.Close.InexactFloat64()
	}
	return stockfolio.NewStock(name, prices)
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
