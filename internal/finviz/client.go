// Package finviz fetches the recent news table for a ticker from the FinViz
// quote page.
package finviz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
)

const (
	defaultBaseURL = "https://finviz.com/quote.ashx"

	// FinViz serves an empty page to clients without a browser user agent.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"

	defaultTimeout = 30 * time.Second
)

// ErrNoNews indicates the quote page has no news table, which FinViz serves
// for unknown tickers and tickers without coverage.
var ErrNoNews = errors.New("no news table found for ticker")

// FetchError indicates the quote page could not be retrieved.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client scrapes news rows from FinViz quote pages.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	log        zerolog.Logger
}

// NewClient creates a FinViz client. An empty baseURL selects the public
// FinViz endpoint.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		userAgent:  defaultUserAgent,
		log:        log.With().Str("client", "finviz").Logger(),
	}
}

// News fetches the quote page for ticker and extracts the news table rows in
// the source's native order: reverse-chronological, grouped by day, with the
// date token present only on each day's first row.
func (c *Client) News(ctx context.Context, ticker string) ([]models.RawNewsRow, error) {
	url := c.baseURL + "?t=" + strings.ToUpper(ticker)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	rows, err := parseNewsTable(doc)
	if err != nil {
		return nil, err
	}

	c.log.Debug().Str("ticker", ticker).Int("rows", len(rows)).Msg("Fetched news rows")
	return rows, nil
}

// parseNewsTable extracts raw rows from the page's #news-table element. Each
// row's first cell holds either "date time" or just "time"; the anchor holds
// the headline text and link.
func parseNewsTable(doc *goquery.Document) ([]models.RawNewsRow, error) {
	table := doc.Find("#news-table")
	if table.Length() == 0 {
		return nil, ErrNoNews
	}

	var rows []models.RawNewsRow
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		anchor := tr.Find("a").First()
		if anchor.Length() == 0 {
			return
		}
		headline := strings.TrimSpace(anchor.Text())
		link, _ := anchor.Attr("href")

		tokens := strings.Fields(tr.Find("td").First().Text())
		row := models.RawNewsRow{Headline: headline, Link: link}
		switch len(tokens) {
		case 1:
			row.TimeToken = tokens[0]
		case 2:
			row.DateToken = tokens[0]
			row.TimeToken = tokens[1]
		default:
			return
		}
		rows = append(rows, row)
	})

	if len(rows) == 0 {
		return nil, ErrNoNews
	}
	return rows, nil
}
