package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dude333/histquote"
	"github.com/pkg/errors"
)

// Defaults for the chart API.
const (
	DefaultBaseURL = "https://api.iextrading.com/1.0"
	DefaultRange   = "5y"
	DefaultTimeout = 30 * time.Second
)

// ChartFetch downloads daily price history from an IEX style
// chart endpoint: <base>/stock/<symbol>/chart/<range>.
type ChartFetch struct {
	http    *HTTPFetch
	baseURL string
	rng     string
	log     histquote.Logger
}

//
// NewChartFetch returns a new instance of *ChartFetch
//
func NewChartFetch(log histquote.Logger, baseURL, rng string, timeout time.Duration) (*ChartFetch, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !histquote.IsURL(baseURL) {
		return nil, fmt.Errorf("invalid base url: %s", baseURL)
	}
	if rng == "" {
		rng = DefaultRange
	}
	return &ChartFetch{
		http:    NewHTTP(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
		rng:     rng,
		log:     log,
	}, nil
}

// URL returns the chart address for 'symbol'. The symbol is escaped but
// otherwise used as typed, so an empty symbol yields an empty path segment.
func (c ChartFetch) URL(symbol string) string {
	return fmt.Sprintf("%s/stock/%s/chart/%s",
		c.baseURL, url.PathEscape(symbol), url.PathEscape(c.rng))
}

// Series returns the undecoded JSON document sent by the chart API.
func (c ChartFetch) Series(ctx context.Context, symbol string) (json.RawMessage, error) {
	u := c.URL(symbol)
	c.log.Debug("GET %s", u)

	var raw json.RawMessage
	if err := c.http.JSON(ctx, u, &raw); err != nil {
		return nil, errors.Wrapf(err, "fetching %s", symbol)
	}
	c.log.Debug("%d bytes received", len(raw))

	return raw, nil
}
