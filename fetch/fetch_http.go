package fetch

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/dude333/histquote"
	"github.com/pkg/errors"
)

// maxErrBody limits how much of an error response is kept in the message.
const maxErrBody = 512

// HTTPFetch implements a generic HTTP fetcher.
type HTTPFetch struct {
	client *http.Client
}

// NewHTTP creates a new HTTPFetch instance. A zero timeout means no timeout.
func NewHTTP(timeout time.Duration) *HTTPFetch {
	c := &http.Client{Timeout: timeout}
	return &HTTPFetch{client: c}
}

// JSON handles json responses. Any status other than 200 is returned
// as an error wrapping histquote.ErrHTTPStatus, without decoding the body.
func (h HTTPFetch) JSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	req.Header.Set("Accept", "application/json")

	r, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()

	if r.StatusCode != http.StatusOK {
		body, _ := ioutil.ReadAll(io.LimitReader(r.Body, maxErrBody))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			return errors.Wrap(histquote.ErrHTTPStatus, r.Status)
		}
		return errors.Wrapf(histquote.ErrHTTPStatus, "%s: %s", r.Status, msg)
	}

	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return errors.Wrap(err, "decoding json")
	}
	return nil
}
