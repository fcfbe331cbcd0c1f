package histquote

import (
	"context"
	"encoding/json"
)

// SeriesFetcher downloads the raw price history of a symbol.
type SeriesFetcher interface {
	Series(ctx context.Context, symbol string) (json.RawMessage, error)
}

// SeriesStore archives parsed series.
type SeriesStore interface {
	Save(s *Series) (int, error)
	List() ([]SeriesInfo, error)
}
