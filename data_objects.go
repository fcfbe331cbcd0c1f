package histquote

import (
	"sort"
	"strconv"
	"time"
)

// DateLayout is the layout used to print the series index.
const DateLayout = "2006-01-02"

// Record is one row of a price series. Values are aligned with
// Series.Columns; a missing field is an empty string.
type Record struct {
	Date   time.Time
	Values []string
}

// Series is a date indexed table of daily records.
type Series struct {
	Symbol string
	// Columns holds the value columns in order of first appearance,
	// without the "date" index.
	Columns []string
	Rows    []Record
}

// Header returns the index header followed by the value columns.
func (s *Series) Header() []string {
	h := make([]string, 0, len(s.Columns)+1)
	h = append(h, "date")
	return append(h, s.Columns...)
}

// Line returns row i as text, date first.
func (s *Series) Line(i int) []string {
	r := s.Rows[i]
	l := make([]string, 0, len(s.Columns)+1)
	l = append(l, r.Date.Format(DateLayout))
	for j := range s.Columns {
		var v string
		if j < len(r.Values) {
			v = r.Values[j]
		}
		l = append(l, v)
	}
	return l
}

// Column returns the position of 'name' in Columns or -1.
func (s *Series) Column(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Float returns the value of column 'name' on row i, if it is a number.
func (s *Series) Float(i int, name string) (float64, bool) {
	j := s.Column(name)
	if j < 0 || j >= len(s.Rows[i].Values) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s.Rows[i].Values[j], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SortByDate orders the rows chronologically, keeping the upstream
// order for repeated dates.
func (s *Series) SortByDate() {
	sort.SliceStable(s.Rows, func(i, j int) bool {
		return s.Rows[i].Date.Before(s.Rows[j].Date)
	})
}

// SeriesInfo summarizes a series kept in the archive.
type SeriesInfo struct {
	Symbol string `csv:"symbol"`
	Rows   int    `csv:"rows"`
	First  string `csv:"first"`
	Last   string `csv:"last"`
}
