package histquote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}

func TestSeries(t *testing.T) {
	s := &Series{
		Symbol:  "AAPL",
		Columns: []string{"open", "close"},
		Rows: []Record{
			{Date: day("2024-03-04"), Values: []string{"10.5", "11"}},
			{Date: day("2024-03-01"), Values: []string{"9"}},
		},
	}

	assert.Equal(t, []string{"date", "open", "close"}, s.Header())
	assert.Equal(t, []string{"2024-03-04", "10.5", "11"}, s.Line(0))
	assert.Equal(t, []string{"2024-03-01", "9", ""}, s.Line(1))

	f, ok := s.Float(0, "open")
	assert.True(t, ok)
	assert.Equal(t, 10.5, f)
	_, ok = s.Float(1, "close")
	assert.False(t, ok)
	_, ok = s.Float(0, "volume")
	assert.False(t, ok)

	s.SortByDate()
	assert.Equal(t, "2024-03-01", s.Line(0)[0])
	assert.Equal(t, "2024-03-04", s.Line(1)[0])
}

func TestSeries_SortByDateIsStable(t *testing.T) {
	s := &Series{
		Columns: []string{"n"},
		Rows: []Record{
			{Date: day("2024-03-02"), Values: []string{"a"}},
			{Date: day("2024-03-01"), Values: []string{"b"}},
			{Date: day("2024-03-02"), Values: []string{"c"}},
		},
	}
	s.SortByDate()

	var got []string
	for i := range s.Rows {
		got = append(got, s.Rows[i].Values[0])
	}
	assert.Equal(t, []string{"b", "a", "c"}, got)
}
