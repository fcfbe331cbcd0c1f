package reports

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/dude333/histquote"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// WriteCSV writes the header and every row of the series to 'out'.
func WriteCSV(out io.Writer, s *histquote.Series) error {
	w := gocsv.NewSafeCSVWriter(csv.NewWriter(out))

	if err := w.Write(s.Header()); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for i := range s.Rows {
		if err := w.Write(s.Line(i)); err != nil {
			return errors.Wrapf(err, "writing csv row %d", i+1)
		}
	}
	w.Flush()

	return w.Error()
}

//
// SaveCSV writes the series to 'filename', replacing an existing file.
//
func SaveCSV(filename string, s *histquote.Series) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating csv file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", filename)
		}
	}()

	return errors.Wrapf(WriteCSV(f, s), "writing %s", filename)
}

// ListCSV writes the archive summary as CSV.
func ListCSV(out io.Writer, list []histquote.SeriesInfo) error {
	if len(list) == 0 {
		return nil
	}
	return errors.Wrap(gocsv.Marshal(&list, out), "writing csv")
}
