package reports

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

//
// Filename returns the path of the output file, <dir>/<symbol>_<date>.<ext>,
// creating 'dir' if needed. Path separators in the symbol are replaced so
// the file always lands in 'dir'.
func Filename(dir, symbol, date, ext string) (string, error) {
	clean := func(r rune) rune {
		switch r {
		case '/', '\\':
			return '_'
		}
		return r
	}
	if dir == "" {
		dir = "."
	}
	name := strings.Map(clean, symbol) + "_" + date + "." + ext

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "directory could not be created")
	}

	return filepath.Join(dir, name), nil
}
