package reports

import (
	"strconv"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/dude333/histquote"
	"github.com/pkg/errors"
)

const defaultSheet = "Sheet1"

//
// SaveXlsx writes the series to a spreadsheet with one sheet named after
// the symbol. Numeric cells are stored as numbers.
//
func SaveXlsx(filename string, s *histquote.Series) error {
	x := excelize.NewFile()
	name := sheetName(s.Symbol)
	x.NewSheet(name)

	header := s.Header()
	x.SetSheetRow(name, "A1", &header)
	style, err := x.NewStyle(`{"font":{"bold":true},"alignment":{"horizontal":"center"},"border":[{"type":"bottom","color":"333333","style":1}]}`)
	if err == nil {
		x.SetCellStyle(name, "A1", axis(len(header)-1, 1), style)
	}
	x.SetColWidth(name, "A", "A", 12)

	for i := range s.Rows {
		row := cells(s.Line(i))
		x.SetSheetRow(name, axis(0, i+2), &row)
	}

	if name != defaultSheet {
		x.DeleteSheet(defaultSheet)
	}
	x.SetActiveSheet(1)

	if err := x.SaveAs(filename); err != nil {
		return errors.Wrapf(err, "saving spreadsheet %s", filename)
	}
	return nil
}

// cells keeps the date as text and turns numbers into float64.
func cells(line []string) []interface{} {
	row := make([]interface{}, len(line))
	for i, v := range line {
		row[i] = v
		if i == 0 || v == "" {
			continue
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			row[i] = f
		}
	}
	return row
}

// sheetName removes the characters Excel rejects and limits the length.
func sheetName(symbol string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, symbol)
	if len(name) > 31 {
		name = name[:31]
	}
	if strings.TrimSpace(name) == "" {
		return defaultSheet
	}
	return name
}

func axis(col, row int) string {
	return excelize.ToAlphaString(col) + strconv.Itoa(row)
}
