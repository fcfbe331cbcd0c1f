package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dude333/histquote"
	"github.com/pkg/errors"
)

// DateField is the record key used as the series index.
const DateField = "date"

// field is a key/value pair kept in the order it was read.
type field struct {
	key string
	val json.RawMessage
}

//
// Series parses the JSON document sent by the chart API into a date
// indexed table. The document must be an array of flat objects, each
// one with a "date" key. Columns keep the order in which keys first
// show up; rows keep the upstream order.
//
func Series(symbol string, doc []byte) (*histquote.Series, error) {
	doc = bytes.TrimSpace(doc)
	if len(doc) == 0 || doc[0] != '[' {
		return nil, notASeries(doc)
	}

	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	if _, err := dec.Token(); err != nil { // [
		return nil, errors.Wrap(err, "reading series")
	}

	s := &histquote.Series{Symbol: symbol, Columns: []string{}}
	cols := make(map[string]int)

	for n := 1; dec.More(); n++ {
		fields, err := readObject(dec)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", n)
		}

		rec := histquote.Record{}
		hasDate := false
		values := make(map[int]string, len(fields))
		for _, f := range fields {
			if f.key == DateField {
				rec.Date, err = recordDate(f.val)
				if err != nil {
					return nil, errors.Wrapf(err, "record %d", n)
				}
				hasDate = true
				continue
			}
			i, ok := cols[f.key]
			if !ok {
				i = len(s.Columns)
				cols[f.key] = i
				s.Columns = append(s.Columns, f.key)
			}
			values[i], err = cell(f.val)
			if err != nil {
				return nil, errors.Wrapf(err, "record %d, field %s", n, f.key)
			}
		}
		if !hasDate {
			return nil, errors.Wrapf(histquote.ErrMissingDate, "record %d", n)
		}

		rec.Values = make([]string, len(s.Columns))
		for i, v := range values {
			rec.Values[i] = v
		}
		s.Rows = append(s.Rows, rec)
	}

	if _, err := dec.Token(); err != nil { // ]
		return nil, errors.Wrap(err, "reading series")
	}

	// Rows read before a column first appeared are shorter; pad them.
	for i := range s.Rows {
		if d := len(s.Columns) - len(s.Rows[i].Values); d > 0 {
			s.Rows[i].Values = append(s.Rows[i].Values, make([]string, d)...)
		}
	}

	return s, nil
}

// readObject reads one JSON object from dec keeping its key order.
func readObject(dec *json.Decoder) ([]field, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.Wrapf(histquote.ErrNotASeries, "found %s instead of an object", describe(tok))
	}

	var fields []field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid key %v", tok)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		fields = append(fields, field{key: key, val: val})
	}

	if _, err := dec.Token(); err != nil { // }
		return nil, err
	}

	return fields, nil
}

// recordDate converts the date field into a calendar day.
func recordDate(val json.RawMessage) (t time.Time, err error) {
	switch {
	case bytes.Equal(val, []byte("null")):
		return t, histquote.ErrMissingDate
	case len(val) > 0 && val[0] == '"':
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return t, err
		}
		return parseDate(s)
	case len(val) > 0 && (val[0] == '-' || (val[0] >= '0' && val[0] <= '9')):
		return parseEpoch(json.Number(val))
	}
	return t, errors.Wrapf(histquote.ErrInvalidDate, "%s", val)
}

// cell returns the CSV text for a JSON value: numbers as received,
// strings unquoted, null as empty and nested values as compact JSON.
func cell(val json.RawMessage) (string, error) {
	if len(val) == 0 {
		return "", nil
	}
	switch val[0] {
	case 'n':
		return "", nil
	case '"':
		var s string
		err := json.Unmarshal(val, &s)
		return s, err
	case '{', '[':
		var buf bytes.Buffer
		err := json.Compact(&buf, val)
		return buf.String(), err
	}
	return string(val), nil
}

// notASeries builds the error for documents that are not a JSON array,
// including the upstream error message when there is one.
func notASeries(doc []byte) error {
	if len(doc) == 0 {
		return errors.Wrap(histquote.ErrNotASeries, "empty response")
	}
	if doc[0] == '{' {
		var obj map[string]interface{}
		if err := json.Unmarshal(doc, &obj); err == nil {
			for _, k := range []string{"error", "message", "Error", "Message"} {
				if msg, ok := obj[k].(string); ok && msg != "" {
					return errors.Wrapf(histquote.ErrNotASeries, "upstream error: %s", msg)
				}
			}
		}
		return errors.Wrap(histquote.ErrNotASeries, "found an object")
	}
	return errors.Wrapf(histquote.ErrNotASeries, "found %s", excerpt(doc))
}

func describe(tok interface{}) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "an array"
		}
		return string(v)
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%v", tok)
}

func excerpt(doc []byte) string {
	const max = 40
	s := strings.TrimSpace(string(doc))
	if len(s) > max {
		s = s[:max] + "..."
	}
	return fmt.Sprintf("%q", s)
}
