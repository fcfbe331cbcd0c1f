package reports

import (
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/dude333/histquote"
	"github.com/pkg/errors"
)

// Store archives price series on the 'quotes' table. The fetch path
// never reads from it.
type Store struct {
	db *sql.DB
	mu sync.Mutex // ensures atomic writes to db
}

// NewStore returns a Store backed by 'db', creating the table if needed.
func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("invalid db")
	}
	if err := createTable(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func createTable(db *sql.DB) error {
	const create = `CREATE TABLE IF NOT EXISTS quotes (
		symbol  VARCHAR(20) NOT NULL,
		date    VARCHAR(10) NOT NULL,
		open    REAL,
		high    REAL,
		low     REAL,
		close   REAL,
		volume  REAL,
		fields  TEXT,
		PRIMARY KEY (symbol, date)
	);`
	if _, err := db.Exec(create); err != nil {
		return errors.Wrap(err, "creating table quotes")
	}
	return nil
}

//
// Save stores every row of 's', replacing rows already stored for the
// same symbol and date. Returns the number of rows saved.
//
func (s *Store) Save(series *histquote.Series) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, errors.Wrap(err, "starting transaction")
	}

	const insert = `INSERT OR REPLACE INTO quotes
	(symbol, date, open, high, low, close, volume, fields) VALUES (?,?,?,?,?,?,?,?);`
	stmt, err := tx.Prepare(insert)
	if err != nil {
		_ = tx.Rollback()
		return 0, errors.Wrap(err, "insert on quotes")
	}
	defer stmt.Close()

	count := 0
	for i := range series.Rows {
		fields, err := rowFields(series, i)
		if err != nil {
			_ = tx.Rollback()
			return 0, err
		}
		_, err = stmt.Exec(
			series.Symbol,
			series.Rows[i].Date.Format(histquote.DateLayout),
			number(series, i, "open"),
			number(series, i, "high"),
			number(series, i, "low"),
			number(series, i, "close"),
			number(series, i, "volume"),
			fields,
		)
		if err != nil {
			_ = tx.Rollback()
			return 0, errors.Wrap(err, "saving quote")
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "committing quotes")
	}

	return count, nil
}

// List returns the stored symbols with their row count and date range.
func (s *Store) List() ([]histquote.SeriesInfo, error) {
	const query = `SELECT symbol, COUNT(*), MIN(date), MAX(date)
	FROM quotes GROUP BY symbol ORDER BY symbol;`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "listing quotes")
	}
	defer rows.Close()

	var list []histquote.SeriesInfo
	for rows.Next() {
		var i histquote.SeriesInfo
		if err := rows.Scan(&i.Symbol, &i.Rows, &i.First, &i.Last); err != nil {
			return nil, errors.Wrap(err, "reading quotes")
		}
		list = append(list, i)
	}

	return list, rows.Err()
}

func number(s *histquote.Series, i int, col string) sql.NullFloat64 {
	f, ok := s.Float(i, col)
	return sql.NullFloat64{Float64: f, Valid: ok}
}

// rowFields encodes the non empty values of row i as a JSON object.
func rowFields(s *histquote.Series, i int) (string, error) {
	m := make(map[string]string, len(s.Columns))
	for j, c := range s.Columns {
		if j < len(s.Rows[i].Values) && s.Rows[i].Values[j] != "" {
			m[c] = s.Rows[i].Values[j]
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", errors.Wrap(err, "encoding fields")
	}
	return string(b), nil
}
