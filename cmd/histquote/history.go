/*
Copyright © 2021 Adriano P <dev@dude333.com>
Distributed under the MIT License.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dude333/histquote"
	"github.com/dude333/histquote/fetch"
	"github.com/dude333/histquote/parsers"
	"github.com/dude333/histquote/reports"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var _timeNow = time.Now

// Parms holds the input parameters
type Parms struct {
	// Symbol to be fetched, used as typed
	Symbol string
	// BaseURL of the chart API
	BaseURL string
	// Range of the chart (5y, 1y...)
	Range string
	// OutputDir: where the file is saved
	OutputDir string
	// Format of the output (csv/xlsx/stdout)
	Format string
	// Timeout of the HTTP request; zero waits forever
	Timeout time.Duration
	// DataDir: directory of the archive DB
	DataDir string
	// Store the series on the archive DB
	Store bool
	// Sort the rows by date
	Sort bool
}

// history collects the parameters from the command line, the config
// and, if needed, the user, and runs the download.
func history(args []string) error {
	log := reports.NewLogger(os.Stderr)
	log.SetVerbose(viper.GetBool(Fverbose))

	p := Parms{
		BaseURL:   viper.GetString(FbaseURL),
		Range:     viper.GetString(Frange),
		OutputDir: viper.GetString(Foutdir),
		Format:    viper.GetString(Fformat),
		Timeout:   viper.GetDuration(Ftimeout),
		DataDir:   viper.GetString(Fdatadir),
		Store:     viper.GetBool(Fstore),
		Sort:      viper.GetBool(Fsort),
	}
	if err := p.validate(); err != nil {
		return err
	}

	if len(args) > 0 {
		p.Symbol = args[0]
	} else {
		s, err := promptSymbol(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		p.Symbol = s
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fetcher, err := fetch.NewChartFetch(log, p.BaseURL, p.Range, p.Timeout)
	if err != nil {
		return err
	}

	var store histquote.SeriesStore
	if p.Store {
		db, err := openDatabase(p.DataDir)
		if err != nil {
			return err
		}
		defer db.Close()
		if store, err = reports.NewStore(db); err != nil {
			return err
		}
	}

	return History(ctx, p, fetcher, store, os.Stdout, log)
}

func (p Parms) validate() error {
	switch p.Format {
	case "csv", "xlsx", "stdout":
		return nil
	}
	return fmt.Errorf("invalid format: %s (csv|xlsx|stdout)", p.Format)
}

//
// History downloads the price series of p.Symbol and saves it according
// to p.Format. Nothing is written if the download or the parsing fails.
//
func History(ctx context.Context, p Parms, fetcher histquote.SeriesFetcher,
	store histquote.SeriesStore, out io.Writer, log histquote.Logger) error {

	if err := p.validate(); err != nil {
		return err
	}
	if p.Range == "" {
		p.Range = fetch.DefaultRange
	}

	fmt.Fprintf(out, "Getting %s data for %s...\n", histquote.RangeLabel(p.Range), p.Symbol)

	raw, err := fetcher.Series(ctx, p.Symbol)
	if err != nil {
		return err
	}

	series, err := parsers.Series(p.Symbol, raw)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", p.Symbol)
	}
	log.Debug("%s rows, %d columns", humanize.Comma(int64(len(series.Rows))), len(series.Columns))
	if p.Sort {
		series.SortByDate()
	}

	if store != nil {
		log.Run("Archiving %s", p.Symbol)
		n, err := store.Save(series)
		if err != nil {
			log.Nok()
			return err
		}
		log.Ok()
		log.Debug("%s rows archived", humanize.Comma(int64(n)))
	}

	if p.Format == "stdout" {
		reports.Table(out, series)
		fmt.Fprintln(out, "Done")
		return nil
	}

	file, err := reports.Filename(p.OutputDir, p.Symbol, _timeNow().Format(histquote.DateLayout), p.Format)
	if err != nil {
		return err
	}
	if p.Format == "xlsx" {
		err = reports.SaveXlsx(file, series)
	} else {
		err = reports.SaveCSV(file, series)
	}
	if err != nil {
		return err
	}

	if fi, err := os.Stat(file); err == nil {
		log.Info("%s saved: %s rows, %s", file,
			humanize.Comma(int64(len(series.Rows))), humanize.Bytes(uint64(fi.Size())))
	}

	fmt.Fprintln(out, "Done")
	return nil
}
