/*
Copyright © 2021 Adriano P <dev@dude333.com>
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dude333/histquote"
	"github.com/dude333/histquote/reports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCSV bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the series saved with --store",
	Long:  `Lists every symbol saved on the archive database, with its number of rows and date range.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDatabase(viper.GetString(Fdatadir))
		if err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
		defer db.Close()

		store, err := reports.NewStore(db)
		if err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}

		if err := list(store, os.Stdout, listCSV); err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listCSV, "csv", false, "print as CSV")
}

func list(store histquote.SeriesStore, out io.Writer, asCSV bool) error {
	l, err := store.List()
	if err != nil {
		return err
	}
	if asCSV {
		return reports.ListCSV(out, l)
	}
	if len(l) == 0 {
		fmt.Fprintln(out, "[ ] nothing archived yet")
		return nil
	}
	reports.ListTable(out, l)
	return nil
}
