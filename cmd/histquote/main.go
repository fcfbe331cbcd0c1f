/*
Copyright © 2021 Adriano P <dev@dude333.com>
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dude333/histquote/fetch"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag and config key names
const (
	Fconfig  = "config"
	FbaseURL = "baseurl"
	Frange   = "range"
	Foutdir  = "outdir"
	Fformat  = "format"
	Ftimeout = "timeout"
	Fdatadir = "datadir"
	Fstore   = "store"
	Fsort    = "sort"
	Fverbose = "verbose"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "histquote [symbol]",
	Short: "Downloads the daily price history of a stock",
	Long: `Downloads the daily price history of a stock (5 years by default)
and saves it as {symbol}_{YYYY-MM-DD}.csv. The symbol is asked for when
it is not given on the command line.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := history(args); err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, Fconfig, "", "config file (default $HOME/.histquote.yaml)")
	pf.String(Fdatadir, dataDir, "directory of the archive database")
	pf.BoolP(Fverbose, "v", false, "show debug messages")

	f := rootCmd.Flags()
	f.String(FbaseURL, fetch.DefaultBaseURL, "base URL of the chart API")
	f.StringP(Frange, "r", fetch.DefaultRange, "chart range: 5y|2y|1y|6m|3m|1m|ytd|max")
	f.StringP(Foutdir, "d", ".", "directory where the file is saved")
	f.StringP(Fformat, "f", "csv", "output format: csv|xlsx|stdout")
	f.Duration(Ftimeout, fetch.DefaultTimeout, "HTTP timeout (0 waits forever)")
	f.BoolP(Fstore, "s", false, "also archive the series in the database")
	f.Bool(Fsort, false, "sort the rows by date")

	for _, name := range []string{Fdatadir, Fverbose} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}
	for _, name := range []string{FbaseURL, Frange, Foutdir, Fformat, Ftimeout, Fstore, Fsort} {
		_ = viper.BindPFlag(name, f.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".histquote")
	}

	viper.SetEnvPrefix("histquote")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Println("[x] config:", err)
			os.Exit(1)
		}
	}
}
