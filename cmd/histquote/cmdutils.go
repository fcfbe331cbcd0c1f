package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	isatty "github.com/mattn/go-isatty"
	_ "github.com/mattn/go-sqlite3" // requires CGO_ENABLED=1 and gcc
	"github.com/pkg/errors"
)

// Directory where the archive DB is stored
const dataDir = ".data"

const promptLabel = "Enter symbol"

//
// openDatabase opens (or creates) the archive DB inside 'dir'.
//
func openDatabase(dir string) (db *sql.DB, err error) {
	if dir == "" {
		dir = dataDir
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	connStr := "file:" + filepath.Join(dir, "histquote.db") + "?cache=shared&mode=rwc&_journal_mode=WAL&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", connStr)
	if err != nil {
		return db, errors.Wrap(err, "database open failed")
	}
	db.SetMaxOpenConns(1)

	return
}

//
// promptSymbol asks for the ticker symbol. On a terminal it uses an
// interactive prompt; otherwise it reads one line from 'in'. The text is
// returned as typed, only the line break is removed.
//
func promptSymbol(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		templates := &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . }}: ",
			Invalid: "{{ . }}: ",
			Success: "{{ . }}: ",
		}
		prompt := promptui.Prompt{
			Label:     promptLabel,
			Templates: templates,
		}
		return prompt.Run()
	}

	fmt.Fprint(out, promptLabel+": ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", errors.Wrap(err, "reading symbol")
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}
