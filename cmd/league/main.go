package main

// league reads game results from a file or standard input and prints the
// ranked standings table.

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/github-info-estatico-io/league/internal/league"
)

var (
	debug = kingpin.Flag("debug", "Dump the parsed games before the standings.").Bool()
	input = kingpin.Arg("file", "Results file, or '-' for standard input.").Required().String()
)

func main() {
	kingpin.Parse()

	text, err := readInput(*input)
	exitOnError(err, 66)

	reporter := league.NewSimpleReporter(os.Stderr)
	games, err := league.Parse(text)
	if err != nil {
		reporter.Report(err)
	}
	exitIf(reporter.HadError(), 65)

	if *debug {
		repr.Println(games)
	}

	standings := league.Compute(games)
	exitOnError(league.WriteStandings(os.Stdout, standings), 1)
}

// readInput slurps the whole input so parse errors can reference absolute
// positions in the original text.
func readInput(fpath string) (string, error) {
	if fpath == "-" {
		bytes, err := io.ReadAll(os.Stdin)
		return string(bytes), err
	}
	bytes, err := os.ReadFile(fpath)
	return string(bytes), err
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
