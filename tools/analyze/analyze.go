package analyze

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"protein_analyzer_go/analyzer"
	"protein_analyzer_go/chart"
	"protein_analyzer_go/report"
	common "protein_analyzer_go/utils"
)

// Options selects the input and which reports get written.
type Options struct {
	Sequence string // takes precedence over InFile
	InFile   string // "-" reads stdin
	OutFile  string // prefix for .csv / .html
	CSV      bool
	HTML     bool
}

func Run(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	seq := fs.String("seq", "", "Protein sequence to analyze")
	inFile := fs.String("in_file", "", "Input file holding one sequence (plain, FASTA or gzip); '-' for stdin")
	outFile := fs.String("out_file", "protein_report", "Prefix for CSV / HTML reports")
	csvOut := fs.Bool("csv_out", false, "Write statistics to <out_file>.csv")
	htmlOut := fs.Bool("html", false, "Write statistics and composition chart to <out_file>.html")

	// Check for outright input failures
	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	// Unparsed arguments remain: flag the error and report it
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *seq == "" && *inFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -seq or -in_file is required")
		fs.Usage()
		os.Exit(1)
	}

	opts := Options{Sequence: *seq, InFile: *inFile, OutFile: *outFile, CSV: *csvOut, HTML: *htmlOut}
	if err := Execute(opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Execute reads the sequence, prints the text report to stdout and writes
// any requested report files.
func Execute(opts Options, stdin io.Reader, stdout io.Writer) error {
	t0 := time.Now()

	seq, err := readInput(opts, stdin)
	if err != nil {
		return err
	}

	res, err := analyzer.Analyze(seq)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	if err := report.WriteText(w, seq, res); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if opts.CSV {
		f, err := createReport(opts.OutFile + ".csv")
		if err != nil {
			return err
		}
		defer simpleUtil.DeferClose(f)
		if err := report.WriteCSV(f, res); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Fprintf(stdout, "Wrote statistics to CSV file: %s.csv\n", opts.OutFile)
	}

	if opts.HTML {
		svg, err := chart.CompositionSVG(res.Composition)
		if errors.Is(err, chart.ErrEmptyComposition) {
			svg = "<p>Graph unavailable</p>"
		} else if err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		f, err := createReport(opts.OutFile + ".html")
		if err != nil {
			return err
		}
		defer simpleUtil.DeferClose(f)
		if err := report.WriteHTML(f, seq, res, svg); err != nil {
			return fmt.Errorf("failed to write HTML: %w", err)
		}
		fmt.Fprintf(stdout, "Wrote HTML file: %s.html\n", opts.OutFile)
	}

	slog.Info("Done", "length", res.Length, "elapsed", time.Since(t0))
	return nil
}

// createReport opens an output file for writing.
func createReport(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return f, nil
}

func readInput(opts Options, stdin io.Reader) (string, error) {
	if opts.Sequence != "" {
		return opts.Sequence, nil
	}
	if opts.InFile == "-" {
		return common.ReadSequence(stdin)
	}
	rc, err := common.OpenSequenceFile(opts.InFile)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	seq, err := common.ReadSequence(rc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opts.InFile, err)
	}
	return seq, nil
}
