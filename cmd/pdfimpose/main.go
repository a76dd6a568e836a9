// pdfimpose - rotate PDF pages and pack them onto printable sheets
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/imposa"
	"github.com/tsawler/imposa/config"
	"github.com/tsawler/imposa/progress"
)

var (
	layoutName = flag.String("layout", "", "sheet layout: side-by-side, top-bottom or top-bottom-3")
	gap        = flag.Float64("gap", -1, "gap between slots in points")
	sizeFactor = flag.Float64("size", 0, "size factor applied after fit-to-slot scaling (0.1-1.0)")
	configPath = flag.String("config", "", "path to a yaml config file with defaults")
	force      = flag.Bool("f", false, "overwrite the output file without asking")
	printHelp  = flag.Bool("h", false, "print usage information")
)

func usage() {
	fmt.Fprintf(os.Stderr, "pdfimpose version 0.1.0\n")
	fmt.Fprintf(os.Stderr, "Usage: pdfimpose [options] <input-PDF> [output-PDF]\n")
	fmt.Fprintf(os.Stderr, "\nRotates every page 90 degrees counter-clockwise and packs 2-3 of\n")
	fmt.Fprintf(os.Stderr, "them per output sheet. Without an output argument the result is\n")
	fmt.Fprintf(os.Stderr, "written next to the input with a -rotated-layout suffix.\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *printHelp {
		usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		usage()
		os.Exit(1)
	}

	inputFile := args[0]
	outputFile := imposa.SuggestImposeOutput(inputFile)
	if len(args) == 2 {
		outputFile = args[1]
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			cfg.Layout = *layoutName
		case "gap":
			cfg.Gap = *gap
		case "size":
			cfg.SizeFactor = *sizeFactor
		}
	})

	layout, err := cfg.Orientation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Declining to start is not a failure.
	if !*force && !confirmOverwrite(outputFile, os.Stdin) {
		fmt.Fprintln(os.Stderr, "Operation cancelled.")
		os.Exit(0)
	}

	job := imposa.Open(inputFile).
		Layout(layout).
		Gap(cfg.Gap).
		SizeFactor(cfg.SizeFactor)
	if cfg.PageSize != "" {
		sheetSize, err := cfg.Sheet()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		job = job.PageSize(sheetSize)
	}

	var warnings []imposa.Warning
	status, result := progress.Run(func(report progress.Func) (int, error) {
		pages, w, err := job.Progress(report).Impose(outputFile)
		warnings = w
		return pages, err
	})

	for message := range status {
		fmt.Println(message)
	}
	res := <-result

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d pages to %s\n", res.Units, outputFile)
}

// confirmOverwrite asks before clobbering an existing output file.
// A missing file needs no confirmation.
func confirmOverwrite(path string, in io.Reader) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true
	}

	fmt.Fprintf(os.Stderr, "%s already exists. Overwrite? [y/N]: ", path)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
