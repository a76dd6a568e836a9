// pdfmerge - merge a directory of PDFs with generated title pages
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
)

var (
	configPath = flag.String("config", "", "path to a yaml config file with defaults")
	force      = flag.Bool("f", false, "overwrite the output file without asking")
	quiet      = flag.Bool("q", false, "suppress progress output")
	printHelp  = flag.Bool("h", false, "print usage information")
)

func usage() {
	fmt.Fprintf(os.Stderr, "pdfmerge version 0.1.0\n")
	fmt.Fprintf(os.Stderr, "Usage: pdfmerge [options] <input-directory> [output-PDF]\n")
	fmt.Fprintf(os.Stderr, "\nMerges every PDF in the directory in natural filename order,\n")
	fmt.Fprintf(os.Stderr, "inserting a title page with each file's name before its pages.\n")
	fmt.Fprintf(os.Stderr, "Without an output argument the result is written next to the\n")
	fmt.Fprintf(os.Stderr, "directory with a -merged suffix.\n")
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

	inputDir := args[0]
	outputFile := imposa.SuggestMergeOutput(inputDir)
	if len(args) == 2 {
		outputFile = args[1]
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// Declining to start is not a failure.
	if !*force && !confirmOverwrite(outputFile, os.Stdin) {
		fmt.Fprintln(os.Stderr, "Operation cancelled.")
		os.Exit(0)
	}

	job := imposa.OpenDir(inputDir)
	if cfg.PageSize != "" {
		sheetSize, err := cfg.Sheet()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		job = job.PageSize(sheetSize)
	}
	if !*quiet {
		job = job.Progress(func(message string) {
			fmt.Println(message)
		})
	}

	merged, warnings, err := job.Merge(outputFile)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Merged %d files into %s\n", merged, outputFile)
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
