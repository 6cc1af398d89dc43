package main

import (
	"fmt"
	"os"
	"strings"

	"protein_analyzer_go/benchmark"
	"protein_analyzer_go/config"
	"protein_analyzer_go/tools/analyze"
	"protein_analyzer_go/tools/sanity_check"
	"protein_analyzer_go/tools/serve"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Protein Analyzer - Custom Help Menu
Usage:
  protein_analyzer <tool> [options]

Tools:
  analyze		Length, composition, molecular weight and hydrophobic
			ratio of one protein sequence (text, CSV, HTML)
  serve			Start the web UI (key=value options: addr, max_chars,
			title, log_level)
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information`,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Protein Analyzer - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tProtein Analyzer:\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tAnalyzer:\t\t%s\n", config.Analyzer)
	fmt.Printf("\tWeb UI:\t\t\t%s\n", config.Web_UI)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)
	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Executable-level help only when no tool is named
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		printCustomHelp()
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "analyze":
			analyze.Run(cleanedArgs)
		case "serve":
			serve.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("protein_analyzer %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
