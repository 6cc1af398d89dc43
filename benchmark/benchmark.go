// benchmark.go
// A reusable benchmarking module for Protein Analyzer
// Measures execution time and memory usage for any wrapped tool

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Run wraps f and reports its runtime and memory usage on stderr, so a
// tool's own stdout stays clean.
func Run(label string, f func()) {
	RunTo(os.Stderr, label, f)
}

// RunTo is Run with an explicit destination for the report.
func RunTo(w io.Writer, label string, f func()) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0)
	fmt.Fprintf(w, "[Benchmark] Heap In Use: %.2f MB\n", float64(memEnd.HeapAlloc)/1024.0/1024.0)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}
