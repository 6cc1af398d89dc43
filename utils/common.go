// Common package contains input helpers shared by the analyzer tools.
// Sequences come from a command-line argument, stdin or a FASTA file.
package common

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMultipleRecords is returned when an input holds more than one FASTA record.
var ErrMultipleRecords = errors.New("input contains more than one FASTA record")

// ReadSequence reads a single raw protein sequence from r.
// Blank lines are skipped, one leading '>' header is dropped and the
// remaining lines are joined. Case is preserved; the analyzer normalizes it.
func ReadSequence(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var seq strings.Builder
	headers := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			headers++
			if headers > 1 || seq.Len() > 0 {
				return "", ErrMultipleRecords
			}
			continue
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scanner error: %w", err)
	}
	return seq.String(), nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	gzErr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return gzErr
}

// OpenSequenceFile opens a plain or gzip-compressed sequence file.
// Compression is detected from the magic bytes, not the file extension.
func OpenSequenceFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	buf := make([]byte, 2)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}
	if n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gzipFile{Reader: gr, f: f}, nil
	}
	return f, nil
}

// WrapSequence splits seq into lines of at most width characters.
func WrapSequence(seq string, width int) string {
	if width <= 0 {
		return seq + "\n"
	}
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}
