package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/born-ml/juggernaut/internal/nn"
)

// maxSampleLine bounds a single sample document.
const maxSampleLine = 16 << 20

// readSamples loads one sample document per line. Blank lines and lines
// starting with '#' are skipped.
func readSamples(path string) ([]nn.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open samples: %w", err)
	}
	defer f.Close()
	return decodeSamples(f)
}

func decodeSamples(r io.Reader) ([]nn.Sample, error) {
	var out []nn.Sample
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxSampleLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := nn.SampleFromText(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
