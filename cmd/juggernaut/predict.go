package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/juggernaut/internal/nn"
	"github.com/born-ml/juggernaut/internal/serialization"
)

func runPredict(args []string) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	modelPath := fs.String("model", "model.json", "Path to a saved network")
	input := fs.String("input", "", "Comma separated input row, e.g. 1,0,1")
	skipChecksum := fs.Bool("skip-checksum", false, "Load a model whose checksum does not match")
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := loadNetwork(*modelPath, *skipChecksum)
	if err != nil {
		return err
	}
	row, err := parseRow(*input)
	if err != nil {
		return err
	}

	pred, err := net.Evaluate(nn.NewPredictSample(row))
	if err != nil {
		return err
	}
	values := pred.Row(0)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	fmt.Println(strings.Join(parts, ","))
	return nil
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	modelPath := fs.String("model", "model.json", "Path to a saved network")
	skipChecksum := fs.Bool("skip-checksum", false, "Load a model whose checksum does not match")
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := loadNetwork(*modelPath, *skipChecksum)
	if err != nil {
		return err
	}
	fmt.Printf("cost:    %v\n", net.CostFunction())
	fmt.Printf("shuffle: %t\n", net.ShuffleData())
	fmt.Printf("layers:  %d\n", net.Len())
	for i, l := range net.Layers() {
		fmt.Printf("  [%d] %v\n", i, l)
	}
	return nil
}

func loadNetwork(path string, skipChecksum bool) (*nn.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}
	return nn.FromTextWithOptions(string(data), serialization.ReaderOptions{
		SkipChecksumValidation: skipChecksum,
		ValidationLevel:        serialization.ValidationStrict,
	})
}

func parseRow(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("input row is empty")
	}
	fields := strings.Split(s, ",")
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		row[i] = v
	}
	return row, nil
}
