package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/born-ml/juggernaut/internal/config"
	"github.com/born-ml/juggernaut/internal/nn"
)

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	cfgPath := fs.String("config", "run.yaml", "Path to YAML run config")
	epochs := fs.Int("epochs", 0, "Override number of epochs")
	lr := fs.Float64("lr", 0, "Override learning rate")
	seed := fs.Int64("seed", 0, "Override PRNG seed")
	samples := fs.String("samples", "", "Override samples file (one sample document per line)")
	out := fs.String("out", "", "Override output model path")
	logEvery := fs.Int("log-every", 0, "Log every N epochs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyOverrides(config.Overrides{
		Epochs:       *epochs,
		LearningRate: *lr,
		Seed:         *seed,
		Samples:      *samples,
		Output:       *out,
		LogEvery:     *logEvery,
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := log.New(os.Stderr, fmt.Sprintf("[%s] ", uuid.NewString()[:8]), log.LstdFlags)

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Weight init and shuffling, not security

	data, err := readSamples(cfg.Samples)
	if err != nil {
		return err
	}
	logger.Printf("samples=%s count=%d seed=%d", cfg.Samples, len(data), cfg.Seed)

	net, err := cfg.NewNetwork(rng)
	if err != nil {
		return err
	}
	logger.Printf("network %v", net)

	epoch := 0
	start := time.Now()
	report, err := net.Train(data, nn.TrainConfig{
		Epochs:       cfg.Epochs,
		LearningRate: cfg.LearningRate,
		Rand:         rng,
		Observer: &nn.Observer{
			OnError: func(loss float64) {
				epoch++
				if epoch%cfg.LogEvery == 0 || epoch == cfg.Epochs {
					logger.Printf("epoch=%d/%d loss=%.6f elapsed=%s", epoch, cfg.Epochs, loss, time.Since(start).Round(time.Millisecond))
				}
			},
		},
	})
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	logger.Print(summarize(net, data, report))

	if cfg.Output == "" {
		return nil
	}
	text, err := net.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to serialize network: %w", err)
	}
	if err := os.WriteFile(cfg.Output, text, 0o600); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	logger.Printf("model written to %s", cfg.Output)
	return nil
}

// summarize formats the end-of-run line. The loss is always reported, the
// accuracy only when it can be computed for data.
func summarize(net *nn.Network, data []nn.Sample, report *nn.TrainReport) string {
	acc, err := net.Accuracy(data)
	if err != nil {
		return fmt.Sprintf("done epochs=%d loss=%.6f accuracy=unavailable (%v)", report.Epochs, report.FinalLoss(), err)
	}
	return fmt.Sprintf("done epochs=%d loss=%.6f accuracy=%.2f%%", report.Epochs, report.FinalLoss(), acc*100)
}
