// Package config loads the YAML training-run files used by the juggernaut CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/juggernaut/internal/activation"
	"github.com/born-ml/juggernaut/internal/cost"
	"github.com/born-ml/juggernaut/internal/nn"
)

// DefaultLogEvery is used when log_every is unset.
const DefaultLogEvery = 100

// Layer describes one layer of the network to build.
type Layer struct {
	Neurons    int      `yaml:"neurons"`
	Inputs     int      `yaml:"inputs"` // required for the first layer only
	Activation string   `yaml:"activation"`
	Alpha      *float64 `yaml:"alpha"` // LeakyRectifiedLinearUnit slope
}

// Config captures the runtime knobs for a training run.
type Config struct {
	Layers       []Layer `yaml:"layers"`
	Cost         string  `yaml:"cost"`
	Shuffle      *bool   `yaml:"shuffle"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	Seed         int64   `yaml:"seed"`
	Samples      string  `yaml:"samples"`
	Output       string  `yaml:"output"`
	LogEvery     int     `yaml:"log_every"`
	Workers      int     `yaml:"workers"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Epochs       int
	LearningRate float64
	Seed         int64
	Samples      string
	Output       string
	LogEvery     int
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes a Config without validating it. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty config")
		}
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Samples != "" {
		c.Samples = o.Samples
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable and fills in defaults.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Layers) == 0 {
		return errors.New("at least one layer must be configured")
	}
	prev := 0
	for i, l := range c.Layers {
		if l.Neurons <= 0 {
			return fmt.Errorf("layers[%d]: neurons must be > 0 (got %d)", i, l.Neurons)
		}
		switch {
		case i == 0 && l.Inputs <= 0:
			return fmt.Errorf("layers[0]: inputs must be > 0 (got %d)", l.Inputs)
		case i > 0 && l.Inputs != 0 && l.Inputs != prev:
			return fmt.Errorf("layers[%d]: inputs must match previous layer's %d neurons (got %d)", i, prev, l.Inputs)
		}
		if _, err := l.activation(); err != nil {
			return fmt.Errorf("layers[%d]: %w", i, err)
		}
		prev = l.Neurons
	}
	if c.Cost != "" {
		if _, err := cost.Parse(c.Cost); err != nil {
			return err
		}
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.LearningRate <= 0 || math.IsInf(c.LearningRate, 0) {
		return fmt.Errorf("learning_rate must be a positive number (got %v)", c.LearningRate)
	}
	if c.Samples == "" {
		return errors.New("samples path must be set")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = DefaultLogEvery
	}
	return nil
}

// ShuffleData reports whether samples are shuffled every epoch. Defaults to true.
func (c *Config) ShuffleData() bool {
	return c.Shuffle == nil || *c.Shuffle
}

// NewNetwork builds the configured network with weights drawn from rng.
// The config must have passed Validate.
func (c *Config) NewNetwork(rng *rand.Rand) (*nn.Network, error) {
	net := nn.New()
	if c.Cost != "" {
		fn, err := cost.Parse(c.Cost)
		if err != nil {
			return nil, err
		}
		if err := net.SetCostFunction(fn); err != nil {
			return nil, err
		}
	}
	net.SetShuffleData(c.ShuffleData())
	net.SetParallelism(c.Workers)

	inputs := c.Layers[0].Inputs
	for i, l := range c.Layers {
		act, err := l.activation()
		if err != nil {
			return nil, fmt.Errorf("layers[%d]: %w", i, err)
		}
		if err := net.AddLayer(nn.NewLayer(l.Neurons, inputs, act, rng)); err != nil {
			return nil, fmt.Errorf("layers[%d]: %w", i, err)
		}
		inputs = l.Neurons
	}
	return net, nil
}

// activation resolves the layer's activation name plus its optional slope.
func (l Layer) activation() (activation.Activation, error) {
	act, err := activation.Parse(l.Activation)
	if err != nil {
		return activation.Activation{}, err
	}
	if l.Alpha == nil {
		return act, nil
	}
	if !act.HasParams() {
		return activation.Activation{}, fmt.Errorf("activation %s takes no alpha", act.Name())
	}
	if math.IsNaN(*l.Alpha) || math.IsInf(*l.Alpha, 0) {
		return activation.Activation{}, fmt.Errorf("alpha must be finite (got %v)", *l.Alpha)
	}
	act.Alpha = *l.Alpha
	return act, nil
}
