package vectors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	fir "github.com/tphakala/go-fir"
	"github.com/tphakala/go-fir/internal/golden"
)

// Manifest format version written by Generate.
const FormatVersion = 1

const (
	defaultLength    = 32
	defaultSeed      = 1
	defaultFracBits  = 12
	defaultAccBits   = 32
	defaultCoeffBits = 16

	manifestFilePerm = 0o644
)

// ErrNoCases is returned when a configuration selects nothing to generate.
var ErrNoCases = errors.New("vectors: no cases selected")

// Config selects what Generate produces.
type Config struct {
	Length  int
	Seed    uint64
	Signals []string
	Presets []fir.Preset
	Fixed   golden.FixedParams
}

// DefaultConfig covers every signal with every built-in 3-tap and 5-tap
// preset using a Q.12 datapath with a 32-bit accumulator.
func DefaultConfig() Config {
	return Config{
		Length:  defaultLength,
		Seed:    defaultSeed,
		Signals: append([]string(nil), AllSignals...),
		Presets: DefaultPresets(),
		Fixed: golden.FixedParams{
			FracBits:  defaultFracBits,
			AccBits:   defaultAccBits,
			CoeffBits: defaultCoeffBits,
		},
	}
}

// DefaultPresets returns the built-in 3-tap presets followed by the 5-tap
// ones.
func DefaultPresets() []fir.Preset {
	out := make([]fir.Preset, 0, len(fir.Presets3Tap)+len(fir.Presets5Tap))
	for _, table := range [][]fir.Preset{fir.Presets3Tap, fir.Presets5Tap} {
		for _, p := range table {
			out = append(out, fir.Preset{Name: p.Name, Taps: append([]float64(nil), p.Taps...)})
		}
	}
	return out
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("invalid row length: %d", c.Length)
	}
	if len(c.Signals) == 0 || len(c.Presets) == 0 {
		return ErrNoCases
	}
	for _, s := range c.Signals {
		if !ValidSignal(s) {
			return fmt.Errorf("unknown signal %q (valid: %v)", s, AllSignals)
		}
	}
	for i := range c.Presets {
		if err := c.Presets[i].Validate(); err != nil {
			return err
		}
	}
	return c.Fixed.Validate()
}

// Case is one input row filtered by one preset through every model.
type Case struct {
	Name          string    `json:"name"`
	Signal        string    `json:"signal"`
	Preset        string    `json:"preset"`
	Taps          []float64 `json:"taps"`
	QuantizedTaps []int64   `json:"quantized_taps"`
	Input         []float64 `json:"input"`
	Stats         Stats     `json:"stats"`
	Golden        []float64 `json:"golden"`
	Stream        []float64 `json:"stream"`
	Ideal         []float64 `json:"ideal"`
	Fixed         []int     `json:"fixed"`
	Metrics       Metrics   `json:"metrics"`
}

// Manifest is a generated vector set.
type Manifest struct {
	Version int                `json:"version"`
	RunID   string             `json:"run_id"`
	Created time.Time          `json:"created"`
	Seed    uint64             `json:"seed"`
	Length  int                `json:"length"`
	Fixed   golden.FixedParams `json:"fixed_params"`
	Cases   []Case             `json:"cases"`
}

// Generate builds a manifest for every (signal, preset) pair in cfg.
func Generate(cfg Config) (*Manifest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vector config: %w", err)
	}

	m := &Manifest{
		Version: FormatVersion,
		RunID:   uuid.NewString(),
		Created: time.Now().UTC(),
		Seed:    cfg.Seed,
		Length:  cfg.Length,
		Fixed:   cfg.Fixed,
		Cases:   make([]Case, 0, len(cfg.Signals)*len(cfg.Presets)),
	}

	for _, signal := range cfg.Signals {
		x, err := Synthesize(signal, cfg.Length, cfg.Seed)
		if err != nil {
			return nil, err
		}
		for _, p := range cfg.Presets {
			c, err := computeCase(signal, p, x, cfg.Fixed)
			if err != nil {
				return nil, fmt.Errorf("case %s/%s: %w", signal, p.Name, err)
			}
			m.Cases = append(m.Cases, c)
		}
	}
	return m, nil
}

// computeCase runs every model on one input row.
func computeCase(signal string, p fir.Preset, x []float64, params golden.FixedParams) (Case, error) {
	hq, err := golden.QuantizeTaps(p.Taps, params)
	if err != nil {
		return Case{}, err
	}
	ideal, err := golden.Ideal(x, p.Taps)
	if err != nil {
		return Case{}, err
	}
	fixed, err := golden.Fixed(x, p.Taps, params)
	if err != nil {
		return Case{}, err
	}
	metrics, err := Compare(ideal, fixed)
	if err != nil {
		return Case{}, err
	}

	fixedInts := make([]int, len(fixed))
	for i, v := range fixed {
		fixedInts[i] = int(v)
	}

	return Case{
		Name:          fmt.Sprintf("%s_%dtap_%s", signal, len(p.Taps), p.Name),
		Signal:        signal,
		Preset:        p.Name,
		Taps:          append([]float64(nil), p.Taps...),
		QuantizedTaps: hq,
		Input:         append([]float64(nil), x...),
		Stats:         computeStats(x),
		Golden:        fir.Convolve(x, p.Taps),
		Stream:        fir.NewWithTaps(p.Taps).ProcessBlock(x),
		Ideal:         ideal,
		Fixed:         fixedInts,
		Metrics:       metrics,
	}, nil
}

// Write encodes the manifest as indented JSON.
func (m *Manifest) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return nil
}

// WriteManifest writes m to path.
func WriteManifest(path string, m *Manifest) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, manifestFilePerm)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	if err := m.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close manifest file: %w", err)
	}
	return nil
}

// ReadManifest decodes a manifest from r.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if m.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported manifest version %d (want %d)", m.Version, FormatVersion)
	}
	return &m, nil
}

// ReadManifestFile reads a manifest from path.
func ReadManifestFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadManifest(f)
}
