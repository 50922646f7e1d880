package fir

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset errors.
var (
	ErrPresetNotFound = errors.New("fir: preset not found")
	ErrInvalidPreset  = errors.New("fir: invalid preset")
)

// Preset is a named coefficient sequence.
type Preset struct {
	Name string    `yaml:"name" json:"name"`
	Taps []float64 `yaml:"taps" json:"taps"`
}

// Presets3Tap are the three-tap kernels used by the row filter vectors.
var Presets3Tap = []Preset{
	{Name: "moving_avg", Taps: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}},
	{Name: "simple_lp", Taps: []float64{0.25, 0.5, 0.25}},
	{Name: "edge", Taps: []float64{-1.0, 0, 1.0}},
	{Name: "sharpen", Taps: []float64{-0.125, 1.25, -0.125}},
}

// Presets5Tap are the five-tap kernels used by the row filter vectors.
var Presets5Tap = []Preset{
	{Name: "moving_avg", Taps: []float64{1.0 / 5, 1.0 / 5, 1.0 / 5, 1.0 / 5, 1.0 / 5}},
	{Name: "simple_lp", Taps: []float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}},
	{Name: "edge", Taps: []float64{-1.0 / 8, -2.0 / 8, 0, 2.0 / 8, 1.0 / 8}},
	{Name: "sharpen", Taps: []float64{-1.0 / 16, -4.0 / 16, 26.0 / 16, -4.0 / 16, -1.0 / 16}},
}

// LookupPreset returns a copy of the built-in preset with the given tap count
// and name.
func LookupPreset(taps int, name string) (Preset, error) {
	var table []Preset
	switch taps {
	case presetTaps3:
		table = Presets3Tap
	case presetTaps5:
		table = Presets5Tap
	default:
		return Preset{}, fmt.Errorf("%w: no %d-tap presets", ErrPresetNotFound, taps)
	}

	p, ok := findPreset(table, name)
	if !ok {
		return Preset{}, fmt.Errorf("%w: %d-tap %q", ErrPresetNotFound, taps, name)
	}
	return p, nil
}

// FindPreset returns a copy of the preset with the given name in presets.
func FindPreset(presets []Preset, name string) (Preset, error) {
	p, ok := findPreset(presets, name)
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return p, nil
}

func findPreset(table []Preset, name string) (Preset, bool) {
	for _, p := range table {
		if p.Name == name {
			return Preset{Name: p.Name, Taps: cloneSamples(p.Taps)}, true
		}
	}
	return Preset{}, false
}

// presetFile is the YAML document layout:
//
//	presets:
//	  - name: smooth
//	    taps: [0.25, 0.5, 0.25]
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets decodes a YAML preset document and validates every entry.
func LoadPresets(r io.Reader) ([]Preset, error) {
	var doc presetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Preset{}, nil
		}
		return nil, fmt.Errorf("failed to decode presets: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Presets))
	for i, p := range doc.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %d: %w", i, err)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidPreset, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	if doc.Presets == nil {
		return []Preset{}, nil
	}
	return doc.Presets, nil
}

// LoadPresetFile reads presets from a YAML file.
func LoadPresetFile(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadPresets(f)
}

// Validate checks that the preset has a name and finite coefficients.
// An empty coefficient list is allowed; it configures a zero filter.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPreset)
	}
	for i, c := range p.Taps {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: %q tap %d is %v", ErrInvalidPreset, p.Name, i, c)
		}
	}
	return nil
}
