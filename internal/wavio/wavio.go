// Package wavio reads and writes PCM WAV files as normalized float64
// channels and runs FIR filters over them, one independent filter per
// channel.
package wavio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	fir "github.com/tphakala/go-fir"
)

const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAVE_FORMAT_PCM
	pcmFormat = 1
)

// ErrUnsupportedBitDepth is returned for bit depths other than 16, 24 and 32.
var ErrUnsupportedBitDepth = errors.New("wavio: unsupported bit depth")

// Clip is decoded audio with each channel normalized to [-1, 1].
type Clip struct {
	SampleRate int
	BitDepth   int
	Channels   [][]float64
}

// Frames returns the number of samples per channel.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// Validate checks that the clip can be encoded.
func (c *Clip) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", c.SampleRate)
	}
	if _, err := maxValue(c.BitDepth); err != nil {
		return err
	}
	if len(c.Channels) == 0 {
		return errors.New("clip has no channels")
	}
	n := len(c.Channels[0])
	for ch, s := range c.Channels {
		if len(s) != n {
			return fmt.Errorf("channel %d has %d samples, expected %d", ch, len(s), n)
		}
	}
	return nil
}

func maxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// ReadFile decodes a PCM WAV file.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	bitDepth := int(decoder.BitDepth)
	maxVal, err := maxValue(bitDepth)
	if err != nil {
		return nil, err
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count: %d", channels)
	}

	return &Clip{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   bitDepth,
		Channels:   deinterleave(buf.Data, channels, 1.0/maxVal),
	}, nil
}

// WriteFile encodes the clip as PCM WAV. Samples are clamped to [-1, 1].
func WriteFile(path string, clip *Clip) error {
	if err := clip.Validate(); err != nil {
		return err
	}
	maxVal, _ := maxValue(clip.BitDepth)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	numChans := len(clip.Channels)
	enc := wav.NewEncoder(f, clip.SampleRate, clip.BitDepth, numChans, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: clip.SampleRate},
		Data:           interleave(clip.Channels, maxVal),
		SourceBitDepth: clip.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return f.Close()
}

func deinterleave(data []int, channels int, scale float64) [][]float64 {
	frames := len(data) / channels
	out := make([][]float64, channels)
	for ch := range channels {
		out[ch] = make([]float64, frames)
	}
	for i := range frames {
		for ch := range channels {
			out[ch][i] = float64(data[i*channels+ch]) * scale
		}
	}
	return out
}

func interleave(channels [][]float64, maxVal float64) []int {
	numChans := len(channels)
	frames := len(channels[0])
	out := make([]int, frames*numChans)
	for i := range frames {
		for ch := range numChans {
			v := max(-1.0, min(1.0, channels[ch][i]))
			out[i*numChans+ch] = int(math.Round(v * maxVal))
		}
	}
	return out
}

// FilterClip runs the taps over every channel with a fresh filter per
// channel and returns a new clip. When parallel is set and the clip has
// more than one channel, channels run concurrently. The context is checked
// before each channel starts.
func FilterClip(ctx context.Context, clip *Clip, h []float64, parallel bool) (*Clip, error) {
	out := &Clip{
		SampleRate: clip.SampleRate,
		BitDepth:   clip.BitDepth,
		Channels:   make([][]float64, len(clip.Channels)),
	}

	if parallel && len(clip.Channels) > 1 {
		if err := filterParallel(ctx, clip.Channels, out.Channels, h); err != nil {
			return nil, err
		}
		return out, nil
	}

	for ch, samples := range clip.Channels {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("filtering canceled at channel %d: %w", ch, err)
		}
		out.Channels[ch] = fir.NewWithTaps(h).ProcessBlock(samples)
	}
	return out, nil
}

func filterParallel(ctx context.Context, in, out [][]float64, h []float64) error {
	var wg sync.WaitGroup
	var processErr error
	var errMu sync.Mutex

	for ch := range in {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = fmt.Errorf("filtering canceled at channel %d: %w", channel, err)
				}
				errMu.Unlock()
				return
			}
			out[channel] = fir.NewWithTaps(h).ProcessBlock(in[channel])
		}(ch)
	}
	wg.Wait()

	return processErr
}
