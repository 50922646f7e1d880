package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Golden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"demo_golden", nil},
		{"demo_stream", []string{"-mode", "stream"}},
		{"demo_empty", []string{"-x", ""}},
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tt.args, &out, io.Discard))
			g.Assert(t, tt.name, out.Bytes())
		})
	}
}

func TestRun_FixedImpulse(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-x", "1,0,0", "-h", "0.25,0.5,0.25", "-mode", "stream"}, &out, io.Discard))
	assert.Equal(t, "y = [0.25, 0.5, 0.25]\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad_x", []string{"-x", "1,two"}},
		{"bad_h", []string{"-h", "0.5;0.5"}},
		{"bad_mode", []string{"-mode", "batch"}},
		{"unknown_flag", []string{"-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.Error(t, run(tt.args, &out, io.Discard))
			assert.Empty(t, out.String())
		})
	}
}

func TestRun_Verbose(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-v"}, &out, &errOut))
	assert.Equal(t, "y = [0.5, 2, 4, 2.5]\n", out.String())
	assert.Contains(t, errOut.String(), "mode=golden N=3 K=2 outputs=4")
}
