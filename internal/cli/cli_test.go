package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fir/internal/testutil"
	"github.com/tphakala/go-fir/internal/vectors"
	"github.com/tphakala/go-fir/internal/wavio"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func assertGolden(t *testing.T, name, output string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(output))
}

func TestTextOutputGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"convolve", []string{"convolve", "--x", "1,3,5", "--taps", "0.5,0.5"}},
		{"stream", []string{"stream", "--x", "1,3,5", "--taps", "0.5,0.5"}},
		{"ideal", []string{"ideal", "--x", "10,20,30", "--taps", "0.25,0.5,0.25"}},
		{"fixed", []string{"fixed", "--x", "255,0,0,0", "--taps", "0.1,0.5,0.3,0.1"}},
		{"presets", []string{"presets"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assertGolden(t, tt.name, out)
		})
	}
}

func TestStream_Realizations(t *testing.T) {
	for _, impl := range []string{implDirect, implRing} {
		out, err := runCommand(t, "stream", "--impl", impl, "--x", "1,3,5", "--taps", "0.5,0.5")
		require.NoError(t, err)
		assert.Equal(t, "y = [0.5, 2, 4]\n", out, impl)
	}

	out, err := runCommand(t, "--format", "json", "stream", "--impl", implBlock, "--x", "1,3,5", "--taps", "0.5,0.5")
	require.NoError(t, err)
	var resp struct {
		Data FilterResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	testutil.AssertSamplesInDelta(t, []float64{0.5, 2, 4}, resp.Data.Y, testutil.SIMDTolerance)

	_, err = runCommand(t, "stream", "--impl", "lattice", "--x", "1", "--taps", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConvolve_JSON(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "convolve", "--x", "1,3,5", "--taps", "0.5,0.5")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   FilterResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []float64{0.5, 2, 4, 2.5}, resp.Data.Y)
	assert.Equal(t, []float64{1, 3, 5}, resp.Data.X)
}

func TestConvolve_EmptyInput(t *testing.T) {
	out, err := runCommand(t, "convolve", "--x", "", "--taps", "0.5,0.5")
	require.NoError(t, err)
	assert.Equal(t, "y = []\n", out)
}

func TestBuiltinPreset(t *testing.T) {
	out, err := runCommand(t, "convolve", "--x", "4", "--preset", "simple_lp")
	require.NoError(t, err)
	assert.Equal(t, "y = [1, 2, 1]\n", out)

	out, err = runCommand(t, "convolve", "--x", "16", "--preset", "simple_lp", "--preset-taps", "5")
	require.NoError(t, err)
	assert.Equal(t, "y = [1, 4, 6, 4, 1]\n", out)
}

func TestPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	yaml := "presets:\n  - name: halves\n    taps: [0.5, 0.5]\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	out, err := runCommand(t, "--presets", path, "convolve", "--x", "1,3,5", "--preset", "halves")
	require.NoError(t, err)
	assert.Equal(t, "y = [0.5, 2, 4, 2.5]\n", out)

	out, err = runCommand(t, "--presets", path, "presets")
	require.NoError(t, err)
	assert.Equal(t, "halves[2] = [0.5, 0.5]\n", out)

	_, err = runCommand(t, "--presets", path, "convolve", "--x", "1", "--preset", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid_format", []string{"--format", "xml", "convolve", "--x", "1", "--taps", "1"}},
		{"missing_taps", []string{"convolve", "--x", "1"}},
		{"bad_number", []string{"convolve", "--x", "1,abc", "--taps", "1"}},
		{"bad_taps", []string{"convolve", "--x", "1", "--taps", "0.5,,0.5"}},
		{"unknown_preset", []string{"convolve", "--x", "1", "--preset", "blur"}},
		{"ideal_empty_taps", []string{"ideal", "--x", "1", "--taps", ""}},
		{"fixed_bad_bits", []string{"fixed", "--x", "1", "--taps", "0.5", "--coeff-bits", "12"}},
		{"fixed_out_of_range", []string{"fixed", "--x", "1", "--taps", "1.5"}},
		{"design_bad_cutoff", []string{"design", "--cutoff", "0.7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestDesign_JSON(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "design", "--num-taps", "31", "--cutoff", "0.2", "--attenuation", "70")
	require.NoError(t, err)

	var resp struct {
		Data DesignResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 31, resp.Data.NumTaps)
	assert.Len(t, resp.Data.Taps, 31)
	testutil.AssertDCGain(t, resp.Data.Taps, 1.0, 1e-9)
	testutil.AssertSymmetric(t, resp.Data.Taps, testutil.DefaultTolerance)
}

func TestDesign_AutoLength(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "design")
	require.NoError(t, err)

	var resp struct {
		Data DesignResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Data.NumTaps%2)
}

func TestVectors_GenerateAndVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vectors.json")

	out, err := runCommand(t, "vectors", "generate", path, "--length", "16", "--signals", "impulse, ramp")
	require.NoError(t, err)
	assert.Equal(t, "wrote 16 cases to "+path+"\n", out)

	out, err = runCommand(t, "vectors", "verify", path)
	require.NoError(t, err)
	assert.Equal(t, "16 cases verified\n", out)

	// Corrupt one fixed output and verify again.
	m, err := vectors.ReadManifestFile(path)
	require.NoError(t, err)
	m.Cases[0].Fixed[0] ^= 1
	require.NoError(t, vectors.WriteManifest(path, m))

	out, err = runCommand(t, "vectors", "verify", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "MISMATCH "+m.Cases[0].Name+": fixed[0]")
}

func TestVectors_Errors(t *testing.T) {
	_, err := runCommand(t, "vectors", "verify", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runCommand(t, "vectors", "generate", filepath.Join(t.TempDir(), "v.json"), "--signals", "chirp")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestWAVCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")

	clip := &wavio.Clip{
		SampleRate: 8000,
		BitDepth:   16,
		Channels:   [][]float64{testutil.SineWave(128, 0.05), testutil.SineWave(128, 0.2)},
	}
	require.NoError(t, wavio.WriteFile(in, clip))

	text, err := runCommand(t, "wav", in, out, "--preset", "moving_avg")
	require.NoError(t, err)
	assert.Equal(t, "filtered 2 channels x 128 frames with 3 taps -> "+out+"\n", text)

	got, err := wavio.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 8000, got.SampleRate)
	assert.Len(t, got.Channels, 2)
	assert.Equal(t, 128, got.Frames())

	_, err = runCommand(t, "wav", filepath.Join(dir, "missing.wav"), out, "--taps", "1")
	require.Error(t, err)
}

func TestParseSamples(t *testing.T) {
	x, err := ParseSamples(" 1, -2.5 ,3e2 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2.5, 300}, x)

	x, err = ParseSamples("")
	require.NoError(t, err)
	assert.Empty(t, x)
	assert.NotNil(t, x)

	_, err = ParseSamples("1,,2")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[]", FormatSamples(nil))
	assert.Equal(t, "[0.5, 2, 4, 2.5]", FormatSamples([]float64{0.5, 2, 4, 2.5}))
	assert.Equal(t, "[1e+21, -0.1]", FormatSamples([]float64{1e21, -0.1}))
	assert.Equal(t, "[0, 255]", FormatInts([]uint8{0, 255}))
	assert.Equal(t, "[-3, 7]", FormatInts([]int64{-3, 7}))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "x")))
	assert.Equal(t, ExitCommandError, GetExitCode(io.EOF))

	err := WrapExitError(ExitCommandError, "read failed", io.EOF)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "read failed: EOF", err.Error())
}
