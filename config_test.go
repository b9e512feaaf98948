package galaxy

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gekko3d/galaxy/galaxyrt/rt/breath"
	"github.com/gekko3d/galaxy/galaxyrt/rt/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesDefaults(t *testing.T) {
	cfg := DefaultConfig()
	p, err := cfg.Parameters()
	require.NoError(t, err)

	want := core.DefaultParameters()
	assert.Equal(t, want.Count, p.Count)
	assert.Equal(t, want.Radius, p.Radius)
	assert.InDelta(t, want.InsideColor.R, p.InsideColor.R, 1e-9)
	assert.InDelta(t, want.OutsideColor.B, p.OutsideColor.B, 1e-9)
	assert.Equal(t, breath.DefaultConfig(), cfg.BreathConfig())
}

func TestParseConfigOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
seed: 99
galaxy:
  count: 5000
  branches: 6
  insideColor: orange
  outsideColor: "#112233"
breath:
  zoomAmount: 3
window:
  title: Test
`))
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, breath.Config{StartY: 2, ZoomAmount: 3}, cfg.BreathConfig())

	p, err := cfg.Parameters()
	require.NoError(t, err)
	assert.Equal(t, 5000, p.Count)
	assert.Equal(t, 6, p.Branches)
	assert.Equal(t, float32(1.57), p.Radius)
	assert.Equal(t, "#ffa500", p.InsideColor.Hex())
	assert.Equal(t, "#112233", p.OutsideColor.Hex())
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "galaxy:\n  arms: 3\n"},
		{"zero count", "galaxy:\n  count: 0\n"},
		{"low power", "galaxy:\n  randomnessPower: 0.2\n"},
		{"bad color", "galaxy:\n  insideColor: notacolor\n"},
		{"bad hex", "galaxy:\n  outsideColor: \"#12\"\n"},
		{"wrong type", "galaxy:\n  count: many\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseConfigInvalidParameterIsTyped(t *testing.T) {
	_, err := ParseConfig([]byte("galaxy:\n  radius: -1\n"))
	require.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("galaxy:\n  radius: 3.5\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), cfg.Galaxy.Radius)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParametersModuleReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("galaxy:\n  count: 777\n"), 0o644))

	app := NewApp().UseModules(ParametersModule{Path: path})
	store := mustResource[ParameterStore](app)
	assert.Equal(t, 777, store.Current().Count)
}

func TestParametersModuleFallsBackOnInvalidParams(t *testing.T) {
	bad := core.DefaultParameters()
	bad.Branches = 0

	app := NewApp().UseModules(ParametersModule{Params: &bad})
	store := mustResource[ParameterStore](app)
	assert.Equal(t, core.DefaultParameters().Branches, store.Current().Branches)
}

func TestParametersModuleLogsRejectedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("galaxy:\n  branches: 0\n"), 0o644))

	var buf bytes.Buffer
	params := core.DefaultParameters()
	params.Count = 4242

	app := NewApp().UseModules(
		LoggingModule{Output: &buf},
		ParametersModule{Path: path, Params: &params},
	)
	store := mustResource[ParameterStore](app)

	assert.Equal(t, 4242, store.Current().Count)
	assert.Equal(t, 4, store.Current().Branches)
	assert.Contains(t, buf.String(), "[galaxy.config] WARN: Ignoring config")
	assert.Contains(t, buf.String(), "branches")
}
