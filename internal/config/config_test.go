package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SLIDE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "bottom", cfg.Appearance.Edge)
	require.Equal(t, 0.6, cfg.Appearance.SizeFraction)
	require.True(t, cfg.Appearance.DepthEffect)
	require.True(t, cfg.Motion.Interactive)
	require.False(t, cfg.Motion.Reduced)
	require.Empty(t, cfg.Debug.LogFile)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[motion]
reduced = true
spring = true

[appearance]
edge = "leading"
size_fraction = 0.4
corner_radius = 6.0
`), 0o600))
	t.Setenv("SLIDE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Motion.Reduced)
	require.True(t, cfg.Motion.Spring)
	require.Equal(t, "leading", cfg.Appearance.Edge)
	require.Equal(t, 0.4, cfg.Appearance.SizeFraction)
	require.Equal(t, 6.0, cfg.Appearance.CornerRadius)
	// untouched sections keep their defaults
	require.True(t, cfg.Motion.Interactive)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SLIDE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("SLIDE_APPEARANCE_EDGE", "trailing")
	t.Setenv("SLIDE_MOTION_REDUCED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "trailing", cfg.Appearance.Edge)
	require.True(t, cfg.Motion.Reduced)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SLIDE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	t.Setenv("SLIDE_APPEARANCE_EDGE", "diagonal")
	_, err := Load()
	require.ErrorContains(t, err, "unknown edge")

	t.Setenv("SLIDE_APPEARANCE_EDGE", "bottom")
	t.Setenv("SLIDE_APPEARANCE_SIZE_FRACTION", "1.5")
	_, err = Load()
	require.ErrorContains(t, err, "size_fraction")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("SLIDE_CONFIG", path)

	want := Config{
		Motion:     MotionConfig{Reduced: true, Spring: true, Interactive: true},
		Appearance: AppearanceConfig{Edge: "right", CornerRadius: 8, DepthEffect: true, SizeFraction: 0.5},
		Debug:      DebugConfig{LogFile: "debug.log"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
