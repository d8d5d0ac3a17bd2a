package configpaths_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Alia5/i3ctransfer/internal/configpaths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePaths(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout only")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	wd, err := os.Getwd()
	require.NoError(t, err)

	type testCase struct {
		name      string
		userPath  string
		firstJSON string
		firstYAML string
		firstTOML string
	}

	cases := []testCase{
		{
			name:      "no user path",
			firstJSON: filepath.Join(wd, "i3ctransfer.json"),
			firstYAML: filepath.Join(wd, "i3ctransfer.yaml"),
			firstTOML: filepath.Join(wd, "i3ctransfer.toml"),
		},
		{
			name:      "yaml user path first",
			userPath:  "/tmp/bus.yml",
			firstJSON: filepath.Join(wd, "i3ctransfer.json"),
			firstYAML: "/tmp/bus.yml",
			firstTOML: filepath.Join(wd, "i3ctransfer.toml"),
		},
		{
			name:      "unknown extension goes to json",
			userPath:  "/tmp/bus.conf",
			firstJSON: "/tmp/bus.conf",
			firstYAML: filepath.Join(wd, "i3ctransfer.yaml"),
			firstTOML: filepath.Join(wd, "i3ctransfer.toml"),
		},
		{
			name:      "toml user path first",
			userPath:  "/tmp/bus.toml",
			firstJSON: filepath.Join(wd, "i3ctransfer.json"),
			firstYAML: filepath.Join(wd, "i3ctransfer.yaml"),
			firstTOML: "/tmp/bus.toml",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(tc.userPath)
			require.NotEmpty(t, jsonPaths)
			require.NotEmpty(t, yamlPaths)
			require.NotEmpty(t, tomlPaths)
			assert.Equal(t, tc.firstJSON, jsonPaths[0])
			assert.Equal(t, tc.firstYAML, yamlPaths[0])
			assert.Equal(t, tc.firstTOML, tomlPaths[0])

			assert.Contains(t, jsonPaths, filepath.Join(xdg, "i3ctransfer", "transfer.json"))
			assert.Contains(t, tomlPaths, "/etc/i3ctransfer/config.toml")
		})
	}
}

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG layout only")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	p, err := configpaths.DefaultNamedConfigPath("transfer", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "i3ctransfer", "transfer.yaml"), p)

	p, err = configpaths.DefaultNamedConfigPath("transfer", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "i3ctransfer", "transfer.json"), p)
}

func TestEnsureDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "transfer.json")
	require.NoError(t, configpaths.EnsureDir(target))
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
