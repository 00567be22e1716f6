package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	UserAgent string `json:"user_agent"`
	Delay     int    `json:"delay_ms"`
	Debug     bool   `json:"debug"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "nlrb.json5")

	_, err := ReadConfig[testConfig](name)
	require.ErrorIs(t, err, os.ErrNotExist)

	writeFile(t, name, `{
		// comments and trailing commas are fine in json5
		"user_agent": "nlrb-data",
		"delay_ms": 1000,
	}`)
	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{UserAgent: "nlrb-data", Delay: 1000}, cfg)

	writeFile(t, filepath.Join(dir, "nlrb.local.json5"), `{"delay_ms": 2500, "debug": true}`)
	cfg, err = ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{UserAgent: "nlrb-data", Delay: 2500, Debug: true}, cfg)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "nlrb.json5")
	writeFile(t, name, `{"user_agent": `)

	_, err := ReadConfig[testConfig](name)
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	err := os.MkdirAll(nested, 0777)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "nlrb-recursive-test.json5"), `{"user_agent": "found"}`)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	err = os.Chdir(nested)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := ReadRecursively[testConfig]("nlrb-recursive-test.json5")
	require.NoError(t, err)
	require.Equal(t, "found", cfg.UserAgent)
}
