package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {

	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"server_addr": "10.0.0.1:9999"}`), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", file}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, "10.0.0.1:9999", config.ServerAddr)
}

func TestParseJson_NoConfigFlagLeavesDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, "127.0.0.1:1337", config.ServerAddr)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {

	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{broken`), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", file}

	config := &Config{}
	require.Panics(t, func() { parseJson(config) })
}
