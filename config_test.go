package spellchecker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 2, cfg.Iterations)
	require.Equal(t, 5, cfg.MaxCandidates)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spellcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 3\ncorpus_path: corpus.tsv\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Iterations)
	require.Equal(t, 5, cfg.MaxCandidates, "unset fields keep the default")
	require.Equal(t, "corpus.tsv", cfg.CorpusPath)
}

func TestLoadConfigRejectsNonPositiveIterations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spellcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 0\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
