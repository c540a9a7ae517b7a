package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/config"
)

func run(t *testing.T, dir string, args ...string) error {
	cfg := config.Default()
	argv := append([]string{"g2p-lexicon",
		"--corpus", filepath.Join(dir, "clean.txt"),
		"--lexicon", filepath.Join(dir, "lexicon.txt"),
		"--lexicon-nosil", filepath.Join(dir, "lexicon_nosil.txt"),
		"--phones", filepath.Join(dir, "phones.txt"),
	}, args...)
	return newApp(&cfg).Run(argv)
}

func read(t *testing.T, dir, name string) string {
	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(b)
}

func TestGenLexicon(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean.txt"),
		[]byte("<s> а б <SIL> </s>\n<s> ка б </s>\n"), 0o644))

	require.NoError(t, run(t, dir))
	assert.Equal(t, "<SIL> SIL\n<unk> SPOKEN_NOISE\nа a\nб b\nка kh a\n", read(t, dir, "lexicon.txt"))
	assert.Equal(t, "а a\nб b\nка kh a\n", read(t, dir, "lexicon_nosil.txt"))
	assert.Equal(t, "SIL\nSPOKEN_NOISE\na\nb\nkh\n", read(t, dir, "phones.txt"))
}

func TestGenLexiconFlags(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean.txt"), []byte("ка\n"), 0o644))

	require.NoError(t, run(t, dir, "--grapheme", "--stress", "--silence-word", "!SIL"))
	assert.Equal(t, "!SIL SIL\n<unk> SPOKEN_NOISE\nка k a1\n", read(t, dir, "lexicon.txt"))
	assert.Equal(t, "ка k a1\n", read(t, dir, "lexicon_nosil.txt"))
}

func TestGenLexiconAppends(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean.txt"), []byte("а\n"), 0o644))

	require.NoError(t, run(t, dir))
	require.NoError(t, run(t, dir))
	assert.Equal(t, "а a\nа a\n", read(t, dir, "lexicon_nosil.txt"))
	assert.Equal(t, "SIL\nSPOKEN_NOISE\na\nSIL\nSPOKEN_NOISE\na\n", read(t, dir, "phones.txt"))
}

func TestGenLexiconMissingCorpus(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, run(t, dir))
	_, err := os.Stat(filepath.Join(dir, "lexicon.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenLexiconBadSink(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean.txt"), []byte("а\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lexicon.txt"), []byte("old line\n"), 0o644))

	err := run(t, dir, "--phones", filepath.Join(dir, "missing", "phones.txt"))
	assert.Error(t, err)
	assert.Equal(t, "old line\n", read(t, dir, "lexicon.txt"))
	_, err = os.Stat(filepath.Join(dir, "lexicon_nosil.txt"))
	assert.True(t, os.IsNotExist(err))
}
