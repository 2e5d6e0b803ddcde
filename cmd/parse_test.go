package cmd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestParseCmd_TagOutput(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeDoc(t, fs, "doc.lex", "Intro:\n\n    Body line.\n")

	c := &ParseCmd{
		Path:   "doc.lex",
		Format: "ast-tag",
		Output: "out.txt",
		Fs:     fs,
	}
	require.NoError(t, c.Run())

	out, err := afero.ReadFile(fs, "out.txt")
	require.NoError(t, err)
	assert.Contains(t, string(out), `<Session label="Intro:">`)
	assert.Contains(t, string(out), `<Paragraph label="Body line." />`)
}

func TestParseCmd_AllFormats(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeDoc(t, fs, "doc.lex", "Hello world\n")

	for _, format := range []string{
		"tokens-core", "tokens-line", "ir",
		"ast-json", "ast-tag", "ast-treeviz",
	} {
		c := &ParseCmd{
			Path:   "doc.lex",
			Format: format,
			Output: "out-" + format,
			Fs:     fs,
		}
		require.NoError(t, c.Run(), "format %s", format)

		out, err := afero.ReadFile(fs, "out-"+format)
		require.NoError(t, err)
		assert.NotEmpty(t, out, "format %s", format)
	}
}

func TestParseCmd_StructuralErrorFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeDoc(t, fs, "bad.lex", "    floating\n")

	c := &ParseCmd{
		Path:   "bad.lex",
		Format: "ast-tag",
		Output: "out.txt",
		Fs:     fs,
	}
	err := c.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floating")
}

func TestParseCmd_MissingFile(t *testing.T) {
	c := &ParseCmd{
		Path:   "missing.lex",
		Format: "ast-tag",
		Fs:     afero.NewMemMapFs(),
	}
	err := c.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.lex")
}

func TestEnsureTrailingNewline(t *testing.T) {
	assert.Equal(t, "a\n", ensureTrailingNewline("a"))
	assert.Equal(t, "a\n", ensureTrailingNewline("a\n"))
	assert.Equal(t, "", ensureTrailingNewline(""))
}
