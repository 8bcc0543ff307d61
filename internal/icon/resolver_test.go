package icon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_RelativeIdentifier(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0644))

	res := NewResolver().Resolve("icon.png", dir)

	assert.Equal(t, path, res.Path)
	assert.Equal(t, ".png", res.IdentifierExt)
	assert.Equal(t, ".png", res.ResolvedExt)
	assert.Equal(t, ClassDirectImage, res.Class)
}

func TestResolver_AbsoluteIdentifierShortCircuits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.exe")
	require.NoError(t, os.WriteFile(path, []byte("MZ"), 0755))

	// The base directory is unrelated; the absolute path wins.
	res := NewResolver().Resolve(path, "/some/other/base")

	assert.Equal(t, path, res.Path)
	assert.Equal(t, ".exe", res.ResolvedExt)
	assert.Equal(t, ClassSelfExtracting, res.Class)
}

func TestResolver_Nonexistent(t *testing.T) {
	res := NewResolver().Resolve("missing.xyz", t.TempDir())

	assert.Empty(t, res.Path)
	assert.Equal(t, ".xyz", res.IdentifierExt)
	assert.Empty(t, res.ResolvedExt, "no resolved path means no resolved extension")
	assert.Equal(t, ClassOther, res.Class)
}

func TestResolver_ExtensionIsLowerCased(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SHOUTING.PNG")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0644))

	res := NewResolver().Resolve("SHOUTING.PNG", dir)

	assert.Equal(t, ".png", res.IdentifierExt)
	assert.Equal(t, ".png", res.ResolvedExt)
}

func TestResolver_EmbeddedShortCircuits(t *testing.T) {
	res := NewResolver().Resolve("data:image/png;base64,AAAA", "/plugins/foo")

	assert.Equal(t, ClassEmbedded, res.Class)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.IdentifierExt)
}

func TestResolver_DirectoryIsNotAMatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "icon.png"), 0755))

	res := NewResolver().Resolve("icon.png", dir)

	assert.Empty(t, res.Path, "directories never resolve as icon sources")
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		name       string
		baseDir    string
		identifier string
		want       string
	}{
		{"relative", "/plugins/foo", "icon.png", filepath.Join("/plugins/foo", "icon.png")},
		{"absolute wins", "/plugins/foo", "/usr/bin/app", "/usr/bin/app"},
		{"empty identifier", "/plugins/foo", "", ""},
		{"nested relative", "/plugins/foo", filepath.Join("img", "icon.png"), filepath.Join("/plugins/foo", "img", "icon.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinPath(tt.baseDir, tt.identifier))
		})
	}
}
