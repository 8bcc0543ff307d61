package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		identifier string
		want       Class
	}{
		{"data:image/png;base64,AAAA", ClassEmbedded},
		{"DATA:image/png;base64,AAAA", ClassEmbedded},
		{"icon.png", ClassDirectImage},
		{"photo.JPEG", ClassDirectImage},
		{"favicon.ico", ClassDirectImage},
		{"app.exe", ClassSelfExtracting},
		{"APP.EXE", ClassSelfExtracting},
		{"shortcut.lnk", ClassSelfExtracting},
		{"pointer.ani", ClassSelfExtracting},
		{"pointer.cur", ClassSelfExtracting},
		{"project.sln", ClassSelfExtracting},
		{"app.appref-ms", ClassSelfExtracting},
		{"readme.txt", ClassOther},
		{"noextension", ClassOther},
		{"", ClassOther},
	}
	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.identifier))
		})
	}
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".png", Ext("ICON.PNG"))
	assert.Equal(t, ".exe", Ext("/usr/local/app.exe"))
	assert.Equal(t, "", Ext("noextension"))
	assert.Equal(t, "", Ext(""))
}

func TestFormatSetsAreDisjoint(t *testing.T) {
	for _, ext := range DirectImageExts() {
		assert.False(t, IsSelfExtracting(ext), "%s must not be in both sets", ext)
	}
	for _, ext := range SelfExtractingExts() {
		assert.False(t, IsDirectImage(ext), "%s must not be in both sets", ext)
	}
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "embedded", ClassEmbedded.String())
	assert.Equal(t, "direct-image", ClassDirectImage.String())
	assert.Equal(t, "self-extracting", ClassSelfExtracting.String())
	assert.Equal(t, "other", ClassOther.String())
}
