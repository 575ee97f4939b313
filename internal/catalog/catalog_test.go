package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/quranpak-player/internal/model"
)

const twoChapters = `[
  {"id": 1, "name": "Al-Fatiha", "audio": "https://x/1.mp3"},
  {"id": 2, "name": "Al-Baqarah", "audio": "https://x/2.mp3"}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_WellFormedJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "surahs.json", twoChapters)

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, path, cat.Path())
	assert.Equal(t, []string{"1: Al-Fatiha", "2: Al-Baqarah"}, cat.Labels())

	ch, ok := cat.At(1)
	require.True(t, ok)
	assert.Equal(t, model.Chapter{ID: 2, Name: "Al-Baqarah", Audio: "https://x/2.mp3"}, ch)
}

func TestLoad_PreservesFileOrder(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "surahs.json", `[
		{"id": 3, "name": "Al-Imran", "audio": "https://x/3.mp3"},
		{"id": 1, "name": "Al-Fatiha", "audio": "https://x/1.mp3"},
		{"id": 2, "name": "Al-Baqarah", "audio": "https://x/2.mp3"}
	]`)

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"3: Al-Imran", "1: Al-Fatiha", "2: Al-Baqarah"}, cat.Labels())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	cat, err := Load(filepath.Join(t.TempDir(), "surahs.json"))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, cat)
	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.Labels())
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "surahs.yaml", `
- id: 1
  name: Al-Fatiha
  audio: https://x/1.mp3
  recitations:
    Mishary Rashid Alafasy: https://afs/1.mp3
`)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	ch, _ := cat.At(0)
	assert.Equal(t, "https://afs/1.mp3", ch.AudioFor(model.ReciterAlafasy))
}

func TestLoad_StripsBOMAndIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "surahs.json", "\xef\xbb\xbf"+`[{"id": 1, "name": "الفاتحة", "audio": "https://x/1.mp3", "ayahs": 7}]`)

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1: الفاتحة"}, cat.Labels())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty input", data: "", wantErr: ErrMalformed},
		{name: "not a list", data: `{"id": 1}`, wantErr: ErrMalformed},
		{name: "id as string", data: `[{"id": "1", "name": "a", "audio": "https://x/1.mp3"}]`, wantErr: ErrMalformed},
		{name: "missing name", data: `[{"id": 1, "audio": "https://x/1.mp3"}]`, wantErr: ErrInvalid},
		{name: "zero id", data: `[{"id": 0, "name": "a", "audio": "https://x/1.mp3"}]`, wantErr: ErrInvalid},
		{name: "relative audio", data: `[{"id": 1, "name": "a", "audio": "1.mp3"}]`, wantErr: ErrInvalid},
		{name: "duplicate id", data: `[
			{"id": 1, "name": "a", "audio": "https://x/1.mp3"},
			{"id": 1, "name": "b", "audio": "https://x/2.mp3"}
		]`, wantErr: ErrInvalid},
		{name: "bad recitation url", data: `[{"id": 1, "name": "a", "audio": "https://x/1.mp3", "recitations": {"r": "nope"}}]`, wantErr: ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), FormatJSON)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_ErrorNamesField(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`[{"id": 1, "name": "a", "audio": ""}]`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 0")
	assert.Contains(t, err.Error(), "audio is required")
}

func TestParse_EmptyList(t *testing.T) {
	t.Parallel()

	chapters, err := Parse([]byte(`[]`), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, chapters)
}

func TestCatalog_AtBounds(t *testing.T) {
	t.Parallel()

	cat := New([]model.Chapter{{ID: 1, Name: "a", Audio: "https://x/1.mp3"}})

	_, ok := cat.At(-1)
	assert.False(t, ok)
	_, ok = cat.At(1)
	assert.False(t, ok)

	_, ok = Empty().At(0)
	assert.False(t, ok)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatJSON, FormatFromPath("surahs.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("surahs"))
	assert.Equal(t, FormatYAML, FormatFromPath("surahs.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("/data/surahs.yaml"))
}
