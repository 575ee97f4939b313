package di

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/quranpak-player/internal/catalog"
	"github.com/ytget/quranpak-player/internal/config"
	"github.com/ytget/quranpak-player/internal/controller"
	"github.com/ytget/quranpak-player/internal/platform"
)

func TestNewContainer_WiresController(t *testing.T) {
	catalogPath, err := filepath.Abs(filepath.Join("..", "..", catalog.DefaultFilename))
	require.NoError(t, err)

	cfgPath := filepath.Join(t.TempDir(), config.DefaultConfigFilename)
	require.NoError(t, os.WriteFile(cfgPath, []byte("catalog_path: "+catalogPath+"\nhttp_timeout: 3s\n"), 0o600))

	injector := NewContainer(test.NewApp(), cfgPath)
	t.Cleanup(func() { _ = injector.Shutdown() })

	cfg := do.MustInvoke[*config.Config](injector)
	assert.Equal(t, 3*time.Second, cfg.ParsedHTTPTimeout)

	ctrl := do.MustInvoke[*controller.Controller](injector)
	s := ctrl.State()
	assert.NoError(t, s.CatalogErr)
	assert.Equal(t, 114, s.ChapterCount)

	_, err = do.Invoke[platform.URLOpener](injector)
	assert.NoError(t, err)
}

func TestNewContainer_InvalidConfigFallsBack(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), config.DefaultConfigFilename)
	require.NoError(t, os.WriteFile(cfgPath, []byte("language: xx\ncatalog_path: missing.json\n"), 0o600))

	injector := NewContainer(test.NewApp(), cfgPath)
	t.Cleanup(func() { _ = injector.Shutdown() })

	cfg := do.MustInvoke[*config.Config](injector)
	assert.Equal(t, config.DefaultLanguage, cfg.Language)
	assert.Equal(t, catalog.DefaultFilename, cfg.CatalogPath)

	ctrl := do.MustInvoke[*controller.Controller](injector)
	assert.ErrorIs(t, ctrl.State().CatalogErr, catalog.ErrNotFound)
}
