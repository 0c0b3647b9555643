package adapters

import (
	"fmt"
	"os"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"reqspec/internal/ports"
	"reqspec/internal/shared"
	"reqspec/internal/types"
)

const defaultManifestCacheSize = 128

// PyProjectFileAdapter reads pyproject.toml manifests. Decoded manifests
// are cached per path and reused while the file's modification time and
// size are unchanged.
type PyProjectFileAdapter struct {
	cache *lru.Cache[string, pyprojectCacheEntry]
}

type pyprojectCacheEntry struct {
	modTime  time.Time
	size     int64
	manifest types.PyProject
}

func NewPyProjectFileAdapter() (*PyProjectFileAdapter, error) {
	return NewPyProjectFileAdapterWithSize(defaultManifestCacheSize)
}

func NewPyProjectFileAdapterWithSize(size int) (*PyProjectFileAdapter, error) {
	cache, err := lru.New[string, pyprojectCacheEntry](size)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to create manifest cache").
			WithCause(err)
	}
	return &PyProjectFileAdapter{cache: cache}, nil
}

func (a *PyProjectFileAdapter) ReadManifest(path string) (types.PyProject, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.PyProject{}, shared.NewSourceError(types.ErrorKindIO, path,
			fmt.Sprintf("failed to read `%s`", path), err)
	}
	if entry, ok := a.cache.Get(path); ok && entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
		log.Debug().Str("path", path).Msg("manifest cache hit")
		return entry.manifest, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.PyProject{}, shared.NewSourceError(types.ErrorKindIO, path,
			fmt.Sprintf("failed to read `%s`", path), err)
	}
	var manifest types.PyProject
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return types.PyProject{}, shared.NewSourceError(types.ErrorKindToml, path,
			fmt.Sprintf("failed to read `%s`", path), err)
	}
	a.cache.Add(path, pyprojectCacheEntry{
		modTime:  info.ModTime(),
		size:     info.Size(),
		manifest: manifest,
	})
	return manifest, nil
}

// Len reports how many manifests are cached.
func (a *PyProjectFileAdapter) Len() int {
	return a.cache.Len()
}

var _ ports.ManifestPort = (*PyProjectFileAdapter)(nil)
