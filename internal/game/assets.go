package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/assets"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/commons/logger_config"
)

// AssetManager bridges the async loader to ebiten textures. Sprites that
// have not arrived yet simply draw as primitives.
type AssetManager struct {
	loader *assets.Loader
	images map[string]*ebiten.Image
}

func NewAssetManager(loader *assets.Loader) *AssetManager {
	return &AssetManager{
		loader: loader,
		images: map[string]*ebiten.Image{},
	}
}

func (m *AssetManager) Request(key, path string) {
	select {
	case m.loader.Req <- assets.Request{Key: key, Path: path}:
	default:
		logger_config.Warnf("assets: request queue full, dropping %q", key)
	}
}

// Poll drains finished loads. Call once per frame before drawing.
func (m *AssetManager) Poll() {
	for {
		select {
		case res := <-m.loader.Res:
			if res.Err != nil {
				logger_config.Debugf("assets: load %q failed: %v", res.Key, res.Err)
				continue
			}
			m.images[res.Key] = ebiten.NewImageFromImage(res.Image)
		default:
			return
		}
	}
}

func (m *AssetManager) Get(key string) *ebiten.Image {
	return m.images[key]
}
