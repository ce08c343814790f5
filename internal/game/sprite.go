package game

import (
	"fountain/internal/asset"
	"fountain/internal/logging"
)

// loadSprite reads the configured sprite, or generates the default one when
// path is empty.
func loadSprite(path string) (*asset.Image, error) {
	if path == "" {
		logging.Logger().Debug("using procedural sprite", "size", SpriteSize)
		return asset.RadialSprite(SpriteSize), nil
	}
	img, err := asset.Load(path)
	if err != nil {
		return nil, err
	}
	logging.Logger().Info("sprite loaded", "path", path, "width", img.Width, "height", img.Height)
	return img, nil
}
