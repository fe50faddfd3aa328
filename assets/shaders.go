package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// SkyShader fills a rect with a vertical two-color gradient
	SkyShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	skySrc, err := shaderFS.ReadFile("shaders/sky.kage")
	if err != nil {
		return err
	}
	SkyShader, err = ebiten.NewShader(skySrc)
	if err != nil {
		return err
	}

	return nil
}
