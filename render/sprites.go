package render

import (
	"fmt"
	"image"
	"os"

	_ "image/png"

	"github.com/earthtraveller1/tictactoe/game"
	"github.com/faiface/pixel"
)

// spriteFill is the share of a cell covered by a player's sprite
const spriteFill = 0.8

func loadSprites(config game.GameConfig) (map[game.Player]*pixel.Sprite, error) {
	paths := map[game.Player]string{
		game.PlayerA: config.PlayerAImage,
		game.PlayerB: config.PlayerBImage,
	}

	sprites := make(map[game.Player]*pixel.Sprite, len(paths))
	for _, player := range game.Players {
		picture, err := loadPicture(paths[player])
		if err != nil {
			return nil, fmt.Errorf("loading sprite for %s: %w", player, err)
		}
		sprites[player] = pixel.NewSprite(picture, picture.Bounds())
	}
	return sprites, nil
}

// spriteMatrix scales sprite to fit a cell of cellSize and centers it on pos
func spriteMatrix(sprite *pixel.Sprite, cellSize float64, pos pixel.Vec) pixel.Matrix {
	frame := sprite.Frame()
	longest := frame.W()
	if frame.H() > longest {
		longest = frame.H()
	}
	if longest == 0 {
		return pixel.IM.Moved(pos)
	}
	return pixel.IM.Scaled(pixel.ZV, cellSize*spriteFill/longest).Moved(pos)
}

func loadPicture(path string) (pixel.Picture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return pixel.PictureDataFromImage(img), nil
}
