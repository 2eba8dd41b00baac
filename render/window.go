package render

import (
	"fmt"
	"math"
	"time"

	"github.com/earthtraveller1/tictactoe/game"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const gridLineWidth = 4

var mouseButtons = map[pixelgl.Button]game.Button{
	pixelgl.MouseButtonLeft:   game.ButtonLeft,
	pixelgl.MouseButtonRight:  game.ButtonRight,
	pixelgl.MouseButtonMiddle: game.ButtonMiddle,
}

// Run opens the game window and plays session until the window is closed.
// It must be called from the function passed to pixelgl.Run.
func Run(config game.GameConfig, session *game.Session, logger *logrus.Entry) error {
	logger = logger.WithField("component", "window")

	size := config.WindowSize()
	cfg := pixelgl.WindowConfig{
		Title:  config.Title,
		Bounds: pixel.R(0, 0, size.X, size.Y),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Destroy()

	sprites, err := loadSprites(config)
	if err != nil {
		return err
	}

	layout := session.Layout()
	height := win.Bounds().H()

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	textBaseline := height - config.HeaderHeight/2 - basicAtlas.LineHeight()/2
	statusText := text.New(pixel.V(config.Margin, textBaseline), basicAtlas)
	cellPosText := text.New(pixel.V(win.Bounds().W()-config.Margin-50, textBaseline), basicAtlas)
	cellPosText.Color = colornames.Darkcyan

	logger.WithFields(logrus.Fields{
		"width":  size.X,
		"height": size.Y,
	}).Debug("Window opened")

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		board := session.Board()

		statusText.Clear()
		statusText.Color = colornames.Black
		fmt.Fprint(statusText, session.Status())
		if _, decided := board.Winner(); decided {
			statusText.Color = colornames.Green
			fmt.Fprint(statusText, "   Enter: new game")
		} else if board.Full() {
			statusText.Color = colornames.Darkorange
			fmt.Fprint(statusText, "   Enter: new game")
		}
		statusText.Draw(win, pixel.IM)

		mousePos := flipY(win.MousePosition(), height)
		hoveredCell, isHovering := layout.MapPixelToCell(mousePos)
		isHovering = isHovering && win.MouseInsideWindow()

		cellPosText.Clear()
		if isHovering {
			fmt.Fprint(cellPosText, hoveredCell)
			cellPosText.Draw(win, pixel.IM)
		}

		imd := imdraw.New(nil)
		drawAnnotations(imd, config, session, height)
		drawGrid(imd, layout, height)
		imd.Draw(win)

		for _, pos := range game.Positions {
			player, occupied := board.CellAt(pos).Occupant()
			if !occupied {
				continue
			}
			center := flipY(layout.CellCenter(pos), height)
			sprite := sprites[player]
			sprite.Draw(win, spriteMatrix(sprite, layout.CellSize, center))
		}

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
			continue
		}

		// Start a new game with Enter
		if win.JustPressed(pixelgl.KeyEnter) {
			session.Reset()
			continue
		}

		if !isHovering {
			continue
		}
		for pixelButton, button := range mouseButtons {
			if win.JustPressed(pixelButton) {
				session.Press(button, mousePos)
			}
		}
	}

	logger.Debug("Window closed")
	return nil
}

func drawGrid(imd *imdraw.IMDraw, layout game.Layout, height float64) {
	bounds := layout.Bounds()

	imd.Color = colornames.Black
	for i := 1; i < 3; i++ {
		offset := float64(i) * layout.CellSize

		x := bounds.Min.X + offset
		imd.Push(flipY(pixel.V(x, bounds.Min.Y), height), flipY(pixel.V(x, bounds.Max.Y), height))
		imd.Line(gridLineWidth)

		y := bounds.Min.Y + offset
		imd.Push(flipY(pixel.V(bounds.Min.X, y), height), flipY(pixel.V(bounds.Max.X, y), height))
		imd.Line(gridLineWidth)
	}
}

func drawAnnotations(imd *imdraw.IMDraw, config game.GameConfig, session *game.Session, height float64) {
	duration := session.HighlightDuration()

	for _, annotation := range session.Annotations() {
		var baseColor pixel.RGBA
		alpha := config.HighlightBaseAlpha

		switch annotation.Type {
		case game.AnnotateLastMove:
			baseColor = pixel.RGB(1, 1, 0)
			if duration > 0 {
				progress := 1 - float64(annotation.Age)/float64(duration)
				alpha *= InOutCubic(math.Max(progress, 0))
			}
		case game.AnnotateWinningLine:
			baseColor = pixel.RGB(0, 1, 0)
		}

		rect := toWindowRect(session.Layout().CellBounds(annotation.Position), height)
		imd.Color = baseColor.Mul(pixel.Alpha(alpha))
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(0) // 0 = filled
	}
}

// flipY converts between screen coordinates (y growing downwards) and window
// coordinates (y growing upwards)
func flipY(v pixel.Vec, height float64) pixel.Vec {
	return pixel.V(v.X, height-v.Y)
}

func toWindowRect(r pixel.Rect, height float64) pixel.Rect {
	return pixel.R(r.Min.X, height-r.Max.Y, r.Max.X, height-r.Min.Y)
}

func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	} else {
		t -= 2
		return 0.5 * (t*t*t + 2)
	}
}
