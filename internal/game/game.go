// Package game is the ebiten front end: it renders the scene, feeds cursor
// and touch positions to the proximity engine and drives its frame loop.
package game

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/cursor-light/internal/config"
	"github.com/iburimskiy/cursor-light/internal/input"
	"github.com/iburimskiy/cursor-light/internal/proximity"
	"github.com/iburimskiy/cursor-light/internal/scene"
)

// Button ids with a built-in action.
const (
	ActionThemeToggle = "theme-toggle"
	ActionOpenScene   = "open-scene"
	ActionScrollToTop = "scroll-to-top"
)

// Options configures a Game.
type Options struct {
	Scene  *scene.Scene
	Groups []proximity.Group
	Sound  bool
	Debug  bool
	Logger *log.Logger
}

type Game struct {
	scene   *scene.Scene
	groups  []proximity.Group
	pointer *proximity.Pointer
	cursor  *input.Tracker
	frames  *proximity.FrameLoop
	engine  *proximity.Engine

	ctx    context.Context
	cancel context.CancelFunc
	logger *log.Logger

	sound   *clicker
	face    text.Face
	theme   int
	time    float64
	debug   bool
	spawned []*scene.Node
	pressed *scene.Node
	touches []ebiten.TouchID

	lastCursor image.Point
	touchHeld  bool
	lastErr error
}

func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		groups:  opts.Groups,
		pointer: proximity.NewPointer(opts.Scene.Width, opts.Scene.Height),
		cursor:  input.NewTracker(),
		frames:  proximity.NewFrameLoop(),
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
		face:    text.NewGoXFace(basicfont.Face7x13),
		debug:   opts.Debug,
	}
	if opts.Sound {
		g.sound = newClicker(logger)
	}
	g.setScene(opts.Scene)
	return g
}

// setScene replaces the scene and restarts the engine on it. The pointer cell
// is kept so the light does not jump back to the centre.
func (g *Game) setScene(sc *scene.Scene) {
	if g.engine != nil {
		g.engine.Stop()
	}
	g.scene = sc
	g.spawned = nil
	g.pressed = nil
	g.engine = proximity.NewEngine(g.groups, sc, g.pointer, g.cursor, g.frames, proximity.WithLogger(g.logger))
	g.engine.Start(g.ctx)
}

// Scene returns the scene being shown.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Engine returns the running proximity engine.
func (g *Game) Engine() *proximity.Engine { return g.engine }

// Close stops the engine and any sound.
func (g *Game) Close() {
	g.cancel()
	g.engine.Stop()
	g.sound.stop()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Close()
		return ebiten.Termination
	}

	g.time += 1.0 / float64(ebiten.TPS())
	g.pollPointer()
	g.handleKeys()
	g.handleClicks()

	// Engine ticks run here, after input, so they see this frame's pointer.
	g.frames.Step()
	return nil
}

func (g *Game) pollPointer() {
	var touch image.Point
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		touch = image.Pt(ebiten.TouchPosition(g.touches[0]))
	}
	g.feedPointer(len(g.touches) > 0, touch, image.Pt(ebiten.CursorPosition()))
}

// feedPointer passes one frame of input to the tracker. Once a touch ends the
// light stays at the last touch position until the cursor itself moves.
func (g *Game) feedPointer(touching bool, touch, cursor image.Point) {
	cursorMoved := cursor != g.lastCursor
	g.lastCursor = cursor
	switch {
	case touching:
		g.touchHeld = true
		g.cursor.Observe(float64(touch.X), float64(touch.Y))
	case g.touchHeld && !cursorMoved:
	default:
		g.touchHeld = false
		g.cursor.Observe(float64(cursor.X), float64(cursor.Y))
	}
}

func (g *Game) pointerPos() proximity.Vec {
	return g.pointer.Position()
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.spawnCard(g.pointerPos())
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.removeSpawned()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.debug = !g.debug
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.toggleTheme()
	}
}

func (g *Game) handleClicks() {
	p := g.pointerPos()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		g.pressed = g.scene.HitTest(p, "button")
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		if g.pressed != nil && g.scene.HitTest(p, "button") == g.pressed {
			if err := g.activate(g.pressed); err != nil {
				g.logger.Printf("action %q: %v", g.pressed.ID, err)
				g.lastErr = err
			}
		}
		g.pressed = nil
	}
}

// activate runs the action bound to a clicked button.
func (g *Game) activate(n *scene.Node) error {
	g.sound.click()
	switch n.ID {
	case ActionThemeToggle:
		g.toggleTheme()
	case ActionOpenScene:
		return g.openSceneDialog()
	case ActionScrollToTop:
		for len(g.spawned) > 0 {
			g.removeSpawned()
		}
	default:
		g.logger.Printf("clicked %q", n.Text)
	}
	return nil
}

func (g *Game) toggleTheme() {
	g.theme = (g.theme + 1) % len(palettes)
	g.logger.Printf("theme: %s", palettes[g.theme].name)
}

// spawnCard adds a card centred on p. The engine picks it up on its next
// tick since groups are re-queried every frame.
func (g *Game) spawnCard(p proximity.Vec) *scene.Node {
	w, h := float64(config.SpawnCardWidth), float64(config.SpawnCardHeight)
	card := scene.NewNode("div", proximity.Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}, "glass-card")
	g.scene.Add(nil, card)
	title := scene.NewNode("h2", proximity.Rect{X: card.Rect.X + 16, Y: card.Rect.Y + 16, W: w - 32, H: 24})
	title.Text = fmt.Sprintf("Card %d", len(g.spawned)+1)
	g.scene.Add(card, title)
	g.spawned = append(g.spawned, card)
	return card
}

func (g *Game) removeSpawned() {
	if len(g.spawned) == 0 {
		return
	}
	last := g.spawned[len(g.spawned)-1]
	g.spawned = g.spawned[:len(g.spawned)-1]
	g.scene.Remove(last)
}

func (g *Game) openSceneDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Layout"),
		zenity.FileFilters{{
			Name:     "Scene",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	sc, err := scene.LoadFile(filename)
	if err != nil {
		return err
	}
	g.logger.Printf("loaded %s (%d nodes)", filename, sc.Len())
	g.lastErr = nil
	g.setScene(sc)
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.scene.Width), int(g.scene.Height)
}
