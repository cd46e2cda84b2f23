package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/garden/levels"
	"github.com/milk9111/garden/prefabs"
	"github.com/milk9111/garden/sim"
	"github.com/milk9111/garden/system"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Config is the sandbox start-up configuration.
type Config struct {
	Character string
	Level     string
	Glide     bool
	Debug     bool
	Mute      bool
	Watch     bool
}

type Game struct {
	cfg    Config
	frames int

	level   *levels.Level
	session *sim.Session
	last    sim.Frame

	camera  *sandboxCamera
	sounds  *sounds
	watcher *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg Config) (*Game, error) {
	lvl, err := levels.LoadLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		level:  lvl,
		camera: newSandboxCamera(),
		sounds: newSounds(cfg.Mute),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("sandbox: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// restart builds a fresh session at the level spawn.
func (g *Game) restart() error {
	stats, err := prefabs.LoadCharacter(g.cfg.Character)
	if err != nil {
		return err
	}
	s, err := sim.NewSession(stats, g.level, sim.Options{
		GlideUnlocked: g.cfg.Glide,
		Camera:        g.camera,
		Debug:         g.cfg.Debug,
	})
	if err != nil {
		return err
	}
	g.session = s
	g.camera.snap(s.Body.Position())
	return nil
}

// reload rebuilds the character from the changed spec and puts it back where
// the old one stood. A broken spec keeps the running character.
func (g *Game) reload() {
	pos := g.session.Body.Position()
	prev := g.session
	if err := g.restart(); err != nil {
		log.Printf("sandbox: reload %s: %v", g.cfg.Character, err)
		g.session = prev
		return
	}
	g.session.Character.Teleport(pos)
	log.Printf("sandbox: reloaded %s", g.cfg.Character)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if change.Kind == prefabs.ChangeSpec && filepath.Base(change.Path) != filepath.Base(g.cfg.Character) {
				continue
			}
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("sandbox: watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollWatcher()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			log.Printf("sandbox: restart: %v", err)
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	readInput(g.session.Character)
	g.last = g.session.Step(dt)
	for _, evt := range g.last.Events {
		g.handleEvent(evt)
	}
	g.camera.update(g.session.Clock.Scale(dt), g.session.Body.Position())
	return nil
}

func (g *Game) handleEvent(evt system.Event) {
	g.sounds.play(evt)
	if g.cfg.Debug && evt.Kind != system.EventHealthChanged {
		log.Printf("sandbox: %s", evt.Kind)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.session, g.camera)

	c := g.session.Character
	hud := fmt.Sprintf("FPS: %.0f  %s\nstate: %s  dodge: %s\nhealth: %g/%g  spin: %.0f deg/s\ntime x%.2f  glide: %v",
		ebiten.ActualFPS(), g.level.Name,
		g.last.State, g.last.Dodge,
		g.last.Health, g.last.Max, c.SpinSpeed(),
		g.session.Clock.Factor(), g.cfg.Glide)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Close releases the watcher and the audio device.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.sounds.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// screenCenter is where the camera center lands on screen.
func screenCenter() mgl64.Vec2 {
	return mgl64.Vec2{baseWidth / 2, baseHeight / 2}
}
