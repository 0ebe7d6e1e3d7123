package main

import (
	"fmt"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/topdown/config"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/sim"
)

// Game glues the simulation to Ebitengine: it samples input, steps the
// world, services its events, and draws the scene plus HUD and menus.
type Game struct {
	log *zap.Logger
	cfg *config.Config

	world *sim.World
	rooms map[string]sim.RoomConfig
	input *Input
	rdr   *Renderer
	hud   *HUD
	audio *Audio

	seedReq uint64 // requested seed; zero draws a fresh one per run
	dev     bool
	overlay bool

	paused   bool
	gameOver bool
	quit     bool
	pauseUI  *ebitenui.UI
	overUI   *ebitenui.UI

	watcher *prefabs.Watcher
}

func NewGame(cfg *config.Config, log *zap.Logger, seed uint64, dev bool) (*Game, error) {
	g := &Game{
		log:     log,
		cfg:     cfg,
		input:   NewInput(),
		rdr:     NewRenderer(),
		hud:     NewHUD(),
		seedReq: seed,
		dev:     dev,
		overlay: dev,
	}
	g.audio = NewAudio(cfg.Audio, log)

	if err := g.reset(); err != nil {
		return nil, err
	}

	if dev {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Warn("prefab watcher unavailable", zap.Error(err))
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = newPauseMenu(g)
	g.overUI = newGameOverMenu(g)
	return g, nil
}

// reset builds a fresh world from the current specs and enters the start
// room. Score, health, and the bounty all start over.
func (g *Game) reset() error {
	worldCfg, rooms, bounty, err := loadWorldConfig(g.log)
	if err != nil {
		return err
	}
	start, ok := rooms[g.cfg.Game.StartRoom]
	if !ok {
		return fmt.Errorf("start room %q not defined", g.cfg.Game.StartRoom)
	}

	worldCfg.Seed = g.seedReq
	worldCfg.QuestTarget = bounty
	worldCfg.Logger = g.log.Named("sim")
	g.rooms = rooms
	g.world = sim.NewWorld(worldCfg)
	g.world.EnterRoom(start)
	g.gameOver = false

	g.log.Info("world ready",
		zap.Uint64("seed", g.world.Seed()),
		zap.Int("rooms", len(rooms)),
		zap.Int("bounty", bounty))
	return nil
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(keyNames["pause"]) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.overlay = !g.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.audio.ToggleMute() {
			g.hud.Notify("Muted.")
		} else {
			g.hud.Notify("Sound on.")
		}
	}

	// the world keeps ticking behind the game-over menu so particles and
	// wanderers play out; with the actor gone, input cannot reach anything
	g.input.Update()
	g.world.Step(time.Now(), g.input)
	g.handleEvents()
	g.hud.Update()

	if g.gameOver {
		g.overUI.Update()
	}
	return nil
}

func (g *Game) handleEvents() {
	for _, ev := range g.world.DrainEvents() {
		switch ev.Type {
		case sim.EventAreaEntered:
			if d, ok := ev.Data.(sim.AreaEntered); ok {
				g.hud.Notify(fmt.Sprintf("- %s -", d.Room))
			}
		case sim.EventTransitionRequested:
			d, ok := ev.Data.(sim.TransitionRequested)
			if !ok {
				break
			}
			next, found := g.rooms[d.Room]
			if !found {
				g.log.Warn("door leads nowhere", zap.String("room", d.Room), zap.String("door", d.Door))
				break
			}
			g.audio.Play(CueDoor)
			g.world.EnterRoom(next)
		case sim.EventQuestCompleted:
			g.audio.Play(CueQuest)
			g.hud.Notify("Bounty cleared.")
		case sim.EventActorHealth:
			g.audio.Play(CueHurt)
		case sim.EventActorDefeated:
			g.audio.Play(CueDefeat)
			g.gameOver = true
		case sim.EventHostileKilled:
			g.audio.Play(CueKill)
		case sim.EventNotice:
			if d, ok := ev.Data.(sim.Notice); ok {
				g.hud.Notify(d.Text)
			}
		}
	}
}

// drainWatcher applies pending prefab edits. Room changes land on the next
// room entry; tuning changes land on restart.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Info("prefab changed", zap.String("path", path))
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watcher", zap.Error(err))
		default:
			if reload {
				g.reloadSpecs()
			}
			return
		}
	}
}

func (g *Game) reloadSpecs() {
	_, rooms, _, err := loadWorldConfig(g.log)
	if err != nil {
		g.log.Warn("prefab reload failed", zap.Error(err))
		g.hud.Notify("Prefab reload failed.")
		return
	}
	g.rooms = rooms
	g.hud.Notify("Prefabs reloaded.")
	g.log.Info("prefabs reloaded", zap.Int("rooms", len(rooms)))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.rdr.Begin(screen)
	g.world.Draw(g.rdr)
	g.hud.Draw(screen, g.world)

	if g.overlay {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f  entities: %d  particles: %d  seed: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.world.LiveEntities(), g.world.ParticleCount(), g.world.Seed()))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.gameOver {
		g.overUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
