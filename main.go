package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/components"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/embedded"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  = 960
	screenHeight = 640
)

var (
	seed       = flag.Int64("seed", 1, "随机种子")
	difficulty = flag.String("difficulty", "normal", "难度ID")
	character  = flag.String("character", game.DefaultCharacter, "角色ID")
	dataDir    = flag.String("data", "data", "配置目录（以 data/ 开头时读取嵌入资源）")
)

// Game 调试沙盒
// 每个 tick 推进一帧模拟，用纯色圆形绘制所有实体
type Game struct {
	sim   *systems.Simulation
	store *game.StatsStore
}

// NewGame 创建沙盒
//
// 参数：
//   - content: 配置数据
//   - store: 统计存储（可为降级模式）
func NewGame(content *config.Content, store *game.StatsStore) *Game {
	w := game.NewWorld(game.Options{
		Seed:       *seed,
		Difficulty: *difficulty,
		Character:  *character,
		Content:    content,
	})
	store.Restore(w)

	g := &Game{sim: systems.NewSimulation(w), store: store}
	w.SetNotifier(game.NotifierFunc(g.onEvent))
	g.sim.StartWave(1)
	return g
}

// onEvent 波次结束或玩家死亡时保存统计
func (g *Game) onEvent(ev game.Event) {
	game.LogNotifier{}.Notify(ev)
	switch ev.Kind {
	case game.EventWaveEnd, game.EventPlayerDeath:
		g.saveStats()
	}
}

func (g *Game) saveStats() {
	g.store.Capture(g.sim.World())
	if err := g.store.Save(); err != nil {
		log.Printf("[Game] ⚠️ Failed to save stats: %v", err)
	}
}

// Update 处理输入并推进一帧
func (g *Game) Update() error {
	w := g.sim.World()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.saveStats()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.IsPaused = !w.IsPaused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && w.Wave.Ended && !w.PlayerDead() {
		g.sim.StartWave(w.Wave.Index + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) && !w.PlayerDead() {
		g.sim.Waves.StartEndless()
	}

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	g.sim.SetInput(dx, dy)

	g.sim.Update()
	return nil
}

// Draw 绘制世界（摄像机居中）
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.sim.World()
	screen.Fill(colornames.Darkslategray)

	ox := float32(screenWidth/2 - w.Camera.X)
	oy := float32(screenHeight/2 - w.Camera.Y)
	circle := func(x, y, r float64, clr color.Color) {
		vector.DrawFilledCircle(screen, float32(x)+ox, float32(y)+oy, float32(r), clr, true)
	}

	vector.StrokeRect(screen, ox, oy, float32(w.Tuning.Map.Width), float32(w.Tuning.Map.Height), 2, colornames.Gray, false)

	for _, z := range w.Zones {
		clr := colornames.Orangered
		switch z.Type {
		case components.ZoneSafe:
			clr = colornames.Lightgreen
		case components.ZoneVisual:
			clr = colornames.Yellow
		}
		vector.StrokeCircle(screen, float32(z.X)+ox, float32(z.Y)+oy, float32(z.Radius), 2, clr, true)
	}
	for _, d := range w.Drops {
		clr := colornames.Gold
		switch d.Type {
		case components.DropHealth, components.DropBigHealth:
			clr = colornames.Limegreen
		case components.DropLoveHeart:
			clr = colornames.Hotpink
		}
		circle(d.X, d.Y, d.Radius, clr)
	}
	for _, e := range w.Enemies {
		clr := colornames.Crimson
		switch {
		case e.IsBoss():
			clr = colornames.Purple
		case e.Def != nil && e.Def.Elite:
			clr = colornames.Darkorange
		}
		if e.HitFlash > 0 || e.IsStunned() {
			clr = colornames.White
		}
		circle(e.X, e.Y, e.Radius, clr)
	}
	for _, p := range w.Projectiles {
		clr := colornames.Skyblue
		if p.IsEnemy {
			clr = colornames.Tomato
		}
		circle(p.X, p.Y, p.Radius, clr)
	}
	for _, pt := range w.Particles {
		circle(pt.X, pt.Y, 2, colornames.Lightyellow)
	}

	if w.Player.IsAlive() {
		clr := colornames.Dodgerblue
		if w.Player.InvulnTimer > 0 {
			clr = colornames.Lightblue
		}
		circle(w.Player.X, w.Player.Y, w.Player.Radius, clr)
	}
	for _, t := range w.Texts {
		ebitenutil.DebugPrintAt(screen, t.Text, int(float32(t.X)+ox), int(float32(t.Y)+oy))
	}

	ebitenutil.DebugPrint(screen, g.hud())
}

// hud 左上角状态文本
func (g *Game) hud() string {
	w := g.sim.World()
	p := w.Player
	status := ""
	switch {
	case w.IsPaused:
		status = "PAUSED"
	case w.Revive.Active:
		status = "REVIVING"
	case w.InCinematicTransition:
		status = "BOSS PHASE"
	case p.Dead:
		status = "DEAD (Esc)"
	case w.Wave.Ended:
		status = "WAVE CLEAR (N: next, E: endless)"
	}
	return fmt.Sprintf("Wave %d  HP %.0f/%.0f  Shield %.0f  Gold %d  Kills %d\nEnemies %d  Drops %d  FPS %.0f\n%s",
		w.Wave.Index, p.HP, p.Stats.MaxHP, p.Shield, p.Gold, w.Wave.Stats.Kills,
		len(w.Enemies), len(w.Drops), ebiten.ActualFPS(), status)
}

// Layout 固定逻辑分辨率
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// loadContent 加载配置，失败时回退到内置默认配置
func loadContent(dir string) *config.Content {
	content, err := config.LoadContent(dir)
	if err != nil {
		log.Printf("[Main] ⚠️ Failed to load content from %s: %v (using built-in defaults)", dir, err)
		return config.DefaultContent()
	}
	return content
}

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	gdataManager, err := gdata.Open(gdata.Config{AppName: "meme_survivor"})
	if err != nil {
		log.Printf("[Main] ⚠️ gdata unavailable: %v (stats kept in memory)", err)
		gdataManager = nil
	}

	g := NewGame(loadContent(*dataDir), game.NewStatsStore(gdataManager))

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Meme Survivor - 战斗沙盒")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
