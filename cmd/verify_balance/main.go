// verify_balance 无窗口批量运行模拟，输出每波统计
//
// 用法：
//
//	go run ./cmd/verify_balance -waves 10 -difficulty hard -seed 42
//	go run ./cmd/verify_balance -data data -runs 5
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/config"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/game"
	"github.com/OU2018/MemeSurvivor-AGameDevelopedByMyBro-sub001/pkg/systems"
)

var (
	dataDir    = flag.String("data", "", "配置目录（为空使用内置默认配置）")
	difficulty = flag.String("difficulty", "normal", "难度ID")
	seed       = flag.Int64("seed", 1, "第一轮的随机种子（之后每轮 +1）")
	runs       = flag.Int("runs", 1, "运行轮数")
	waves      = flag.Int("waves", 10, "每轮最多运行的波数")
	maxFrames  = flag.Int("max-frames", 60*60*5, "单波最多帧数（超出视为卡住）")
	verbose    = flag.Bool("verbose", false, "输出 Boss/复活等事件日志")
)

// waveResult 单波结果
type waveResult struct {
	wave   int
	frames int
	kills  int
	gold   int
	hp     float64
	stuck  bool
}

func main() {
	flag.Parse()

	content := config.DefaultContent()
	if *dataDir != "" {
		loaded, err := config.LoadContent(*dataDir)
		if err != nil {
			fmt.Printf("❌ 加载配置失败: %v\n", err)
			os.Exit(1)
		}
		content = loaded
	}

	failed := 0
	for r := 0; r < *runs; r++ {
		results := runOnce(content, *seed+int64(r))
		fmt.Printf("=== run %d (seed=%d difficulty=%s) ===\n", r+1, *seed+int64(r), *difficulty)
		for _, res := range results {
			mark := "✅"
			if res.stuck {
				mark = "❌"
				failed++
			}
			fmt.Printf("%s wave %2d: frames=%5d kills=%3d gold=%4d hp=%.0f\n",
				mark, res.wave, res.frames, res.kills, res.gold, res.hp)
		}
	}
	if failed > 0 {
		fmt.Printf("❌ %d 波未能在 %d 帧内结束\n", failed, *maxFrames)
		os.Exit(1)
	}
}

// runOnce 用自动驾驶玩家（原地不动，只靠自动射击）跑完若干波
func runOnce(content *config.Content, s int64) []waveResult {
	var notifier game.Notifier = game.NopNotifier{}
	if *verbose {
		notifier = game.LogNotifier{}
	}
	w := game.NewWorld(game.Options{Seed: s, Difficulty: *difficulty, Content: content, Notifier: notifier})
	sim := systems.NewSimulation(w)

	var results []waveResult
	for n := 1; n <= *waves; n++ {
		sim.StartWave(n)
		goldBefore := w.Player.Gold
		frames := 0
		for !w.WaveEnded() && !w.PlayerDead() && frames < *maxFrames {
			sim.Update()
			frames++
		}
		results = append(results, waveResult{
			wave:   n,
			frames: frames,
			kills:  w.Wave.Stats.Kills,
			gold:   w.Player.Gold - goldBefore,
			hp:     w.Player.HP,
			stuck:  frames >= *maxFrames,
		})
		if w.PlayerDead() {
			log.Printf("[verify_balance] Player died on wave %d", n)
			break
		}
	}
	return results
}
