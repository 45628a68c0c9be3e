// Headless stress run of contact generation against a range of contact budgets.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"dicedemo/internal/config"
	"dicedemo/internal/dice"
	"dicedemo/internal/sim"
)

func main() {
	frames := flag.Int("frames", 200, "frames simulated per run")
	seed := flag.Int64("seed", 42, "layout seed")
	flag.Parse()

	diceCounts := []int{5, 20, 50, 100}
	budgets := []int{0, 16, 64, 256, 1024}

	fmt.Printf("%6s %7s %10s %10s %12s %s\n", "dice", "budget", "avg", "max", "per frame", "capped")
	for _, n := range diceCounts {
		for _, budget := range budgets {
			run(n, budget, *frames, *seed)
		}
	}
}

// run drops n dice, a fifth of them bipyramids, into a heap and steps them.
func run(n, budget, frames int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	spread := 2 + float32(n)/10

	cfg := config.Default()
	cfg.MaxContacts = budget
	cfg.StartPaused = false
	cfg.Dice = cfg.Dice[:0]
	for i := 0; i < n; i++ {
		kind := dice.KindBox
		if i%5 == 4 {
			kind = dice.KindBipyramid
		}
		cfg.Dice = append(cfg.Dice, config.DieConfig{
			Kind: kind.String(),
			Position: [3]float32{
				rng.Float32()*spread - spread/2,
				1 + rng.Float32()*float32(n)*0.5,
				rng.Float32()*spread - spread/2,
			},
			HalfSize: [3]float32{1, 1, 1},
		})
	}

	s, err := sim.New(cfg)
	if err != nil {
		fmt.Printf("%6d %7d error: %v\n", n, budget, err)
		return
	}

	total, peak, capped := 0, 0, 0
	start := time.Now()
	for f := 1; f <= frames; f++ {
		stats := s.Update(sim.Timing{FrameNumber: uint64(f), LastDuration: 1.0 / 60})
		if stats.Contacts > budget {
			panic(fmt.Sprintf("%d contacts over a budget of %d", stats.Contacts, budget))
		}
		total += stats.Contacts
		peak = max(peak, stats.Contacts)
		if stats.Contacts == budget {
			capped++
		}
	}
	perFrame := time.Since(start) / time.Duration(frames)

	fmt.Printf("%6d %7d %10.1f %10d %12v %d/%d\n",
		n, budget, float64(total)/float64(frames), peak, perFrame.Round(time.Microsecond), capped, frames)
}
