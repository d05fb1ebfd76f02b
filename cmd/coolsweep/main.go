// Command coolsweep runs the fire automaton headlessly across a grid of
// cooling rates and field sizes, then reports which settings keep the
// flames alive. Results can be dumped to CSV for plotting.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"emberfall/internal/fire"
	"emberfall/internal/telemetry"
)

type scenario struct {
	width       int
	height      int
	coolingRate float64
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d cooling=%.5f", s.width, s.height, s.coolingRate)
}

func main() {
	steps := flag.Int("steps", 400, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	outPath := flag.String("out", "", "optional CSV output path")
	flag.Parse()

	sizes := []struct{ w, h int }{
		{w: 120, h: 90},
		{w: 250, h: 150},
		{w: 320, h: 200},
	}
	coolingRates := []float64{
		1.0 / 240, 1.0 / 120, 1.0 / 60, 1.0 / 30, 1.0 / 15,
	}

	var sets []scenario
	for _, size := range sizes {
		for _, rate := range coolingRates {
			sets = append(sets, scenario{width: size.w, height: size.h, coolingRate: rate})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan telemetry.SweepRecord)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				rec, err := runScenario(s, *steps)
				if err != nil {
					log.Printf("scenario %s: %v", s, err)
					continue
				}
				results <- rec
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
	}()

	start := time.Now()
	var all []telemetry.SweepRecord
	for rec := range results {
		all = append(all, rec)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].Width != all[j].Width {
			return all[i].Width < all[j].Width
		}
		if all[i].Height != all[j].Height {
			return all[i].Height < all[j].Height
		}
		return all[i].CoolingRate < all[j].CoolingRate
	})

	out, err := telemetry.New(*outPath)
	if err != nil {
		log.Fatalf("open output: %v", err)
	}
	if err := out.Write(all); err != nil {
		log.Fatalf("write output: %v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("close output: %v", err)
	}

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, rec := range all {
		fmt.Printf("%4dx%-4d cooling=%.5f meanHeat=%.3f lit=%.1f%% flameHeight=%d\n",
			rec.Width, rec.Height, rec.CoolingRate, rec.MeanHeat, 100*rec.LitFraction, rec.FlameHeight)
	}
}

func runScenario(s scenario, steps int) (telemetry.SweepRecord, error) {
	field, err := fire.New(s.width, s.height, s.coolingRate)
	if err != nil {
		return telemetry.SweepRecord{}, err
	}
	field.Reset(1337)

	for i := 0; i < steps; i++ {
		field.Propagate()
	}

	heat := field.Heat()
	var sum float64
	lit := 0
	for _, h := range heat {
		sum += h
		if h > 0 {
			lit++
		}
	}

	return telemetry.SweepRecord{
		Width:       s.width,
		Height:      s.height,
		CoolingRate: s.coolingRate,
		Steps:       steps,
		MeanHeat:    sum / float64(len(heat)),
		LitFraction: float64(lit) / float64(len(heat)),
		FlameHeight: flameHeight(heat, s.width, s.height),
	}, nil
}

// flameHeight reports how many rows above the fuel row contain at least
// one cell at half heat or more.
func flameHeight(heat []float64, w, h int) int {
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			if heat[y*w+x] >= 0.5 {
				return h - 1 - y
			}
		}
	}
	return 0
}
