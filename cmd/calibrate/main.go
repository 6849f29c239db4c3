package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/BTBurke/randgen/pkg/rng"
	"github.com/BTBurke/randgen/pkg/stat"
)

const (
	Loops  int    = 1000
	Trials int    = 10000
	Seed   uint64 = 0x5eed
)

var wg sync.WaitGroup

type results struct {
	name string
	mu   sync.Mutex
	val  map[float64]float64
}

func (r *results) record(p float64, deviation float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val[p] = deviation
}

func newResults(name string) *results {
	return &results{
		name: name,
		val:  make(map[float64]float64),
	}
}

// calibrate measures how far the observed frequency of Chance(p) strays from p for each algorithm.
// Every goroutine owns its generator.
func main() {
	start := time.Now()
	all := make([]*results, 0)
	for _, kind := range rng.Kinds() {
		res := newResults(kind.String())
		all = append(all, res)
		for i := 1; i < 20; i++ {
			p := float64(i) * 0.05
			wg.Add(1)
			log.Printf("start algorithm=%s p=%1.2f\n", kind, p)
			go deviation(res, kind, p)
		}
	}
	wg.Wait()
	fmt.Printf("Time Elapsed: %v\n", time.Since(start))

	for _, res := range all {
		keys := make([]float64, 0, len(res.val))
		for p := range res.val {
			keys = append(keys, p)
		}
		sort.Float64s(keys)

		var b bytes.Buffer
		for _, p := range keys {
			b.WriteString(fmt.Sprintf("%f %f\n", p, res.val[p]))
		}
		if err := ioutil.WriteFile(fmt.Sprintf("%s.txt", res.name), b.Bytes(), 0644); err != nil {
			log.Fatalf("unable to write results for %s: %v", res.name, err)
		}
	}
}

func deviation(results *results, kind rng.Kind, p float64) {
	defer wg.Done()
	prng, err := rng.New(kind, Seed^math.Float64bits(p))
	if err != nil {
		log.Fatalf("unexpected error constructing generator: %v", err)
	}

	s := &stat.Summary{}
	for i := 0; i < Loops; i++ {
		hits := 0
		for j := 0; j < Trials; j++ {
			if prng.Chance(float32(p)) {
				hits++
			}
		}
		s.Record(float64(hits)/float64(Trials) - p)
	}
	fmt.Printf("Result: algorithm=%s p=%1.2f bias=%1.5f stddev=%1.5f\n", kind, p, s.Mean(), s.StdDev())
	results.record(p, s.Mean())
}
