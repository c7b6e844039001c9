package threadpool_test

import (
	"crypto/sha256"
	"sync"
	"testing"
	"time"

	tp "github.com/Andrej220/go-utils/tpool"
)

type workload struct {
	name string
	fn   tp.TaskFunc[int]
}

var shaData = []byte("some deterministic payloadsome deterministic payloadsome deterministic payload")

var (
	emptyWork = func(int) {}

	cpuWork = func(int) {
		x := 0
		for i := range 1000 {
			x += i * i
		}
		_ = x
	}

	ioWork = func(int) {
		time.Sleep(5 * time.Microsecond)
	}

	shaWork = func(int) {
		_ = sha256.Sum256(shaData)
	}
)

var workloads = []workload{
	{"empty ", emptyWork},
	{"sha256", shaWork},
	{"cpu   ", cpuWork},
	{"io    ", ioWork},
}

func BenchmarkSpawnWarm(b *testing.B) {
	for _, w := range workloads {
		b.Run(w.name, func(b *testing.B) {
			p := tp.NewPool[int](8, time.Minute)
			defer p.Stop()

			var wg sync.WaitGroup
			fn := w.fn
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				wg.Add(1)
				_ = p.Spawn(tp.Task[int]{
					Payload: i,
					Fn: func(n int) {
						fn(n)
						wg.Done()
					},
				})
			}
			wg.Wait()
		})
	}
}

func BenchmarkSpawnCold(b *testing.B) {
	// a single warm thread with churn forces the lazy-growth path
	p := tp.NewPool[int](1, 0)
	defer p.Stop()

	var wg sync.WaitGroup
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(1)
		_ = p.Spawn(tp.Task[int]{
			Payload: i,
			Fn:      func(int) { wg.Done() },
		})
	}
	wg.Wait()
}
