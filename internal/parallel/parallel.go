// Package parallel provides chunked parallel loops for the array kernels.
package parallel

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	"k8s.io/klog/v2"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvNumWorkers   = "NDARRAY_NUM_WORKERS"
	EnvMinChunkSize = "NDARRAY_MIN_CHUNK"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096, // Element kernels are cheap; amortize goroutine start-up.
	}
}

// ConfigFromEnv returns DefaultConfig overridden by NDARRAY_NUM_WORKERS and NDARRAY_MIN_CHUNK.
// NDARRAY_NUM_WORKERS=1 (or 0) disables parallelism. Malformed values are logged and ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v, ok := envInt(EnvNumWorkers); ok {
		cfg.NumWorkers = max(v, 1)
		cfg.Enabled = v > 1
	}
	if v, ok := envInt(EnvMinChunkSize); ok && v > 0 {
		cfg.MinChunkSize = v
	}
	return cfg
}

func envInt(name string) (int, bool) {
	s, found := os.LookupEnv(name)
	if !found || s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		klog.Warningf("ignoring %s=%q: %v", name, s, err)
		return 0, false
	}
	return v, true
}

// ForRange splits [0, n) into contiguous chunks and calls f(start, end) for each,
// concurrently when enabled. Kernels use it to set up per-chunk iterators once.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*cfg.MinChunkSize {
		// Sequential fallback.
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
