// Package algorithm provides the escape-time iterations that fill a field.
//
// An Algorithm turns a canvas into an Iterator, a function from a sample
// point to its iteration count. Execute sweeps the iterator over every
// pixel, spreading columns across a worker pool.
package algorithm

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/field"
	"github.com/frascr/frascr/internal/parallel"
)

var (
	// ErrUnknownAlgorithm is returned by Lookup for unregistered names.
	ErrUnknownAlgorithm = errors.New("algorithm: unknown algorithm")

	// ErrSecondary reports missing or malformed secondary parameters.
	ErrSecondary = errors.New("algorithm: bad secondary parameters")
)

// Iterator returns the iteration count reached by the sample (re, im).
// It must be safe to call from several goroutines.
type Iterator func(re, im float64) uint32

// Algorithm prepares an Iterator for one canvas. Prepare parses the
// canvas's secondary parameters and captures whatever the iteration needs.
type Algorithm interface {
	Name() string
	Prepare(c field.Canvas) (Iterator, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Algorithm{}
)

// Register makes an algorithm available by name. A later registration with
// the same name replaces the earlier one.
func Register(name string, a Algorithm) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalize(name)] = a
}

// Lookup returns the algorithm registered under name. Names are matched
// ignoring case, any directory, a "lib" prefix and a file extension, so
// "/opt/frascr/libmandelquadbrute.so" finds "mandelquadbrute".
func Lookup(name string) (Algorithm, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if a, ok := registry[normalize(name)]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names lists the registered algorithms in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func normalize(name string) string {
	base := strings.ToLower(filepath.Base(strings.TrimSpace(name)))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(base, "lib")
}

// Execute runs a over every pixel of c and returns the filled field.
// Columns are distributed over workers goroutines (GOMAXPROCS when
// workers <= 0). Cancelling ctx stops the sweep between columns.
func Execute(ctx context.Context, a Algorithm, c field.Canvas, workers int) (*field.Field, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil algorithm", ErrUnknownAlgorithm)
	}
	f, err := field.ForCanvas(c)
	if err != nil {
		return nil, err
	}
	iter, err := a.Prepare(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Name(), err)
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	log := frascr.Logger()
	log.Debug("iteration started", "algorithm", a.Name(),
		"width", c.PixelWidth, "height", c.PixelHeight, "escape", c.Escape, "workers", pool.Workers())
	start := time.Now()

	err = pool.Run(ctx, f.Width, func(i int) {
		col := f.Column(i)
		for j := range col {
			re, im := c.Point(i, j)
			col[j] = field.Datum{Re: re, Im: im, N: iter(re, im)}
		}
		log.Log(ctx, frascr.LevelTrace, "column done", "column", i)
	})
	if err != nil {
		return nil, err
	}

	log.Debug("iteration finished", "algorithm", a.Name(), "elapsed", time.Since(start))
	return f, nil
}

// funcAlgorithm adapts a prepare function to Algorithm.
type funcAlgorithm struct {
	name    string
	prepare func(field.Canvas) (Iterator, error)
}

func (f funcAlgorithm) Name() string { return f.name }

func (f funcAlgorithm) Prepare(c field.Canvas) (Iterator, error) { return f.prepare(c) }

// New wraps a prepare function as an Algorithm.
func New(name string, prepare func(field.Canvas) (Iterator, error)) Algorithm {
	return funcAlgorithm{name: name, prepare: prepare}
}

func init() {
	Register("mandelquadbrute", New("mandelquadbrute", prepareMandelbrot))
	Register("juliaquadbrute", New("juliaquadbrute", prepareJulia))
	Register("brd", New("brd", prepareExponential))
	Register("generalmjexponential", New("generalmjexponential", prepareGeneralExponential))
}
