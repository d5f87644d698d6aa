package transport

import (
	"fmt"
	"os"

	"github.com/orbital-csg/geomkit/diag"
	"github.com/orbital-csg/geomkit/registry"
)

// Kernel drives one particle's stepwise transport through a Registry's
// geometry. A Kernel is not safe for concurrent use (spec.md 5): give each
// goroutine stepping a particle its own Kernel over the shared, by-then
// frozen Registry.
type Kernel struct {
	reg   *registry.Registry
	cache stepCache

	warningHook func(diag.Warning)
	fatalHook   func(*diag.FatalError)
}

// NewKernel constructs a Kernel over reg. reg should already be frozen via
// registry.CompleteInput before transport begins, though the Kernel does
// not itself enforce that.
func NewKernel(reg *registry.Registry, opts ...Option) *Kernel {
	if reg == nil {
		panic("transport: NewKernel requires a non-nil registry")
	}
	k := &Kernel{
		reg:         reg,
		warningHook: func(w diag.Warning) { fmt.Fprintln(os.Stderr, w.Error()) },
		fatalHook:   func(*diag.FatalError) {},
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *Kernel) warn(w diag.Warning) { k.warningHook(w) }

func (k *Kernel) fatal(fe *diag.FatalError) *diag.FatalError {
	k.fatalHook(fe)
	return fe
}
