package transport

import "github.com/orbital-csg/geomkit/diag"

// Option configures a Kernel at construction time, in the corpus's
// functional-option style.
type Option func(*Kernel)

// WithWarningHook registers a callback invoked once per informational
// condition (spec.md 7: bump-on-zero, used-global-search,
// connectivity-complete). The default writes each warning to os.Stderr;
// hooks must not panic,
// and must not call back into the Kernel that invoked them.
func WithWarningHook(hook func(diag.Warning)) Option {
	if hook == nil {
		panic("transport: WithWarningHook requires a non-nil hook")
	}
	return func(k *Kernel) { k.warningHook = hook }
}

// WithFatalHook registers a callback invoked with the diagnostic dump just
// before a fatal condition is returned as an error (spec.md 4.F: "prints
// the same header plus a dump ... then aborts the transport call with a
// structured error"). The default is a no-op; the *diag.FatalError is
// always also returned to the caller regardless of whether a hook is set.
func WithFatalHook(hook func(*diag.FatalError)) Option {
	if hook == nil {
		panic("transport: WithFatalHook requires a non-nil hook")
	}
	return func(k *Kernel) { k.fatalHook = hook }
}
