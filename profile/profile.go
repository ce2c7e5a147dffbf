package profile

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Profiler describes one profiling session. The zero Profiler is disabled.
type Profiler struct {
	Mode  string // one of [Modes]; empty disables profiling
	Path  string // output directory; empty selects a temporary directory
	Quiet bool   // suppress the profiler's own log output
}

// Start begins profiling and returns a Stopper that ends it. Start returns a
// no-op Stopper when p.Mode is empty or unknown, or when the binary was
// built without the [Tag] build tag.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
