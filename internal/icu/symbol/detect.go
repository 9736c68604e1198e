package symbol

import "github.com/dshills/unisearch/internal/logging"

// Probe bounds for version auto-detection. The floor is the oldest build
// whose collation and search entry points match what the binding table
// expects; the ceiling leaves years of headroom. Both are deliberate,
// documented constants: the probe is a best-effort heuristic over
// sequentially-versioned hosts, and a host with an unusual scheme outside
// this range is treated as not having the library at all.
const (
	MinProbeVersion = 60
	MaxProbeVersion = 99
)

// Resolver resolves one exported spelling to an address. It is the shape
// of loader.(*Handle).Lookup.
type Resolver func(symbol string) (uintptr, error)

// Detected is the process's write-once effective version. It is owned by
// the binding table's construction step and handed by pointer into every
// lookup that may need it; there is no ambient global to mutate.
type Detected struct {
	version int
	done    bool
}

// Version returns the adopted version, 0 when none was detected.
func (d *Detected) Version() int { return d.version }

// Detect probes the baseline symbol's versioned spellings ascending through
// [MinProbeVersion, MaxProbeVersion] and adopts the first that resolves.
// A prior successful detection answers immediately without re-probing;
// exhaustion reports false and the library counts as unavailable.
func (d *Detected) Detect(resolve Resolver, prefixed bool, log *logging.Logger) (int, bool) {
	if d.done {
		return d.version, d.version != 0
	}
	if log == nil {
		log = logging.Nop
	}

	for v := MinProbeVersion; v <= MaxProbeVersion; v++ {
		name := Spell(ErrorName, prefixed, v)
		if _, err := resolve(name); err == nil {
			d.version = v
			d.done = true
			log.Debug("version auto-detect adopted %d via %s", v, name)
			return v, true
		}
	}

	d.done = true
	log.Debug("version auto-detect exhausted %d..%d", MinProbeVersion, MaxProbeVersion)
	return 0, false
}
