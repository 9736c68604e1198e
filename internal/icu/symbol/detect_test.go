package symbol

import (
	"errors"
	"testing"

	"github.com/dshills/unisearch/internal/logging"
)

var errNotFound = errors.New("symbol not found")

// fakeResolver resolves only the spellings it carries and records every
// probe it sees.
type fakeResolver struct {
	known  map[string]uintptr
	probes []string
}

func (f *fakeResolver) resolve(symbol string) (uintptr, error) {
	f.probes = append(f.probes, symbol)
	if addr, ok := f.known[symbol]; ok {
		return addr, nil
	}
	return 0, errNotFound
}

func TestDetectAdoptsFirstMatch(t *testing.T) {
	r := &fakeResolver{known: map[string]uintptr{"u_errorName_76": 1}}
	var d Detected

	v, ok := d.Detect(r.resolve, false, logging.Nop)
	if !ok || v != 76 {
		t.Fatalf("Detect = (%d, %v), want (76, true)", v, ok)
	}
	if d.Version() != 76 {
		t.Errorf("Version() = %d, want 76", d.Version())
	}
}

func TestDetectProbesAscendingFromFloor(t *testing.T) {
	r := &fakeResolver{known: map[string]uintptr{"u_errorName_63": 1}}
	var d Detected

	if _, ok := d.Detect(r.resolve, false, nil); !ok {
		t.Fatal("Detect failed")
	}

	want := []string{"u_errorName_60", "u_errorName_61", "u_errorName_62", "u_errorName_63"}
	if len(r.probes) != len(want) {
		t.Fatalf("probed %v, want %v", r.probes, want)
	}
	for i, p := range want {
		if r.probes[i] != p {
			t.Errorf("probe[%d] = %s, want %s", i, r.probes[i], p)
		}
	}
}

func TestDetectDoesNotReprobe(t *testing.T) {
	r := &fakeResolver{known: map[string]uintptr{"u_errorName_76": 1}}
	var d Detected

	if _, ok := d.Detect(r.resolve, false, nil); !ok {
		t.Fatal("first Detect failed")
	}
	probes := len(r.probes)

	v, ok := d.Detect(r.resolve, false, nil)
	if !ok || v != 76 {
		t.Fatalf("second Detect = (%d, %v), want cached (76, true)", v, ok)
	}
	if len(r.probes) != probes {
		t.Errorf("second Detect probed %d more symbols, want 0", len(r.probes)-probes)
	}
}

func TestDetectUsesPrefixedSpelling(t *testing.T) {
	r := &fakeResolver{known: map[string]uintptr{"_u_errorName_61": 1}}
	var d Detected

	v, ok := d.Detect(r.resolve, true, nil)
	if !ok || v != 61 {
		t.Fatalf("Detect = (%d, %v), want (61, true)", v, ok)
	}
}

func TestDetectExhaustionIsSticky(t *testing.T) {
	r := &fakeResolver{known: map[string]uintptr{}}
	var d Detected

	if _, ok := d.Detect(r.resolve, false, nil); ok {
		t.Fatal("Detect succeeded against an empty library")
	}
	wantProbes := MaxProbeVersion - MinProbeVersion + 1
	if len(r.probes) != wantProbes {
		t.Errorf("probed %d spellings, want %d", len(r.probes), wantProbes)
	}

	// A failed detection is final for the process; no re-probing.
	if _, ok := d.Detect(r.resolve, false, nil); ok {
		t.Fatal("second Detect succeeded after exhaustion")
	}
	if len(r.probes) != wantProbes {
		t.Error("exhausted detection re-probed on retry")
	}
}

func TestDetectOutOfRangeVersionIsUnavailable(t *testing.T) {
	r := &fakeResolver{known: map[string]uintptr{"u_errorName_104": 1}}
	var d Detected

	if v, ok := d.Detect(r.resolve, false, nil); ok {
		t.Fatalf("Detect adopted %d for a version outside the probe range", v)
	}
}
