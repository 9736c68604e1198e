package symbol

import (
	"reflect"
	"testing"
)

func TestCandidates(t *testing.T) {
	tests := []struct {
		name     string
		logical  Name
		prefixed bool
		version  int
		want     []string
	}{
		{"plain", ErrorName, false, 0, []string{"u_errorName"}},
		{"prefixed", ErrorName, true, 0, []string{"_u_errorName"}},
		{"versioned", ErrorName, false, 76, []string{"u_errorName_76"}},
		{"prefixed and versioned", ErrorName, true, 76, []string{"_u_errorName_76"}},
		{"collator versioned", CollatorCompare, false, 64, []string{"ucol_strcoll_64"}},
		{"search prefixed", SearchOpen, true, 0, []string{"_usearch_open"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidates(tt.logical, tt.prefixed, tt.version)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Candidates(%v, %v, %d) = %v, want %v", tt.logical, tt.prefixed, tt.version, got, tt.want)
			}
		})
	}
}

func TestCandidatesDeterministic(t *testing.T) {
	a := Candidates(SearchFirst, true, 76)
	b := Candidates(SearchFirst, true, 76)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("candidate generation not deterministic: %v vs %v", a, b)
	}
}

func TestAllNamesHaveSpellingsAndLibraries(t *testing.T) {
	seen := make(map[string]Name, len(All))
	for _, n := range All {
		if n.Export() == "" {
			t.Errorf("name %d has no canonical spelling", int(n))
		}
		if prev, dup := seen[n.Export()]; dup {
			t.Errorf("spelling %s shared by %v and %v", n.Export(), prev, n)
		}
		seen[n.Export()] = n
		if lib := n.Lib(); lib != Common && lib != I18n {
			t.Errorf("%v mapped to unknown library %d", n, lib)
		}
	}
}

func TestBaselineSymbolIsInCommonLibrary(t *testing.T) {
	// Auto-detection probes the common library only, so the baseline
	// symbol has to live there.
	if ErrorName.Lib() != Common {
		t.Fatalf("baseline %v is in library %v, want Common", ErrorName, ErrorName.Lib())
	}
}
