package textutil

import (
	"math"
	"testing"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  intro \t", "intro"},
		{"composes", "cafe\u0301", "caf\u00e9"},
		{"already composed", "caf\u00e9", "caf\u00e9"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLabel(tt.in); got != tt.want {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"walk-cycle", "Walk Cycle"},
		{"idle_loop  two", "Idle Loop Two"},
		{"", "Untitled"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrigrams(t *testing.T) {
	got := Trigrams("Ab")
	want := []string{" ab", "ab "}
	if len(got) != len(want) {
		t.Fatalf("Trigrams = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Trigrams = %q, want %q", got, want)
		}
	}
	if Trigrams("  ") != nil {
		t.Fatal("expected nil trigrams for blank input")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
		want float64
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, NewFingerprint("intro"), 0},
		{"identical", NewFingerprint("intro"), NewFingerprint("intro"), 1},
		{"disjoint", NewFingerprint("abc"), NewFingerprint("xyz"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"intro", "outro", "loop"}
	if got, ok := Suggest("intr", candidates); !ok || got != "intro" {
		t.Fatalf("Suggest(intr) = %q, %v; want intro", got, ok)
	}
	if got, ok := Suggest("LOOP", candidates); !ok || got != "loop" {
		t.Fatalf("Suggest(LOOP) = %q, %v; want loop", got, ok)
	}
	if got, ok := Suggest("zzzz", candidates); ok {
		t.Fatalf("expected no suggestion, got %q", got)
	}
	if _, ok := Suggest("", candidates); ok {
		t.Fatal("expected no suggestion for blank input")
	}
}
