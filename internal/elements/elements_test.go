package elements

import (
	"strings"
	"sync"
	"testing"
)

func TestDefaultTable_Size(t *testing.T) {
	if got := Default().Len(); got != 80 {
		t.Errorf("Len() = %d, want 80", got)
	}
}

func TestLookup_Known(t *testing.T) {
	tests := []struct {
		symbol     string
		wantName   string
		wantNumber int
	}{
		{"H", "Hydrogen", 1},
		{"FE", "Iron", 26},
		{"AU", "Gold", 79},
		{"OG", "Oganesson", 118},
		{"W", "Tungsten", 74},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			rec, ok := Lookup(tt.symbol)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.symbol)
			}
			if rec.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", rec.Name, tt.wantName)
			}
			if rec.AtomicNumber != tt.wantNumber {
				t.Errorf("AtomicNumber = %d, want %d", rec.AtomicNumber, tt.wantNumber)
			}
			if rec.Symbol != tt.symbol {
				t.Errorf("Symbol = %q, want %q", rec.Symbol, tt.symbol)
			}
		})
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	for _, rec := range Default().All() {
		upper, okUpper := Lookup(strings.ToUpper(rec.Symbol))
		lower, okLower := Lookup(strings.ToLower(rec.Symbol))
		mixed, okMixed := Lookup(strings.ToUpper(rec.Symbol[:1]) + strings.ToLower(rec.Symbol[1:]))

		if !okUpper || !okLower || !okMixed {
			t.Errorf("%s: found upper=%v lower=%v mixed=%v", rec.Symbol, okUpper, okLower, okMixed)
			continue
		}
		if upper != rec || lower != rec || mixed != rec {
			t.Errorf("%s: lookups disagree: %+v %+v %+v", rec.Symbol, upper, lower, mixed)
		}
	}
}

func TestLookup_Miss(t *testing.T) {
	misses := []string{"ZZ", "", " FE", "FE ", "IRON", "X", "HG", "No text detected in the image."}

	for _, s := range misses {
		t.Run(s, func(t *testing.T) {
			rec, ok := Lookup(s)
			if ok {
				t.Errorf("Lookup(%q) = %+v, want miss", s, rec)
			}
			if rec != (Record{}) {
				t.Errorf("Lookup(%q) returned non-zero record on miss: %+v", s, rec)
			}
		})
	}
}

func TestAll_OrderedAndCopied(t *testing.T) {
	all := Default().All()
	for i := 1; i < len(all); i++ {
		if all[i-1].AtomicNumber >= all[i].AtomicNumber {
			t.Fatalf("All() not ordered at %d: %d >= %d", i, all[i-1].AtomicNumber, all[i].AtomicNumber)
		}
	}

	all[0].Name = "mutated"
	if rec, _ := Lookup("H"); rec.Name != "Hydrogen" {
		t.Error("mutating All() result changed the table")
	}
}

func TestRecord_Label(t *testing.T) {
	rec, _ := Lookup("FE")
	if got := rec.Label(); got != "Iron (FE)" {
		t.Errorf("Label() = %q, want %q", got, "Iron (FE)")
	}
}

func TestNewTable_Validation(t *testing.T) {
	tests := []struct {
		name string
		recs []Record
	}{
		{"duplicate", []Record{{"FE", "Iron", 26}, {"fe", "Iron", 26}}},
		{"long symbol", []Record{{"FEX", "Iron", 26}}},
		{"empty symbol", []Record{{"", "Iron", 26}}},
		{"digit symbol", []Record{{"F1", "Iron", 26}}},
		{"zero number", []Record{{"FE", "Iron", 0}}},
		{"too large", []Record{{"FE", "Iron", 119}}},
		{"no name", []Record{{"FE", " ", 26}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.recs); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewTable_NormalizesSymbols(t *testing.T) {
	tbl, err := NewTable([]Record{{" fe ", "Iron", 26}})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if _, ok := tbl.Lookup("FE"); !ok {
		t.Error("symbol was not normalized to FE")
	}
}

func TestTable_ConcurrentLookup(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, rec := range Default().All() {
				if _, ok := Lookup(rec.Symbol); !ok {
					t.Errorf("concurrent Lookup(%q) missed", rec.Symbol)
				}
			}
		}()
	}
	wg.Wait()
}
