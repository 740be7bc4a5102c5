package elements

import (
	"fmt"
	"sort"
	"strings"
)

// Record describes a single chemical element as printed on a periodic-table cell.
type Record struct {
	// Symbol is the uppercase one or two letter element symbol (e.g. "FE").
	Symbol string `json:"symbol"`

	// Name is the English display name (e.g. "Iron").
	Name string `json:"name"`

	// AtomicNumber is the element's position in the periodic table (1-118).
	AtomicNumber int `json:"atomic_number"`
}

// Label renders the record the way results present it: "Iron (FE)".
func (r Record) Label() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.Symbol)
}

// Table is a read-only symbol to Record mapping.
//
// A Table is populated once by NewTable and never written afterward, so it is
// safe for concurrent use by multiple goroutines without locking.
type Table struct {
	bySymbol map[string]Record
	ordered  []Record
}

// NewTable builds a Table from the given records.
//
// Returns an error if a symbol is duplicated, is not one or two letters, or an
// atomic number falls outside 1-118.
func NewTable(recs []Record) (*Table, error) {
	t := &Table{
		bySymbol: make(map[string]Record, len(recs)),
		ordered:  make([]Record, 0, len(recs)),
	}
	for _, r := range recs {
		r.Symbol = strings.ToUpper(strings.TrimSpace(r.Symbol))
		if err := validate(r); err != nil {
			return nil, err
		}
		if _, dup := t.bySymbol[r.Symbol]; dup {
			return nil, fmt.Errorf("duplicate element symbol %q", r.Symbol)
		}
		t.bySymbol[r.Symbol] = r
		t.ordered = append(t.ordered, r)
	}
	sort.Slice(t.ordered, func(i, j int) bool {
		return t.ordered[i].AtomicNumber < t.ordered[j].AtomicNumber
	})
	return t, nil
}

func validate(r Record) error {
	if n := len(r.Symbol); n < 1 || n > 2 {
		return fmt.Errorf("element symbol %q must be one or two letters", r.Symbol)
	}
	for _, c := range r.Symbol {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("element symbol %q must be letters only", r.Symbol)
		}
	}
	if r.AtomicNumber < 1 || r.AtomicNumber > 118 {
		return fmt.Errorf("element %s: atomic number %d outside 1-118", r.Symbol, r.AtomicNumber)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("element %s: empty name", r.Symbol)
	}
	return nil
}

// Lookup returns the record stored under symbol.
//
// Keys are stored uppercase and the argument is uppercased before matching, so
// "fe", "Fe" and "FE" all resolve to Iron. Matching is otherwise exact: no
// trimming, no fuzzy or partial matches. A miss returns false.
func (t *Table) Lookup(symbol string) (Record, bool) {
	r, ok := t.bySymbol[strings.ToUpper(symbol)]
	return r, ok
}

// All returns a copy of every record ordered by atomic number.
func (t *Table) All() []Record {
	out := make([]Record, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len reports the number of records in the table.
func (t *Table) Len() int { return len(t.ordered) }

var defaultTable = mustTable(records)

func mustTable(recs []Record) *Table {
	t, err := NewTable(recs)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the built-in reference table.
func Default() *Table { return defaultTable }

// Lookup resolves symbol against the built-in reference table.
func Lookup(symbol string) (Record, bool) { return defaultTable.Lookup(symbol) }
