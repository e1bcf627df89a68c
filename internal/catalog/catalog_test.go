package catalog_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kjannette/marketmind-backend/internal/catalog"
)

func mustDefault(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return c
}

func TestLookup_KnownSymbols(t *testing.T) {
	c := mustDefault(t)

	for _, sym := range c.Symbols() {
		for _, input := range []string{sym, strings.ToLower(sym), "  " + sym + " "} {
			rec, err := c.Lookup(input)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", input, err)
			}
			if rec.Symbol != sym {
				t.Fatalf("Lookup(%q) returned %s", input, rec.Symbol)
			}
		}
	}
}

func TestLookup_UnknownSymbol(t *testing.T) {
	c := mustDefault(t)

	for _, sym := range []string{"ZZZZ", "", "AAPLX"} {
		_, err := c.Lookup(sym)
		if !errors.Is(err, catalog.ErrNotFound) {
			t.Fatalf("Lookup(%q): expected ErrNotFound, got %v", sym, err)
		}
	}
}

func TestLookup_CopyOnRead(t *testing.T) {
	c := mustDefault(t)

	rec, err := c.Lookup("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	rec.CurrentQuote.Price = 1
	rec.CompanyName = "changed"

	again, _ := c.Lookup("AAPL")
	if again.CurrentQuote.Price != 175.43 || again.CompanyName != "Apple Inc." {
		t.Fatalf("catalog record mutated through a returned copy: %+v", again)
	}
}

func TestBasePrice(t *testing.T) {
	c := mustDefault(t)

	p, err := c.BasePrice("msft")
	if err != nil {
		t.Fatal(err)
	}
	if p != 378.85 {
		t.Fatalf("expected 378.85, got %f", p)
	}

	if _, err := c.BasePrice("ZZZZ"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch_App(t *testing.T) {
	c := mustDefault(t)

	results := c.Search("app")
	if len(results) == 0 {
		t.Fatal("expected results for 'app'")
	}
	foundAAPL := false
	for _, r := range results {
		if r.Symbol == "AAPL" {
			foundAAPL = true
		}
		if !strings.Contains(strings.ToLower(r.Symbol), "app") &&
			!strings.Contains(strings.ToLower(r.Name), "app") {
			t.Fatalf("unexpected match %+v", r)
		}
	}
	if !foundAAPL {
		t.Fatal("expected AAPL in results")
	}
}

func TestSearch_MatchesNameAndPreservesOrder(t *testing.T) {
	c := mustDefault(t)

	results := c.Search("INC")
	var got []string
	for _, r := range results {
		got = append(got, r.Symbol)
	}
	want := []string{"AAPL", "GOOGL", "TSLA", "AMZN", "META"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if len(c.Search("nothing-matches")) != 0 {
		t.Fatal("expected no results")
	}
}

func TestSearch_Limit(t *testing.T) {
	var b strings.Builder
	b.WriteString(minimalStocks)
	b.WriteString("search:\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "  - {symbol: SYM%02d, name: \"Fund %02d\", exchange: NYSE, type: etf}\n", i, i)
	}

	c, err := catalog.Parse([]byte(b.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	results := c.Search("sym")
	if len(results) != catalog.MaxSearchResults {
		t.Fatalf("expected %d results, got %d", catalog.MaxSearchResults, len(results))
	}
	if results[0].Symbol != "SYM00" || results[9].Symbol != "SYM09" {
		t.Fatalf("expected first ten in order, got %s..%s", results[0].Symbol, results[9].Symbol)
	}
}

func TestIndicesAndSymbolsAreCopies(t *testing.T) {
	c := mustDefault(t)

	idx := c.Indices()
	if len(idx) != 4 {
		t.Fatalf("expected 4 indices, got %d", len(idx))
	}
	idx[0].Price = 0
	if c.Indices()[0].Price == 0 {
		t.Fatal("Indices returned shared storage")
	}

	syms := c.Symbols()
	want := "AAPL,GOOGL,MSFT,TSLA,AMZN,META"
	if strings.Join(syms, ",") != want {
		t.Fatalf("expected %s, got %v", want, syms)
	}
	syms[0] = "XXX"
	if c.Symbols()[0] != "AAPL" {
		t.Fatal("Symbols returned shared storage")
	}
}

const minimalStocks = `
stocks:
  - symbol: ABC
    company_name: ABC Corp
    current_data: {price: 10, change: -1}
indices:
  - {symbol: "^X", name: X, price: 1, change: 0.5}
`

func TestParse_DerivesTrendAndDisplayName(t *testing.T) {
	c, err := catalog.Parse([]byte(minimalStocks))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rec, err := c.Lookup("abc")
	if err != nil {
		t.Fatal(err)
	}
	if rec.CurrentQuote.Trend != "down" {
		t.Fatalf("expected derived trend down, got %q", rec.CurrentQuote.Trend)
	}
	if rec.DisplayName != "ABC" {
		t.Fatalf("expected display name fallback to symbol, got %q", rec.DisplayName)
	}
	if c.Indices()[0].Trend != "up" {
		t.Fatalf("expected derived index trend up, got %q", c.Indices()[0].Trend)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":       "stocks: [",
		"empty":          "",
		"lowercase":      "stocks:\n  - {symbol: abc, current_data: {price: 1}}\nindices:\n  - {symbol: X, name: X}\n",
		"duplicate":      "stocks:\n  - {symbol: A, current_data: {price: 1}}\n  - {symbol: A, current_data: {price: 2}}\nindices:\n  - {symbol: X, name: X}\n",
		"zero price":     "stocks:\n  - {symbol: A, current_data: {price: 0}}\nindices:\n  - {symbol: X, name: X}\n",
		"bad trend":      "stocks:\n  - {symbol: A, current_data: {price: 1, trend: sideways}}\nindices:\n  - {symbol: X, name: X}\n",
		"trend mismatch": "stocks:\n  - {symbol: A, current_data: {price: 1, change: -2, trend: up}}\nindices:\n  - {symbol: X, name: X}\n",
		"no indices":     "stocks:\n  - {symbol: A, current_data: {price: 1}}\n",
		"bad search":     minimalStocks + "search:\n  - {symbol: A}\n",
	}

	for name, doc := range cases {
		if _, err := catalog.Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoad(t *testing.T) {
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if len(c.Symbols()) != 6 {
		t.Fatalf("expected embedded catalog, got %v", c.Symbols())
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(minimalStocks), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err = catalog.Load(path)
	if err != nil {
		t.Fatalf("Load(file): %v", err)
	}
	if got := c.Symbols(); len(got) != 1 || got[0] != "ABC" {
		t.Fatalf("expected [ABC], got %v", got)
	}

	if _, err := catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
