package moneykeeper

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConvert(t *testing.T) {
	r := NewRates()
	r.Set(map[string]float64{"RUB": 1, "USD": 90})

	got, err := r.Convert(100, "USD", "RUB")
	if err != nil {
		t.Fatal(err)
	}
	if got != 9000 {
		t.Errorf("Convert(100, USD, RUB) = %v, want 9000", got)
	}

	got, err = r.Convert(9000, "RUB", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if got != 100 {
		t.Errorf("Convert(9000, RUB, USD) = %v, want 100", got)
	}
}

func TestConvertSameCurrency(t *testing.T) {
	// No table needed when source and target match.
	r := NewRates()
	got, err := r.Convert(123.45, "RUB", "RUB")
	if err != nil {
		t.Fatal(err)
	}
	if got != 123.45 {
		t.Errorf("Convert same currency = %v, want 123.45", got)
	}
}

func TestConvertFailures(t *testing.T) {
	r := NewRates()
	if _, err := r.Convert(100, "USD", "RUB"); !errors.Is(err, ErrRatesUnavailable) {
		t.Errorf("empty table error = %v, want ErrRatesUnavailable", err)
	}

	r.Set(map[string]float64{"RUB": 1, "USD": 90})
	_, err := r.Convert(100, "XXX", "RUB")
	var unknown UnknownCurrencyError
	if !errors.As(err, &unknown) || unknown.Code != "XXX" {
		t.Errorf("unknown currency error = %v, want UnknownCurrencyError{XXX}", err)
	}
	if _, err := r.Convert(100, "USD", "XXX"); err == nil {
		t.Error("unknown target currency: expected an error")
	}
}

func TestSetPinsReference(t *testing.T) {
	r := NewRates()
	r.Set(map[string]float64{"USD": 90, "EUR": 100})

	rate, ok := r.Rate(ReferenceCurrency)
	if !ok || rate != 1.0 {
		t.Errorf("reference rate = %v, %v, want 1.0, true", rate, ok)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestSetReplacesWholeTable(t *testing.T) {
	r := NewRates()
	r.Set(map[string]float64{"USD": 90, "EUR": 100})
	r.Set(map[string]float64{"USD": 95})

	if r.IsSupported("EUR") {
		t.Error("EUR survived a whole-table replacement")
	}
	rate, _ := r.Rate("USD")
	if rate != 95 {
		t.Errorf("USD rate = %v, want 95", rate)
	}
}

func TestSetDoesNotAliasCaller(t *testing.T) {
	table := map[string]float64{"USD": 90}
	r := NewRates()
	r.Set(table)
	table["USD"] = 1000

	rate, _ := r.Rate("USD")
	if rate != 90 {
		t.Errorf("USD rate = %v, caller mutation leaked in", rate)
	}
}

func TestCodes(t *testing.T) {
	r := NewRates()
	r.Set(map[string]float64{"USD": 90, "EUR": 100, "JPY": 0.58})

	var codes []string
	for code := range r.Codes() {
		codes = append(codes, code)
	}
	want := []string{"EUR", "JPY", "RUB", "USD"}
	if len(codes) != len(want) {
		t.Fatalf("Codes() = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("Codes() = %v, want %v", codes, want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")

	r := NewRates()
	r.Set(map[string]float64{"USD": 90.5, "EUR": 100.25})
	if err := r.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	loaded := NewRates()
	if err := loaded.LoadFrom(path); err != nil {
		t.Fatal(err)
	}
	for _, code := range []string{"USD", "EUR", "RUB"} {
		want, _ := r.Rate(code)
		got, ok := loaded.Rate(code)
		if !ok || got != want {
			t.Errorf("loaded rate %s = %v, %v, want %v", code, got, ok, want)
		}
	}
}

func TestLoadFromFailureKeepsTable(t *testing.T) {
	dir := t.TempDir()
	r := NewRates()
	r.Set(map[string]float64{"USD": 90})

	if err := r.LoadFrom(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file: expected an error")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadFrom(bad); err == nil {
		t.Error("unparseable file: expected an error")
	}

	rate, ok := r.Rate("USD")
	if !ok || rate != 90 {
		t.Errorf("table changed by failed load: %v, %v", rate, ok)
	}
}
