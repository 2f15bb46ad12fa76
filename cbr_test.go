package moneykeeper

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

const quotationFeed = `{
	"Date": "2023-05-20T11:30:00+03:00",
	"Valute": {
		"USD": {"CharCode": "USD", "Nominal": 1, "Value": 79.9093},
		"JPY": {"CharCode": "JPY", "Nominal": 100, "Value": 57.8284},
		"BAD": {"CharCode": "BAD", "Nominal": 0, "Value": 10},
		"ODD": {"CharCode": "", "Nominal": 1, "Value": 10}
	}
}`

func quotationServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCBRFetch(t *testing.T) {
	srv := quotationServer(t, quotationFeed, http.StatusOK)
	src := &CBR{URL: srv.URL, Client: srv.Client()}

	rates, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if got := rates["USD"]; got != 79.9093 {
		t.Errorf("USD = %v, want 79.9093", got)
	}
	// The nominal divides the value: 100 JPY are worth 57.8284.
	if got := rates["JPY"]; math.Abs(got-0.578284) > 1e-9 {
		t.Errorf("JPY = %v, want 0.578284", got)
	}
	// The reference currency is injected even though the feed omits it.
	if got := rates[ReferenceCurrency]; got != 1.0 {
		t.Errorf("%s = %v, want 1.0", ReferenceCurrency, got)
	}
	// Zero-nominal and nameless entries are dropped, not propagated.
	if _, ok := rates["BAD"]; ok {
		t.Error("zero-nominal entry survived")
	}
	if len(rates) != 3 {
		t.Errorf("len(rates) = %d, want 3", len(rates))
	}
}

func TestCBRFetchFailures(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"http error", "oops", http.StatusInternalServerError},
		{"not json", "not json at all", http.StatusOK},
		{"no valute", `{"Date": "2023-05-20"}`, http.StatusOK},
		{"no usable entries", `{"Valute": {"X": {"CharCode": "X", "Nominal": 0, "Value": 1}}}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := quotationServer(t, tt.body, tt.status)
			src := &CBR{URL: srv.URL, Client: srv.Client()}
			if _, err := src.Fetch(context.Background()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestCBRFetchIntoLedger(t *testing.T) {
	srv := quotationServer(t, quotationFeed, http.StatusOK)
	src := &CBR{URL: srv.URL, Client: srv.Client()}

	l := NewLedger()
	a := l.Active()
	tx, _ := l.NewTransaction(Income, 100, "USD", "Salary", MustParseDate("2023-05-15"), "")
	a.AddTransaction(tx)

	done := make(chan bool, 1)
	l.RefreshRates(context.Background(), src, t.TempDir()+"/rates.json", func(ok bool) { done <- ok })
	if !<-done {
		t.Fatal("refresh against the fake feed failed")
	}
	if math.Abs(a.Balance()-7990.93) > BalanceTolerance {
		t.Errorf("balance = %v, want 7990.93", a.Balance())
	}
}
