package moneykeeper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// RateSource supplies a fresh currency table or signals failure. The
// returned map is keyed by currency code with rates expressed against the
// reference currency.
type RateSource interface {
	Fetch(ctx context.Context) (map[string]float64, error)
}

// DefaultQuotationURL is the daily quotation feed of the Russian central
// bank. Each entry carries a value and a nominal divisor; the rate is
// value/nominal.
const DefaultQuotationURL = "https://www.cbr-xml-daily.ru/daily_json.js"

// DefaultFetchTimeout bounds a single quotation fetch.
const DefaultFetchTimeout = 15 * time.Second

/*
	{
	    "Date": "2023-05-20T11:30:00+03:00",
	    "Valute": {
	        "USD": {
	            "CharCode": "USD",
	            "Nominal": 1,
	            "Value": 79.9093
	        },
	        "JPY": {
	            "CharCode": "JPY",
	            "Nominal": 100,
	            "Value": 57.8284
	        }
	    }
	}
*/

// CBR fetches exchange rates from the daily quotation feed.
type CBR struct {
	URL    string
	Client *http.Client
}

// NewCBR returns a source against the given feed URL (blank for the
// default feed), with a daily response cache and the given timeout
// (zero for the default).
func NewCBR(url string, timeout time.Duration) *CBR {
	if url == "" {
		url = DefaultQuotationURL
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &CBR{URL: url, Client: daily(timeout)}
}

// Fetch downloads and parses the quotation feed into a rate table. The
// reference currency is always present at 1.0 in a successful result.
func (c *CBR) Fetch(ctx context.Context) (map[string]float64, error) {
	client := c.Client
	if client == nil {
		client = daily(DefaultFetchTimeout)
	}
	var jobj any
	if err := jwget(ctx, client, c.URL, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", c.URL, err)
	}

	path := "$.Valute.*"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing quotations: %q %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing quotations: %q not a list", path)
	}

	rates := make(map[string]float64, len(jlist)+1)
	for _, entry := range jlist {
		jmap, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		code, _ := jmap["CharCode"].(string)
		value, vok := jmap["Value"].(float64)
		nominal, nok := jmap["Nominal"].(float64)
		if code == "" || !vok || !nok || nominal == 0 {
			continue
		}
		rates[code] = value / nominal
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("quotation feed %q held no usable entries", c.URL)
	}
	rates[ReferenceCurrency] = 1.0
	return rates, nil
}
