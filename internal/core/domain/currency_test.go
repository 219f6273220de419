package domain

import "testing"

func TestCurrencyForCountry(t *testing.T) {
	cases := []struct {
		country string
		want    string
	}{
		{"NG", "NGN"},
		{"US", "USD"},
		{"DE", "EUR"},
		{"FR", "EUR"},
		{"KE", "KES"},
		{"PS", "USD"},
		{"SO", "USD"},
		{"ZZ", "USD"},
		{"", "USD"},
	}
	for _, tc := range cases {
		if got := CurrencyForCountry(tc.country); got != tc.want {
			t.Errorf("CurrencyForCountry(%q) = %q, want %q", tc.country, got, tc.want)
		}
	}
}

func TestDirectoryCoversDerivedCurrencies(t *testing.T) {
	if len(Currencies) < 15 {
		t.Fatalf("directory has %d entries, want at least 15", len(Currencies))
	}
	codes := make(map[string]struct{}, len(Currencies))
	for _, c := range Currencies {
		if c.Code == "" || c.Symbol == "" || c.Name == "" {
			t.Errorf("incomplete entry: %+v", c)
		}
		codes[c.Code] = struct{}{}
	}
	// Every currency a country can derive must be displayable.
	for country, code := range countryCurrency {
		if _, ok := codes[code]; !ok {
			t.Errorf("country %s derives %s which is not in the directory", country, code)
		}
	}
}

func TestSymbolFor(t *testing.T) {
	if got := SymbolFor("NGN"); got != "₦" {
		t.Errorf("SymbolFor(NGN) = %q", got)
	}
	if got := SymbolFor("XXX"); got != "$" {
		t.Errorf("SymbolFor(XXX) = %q, want $ fallback", got)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(250, "GBP"); got != "£250" {
		t.Errorf("FormatAmount = %q", got)
	}
	if got := FormatAmount(19.5, "USD"); got != "$19.5" {
		t.Errorf("FormatAmount = %q", got)
	}
}
