package domain

import "strconv"

// DefaultCurrency is the fallback for countries absent from the directory.
const DefaultCurrency = "USD"

// Currency is an immutable display entry in the static currency directory.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Flag   string `json:"flag"`
}

// Currencies is the full directory, in the order the client renders it.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar", Flag: "🇺🇸"},
	{Code: "EUR", Symbol: "€", Name: "Euro", Flag: "🇪🇺"},
	{Code: "GBP", Symbol: "£", Name: "British Pound", Flag: "🇬🇧"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", Flag: "🇮🇳"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", Flag: "🇨🇦"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", Flag: "🇦🇺"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Flag: "🇯🇵"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", Flag: "🇨🇳"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", Flag: "🇧🇷"},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso", Flag: "🇲🇽"},
	{Code: "NGN", Symbol: "₦", Name: "Nigerian Naira", Flag: "🇳🇬"},
	{Code: "EGP", Symbol: "E£", Name: "Egyptian Pound", Flag: "🇪🇬"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand", Flag: "🇿🇦"},
	{Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling", Flag: "🇰🇪"},
	{Code: "GHS", Symbol: "₵", Name: "Ghanaian Cedi", Flag: "🇬🇭"},
}

// countryCurrency maps ISO 3166-1 alpha-2 country codes to the currency a new
// account defaults to. Countries without a banked local currency in the
// directory (PS, SY, SO) fall back to USD.
var countryCurrency = map[string]string{
	"US": "USD",
	"IN": "INR",
	"GB": "GBP",
	"DE": "EUR",
	"FR": "EUR",
	"IT": "EUR",
	"ES": "EUR",
	"CA": "CAD",
	"AU": "AUD",
	"JP": "JPY",
	"CN": "CNY",
	"BR": "BRL",
	"MX": "MXN",
	"NG": "NGN",
	"EG": "EGP",
	"ZA": "ZAR",
	"KE": "KES",
	"GH": "GHS",
	"PS": "USD",
	"SY": "USD",
	"SO": "USD",
}

// CurrencyForCountry resolves the default currency for a country code.
// Unknown or empty codes resolve to USD.
func CurrencyForCountry(country string) string {
	if code, ok := countryCurrency[country]; ok {
		return code
	}
	return DefaultCurrency
}

// SymbolFor returns the display symbol for a currency code, "$" if unknown.
func SymbolFor(currencyCode string) string {
	for _, c := range Currencies {
		if c.Code == currencyCode {
			return c.Symbol
		}
	}
	return "$"
}

// FormatAmount renders an amount prefixed with its currency symbol.
func FormatAmount(amount float64, currencyCode string) string {
	return SymbolFor(currencyCode) + strconv.FormatFloat(amount, 'f', -1, 64)
}
