package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

// CurrencyHandler serves the static currency directory. No state, no store.
type CurrencyHandler struct{}

func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

// List returns the full directory in display order.
//
// @Summary      List currencies
// @Tags         currencies
// @Produce      json
// @Success      200  {array}  domain.Currency
// @Router       /currencies [get]
func (h *CurrencyHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Currencies)
}

type countryCurrencyResponse struct {
	Country  string `json:"country"`
	Currency string `json:"currency"`
}

// ForCountry resolves the default currency for a country code. Unknown codes
// resolve to USD rather than erroring.
//
// @Summary      Default currency for a country
// @Tags         currencies
// @Produce      json
// @Param        code  path      string  true  "ISO 3166-1 alpha-2 country code"
// @Success      200   {object}  countryCurrencyResponse
// @Router       /currencies/country/{code} [get]
func (h *CurrencyHandler) ForCountry(c echo.Context) error {
	code := c.Param("code")
	return c.JSON(http.StatusOK, countryCurrencyResponse{
		Country:  code,
		Currency: domain.CurrencyForCountry(code),
	})
}
