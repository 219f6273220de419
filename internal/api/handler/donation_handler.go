package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/givebridge/donation-platform/internal/api/metrics"
	"github.com/givebridge/donation-platform/internal/core/domain"
	"github.com/givebridge/donation-platform/internal/core/ports"
)

// idempotencyHeader carries the optional client-chosen key that guards
// against double submission on retries.
const idempotencyHeader = "Idempotency-Key"

type DonationHandler struct {
	donations ports.DonationService
}

func NewDonationHandler(donations ports.DonationService) *DonationHandler {
	return &DonationHandler{donations: donations}
}

type donationRequest struct {
	RecipientID string  `json:"recipient_id" validate:"required"`
	Amount      float64 `json:"amount"       validate:"omitempty,gte=0"`
	Currency    string  `json:"currency"     validate:"omitempty,len=3"`
	Type        string  `json:"type"         validate:"required,oneof=cash clothes food"`
	Location    string  `json:"location"     validate:"omitempty"`
}

type monthlyDonationRequest struct {
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	Currency      string  `json:"currency"       validate:"required,len=3"`
	RecipientType string  `json:"recipient_type" validate:"required"`
}

// Submit records a one-off donation from the signed-in user.
//
// @Summary      Submit a donation
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        body  body      donationRequest  true  "Donation details"
// @Success      201   {object}  domain.Donation
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /donations [post]
func (h *DonationHandler) Submit(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req donationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	currency := req.Currency
	if currency == "" && req.Type == string(domain.DonationCash) {
		currency = sess.PreferredCurrency
	}

	idempotencyKey := c.Request().Header.Get(idempotencyHeader)
	donation, err := h.donations.Submit(c.Request().Context(), ports.DonationInput{
		UserID:         sess.UserID,
		RecipientID:    req.RecipientID,
		Amount:         req.Amount,
		Currency:       currency,
		Type:           domain.DonationType(req.Type),
		Location:       req.Location,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDonation) {
			metrics.DonationsDedupTotal.WithLabelValues("hit").Inc()
		}
		return err
	}

	if idempotencyKey != "" {
		metrics.DonationsDedupTotal.WithLabelValues("miss").Inc()
	}
	metrics.DonationsCreatedTotal.WithLabelValues(string(donation.Type)).Inc()
	return c.JSON(http.StatusCreated, donation)
}

// List returns the signed-in user's donations, newest first.
//
// @Summary      List own donations
// @Tags         donations
// @Produce      json
// @Success      200  {array}   domain.Donation
// @Failure      401  {object}  map[string]string
// @Router       /donations [get]
func (h *DonationHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	list, err := h.donations.ListByUser(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	if list == nil {
		list = []domain.Donation{}
	}
	return c.JSON(http.StatusOK, list)
}

// CreateMonthly records a recurring pledge.
//
// @Summary      Create a monthly pledge
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        body  body      monthlyDonationRequest  true  "Pledge details"
// @Success      201   {object}  domain.MonthlyDonation
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /donations/monthly [post]
func (h *DonationHandler) CreateMonthly(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req monthlyDonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pledge, err := h.donations.CreateMonthly(c.Request().Context(), ports.MonthlyDonationInput{
		UserID:        sess.UserID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		RecipientType: req.RecipientType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pledge)
}

// CancelMonthly deactivates one of the signed-in user's pledges.
//
// @Summary      Cancel a monthly pledge
// @Tags         donations
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /donations/monthly/{id} [delete]
func (h *DonationHandler) CancelMonthly(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.donations.CancelMonthly(c.Request().Context(), c.Param("id"), sess.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
