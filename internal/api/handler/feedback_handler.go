package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/givebridge/donation-platform/internal/api/metrics"
	"github.com/givebridge/donation-platform/internal/core/ports"
)

type FeedbackHandler struct {
	feedback ports.FeedbackService
}

func NewFeedbackHandler(feedback ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type feedbackRequest struct {
	Rating  int    `json:"rating"  validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// Submit records a platform rating from the signed-in user.
//
// @Summary      Submit feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      feedbackRequest  true  "Rating and comment"
// @Success      201   {object}  domain.Feedback
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fb, err := h.feedback.Submit(c.Request().Context(), sess.UserID, req.Rating, req.Comment)
	if err != nil {
		return err
	}

	metrics.FeedbackSubmittedTotal.WithLabelValues(strconv.Itoa(fb.Rating)).Inc()
	return c.JSON(http.StatusCreated, fb)
}

// Recent returns the latest feedback entries with their average rating.
// Public: the landing page shows it to anonymous visitors.
//
// @Summary      Recent feedback
// @Tags         feedback
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries (default 6)"
// @Success      200    {object}  ports.FeedbackSummary
// @Router       /feedback [get]
func (h *FeedbackHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	summary, err := h.feedback.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
