package rental

import (
	"errors"
	"log/slog"
	"net/http"

	"videostore/app/echoServer/validation"
	rs "videostore/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc     rs.Service
	Overdue rs.Overdue
	V       *validator.Validate
	Log     *slog.Logger
}

func parseID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// Create rents a video
// @Summary      Rent a video
// @Description  Creates a Pending rental due in 7 days; fails when the video is already rented out
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateRentalReq  true  "Rental payload"
// @Success      200  {object}  model.Rental
// @Failure      400  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/rentals [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	out, err := h.Svc.RentVideo(c.Request().Context(), rs.RentReq{
		CustomerID:   req.CustomerID,
		VideoID:      req.VideoID,
		RentalAmount: *req.RentalAmount,
	})
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrAlreadyRented:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "video is already rented out"})
		case rs.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "rental amount must be non-negative with at most two decimal places"})
		default:
			h.Log.Error("rental create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// GET /api/rentals
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("rental list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/rentals/overdue
func (h *Controller) ListOverdue(c echo.Context) error {
	rows, err := h.Overdue.ListOverdue(c.Request().Context())
	if err != nil {
		h.Log.Error("rental overdue", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/rentals/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		}
		h.Log.Error("rental detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// GET /api/rentals/customer/:customerId
func (h *Controller) ActiveForCustomer(c echo.Context) error {
	id, ok := parseID(c, "customerId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid customer id"})
	}
	rows, err := h.Svc.ActiveForCustomer(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("customer rentals", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /api/rentals/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req ReturnRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}

	if err := h.Svc.ReturnVideo(c.Request().Context(), id, req.LateFee); err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFoundOrAlreadyReturned:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found or already returned"})
		case rs.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "late fee must be non-negative with at most two decimal places"})
		default:
			h.Log.Error("rental return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "video returned successfully"})
}

// ConfirmPayment marks a rental paid
// @Summary      Confirm rental payment
// @Description  Verifies a banking transaction (or searches an account for one) and marks the rental Paid
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        id       path  string             true  "Rental ID"
// @Param        payload  body  ConfirmPaymentReq  true  "Transaction or account"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      502  {object}  map[string]any "banking service unavailable"
// @Router       /api/rentals/{id}/confirm-payment [post]
func (h *Controller) ConfirmPayment(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req ConfirmPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}

	ctx := c.Request().Context()
	var (
		out *rs.Confirmation
		err error
	)
	if req.TransactionID != "" {
		out, err = h.Svc.ConfirmPayment(ctx, id, req.TransactionID)
	} else {
		out, err = h.Svc.ConfirmPaymentFromAccount(ctx, id, req.AccountID)
	}
	if err != nil {
		return h.confirmError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":        "payment confirmed successfully",
		"rental_id":      out.RentalID,
		"transaction_id": out.TransactionID,
	})
}

func (h *Controller) confirmError(c echo.Context, err error) error {
	var mismatch *rs.AmountMismatchError
	if errors.As(err, &mismatch) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message":  "transaction amount does not match rental amount",
			"expected": mismatch.Expected,
			"actual":   mismatch.Actual,
		})
	}

	switch rs.Code(err) {
	case rs.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
	case rs.ErrAlreadyPaid:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "rental has already been paid"})
	case rs.ErrTransactionNotFound:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "transaction not found in banking system"})
	case rs.ErrConfirmationFailed:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "failed to confirm payment"})
	case rs.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	case rs.ErrBankingUnavailable:
		h.Log.Warn("confirm payment: banking unavailable", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "banking service unavailable"})
	default:
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		h.Log.Error("confirm payment failed",
			"err", err,
			"req_id", rid,
			"path", c.Path(),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// DELETE /api/rentals/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		}
		h.Log.Error("rental delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}
