package customer

import (
	"errors"
	"log/slog"
	"net/http"

	customersvc "videostore/service/customer"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc customersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func (ct *Controller) bindAndValidate(c echo.Context, req *CustomerReq) error {
	if err := c.Bind(req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if ct.V != nil {
		if err := ct.V.Struct(req); err != nil {
			ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
			return echo.NewHTTPError(http.StatusBadRequest, "validation error")
		}
	} else if err := c.Validate(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}
	return nil
}

func (ct *Controller) fail(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, customersvc.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "customer not found")
	case errors.Is(err, customersvc.ErrBadInput):
		return echo.NewHTTPError(http.StatusBadRequest, "bad input")
	default:
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		ct.Log.Error(op+" failed",
			"err", err,
			"req_id", rid,
			"path", c.Path(),
			"method", c.Request().Method,
		)
		return echo.NewHTTPError(http.StatusInternalServerError, op+" failed")
	}
}

func idParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Create a customer
// @Summary      Create customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body  CustomerReq  true  "Customer payload"
// @Success      200  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/customers [post]
func (ct *Controller) Create(c echo.Context) error {
	var req CustomerReq
	if err := ct.bindAndValidate(c, &req); err != nil {
		return err
	}
	out, err := ct.Svc.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return ct.fail(c, "create customer", err)
	}
	return c.JSON(http.StatusOK, out)
}

// List customers
// @Summary  List customers
// @Tags     customers
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /api/customers [get]
func (ct *Controller) List(c echo.Context) error {
	rows, err := ct.Svc.List(c.Request().Context())
	if err != nil {
		return ct.fail(c, "list customers", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// Detail
// @Summary  Get customer
// @Tags     customers
// @Produce  json
// @Param    id  path  string  true  "Customer ID"
// @Success  200  {object}  model.Customer
// @Failure  404  {object}  map[string]any
// @Router   /api/customers/{id} [get]
func (ct *Controller) Detail(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := ct.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return ct.fail(c, "get customer", err)
	}
	return c.JSON(http.StatusOK, out)
}

// Update
// @Summary  Update customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    id       path  string       true  "Customer ID"
// @Param    payload  body  CustomerReq  true  "Customer payload"
// @Success  200  {object}  model.Customer
// @Failure  400,404  {object}  map[string]any
// @Router   /api/customers/{id} [put]
func (ct *Controller) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req CustomerReq
	if err := ct.bindAndValidate(c, &req); err != nil {
		return err
	}
	out, err := ct.Svc.Update(c.Request().Context(), id, req.Name, req.Email)
	if err != nil {
		return ct.fail(c, "update customer", err)
	}
	return c.JSON(http.StatusOK, out)
}

// Delete
// @Summary  Delete customer
// @Tags     customers
// @Param    id  path  string  true  "Customer ID"
// @Success  204
// @Failure  404  {object}  map[string]any
// @Router   /api/customers/{id} [delete]
func (ct *Controller) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := ct.Svc.Delete(c.Request().Context(), id); err != nil {
		return ct.fail(c, "delete customer", err)
	}
	return c.NoContent(http.StatusNoContent)
}
