package video

import (
	"errors"
	"log/slog"
	"net/http"

	"videostore/app/echoServer/validation"
	videosvc "videostore/service/video"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc videosvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func (h *Controller) bind(c echo.Context) (*VideoReq, error) {
	var req VideoReq
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	return &req, nil
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, videosvc.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	case errors.Is(err, videosvc.ErrBadInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	h.Log.Error(op+" error", "err", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
}

// POST /api/videos
func (h *Controller) Create(c echo.Context) error {
	req, err := h.bind(c)
	if req == nil {
		return err
	}
	v, err := h.Svc.Create(c.Request().Context(), req.Title, req.YearOfRelease, req.Genres)
	if err != nil {
		return h.fail(c, "video create", err)
	}
	return c.JSON(http.StatusOK, v)
}

// GET /api/videos
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return h.fail(c, "video list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /api/videos/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, "video detail", err)
	}
	return c.JSON(http.StatusOK, row)
}

// PUT /api/videos/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	req, err := h.bind(c)
	if req == nil {
		return err
	}
	v, err := h.Svc.Update(c.Request().Context(), id, req.Title, req.YearOfRelease, req.Genres)
	if err != nil {
		return h.fail(c, "video update", err)
	}
	return c.JSON(http.StatusOK, v)
}

// DELETE /api/videos/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "video delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}
