package norms

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthassist/healthassist/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the effective-table endpoint and, when the
// norms store is enabled, the custom table management endpoints.
func (h *Handler) RegisterRoutes(api *echo.Group, storeEnabled bool) {
	api.GET("/norms/effective", h.GetEffective)
	if !storeEnabled {
		return
	}
	api.POST("/norms-tables", h.CreateTable)
	api.GET("/norms-tables", h.ListTables)
	api.GET("/norms-tables/:id", h.GetTable)
	api.PUT("/norms-tables/:id", h.UpdateTable)
	api.DELETE("/norms-tables/:id", h.DeleteTable)
	api.POST("/norms-tables/:id/activate", h.ActivateTable)
}

func (h *Handler) GetEffective(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Effective(c.Request().Context()))
}

func (h *Handler) CreateTable(c echo.Context) error {
	var t CustomTable
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateTable(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) GetTable(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	t, err := h.svc.GetTable(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "norms table not found")
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) ListTables(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListTables(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateTable(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var t CustomTable
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t.ID = id
	if err := h.svc.UpdateTable(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTable(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteTable(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ActivateTable(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.ActivateTable(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "norms table not found")
	}
	return c.NoContent(http.StatusNoContent)
}
