package assessment

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments", h.CreateAssessment)
}

// CreateAssessment evaluates a measurement set and returns the full
// structured result. Evaluation never fails; only malformed JSON is
// rejected.
func (h *Handler) CreateAssessment(c echo.Context) error {
	var m MeasurementSet
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ev := h.svc.Evaluate(c.Request().Context(), m)
	return c.JSON(http.StatusOK, ev)
}
