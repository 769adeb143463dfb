package report

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/assessment"
)

type Handler struct {
	svc *assessment.Service
	log zerolog.Logger

	// renderPDF is swapped out in tests to drive the txt fallback.
	renderPDF func(Document) ([]byte, error)
}

func NewHandler(svc *assessment.Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log, renderPDF: PDF}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments/report", h.CreateReport)
}

// CreateReport evaluates a measurement set and streams a downloadable
// artifact. Supported formats: pdf (default), txt, csv. A PDF rendering
// failure degrades to the txt form instead of failing the request.
func (h *Handler) CreateReport(c echo.Context) error {
	var m assessment.MeasurementSet
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ev := h.svc.Evaluate(c.Request().Context(), m)
	now := time.Now()

	format := c.QueryParam("format")
	if format == "" {
		format = "pdf"
	}

	switch format {
	case "pdf":
		doc := Build(ev)
		data, err := h.renderPDF(doc)
		if err != nil {
			h.log.Warn().Err(err).Msg("pdf rendering failed, serving txt fallback")
			return attach(c, "text/plain; charset=utf-8", reportFilename("txt", now), Text(doc))
		}
		return attach(c, "application/pdf", reportFilename("pdf", now), data)
	case "txt":
		return attach(c, "text/plain; charset=utf-8", reportFilename("txt", now), Text(Build(ev)))
	case "csv":
		data, err := CSV(ev, now)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return attach(c, "text/csv", "health_inputs.csv", data)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unsupported format %q", format))
	}
}

func reportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("health_report_%s.%s", now.Format("20060102_150405"), ext)
}

func attach(c echo.Context, contentType, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, contentType, data)
}
