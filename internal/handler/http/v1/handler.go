package v1

import (
	"net/http"

	"github.com/firewatch/incident-map/internal/httperr"
	"github.com/firewatch/incident-map/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	stationService  service.StationService
	logger          *logrus.Logger
}

func NewHandler(incidentService service.IncidentService, stationService service.StationService, logger *logrus.Logger) *Handler {
	return &Handler{
		incidentService: incidentService,
		stationService:  stationService,
		logger:          logger,
	}
}

// @Summary List incidents
// @Description Get a filtered, sorted, paginated list of incidents.
// @Tags Incidents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (1-100)" default(25)
// @Param typeCodes query string false "Comma-separated incident type codes"
// @Param severityCodes query string false "Comma-separated severity codes"
// @Param statusCodes query string false "Comma-separated status codes"
// @Param startDate query string false "ISO-8601 lower bound on occurrence time"
// @Param endDate query string false "ISO-8601 upper bound on occurrence time"
// @Param isActive query bool false "Filter on the active flag"
// @Param sortBy query string false "Sort field" Enums(reportedAt, occurrenceAt, severityPriority)
// @Param sortDirection query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} service.IncidentListResponse
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 500 {object} httperr.ErrorResponse
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	opts, err := h.incidentService.BuildListOptions(c.Request.URL.Query())
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	response, err := h.incidentService.ListIncidents(c.Request.Context(), opts)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get incident detail
// @Description Get the full detail record for a single incident.
// @Tags Incidents
// @Produce json
// @Param incidentNumber path string true "Incident number"
// @Success 200 {object} models.IncidentDetail
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Failure 500 {object} httperr.ErrorResponse
// @Router /incidents/{incidentNumber} [get]
func (h *Handler) getIncidentDetail(c *gin.Context) {
	detail, err := h.incidentService.GetIncidentDetail(c.Request.Context(), c.Param("incidentNumber"))
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// @Summary List stations
// @Description Get all fire stations, optionally filtered on the active flag.
// @Tags Stations
// @Produce json
// @Param isActive query bool false "Filter on the active flag"
// @Success 200 {object} StationListResponse
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 500 {object} httperr.ErrorResponse
// @Router /stations [get]
func (h *Handler) listStations(c *gin.Context) {
	query := c.Request.URL.Query()

	var isActive *bool
	if _, present := query["isActive"]; present {
		value, err := service.ParseBoolean(query, "isActive")
		if err != nil {
			httperr.Respond(c, h.logger, err)
			return
		}
		isActive = &value
	}

	stations, err := h.stationService.ListStations(c.Request.Context(), isActive)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, StationListResponse{Data: stations})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
