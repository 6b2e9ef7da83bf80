package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bondcalc/internal/domain/dto"
	"github.com/guttosm/bondcalc/internal/middleware"
	"github.com/guttosm/bondcalc/internal/service"
)

const (
	dateLayout       = "2006-01-02"
	defaultRangeDays = 30
)

// CurveHandler serves stored par-yield curves and their analytics.
type CurveHandler struct {
	svc service.CurveService
	now func() time.Time
}

// NewCurveHandler constructs a CurveHandler.
func NewCurveHandler(svc service.CurveService) *CurveHandler {
	return &CurveHandler{svc: svc, now: time.Now}
}

// GetCurve godoc
// @Summary      Curve for a date
// @Description  Stored par yields with the bootstrapped spot and one-year forward curves
// @Tags         curves
// @Produce      json
// @Param        date  path      string  true  "Curve date in YYYY-MM-DD" example(2024-05-10)
// @Success      200   {object}  models.Curve
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse  "Not Found"
// @Failure      422   {object}  dto.ErrorResponse  "Bootstrap failed"
// @Router       /api/v1/curves/{date} [get]
func (h *CurveHandler) GetCurve(c *gin.Context) {
	d, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", err)
		return
	}

	curve, err := h.svc.GetCurve(c.Request.Context(), d)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if curve == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no curve found", nil))
		return
	}
	c.JSON(http.StatusOK, curve)
}

// TenorStats godoc
// @Summary      Tenor statistics
// @Description  Count, mean, standard deviation, min and max of one tenor's par yield; the range defaults to the last 30 days
// @Tags         curves
// @Produce      json
// @Param        tenor  path      int     true   "Tenor in years" example(5)
// @Param        start  query     string  false  "Start date in YYYY-MM-DD" example(2024-05-01)
// @Param        end    query     string  false  "End date in YYYY-MM-DD" example(2024-05-31)
// @Success      200    {object}  models.TenorStats
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404    {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/curves/tenors/{tenor}/stats [get]
func (h *CurveHandler) TenorStats(c *gin.Context) {
	tenor, err := strconv.Atoi(c.Param("tenor"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid tenor, expected an integer", err)
		return
	}
	start, end, ok := h.parseRange(c)
	if !ok {
		return
	}

	stats, err := h.svc.TenorStats(c.Request.Context(), tenor, start, end)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if stats == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found", nil))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MissingDates godoc
// @Summary      Missing curve dates
// @Description  Business days in the range with no stored curve; the range defaults to the last 30 days
// @Tags         curves
// @Produce      json
// @Param        start  query     string  false  "Start date in YYYY-MM-DD" example(2024-05-01)
// @Param        end    query     string  false  "End date in YYYY-MM-DD" example(2024-05-31)
// @Success      200    {object}  dto.MissingDatesResponse
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/curves/missing [get]
func (h *CurveHandler) MissingDates(c *gin.Context) {
	start, end, ok := h.parseRange(c)
	if !ok {
		return
	}

	dates, err := h.svc.MissingDates(c.Request.Context(), start, end)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := dto.MissingDatesResponse{
		Start: start.Format(dateLayout),
		End:   end.Format(dateLayout),
		Count: len(dates),
		Dates: make([]string, len(dates)),
	}
	for i, d := range dates {
		resp.Dates[i] = d.Format(dateLayout)
	}
	c.JSON(http.StatusOK, resp)
}

// parseRange reads optional start/end query dates. end defaults to today
// (UTC) and start to defaultRangeDays before end. It writes a 400 and
// returns false on malformed input.
func (h *CurveHandler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	today := h.now().UTC()
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if s := c.Query("end"); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid end format, expected YYYY-MM-DD", err)
			return time.Time{}, time.Time{}, false
		}
		end = d
	}

	start := end.AddDate(0, 0, -defaultRangeDays)
	if s := c.Query("start"); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid start format, expected YYYY-MM-DD", err)
			return time.Time{}, time.Time{}, false
		}
		start = d
	}

	if start.After(end) {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid range",
			fmt.Errorf("start %s is after end %s", start.Format(dateLayout), end.Format(dateLayout)))
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
