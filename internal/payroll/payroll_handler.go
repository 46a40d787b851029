package payroll

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/session"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/apperror"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Me returns the caller's own payroll line. Without query params the range
// spans all recorded history through today.
func (h *Handler) Me(c *gin.Context) {
	sess, ok := session.FromContext(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	from, to, err := parseRangeQuery(c, time.Time{}, time.Now())
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Dates must be YYYY-MM-DD", nil)
		return
	}

	line, err := h.service.ComputeForEmployee(c.Request.Context(), sess.EmployeeID, from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, line, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	lines, ok := h.computeAll(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, lines, nil)
}

// Export streams the all-employee report in the CSV wire format.
func (h *Handler) Export(c *gin.Context) {
	lines, ok := h.computeAll(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, lines); err != nil {
		writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("Payroll_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%s`, filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *Handler) computeAll(c *gin.Context) ([]PayrollLine, bool) {
	now := time.Now()
	from, to, err := parseRangeQuery(c, now, now)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Dates must be YYYY-MM-DD", nil)
		return nil, false
	}

	lines, err := h.service.ComputeForAll(c.Request.Context(), from, to)
	if err != nil {
		writeServiceError(c, err)
		return nil, false
	}
	return lines, true
}

func parseRangeQuery(c *gin.Context, defaultFrom, defaultTo time.Time) (time.Time, time.Time, error) {
	from, to := defaultFrom, defaultTo

	if raw := c.Query("from"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = t
	}
	return from, to, nil
}
