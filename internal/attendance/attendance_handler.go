package attendance

import (
	"net/http"
	"strconv"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/session"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/apperror"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/shared/response"
)

type Handler struct {
	service  Service
	enforcer *casbin.Enforcer
}

func NewHandler(service Service, enforcer *casbin.Enforcer) *Handler {
	return &Handler{service: service, enforcer: enforcer}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func mustSession(c *gin.Context) (session.Session, bool) {
	sess, ok := session.FromContext(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Unauthorized", nil)
	}
	return sess, ok
}

func (h *Handler) CheckIn(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	resp, err := h.service.CheckIn(c.Request.Context(), sess.EmployeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	resp, err := h.service.CheckOut(c.Request.Context(), sess.EmployeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Status(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	open, err := h.service.IsOpen(c.Request.Context(), sess.EmployeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, StatusResponse{CheckedIn: open}, nil)
}

// GetAll lists ledger entries within a date range. Admins holding
// attendances:read_all see every employee (optionally filtered by
// employee_id); everyone else sees only their own records.
func (h *Handler) GetAll(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	from, to, err := parseRangeQuery(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Dates must be YYYY-MM-DD", nil)
		return
	}

	canReadAll, _ := h.enforcer.Enforce(sess.Role, "attendances", "read_all")

	var employeeID *uint
	if canReadAll {
		if raw := c.Query("employee_id"); raw != "" {
			id, convErr := strconv.ParseUint(raw, 10, 32)
			if convErr != nil {
				response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid employee ID", nil)
				return
			}
			v := uint(id)
			employeeID = &v
		}
	} else {
		employeeID = &sess.EmployeeID
	}

	resp, err := h.service.ListByRange(c.Request.Context(), employeeID, from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

// parseRangeQuery reads from/to as local calendar days, both defaulting to
// today.
func parseRangeQuery(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from, to := now, now

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
