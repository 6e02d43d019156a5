package api

import (
	"errors"
	"net/http"

	errs "dbpool/pkg/errors"
	"dbpool/pkg/health"
	"dbpool/pkg/logger"
	"dbpool/pkg/pool"

	"github.com/gin-gonic/gin"
)

// Handler exposes pool health, statistics and a statement passthrough over
// HTTP.
type Handler struct {
	pool    *pool.Pool
	monitor *health.Monitor
	log     *logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(p *pool.Pool, monitor *health.Monitor) *Handler {
	return &Handler{
		pool:    p,
		monitor: monitor,
		log:     logger.Get().With("component", "api"),
	}
}

// Register attaches all routes to a gin engine
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", h.HandleHealth)
	r.GET("/api/stats", h.HandleStats)
	r.POST("/api/exec", h.HandleExec)
	r.POST("/api/query", h.HandleQuery)
}

// HandleHealth reports process and pool health
func (h *Handler) HandleHealth(c *gin.Context) {
	stats := h.pool.Stats()
	switch {
	case stats.State != "running":
		h.monitor.SetComponentStatus("pool", health.StatusUnhealthy, "pool is "+stats.State)
	case stats.Open == 0:
		h.monitor.SetComponentStatus("pool", health.StatusDegraded, "no live connections")
	default:
		h.monitor.SetComponentStatus("pool", health.StatusHealthy, "")
	}

	report := h.monitor.Report()
	code := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}

// HandleStats reports pool counters
func (h *Handler) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.pool.Stats())
}

type statementRequest struct {
	Statement string `json:"statement" binding:"required"`
	Args      []any  `json:"args"`
}

// HandleExec runs a non-query statement on a pooled connection
func (h *Handler) HandleExec(c *gin.Context) {
	var req statementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lease, err := h.pool.Acquire()
	if err != nil {
		h.respondAcquireError(c, err)
		return
	}
	defer lease.Close()

	if err := lease.Exec(c.Request.Context(), req.Statement, req.Args...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HandleQuery runs a query on a pooled connection and returns its rows
func (h *Handler) HandleQuery(c *gin.Context) {
	var req statementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lease, err := h.pool.Acquire()
	if err != nil {
		h.respondAcquireError(c, err)
		return
	}
	defer lease.Close()

	rows, err := lease.Query(c.Request.Context(), req.Statement, req.Args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var result [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		scan := make([]any, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		result = append(result, values)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": columns, "rows": result})
}

func (h *Handler) respondAcquireError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrPoolExhausted) || errors.Is(err, errs.ErrPoolClosed) {
		h.log.Warn("acquire rejected", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
