package lookup

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/TomasB/geolookup/internal/data"
	"github.com/TomasB/geolookup/internal/record"
	"github.com/TomasB/geolookup/internal/value"
	"github.com/TomasB/geolookup/internal/version"
	"github.com/gin-gonic/gin"
)

// LookupRequest holds the query parameters of a record lookup. Type accepts
// a numeric code or a record type name.
type LookupRequest struct {
	IP   string `form:"ip" binding:"required"`
	Type string `form:"type" binding:"required"`
}

// LookupResponse carries either a result tree or an error message.
type LookupResponse struct {
	Result value.Value `json:"result"`
	Error  string      `json:"error,omitempty"`
}

// CountryRequest holds the query parameters of a country name lookup.
type CountryRequest struct {
	IP     string `form:"ip" binding:"required"`
	Locale string `form:"locale"`
}

// CountryResponse carries the country name, null when the database has none.
type CountryResponse struct {
	Name  *string `json:"name"`
	Error string  `json:"error,omitempty"`
}

// RefreshResponse reports the outcome of a database refresh.
type RefreshResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Handler serves lookups against one execution context.
type Handler struct {
	geo data.Geolocator
}

// NewHandler creates a new lookup handler backed by geo.
func NewHandler(geo data.Geolocator) *Handler {
	return &Handler{geo: geo}
}

// Register mounts the handler's routes on r.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/lookup", h.Lookup)
	r.GET("/country", h.Country)
	r.POST("/refresh", h.Refresh)
	r.GET("/records", h.Records)
	r.GET("/version", h.Version)
}

// Lookup handles GET /api/v1/lookup?ip=&type=
func (h *Handler) Lookup(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, LookupResponse{
			Error: "invalid request: " + err.Error(),
		})
		return
	}

	slog.Debug("lookup request received", "ip", req.IP, "type", req.Type)

	// Address errors take precedence over record type errors.
	if _, err := record.ParseAddress(req.IP); err != nil {
		c.JSON(http.StatusBadRequest, LookupResponse{Error: err.Error()})
		return
	}
	t, err := record.ParseTypeName(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, LookupResponse{Error: err.Error()})
		return
	}

	result, err := h.geo.Query(req.IP, t.Code())
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.Error("lookup failed", "ip", req.IP, "type", t.String(), "error", err)
		}
		c.JSON(status, LookupResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, LookupResponse{Result: result})
}

// Country handles GET /api/v1/country?ip=&locale=
func (h *Handler) Country(c *gin.Context) {
	var req CountryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, CountryResponse{
			Error: "invalid request: " + err.Error(),
		})
		return
	}

	name, ok, err := h.geo.Country(req.IP, req.Locale)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.Error("country lookup failed", "ip", req.IP, "error", err)
		}
		c.JSON(status, CountryResponse{Error: err.Error()})
		return
	}

	var resp CountryResponse
	if ok {
		resp.Name = &name
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /api/v1/refresh
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.geo.Refresh(); err != nil {
		c.JSON(statusFor(err), RefreshResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, RefreshResponse{Success: true})
}

// Records handles GET /api/v1/records
func (h *Handler) Records(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"records": record.Types()})
}

// Version handles GET /api/v1/version
func (h *Handler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": version.String()})
}

func statusFor(err error) int {
	var perr *record.ParseError
	switch {
	case errors.As(err, &perr):
		return http.StatusBadRequest
	case errors.Is(err, data.ErrNotInstalled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
