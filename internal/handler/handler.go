package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chequesaathi/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// statusFor maps a domain error kind to its HTTP status; 0 means unknown.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized
	}
	return 0
}

// respondError writes err as {"message": ...}. Unknown errors are logged and
// reported as a generic 500.
func respondError(c *gin.Context, err error) {
	if status := statusFor(err); status != 0 {
		msg := domain.Message(err)
		if msg == "" {
			msg = err.Error()
		}
		c.JSON(status, gin.H{"message": msg})
		return
	}
	_ = c.Error(err)
	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

// bindJSON decodes the body, answering 400 on malformed input.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, "Invalid request body")
		return false
	}
	return true
}

// pageParams reads page and limit. Malformed values fall back to defaults and
// limit is capped.
func pageParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// queryOr returns the query value for key, or def when it is absent or blank.
func queryOr(c *gin.Context, key, def string) string {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		return v
	}
	return def
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// parseDate accepts RFC 3339 or a bare date/time; the latter is read in loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid date")
}

// dates parses request date fields against one location.
type dates struct {
	loc *time.Location
	err error
}

// required returns the zero time for a blank value so the service reports it
// as missing.
func (d *dates) required(s, field string) time.Time {
	if d.err != nil || strings.TrimSpace(s) == "" {
		return time.Time{}
	}
	t, err := parseDate(s, d.loc)
	if err != nil {
		d.err = domain.Validation("Invalid %s", field)
	}
	return t
}

func (d *dates) optional(s *string, field string) *time.Time {
	if d.err != nil || s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	t, err := parseDate(*s, d.loc)
	if err != nil {
		d.err = domain.Validation("Invalid %s", field)
		return nil
	}
	return &t
}

// endOfDay widens a bare-date upper bound to cover the whole day.
func endOfDay(s string, t time.Time) time.Time {
	if len(strings.TrimSpace(s)) == len("2006-01-02") {
		return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t
}
