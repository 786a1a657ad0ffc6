package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// parseDate parses a date in YYYY-MM-DD form, falling back to RFC 3339.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// parseOptionalDate parses a date string into a pointer, nil when empty or
// malformed.
func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil
	}
	return &t
}

// parseOptionalDayStart parses a date string and floors it to midnight.
// Range filters work on whole calendar days.
func parseOptionalDayStart(value string) *time.Time {
	t := parseOptionalDate(value)
	if t == nil {
		return nil
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return &start
}

// parseOptionalDayEnd parses a date string and widens it to the last instant
// of the day, so rows timestamped later within the end day still match.
func parseOptionalDayEnd(value string) *time.Time {
	t := parseOptionalDate(value)
	if t == nil {
		return nil
	}
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
	return &end
}

// parseAmount parses a money amount. An empty string yields zero.
func parseAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

// parseOptionalAmount parses a money amount into a pointer, nil when empty.
func parseOptionalAmount(value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parsePagination reads page and limit query parameters.
func parsePagination(ctx *gin.Context) (page, limit int) {
	if pageStr := ctx.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil {
			page = p
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}
	return page, limit
}
