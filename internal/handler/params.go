package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// SessionContextKey is the echo context key under which the session middleware stores the
// caller's session id.
const SessionContextKey = "session_id"

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parseOptionalID parses a folder id sent as a string. Empty, "null" and "root" mean the root.
func parseOptionalID(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" || raw == "root" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func sessionID(c echo.Context) string {
	id, _ := c.Get(SessionContextKey).(string)
	return id
}
