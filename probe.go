package compinject

import (
	"net/http"
	"strings"
)

// Legacy browser versions reported by LegacyIEVersion.
const (
	LegacyIEVersion6     = 6
	DefaultLegacyVersion = 8
)

// legacyIE6Marker identifies Internet Explorer 6 in a User-Agent string.
const legacyIE6Marker = "MSIE 6.0"

// LegacyIEVersion returns 6 if userAgent contains "MSIE 6.0", else 8.
func LegacyIEVersion(userAgent string) int {
	if strings.Contains(userAgent, legacyIE6Marker) {
		return LegacyIEVersion6
	}
	return DefaultLegacyVersion
}

// RequestIEVersion applies LegacyIEVersion to the request's User-Agent header.
func RequestIEVersion(r *http.Request) int {
	return LegacyIEVersion(r.UserAgent())
}
