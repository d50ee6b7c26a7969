package compinject

import (
	"net/http/httptest"
	"testing"
)

func TestLegacyIEVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ua   string
		want int
	}{
		{
			name: "IE6 on Windows XP",
			ua:   "Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.1; SV1)",
			want: 6,
		},
		{
			name: "IE7",
			ua:   "Mozilla/4.0 (compatible; MSIE 7.0; Windows NT 6.0)",
			want: 8,
		},
		{
			name: "IE8",
			ua:   "Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.1; Trident/4.0)",
			want: 8,
		},
		{
			name: "modern browser",
			ua:   "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36",
			want: 8,
		},
		{
			name: "marker at start",
			ua:   "MSIE 6.0",
			want: 6,
		},
		{
			name: "lower-case marker does not match",
			ua:   "msie 6.0",
			want: 8,
		},
		{
			name: "empty",
			ua:   "",
			want: 8,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := LegacyIEVersion(tt.ua); got != tt.want {
				t.Errorf("LegacyIEVersion(%q) = %d, want %d", tt.ua, got, tt.want)
			}
		})
	}
}

func TestRequestIEVersion(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("User-Agent", "Mozilla/4.0 (compatible; MSIE 6.0; Windows 98)")
	if got := RequestIEVersion(req); got != 6 {
		t.Errorf("RequestIEVersion() = %d, want 6", got)
	}

	req.Header.Del("User-Agent")
	if got := RequestIEVersion(req); got != 8 {
		t.Errorf("RequestIEVersion() without header = %d, want 8", got)
	}
}
