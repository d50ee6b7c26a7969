package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	compinject "github.com/alnah/go-compinject"
	"github.com/alnah/go-compinject/internal/config"
)

func TestErrorHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		configName string
		want       string
	}{
		{
			name: "browser connect",
			err:  fmt.Errorf("%w: no chrome", compinject.ErrBrowserConnect),
			want: "compinject doctor",
		},
		{
			name: "page load",
			err:  fmt.Errorf("%w: timeout", compinject.ErrPageLoad),
			want: "--timeout",
		},
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			want: "--timeout",
		},
		{
			name:       "config name not found",
			err:        fmt.Errorf("%w: tried site.yaml", config.ErrConfigNotFound),
			configName: "site",
			want:       "use --config",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := errorHint(tt.err, tt.configName, envMap(nil))
			if !strings.Contains(got, tt.want) {
				t.Errorf("errorHint() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestErrorHint_None(t *testing.T) {
	t.Parallel()

	if got := errorHint(errors.New("boom"), "", envMap(nil)); got != "" {
		t.Errorf("errorHint() = %q, want empty", got)
	}
	// An explicit path that does not exist needs no search-path hint.
	err := fmt.Errorf("%w: ./site.yaml", config.ErrConfigNotFound)
	if got := errorHint(err, "./site.yaml", envMap(nil)); got != "" {
		t.Errorf("errorHint() = %q, want empty for explicit path", got)
	}
}

func TestUnknownComponents(t *testing.T) {
	t.Parallel()

	got := unknownComponents(compinject.DefaultRegistry(), []string{"syntax", "nope", "wdatepicker", "other"})
	if strings.Join(got, ",") != "nope,other" {
		t.Errorf("unknownComponents() = %v, want [nope other]", got)
	}
}
