package manifest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltin(t *testing.T) {
	t.Parallel()

	want := []Entry{
		{
			Name: "syntax",
			Assets: []string{
				"$syntax/css/shCore.css",
				"$syntax/css/shThemeDefault.css",
				"$syntax/js/shCore.js",
				"$syntax/js/shBrushJScript.js",
				"$syntax/js/shBrushXml.js",
			},
		},
		{
			Name: "wdatepicker",
			Assets: []string{
				"$WdatePicker/dependecies/jquery.js",
				"$WdatePicker/css/WdatePicker.css",
				"$WdatePicker/js/WdatePicker.js",
			},
		},
	}

	if diff := cmp.Diff(want, Builtin()); diff != "" {
		t.Errorf("Builtin() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
		wantLen int
	}{
		{
			name:    "single entry",
			data:    "components:\n  - name: charts\n    assets: [charts.js]\n",
			wantLen: 1,
		},
		{
			name:    "empty name",
			data:    "components:\n  - name: \"  \"\n    assets: [a.js]\n",
			wantErr: ErrEmptyName,
		},
		{
			name:    "duplicate name",
			data:    "components:\n  - name: a\n    assets: [a.js]\n  - name: a\n    assets: [b.js]\n",
			wantErr: ErrDuplicateName,
		},
		{
			name:    "no assets",
			data:    "components:\n  - name: a\n",
			wantErr: ErrNoAssets,
		},
		{
			name:    "unknown field",
			data:    "components: []\nversion: 2\n",
			wantErr: ErrInvalidManifest,
		},
		{
			name:    "empty input",
			data:    "",
			wantErr: ErrInvalidManifest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse([]byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("Parse() returned %d entries, want %d", len(got), tt.wantLen)
			}
		})
	}
}
