package main

import (
	"errors"
	"testing"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
)

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name        string
		fixture     string
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "check valid document",
			fixture:     "simple.html",
			wantContain: []string{"✓ Tokenized cleanly", "Result: ✓ VALID"},
		},
		{
			name:        "check tolerates malformed markup",
			fixture:     "malformed.html",
			wantContain: []string{"Result: ✓ VALID"},
		},
		{
			name:    "check broken document",
			fixture: "broken.html",
			wantErr: true,
			wantContain: []string{
				"✗ Parse failed",
				"line 3, column 9",
				"Result: ✗ INVALID",
			},
		},
		{
			name:        "check json valid",
			fixture:     "simple.html",
			wantJSON:    true,
			wantContain: []string{`"valid": true`, `"roots":`},
		},
		{
			name:     "check json broken",
			fixture:  "broken.html",
			wantJSON: true,
			wantContain: []string{
				`"valid": false`, `"line": 3`, `"column": 9`, `"offset": 22`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.wantJSON

			path := testDataPath(t, tt.fixture)

			output, err := captureOutput(t, func() error {
				return runCheck([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runCheck() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestCheckDepthLimit(t *testing.T) {
	resetFlags(t)
	maxDepth = 2

	path := writeTempFile(t, "deep.html", []byte(`<a><b><c>x</c></b></a>`))
	output, err := captureOutput(t, func() error {
		return runCheck([]string{path})
	})
	if err == nil {
		t.Fatal("expected depth limit error")
	}
	if !errors.Is(err, htmlparse.ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
	assertContains(t, output, []string{"Result: ✗ INVALID"})
}
