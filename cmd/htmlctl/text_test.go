package main

import (
	"testing"
)

func TestTextCommand(t *testing.T) {
	const doc = `<article><h1>Title</h1><p>Hello <em>world</em>.</p></article>`

	tests := []struct {
		name           string
		tag            string
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "text whole document",
			wantContain: []string{"TitleHello world."},
		},
		{
			name:           "text scoped to element",
			tag:            "h1",
			wantContain:    []string{"Title"},
			wantNotContain: []string{"world"},
		},
		{
			name:           "text nested element",
			tag:            "em",
			wantContain:    []string{"world"},
			wantNotContain: []string{"Hello"},
		},
		{
			name:        "text as JSON",
			wantJSON:    true,
			wantContain: []string{`"text": "TitleHello world."`, `"bytes": 17`},
		},
		{
			name:    "text missing element",
			tag:     "nav",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.wantJSON
			textTag = tt.tag

			path := writeTempFile(t, "text.html", []byte(doc))

			output, err := captureOutput(t, func() error {
				return runText([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

// Comments never contribute text, and entities pass through untouched.
func TestTextFixtureStripsMarkup(t *testing.T) {
	resetFlags(t)
	textTag = ""

	output, err := captureOutput(t, func() error {
		return runText([]string{testDataPath(t, "blog.html")})
	})
	if err != nil {
		t.Fatalf("runText() error = %v", err)
	}

	assertContains(t, output, []string{
		"Field Notes",
		"Herons: 34",
		"probably juveniles",
		"March archive",
		"&copy; 2024",
	})
	assertNotContains(t, output, []string{
		"<li>",
		"href",
		"blogger",
		"related posts",
	})
}
