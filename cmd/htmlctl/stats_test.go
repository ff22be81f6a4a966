package main

import (
	"testing"
)

func TestStatsCommand(t *testing.T) {
	tests := []struct {
		name           string
		fixture        string
		content        string
		tag            string
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:    "stats fixture",
			fixture: "blog.html",
			wantContain: []string{
				"Document Statistics",
				"File Information:",
				"Structure:",
				"Elements by Tag:",
				"Most Common Tag:",
			},
		},
		{
			name:        "stats as JSON",
			fixture:     "blog.html",
			wantJSON:    true,
			wantContain: []string{`"TotalNodes":`, `"Tags":`, `"MaxDepth":`},
		},
		{
			name:    "stats crafted counts",
			content: `<div id="d"><p>one</p><p>two<br></p></div>`,
			wantContain: []string{
				"Roots: 1",
				"Total Nodes: 6",
				"Elements: 4",
				"Text Nodes: 2",
				"Attributes: 1",
				"Text Bytes: 6",
				"Max Depth: 3 levels",
				"p: 2",
			},
		},
		{
			name:           "stats scoped to subtree",
			content:        `<main><ul><li>a</li><li>b</li></ul><p>out</p></main>`,
			tag:            "ul",
			wantContain:    []string{"Roots: 1", "Elements: 3", "Text Nodes: 2"},
			wantNotContain: []string{"p: 1"},
		},
		{
			name:    "stats missing subtree",
			content: `<p>x</p>`,
			tag:     "nav",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.wantJSON
			statsTag = tt.tag

			var path string
			if tt.content != "" {
				path = writeTempFile(t, "stats.html", []byte(tt.content))
			} else {
				path = testDataPath(t, tt.fixture)
			}

			output, err := captureOutput(t, func() error {
				return runStats([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runStats() error = %v, wantErr %v", err, tt.wantErr)
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
