package blocks

import (
	"testing"
)

func TestParseContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain text passthrough",
			content: "just a plain takeaway",
			want:    "just a plain takeaway",
		},
		{
			name:    "html tags stripped",
			content: "<p>Hello <strong>world</strong></p>",
			want:    "Hello world",
		},
		{
			name:    "heading block",
			content: `[{"type":"heading","props":{"level":2},"content":[{"text":"Sorting"}]}]`,
			want:    "## Sorting",
		},
		{
			name:    "bullet list",
			content: `[{"type":"bulletListItem","content":[{"text":"first"}]},{"type":"bulletListItem","content":[{"text":"second"}]}]`,
			want:    "- first\n- second",
		},
		{
			name:    "checklist with checked item",
			content: `[{"type":"checkListItem","props":{"checked":true},"content":[{"text":"done"}]}]`,
			want:    "- [x] done",
		},
		{
			name:    "paragraph default",
			content: `[{"type":"paragraph","content":[{"text":"a thought"}]}]`,
			want:    "a thought",
		},
		{
			name:    "nested children indent",
			content: `[{"type":"bulletListItem","content":[{"text":"parent"}],"children":[{"type":"bulletListItem","content":[{"text":"child"}]}]}]`,
			want:    "- parent\n  - child",
		},
		{
			name:    "invalid block json falls back to tag stripping",
			content: `[broken <b>markup</b>`,
			want:    "[broken markup",
		},
		{
			name:    "empty string",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseContent(tt.content)
			if got != tt.want {
				t.Errorf("ParseContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseNumberedList(t *testing.T) {
	p := NewParser()
	got, err := p.Parse(`[{"type":"numberedListItem","content":[{"text":"step"}]}]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != "1. step" {
		t.Errorf("Parse() = %q, want %q", got, "1. step")
	}
}
