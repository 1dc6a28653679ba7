package llm

import "testing"

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `[{"a": 1}]`,
			want:  `[{"a": 1}]`,
		},
		{
			name:  "json fence",
			input: "```json\n[{\"a\": 1}]\n```",
			want:  `[{"a": 1}]`,
		},
		{
			name:  "bare fence",
			input: "```\n[{\"a\": 1}]\n```",
			want:  `[{"a": 1}]`,
		},
		{
			name:  "fence with language identifier",
			input: "```javascript\n[{\"a\": 1}]\n```",
			want:  `[{"a": 1}]`,
		},
		{
			name:  "fence with json on first line",
			input: "```[{\"a\": 1}]\n```",
			want:  `[{"a": 1}]`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n```json\n[1]\n```\n  ",
			want:  `[1]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanJSONBlock(tt.input); got != tt.want {
				t.Errorf("CleanJSONBlock(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
