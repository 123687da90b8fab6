package textutil

import "testing"

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already clean", "a misty valley", "a misty valley"},
		{"internal runs", "a  misty\t\tvalley", "a misty valley"},
		{"newlines", "a misty\nvalley,\nsoft light", "a misty valley, soft light"},
		{"leading and trailing", "  a misty valley \n", "a misty valley"},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseWhitespace(tt.in); got != tt.want {
				t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "misty valley", 20, "misty valley"},
		{"exactly max", "misty", 5, "misty"},
		{"truncated with ellipsis", "a long winter evening", 10, "a long ..."},
		{"tiny max", "misty", 2, "mi"},
		{"zero max", "misty", 0, ""},
		{"negative max", "misty", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncate_MultiByte(t *testing.T) {
	got := Truncate("日本の冬の夕暮れ", 6)
	if got != "日本の..." {
		t.Errorf("Truncate = %q, want %q", got, "日本の...")
	}
}
