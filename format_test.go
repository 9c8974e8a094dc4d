package globallog

import "testing"

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name string
		msgs []string
		want string
	}{
		{name: "empty", msgs: nil, want: "[]"},
		{name: "single", msgs: []string{"No onions!"}, want: "['No onions!']"},
		{name: "several", msgs: []string{"a", "b"}, want: "['a', 'b']"},
		{name: "empty string", msgs: []string{""}, want: "['']"},
		{name: "single quote switches to double", msgs: []string{"it's"}, want: `["it's"]`},
		{name: "both quotes", msgs: []string{`it's "x"`}, want: `['it\'s "x"']`},
		{name: "double quote only", msgs: []string{`"x"`}, want: `['"x"']`},
		{name: "backslash", msgs: []string{`a\b`}, want: `['a\\b']`},
		{name: "control characters", msgs: []string{"a\nb\tc\rd\x00"}, want: `['a\nb\tc\rd\x00']`},
		{name: "unicode", msgs: []string{"sałatka ü"}, want: "['sałatka ü']"},
		{name: "non-printable unicode", msgs: []string{"a\u200bb"}, want: `['a\u200bb']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMessages(tt.msgs); got != tt.want {
				t.Errorf("FormatMessages(%q) = %s, want %s", tt.msgs, got, tt.want)
			}
		})
	}
}
