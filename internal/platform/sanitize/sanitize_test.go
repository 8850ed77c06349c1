package sanitize_test

import (
	"testing"

	"github.com/jsamuelsen11/tasks-service/internal/platform/sanitize"
)

func TestText_Clean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "Buy milk", want: "Buy milk"},
		{name: "ampersand preserved", input: "Tom & Jerry", want: "Tom & Jerry"},
		{name: "bold stripped", input: "<b>Urgent</b> call", want: "Urgent call"},
		{name: "script removed entirely", input: "hi<script>alert(1)</script>", want: "hi"},
		{name: "attributes dropped", input: `<a href="javascript:x" onclick="y">link</a>`, want: "link"},
		{name: "empty", input: "", want: ""},
		{name: "typed entity kept literally", input: "a &amp; b", want: "a &amp; b"},
		{name: "generic type parameter kept", input: "Use <T> generics", want: "Use <T> generics"},
		{name: "comparison kept", input: "x < 3 and y > 4", want: "x < 3 and y > 4"},
		{name: "entities decoded alongside markup", input: "<b>Tom &amp; Jerry</b>", want: "Tom & Jerry"},
		{name: "comment removed", input: "keep<!-- hidden -->this", want: "keepthis"},
	}

	s := sanitize.NewText()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := s.Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestText_CleanPtr(t *testing.T) {
	t.Parallel()

	s := sanitize.NewText()
	if got := s.CleanPtr(nil); got != nil {
		t.Errorf("CleanPtr(nil) = %v, want nil", got)
	}

	in := "<i>walk</i> the dog"
	got := s.CleanPtr(&in)
	if got == nil || *got != "walk the dog" {
		t.Errorf("CleanPtr(%q) = %v", in, got)
	}
}
