package aggregate

import "testing"

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"plain label passes through", "Android", "Android"},
		{"name attribute wins", `<a name="android"></a>Android`, "android"},
		{"id attribute wins", `<a id="software-architecture"></a>Software Architecture`, "software-architecture"},
		{"id preferred over name", `<a id="by-id" name="by-name"></a>Label`, "by-id"},
		{"anchor wrapping text", `<a name="kotlin">Kotlin</a>`, "kotlin"},
		{"anchor without attributes falls back to text", `<a>Android</a>`, "Android"},
		{"empty attribute falls back to text", `<a name="">Android</a>`, "Android"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLabel(tt.label); got != tt.want {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Android", "Android"},
		{`<a name="android"></a>Android`, "Android"},
		{`<a name="kotlin">Kotlin</a>`, "Kotlin"},
	}
	for _, tt := range tests {
		if got := DisplayLabel(tt.label); got != tt.want {
			t.Errorf("DisplayLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Android", "android"},
		{"Artificial Intelligence", "artificial-intelligence"},
		{"Software Architecture (Subject)", "software-architecture-subject"},
		{"C (programming)", "c-programming"},
		{".NET", "net"},
		{"TCP/IP", "tcpip"},
		{"Game Design & Development", "game-design--development"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		got := Slugify(tt.label)
		if got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.label, got, tt.want)
		}
		if again := Slugify(got); again != got {
			t.Errorf("Slugify not idempotent: %q -> %q", got, again)
		}
	}
}
