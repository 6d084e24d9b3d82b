package entity

import "testing"

func TestLocationLabel(t *testing.T) {
	start, end := 100, 120

	tests := []struct {
		name string
		clip Clip
		want string
	}{
		{"no locators", Clip{}, ""},
		{"start only", Clip{ClipStart: &start}, "100"},
		{"full range", Clip{ClipStart: &start, ClipEnd: &end}, "100-120"},
		{"end without start", Clip{ClipEnd: &end}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.clip.LocationLabel(); got != tt.want {
				t.Errorf("LocationLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourceById(t *testing.T) {
	message := Message{
		Sources: []Clip{{Id: "clip-1"}, {Id: "clip-2"}},
	}

	if _, ok := message.SourceById("clip-2"); !ok {
		t.Error("expected clip-2 to resolve")
	}
	if _, ok := message.SourceById("clip-3"); ok {
		t.Error("clip-3 should not resolve")
	}
}
