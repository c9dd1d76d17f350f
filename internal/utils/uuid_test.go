package utils

import "testing"

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id1 := g.Generate()
	id2 := g.Generate()

	if !IsUUID(id1) || !IsUUID(id2) {
		t.Fatalf("expected canonical uuids, got %q and %q", id1, id2)
	}
	if id1 == id2 {
		t.Error("expected unique ids")
	}
	if id1 > id2 {
		t.Error("expected v7 ids to be time ordered")
	}
}

func TestIsUUID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0190b8d2-6c7e-7a1b-9a3f-3c2d1e0f4a5b", true},
		{"not-a-uuid", false},
		{"", false},
		{"0190b8d26c7e7a1b9a3f3c2d1e0f4a5b", false},
		{"urn:uuid:0190b8d2-6c7e-7a1b-9a3f-3c2d1e0f4a5b", false},
	}

	for _, tt := range tests {
		if got := IsUUID(tt.in); got != tt.want {
			t.Errorf("IsUUID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
