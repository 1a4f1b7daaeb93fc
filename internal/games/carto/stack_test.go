package carto

import (
	"testing"

	"github.com/giladgray/cartographist/internal/tile"
)

func TestStackPeekIsACopy(t *testing.T) {
	var s Stack
	s.Push(uniform(1, tile.Plain), uniform(2, tile.Water), uniform(3, tile.Forest))

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative", -1, 0},
		{"zero", 0, 0},
		{"some", 2, 2},
		{"more than held", 9, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Peek(tt.n); len(got) != tt.want {
				t.Errorf("len(Peek(%d)) = %d, want %d", tt.n, len(got), tt.want)
			}
		})
	}

	peek := s.Peek(2)
	peek[0] = uniform(99, tile.Mountain)
	if head, _ := s.Head(); head.ID != 1 || head.Terrain != tile.Uniform(tile.Plain) {
		t.Errorf("writing to Peek changed the head: %+v", head)
	}
	if len(s.Peek(3)) != s.Len() {
		t.Error("Peek length out of sync with the stack")
	}
}
