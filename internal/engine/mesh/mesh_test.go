package mesh

import (
	"testing"

	"github.com/Faultbox/spriteforge/pkg/math"
)

func TestQuadUVCorners(t *testing.T) {
	q := Quad()
	if len(q.Vertices) != 4 {
		t.Fatalf("quad has %d vertices, want 4", len(q.Vertices))
	}
	if len(q.Indices) != 6 {
		t.Fatalf("quad has %d indices, want 6", len(q.Indices))
	}

	// Top-left corner of the quad carries uv (0,0)
	for _, v := range q.Vertices {
		if v.Position.X < 0 && v.Position.Y > 0 {
			if v.UV != (math.Vec2{X: 0, Y: 0}) {
				t.Errorf("top-left uv = %v, want (0,0)", v.UV)
			}
		}
		if v.Position.X > 0 && v.Position.Y < 0 {
			if v.UV != (math.Vec2{X: 1, Y: 1}) {
				t.Errorf("bottom-right uv = %v, want (1,1)", v.UV)
			}
		}
	}
}

func TestQuadWindingCCW(t *testing.T) {
	q := Quad()
	for tri := 0; tri < len(q.Indices); tri += 3 {
		a := q.Vertices[q.Indices[tri]].Position
		b := q.Vertices[q.Indices[tri+1]].Position
		c := q.Vertices[q.Indices[tri+2]].Position

		// Cross product of the edges must face +Z for CCW front faces.
		cross := b.Sub(a).Cross(c.Sub(a))
		if cross.Z <= 0 {
			t.Errorf("triangle %d winds clockwise (cross.Z = %v)", tri/3, cross.Z)
		}
	}
}

func TestInterleave(t *testing.T) {
	q := Quad()
	data := q.Interleave()

	if len(data) != len(q.Vertices)*FloatsPerVertex {
		t.Fatalf("interleaved length = %d, want %d", len(data), len(q.Vertices)*FloatsPerVertex)
	}

	// First vertex: position, normal, uv in order.
	v := q.Vertices[0]
	want := []float32{
		v.Position.X, v.Position.Y, v.Position.Z,
		v.Normal.X, v.Normal.Y, v.Normal.Z,
		v.UV.X, v.UV.Y,
	}
	for i, w := range want {
		if data[i] != w {
			t.Errorf("interleaved[%d] = %v, want %v", i, data[i], w)
		}
	}
}

func TestCube(t *testing.T) {
	c := Cube()
	if len(c.Vertices) != 24 {
		t.Errorf("cube has %d vertices, want 24", len(c.Vertices))
	}
	if len(c.Indices) != 36 {
		t.Errorf("cube has %d indices, want 36", len(c.Indices))
	}

	// Every vertex sits on the cube surface.
	for i, v := range c.Vertices {
		onFace := abs(v.Position.X) == 0.5 || abs(v.Position.Y) == 0.5 || abs(v.Position.Z) == 0.5
		if !onFace {
			t.Errorf("vertex %d at %v is not on the cube surface", i, v.Position)
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
