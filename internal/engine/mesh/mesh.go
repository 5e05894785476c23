// Package mesh provides CPU-side geometry for the rendering pipeline.
package mesh

import (
	"github.com/Faultbox/spriteforge/internal/engine/shading"
	"github.com/Faultbox/spriteforge/pkg/math"
)

// Vertex layout constants for buffer upload. Layout: position 3xf32 at
// location 0, normal 3xf32 at location 1, uv 2xf32 at location 2.
const (
	// FloatsPerVertex is the interleaved float count per vertex.
	FloatsPerVertex = 8
	// Stride is the interleaved byte stride per vertex.
	Stride = FloatsPerVertex * 4
	// NormalOffset is the byte offset of the normal attribute.
	NormalOffset = 3 * 4
	// UVOffset is the byte offset of the uv attribute.
	UVOffset = 6 * 4
)

// MeshData is indexed triangle geometry. Indices traverse vertices in
// counter-clockwise front-face order.
type MeshData struct {
	Vertices []shading.Vertex
	Indices  []uint32
}

// Interleave flattens the vertices into the position/normal/uv float
// stream the vertex input layout expects.
func (m MeshData) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.UV.X, v.UV.Y,
		)
	}
	return out
}

// Quad returns a unit square in the XY plane, centered at the origin,
// facing +Z. UVs put (0,0) at the top-left so a full-image window shows
// the texture upright.
func Quad() MeshData {
	return MeshData{
		Vertices: []shading.Vertex{
			{Position: math.Vec3{X: -0.5, Y: -0.5}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 1}},
			{Position: math.Vec3{X: 0.5, Y: -0.5}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 1}},
			{Position: math.Vec3{X: -0.5, Y: 0.5}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 0}},
			{Position: math.Vec3{X: 0.5, Y: 0.5}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 0}},
		},
		Indices: []uint32{
			0, 1, 3,
			0, 3, 2,
		},
	}
}

// Cube returns a unit cube centered at the origin. Each face carries its
// own four vertices so normals and UVs stay per-face.
func Cube() MeshData {
	type face struct {
		normal math.Vec3
		right  math.Vec3
		up     math.Vec3
	}

	faces := []face{
		{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}},
		{math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}},
		{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}},
		{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},
	}

	var m MeshData
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		center := f.normal.Scale(0.5)
		for _, corner := range []struct {
			r, u float32
			uv   math.Vec2
		}{
			{-0.5, -0.5, math.Vec2{X: 0, Y: 1}},
			{0.5, -0.5, math.Vec2{X: 1, Y: 1}},
			{-0.5, 0.5, math.Vec2{X: 0, Y: 0}},
			{0.5, 0.5, math.Vec2{X: 1, Y: 0}},
		} {
			pos := center.Add(f.right.Scale(corner.r)).Add(f.up.Scale(corner.u))
			m.Vertices = append(m.Vertices, shading.Vertex{
				Position: pos,
				Normal:   f.normal,
				UV:       corner.uv,
			})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+3,
			base, base+3, base+2,
		)
	}
	return m
}
