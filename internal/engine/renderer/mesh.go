package renderer

import (
	"fmt"
	"unsafe"

	"github.com/Faultbox/spriteforge/internal/engine/mesh"
	"github.com/Faultbox/spriteforge/internal/engine/shading"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is vertex and index data uploaded to the GPU.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// UploadMesh copies mesh data into GPU buffers and records the vertex
// layout in a VAO.
func UploadMesh(data mesh.MeshData) (*Mesh, error) {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("mesh has no geometry")
	}

	m := &Mesh{indexCount: int32(len(data.Indices))}
	interleaved := data.Interleave()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(interleaved)*4, gl.Ptr(interleaved), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(shading.AttribPosition, 3, gl.FLOAT, false, mesh.Stride, nil)
	gl.EnableVertexAttribArray(shading.AttribPosition)

	gl.VertexAttribPointer(shading.AttribNormal, 3, gl.FLOAT, false, mesh.Stride, unsafe.Pointer(uintptr(mesh.NormalOffset)))
	gl.EnableVertexAttribArray(shading.AttribNormal)

	gl.VertexAttribPointer(shading.AttribUV, 2, gl.FLOAT, false, mesh.Stride, unsafe.Pointer(uintptr(mesh.UVOffset)))
	gl.EnableVertexAttribArray(shading.AttribUV)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return m, nil
}

// Draw issues the indexed draw call for this mesh.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
