package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

const sizeOfFloat32 = 4

// vertexArray owns the VAO, VBO and, for indexed geometry, EBO of one
// uploaded geometry.
type vertexArray struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

func newVertexArray(config *metadata.GeometryConfig) *vertexArray {
	va := &vertexArray{
		count:   int32(config.DrawCount()),
		indexed: len(config.Indices) > 0,
	}

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(config.Vertices)*sizeOfFloat32, gl.Ptr(config.Vertices), gl.STATIC_DRAW)

	if va.indexed {
		gl.GenBuffers(1, &va.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(config.Indices)*4, gl.Ptr(config.Indices), gl.STATIC_DRAW)
	}

	stride := int32(config.Layout.Stride * sizeOfFloat32)
	for _, attr := range config.Layout.Attributes {
		gl.VertexAttribPointer(attr.Location, int32(attr.ComponentCount), gl.FLOAT, false, stride, gl.PtrOffset(int(attr.Offset*sizeOfFloat32)))
		gl.EnableVertexAttribArray(attr.Location)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return va
}

func (va *vertexArray) draw() {
	gl.BindVertexArray(va.vao)
	if va.indexed {
		gl.DrawElements(gl.TRIANGLES, va.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, va.count)
	}
	gl.BindVertexArray(0)
}

func (va *vertexArray) delete() {
	if va.indexed {
		gl.DeleteBuffers(1, &va.ebo)
	}
	gl.DeleteBuffers(1, &va.vbo)
	gl.DeleteVertexArrays(1, &va.vao)
}
