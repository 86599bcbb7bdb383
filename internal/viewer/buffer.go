package viewer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// dynamicBuffer is a VAO/VBO pair re-filled every frame. The VBO only grows.
type dynamicBuffer struct {
	vao      uint32
	vbo      uint32
	stride   int // floats per vertex
	capacity int // bytes
	count    int32
}

// newDynamicBuffer creates a buffer whose vertices are made of consecutive
// float attributes with the given component counts.
func newDynamicBuffer(attribs ...int) *dynamicBuffer {
	b := &dynamicBuffer{}
	for _, n := range attribs {
		b.stride += n
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	offset := 0
	for i, n := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), int32(n), gl.FLOAT, false, int32(b.stride*4), uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += n
	}

	gl.BindVertexArray(0)
	return b
}

// upload replaces the buffer contents.
func (b *dynamicBuffer) upload(data []float32) {
	b.count = int32(len(data) / b.stride)
	if len(data) == 0 {
		return
	}

	size := len(data) * 4
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if size > b.capacity {
		// Leave headroom so a slowly growing trail does not reallocate every tick.
		b.capacity = size * 3 / 2
		gl.BufferData(gl.ARRAY_BUFFER, b.capacity, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&data[0]))
}

func (b *dynamicBuffer) draw(mode uint32) {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(mode, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *dynamicBuffer) delete() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
}
