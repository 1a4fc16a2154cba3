package geometry

// View is a read-only snapshot of the vertex and index buffers handed to a
// renderer. Vertices are flat with Stride floats per vertex.
type View struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the view.
func (v View) VertexCount() int {
	return len(v.Vertices) / Stride
}

// IndexCount returns the number of indices in the view.
func (v View) IndexCount() int {
	return len(v.Indices)
}

// Vertex decodes the i-th vertex.
func (v View) Vertex(i int) Vertex {
	f := v.Vertices[i*Stride : (i+1)*Stride]
	return Vertex{X: f[0], Y: f[1], S: f[2], T: f[3], R: f[4], G: f[5], B: f[6]}
}

// EachQuad calls fn with the top-left vertex of every quad referenced by the
// index buffer. A quad is recognized by the first index of its first triangle.
func (v View) EachQuad(fn func(topLeft Vertex)) {
	for i := 0; i+IndicesPerQuad <= len(v.Indices); i += IndicesPerQuad {
		fn(v.Vertex(int(v.Indices[i])))
	}
}
