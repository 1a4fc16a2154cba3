package geometry

// Stride is the number of float32 values per vertex in a View: x, y, s, t, r, g, b.
const Stride = 7

const (
	// VerticesPerQuad is the number of vertices describing one block.
	VerticesPerQuad = 4
	// IndicesPerQuad is the number of triangle-list indices for one block.
	IndicesPerQuad = 6
)

// Corner positions within a quad.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// quadUV holds the texture coordinates for each corner slot.
var quadUV = [VerticesPerQuad][2]float32{
	TopLeft:     {0, 1},
	TopRight:    {1, 1},
	BottomLeft:  {0, 0},
	BottomRight: {1, 0},
}

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float32
}

// Vertex is one record of the vertex buffer.
type Vertex struct {
	X, Y float32 // screen position (NDC)
	S, T float32 // texture coordinate
	R, G, B float32
}

// Quad is a mutable window of four vertices inside a Mesh.
type Quad []Vertex

// Cell returns the grid row and column of the quad's top-left vertex.
func (q Quad) Cell(l Layout) (row, col int) {
	return l.YIndex(q[TopLeft].Y), l.XIndex(q[TopLeft].X)
}

// Translate moves every vertex of the quad.
func (q Quad) Translate(dx, dy float32) {
	for i := range q {
		q[i].X += dx
		q[i].Y += dy
	}
}

// ResetUV restores the canonical texture coordinates for each corner slot.
func (q Quad) ResetUV() {
	for i := range q {
		q[i].S = quadUV[i][0]
		q[i].T = quadUV[i][1]
	}
}

// Mesh owns a vertex buffer and the triangle-list index buffer built from it.
// Every four consecutive vertices form one quad.
type Mesh struct {
	blockLength float32
	vertices    []Vertex
	indices     []uint32
}

// NewMesh creates an empty mesh whose quads have the given side length.
func NewMesh(blockLength float32) *Mesh {
	return &Mesh{blockLength: blockLength}
}

// AppendQuad appends one block whose top-left corner is (x, y).
// Vertices are ordered top-left, top-right, bottom-left, bottom-right and
// drawn as two triangles. Returns the index of the new quad.
func (m *Mesh) AppendQuad(x, y float32, c RGB) int {
	base := uint32(len(m.vertices))
	bl := m.blockLength

	corners := [VerticesPerQuad][2]float32{
		TopLeft:     {x, y},
		TopRight:    {x + bl, y},
		BottomLeft:  {x, y - bl},
		BottomRight: {x + bl, y - bl},
	}
	for i, p := range corners {
		m.vertices = append(m.vertices, Vertex{
			X: p[0], Y: p[1],
			S: quadUV[i][0], T: quadUV[i][1],
			R: c.R, G: c.G, B: c.B,
		})
	}

	m.indices = appendQuadIndices(m.indices, base)
	return int(base) / VerticesPerQuad
}

// appendQuadIndices appends the two triangles for the quad at base.
func appendQuadIndices(dst []uint32, base uint32) []uint32 {
	return append(dst,
		base, base+1, base+2,
		base+1, base+2, base+3,
	)
}

// QuadCount returns the number of quads in the mesh.
func (m *Mesh) QuadCount() int {
	return len(m.vertices) / VerticesPerQuad
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// IndexCount returns the number of indices in the mesh.
func (m *Mesh) IndexCount() int {
	return len(m.indices)
}

// Quad returns the i-th quad. Writes through it modify the mesh.
func (m *Mesh) Quad(i int) Quad {
	start := i * VerticesPerQuad
	return Quad(m.vertices[start : start+VerticesPerQuad : start+VerticesPerQuad])
}

// TranslateQuads moves quads [from, to) by (dx, dy).
func (m *Mesh) TranslateQuads(from, to int, dx, dy float32) {
	for i := from; i < to; i++ {
		m.Quad(i).Translate(dx, dy)
	}
}

// Compact keeps the quads for which keep returns true, preserving their order,
// then rebuilds the index buffer. Returns the number of quads removed.
func (m *Mesh) Compact(keep func(q int) bool) int {
	n := m.QuadCount()
	out := 0
	for q := range n {
		if !keep(q) {
			continue
		}
		if out != q {
			copy(m.vertices[out*VerticesPerQuad:], m.vertices[q*VerticesPerQuad:(q+1)*VerticesPerQuad])
		}
		out++
	}
	m.vertices = m.vertices[:out*VerticesPerQuad]
	m.Reindex()
	return n - out
}

// Reindex regenerates the index buffer from the vertex layout.
func (m *Mesh) Reindex() {
	m.indices = m.indices[:0]
	for q := range m.QuadCount() {
		m.indices = appendQuadIndices(m.indices, uint32(q*VerticesPerQuad))
	}
}

// View fills dst with flat copies of the buffers, reusing its backing arrays.
func (m *Mesh) View(dst *View) {
	dst.Vertices = dst.Vertices[:0]
	for _, v := range m.vertices {
		dst.Vertices = append(dst.Vertices, v.X, v.Y, v.S, v.T, v.R, v.G, v.B)
	}
	dst.Indices = append(dst.Indices[:0], m.indices...)
}
