package vertex

import (
	"github.com/swrast/swrast/internal/rstate"
	"github.com/swrast/swrast/internal/vertmath"
)

// Primitive is a fully assembled, clipped, culled, screen-space
// primitive ready for rasterization (spec §4.8 steps 4-6). Kind is the
// number of screen vertices: 1 (point), 2 (line), 3 (triangle).
type Primitive struct {
	Kind     int
	Screen   [3]vertmath.Vec3 // x,y in pixels, z = NDC depth
	InvW     [3]float32       // 1/clip.w per vertex, for perspective-correct interpolation
	Varyings [3][]vertmath.Vec4
	// RowStart/RowEnd is the contiguous band of raster rows the
	// primitive's screen-space bounding box overlaps (spec §4.8 step 7).
	RowStart, RowEnd int
}

// Params configures one Process call. NumVaryings is the declared varying
// count (spec §4.7); every shaded vertex's VaryingsOut slice has this length.
type Params struct {
	Shader       ShaderFunc
	VAO          VAO
	UBO          UBO
	NumVaryings  int
	Mode         RenderMode
	ElementBegin int
	ElementEnd   int
	InstanceID   uint32
	Cull         rstate.CullMode
	Viewport     rstate.Rect
}

// Process runs the full vertex-processor pipeline over
// [ElementBegin, ElementEnd) and appends every resulting screen-space
// primitive (after clip/cull) to out, returning the extended slice.
//
// Indices advance per *primitive*, not per vertex: ElementBegin/End are
// primitive indices, matching how render_mode groups raw vertices (spec
// §4.8's "vertices ... divided among N workers round-robin by
// primitive").
func Process(p Params, out []Primitive) []Primitive {
	verticesPerPrim := primitiveVertexCount(p.Mode)

	var ibo IndexSource
	hasIBO := false
	if p.VAO != nil {
		ibo, hasIBO = p.VAO.IndexBuffer()
	}

	for prim := p.ElementBegin; prim < p.ElementEnd; prim++ {
		shaded := make([]Vertex, verticesPerPrim)
		for i := 0; i < verticesPerPrim; i++ {
			vertID := uint32(prim*verticesPerPrim + i)
			if hasIBO {
				vertID = ibo.Index(prim*verticesPerPrim + i)
			}
			shaded[i] = shadeVertex(p, vertID)
		}

		assembled := assemble(p.Mode, shaded)
		for _, tri := range assembled {
			out = appendClippedCulledPrimitive(out, tri, p)
		}
	}
	return out
}

func primitiveVertexCount(mode RenderMode) int {
	switch mode {
	case ModePoints:
		return 1
	case ModeLines:
		return 2
	default: // triangles, wire triangles
		return 3
	}
}

func shadeVertex(p Params, vertID uint32) Vertex {
	varyings := make([]vertmath.Vec4, p.NumVaryings)
	param := VertexParam{
		VAO:         p.VAO,
		UBO:         p.UBO,
		VertID:      vertID,
		InstanceID:  p.InstanceID,
		VaryingsOut: varyings,
	}
	clip := p.Shader(&param)
	return Vertex{Clip: clip, Varyings: varyings}
}

// assemble groups shaded vertices into drawable sub-primitives per
// render_mode (spec §4.8 step 3): a wireframe triangle becomes three
// line primitives instead of one filled triangle.
func assemble(mode RenderMode, v []Vertex) [][]Vertex {
	switch mode {
	case ModeWireTriangles:
		return [][]Vertex{{v[0], v[1]}, {v[1], v[2]}, {v[2], v[0]}}
	default:
		return [][]Vertex{v}
	}
}

func appendClippedCulledPrimitive(out []Primitive, verts []Vertex, p Params) []Primitive {
	if len(verts) == 3 {
		for _, tri := range clipTriangle(verts) {
			prim, ok := finishTriangle(tri, p)
			if ok {
				out = append(out, prim)
			}
		}
		return out
	}
	// Points and lines are not clipped against the frustum at all: they go
	// straight to the perspective divide. Spec §4.9's line/point path
	// shares the later raster stages but not Sutherland-Hodgman clipping,
	// which is defined only for triangles (spec §4.8 step 4).
	prim, ok := finishGeneric(verts, p)
	if ok {
		out = append(out, prim)
	}
	return out
}

func finishTriangle(tri [3]Vertex, p Params) (Primitive, bool) {
	screen, invW := divideAndViewport(tri[:], p.Viewport)
	if cullTriangle(screen, p.Cull) {
		return Primitive{}, false
	}
	prim := Primitive{Kind: 3}
	for i := 0; i < 3; i++ {
		prim.Screen[i] = screen[i]
		prim.InvW[i] = invW[i]
		prim.Varyings[i] = tri[i].Varyings
	}
	prim.RowStart, prim.RowEnd = boundingRowsTri(prim.Screen)
	return prim, true
}

func finishGeneric(verts []Vertex, p Params) (Primitive, bool) {
	screen, invW := divideAndViewport(verts, p.Viewport)
	prim := Primitive{Kind: len(verts)}
	for i := range verts {
		prim.Screen[i] = screen[i]
		prim.InvW[i] = invW[i]
		prim.Varyings[i] = verts[i].Varyings
	}
	prim.RowStart, prim.RowEnd = boundingRowsGeneric(prim.Screen[:len(verts)])
	return prim, true
}

// divideAndViewport implements spec §4.8 step 6.
func divideAndViewport(verts []Vertex, vp rstate.Rect) ([3]vertmath.Vec3, [3]float32) {
	var screen [3]vertmath.Vec3
	var invW [3]float32
	for i, v := range verts {
		w := v.Clip.W
		ndcX, ndcY, ndcZ := v.Clip.X/w, v.Clip.Y/w, v.Clip.Z/w
		screen[i] = vertmath.Vec3{
			X: (ndcX*0.5 + 0.5) * float32(vp.W) + float32(vp.X),
			Y: (ndcY*0.5 + 0.5) * float32(vp.H) + float32(vp.Y),
			Z: ndcZ,
		}
		invW[i] = 1 / w
	}
	return screen, invW
}

// cullTriangle implements spec §4.8 step 5: sign of signed screen-space
// area determines winding.
func cullTriangle(screen [3]vertmath.Vec3, mode rstate.CullMode) bool {
	if mode == rstate.CullNone {
		return false
	}
	area := signedArea(screen[0], screen[1], screen[2])
	switch mode {
	case rstate.CullFront:
		return area > 0
	case rstate.CullBack:
		return area < 0
	default:
		return false
	}
}

func signedArea(a, b, c vertmath.Vec3) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

func boundingRowsTri(screen [3]vertmath.Vec3) (int, int) {
	minY, maxY := screen[0].Y, screen[0].Y
	for _, s := range screen[1:] {
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	return floorInt(minY), ceilInt(maxY)
}

func boundingRowsGeneric(screen []vertmath.Vec3) (int, int) {
	minY, maxY := screen[0].Y, screen[0].Y
	for _, s := range screen[1:] {
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}
	return floorInt(minY), ceilInt(maxY)
}

func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}

func ceilInt(v float32) int {
	i := int(v)
	if v > 0 && float32(i) != v {
		i++
	}
	return i
}
