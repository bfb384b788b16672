package vertex

import "github.com/swrast/swrast/internal/vertmath"

// clipPlane identifies one of the 6 canonical clip-space planes
// (spec §4.8 step 4): x=-w, x=w, y=-w, y=w, z=-w (or z=0), z=w.
type clipPlane int

const (
	planeLeft clipPlane = iota
	planeRight
	planeBottom
	planeTop
	planeNear
	planeFar
)

var allPlanes = [6]clipPlane{planeLeft, planeRight, planeBottom, planeTop, planeNear, planeFar}

// distance returns the signed distance of v from the plane; v is inside
// when distance >= 0.
func (pl clipPlane) distance(v vertmath.Vec4) float32 {
	switch pl {
	case planeLeft:
		return v.W + v.X
	case planeRight:
		return v.W - v.X
	case planeBottom:
		return v.W + v.Y
	case planeTop:
		return v.W - v.Y
	case planeNear:
		return v.W + v.Z
	default: // planeFar
		return v.W - v.Z
	}
}

// clipTriangle runs Sutherland-Hodgman clipping of one triangle against
// all 6 canonical planes in clip space, fan-triangulating the resulting
// convex polygon back into 0-N triangles (spec §4.8 step 4: "a triangle
// may produce 0-2 output triangles" for a single-plane cut; clipping
// against all 6 planes can still only grow a triangle to at most a
// 9-gon, fan-triangulated here the same way).
func clipTriangle(tri [3]Vertex) [][3]Vertex {
	poly := []Vertex{tri[0], tri[1], tri[2]}
	for _, pl := range allPlanes {
		poly = clipAgainstPlane(poly, pl)
		if len(poly) == 0 {
			return nil
		}
	}
	return fanTriangulate(poly)
}

// clipAgainstPlane clips a convex polygon against one plane, linearly
// interpolating clip-space position and varyings by the edge parameter
// t (spec §4.8 step 4: perspective correction of varyings happens later
// via 1/w, so this interpolation is plain linear in clip space).
func clipAgainstPlane(poly []Vertex, pl clipPlane) []Vertex {
	if len(poly) == 0 {
		return nil
	}
	out := make([]Vertex, 0, len(poly)+1)
	for i := range poly {
		cur := poly[i]
		prev := poly[(i-1+len(poly))%len(poly)]

		curIn := pl.distance(cur.Clip) >= 0
		prevIn := pl.distance(prev.Clip) >= 0

		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur, pl))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur, pl))
		}
	}
	return out
}

func intersect(a, b Vertex, pl clipPlane) Vertex {
	da, db := pl.distance(a.Clip), pl.distance(b.Clip)
	t := da / (da - db)
	return a.Lerp(b, t)
}

// fanTriangulate splits a convex polygon (3+ vertices) into a triangle
// fan from vertex 0.
func fanTriangulate(poly []Vertex) [][3]Vertex {
	if len(poly) < 3 {
		return nil
	}
	tris := make([][3]Vertex, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, [3]Vertex{poly[0], poly[i], poly[i+1]})
	}
	return tris
}
