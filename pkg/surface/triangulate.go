package surface

// Triangulate splits a simple polygon into triangles by ear clipping and
// returns indices into pts. Degenerate input yields no triangles.
func Triangulate(pts []Point) []uint16 {
	n := len(pts)
	if n < 3 {
		return nil
	}

	// Walk the polygon so that convex corners have a positive cross product
	idx := make([]int, n)
	if signedArea(pts) < 0 {
		for i := range idx {
			idx[i] = n - 1 - i
		}
	} else {
		for i := range idx {
			idx[i] = i
		}
	}

	tris := make([]uint16, 0, (n-2)*3)
	for guard := 0; len(idx) > 3 && guard < n*n; guard++ {
		clipped := false
		for i := range idx {
			prev := idx[(i+len(idx)-1)%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			if !isEar(pts, idx, prev, cur, next) {
				continue
			}
			tris = append(tris, uint16(prev), uint16(cur), uint16(next))
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Collinear or self-intersecting leftovers
			break
		}
	}
	if len(idx) == 3 && cross(pts[idx[0]], pts[idx[1]], pts[idx[2]]) != 0 {
		tris = append(tris, uint16(idx[0]), uint16(idx[1]), uint16(idx[2]))
	}
	return tris
}

func isEar(pts []Point, idx []int, prev, cur, next int) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	if cross(a, b, c) <= 0 {
		return false
	}
	for _, j := range idx {
		if j == prev || j == cur || j == next {
			continue
		}
		if inTriangle(pts[j], a, b, c) {
			return false
		}
	}
	return true
}

func signedArea(pts []Point) float64 {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}

func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func inTriangle(p, a, b, c Point) bool {
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}
