package geom

import "github.com/rclancey/earcut"

// Triangulate splits the polygon into triangles by ear clipping and
// returns index triples into p.Vertices. Self-intersecting input can
// produce a best-effort result rather than an error.
func (p Polygon) Triangulate() ([][3]int, error) {
	coords := make([]float64, 0, len(p.Vertices)*2)
	for _, v := range p.Vertices {
		coords = append(coords, v.X, v.Y)
	}
	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, err
	}
	tris := make([][3]int, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		tris = append(tris, [3]int{indices[i], indices[i+1], indices[i+2]})
	}
	return tris, nil
}
