package filter

// offset is a (row, column) displacement from the centre pixel.
type offset struct {
	dr, dc int
}

// boxNeighborhood lists the 3x3 candidate offsets in row-major order,
// centre included.
var boxNeighborhood = [9]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// inBounds reports whether (row, col) lies inside a width x height image.
func inBounds(row, col, width, height int) bool {
	return row >= 0 && row < height && col >= 0 && col < width
}

// NeighborCount returns how many cells of the 3x3 neighbourhood centred on
// (row, col) lie inside a width x height image. This is the divisor the box
// blur uses for that position: 9 for interior pixels, 6 on edges, 4 in
// corners, and fewer for images one pixel wide or tall.
func NeighborCount(row, col, width, height int) int {
	n := 0
	for _, o := range boxNeighborhood {
		if inBounds(row+o.dr, col+o.dc, width, height) {
			n++
		}
	}
	return n
}
