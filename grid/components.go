package grid

// Components splits the non-void tiles into 4-connected regions.
// Regions are ordered by their first tile in row-major order, and each
// region lists its tiles in discovery order, starting from that tile.
//
// Time:   O(T log T) for the row-major scan, T = number of tiles.
// Memory: O(T) for the visited set and output.
func (g *Grid) Components() [][]Position {
	seen := make(map[Position]bool, len(g.tiles))
	var comps [][]Position

	for _, start := range g.Positions() {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []Position{start}
		for qi := 0; qi < len(queue); qi++ {
			p := queue[qi]
			for _, d := range Directions {
				q := p.Step(d)
				if seen[q] || g.tiles[q] == Void {
					continue
				}
				seen[q] = true
				queue = append(queue, q)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether the grid forms a single region.
func (g *Grid) Connected() bool {
	return len(g.Components()) == 1
}
