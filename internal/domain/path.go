package domain

// Waypoint is one step of a path: the node visited and the gold picked up
// there. Gold is zero for nodes visited only in transit.
type Waypoint struct {
	Node int
	Gold float64
}

// Path is an ordered sequence of waypoints. A valid path is edge-connected
// at every consecutive pair, starts at or adjacent to the origin, and ends
// exactly at (Origin, 0).
type Path []Waypoint

// TotalGold sums the gold picked up along the path.
func (p Path) TotalGold() float64 {
	var total float64
	for _, wp := range p {
		total += wp.Gold
	}
	return total
}

// Terminal reports whether the path ends exactly at the origin with
// nothing picked up.
func (p Path) Terminal() bool {
	if len(p) == 0 {
		return false
	}
	last := p[len(p)-1]
	return last.Node == Origin && last.Gold == 0
}
