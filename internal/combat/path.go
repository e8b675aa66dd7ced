package combat

// distances runs a breadth-first search over open squares starting at from.
// The start square itself is always included at distance 0.
func distances(b *Board, from Pos) map[Pos]int {
	dist := map[Pos]int{from: 0}
	queue := []Pos{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range offsets {
			np := p.Add(d)
			if _, seen := dist[np]; seen || !b.Open(np) {
				continue
			}
			dist[np] = dist[p] + 1
			queue = append(queue, np)
		}
	}
	return dist
}

// inRange lists the open squares adjacent to a living enemy of s.
func inRange(b *Board, s Species) map[Pos]bool {
	out := map[Pos]bool{}
	for _, u := range b.units {
		if u.Species != s.Enemy() {
			continue
		}
		for _, n := range b.Neighbors(u.Pos) {
			if b.Open(n.Pos) {
				out[n.Pos] = true
			}
		}
	}
	return out
}

func adjacentEnemy(b *Board, u *Unit) bool {
	for _, n := range b.Neighbors(u.Pos) {
		if n.Unit != nil && n.Unit.Species == u.Species.Enemy() {
			return true
		}
	}
	return false
}

// NextStep picks where u moves this turn. The target is the nearest in-range
// square, ties going to reading order; the step is the neighbour of u closest
// to that target, ties again going to reading order. ok is false when no
// in-range square is reachable.
func NextStep(b *Board, u *Unit) (step, target Pos, dist int, ok bool) {
	reach := distances(b, u.Pos)
	dist = -1
	for p := range inRange(b, u.Species) {
		d, found := reach[p]
		if !found {
			continue
		}
		if dist < 0 || d < dist || (d == dist && p.Less(target)) {
			target, dist = p, d
		}
	}
	if dist < 0 {
		return Pos{}, Pos{}, 0, false
	}
	back := distances(b, target)
	best := -1
	for _, d := range offsets {
		np := u.Pos.Add(d)
		bd, found := back[np]
		if !found {
			continue
		}
		// offsets are in reading order, so strict < keeps the earliest tie.
		if best < 0 || bd < best {
			step, best = np, bd
		}
	}
	return step, target, dist, best >= 0
}
