package combat

// takeTurn plays one unit's move and attack. done reports that u found no
// living enemy, which ends the whole battle.
func (bt *Battle) takeTurn(u *Unit) (done bool, err error) {
	if !u.Alive() {
		return false, nil
	}
	if !bt.Board.HasLiving(u.Species.Enemy()) {
		return true, nil
	}
	bt.emit("Turn", map[string]any{"id": u.ID, "species": u.Species, "pos": u.Pos})

	if !adjacentEnemy(bt.Board, u) {
		step, target, dist, ok := NextStep(bt.Board, u)
		if !ok {
			return false, nil
		}
		from := u.Pos
		if err := bt.Board.Move(from, step); err != nil {
			return false, err
		}
		bt.acted = true
		bt.emit("Move", map[string]any{"id": u.ID, "from": from, "to": step, "target": target, "dist": dist})
	}
	return false, bt.attack(u)
}

// pickTarget returns the adjacent enemy with the fewest hit points, ties
// going to reading order, or nil.
func pickTarget(b *Board, u *Unit) *Unit {
	var best *Unit
	for _, n := range b.Neighbors(u.Pos) {
		e := n.Unit
		if e == nil || e.Species != u.Species.Enemy() || !e.Alive() {
			continue
		}
		if best == nil || e.HP < best.HP || (e.HP == best.HP && e.Pos.Less(best.Pos)) {
			best = e
		}
	}
	return best
}

func (bt *Battle) attack(u *Unit) error {
	t := pickTarget(bt.Board, u)
	if t == nil {
		return nil
	}
	t.HP -= u.AttackPower
	bt.acted = true
	bt.emit("Attack", map[string]any{"id": u.ID, "target": t.ID, "damage": u.AttackPower, "hp": t.HP})
	if t.Alive() {
		return nil
	}
	if err := bt.Board.Remove(t.Pos); err != nil {
		return err
	}
	bt.Casualties[t.Species]++
	bt.emit("Death", map[string]any{"id": t.ID, "species": t.Species, "pos": t.Pos})
	return nil
}
