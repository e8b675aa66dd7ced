package combat

import (
	"math/rand"
	"strings"
)

// RandomArena builds a walled arena of the given size with roughly a fifth of
// the interior turned into walls and up to units units, alternating elves and
// goblins, dropped on random open squares. The output is valid Parse input.
func RandomArena(rng *rand.Rand, width, height, units int) string {
	if width < 3 {
		width = 3
	}
	if height < 3 {
		height = 3
	}
	grid := make([][]byte, height)
	var open []Pos
	for r := range grid {
		grid[r] = []byte(strings.Repeat(".", width))
		for c := range grid[r] {
			border := r == 0 || c == 0 || r == height-1 || c == width-1
			if border || rng.Intn(5) == 0 {
				grid[r][c] = '#'
				continue
			}
			open = append(open, Pos{r, c})
		}
	}
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })
	if units > len(open) {
		units = len(open)
	}
	for i := 0; i < units; i++ {
		sp := Elf
		if i%2 == 1 {
			sp = Goblin
		}
		grid[open[i].Row][open[i].Col] = sp.Glyph()
	}
	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
