package stats

import (
	"math/rand"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
)

// BaseColors can always be picked.
var BaseColors = []chess.Color{chess.Blue, chess.Red, chess.Green, chess.Yellow}

var colorUnlocks = map[chess.Color]AchievementID{
	chess.LightBlue: FirstWin,
	chess.Pink:      PerfectGame,
	chess.Orange:    Veteran,
	chess.Purple:    WinStreak5,
}

// Unlocked reports whether s may pick color.
func Unlocked(s PlayerStats, color chess.Color) bool {
	if !color.Valid() {
		return false
	}
	id, c := colorUnlocks[color]
	if !c {
		return true
	}
	return s.Has(id)
}

// AvailableColors lists the colors s may pick, in display order.
func AvailableColors(s PlayerStats) (colors []chess.Color) {
	for _, color := range chess.AllColors {
		if Unlocked(s, color) {
			colors = append(colors, color)
		}
	}
	return
}

// UnlockRequirement names the achievement color needs; ok is false for base
// colors.
func UnlockRequirement(color chess.Color) (id AchievementID, ok bool) {
	id, ok = colorUnlocks[color]
	return
}

// ComputerColors picks n distinct base colors other than human, in random
// order.
func ComputerColors(human chess.Color, n int, rng *rand.Rand) []chess.Color {
	var pool []chess.Color
	for _, color := range BaseColors {
		if color != human {
			pool = append(pool, color)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n < len(pool) {
		pool = pool[:n]
	}
	return pool
}
