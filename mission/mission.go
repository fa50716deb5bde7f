// Package mission parses the secret victory sentences handed to the player and
// checks them against the board.
package mission

import (
	"errors"

	"war/game"
	"war/meta"
	"war/utils"
)

var ErrNoMissions = errors.New("no missions to draw from")

// Kind is the family of victory condition a mission sentence belongs to.
type Kind int

const (
	Unknown Kind = iota
	Eliminate
	Control
	Reduce
	Streak
	EachColor
)

func (k Kind) String() string {
	switch k {
	case Eliminate:
		return "eliminate"
	case Control:
		return "control"
	case Reduce:
		return "reduce"
	case Streak:
		return "streak"
	case EachColor:
		return "each color"
	default:
		return "unknown"
	}
}

// Comparator relates a territory's troops to a mission threshold.
type Comparator int

const (
	AtLeast Comparator = iota
	AtMost
	Exactly
	MoreThan
	LessThan
)

func (c Comparator) Holds(troops, threshold int) bool {
	switch c {
	case AtLeast:
		return troops >= threshold
	case AtMost:
		return troops <= threshold
	case Exactly:
		return troops == threshold
	case MoreThan:
		return troops > threshold
	case LessThan:
		return troops < threshold
	default:
		return false
	}
}

func (c Comparator) String() string {
	switch c {
	case AtLeast:
		return ">="
	case AtMost:
		return "<="
	case Exactly:
		return "="
	case MoreThan:
		return ">"
	case LessThan:
		return "<"
	default:
		return "?"
	}
}

// Mission is a parsed victory condition.
type Mission struct {
	Text       string
	Kind       Kind
	Color      string // Eliminate: the color to wipe out
	Count      int    // Control: territories needed; Streak: conquests in a row
	Comparator Comparator
	Threshold  int
	// Origins holds the color of each territory, by ID, when the mission
	// was assigned. Eliminate and EachColor only consider these colors.
	Origins []string
}

// Assign records the board the mission is handed out on.
func (m Mission) Assign(territories []game.Territory) Mission {
	m.Origins = make([]string, len(territories))
	for i, t := range territories {
		m.Origins[i] = t.Color
	}
	return m
}

func (m Mission) onBoard(color string) bool {
	for _, origin := range m.Origins {
		if sameColor(origin, color) {
			return true
		}
	}
	return false
}

// Progress tracks the player's conquests during a match.
type Progress struct {
	Conquests int
	Streak    int // consecutive attacks that ended in a conquest
}

// Evaluate reports whether the mission holds for the player on the given board.
func (m Mission) Evaluate(territories []game.Territory, playerColor string, progress Progress) bool {
	switch m.Kind {
	case Eliminate:
		// A color that never fought cannot be eliminated
		if sameColor(m.Color, playerColor) || !m.onBoard(m.Color) {
			return false
		}
		for _, t := range territories {
			if sameColor(t.Color, m.Color) && t.Troops > 0 {
				return false
			}
		}
		return true
	case Control:
		return m.countControlled(territories, playerColor) >= m.Count
	case Reduce:
		for _, t := range territories {
			if !sameColor(t.Color, playerColor) && !m.Comparator.Holds(t.Troops, m.Threshold) {
				return false
			}
		}
		return true
	case Streak:
		return progress.Streak >= m.Count
	case EachColor:
		return m.holdsEachColor(territories, playerColor)
	default:
		return false
	}
}

func (m Mission) countControlled(territories []game.Territory, playerColor string) int {
	count := 0
	for _, t := range territories {
		if sameColor(t.Color, playerColor) && m.Comparator.Holds(t.Troops, m.Threshold) {
			count++
		}
	}
	return count
}

// holdsEachColor reports whether the player holds, for every starting color,
// at least one territory that began with it.
func (m Mission) holdsEachColor(territories []game.Territory, playerColor string) bool {
	if len(m.Origins) == 0 {
		return false
	}
	for _, color := range m.Origins {
		held := false
		for i, origin := range m.Origins {
			if i < len(territories) && sameColor(origin, color) && sameColor(territories[i].Color, playerColor) {
				held = true
				break
			}
		}
		if !held {
			return false
		}
	}
	return true
}

// Draw picks one mission sentence uniformly at random.
func Draw(missions []string, roller game.Roller) (string, error) {
	if len(missions) == 0 {
		return "", ErrNoMissions
	}
	return Truncate(missions[roller.Roll(len(missions))-1]), nil
}

func Truncate(text string) string {
	return utils.Truncate(text, meta.MISSION_SIZE)
}
