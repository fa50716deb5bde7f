package engine

import "war/meta"

// MaxTurns bounds a scripted match whatever the requested length.
const MaxTurns = 500

// Plan is one scripted attack, by 1-based territory IDs.
type Plan struct {
	AttackerID int
	DefenderID int
}

// DemoPlans is the fixed opening of the demo match: the first territory
// attacks the second every turn.
var DemoPlans = []Plan{{AttackerID: 1, DefenderID: 2}}

// DemoTurns is the length of the demo match.
const DemoTurns = meta.SIMULATED_TURNS
