package game

import "fmt"

// AttackResult reports one resolved attack.
type AttackResult struct {
	Attacker       string
	Defender       string
	AttackerRoll   int
	DefenderRoll   int
	AttackerWon    bool // the defender lost a troop
	Conquered      bool // the defender changed color
	Transferred    int  // troops moved into the conquered territory
	AttackerTroops int  // troops left after the attack
	DefenderTroops int
	DefenderColor  string
}

// Attack resolves a single-die battle between two territories in place.
func Attack(attacker, defender *Territory, rules Rules, roller Roller) (AttackResult, error) {
	if attacker == defender {
		return AttackResult{}, ErrSameTerritory
	}
	// Check different ownership
	if SameColor(attacker.Color, defender.Color) {
		return AttackResult{}, fmt.Errorf("%w: %s and %s are both %s", ErrSameColor, attacker.Name, defender.Name, defender.Color)
	}
	// Check troop availability
	if attacker.Troops < rules.MinAttackTroops() {
		return AttackResult{}, fmt.Errorf("%w: %s has %d", ErrNotEnoughTroops, attacker.Name, attacker.Troops)
	}

	result := AttackResult{
		Attacker:     attacker.Name,
		Defender:     defender.Name,
		AttackerRoll: roller.Roll(rules.DiceSides()),
		DefenderRoll: roller.Roll(rules.DiceSides()),
	}

	if rules.IsAttackSuccessful(result.AttackerRoll, result.DefenderRoll) {
		result.AttackerWon = true
		defender.Troops--
		if defender.Troops < 1 {
			// Capture the territory
			moved := rules.ConquestTransfer(attacker.Troops)
			defender.Color = attacker.Color
			defender.Troops += moved
			attacker.Troops -= moved
			result.Conquered = true
			result.Transferred = moved
		}
	} else {
		attacker.Troops--
	}

	result.AttackerTroops = attacker.Troops
	result.DefenderTroops = defender.Troops
	result.DefenderColor = defender.Color
	return result, nil
}
