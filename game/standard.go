package game

import "war/meta"

type StandardRules struct {
	Sides            int
	MinTroops        int
	AttackerWinsTies bool
}

// NewStandardRules returns the rules where a tied roll goes to the attacker.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		Sides:            meta.DICE_SIDES,
		MinTroops:        meta.MIN_ATTACK_TROOPS,
		AttackerWinsTies: true,
	}
}

// NewStrictRules returns the rules where the attacker must roll strictly higher.
func NewStrictRules() *StandardRules {
	sr := NewStandardRules()
	sr.AttackerWinsTies = false
	return sr
}

func (sr *StandardRules) DiceSides() int {
	return sr.Sides
}

func (sr *StandardRules) MinAttackTroops() int {
	return sr.MinTroops
}

func (sr *StandardRules) IsAttackSuccessful(attackerRoll, defenderRoll int) bool {
	if sr.AttackerWinsTies {
		return attackerRoll >= defenderRoll
	}
	return attackerRoll > defenderRoll
}

// Half of the attacking army moves in.
func (sr *StandardRules) ConquestTransfer(attackerTroops int) int {
	return attackerTroops / 2
}
