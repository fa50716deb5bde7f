package game

type Rules interface {
	DiceSides() int
	MinAttackTroops() int
	// IsAttackSuccessful compares one die per side.
	IsAttackSuccessful(attackerRoll, defenderRoll int) bool
	// ConquestTransfer is how many troops move into a conquered territory.
	ConquestTransfer(attackerTroops int) int
}
