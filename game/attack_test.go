package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttack(t *testing.T) {
	t.Run("rejects attacking an allied territory", func(t *testing.T) {
		attacker := &Territory{Name: "A", Color: "azul", Troops: 5}
		defender := &Territory{Name: "B", Color: "Azul", Troops: 3}

		_, err := Attack(attacker, defender, NewStandardRules(), NewFixedRoller(6, 1))

		require.ErrorIs(t, err, ErrSameColor)
		require.Equal(t, 5, attacker.Troops, "Troops should not change on a rejected attack")
		require.Equal(t, 3, defender.Troops, "Troops should not change on a rejected attack")
	})

	t.Run("rejects an attacker with fewer than 2 troops", func(t *testing.T) {
		attacker := &Territory{Name: "A", Color: "azul", Troops: 1}
		defender := &Territory{Name: "B", Color: "verde", Troops: 3}

		_, err := Attack(attacker, defender, NewStandardRules(), NewFixedRoller(6, 1))

		require.ErrorIs(t, err, ErrNotEnoughTroops)
	})

	t.Run("rejects a territory attacking itself", func(t *testing.T) {
		territory := &Territory{Name: "A", Color: "azul", Troops: 4}

		_, err := Attack(territory, territory, NewStandardRules(), NewFixedRoller(6, 1))

		require.ErrorIs(t, err, ErrSameTerritory)
	})

	t.Run("higher attacker roll removes one defending troop", func(t *testing.T) {
		attacker := &Territory{Name: "A", Color: "azul", Troops: 4}
		defender := &Territory{Name: "B", Color: "verde", Troops: 3}

		result, err := Attack(attacker, defender, NewStandardRules(), NewFixedRoller(5, 2))

		require.NoError(t, err)
		require.True(t, result.AttackerWon)
		require.False(t, result.Conquered)
		require.Equal(t, 4, attacker.Troops)
		require.Equal(t, 2, defender.Troops)
		require.Equal(t, 5, result.AttackerRoll)
		require.Equal(t, 2, result.DefenderRoll)
	})

	t.Run("lower attacker roll removes one attacking troop", func(t *testing.T) {
		attacker := &Territory{Name: "A", Color: "azul", Troops: 4}
		defender := &Territory{Name: "B", Color: "verde", Troops: 3}

		result, err := Attack(attacker, defender, NewStandardRules(), NewFixedRoller(2, 5))

		require.NoError(t, err)
		require.False(t, result.AttackerWon)
		require.Equal(t, 3, attacker.Troops)
		require.Equal(t, 3, defender.Troops)
	})

	t.Run("ties depend on the rules", func(t *testing.T) {
		attacker := &Territory{Name: "A", Color: "azul", Troops: 4}
		defender := &Territory{Name: "B", Color: "verde", Troops: 3}
		result, err := Attack(attacker, defender, NewStandardRules(), NewFixedRoller(3, 3))
		require.NoError(t, err)
		require.True(t, result.AttackerWon, "Standard rules give ties to the attacker")

		attacker = &Territory{Name: "A", Color: "azul", Troops: 4}
		defender = &Territory{Name: "B", Color: "verde", Troops: 3}
		result, err = Attack(attacker, defender, NewStrictRules(), NewFixedRoller(3, 3))
		require.NoError(t, err)
		require.False(t, result.AttackerWon, "Strict rules give ties to the defender")
		require.Equal(t, 3, attacker.Troops)
	})

	t.Run("conquest transfers half the attacking troops and the color", func(t *testing.T) {
		attacker := &Territory{Name: "A", Color: "azul", Troops: 7}
		defender := &Territory{Name: "B", Color: "verde", Troops: 1}

		result, err := Attack(attacker, defender, NewStandardRules(), NewFixedRoller(6, 1))

		require.NoError(t, err)
		require.True(t, result.Conquered)
		require.Equal(t, 3, result.Transferred)
		require.Equal(t, "azul", defender.Color)
		require.Equal(t, 3, defender.Troops)
		require.Equal(t, 4, attacker.Troops)
		require.Equal(t, "azul", result.DefenderColor)
	})

	t.Run("troop counts never go negative", func(t *testing.T) {
		attacker := &Territory{Name: "A", Color: "azul", Troops: 2}
		defender := &Territory{Name: "B", Color: "verde", Troops: 0}

		_, err := Attack(attacker, defender, NewStandardRules(), NewFixedRoller(4, 4))

		require.NoError(t, err)
		require.GreaterOrEqual(t, attacker.Troops, 0)
		require.GreaterOrEqual(t, defender.Troops, 0)
	})
}

func TestRandomRollerStaysInRange(t *testing.T) {
	roller := NewRandomRoller(42)
	seen := map[int]bool{}
	for i := 0; i < 600; i++ {
		v := roller.Roll(6)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	require.Len(t, seen, 6, "Every face should come up over 600 rolls")
}

func TestFixedRollerCycles(t *testing.T) {
	roller := NewFixedRoller(1, 9)
	require.Equal(t, 1, roller.Roll(6))
	require.Equal(t, 6, roller.Roll(6), "Out of range values are clamped")
	require.Equal(t, 1, roller.Roll(6))
	require.Panics(t, func() { NewFixedRoller() })
}
