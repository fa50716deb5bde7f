package game

import (
	"errors"
	"strings"

	"war/meta"
	"war/utils"
)

var (
	ErrSameColor        = errors.New("cannot attack a territory of the same color")
	ErrSameTerritory    = errors.New("a territory cannot attack itself")
	ErrNotEnoughTroops  = errors.New("attacking territory needs at least 2 troops")
	ErrUnknownTerritory = errors.New("unknown territory")
	ErrMapFull          = errors.New("territory limit reached")
	ErrInvalidTerritory = errors.New("territory name and color are required")
	ErrNegativeTroops   = errors.New("troop count cannot be negative")
)

// Territory is a named region held by an army color.
type Territory struct {
	Name   string
	Color  string
	Troops int
}

// NewTerritory trims and truncates the fields the way the fixed-size records did.
func NewTerritory(name, color string, troops int) (Territory, error) {
	name = utils.Truncate(strings.TrimSpace(name), meta.NAME_SIZE-1)
	color = utils.Truncate(strings.TrimSpace(color), meta.COLOR_SIZE-1)
	if name == "" || color == "" {
		return Territory{}, ErrInvalidTerritory
	}
	if troops < 0 {
		return Territory{}, ErrNegativeTroops
	}
	return Territory{Name: name, Color: color, Troops: troops}, nil
}

// SameColor compares army colors ignoring case and surrounding spaces.
func SameColor(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
