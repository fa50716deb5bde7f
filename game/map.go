package game

import (
	"fmt"

	"war/utils"
)

// Map represents the board: every registered territory in registration order.
type Map struct {
	territories []*Territory
	capacity    int // 0 means unbounded
}

// NewMap creates an empty map. A capacity of 0 lets the map grow freely.
func NewMap(capacity int) *Map {
	return &Map{
		territories: make([]*Territory, 0, max(capacity, 0)),
		capacity:    capacity,
	}
}

// Add registers a territory and returns its 1-based ID.
func (m *Map) Add(t Territory) (int, error) {
	if m.Full() {
		return 0, ErrMapFull
	}
	territory, err := NewTerritory(t.Name, t.Color, t.Troops)
	if err != nil {
		return 0, err
	}
	m.territories = append(m.territories, &territory)
	return len(m.territories), nil
}

// Full reports whether a bounded map has reached its capacity.
func (m *Map) Full() bool {
	return m.capacity > 0 && len(m.territories) >= m.capacity
}

func (m *Map) Len() int {
	return len(m.territories)
}

func (m *Map) Capacity() int {
	return m.capacity
}

// Get returns the territory with the given 1-based ID.
func (m *Map) Get(id int) (*Territory, error) {
	if id < 1 || id > len(m.territories) {
		return nil, fmt.Errorf("%w: id %d not in [1, %d]", ErrUnknownTerritory, id, len(m.territories))
	}
	return m.territories[id-1], nil
}

// Territories returns a copy of the current territory records.
func (m *Map) Territories() []Territory {
	out := make([]Territory, len(m.territories))
	for i, t := range m.territories {
		out[i] = *t
	}
	return out
}

// IndexOf returns the 1-based ID of the territory with the given name, or 0.
func (m *Map) IndexOf(name string) int {
	return utils.FindIndex(m.territories, func(t *Territory) bool {
		return t.Name == name
	}) + 1
}

// Colors lists the distinct army colors on the map in registration order.
func (m *Map) Colors() []string {
	var colors []string
	for _, t := range m.territories {
		if utils.FindIndex(colors, func(c string) bool { return SameColor(c, t.Color) }) < 0 {
			colors = append(colors, t.Color)
		}
	}
	return colors
}

// CountColor returns how many territories the given color holds.
func (m *Map) CountColor(color string) int {
	count := 0
	for _, t := range m.territories {
		if SameColor(t.Color, color) {
			count++
		}
	}
	return count
}

// CreateMap builds the fixed four-territory board of the scripted demo.
func CreateMap() *Map {
	m := NewMap(0)
	for _, t := range demoTerritories {
		if _, err := m.Add(t); err != nil {
			panic(fmt.Sprintf("invalid demo territory %q: %v", t.Name, err))
		}
	}
	return m
}

var demoTerritories = []Territory{
	{Name: "Territorio A", Color: "azul", Troops: 6},
	{Name: "Territorio B", Color: "vermelha", Troops: 3},
	{Name: "Territorio C", Color: "azul", Troops: 4},
	{Name: "Territorio D", Color: "vermelha", Troops: 2},
}
