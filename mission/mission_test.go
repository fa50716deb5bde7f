package mission

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"war/game"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Mission
	}{
		{
			name: "portuguese elimination",
			text: "Eliminar todas as tropas da cor vermelha",
			want: Mission{Kind: Eliminate, Color: "vermelha"},
		},
		{
			name: "english elimination",
			text: "Eliminate all troops of color Blue.",
			want: Mission{Kind: Eliminate, Color: "blue"},
		},
		{
			name: "control with number word",
			text: "Controlar dois territorios com mais de 5 tropas",
			want: Mission{Kind: Control, Count: 2, Comparator: MoreThan, Threshold: 5},
		},
		{
			name: "control with accents and at most",
			text: "Controlar 3 Territórios com no máximo 2 tropas",
			want: Mission{Kind: Control, Count: 3, Comparator: AtMost, Threshold: 2},
		},
		{
			name: "control with symbols",
			text: "Control 2 territories with >= 4 troops",
			want: Mission{Kind: Control, Count: 2, Comparator: AtLeast, Threshold: 4},
		},
		{
			name: "control with equals",
			text: "Control 1 territories with = 3 troops",
			want: Mission{Kind: Control, Count: 1, Comparator: Exactly, Threshold: 3},
		},
		{
			name: "reduce enemies",
			text: "Reduzir as tropas inimigas a menos de 3 por territorio",
			want: Mission{Kind: Reduce, Comparator: LessThan, Threshold: 3},
		},
		{
			name: "streak",
			text: "Conquistar 3 territorios seguidos",
			want: Mission{Kind: Streak, Count: 3},
		},
		{
			name: "each color",
			text: "Ter pelo menos um território de cada cor",
			want: Mission{Kind: EachColor},
		},
		{
			name: "each color in english",
			text: "Hold at least one territory of each color.",
			want: Mission{Kind: EachColor},
		},
		{
			name: "unsupported sentence",
			text: "Dominar o mundo inteiro",
			want: Mission{Kind: Unknown},
		},
		{
			name: "control without threshold",
			text: "Control 2 territories",
			want: Mission{Kind: Unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.Text = tt.text
			require.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestComparatorHolds(t *testing.T) {
	require.True(t, AtLeast.Holds(5, 5))
	require.False(t, MoreThan.Holds(5, 5))
	require.True(t, AtMost.Holds(4, 5))
	require.True(t, Exactly.Holds(5, 5))
	require.True(t, LessThan.Holds(2, 3))
	require.False(t, Comparator(99).Holds(1, 1))
	require.Equal(t, ">=", AtLeast.String())
	require.Equal(t, "<", LessThan.String())
	require.Equal(t, "?", Comparator(99).String())
	require.Equal(t, "?", Comparator(-1).String())
}

func board() []game.Territory {
	return []game.Territory{
		{Name: "A", Color: "azul", Troops: 6},
		{Name: "B", Color: "vermelha", Troops: 3},
		{Name: "C", Color: "azul", Troops: 7},
		{Name: "D", Color: "vermelha", Troops: 2},
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("control counts the player's qualifying territories", func(t *testing.T) {
		m := Parse("Controlar dois territorios com mais de 5 tropas")
		require.True(t, m.Evaluate(board(), "azul", Progress{}))
		require.False(t, m.Evaluate(board(), "vermelha", Progress{}))
	})

	t.Run("elimination needs every troop of the color gone", func(t *testing.T) {
		m := Parse("Eliminar todas as tropas da cor vermelha").Assign(board())
		require.False(t, m.Evaluate(board(), "azul", Progress{}))

		territories := board()
		territories[1].Color = "azul"
		territories[3].Color = "Azul"
		require.True(t, m.Evaluate(territories, "azul", Progress{}))
	})

	t.Run("eliminating the player's own color never succeeds", func(t *testing.T) {
		m := Parse("Eliminar todas as tropas da cor azul").Assign(board())
		require.False(t, m.Evaluate([]game.Territory{{Name: "A", Color: "verde", Troops: 1}}, "azul", Progress{}))
	})

	t.Run("eliminating a color absent from the board never succeeds", func(t *testing.T) {
		for _, text := range []string{"Eliminar todas as tropas da cor amarela", "Eliminate all troops of color red"} {
			m := Parse(text).Assign(board())
			require.False(t, m.Evaluate(board(), "azul", Progress{}), "%q should not be won on a board without that color", text)
		}

		unassigned := Parse("Eliminar todas as tropas da cor vermelha")
		territories := board()
		territories[1].Color = "azul"
		territories[3].Color = "azul"
		require.False(t, unassigned.Evaluate(territories, "azul", Progress{}), "A mission never handed out has no colors to eliminate")
	})

	t.Run("each color needs a territory from every starting color", func(t *testing.T) {
		m := Parse("Ter pelo menos um territorio de cada cor").Assign(board())
		require.Equal(t, []string{"azul", "vermelha", "azul", "vermelha"}, m.Origins)
		require.False(t, m.Evaluate(board(), "azul", Progress{}))

		territories := board()
		territories[3].Color = "azul"
		require.True(t, m.Evaluate(territories, "azul", Progress{}))

		// Losing every original azul territory breaks it again
		territories[0].Color = "vermelha"
		territories[2].Color = "vermelha"
		require.False(t, m.Evaluate(territories, "azul", Progress{}))

		require.False(t, Parse("Hold at least one territory of each color").Evaluate(board(), "azul", Progress{}))
	})

	t.Run("reduce checks every enemy territory", func(t *testing.T) {
		m := Parse("Reduzir as tropas inimigas a menos de 3 por territorio")
		require.False(t, m.Evaluate(board(), "azul", Progress{}))

		territories := board()
		territories[1].Troops = 2
		require.True(t, m.Evaluate(territories, "azul", Progress{}))
	})

	t.Run("streak uses the conquest progress", func(t *testing.T) {
		m := Parse("Conquer 3 territories in a row")
		require.False(t, m.Evaluate(board(), "azul", Progress{Conquests: 5, Streak: 2}))
		require.True(t, m.Evaluate(board(), "azul", Progress{Conquests: 3, Streak: 3}))
	})

	t.Run("unknown missions are never satisfied", func(t *testing.T) {
		m := Parse("Dominar o mundo inteiro").Assign(board())
		require.False(t, m.Evaluate(board(), "azul", Progress{Streak: 10}))
	})
}

func TestDraw(t *testing.T) {
	missions := []string{"first", "second", "third"}

	got, err := Draw(missions, game.NewFixedRoller(2))
	require.NoError(t, err)
	require.Equal(t, "second", got)

	_, err = Draw(nil, game.NewFixedRoller(1))
	require.ErrorIs(t, err, ErrNoMissions)

	long, err := Draw([]string{strings.Repeat("x", 150)}, game.NewFixedRoller(1))
	require.NoError(t, err)
	require.Len(t, long, 100)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("matches the requested locale", func(t *testing.T) {
		catalog, err := LoadCatalog("pt")
		require.NoError(t, err)
		require.Equal(t, "pt-BR", catalog.Locale())
		require.Contains(t, catalog.Fixed(), "Controlar dois territorios com mais de 5 tropas")
	})

	t.Run("falls back to the base locale", func(t *testing.T) {
		catalog, err := LoadCatalog("de-DE")
		require.NoError(t, err)
		require.Equal(t, BaseLocale, catalog.Locale())
	})

	t.Run("every fixed mission parses", func(t *testing.T) {
		for _, locale := range []string{"en-US", "pt-BR"} {
			catalog, err := LoadCatalog(locale)
			require.NoError(t, err)
			for _, text := range catalog.Fixed() {
				require.NotEqual(t, Unknown, Parse(text).Kind, "Mission %q should parse", text)
			}
		}
	})

	t.Run("rejects catalogs without the base locale", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/pt-BR.yaml": {Data: []byte(`locale: pt-BR
templates:
  eliminate: a {color}
  control: b
  reduce: c
  streak: d
  each_color: e
comparators:
  at_least: x
  at_most: x
  exactly: x
  more_than: x
  less_than: x
`)},
		}
		_, err := LoadCatalogFS(fsys, "pt-BR")
		require.Error(t, err)
	})

	t.Run("rejects incomplete catalogs", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/en-US.yaml": {Data: []byte("locale: en-US\n")},
		}
		_, err := LoadCatalogFS(fsys, "en-US")
		require.Error(t, err)
	})
}

func TestGenerate(t *testing.T) {
	catalog, err := LoadCatalog("pt-BR")
	require.NoError(t, err)

	missions := catalog.Generate([]string{"azul", "vermelha", "verde"}, "azul")

	require.Equal(t, "Eliminar todas as tropas da cor vermelha", missions[0])
	require.Equal(t, "Eliminar todas as tropas da cor verde", missions[1])
	require.Len(t, missions, 2+len(DefaultGoals)+3)
	require.Equal(t, "Ter pelo menos um território de cada cor", missions[len(missions)-1])
	require.Len(t, catalog.Generate([]string{"azul"}, "azul"), len(DefaultGoals)+2, "A single color board has nothing to hold")
	for _, text := range missions {
		require.NotEqual(t, Unknown, Parse(text).Kind, "Generated mission %q should parse", text)
	}

	control := Parse(catalog.Control(Goal{Count: 2, Comparator: AtMost, Threshold: 4}))
	require.Equal(t, Control, control.Kind)
	require.Equal(t, AtMost, control.Comparator)
	require.Equal(t, 4, control.Threshold)
}

func TestMissionsPicksListByBoard(t *testing.T) {
	catalog, err := LoadCatalog("en-US")
	require.NoError(t, err)

	require.Equal(t, catalog.Fixed(), catalog.Missions(game.NewMap(0), "blue"))

	generated := catalog.Missions(game.CreateMap(), "azul")
	require.Equal(t, "Eliminate all troops of color vermelha", generated[0])
}

func TestDemoMissionsNeedProgress(t *testing.T) {
	for _, locale := range []string{"en-US", "pt-BR"} {
		catalog, err := LoadCatalog(locale)
		require.NoError(t, err)
		demo := game.CreateMap()

		for _, text := range catalog.Missions(demo, "azul") {
			m := Parse(text).Assign(demo.Territories())
			require.NotEqual(t, Unknown, m.Kind, "Mission %q should parse", text)
			require.False(t, m.Evaluate(demo.Territories(), "azul", Progress{}), "Mission %q should not be won before any attack", text)
		}
	}
}
