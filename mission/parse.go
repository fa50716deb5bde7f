package mission

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type phrase struct {
	text       string
	comparator Comparator
}

// Phrases introducing a troop threshold. On overlap the longest match wins, so ">=" beats ">".
var comparatorPhrases = []phrase{
	{"at least", AtLeast}, {"pelo menos", AtLeast}, {"no minimo", AtLeast}, {">=", AtLeast}, {"≥", AtLeast},
	{"at most", AtMost}, {"no maximo", AtMost}, {"<=", AtMost}, {"≤", AtMost},
	{"more than", MoreThan}, {"mais de", MoreThan}, {">", MoreThan},
	{"fewer than", LessThan}, {"less than", LessThan}, {"menos de", LessThan}, {"<", LessThan},
	{"exactly", Exactly}, {"exatamente", Exactly}, {"=", Exactly},
}

var (
	eliminatePrefixes = []string{"eliminate all troops of color ", "eliminate all troops of the color ", "eliminar todas as tropas da cor "}
	controlPrefixes   = []string{"control ", "controlar "}
	reducePrefixes    = []string{"reduce enemy troops to ", "reduce the enemy troops to ", "reduzir as tropas inimigas a ", "reduzir as tropas inimigas para "}
	streakPrefixes    = []string{"conquer ", "conquistar "}
	streakSuffixes    = []string{"in a row", "seguidos", "seguidas"}
	eachColorPhrases  = []string{"hold at least one territory of each color", "ter pelo menos um territorio de cada cor"}
)

var numberWords = map[string]int{
	"one": 1, "um": 1, "uma": 1,
	"two": 2, "dois": 2, "duas": 2,
	"three": 3, "tres": 3,
	"four": 4, "quatro": 4,
	"five": 5, "cinco": 5,
	"six": 6, "seis": 6,
	"seven": 7, "sete": 7,
	"eight": 8, "oito": 8,
	"nine": 9, "nove": 9,
	"ten": 10, "dez": 10,
}

// Parse classifies a mission sentence. Sentences outside the known families
// come back as Unknown and are never satisfied.
func Parse(text string) Mission {
	m := Mission{Text: text}
	normalized := normalize(text)

	for _, p := range eachColorPhrases {
		if strings.TrimRight(normalized, " .!") == p {
			m.Kind = EachColor
			return m
		}
	}

	if rest, ok := cutPrefix(normalized, eliminatePrefixes); ok {
		color := strings.Trim(rest, " .!")
		if color != "" {
			m.Kind = Eliminate
			m.Color = color
		}
		return m
	}

	if rest, ok := cutPrefix(normalized, reducePrefixes); ok {
		cmp, after, found := findComparator(rest)
		if !found {
			return m
		}
		threshold, ok := firstNumber(after)
		if !ok {
			return m
		}
		m.Kind = Reduce
		m.Comparator = cmp
		m.Threshold = threshold
		return m
	}

	if rest, ok := cutPrefix(normalized, streakPrefixes); ok && hasSuffix(rest, streakSuffixes) {
		count, ok := leadingNumber(rest)
		if !ok {
			return m
		}
		m.Kind = Streak
		m.Count = count
		return m
	}

	if rest, ok := cutPrefix(normalized, controlPrefixes); ok {
		count, ok := leadingNumber(rest)
		if !ok {
			return m
		}
		cmp, after, found := findComparator(rest)
		if !found {
			return m
		}
		threshold, ok := firstNumber(after)
		if !ok {
			return m
		}
		m.Kind = Control
		m.Count = count
		m.Comparator = cmp
		m.Threshold = threshold
	}

	return m
}

// normalize lower-cases text and strips accents, so "Territórios" matches "territorios".
func normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		out = strings.ToLower(text)
	}
	return strings.Join(strings.Fields(out), " ")
}

func sameColor(a, b string) bool {
	return normalize(a) == normalize(b)
}

func cutPrefix(text string, prefixes []string) (string, bool) {
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(text, p); ok {
			return rest, true
		}
	}
	return "", false
}

func hasSuffix(text string, suffixes []string) bool {
	text = strings.TrimRight(text, " .!")
	for _, s := range suffixes {
		if strings.HasSuffix(text, s) {
			return true
		}
	}
	return false
}

// findComparator returns the comparator phrase appearing earliest in text and
// the text following it.
func findComparator(text string) (Comparator, string, bool) {
	best, bestAt, bestLen := Comparator(0), -1, 0
	for _, p := range comparatorPhrases {
		at := strings.Index(text, p.text)
		if at < 0 {
			continue
		}
		if bestAt < 0 || at < bestAt || (at == bestAt && len(p.text) > bestLen) {
			best, bestAt, bestLen = p.comparator, at, len(p.text)
		}
	}
	if bestAt < 0 {
		return 0, "", false
	}
	return best, text[bestAt+bestLen:], true
}

func firstNumber(text string) (int, bool) {
	for _, field := range strings.Fields(text) {
		if n, ok := parseNumber(field); ok {
			return n, true
		}
	}
	return 0, false
}

func leadingNumber(text string) (int, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, false
	}
	return parseNumber(fields[0])
}

// parseNumber accepts digits or a spelled-out number up to ten.
func parseNumber(field string) (int, bool) {
	field = strings.Trim(field, ".,!")
	if n, err := strconv.Atoi(field); err == nil && n >= 0 {
		return n, true
	}
	n, ok := numberWords[field]
	return n, ok
}
