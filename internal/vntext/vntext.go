// Package vntext holds the pure text rules of the quiz: answer
// normalization, character-level diffs and hint rendering. No storage or
// HTTP dependencies so the comparison semantics can be tested in isolation.
package vntext

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a string for answer comparison: surrounding
// whitespace is trimmed, the string is lowercased and recomposed to NFC so
// that visually identical Vietnamese strings with different code-point
// decompositions compare equal. Diacritics and tone marks are kept:
// "ma" and "má" stay distinct.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return norm.NFC.String(s)
}

// Diff compares two already-normalized strings rune by rune and returns a
// human-readable list of deviations, e.g. "'a'->'á', missing 'i'". The
// result is empty when the strings are equal.
func Diff(expected, actual string) string {
	expRunes := []rune(expected)
	actRunes := []rune(actual)

	maxLen := len(expRunes)
	if len(actRunes) > maxLen {
		maxLen = len(actRunes)
	}

	var parts []string
	for i := 0; i < maxLen; i++ {
		var exp, act rune
		hasExp := i < len(expRunes)
		hasAct := i < len(actRunes)
		if hasExp {
			exp = expRunes[i]
		}
		if hasAct {
			act = actRunes[i]
		}

		switch {
		case hasExp && hasAct && exp != act:
			parts = append(parts, fmt.Sprintf("'%c'->'%c'", act, exp))
		case hasExp && !hasAct:
			parts = append(parts, fmt.Sprintf("missing '%c'", exp))
		case !hasExp && hasAct:
			parts = append(parts, fmt.Sprintf("extra '%c'", act))
		}
	}

	return strings.Join(parts, ", ")
}

// Hint levels.
const (
	HintLevelBlanks    = 1 // every word masked by underscores
	HintLevelInitials  = 2 // first letter of each word revealed
	HintLevelFull      = 3 // the whole answer
	HintLevelMin       = HintLevelBlanks
	HintLevelMax       = HintLevelFull
)

// Hint renders a progressive hint for the given answer. Level 1 masks each
// whitespace-delimited word with underscores ("ngày mai" -> "____ ___"),
// level 2 reveals each word's first rune ("n___ m__"), level 3 returns the
// answer verbatim. Callers must validate the level beforehand.
func Hint(answer string, level int) string {
	if level >= HintLevelFull {
		return answer
	}

	words := strings.Fields(answer)
	masked := make([]string, 0, len(words))
	for _, word := range words {
		runes := []rune(word)
		if level == HintLevelInitials {
			masked = append(masked, string(runes[0])+strings.Repeat("_", len(runes)-1))
		} else {
			masked = append(masked, strings.Repeat("_", len(runes)))
		}
	}
	return strings.Join(masked, " ")
}
