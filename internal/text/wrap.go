package text

import (
	"strings"
	"unicode"
)

// WrapMode specifies how text is wrapped when it exceeds the box width.
type WrapMode uint8

const (
	// WrapWordChar breaks at word boundaries first,
	// then falls back to character boundaries for long words.
	WrapWordChar WrapMode = iota

	// WrapNone disables wrapping; only newlines start a new line.
	WrapNone

	// WrapWord breaks at word boundaries only.
	// Long words that exceed the width will overflow.
	WrapWord

	// WrapChar breaks at character boundaries.
	// Any character can be a break point.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// breakClass is a simplified UAX #14 line breaking class.
type breakClass uint8

const (
	breakOther breakClass = iota
	breakSpace
	breakZero        // zero-width space
	breakOpen        // opening punctuation, no break after
	breakClose       // closing punctuation, no break before
	breakHyphen      // break after
	breakIdeographic // break before and after
)

func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '\u200b':
		return breakZero
	case '(', '[', '{', '“', '‘':
		return breakOpen
	case ')', ']', '}', '”', '’':
		return breakClose
	case '-', '‐', '‑', '–', '—':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// isCJKRune returns true if the rune is a CJK character that allows breaking.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// breakOpportunities returns, for each rune, whether a line may break
// before it. Index 0 is always false.
func breakOpportunities(runes []rune, mode WrapMode) []bool {
	breaks := make([]bool, len(runes))
	if mode == WrapNone || len(runes) < 2 {
		return breaks
	}

	classes := make([]breakClass, len(runes))
	for i, r := range runes {
		classes[i] = classifyRune(r)
	}
	for i := 1; i < len(runes); i++ {
		breaks[i] = canBreak(runes[i-1], runes[i], classes[i-1], classes[i], mode)
	}
	return breaks
}

func canBreak(prev, curr rune, prevClass, currClass breakClass, mode WrapMode) bool {
	// No break before closing or after opening punctuation.
	if currClass == breakClose || prevClass == breakOpen {
		return false
	}
	if prevClass == breakZero {
		return true
	}
	if mode == WrapChar {
		return true
	}

	// Word rules; WrapWordChar falls back to characters during line breaking.
	switch {
	case prevClass == breakSpace:
		return currClass != breakSpace
	case prevClass == breakHyphen && currClass != breakHyphen:
		return true
	case currClass == breakIdeographic:
		return true
	case prevClass == breakIdeographic:
		return true
	}

	// Punctuation like "/" or "&" splits words; sentence marks and hyphens stick.
	if (unicode.IsLetter(prev) || unicode.IsDigit(prev)) && unicode.IsPunct(curr) {
		return currClass != breakHyphen && !strings.ContainsRune(`'.,!?:;"`, curr)
	}
	return false
}
