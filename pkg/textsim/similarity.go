package textsim

import (
	"strings"
	"unicode"
)

// TokenSet is a set of string tokens.
type TokenSet map[string]struct{}

// TokenizeFunc turns text into a token set.
type TokenizeFunc func(text string) TokenSet

// Engine computes Jaccard similarity over the token sets produced by
// its tokenizer. The zero cost of construction makes it safe to share
// one engine across concurrent queries; it holds no state.
type Engine struct {
	tokenize TokenizeFunc
}

// New returns an engine with the default mixed-script tokenizer.
func New() *Engine {
	return &Engine{tokenize: Tokenize}
}

// NewWithTokenizer returns an engine using a custom tokenizer.
func NewWithTokenizer(fn TokenizeFunc) *Engine {
	return &Engine{tokenize: fn}
}

// Similarity returns |A∩B| / |A∪B| over the two texts' token sets.
// It is symmetric, returns 1 for two texts that tokenize identically,
// and returns 0 when either token set is empty. An empty token set is
// a defined outcome, not an error.
func (e *Engine) Similarity(a, b string) float64 {
	ta := e.tokenize(a)
	tb := e.tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			intersection++
		}
	}
	union := len(ta) + len(tb) - intersection
	return float64(intersection) / float64(union)
}

// unbounded reports whether r belongs to a script that carries no
// whitespace word delimiters, so word-based tokenization cannot work.
func unbounded(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Thai, r) ||
		unicode.Is(unicode.Lao, r) ||
		unicode.Is(unicode.Khmer, r) ||
		unicode.Is(unicode.Myanmar, r)
}

// Tokenize is the default mixed-script tokenizer. Latin-script and
// digit runs become single case-folded tokens split on everything
// non-alphanumeric; runs of boundary-less script characters become
// overlapping two-character windows (a run of length one becomes a
// single-character token). Punctuation and whitespace only separate
// runs and never appear in tokens.
func Tokenize(text string) TokenSet {
	tokens := make(TokenSet)

	var word []rune // current bounded-script run
	var run []rune  // current boundary-less run

	flushWord := func() {
		if len(word) > 0 {
			tokens[string(word)] = struct{}{}
			word = word[:0]
		}
	}
	flushRun := func() {
		switch {
		case len(run) == 1:
			tokens[string(run)] = struct{}{}
		case len(run) > 1:
			for i := 0; i+1 < len(run); i++ {
				tokens[string(run[i:i+2])] = struct{}{}
			}
		}
		run = run[:0]
	}

	for _, r := range text {
		r = unicode.ToLower(r)
		switch {
		case unbounded(r):
			flushWord()
			run = append(run, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushRun()
			word = append(word, r)
		default:
			flushWord()
			flushRun()
		}
	}
	flushWord()
	flushRun()

	return tokens
}

// WhitespaceTokenize splits case-folded text on whitespace only. It
// exists to make the mixed-script contract testable: on boundary-less
// scripts it systematically under-matches and is not used by the
// default engine.
func WhitespaceTokenize(text string) TokenSet {
	tokens := make(TokenSet)
	for _, f := range strings.Fields(strings.ToLower(text)) {
		tokens[f] = struct{}{}
	}
	return tokens
}
