package rates

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// pair is one extracted buy/sell observation. A labelled pair comes from a
// strategy that knows which number is which; positional pairs get ordered by
// magnitude afterwards.
type pair struct {
	buy      float64
	sell     float64
	labelled bool
}

// strategy is a pure text -> optional pair extractor. The cascade tries
// strategies in order and the first match wins.
type strategy func(text string) (pair, bool)

var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	nbspRe   = regexp.MustCompile(`(?i)&nbsp;`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// normalize flattens the raw rate document into a single line of plain text:
// script and style blocks go first, then the remaining markup, then runs of
// whitespace.
func normalize(doc string) string {
	text := nbspRe.ReplaceAllString(doc, " ")
	text = scriptRe.ReplaceAllString(text, " ")
	text = styleRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// numPattern matches a rate figure with an optional comma or dot fraction.
const numPattern = `(\d{1,4}(?:[.,]\d{1,4})?)`

// Buy/sell labels as the source renders them in Russian, Kazakh and English.
const (
	buyLabels  = `(?:покупка|сатып алу|buy)`
	sellLabels = `(?:продажа|сату|sell)`
)

// newStrategies builds the extraction cascade for one currency anchor.
// Labelled variants run first because an explicit label beats the magnitude
// heuristic. Of the positional variants, anchor-before runs first: the
// gadget lists one "CUR buy sell" row per currency, and on such a document
// the between pattern would read the previous row's sell figure as its left
// operand. The between and after patterns additionally require a non-numeric
// character before their first figure so they cannot start inside a longer
// numeric run.
func newStrategies(anchor string) []strategy {
	a := regexp.QuoteMeta(anchor)

	labelledBuyFirst := regexp.MustCompile(
		`(?i)` + a + `\D{0,40}?` + buyLabels + `\s*:?\s*` + numPattern + `.{0,60}?` + sellLabels + `\s*:?\s*` + numPattern)
	labelledSellFirst := regexp.MustCompile(
		`(?i)` + a + `\D{0,40}?` + sellLabels + `\s*:?\s*` + numPattern + `.{0,60}?` + buyLabels + `\s*:?\s*` + numPattern)
	anchorBefore := regexp.MustCompile(`(?i)` + a + `\s*` + numPattern + `\s+` + numPattern)
	anchorBetween := regexp.MustCompile(`(?i)(?:^|[^\d.,])` + numPattern + `\s*` + a + `\s*` + numPattern)
	anchorAfter := regexp.MustCompile(`(?i)(?:^|[^\d.,])` + numPattern + `\s+` + numPattern + `\s*` + a)

	labelled := func(re *regexp.Regexp, sellFirst bool) strategy {
		return func(text string) (pair, bool) {
			m := re.FindStringSubmatch(text)
			if m == nil {
				return pair{}, false
			}
			first, ok1 := toNum(m[1])
			second, ok2 := toNum(m[2])
			if !ok1 || !ok2 {
				return pair{}, false
			}
			if sellFirst {
				return pair{buy: second, sell: first, labelled: true}, true
			}
			return pair{buy: first, sell: second, labelled: true}, true
		}
	}
	positional := func(re *regexp.Regexp) strategy {
		return func(text string) (pair, bool) {
			m := re.FindStringSubmatch(text)
			if m == nil {
				return pair{}, false
			}
			first, ok1 := toNum(m[1])
			second, ok2 := toNum(m[2])
			if !ok1 || !ok2 {
				return pair{}, false
			}
			return pair{buy: first, sell: second}, true
		}
	}

	return []strategy{
		labelled(labelledBuyFirst, false),
		labelled(labelledSellFirst, true),
		positional(anchorBefore),
		positional(anchorBetween),
		positional(anchorAfter),
	}
}

// extract runs the cascade against already-normalized text.
func extract(text string, strategies []strategy) (pair, bool) {
	for _, s := range strategies {
		if p, ok := s(text); ok {
			return p, true
		}
	}
	return pair{}, false
}

// toNum parses a matched rate figure, treating a comma as the decimal
// separator.
func toNum(s string) (float64, bool) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
