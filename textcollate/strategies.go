// Package textcollate provides comparator strategies for text: case-insensitive,
// locale-aware (CLDR) and natural ("file2" before "file10") ordering, plus a
// configuration layer that builds one of them from YAML or the environment.
package textcollate

import (
	"strings"
	"sync"

	"facette.io/natsort"
	"github.com/amp-labs/amp-collate/compare"
	"golang.org/x/text/cases"
	xcollate "golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Binary orders strings by their bytes, which for UTF-8 is code point order.
func Binary() compare.Comparator[string] { //nolint:ireturn
	return compare.FromCmp(strings.Compare)
}

// caseFolder hands out Unicode case folders. A cases.Caser keeps state
// between calls and must not be shared by goroutines.
var caseFolder = sync.Pool{ //nolint:gochecknoglobals
	New: func() any {
		return cases.Fold()
	},
}

func fold(s string) string {
	caser := caseFolder.Get().(cases.Caser) //nolint:forcetypeassert
	defer caseFolder.Put(caser)

	return caser.String(s)
}

// CaseInsensitive orders strings by their Unicode case folding, so "Straße",
// "STRASSE" and "strasse" are all Equal. Folded strings compare by code point.
func CaseInsensitive() compare.Comparator[string] { //nolint:ireturn
	return compare.Func[string](func(a, b string) compare.Ordering {
		return compare.FromInt(strings.Compare(fold(a), fold(b)))
	})
}

// maxParsedDigits is the longest digit run natsort can always parse into an int.
const maxParsedDigits = 18

// Natural orders strings the way people expect numbered names to sort: runs of
// digits compare by value, so "img2.png" sorts before "img10.png". Strings the
// natural order cannot tell apart ("01" and "1") fall back to byte order, keeping
// the order total.
func Natural() compare.Comparator[string] { //nolint:ireturn
	return compare.Func[string](func(a, b string) compare.Ordering {
		if a == b {
			return compare.Equal
		}

		var o compare.Ordering

		if longestDigitRun(a) > maxParsedDigits || longestDigitRun(b) > maxParsedDigits {
			// natsort falls back to string order for runs that overflow an int.
			o = compareChunks(a, b)
		} else {
			o = natsortOrder(a, b)
		}

		if o != compare.Equal {
			return o
		}

		return compare.FromInt(strings.Compare(a, b))
	})
}

// natsortOrder trusts only a one-sided answer: natsort.Compare reports true
// for both orders of strings it considers equivalent.
func natsortOrder(a, b string) compare.Ordering {
	ab, ba := natsort.Compare(a, b), natsort.Compare(b, a)

	switch {
	case ab && !ba:
		return compare.Less
	case ba && !ab:
		return compare.Greater
	default:
		return compare.Equal
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func longestDigitRun(s string) int {
	longest, run := 0, 0

	for i := range len(s) {
		if isDigit(s[i]) {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	return longest
}

// nextChunk splits off the leading run of digits or of non-digits.
func nextChunk(s string) (string, string) {
	digits := isDigit(s[0])

	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}

	return s[:i], s[i:]
}

// compareChunks is the chunk order natsort implements, with digit runs compared
// by magnitude at any length.
func compareChunks(a, b string) compare.Ordering {
	for a != "" && b != "" {
		var ca, cb string

		ca, a = nextChunk(a)
		cb, b = nextChunk(b)

		if o := compareChunk(ca, cb); o != compare.Equal {
			return o
		}
	}

	switch {
	case a == "" && b == "":
		return compare.Equal
	case a == "":
		return compare.Less
	default:
		return compare.Greater
	}
}

func compareChunk(a, b string) compare.Ordering {
	if !isDigit(a[0]) || !isDigit(b[0]) {
		return compare.FromInt(strings.Compare(a, b))
	}

	a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return compare.FromInt(len(a) - len(b))
	}

	return compare.FromInt(strings.Compare(a, b))
}

type localeComparator struct {
	tag       language.Tag
	collators *sync.Pool
}

func (l *localeComparator) Compare(a, b string) compare.Ordering {
	c := l.collators.Get().(*xcollate.Collator) //nolint:forcetypeassert
	defer l.collators.Put(c)

	return compare.FromInt(c.CompareString(a, b))
}

// Locale orders strings with the CLDR collation rules of the given language,
// e.g. German sorts "ä" with "a" while Swedish sorts it after "z". Options such as
// collate.IgnoreCase, collate.IgnoreDiacritics and collate.Numeric from
// golang.org/x/text/collate refine the rules.
//
// The returned comparator is safe for concurrent use.
func Locale(tag language.Tag, opts ...xcollate.Option) compare.Comparator[string] { //nolint:ireturn
	return &localeComparator{
		tag: tag,
		collators: &sync.Pool{
			New: func() any {
				return xcollate.New(tag, opts...)
			},
		},
	}
}

func (l *localeComparator) String() string {
	return "locale(" + l.tag.String() + ")"
}
