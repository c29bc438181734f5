package corpus

// DefaultVerseCount is used when no per-chapter verse count is known for a
// book. It is a heuristic, not authoritative: schedules at verse granularity
// for books outside the Torah are approximate.
const DefaultVerseCount = 25

// torahVerseCounts holds the verse count of each chapter for the five books
// of the Torah, indexed by chapter-1.
var torahVerseCounts = map[string][]int{
	"Genesis": {31, 25, 24, 26, 32, 22, 24, 22, 29, 32, 32, 20, 18, 24, 21, 16, 27, 33, 38, 18, 34, 24, 20, 67, 34, 35, 46, 22, 35, 43, 55, 32, 20, 31, 29, 43, 36, 30, 23, 23, 57, 38, 34, 34, 28, 34, 31, 22, 33, 26},
	"Exodus":  {22, 25, 22, 31, 23, 30, 25, 32, 35, 29, 10, 51, 22, 31, 27, 36, 16, 27, 25, 26, 36, 31, 33, 18, 40, 37, 21, 43, 46, 38, 18, 35, 23, 35, 35, 38, 29, 31, 43, 38},
	"Leviticus": {17, 16, 17, 35, 19, 30, 38, 36, 24, 20, 47, 8, 59, 56, 33, 34, 16, 30, 37, 27, 24, 33, 44, 23, 55, 46, 34},
	"Numbers": {54, 34, 51, 49, 31, 27, 89, 26, 23, 36, 35, 16, 33, 45, 41, 50, 13, 32, 22, 29, 35, 41, 30, 25, 18, 65, 23, 31, 40, 16, 54, 42, 56, 29, 34, 13},
	"Deuteronomy": {46, 37, 29, 49, 33, 25, 26, 20, 29, 22, 32, 32, 18, 29, 23, 22, 20, 22, 21, 20, 23, 30, 25, 22, 19, 19, 26, 68, 29, 20, 30, 52, 29, 12},
}

// VerseCount returns the number of verses in the given chapter of a book.
// The second return value reports whether the count is authoritative; when
// false the DefaultVerseCount heuristic was used.
func VerseCount(book string, chapter int) (int, bool) {
	counts, ok := torahVerseCounts[book]
	if !ok || chapter < 1 || chapter > len(counts) {
		return DefaultVerseCount, false
	}
	return counts[chapter-1], true
}
