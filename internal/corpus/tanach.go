package corpus

import "github.com/shayacohen/limud/internal/domain"

// Book is one book of Tanach.
type Book struct {
	Name       string
	HebrewName string
	Chapters   int
}

var torahBooks = []Book{
	{"Genesis", "בראשית", 50},
	{"Exodus", "שמות", 40},
	{"Leviticus", "ויקרא", 27},
	{"Numbers", "במדבר", 36},
	{"Deuteronomy", "דברים", 34},
}

var neviimBooks = []Book{
	{"Joshua", "יהושע", 24},
	{"Judges", "שופטים", 21},
	{"I Samuel", "שמואל א", 31},
	{"II Samuel", "שמואל ב", 24},
	{"I Kings", "מלכים א", 22},
	{"II Kings", "מלכים ב", 25},
	{"Isaiah", "ישעיה", 66},
	{"Jeremiah", "ירמיה", 52},
	{"Ezekiel", "יחזקאל", 48},
	{"Hosea", "הושע", 14},
	{"Joel", "יואל", 4},
	{"Amos", "עמוס", 9},
	{"Obadiah", "עובדיה", 1},
	{"Jonah", "יונה", 4},
	{"Micah", "מיכה", 7},
	{"Nahum", "נחום", 3},
	{"Habakkuk", "חבקוק", 3},
	{"Zephaniah", "צפניה", 3},
	{"Haggai", "חגי", 2},
	{"Zechariah", "זכריה", 14},
	{"Malachi", "מלאכי", 3},
}

var ketuvimBooks = []Book{
	{"Psalms", "תהלים", 150},
	{"Proverbs", "משלי", 31},
	{"Job", "איוב", 42},
	{"Song of Songs", "שיר השירים", 8},
	{"Ruth", "רות", 4},
	{"Lamentations", "איכה", 5},
	{"Ecclesiastes", "קהלת", 12},
	{"Esther", "אסתר", 10},
	{"Daniel", "דניאל", 12},
	{"Ezra", "עזרא", 10},
	{"Nehemiah", "נחמיה", 13},
	{"I Chronicles", "דברי הימים א", 29},
	{"II Chronicles", "דברי הימים ב", 36},
}

// DivisionBooks returns the books of one Tanach division in canonical order.
func DivisionBooks(d domain.Division) []Book {
	switch d {
	case domain.DivisionTorah:
		return torahBooks
	case domain.DivisionNeviim:
		return neviimBooks
	case domain.DivisionKetuvim:
		return ketuvimBooks
	}
	return nil
}

// AllTanachBooks returns every book of Tanach in canonical order:
// Torah, then Nevi'im, then Ketuvim.
func AllTanachBooks() []Book {
	books := make([]Book, 0, len(torahBooks)+len(neviimBooks)+len(ketuvimBooks))
	books = append(books, torahBooks...)
	books = append(books, neviimBooks...)
	books = append(books, ketuvimBooks...)
	return books
}

// FindBook looks up a Tanach book by its English name.
func FindBook(name string) (Book, bool) {
	for _, b := range AllTanachBooks() {
		if b.Name == name {
			return b, true
		}
	}
	return Book{}, false
}
