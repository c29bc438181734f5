package corpus

// Tractate is one tractate of Mishnah.
type Tractate struct {
	Name       string
	HebrewName string
	Chapters   int
}

// Seder is one of the six orders of the Mishnah, holding its tractates in
// canonical order.
type Seder struct {
	Name      string
	Tractates []Tractate
}

// sedarim lists the six orders in canonical order.
var sedarim = []Seder{
	{Name: "zeraim", Tractates: []Tractate{
		{"Berachot", "ברכות", 9},
		{"Peah", "פאה", 8},
		{"Damai", "דמאי", 7},
		{"Kilayim", "כלאים", 9},
		{"Sheviit", "שביעית", 10},
		{"Terumot", "תרומות", 11},
		{"Maasrot", "מעשרות", 5},
		{"Maaser Sheni", "מעשר שני", 5},
		{"Challah", "חלה", 4},
		{"Orlah", "ערלה", 3},
		{"Bikkurim", "ביכורים", 4},
	}},
	{Name: "moed", Tractates: []Tractate{
		{"Shabbat", "שבת", 24},
		{"Eruvin", "עירובין", 10},
		{"Pesachim", "פסחים", 10},
		{"Shekalim", "שקלים", 8},
		{"Yoma", "יומא", 8},
		{"Sukkah", "סוכה", 5},
		{"Beitzah", "ביצה", 5},
		{"Rosh Hashanah", "ראש השנה", 4},
		{"Taanit", "תענית", 4},
		{"Megillah", "מגילה", 4},
		{"Moed Katan", "מועד קטן", 3},
		{"Chagigah", "חגיגה", 3},
	}},
	{Name: "nashim", Tractates: []Tractate{
		{"Yevamot", "יבמות", 16},
		{"Ketubot", "כתובות", 13},
		{"Nedarim", "נדרים", 11},
		{"Nazir", "נזיר", 9},
		{"Sotah", "סוטה", 9},
		{"Gittin", "גיטין", 9},
		{"Kiddushin", "קידושין", 4},
	}},
	{Name: "nezikin", Tractates: []Tractate{
		{"Bava Kamma", "בבא קמא", 10},
		{"Bava Metzia", "בבא מציעא", 10},
		{"Bava Batra", "בבא בתרא", 10},
		{"Sanhedrin", "סנהדרין", 11},
		{"Makkot", "מכות", 3},
		{"Shevuot", "שבועות", 8},
		{"Eduyot", "עדויות", 8},
		{"Avodah Zarah", "עבודה זרה", 5},
		{"Avot", "אבות", 6},
		{"Horayot", "הוריות", 3},
	}},
	{Name: "kodashim", Tractates: []Tractate{
		{"Zevachim", "זבחים", 14},
		{"Menachot", "מנחות", 13},
		{"Chullin", "חולין", 12},
		{"Bekhorot", "בכורות", 9},
		{"Arakhin", "ערכין", 9},
		{"Temurah", "תמורה", 7},
		{"Keritot", "כריתות", 6},
		{"Meilah", "מעילה", 6},
		{"Tamid", "תמיד", 7},
		{"Middot", "מידות", 5},
		{"Kinnim", "קינים", 3},
	}},
	{Name: "taharot", Tractates: []Tractate{
		{"Kelim", "כלים", 30},
		{"Oholot", "אהלות", 18},
		{"Negaim", "נגעים", 14},
		{"Parah", "פרה", 12},
		{"Tahorot", "טהרות", 10},
		{"Mikvaot", "מקוואות", 10},
		{"Niddah", "נידה", 10},
		{"Makhshirin", "מכשירין", 6},
		{"Zavim", "זבים", 5},
		{"Tevul Yom", "טבול יום", 4},
		{"Yadayim", "ידיים", 4},
		{"Uktzin", "עוקצין", 3},
	}},
}

// SederNames returns the names of the six orders in canonical order.
func SederNames() []string {
	names := make([]string, len(sedarim))
	for i, s := range sedarim {
		names[i] = s.Name
	}
	return names
}

// FindSeder looks up an order by name.
func FindSeder(name string) (Seder, bool) {
	for _, s := range sedarim {
		if s.Name == name {
			return s, true
		}
	}
	return Seder{}, false
}

// AllTractates returns every tractate of the Mishnah in canonical order.
func AllTractates() []Tractate {
	var ts []Tractate
	for _, s := range sedarim {
		ts = append(ts, s.Tractates...)
	}
	return ts
}

// FindTractate looks up a tractate by name within one order.
func FindTractate(seder Seder, name string) (Tractate, bool) {
	for _, t := range seder.Tractates {
		if t.Name == name {
			return t, true
		}
	}
	return Tractate{}, false
}
