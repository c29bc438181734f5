package domain

// StudyUnit is an opaque reference to one indivisible piece of material,
// e.g. "Genesis 3", "Genesis 3:7", or "Shabbat 2:4". Units are generated in
// corpus-canonical order and never modified afterwards.
type StudyUnit string

func (u StudyUnit) String() string { return string(u) }
