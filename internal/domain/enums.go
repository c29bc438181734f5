package domain

// Granularity is the size of a single study unit.
type Granularity string

const (
	GranularityChapter Granularity = "chapter"
	GranularityVerse   Granularity = "verse"
	GranularityMishnah Granularity = "mishnah"
)

// ValidGranularities is the canonical set of accepted granularity strings.
var ValidGranularities = map[string]bool{
	"chapter": true, "verse": true, "mishnah": true,
}

// SelectionMode identifies how the study material is chosen.
type SelectionMode string

const (
	SelectAllTanach   SelectionMode = "tanach"
	SelectDivision    SelectionMode = "division"
	SelectBook        SelectionMode = "book"
	SelectChidon      SelectionMode = "chidon"
	SelectAllMishnah  SelectionMode = "mishnah"
	SelectSeder       SelectionMode = "seder"
	SelectTractates   SelectionMode = "tractates"
)

// Division names the three sections of Tanach.
type Division string

const (
	DivisionTorah   Division = "torah"
	DivisionNeviim  Division = "neviim"
	DivisionKetuvim Division = "ketuvim"
)

// ChidonDivision names the two Chidon competition divisions.
type ChidonDivision string

const (
	ChidonMiddleSchool ChidonDivision = "middle"
	ChidonHighSchool   ChidonDivision = "high"
)
