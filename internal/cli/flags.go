package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shayacohen/limud/internal/corpus"
	"github.com/shayacohen/limud/internal/domain"
	"github.com/spf13/pflag"
)

// weekdaysValue adapts domain.WeekdaySet to the pflag.Value interface so
// commands can accept "--weekdays sun,tue,thu" directly.
type weekdaysValue struct {
	set *domain.WeekdaySet
}

func (v *weekdaysValue) String() string {
	if v.set == nil || *v.set == nil {
		return ""
	}
	return v.set.String()
}

func (v *weekdaysValue) Set(s string) error {
	parsed, err := domain.ParseWeekdaySet(s)
	if err != nil {
		return err
	}
	*v.set = parsed
	return nil
}

func (v *weekdaysValue) Type() string {
	return "weekdays"
}

// weekdaysFlag registers a weekday-set flag. The default covers every day
// of the week; users narrow it with names ("sun,tue,thu") or indices.
func weekdaysFlag(fs *pflag.FlagSet, target *domain.WeekdaySet) {
	*target = domain.NewWeekdaySet(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday)
	fs.Var(&weekdaysValue{set: target}, "weekdays", "Study days, comma-separated (e.g. sun,tue,thu or 0,2,4)")
}

// selectionFlags collects the corpus-selection flags shared by generate,
// child, and the wizard.
type selectionFlags struct {
	granularity    string
	division       string
	book           string
	chidonDivision string
	parts          []string
	seder          string
	tractates      []string
	verseFallback  int
}

func (f *selectionFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.granularity, "granularity", "", "Unit size: chapter, verse, or mishnah (default depends on corpus)")
	fs.StringVar(&f.division, "division", "", "Tanach division: torah, neviim, or ketuvim")
	fs.StringVar(&f.book, "book", "", "Single Tanach book (e.g. \"Ruth\")")
	fs.StringVar(&f.chidonDivision, "chidon", "", "Chidon curriculum: middle or high")
	fs.StringArrayVar(&f.parts, "part", nil, "Chidon part name, repeatable (default all parts)")
	fs.StringVar(&f.seder, "seder", "", "Mishnah seder (e.g. \"Moed\")")
	fs.StringArrayVar(&f.tractates, "tractate", nil, "Mishnah tractate, repeatable (requires --seder)")
	fs.IntVar(&f.verseFallback, "verse-fallback", 0, "Verses assumed per chapter when no count is known (default 25)")
}

// selection derives a corpus.Selection from whichever flags were set.
// Exactly one selector flag group may be used; the catch-all modes come
// from the positional CORPUS argument ("tanach" or "mishnah").
func (f *selectionFlags) selection(corpusArg string) (corpus.Selection, error) {
	sel := corpus.Selection{}

	switch {
	case f.book != "":
		sel.Mode = domain.SelectBook
		sel.Book = f.book
	case f.division != "":
		sel.Mode = domain.SelectDivision
		sel.Division = domain.Division(strings.ToLower(f.division))
	case f.chidonDivision != "":
		sel.Mode = domain.SelectChidon
		sel.ChidonDivision = domain.ChidonDivision(strings.ToLower(f.chidonDivision))
		sel.ChidonParts = f.parts
	case len(f.tractates) > 0:
		sel.Mode = domain.SelectTractates
		sel.Seder = f.seder
		sel.Tractates = f.tractates
	case f.seder != "":
		sel.Mode = domain.SelectSeder
		sel.Seder = f.seder
	default:
		switch strings.ToLower(corpusArg) {
		case "tanach":
			sel.Mode = domain.SelectAllTanach
		case "mishnah":
			sel.Mode = domain.SelectAllMishnah
		case "":
			return corpus.Selection{}, fmt.Errorf("no corpus selected: pass tanach, mishnah, or a selector flag")
		default:
			return corpus.Selection{}, fmt.Errorf("unknown corpus %q (expected tanach or mishnah)", corpusArg)
		}
	}

	sel.Granularity = domain.Granularity(strings.ToLower(f.granularity))
	if sel.Granularity == "" {
		sel.Granularity = defaultGranularity(sel.Mode)
	}
	sel.VerseFallback = f.verseFallback

	return sel, nil
}

func defaultGranularity(mode domain.SelectionMode) domain.Granularity {
	switch mode {
	case domain.SelectAllMishnah, domain.SelectSeder, domain.SelectTractates:
		return domain.GranularityMishnah
	default:
		return domain.GranularityChapter
	}
}
