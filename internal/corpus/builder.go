package corpus

import (
	"errors"
	"fmt"

	"github.com/shayacohen/limud/internal/domain"
)

// ErrInvalidSelection indicates a selection resolved to zero study units.
var ErrInvalidSelection = errors.New("selection resolves to no study units")

// Selection describes what material to study and at which granularity.
type Selection struct {
	Mode        domain.SelectionMode
	Granularity domain.Granularity

	// Mode-specific fields.
	Division       domain.Division       // SelectDivision
	Book           string                // SelectBook
	ChidonDivision domain.ChidonDivision // SelectChidon
	ChidonParts    []string              // SelectChidon; empty = all parts
	Seder          string                // SelectSeder, SelectTractates
	Tractates      []string              // SelectTractates

	// VerseFallback overrides DefaultVerseCount for chapters without an
	// authoritative verse count. Zero means DefaultVerseCount.
	VerseFallback int
}

// Build resolves a selection into a flat, ordered list of study units.
// The order is corpus-canonical: grouping order, then work order within the
// group, then chapter ascending, then sub-unit ascending. A selection that
// resolves to nothing returns ErrInvalidSelection, never an empty corpus.
func Build(sel Selection) ([]domain.StudyUnit, error) {
	if !domain.ValidGranularities[string(sel.Granularity)] {
		return nil, fmt.Errorf("%w: unknown granularity %q", ErrInvalidSelection, sel.Granularity)
	}

	var units []domain.StudyUnit
	switch sel.Mode {
	case domain.SelectAllTanach:
		units = tanachUnits(AllTanachBooks(), sel.Granularity, sel.verseFallback())
	case domain.SelectDivision:
		books := DivisionBooks(sel.Division)
		if books == nil {
			return nil, fmt.Errorf("%w: unknown division %q", ErrInvalidSelection, sel.Division)
		}
		units = tanachUnits(books, sel.Granularity, sel.verseFallback())
	case domain.SelectBook:
		book, ok := FindBook(sel.Book)
		if !ok {
			return nil, fmt.Errorf("%w: unknown book %q", ErrInvalidSelection, sel.Book)
		}
		units = tanachUnits([]Book{book}, sel.Granularity, sel.verseFallback())
	case domain.SelectChidon:
		books := chidonBooksFor(sel.ChidonDivision, sel.ChidonParts)
		if len(books) == 0 {
			return nil, fmt.Errorf("%w: no chidon parts matched for division %q", ErrInvalidSelection, sel.ChidonDivision)
		}
		units = chidonUnits(books, sel.Granularity, sel.verseFallback())
	case domain.SelectAllMishnah:
		units = mishnahUnits(AllTractates(), sel.Granularity)
	case domain.SelectSeder:
		seder, ok := FindSeder(sel.Seder)
		if !ok {
			return nil, fmt.Errorf("%w: unknown seder %q", ErrInvalidSelection, sel.Seder)
		}
		units = mishnahUnits(seder.Tractates, sel.Granularity)
	case domain.SelectTractates:
		seder, ok := FindSeder(sel.Seder)
		if !ok {
			return nil, fmt.Errorf("%w: unknown seder %q", ErrInvalidSelection, sel.Seder)
		}
		var ts []Tractate
		for _, name := range sel.Tractates {
			t, ok := FindTractate(seder, name)
			if !ok {
				return nil, fmt.Errorf("%w: tractate %q not in seder %q", ErrInvalidSelection, name, sel.Seder)
			}
			ts = append(ts, t)
		}
		units = mishnahUnits(ts, sel.Granularity)
	default:
		return nil, fmt.Errorf("%w: unknown selection mode %q", ErrInvalidSelection, sel.Mode)
	}

	if len(units) == 0 {
		return nil, ErrInvalidSelection
	}
	return units, nil
}

func (sel Selection) verseFallback() int {
	if sel.VerseFallback > 0 {
		return sel.VerseFallback
	}
	return DefaultVerseCount
}

func tanachUnits(books []Book, g domain.Granularity, fallback int) []domain.StudyUnit {
	var units []domain.StudyUnit
	for _, b := range books {
		for ch := 1; ch <= b.Chapters; ch++ {
			units = append(units, chapterUnits(b.Name, ch, g, fallback)...)
		}
	}
	return units
}

func chidonUnits(books []ChidonBook, g domain.Granularity, fallback int) []domain.StudyUnit {
	var units []domain.StudyUnit
	for _, b := range books {
		if len(b.ChapterList) > 0 {
			for _, ch := range b.ChapterList {
				units = append(units, chapterUnits(b.Name, ch, g, fallback)...)
			}
			continue
		}
		for ch := 1; ch <= b.Chapters; ch++ {
			units = append(units, chapterUnits(b.Name, ch, g, fallback)...)
		}
	}
	return units
}

// chapterUnits expands one Tanach chapter to its units. Mishnah granularity
// never applies to Tanach books, so anything other than verse granularity
// yields the chapter itself.
func chapterUnits(book string, chapter int, g domain.Granularity, fallback int) []domain.StudyUnit {
	if g != domain.GranularityVerse {
		return []domain.StudyUnit{domain.StudyUnit(fmt.Sprintf("%s %d", book, chapter))}
	}
	count, authoritative := VerseCount(book, chapter)
	if !authoritative {
		count = fallback
	}
	units := make([]domain.StudyUnit, 0, count)
	for v := 1; v <= count; v++ {
		units = append(units, domain.StudyUnit(fmt.Sprintf("%s %d:%d", book, chapter, v)))
	}
	return units
}

func mishnahUnits(tractates []Tractate, g domain.Granularity) []domain.StudyUnit {
	var units []domain.StudyUnit
	for _, t := range tractates {
		for ch := 1; ch <= t.Chapters; ch++ {
			if g != domain.GranularityMishnah {
				units = append(units, domain.StudyUnit(fmt.Sprintf("%s %d", t.Name, ch)))
				continue
			}
			count, _ := MishnahCount(t.Name, ch)
			for m := 1; m <= count; m++ {
				units = append(units, domain.StudyUnit(fmt.Sprintf("%s %d:%d", t.Name, ch, m)))
			}
		}
	}
	return units
}
