package corpus

import "github.com/shayacohen/limud/internal/domain"

// ChidonBook is one book of a Chidon curriculum part. Either the whole book
// is studied (Chapters > 0, ChapterList nil) or only the listed chapters, in
// the declared order.
type ChidonBook struct {
	Name        string
	Chapters    int
	ChapterList []int
}

// ChidonPart is one numbered part of a Chidon division's curriculum.
type ChidonPart struct {
	ID    string
	Name  string
	Books []ChidonBook
}

// jeremiahChapters is the Chidon selection from Jeremiah: 1-2 and 18-36.
var jeremiahChapters = func() []int {
	chs := []int{1, 2}
	for c := 18; c <= 36; c++ {
		chs = append(chs, c)
	}
	return chs
}()

var chidonMiddleSchool = []ChidonPart{
	{ID: "ms-part1", Name: "Part 1: Deuteronomy", Books: []ChidonBook{
		{Name: "Deuteronomy", Chapters: 34},
	}},
	{ID: "ms-part2", Name: "Part 2: I Samuel", Books: []ChidonBook{
		{Name: "I Samuel", Chapters: 31},
	}},
	{ID: "ms-part3", Name: "Part 3: Ruth", Books: []ChidonBook{
		{Name: "Ruth", Chapters: 4},
	}},
	{ID: "ms-part4", Name: "Part 4: I Chronicles (Selected)", Books: []ChidonBook{
		{Name: "I Chronicles", ChapterList: []int{13, 14, 15, 16, 17, 21, 22, 28, 29}},
	}},
}

var chidonHighSchool = []ChidonPart{
	{ID: "hs-part1", Name: "Part 1: Deuteronomy", Books: []ChidonBook{
		{Name: "Deuteronomy", Chapters: 34},
	}},
	{ID: "hs-part2", Name: "Part 2: I Samuel", Books: []ChidonBook{
		{Name: "I Samuel", Chapters: 31},
	}},
	{ID: "hs-part3", Name: "Part 3: Ruth", Books: []ChidonBook{
		{Name: "Ruth", Chapters: 4},
	}},
	{ID: "hs-part4", Name: "Part 4: I Chronicles (Selected)", Books: []ChidonBook{
		{Name: "I Chronicles", ChapterList: []int{13, 14, 15, 16, 17, 21, 22, 28, 29}},
	}},
	{ID: "hs-part5", Name: "Part 5: Jeremiah (Selected)", Books: []ChidonBook{
		{Name: "Jeremiah", ChapterList: jeremiahChapters},
	}},
}

// ChidonParts returns the curriculum parts for a division in declared order.
func ChidonParts(div domain.ChidonDivision) []ChidonPart {
	switch div {
	case domain.ChidonMiddleSchool:
		return chidonMiddleSchool
	case domain.ChidonHighSchool:
		return chidonHighSchool
	}
	return nil
}

// chidonBooksFor returns the books for the selected part IDs, preserving the
// curriculum's declared part order. An empty partIDs selects every part.
func chidonBooksFor(div domain.ChidonDivision, partIDs []string) []ChidonBook {
	parts := ChidonParts(div)
	if len(partIDs) == 0 {
		var books []ChidonBook
		for _, p := range parts {
			books = append(books, p.Books...)
		}
		return books
	}

	wanted := make(map[string]bool, len(partIDs))
	for _, id := range partIDs {
		wanted[id] = true
	}
	var books []ChidonBook
	for _, p := range parts {
		if wanted[p.ID] {
			books = append(books, p.Books...)
		}
	}
	return books
}
