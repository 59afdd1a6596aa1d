package scripture

import (
	"fmt"
	"sort"
)

// Reference is a normalised scripture reference. Verse 0 means the
// whole chapter. EndChapter and EndVerse are 0 unless the reference is
// a range; an EndChapter equal to Chapter is collapsed to 0.
type Reference struct {
	Book       string
	Chapter    int
	Verse      int
	EndChapter int
	EndVerse   int
}

// String renders the reference in its canonical written form:
// "Mark 8", "Mark 8:34", "Exodus 2:3-5" or "John 1:2-3:4".
func (r Reference) String() string {
	s := fmt.Sprintf("%s %d", r.Book, r.Chapter)
	if r.Verse == 0 {
		if r.EndChapter > r.Chapter {
			s += fmt.Sprintf("-%d", r.EndChapter)
		}
		return s
	}
	s += fmt.Sprintf(":%d", r.Verse)
	if r.EndChapter > r.Chapter {
		s += fmt.Sprintf("-%d:%d", r.EndChapter, r.EndVerse)
	} else if r.EndVerse > r.Verse {
		s += fmt.Sprintf("-%d", r.EndVerse)
	}
	return s
}

// Strings renders references to their written forms, dropping
// duplicates and sorting the result.
func Strings(refs []Reference) []string {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		s := ref.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
