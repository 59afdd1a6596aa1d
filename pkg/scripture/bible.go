package scripture

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// chapterWords and verseWords are the spoken markers that may separate
// a book title from its numbers. They join the stopword list as filler
// the matcher skips over, but unlike plain stopwords they disambiguate
// which number is a chapter and which is a verse.
var (
	chapterWords = []string{"chapter", "chapters"}
	verseWords   = []string{"verse", "verses"}
)

// numeralForms widens the leading-numeral alternations of the book
// patterns so "2 Timothy", "II Timothy", "2nd Timothy", "two Timothy"
// and "second Timothy" all match.
var numeralForms = strings.NewReplacer(
	"(?:1|I)", "(?:1|I|1st|one|first)",
	"(?:2|II)", "(?:2|II|2nd|two|second)",
	"(?:3|III)", "(?:3|III|3rd|three|third)",
)

// Bible matches scripture references against the KJV 1611 canon.
// A Bible is immutable once built and safe for concurrent use.
type Bible struct {
	books   []Book
	bookRes []*regexp.Regexp

	refRe    *regexp.Regexp
	numberRe *regexp.Regexp

	bookIdx    int
	chapterIdx int
	tailIdx    int
}

// New builds the reference matcher from the embedded book table.
func New() *Bible {
	books := loadBooks()

	fillers := append(loadStopwords(), chapterWords...)
	fillers = append(fillers, verseWords...)
	// Longer fillers first so "through" is never shadowed by "to".
	sort.Slice(fillers, func(i, j int) bool { return len(fillers[i]) > len(fillers[j]) })
	for i, w := range fillers {
		fillers[i] = regexp.QuoteMeta(w)
	}
	fillerAlt := strings.Join(fillers, "|")

	bookAlts := make([]string, len(books))
	bookRes := make([]*regexp.Regexp, len(books))
	for i, book := range books {
		pattern := numeralForms.Replace(book.Pattern)
		bookAlts[i] = "(?:" + pattern + ")"
		bookRes[i] = regexp.MustCompile(`(?i)\A(?:` + pattern + `)\z`)
	}

	refRe := regexp.MustCompile(`(?i)\b(?P<book>` + strings.Join(bookAlts, "|") + `)` +
		`(?:(?:` + fillerAlt + `)\b|\s)*` +
		`(?P<chapter>\d{1,3})\b` +
		`(?P<tail>(?:(?:` + fillerAlt + `)\b|\d{1,3}\b|[\s:‐–—-])*)`)

	return &Bible{
		books:      books,
		bookRes:    bookRes,
		refRe:      refRe,
		numberRe:   spokenNumberRegexp(),
		bookIdx:    refRe.SubexpIndex("book"),
		chapterIdx: refRe.SubexpIndex("chapter"),
		tailIdx:    refRe.SubexpIndex("tail"),
	}
}

// Extract returns every scripture reference found in text, in order of
// appearance. Duplicates are kept; use Strings to collapse them.
func (b *Bible) Extract(text string) []Reference {
	text = b.numberRe.ReplaceAllStringFunc(text, func(words string) string {
		return strconv.Itoa(wordsToNumber(words))
	})

	var refs []Reference
	for _, m := range b.refRe.FindAllStringSubmatch(text, -1) {
		book, ok := b.bookNamed(m[b.bookIdx])
		if !ok {
			continue
		}
		chapter, err := strconv.Atoi(m[b.chapterIdx])
		if err != nil {
			continue
		}
		if ref, ok := b.newReference(book, chapter, m[b.tailIdx]); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func (b *Bible) bookNamed(title string) (Book, bool) {
	for i, re := range b.bookRes {
		if re.MatchString(title) {
			return b.books[i], true
		}
	}
	return Book{}, false
}

// newReference interprets the numbers trailing a matched chapter. The
// first plain number is the verse; what follows is a range end, either
// a bare verse ("3-5"), a chapter:verse pair ("3:4") or a spoken
// "chapter 3 verse 4".
func (b *Bible) newReference(book Book, chapter int, tail string) (Reference, bool) {
	if chapter < 1 || chapter > book.Chapters {
		return Reference{}, false
	}

	verse, endChapter, endVerse := 0, 0, 0
	tokens := tailTokens(tail)
	i := 0
	if len(tokens) > 0 {
		t := tokens[0]
		if t.colon || t.verseWord || (!t.dash && !t.chapterWord) {
			verse = t.value
			i = 1
		}
	}
	if i < len(tokens) {
		t := tokens[i]
		switch {
		case i+1 < len(tokens) && (tokens[i+1].colon || tokens[i+1].verseWord):
			endChapter, endVerse = t.value, tokens[i+1].value
		case verse == 0:
			endChapter = t.value
		default:
			endVerse = t.value
		}
	}

	if verse > maxSpokenNumber {
		return Reference{}, false
	}
	if endVerse > maxSpokenNumber {
		endChapter, endVerse = 0, 0
	}
	if endChapter == chapter {
		endChapter = 0
	}
	if endChapter != 0 && (endChapter < chapter || endChapter > book.Chapters) {
		endChapter, endVerse = 0, 0
	}
	if endChapter == 0 && endVerse != 0 && endVerse <= verse {
		endVerse = 0
	}

	return Reference{
		Book:       book.Name,
		Chapter:    chapter,
		Verse:      verse,
		EndChapter: endChapter,
		EndVerse:   endVerse,
	}, true
}

type tailToken struct {
	value       int
	colon       bool
	dash        bool
	chapterWord bool
	verseWord   bool
}

// tailTokens scans the text trailing a chapter number into number
// tokens, each annotated with the separators and marker words seen
// since the previous number.
func tailTokens(tail string) []tailToken {
	var tokens []tailToken
	var cur tailToken
	runes := []rune(tail)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			j := i
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(string(runes[i:j]))
			if err == nil {
				cur.value = n
				tokens = append(tokens, cur)
			}
			cur = tailToken{}
			i = j
		case r == ':':
			cur.colon = true
			i++
		case r == '-' || r == '‐' || r == '–' || r == '—':
			cur.dash = true
			i++
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			switch strings.ToLower(string(runes[i:j])) {
			case "chapter", "chapters":
				cur.chapterWord = true
			case "verse", "verses":
				cur.verseWord = true
			}
			i = j
		default:
			i++
		}
	}
	return tokens
}
