package scripture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/windwords/windwords/pkg/scripture"
)

var bible = scripture.New()

func extract(text string) []string {
	return scripture.Strings(bible.Extract(text))
}

func TestExtractCasing(t *testing.T) {
	testCases := []struct {
		description string
		text        string
		expected    string
	}{
		{"lowercase", "mark 8:34", "Mark 8:34"},
		{"uppercase", "MARK 8:34", "Mark 8:34"},
		{"camelcase", "Mark 8:34", "Mark 8:34"},
		{"multiword camelcase", "reVElAtiOn oF JEsUS ChRIsT 2:20", "Revelation of Jesus Christ 2:20"},
		{"apocryphal multiword camelcase", "THe wIsDOm oF SoLOmoN 1:15", "The Wisdom of Solomon 1:15"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Contains(t, extract(tc.text), tc.expected)
		})
	}
}

func TestExtractChapterOnly(t *testing.T) {
	assert.Contains(t, extract("mark 8"), "Mark 8")
}

func TestExtractSurroundingText(t *testing.T) {
	assert.Contains(t, extract(" mark 8:34  "), "Mark 8:34")
	assert.Contains(t, extract("hello mark 8:34  world"), "Mark 8:34")
}

func TestExtractLeadingNumeralForms(t *testing.T) {
	testCases := []struct {
		description string
		text        string
	}{
		{"digit", "2 timothy 3:16"},
		{"roman numeral", "II timothy 3:16"},
		{"cardinal word", "two timothy 3:16"},
		{"ordinal word", "second timothy 3:16"},
		{"ordinal number", "2nd timothy 3:16"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Contains(t, extract(tc.text), "II Timothy 3:16")
		})
	}
}

func TestExtractRendersRomanNumeralNames(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		{"1 samuel 17:4", "I Samuel 17:4"},
		{"2 corinthians 5:17", "II Corinthians 5:17"},
		{"3 john 1:4", "III John 1:4"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Contains(t, extract(tc.text), tc.expected)
		})
	}
}

func TestExtractSpokenForms(t *testing.T) {
	testCases := []struct {
		description string
		text        string
		expected    string
	}{
		{"no colon", "mark 8 34", "Mark 8:34"},
		{"filler words", "go to mark in chapter 8 and verse 34", "Mark 8:34"},
		{"chapter as word", "mark eight", "Mark 8"},
		{"numbers as words", "mark eight thirty four", "Mark 8:34"},
		{"filler words and numbers as words", "mark chapter eight verse thirty four", "Mark 8:34"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Contains(t, extract(tc.text), tc.expected)
		})
	}
}

func TestExtractRanges(t *testing.T) {
	testCases := []struct {
		description string
		text        string
		expected    string
	}{
		{"verse range", "exodus 2:3-5", "Exodus 2:3-5"},
		{"verse range hyphen only", "exodus 2 3-5", "Exodus 2:3-5"},
		{"verse range spaces", "exodus 2 3 5", "Exodus 2:3-5"},
		{"verse range filler words", "exodus chapter 2 verses 3 through to 5", "Exodus 2:3-5"},
		{"chapter range", "john 1:2-3:4", "John 1:2-3:4"},
		{"chapter range spaced", "john 1:2 3:4", "John 1:2-3:4"},
		{"chapter range filler words", "john chapter 1 verse 2 through to chapter 3 verse 4", "John 1:2-3:4"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Contains(t, extract(tc.text), tc.expected)
		})
	}
}

func TestExtractMultipleReferences(t *testing.T) {
	references := extract(
		"today we will be looking at revelation chapter 2 verse 20 and also " +
			"exodus chapter 2 verses 3 through to 5",
	)
	assert.Contains(t, references, "Revelation of Jesus Christ 2:20")
	assert.Contains(t, references, "Exodus 2:3-5")
}

func TestExtractAlternateBookNames(t *testing.T) {
	for _, text := range []string{
		"Songs 1:2",
		"Song of Son 1:2",
		"Song of Sol 1:2",
		"Song of Solomon 1:2",
		"Song of Songs 1:2",
		"Cant of Cant 1:2",
		"Canticle of Canticles 1:2",
	} {
		t.Run(text, func(t *testing.T) {
			assert.Contains(t, extract(text), "Song of Solomon 1:2")
		})
	}
}

func TestExtractRejectsImpossibleChapters(t *testing.T) {
	assert.Empty(t, extract("mark 99"))
	assert.Empty(t, extract("psalm 151"))
	assert.Empty(t, extract("nothing to see here"))
}

func TestReferenceString(t *testing.T) {
	testCases := []struct {
		expected  string
		reference scripture.Reference
	}{
		{"Mark 8", scripture.Reference{Book: "Mark", Chapter: 8}},
		{"Mark 8:34", scripture.Reference{Book: "Mark", Chapter: 8, Verse: 34}},
		{"Mark 8-9", scripture.Reference{Book: "Mark", Chapter: 8, EndChapter: 9}},
		{"Exodus 2:3-5", scripture.Reference{Book: "Exodus", Chapter: 2, Verse: 3, EndVerse: 5}},
		{"John 1:2-3:4", scripture.Reference{Book: "John", Chapter: 1, Verse: 2, EndChapter: 3, EndVerse: 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.reference.String())
		})
	}
}

func TestStringsDeduplicatesAndSorts(t *testing.T) {
	references := []scripture.Reference{
		{Book: "Mark", Chapter: 8, Verse: 34},
		{Book: "Exodus", Chapter: 2, Verse: 3},
		{Book: "Mark", Chapter: 8, Verse: 34},
	}
	assert.Equal(t, []string{"Exodus 2:3", "Mark 8:34"}, scripture.Strings(references))
}
