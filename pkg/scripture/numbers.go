package scripture

import (
	"regexp"
	"sort"
	"strings"
)

// maxSpokenNumber bounds spoken-number conversion. Psalm 119 has 176
// verses, the most of any chapter, so no valid reference needs more.
const maxSpokenNumber = 176

var (
	numberOnes  = []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	numberTeens = []string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	numberTens  = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
)

// numberToWords spells n in English, space separated ("thirty four",
// "one hundred seventy six").
func numberToWords(n int) string {
	switch {
	case n < 10:
		return numberOnes[n]
	case n < 20:
		return numberTeens[n-10]
	case n < 100:
		s := numberTens[n/10]
		if n%10 != 0 {
			s += " " + numberOnes[n%10]
		}
		return s
	default:
		s := numberOnes[n/100] + " hundred"
		if n%100 != 0 {
			s += " " + numberToWords(n%100)
		}
		return s
	}
}

// wordsToNumber parses the output of numberToWords back into a value.
func wordsToNumber(phrase string) int {
	n := 0
	for _, word := range strings.Fields(strings.ToLower(phrase)) {
		if word == "hundred" {
			if n == 0 {
				n = 1
			}
			n *= 100
			continue
		}
		n += wordValue(word)
	}
	return n
}

func wordValue(word string) int {
	for v, w := range numberOnes {
		if w == word {
			return v
		}
	}
	for i, w := range numberTeens {
		if w == word {
			return 10 + i
		}
	}
	for i, w := range numberTens {
		if w == word {
			return 10 * i
		}
	}
	return 0
}

// spokenNumberRegexp matches any spelled-out number from 1 up to
// maxSpokenNumber. Longer phrases sort first so "thirty four" wins
// over "four".
func spokenNumberRegexp() *regexp.Regexp {
	phrases := make([]string, 0, maxSpokenNumber)
	for n := 1; n <= maxSpokenNumber; n++ {
		phrases = append(phrases, numberToWords(n))
	}
	sort.Slice(phrases, func(i, j int) bool { return len(phrases[i]) > len(phrases[j]) })
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(phrases, "|") + `)\b`)
}
