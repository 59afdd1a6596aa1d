package scripture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	testCases := map[int]string{
		1:   "one",
		8:   "eight",
		12:  "twelve",
		20:  "twenty",
		34:  "thirty four",
		100: "one hundred",
		119: "one hundred nineteen",
		176: "one hundred seventy six",
	}

	for n, words := range testCases {
		assert.Equal(t, words, numberToWords(n))
	}
}

func TestWordsToNumberRoundTrip(t *testing.T) {
	for n := 1; n <= maxSpokenNumber; n++ {
		assert.Equal(t, n, wordsToNumber(numberToWords(n)))
	}
}

func TestSpokenNumberRegexpPrefersLongestPhrase(t *testing.T) {
	re := spokenNumberRegexp()
	assert.Equal(t, "thirty four", re.FindString("thirty four"))
	assert.Equal(t, "one hundred seventy six", re.FindString("one hundred seventy six"))
}
