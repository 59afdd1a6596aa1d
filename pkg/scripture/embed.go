package scripture

import (
	_ "embed"
	"encoding/json"
)

//go:embed data/books.json
var booksJSON []byte

//go:embed data/stopwords.json
var stopwordsJSON []byte

// Book is one entry of the KJV 1611 canon, Apocrypha included. Pattern
// is a regular expression fragment matching the book's written forms.
type Book struct {
	Name     string `json:"name"`
	Abbr     string `json:"abbr"`
	Pattern  string `json:"pattern"`
	Chapters int    `json:"chapters"`
}

func loadBooks() []Book {
	var books []Book
	if err := json.Unmarshal(booksJSON, &books); err != nil {
		panic("scripture: bad embedded book table: " + err.Error())
	}
	return books
}

func loadStopwords() []string {
	var words []string
	if err := json.Unmarshal(stopwordsJSON, &words); err != nil {
		panic("scripture: bad embedded stopword list: " + err.Error())
	}
	return words
}
