// Package scripture extracts Bible references from free-form English
// text, such as sermon captions. Matching is tolerant of spoken forms:
// "go to mark in chapter 8 and verse 34" and "Mark 8:34" both resolve
// to the same reference.
package scripture
