package settings

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const MaxWordLength = 20

var (
	ErrWordEmpty         = errors.New("word is empty")
	ErrWordTooLong       = errors.New("word is too long")
	ErrWordNotAlphabetic = errors.New("word must contain letters only")
)

// ValidateWord trims the input and checks it can be stored as a reply word.
// Length is counted in code points.
func ValidateWord(raw string) (string, error) {
	word := strings.TrimSpace(raw)
	if word == "" {
		return "", ErrWordEmpty
	}
	if utf8.RuneCountInString(word) > MaxWordLength {
		return "", ErrWordTooLong
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", ErrWordNotAlphabetic
		}
	}
	return word, nil
}
