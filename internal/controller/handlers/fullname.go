package handlers

import (
	"strings"
	"unicode"
)

// ExtractBareFullName проверяет что текст - "голые" Фамилия Имя:
// ровно два слова, каждое из букв, с заглавной буквы и дальше строчными.
// Возвращает исходный текст и true при успехе.
func ExtractBareFullName(text string) (string, bool) {
	words := strings.Fields(text)
	if len(words) != 2 {
		return "", false
	}

	for _, word := range words {
		runes := []rune(word)
		if len(runes) < 2 {
			return "", false
		}
		if !unicode.IsLetter(runes[0]) || !unicode.IsUpper(runes[0]) {
			return "", false
		}
		for _, r := range runes[1:] {
			if !unicode.IsLetter(r) || !unicode.IsLower(r) {
				return "", false
			}
		}
	}

	return text, true
}
