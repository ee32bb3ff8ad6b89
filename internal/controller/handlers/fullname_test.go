package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBareFullName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "валидные фамилия и имя", input: "Иванов Иван", want: "Иванов Иван", ok: true},
		{name: "латиница тоже подходит", input: "Smith John", want: "Smith John", ok: true},
		{name: "одно слово", input: "Иванов", ok: false},
		{name: "три слова", input: "Иванов Иван Иванович", ok: false},
		{name: "пустая строка", input: "", ok: false},
		{name: "только пробелы", input: "   ", ok: false},
		{name: "строчная первая буква", input: "иванов Иван", ok: false},
		{name: "заглавная в середине слова", input: "ИвАнов Иван", ok: false},
		{name: "все заглавные", input: "ИВАНОВ ИВАН", ok: false},
		{name: "цифры в слове", input: "Иванов2 Иван", ok: false},
		{name: "дефис в слове", input: "Иванов-Петров Иван", ok: false},
		{name: "однобуквенное слово", input: "И Иван", ok: false},
		{name: "лишние пробелы между словами", input: "Иванов   Иван", want: "Иванов   Иван", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBareFullName(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}
