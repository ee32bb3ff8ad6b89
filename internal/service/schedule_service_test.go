package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLessonLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "обычный список",
			input: "Математика\nИстория\nФизика",
			want:  []string{"Математика", "История", "Физика"},
		},
		{
			name:  "пустые строки пропускаются",
			input: "Математика\nИстория\n\nРисование",
			want:  []string{"Математика", "История", "Рисование"},
		},
		{
			name:  "строки обрезаются по краям",
			input: "  Математика \n\tИстория\t",
			want:  []string{"Математика", "История"},
		},
		{
			name:  "только пробельные строки",
			input: " \n\t\n  ",
			want:  []string{},
		},
		{
			name:  "один урок без перевода строки",
			input: "Математика",
			want:  []string{"Математика"},
		},
		{
			name:  "пустой ввод",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLessonLines(tt.input))
		})
	}
}
