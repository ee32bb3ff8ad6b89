package callbackdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackDecodeRoundTrip(t *testing.T) {
	actions := []Action{
		ClassMenu{},
		ClassMenu{Create: true},
		GradeSelect{Grade: 11, Purpose: PurposeClassrooms},
		GradeSelect{Grade: 1, Purpose: PurposeSchedule},
		ClassSelect{Grade: 9, Letter: "А", Purpose: PurposeSchedule},
		ClassSelect{Purpose: PurposeClassrooms, Back: true},
		ClassCard{Grade: 10, Letter: "Б", Op: ClassCardQR},
		ClassCard{Grade: 10, Letter: "Б", Op: ClassCardBack},
		PupilDay{Day: 4},
		PupilDay{Back: true},
		PupilWeekImage{},
		AdminDay{Grade: 7, Letter: "В", Day: 2},
		AdminDay{Grade: 7, Letter: "В", Back: true},
		EditDay{Grade: 5, Letter: "г", Day: 0},
		EditDay{Grade: 5, Letter: "г", Back: true},
	}

	for _, action := range actions {
		packed := action.Pack()
		decoded, err := Decode(packed)
		require.NoError(t, err, "decode %q", packed)
		assert.Equal(t, action, decoded, "round trip %q", packed)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	inputs := []string{
		"",
		"nonsense",
		"grade",
		"grade:abc:view_schedule",
		"grade:11",
		"class:11:А:view_schedule",
		"class_card:x:А:qr",
		"pupil_day:9",
		"pupil_week:extra",
		"admin_day:11:А:no:0",
		"edit_day:11:А:2",
	}

	for _, input := range inputs {
		_, err := Decode(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDecodeDistinguishesDayKinds(t *testing.T) {
	admin, err := Decode("admin_day:11:А:3:0")
	require.NoError(t, err)
	assert.Equal(t, AdminDay{Grade: 11, Letter: "А", Day: 3}, admin)

	edit, err := Decode("edit_day:11:А:3:0")
	require.NoError(t, err)
	assert.Equal(t, EditDay{Grade: 11, Letter: "А", Day: 3}, edit)
}
