package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestination_Validate(t *testing.T) {
	tests := []struct {
		name string
		dest Destination
		ok   bool
	}{
		{"home", Home(), true},
		{"animal_detail_ok", AnimalDetail(7), true},
		{"animal_detail_zero", AnimalDetail(0), false},
		{"animal_detail_negative", AnimalDetail(-3), false},
		{"adopt_zero", AdoptionForm(0), false},
		{"intent_detail_zero", IntentDetail(0), false},
		{"animal_form_create", AnimalForm(0), true},
		{"animal_form_negative", AnimalForm(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dest.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidID))
		})
	}
}

func TestDestination_StringParse(t *testing.T) {
	for _, d := range []Destination{
		Home(), AnimalList(), AnimalDetail(7), AdoptionForm(7), AnimalForm(0),
		AnimalForm(3), IntentDetail(11), AdminAdoptions(), MyIntents(),
	} {
		got, err := Parse(d.String())
		require.NoError(t, err, d.String())
		assert.Equal(t, d, got)
	}

	_, err := Parse("nowhere")
	assert.Error(t, err)
	_, err = Parse("adopt:x")
	assert.Error(t, err)
}

func TestScreen_Classification(t *testing.T) {
	assert.True(t, ScreenAdminUsers.IsAdmin())
	assert.True(t, ScreenIntentDetail.IsAdmin())
	assert.False(t, ScreenAnimalList.IsAdmin())

	assert.True(t, ScreenAdoptionForm.RequiresLogin())
	assert.True(t, ScreenAdminDashboard.RequiresLogin())
	assert.False(t, ScreenAnimalDetail.RequiresLogin())
}
