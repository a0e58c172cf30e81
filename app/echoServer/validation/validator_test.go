package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" validate:"required"`
	Year  int      `json:"year_of_release" validate:"gt=0"`
	Tags  []string `json:"tags" validate:"dive,required"`
	Inner string   `json:"-" validate:"omitempty,email"`
}

func TestFieldsUsesJSONNames(t *testing.T) {
	v := New(nil)
	err := v.Validate(sample{Tags: []string{"ok", ""}, Inner: "bad"})
	require.Error(t, err)

	fields := Fields(err)
	require.Equal(t, "required", fields["name"])
	require.Equal(t, "gt=0", fields["year_of_release"])
	require.Equal(t, "required", fields["tags[1]"])
	require.Equal(t, "email", fields["Inner"])
}

func TestFieldsIgnoresOtherErrors(t *testing.T) {
	require.Nil(t, Fields(errors.New("plain")))
	require.NoError(t, New(nil).Validate(sample{Name: "x", Year: 1}))
}
