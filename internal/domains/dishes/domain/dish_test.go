package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDish(t *testing.T) {
	dish, err := NewDish("d1", "Pasta", "Tasty", 12, "u")
	require.NoError(t, err)
	require.Equal(t, &Dish{ID: "d1", Name: "Pasta", Description: "Tasty", Price: 12, ImageURL: "u"}, dish)
}

func TestNewDish_RejectsBrokenInvariants(t *testing.T) {
	_, err := NewDish("", "Pasta", "Tasty", 12, "u")
	require.ErrorIs(t, err, ErrMissingID)
	_, err = NewDish("d1", "", "Tasty", 12, "u")
	require.ErrorIs(t, err, ErrEmptyName)
	_, err = NewDish("d1", "Pasta", "", 12, "u")
	require.ErrorIs(t, err, ErrEmptyDescription)
	_, err = NewDish("d1", "Pasta", "Tasty", 12, "")
	require.ErrorIs(t, err, ErrEmptyImageURL)
	_, err = NewDish("d1", "Pasta", "Tasty", 0, "u")
	require.ErrorIs(t, err, ErrInvalidPrice)
}

func TestRevise_KeepsIdentifier(t *testing.T) {
	dish, err := NewDish("d1", "Pasta", "Tasty", 12, "u")
	require.NoError(t, err)
	require.NoError(t, dish.Revise("Soup", "Warm", 7, "v"))
	require.Equal(t, "d1", dish.ID)
	require.Equal(t, "Soup", dish.Name)
	require.Equal(t, 7, dish.Price)

	require.ErrorIs(t, dish.Revise("Soup", "Warm", -1, "v"), ErrInvalidPrice)
	require.Equal(t, 7, dish.Price)
}

func TestClone_IsDetached(t *testing.T) {
	dish := &Dish{ID: "d1", Name: "Pasta"}
	clone := dish.Clone()
	clone.Name = "Soup"
	require.Equal(t, "Pasta", dish.Name)
	require.Nil(t, (*Dish)(nil).Clone())
}
