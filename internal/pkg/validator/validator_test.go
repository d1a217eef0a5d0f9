package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("a@x.com"))
	require.False(t, IsValidEmail("a@x"))
	require.False(t, IsValidEmail("  "))
}

func TestIsValidPhone(t *testing.T) {
	require.True(t, IsValidPhone("+91 98765-43210"))
	require.True(t, IsValidPhone("(022) 2345 6789"))
	require.False(t, IsValidPhone("12ab"))
	require.False(t, IsValidPhone(""))
}

func TestIsValidName(t *testing.T) {
	require.True(t, IsValidName("Asha D'Souza"))
	require.True(t, IsValidName("Ramesh K."))
	require.False(t, IsValidName("A"))
	require.False(t, IsValidName("<b>x</b>"))
}

func TestIsValidPostalCode(t *testing.T) {
	require.True(t, IsValidPostalCode("400001"))
	require.True(t, IsValidPostalCode("sw1a 1aa"))
	require.False(t, IsValidPostalCode("1"))
}
