package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("john@example.com"))
	assert.True(t, ValidEmail(" JOHN@X.COM "))
	assert.False(t, ValidEmail("john@"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "john@x.com", NormalizeEmail(" JOHN@X.COM "))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "2125550142", DigitsOnly("(212) 555-0142"))
	assert.Equal(t, "", DigitsOnly("no digits"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("2125550142"))
	assert.True(t, ValidPhone("(212) 555-0142"))
	assert.False(t, ValidPhone("555-0142"))
	assert.False(t, ValidPhone("+1 212 555 01420"))
}
