package input_test

import (
	"testing"

	"github.com/plus3/termtris/internal/input"
	"github.com/stretchr/testify/assert"
)

func TestKeyFromRune(t *testing.T) {
	tests := map[rune]input.Key{
		'q': input.KeyQ,
		'Q': input.KeyQ,
		'e': input.KeyE,
		'R': input.KeyR,
		'x': input.KeyUnknown,
		' ': input.KeyUnknown,
	}
	for r, want := range tests {
		assert.Equal(t, want, input.KeyFromRune(r), "%q", r)
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "+left", input.Press(input.KeyLeft).String())
	assert.Equal(t, "-esc", input.Release(input.KeyEscape).String())
	assert.Equal(t, "Key(200)", input.Key(200).String())
	assert.False(t, input.Release(input.KeyQ).Press)
}
