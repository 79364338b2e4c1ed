package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnit(t *testing.T) {
	t.Run("all Unit values are equal", func(t *testing.T) {
		a := Unit{}
		b := UnitValue

		assert.Equal(t, a, b)
		assert.True(t, a == b)
	})

	t.Run("Unit formats as empty tuple", func(t *testing.T) {
		assert.Equal(t, "()", UnitValue.String())
	})
}
