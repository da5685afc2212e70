package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 7, ToIntD("", 7))
	assert.Equal(t, 7, ToIntD("seven", 7))
	assert.Equal(t, 3, ToIntD(" 3 ", 7))
	assert.Equal(t, -2, ToIntD("-2", 7))
}
