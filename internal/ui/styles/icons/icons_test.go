package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyledMarks(t *testing.T) {
	assert.Contains(t, StyledCheckMark(), CheckMark)
	assert.Contains(t, StyledCrossMark(), CrossMark)
	assert.NotContains(t, StyledCheckMark(), CrossMark)
}
