package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultListParams(t *testing.T) {
	params := DefaultListParams()
	assert.Equal(t, 0, params.Page)
	assert.Equal(t, 10, params.PageSize)
	assert.NoError(t, params.Validate())
}

func TestValidateBounds(t *testing.T) {
	assert.ErrorIs(t, ListParams{Page: -1, PageSize: 10}.Validate(), ErrInvalidPage)
	assert.ErrorIs(t, ListParams{Page: 0, PageSize: 0}.Validate(), ErrInvalidPageSize)
	assert.ErrorIs(t, ListParams{Page: 0, PageSize: 101}.Validate(), ErrInvalidPageSize)
	assert.NoError(t, ListParams{Page: 0, PageSize: 1}.Validate())
	assert.NoError(t, ListParams{Page: 1000, PageSize: 100}.Validate())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 0, PageSize: 10}.Offset())
	assert.Equal(t, 30, ListParams{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 75, ListParams{Page: 3, PageSize: 25}.Offset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(1, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}
