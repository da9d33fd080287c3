package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New([]string{"id", "name"})
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 0, g.RowCount())
	assert.False(t, g.Dirty())
}

func TestAppendBlankRow(t *testing.T) {
	g := New([]string{"id", "name"})

	idx := g.AppendBlankRow()
	assert.Equal(t, 0, idx)
	assert.Equal(t, []string{"", ""}, g.Rows[0])
	assert.True(t, g.Dirty())
}

func TestAppendRow(t *testing.T) {
	g := New([]string{"id", "name", "state"})

	t.Run("full row kept as is", func(t *testing.T) {
		idx := g.AppendRow([]string{"1", "Ann", "active"})
		assert.Equal(t, []string{"1", "Ann", "active"}, g.Rows[idx])
	})

	t.Run("short row padded with empty cells", func(t *testing.T) {
		idx := g.AppendRow([]string{"2"})
		assert.Equal(t, []string{"2", "", ""}, g.Rows[idx])
	})

	t.Run("sets dirty", func(t *testing.T) {
		assert.True(t, g.Dirty())
	})
}

func TestRemoveRow(t *testing.T) {
	g := New([]string{"id"})
	g.AppendRow([]string{"a"})
	g.AppendRow([]string{"b"})
	g.AppendRow([]string{"c"})
	g.MarkClean()

	require.NoError(t, g.RemoveRow(1))
	assert.Equal(t, [][]string{{"a"}, {"c"}}, g.Rows)
	assert.True(t, g.Dirty())
}

func TestRemoveRow_OutOfRange(t *testing.T) {
	g := New([]string{"id"})
	g.AppendRow([]string{"a"})
	g.MarkClean()

	assert.ErrorIs(t, g.RemoveRow(-1), ErrRowOutOfRange)
	assert.ErrorIs(t, g.RemoveRow(1), ErrRowOutOfRange)
	assert.False(t, g.Dirty())
}

func TestSetCell(t *testing.T) {
	g := New([]string{"id", "name"})
	g.AppendBlankRow()
	g.MarkClean()

	require.NoError(t, g.SetCell(0, 1, "Ann"))
	got, err := g.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)
	assert.True(t, g.Dirty())
}

func TestSetCell_OutOfRange(t *testing.T) {
	g := New([]string{"id", "name"})
	g.AppendBlankRow()

	assert.ErrorIs(t, g.SetCell(1, 0, "x"), ErrRowOutOfRange)
	assert.ErrorIs(t, g.SetCell(0, 2, "x"), ErrCellOutOfRange)
}

func TestSetCell_PadsShortRow(t *testing.T) {
	g := New([]string{"a", "b", "c"})
	g.Rows = [][]string{{"1"}}

	require.NoError(t, g.SetCell(0, 2, "z"))
	assert.Equal(t, []string{"1", "", "z"}, g.Rows[0])
}

func TestCell_ShortRowReadsEmpty(t *testing.T) {
	g := New([]string{"a", "b"})
	g.Rows = [][]string{{"1"}}

	got, err := g.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestMarkClean(t *testing.T) {
	g := New([]string{"id"})
	g.AppendBlankRow()
	require.True(t, g.Dirty())

	g.MarkClean()
	assert.False(t, g.Dirty())
}

func TestClone(t *testing.T) {
	g := New([]string{"id", "name"})
	g.AppendRow([]string{"1", "Ann"})

	c := g.Clone()
	c.Rows[0][1] = "Bob"
	c.Header[0] = "key"

	assert.Equal(t, "Ann", g.Rows[0][1])
	assert.Equal(t, "id", g.Header[0])
	assert.False(t, c.Dirty())
}
