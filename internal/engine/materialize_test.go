package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTable(t *testing.T) {
	c, err := OpenConnection(createUsersDB(t))
	require.NoError(t, err)
	defer c.Close()

	g, err := c.LoadTable("Users")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, g.Header)
	assert.ElementsMatch(t, [][]string{{"1", "Ann"}, {"2", "Bob"}}, g.Rows)
	assert.False(t, g.Dirty())
}

func TestLoadTable_MissingTable(t *testing.T) {
	c, err := OpenConnection(createDB(t))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.LoadTable("Users")
	assert.ErrorIs(t, err, ErrNoSuchTable)
}

func TestLoadTable_EmptyTable(t *testing.T) {
	c, err := OpenConnection(createDB(t, `CREATE TABLE empty (a TEXT, b TEXT)`))
	require.NoError(t, err)
	defer c.Close()

	g, err := c.LoadTable("empty")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, g.Header)
	assert.Equal(t, 0, g.RowCount())
}

func TestLoadTable_CoercesAllTypesToText(t *testing.T) {
	path := createDB(t,
		`CREATE TABLE mixed (i INTEGER, r REAL, s TEXT, b BLOB)`,
		`INSERT INTO mixed (i, r, s, b) VALUES (42, 2.5, 'hi', x'414243')`)

	c, err := OpenConnection(path)
	require.NoError(t, err)
	defer c.Close()

	g, err := c.LoadTable("mixed")
	require.NoError(t, err)
	require.Equal(t, 1, g.RowCount())
	assert.Equal(t, []string{"42", "2.5", "hi", "ABC"}, g.Rows[0])
}

func TestLoadTable_NullBecomesEmptyText(t *testing.T) {
	path := createDB(t,
		`CREATE TABLE sparse (id INTEGER, note TEXT)`,
		`INSERT INTO sparse (id, note) VALUES (1, NULL)`)

	c, err := OpenConnection(path)
	require.NoError(t, err)
	defer c.Close()

	g, err := c.LoadTable("sparse")
	require.NoError(t, err)
	require.Equal(t, 1, g.RowCount())
	assert.Equal(t, []string{"1", ""}, g.Rows[0])
}
