package grid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	g := New([]string{"id", "name"})
	g.AppendRow([]string{"1", "Ann"})
	g.AppendRow([]string{"2", "with,comma"})

	var buf bytes.Buffer
	require.NoError(t, g.WriteCSV(&buf, 0))

	assert.Equal(t, "id,name\n1,Ann\n2,\"with,comma\"\n", buf.String())
}

func TestWriteCSV_CustomDelimiter(t *testing.T) {
	g := New([]string{"a", "b"})
	g.AppendRow([]string{"1", "2"})

	var buf bytes.Buffer
	require.NoError(t, g.WriteCSV(&buf, ';'))

	assert.Equal(t, "a;b\n1;2\n", buf.String())
}

func TestReadCSV(t *testing.T) {
	in := "id,name\n1,Ann\n2,Bob\n"

	g, err := ReadCSV(strings.NewReader(in), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, g.Header)
	assert.Equal(t, [][]string{{"1", "Ann"}, {"2", "Bob"}}, g.Rows)
	assert.False(t, g.Dirty())
}

func TestReadCSV_ShortRecordsPadded(t *testing.T) {
	in := "a,b,c\n1\n2,3\n"

	g, err := ReadCSV(strings.NewReader(in), 0)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"1", "", ""}, {"2", "3", ""}}, g.Rows)
}

func TestReadCSV_Empty(t *testing.T) {
	g, err := ReadCSV(strings.NewReader(""), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, 0, g.RowCount())
}

func TestCSV_RoundTrip(t *testing.T) {
	g := New([]string{"id", "note"})
	g.AppendRow([]string{"1", "line one\nline two"})
	g.AppendRow([]string{"2", `quote "inside"`})

	var buf bytes.Buffer
	require.NoError(t, g.WriteCSV(&buf, 0))

	got, err := ReadCSV(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, g.Header, got.Header)
	assert.Equal(t, g.Rows, got.Rows)
}
