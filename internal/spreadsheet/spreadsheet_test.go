package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	in := &Table{
		Header: []string{"spec_name", "spec_value", "spec_unit"},
		Rows: [][]string{
			{"weight", "180", "kg"},
			{"power", "45", ""},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Specs_R1", in))

	out, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, in.Header, out.Header)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "weight", Cell(out.Rows[0], 0))
	assert.Equal(t, "kg", Cell(out.Rows[0], 2))
	assert.Equal(t, "", Cell(out.Rows[1], 2))
	assert.Equal(t, 1, out.Index("missing", "spec_value"))
	assert.Equal(t, -1, out.Index("missing"))
}

func TestRead_Garbage(t *testing.T) {
	_, err := Read(strings.NewReader("definitely,not,a,workbook"))
	assert.Error(t, err)
}

func TestRead_EmptySheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Empty", &Table{}))

	_, err := Read(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrEmptyWorkbook)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Specs_R_1", SheetName("Specs_R/1"))
	assert.Equal(t, "Sheet1", SheetName(""))
	assert.Len(t, []rune(SheetName(strings.Repeat("я", 40))), 31)
}
