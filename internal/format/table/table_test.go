package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomicstack/smm-uncleared/internal/testutil"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"Likes", "12"},
		{"Footprints", "1,024"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	assert.Equal(t, []string{
		"Likes          12",
		"Footprints  1,024",
	}, got)
}

func TestFormatIgnoresANSIInWidth(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mID\x1b[0m", "x"},
		{"Year", "y"},
	}
	got := Format(rows, nil)
	if got[0] != "\x1b[1mID\x1b[0m    x" {
		t.Fatalf("expected styled cell padded by printable width, got %q", got[0])
	}
	if got[1] != "Year  y" {
		t.Fatalf("unexpected second row %q", got[1])
	}
}

func TestFormatHandlesRaggedRows(t *testing.T) {
	got := Format([][]string{{"a"}, {"bb", "c"}}, nil)
	assert.Equal(t, []string{"a ", "bb  c"}, got)
	assert.Nil(t, Format(nil, nil))
}

func TestFormatGolden(t *testing.T) {
	rows := [][]string{
		{"Name", "Value"},
		{"Likes", "1,234"},
		{"Footprints", "56"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	testutil.AssertGolden(t, "table_meta.golden", strings.Join(got, "\n")+"\n")
}
