package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/smm-uncleared/internal/filter"
)

var yearOptions = []filter.Option{
	{Value: "2020", Label: "2020"},
	{Value: "2021", Label: "2021"},
	{Value: "2022", Label: "2022"},
}

func TestSelectorEmitsInitialValue(t *testing.T) {
	var emitted []string
	s, err := NewSelector("year", yearOptions, "2021", func(v string) { emitted = append(emitted, v) })
	require.NoError(t, err)
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, []string{"2021"}, emitted)
}

func TestSelectorRejectsUnknownInitialValue(t *testing.T) {
	_, err := NewSelector("year", yearOptions, "1999", nil)
	require.Error(t, err)
	_, err = NewSelector("year", nil, "", nil)
	require.Error(t, err)
}

func TestSelectorClampsWithoutWrapping(t *testing.T) {
	var emitted []string
	s, err := NewSelector("year", yearOptions, "2020", func(v string) { emitted = append(emitted, v) })
	require.NoError(t, err)

	assert.False(t, s.CanPrev())
	assert.False(t, s.Prev())
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.Next())
	assert.True(t, s.Next())
	assert.False(t, s.CanNext())
	assert.False(t, s.Next())
	assert.Equal(t, "2022", s.Value())

	assert.Equal(t, []string{"2020", "2021", "2022"}, emitted)
}

func TestSelectorSelectValue(t *testing.T) {
	var emitted []string
	s, err := NewSelector("year", yearOptions, "2020", func(v string) { emitted = append(emitted, v) })
	require.NoError(t, err)

	assert.True(t, s.SelectValue("2022"))
	assert.False(t, s.SelectValue("2022"))
	assert.False(t, s.SelectValue("1999"))
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, "2022", s.Label())
	assert.Equal(t, []string{"2020", "2022"}, emitted)
}

func TestSelectorSingleOption(t *testing.T) {
	s, err := NewSelector("year", []filter.Option{{Value: "2017", Label: "2017"}}, "2017", nil)
	require.NoError(t, err)
	assert.False(t, s.CanPrev())
	assert.False(t, s.CanNext())
	assert.Len(t, s.Options(), 1)
}
