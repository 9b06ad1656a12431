package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMarshalCSV(t *testing.T) {
	d := NewDate(time.Date(2024, time.March, 29, 0, 0, 0, 0, time.UTC))
	out, err := d.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-29", out)

	zero, err := Date{}.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "", zero)
}

func TestDateUnmarshalCSV(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalCSV("29/03/2024"))
	assert.Equal(t, "2024-03", d.MonthKey())

	var empty Date
	require.NoError(t, empty.UnmarshalCSV(""))
	assert.True(t, empty.IsZero())

	var bad Date
	assert.Error(t, bad.UnmarshalCSV("yesterday-ish"))
}
