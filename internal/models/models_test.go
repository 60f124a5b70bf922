package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomTagListCSVRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		list CustomTagList
		csv  string
	}{
		{"Empty", nil, ""},
		{"Single", CustomTagList{"office"}, "office"},
		{"Multiple", CustomTagList{"office", "lunch"}, "office|lunch"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.list.MarshalCSV()
			require.NoError(t, err)
			assert.Equal(t, tc.csv, out)

			var back CustomTagList
			require.NoError(t, back.UnmarshalCSV(out))
			assert.Equal(t, tc.list, back)
		})
	}
}

func TestCustomTagListUnmarshalDropsEmptySegments(t *testing.T) {
	var l CustomTagList
	require.NoError(t, l.UnmarshalCSV("a||b|"))
	assert.Equal(t, CustomTagList{"a", "b"}, l)
}
