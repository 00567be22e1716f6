package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelKey(t *testing.T) {
	testCases := []struct {
		label    string
		expected string
	}{
		{label: "Status:", expected: "status"},
		{label: "Region Assigned: ", expected: "region_assigned"},
		{label: "  Date   Filed:", expected: "date_filed"},
		{label: "Case Number:", expected: "case_number"},
		{label: "Tally Type", expected: "tally_type"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, LabelKey(test.label), test.label)
	}
}

func TestAfterFirst(t *testing.T) {
	require.Equal(t, "CLOSED on 01/01/2010", AfterFirst("Status: CLOSED on 01/01/2010", ":"))
	require.Equal(t, "a: b", AfterFirst("k: a: b", ":"))
	require.Equal(t, "no separator", AfterFirst("  no separator ", ":"))
}

func TestClean(t *testing.T) {
	require.Equal(t, "ACME Markets", Clean("\n\t ACME   Markets \n"))
	require.Equal(t, "", Clean(" \n "))
}
