package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want Label
		ok   bool
	}{
		{"alegre", LabelAlegre, true},
		{"  dudosa \n", LabelDudosa, true},
		{"MOLESTA", LabelMolesta, true},
		{"normal", LabelNormal, true},
		{"", LabelNormal, false},
		{"feliz", LabelNormal, false},
		{"muy alegre", LabelNormal, false},
		{`"alegre"`, LabelNormal, false},
	}
	for _, tt := range tests {
		got, ok := ParseLabel(tt.raw)
		require.Equal(t, tt.want, got, "raw=%q", tt.raw)
		require.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
	}
}
