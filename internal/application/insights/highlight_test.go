package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNutritionHighlight(t *testing.T) {
	tests := []struct {
		name      string
		highlight string
		want      []string
	}{
		{
			name:      "empty input",
			highlight: "",
			want:      nil,
		},
		{
			name:      "source of pattern",
			highlight: "Excellent source of protein",
			want:      []string{"protein"},
		},
		{
			name:      "trailing source",
			highlight: "Great protein source",
			want:      []string{"protein"},
		},
		{
			name:      "trailing content",
			highlight: "high protein content",
			want:      []string{"protein"},
		},
		{
			name:      "packed with multiple nutrients",
			highlight: "Packed with protein and iron",
			want:      []string{"protein", "iron"},
		},
		{
			name:      "loaded with",
			highlight: "loaded with fiber",
			want:      []string{"fiber"},
		},
		{
			name:      "comma separated",
			highlight: "protein, fiber, calcium",
			want:      []string{"protein", "fiber", "calcium"},
		},
		{
			name:      "stacked buzz words",
			highlight: "very good source of omega-3",
			want:      []string{"omega-3"},
		},
		{
			name:      "bare nutrient",
			highlight: "protein",
			want:      []string{"protein"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNutritionHighlight(tt.highlight))
		})
	}
}
