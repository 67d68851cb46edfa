package services

import (
	"testing"

	"github.com/seanyjeong/academy-web-sub001/app/models"

	"github.com/stretchr/testify/assert"
)

func score(id string, v float64) *models.TestScore {
	return &models.TestScore{StudentID: id, StudentName: "student " + id, Score: v}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name      string
		scores    []*models.TestScore
		wantRanks []int
	}{
		{
			name:      "empty",
			scores:    nil,
			wantRanks: []int{},
		},
		{
			name:      "distinct scores",
			scores:    []*models.TestScore{score("a", 95), score("b", 90), score("c", 80)},
			wantRanks: []int{1, 2, 3},
		},
		{
			name:      "ties share rank and next skips",
			scores:    []*models.TestScore{score("a", 95), score("b", 90), score("c", 90), score("d", 80)},
			wantRanks: []int{1, 2, 2, 4},
		},
		{
			name:      "tie at the top",
			scores:    []*models.TestScore{score("a", 95), score("b", 95), score("c", 90)},
			wantRanks: []int{1, 1, 3},
		},
		{
			name:      "three-way tie",
			scores:    []*models.TestScore{score("a", 90), score("b", 90), score("c", 90), score("d", 85)},
			wantRanks: []int{1, 1, 1, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(tt.scores)
			assert.Len(t, ranked, len(tt.wantRanks))
			for i, want := range tt.wantRanks {
				assert.Equal(t, want, ranked[i].Rank, "row %d", i)
				assert.Equal(t, tt.scores[i].StudentID, ranked[i].StudentID)
			}
		})
	}
}
