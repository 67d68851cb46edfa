package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/seanyjeong/academy-web-sub001/app/database"
	"github.com/seanyjeong/academy-web-sub001/app/models"
)

const scoreboardTTL = 10 * time.Minute

func scoreboardKey(testID string) string {
	return "scoreboard:" + testID
}

// Rank assigns competition ranks to scores already sorted by score
// descending: tied scores share a rank and the next distinct score
// skips ahead (1, 2, 2, 4).
func Rank(scores []*models.TestScore) []models.RankedScore {
	ranked := make([]models.RankedScore, 0, len(scores))
	for i, s := range scores {
		rank := i + 1
		if i > 0 && s.Score == scores[i-1].Score {
			rank = ranked[i-1].Rank
		}
		ranked = append(ranked, models.RankedScore{
			Rank:        rank,
			StudentID:   s.StudentID,
			StudentName: s.StudentName,
			Score:       s.Score,
		})
	}
	return ranked
}

// GetScoreboard returns the ranked scores for a test, from cache when
// warm. A cache failure falls through to the database.
func GetScoreboard(ctx context.Context, db *sql.DB, cache *redis.Client, testID string) ([]models.RankedScore, error) {
	if data, err := cache.Get(ctx, scoreboardKey(testID)).Bytes(); err == nil {
		var ranked []models.RankedScore
		if err := json.Unmarshal(data, &ranked); err == nil {
			return ranked, nil
		}
	} else if err != redis.Nil {
		log.Warn().Err(err).Str("test_id", testID).Msg("scoreboard cache read failed")
	}

	scores, err := database.GetTestScores(db, testID)
	if err != nil {
		return nil, err
	}
	ranked := Rank(scores)

	if data, err := json.Marshal(ranked); err == nil {
		if err := cache.Set(ctx, scoreboardKey(testID), data, scoreboardTTL).Err(); err != nil {
			log.Warn().Err(err).Str("test_id", testID).Msg("scoreboard cache write failed")
		}
	}
	return ranked, nil
}

// InvalidateScoreboard drops the cached ranking after a score write.
func InvalidateScoreboard(ctx context.Context, cache *redis.Client, testID string) {
	if err := cache.Del(ctx, scoreboardKey(testID)).Err(); err != nil {
		log.Warn().Err(err).Str("test_id", testID).Msg("scoreboard cache invalidation failed")
	}
}
