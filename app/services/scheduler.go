package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// StartScheduler starts the background task loop. Once a night it
// rewarms every public scoreboard so the first morning visitor does
// not pay the recompute.
func StartScheduler(db *sql.DB, cache *redis.Client) {
	go func() {
		log.Info().Msg("scheduler started")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 04:10, after the daily backup window.
			if now.Hour() == 4 && now.Minute() == 10 {
				log.Info().Msg("rewarming public scoreboards")
				rewarmScoreboards(db, cache)
			}
		}
	}()
}

func rewarmScoreboards(db *sql.DB, cache *redis.Client) {
	ctx := context.Background()

	rows, err := db.Query(`SELECT id FROM monthly_tests WHERE is_public = true AND deleted_at IS NULL`)
	if err != nil {
		log.Error().Err(err).Msg("scoreboard rewarm query failed")
		return
	}
	defer rows.Close()

	var testIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Error().Err(err).Msg("scoreboard rewarm scan failed")
			return
		}
		testIDs = append(testIDs, id)
	}

	for _, id := range testIDs {
		InvalidateScoreboard(ctx, cache, id)
		if _, err := GetScoreboard(ctx, db, cache, id); err != nil {
			log.Error().Err(err).Str("test_id", id).Msg("scoreboard rewarm failed")
		}
	}
}
