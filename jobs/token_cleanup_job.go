package jobs

import (
	"log"

	"github.com/alphadev-tn/stage_manager/repository"
)

// TokenCleanupJob removes revoked and expired refresh tokens so the table
// does not grow without bound.
type TokenCleanupJob struct {
	tokens *repository.RefreshTokenRepository
}

func NewTokenCleanupJob(tokens *repository.RefreshTokenRepository) *TokenCleanupJob {
	return &TokenCleanupJob{tokens: tokens}
}

func (j *TokenCleanupJob) Run() {
	log.Println("Running job: PurgeRefreshTokens...")
	purged, err := j.tokens.PurgeDead()
	if err != nil {
		log.Printf("Error purging refresh tokens: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Purged %d dead refresh tokens", purged)
	}
}
