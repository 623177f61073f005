package jobs

import (
	"log"
	"time"

	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/notifications"
	"github.com/instructormatch/instructor_match/storage"
)

// staleAfter is how long a request may sit open before its company is nudged.
const staleAfter = 72 * time.Hour

// NotifyStaleOpenRequests writes one reminder notification per long-open
// request. The dedup key keeps repeated cron runs from nagging twice.
func NotifyStaleOpenRequests(store storage.Storage) {
	log.Println("Running job: NotifyStaleOpenRequests...")

	cutoff := time.Now().Add(-staleAfter)
	requests, err := store.GetOpenTrainingRequestsCreatedBefore(cutoff)
	if err != nil {
		log.Printf("Error checking for stale open requests: %v", err)
		return
	}

	for _, request := range requests {
		title, message := notifications.RequestStillOpen(request.Title)
		key := notifications.StaleRequestDedupKey(request.ID)
		now := time.Now()
		err := store.CreateNotification(&models.Notification{
			UserID:   request.Company.UserID,
			Title:    title,
			Message:  message,
			Type:     notifications.TypeReminder,
			DedupKey: &key,
			SentAt:   &now,
		})
		if err != nil {
			log.Printf("Error notifying company for request %s: %v", request.ID, err)
		}
	}
}
