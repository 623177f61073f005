// Package notifications builds the in-app notification payloads written by
// the matching fan-out, the application workflow, and the reminder job.
// Delivery transport (email/SMS/push) is out of scope; the type field on a
// notification is a label only.
package notifications

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	TypeEmail    = "email"
	TypeReminder = "reminder"
)

func TrainingOpportunity(requestTitle string) (title, message string) {
	return "New Training Opportunity",
		fmt.Sprintf("A new training request for %q matches your rate range.", requestTitle)
}

func ApplicationReceived(requestTitle string) (title, message string) {
	return "New Application Received",
		fmt.Sprintf("An instructor has applied for your training request: %q", requestTitle)
}

func RequestStillOpen(requestTitle string) (title, message string) {
	return "Training Request Still Open",
		fmt.Sprintf("Your training request %q has been open for a while without a selected instructor.", requestTitle)
}

// MatchDedupKey is the idempotency key for one request-to-instructor
// notification, so a retried fan-out cannot duplicate rows.
func MatchDedupKey(requestID, instructorID uuid.UUID) string {
	return fmt.Sprintf("match:%s:%s", requestID, instructorID)
}

// StaleRequestDedupKey keys the reminder job's notification per request, so
// repeated cron runs nag a company only once.
func StaleRequestDedupKey(requestID uuid.UUID) string {
	return fmt.Sprintf("stale:%s", requestID)
}
