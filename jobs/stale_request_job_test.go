package jobs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/storage"
)

func TestNotifyStaleOpenRequests(t *testing.T) {
	store := storage.NewMemoryStorage()

	companyUserID := uuid.New()
	company := models.Company{UserID: companyUserID, CompanyName: "Acme"}
	if err := store.CreateCompany(&company); err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	stale := models.TrainingRequest{
		CompanyID:    company.ID,
		Title:        "Forgotten Workshop",
		Description:  "d",
		TrainingType: "t",
		Duration:     "1 day",
		MinBudget:    10,
		MaxBudget:    20,
		CreatedAt:    time.Now().Add(-100 * time.Hour),
	}
	if err := store.CreateTrainingRequest(&stale); err != nil {
		t.Fatalf("CreateTrainingRequest: %v", err)
	}

	fresh := models.TrainingRequest{
		CompanyID:    company.ID,
		Title:        "Fresh Workshop",
		Description:  "d",
		TrainingType: "t",
		Duration:     "1 day",
		MinBudget:    10,
		MaxBudget:    20,
	}
	if err := store.CreateTrainingRequest(&fresh); err != nil {
		t.Fatalf("CreateTrainingRequest: %v", err)
	}

	// second run must not produce a duplicate reminder
	NotifyStaleOpenRequests(store)
	NotifyStaleOpenRequests(store)

	got, err := store.GetNotificationsByUser(companyUserID)
	if err != nil {
		t.Fatalf("GetNotificationsByUser: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(got))
	}
	if got[0].Type != "reminder" {
		t.Errorf("notification type = %q, want reminder", got[0].Type)
	}
}

func TestNotifyStaleSkipsNonOpenRequests(t *testing.T) {
	store := storage.NewMemoryStorage()

	company := models.Company{UserID: uuid.New(), CompanyName: "Acme"}
	if err := store.CreateCompany(&company); err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	request := models.TrainingRequest{
		CompanyID:    company.ID,
		Title:        "Already Staffed",
		Description:  "d",
		TrainingType: "t",
		Duration:     "1 day",
		MinBudget:    10,
		MaxBudget:    20,
		CreatedAt:    time.Now().Add(-100 * time.Hour),
	}
	if err := store.CreateTrainingRequest(&request); err != nil {
		t.Fatalf("CreateTrainingRequest: %v", err)
	}
	request.Status = models.RequestStatusInProgress
	if err := store.SaveTrainingRequest(&request); err != nil {
		t.Fatalf("SaveTrainingRequest: %v", err)
	}

	NotifyStaleOpenRequests(store)

	got, err := store.GetNotificationsByUser(company.UserID)
	if err != nil {
		t.Fatalf("GetNotificationsByUser: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no reminders for in-progress request, got %d", len(got))
	}
}
