package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/models"
)

func seedInstructor(t *testing.T, store *MemoryStorage, verified bool, minRate, desiredRate, rating float64) models.Instructor {
	t.Helper()
	instructor := models.Instructor{
		UserID:            uuid.New(),
		ProfessionalTitle: "Trainer",
		MinHourlyRate:     minRate,
		DesiredHourlyRate: desiredRate,
		IsVerified:        verified,
		Rating:            rating,
	}
	if err := store.CreateInstructor(&instructor); err != nil {
		t.Fatalf("CreateInstructor: %v", err)
	}
	return instructor
}

func TestGetInstructorsInBudgetRange(t *testing.T) {
	store := NewMemoryStorage()

	low := seedInstructor(t, store, true, 80, 150, 3.5)
	high := seedInstructor(t, store, true, 100, 180, 4.8)
	seedInstructor(t, store, false, 80, 150, 5.0)  // unverified
	seedInstructor(t, store, true, 250, 300, 4.0)  // above budget
	seedInstructor(t, store, true, 10, 40, 4.0)    // below budget

	matched, err := store.GetInstructorsInBudgetRange(50, 200)
	if err != nil {
		t.Fatalf("GetInstructorsInBudgetRange: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	if matched[0].ID != high.ID || matched[1].ID != low.ID {
		t.Errorf("expected rating-descending order, got %v then %v", matched[0].Rating, matched[1].Rating)
	}
}

func TestCreateTrainingRequestFanOut(t *testing.T) {
	store := NewMemoryStorage()

	eligible := seedInstructor(t, store, true, 80, 150, 4.0)
	unverified := seedInstructor(t, store, false, 80, 150, 4.0)

	request := models.TrainingRequest{
		CompanyID:    uuid.New(),
		Title:        "Leadership Workshop",
		Description:  "Two day onsite",
		TrainingType: "leadership",
		Duration:     "2 days",
		MinBudget:    50,
		MaxBudget:    200,
	}
	if err := store.CreateTrainingRequest(&request); err != nil {
		t.Fatalf("CreateTrainingRequest: %v", err)
	}

	got, err := store.GetNotificationsByUser(eligible.UserID)
	if err != nil {
		t.Fatalf("GetNotificationsByUser: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("eligible instructor: expected exactly 1 notification, got %d", len(got))
	}
	if got[0].Title != "New Training Opportunity" {
		t.Errorf("unexpected title %q", got[0].Title)
	}

	none, err := store.GetNotificationsByUser(unverified.UserID)
	if err != nil {
		t.Fatalf("GetNotificationsByUser: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unverified instructor: expected no notifications, got %d", len(none))
	}
}

func TestNotificationDedupKey(t *testing.T) {
	store := NewMemoryStorage()
	userID := uuid.New()
	key := "stale:once"

	for i := 0; i < 3; i++ {
		err := store.CreateNotification(&models.Notification{
			UserID:   userID,
			Title:    "Reminder",
			Message:  "still open",
			Type:     "reminder",
			DedupKey: &key,
		})
		if err != nil {
			t.Fatalf("CreateNotification: %v", err)
		}
	}

	got, err := store.GetNotificationsByUser(userID)
	if err != nil {
		t.Fatalf("GetNotificationsByUser: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected dedup to keep 1 notification, got %d", len(got))
	}
}

func TestCreateReviewRecomputesRating(t *testing.T) {
	store := NewMemoryStorage()
	instructor := seedInstructor(t, store, true, 80, 150, 0)

	for _, rating := range []int{5, 4, 3} {
		review := models.Review{
			ContractID: uuid.New(),
			ReviewerID: uuid.New(),
			RevieweeID: instructor.UserID,
			Rating:     rating,
		}
		if err := store.CreateReview(&review); err != nil {
			t.Fatalf("CreateReview: %v", err)
		}
	}

	updated, err := store.GetInstructor(instructor.ID)
	if err != nil {
		t.Fatalf("GetInstructor: %v", err)
	}
	if updated.Rating != 4.00 {
		t.Errorf("rating after [5 4 3] = %v, want 4.00", updated.Rating)
	}

	review := models.Review{
		ContractID: uuid.New(),
		ReviewerID: uuid.New(),
		RevieweeID: instructor.UserID,
		Rating:     2,
	}
	if err := store.CreateReview(&review); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	updated, err = store.GetInstructor(instructor.ID)
	if err != nil {
		t.Fatalf("GetInstructor: %v", err)
	}
	if updated.Rating != 3.50 {
		t.Errorf("rating after adding 2 = %v, want 3.50", updated.Rating)
	}
}

func TestRequestListingNewestFirstAndStable(t *testing.T) {
	store := NewMemoryStorage()
	companyID := uuid.New()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		request := models.TrainingRequest{
			CompanyID:    companyID,
			Title:        title,
			Description:  "d",
			TrainingType: "t",
			Duration:     "1 day",
			MinBudget:    10,
			MaxBudget:    20,
		}
		if err := store.CreateTrainingRequest(&request); err != nil {
			t.Fatalf("CreateTrainingRequest: %v", err)
		}
	}

	want := []string{"third", "second", "first"}
	for i := 0; i < 2; i++ { // stable across repeated calls
		requests, err := store.GetTrainingRequestsByCompany(companyID)
		if err != nil {
			t.Fatalf("GetTrainingRequestsByCompany: %v", err)
		}
		if len(requests) != len(want) {
			t.Fatalf("expected %d requests, got %d", len(want), len(requests))
		}
		for i, request := range requests {
			if request.Title != want[i] {
				t.Errorf("position %d: got %q, want %q", i, request.Title, want[i])
			}
		}
	}
}

func TestCompleteContractReleasesEscrow(t *testing.T) {
	store := NewMemoryStorage()
	instructor := seedInstructor(t, store, true, 80, 150, 0)

	contract := models.Contract{
		RequestID:    uuid.New(),
		CompanyID:    uuid.New(),
		InstructorID: instructor.ID,
		AgreedRate:   100,
		TotalAmount:  1000,
		Status:       models.ContractStatusSigned,
	}
	payment := models.Payment{
		Amount:           1000,
		ServiceFee:       100,
		InstructorAmount: 900,
		Status:           models.PaymentStatusHeldInEscrow,
	}
	if err := store.CreateContract(&contract, &payment); err != nil {
		t.Fatalf("CreateContract: %v", err)
	}

	contract.Status = models.ContractStatusCompleted
	if err := store.CompleteContract(&contract); err != nil {
		t.Fatalf("CompleteContract: %v", err)
	}

	released, err := store.GetContractPayment(contract.ID)
	if err != nil {
		t.Fatalf("GetContractPayment: %v", err)
	}
	if released.Status != models.PaymentStatusReleased {
		t.Errorf("payment status = %q, want released", released.Status)
	}

	updated, err := store.GetInstructor(instructor.ID)
	if err != nil {
		t.Fatalf("GetInstructor: %v", err)
	}
	if updated.CompletedSessions != 1 {
		t.Errorf("completedSessions = %d, want 1", updated.CompletedSessions)
	}
	if updated.TotalEarnings != 900 {
		t.Errorf("totalEarnings = %v, want 900", updated.TotalEarnings)
	}
}
