// Package storage persists the marketplace entities. Handlers and jobs hold a
// Storage value injected at startup; the gorm-backed implementation is used in
// production and an in-memory one backs the tests.
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/models"
)

// ErrNotFound is returned by all Get* methods when the id does not resolve.
var ErrNotFound = errors.New("record not found")

type Storage interface {
	GetUser(id uuid.UUID) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error

	CreateCompany(company *models.Company) error
	GetCompany(id uuid.UUID) (*models.Company, error)
	GetCompanyByUserID(userID uuid.UUID) (*models.Company, error)
	SaveCompany(company *models.Company) error

	CreateInstructor(instructor *models.Instructor) error
	GetInstructor(id uuid.UUID) (*models.Instructor, error)
	GetInstructorByUserID(userID uuid.UUID) (*models.Instructor, error)
	SaveInstructor(instructor *models.Instructor) error

	// GetInstructorsInBudgetRange selects verified instructors whose
	// acceptable rate range overlaps [minBudget, maxBudget], ordered by
	// rating descending.
	GetInstructorsInBudgetRange(minBudget, maxBudget float64) ([]models.Instructor, error)

	// CreateTrainingRequest inserts the request and fans out one
	// notification per eligible instructor in a single transaction.
	CreateTrainingRequest(request *models.TrainingRequest) error
	GetTrainingRequest(id uuid.UUID) (*models.TrainingRequest, error)
	GetTrainingRequestsByCompany(companyID uuid.UUID) ([]models.TrainingRequest, error)
	GetOpenTrainingRequests() ([]models.TrainingRequest, error)
	GetOpenTrainingRequestsCreatedBefore(cutoff time.Time) ([]models.TrainingRequest, error)
	SaveTrainingRequest(request *models.TrainingRequest) error

	CreateApplication(application *models.Application) error
	GetApplication(id uuid.UUID) (*models.Application, error)
	GetApplicationsByRequest(requestID uuid.UUID) ([]models.Application, error)
	GetApplicationsByInstructor(instructorID uuid.UUID) ([]models.Application, error)
	SaveApplication(application *models.Application) error

	// CreateContract persists the contract and its escrow payment atomically.
	CreateContract(contract *models.Contract, payment *models.Payment) error
	GetContract(id uuid.UUID) (*models.Contract, error)
	GetContractPayment(contractID uuid.UUID) (*models.Payment, error)
	GetContractsByCompany(companyID uuid.UUID) ([]models.Contract, error)
	GetContractsByInstructor(instructorID uuid.UUID) ([]models.Contract, error)
	SaveContract(contract *models.Contract) error

	// CompleteContract saves the completed contract, releases the escrow
	// payment and credits the instructor's session count and earnings in one
	// transaction.
	CompleteContract(contract *models.Contract) error

	// CreateReview appends the review and recomputes the reviewee
	// instructor's rating as the mean over all reviews ever received, in one
	// transaction keyed on the instructor row.
	CreateReview(review *models.Review) error
	GetReviewsByReviewee(userID uuid.UUID) ([]models.Review, error)

	// CreateNotification is a no-op when the notification carries a dedup
	// key that already exists.
	CreateNotification(notification *models.Notification) error
	GetNotification(id uuid.UUID) (*models.Notification, error)
	GetNotificationsByUser(userID uuid.UUID) ([]models.Notification, error)
	SaveNotification(notification *models.Notification) error
}
