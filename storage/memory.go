package storage

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/notifications"
)

// MemoryStorage is an in-memory Storage used by the test suite and for
// running the service without a configured database. Rows are kept in
// insertion order; "newest first" listings walk the slices backwards.
type MemoryStorage struct {
	mu sync.Mutex

	users         []models.User
	companies     []models.Company
	instructors   []models.Instructor
	requests      []models.TrainingRequest
	applications  []models.Application
	contracts     []models.Contract
	payments      []models.Payment
	reviews       []models.Review
	notifications []models.Notification

	dedupKeys map[string]bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{dedupKeys: make(map[string]bool)}
}

func stamp(id *uuid.UUID, createdAt, updatedAt *time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt != nil {
		*updatedAt = now
	}
}

func (s *MemoryStorage) GetUser(id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStorage) SaveUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			s.users[i] = *user
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) CreateCompany(company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	s.companies = append(s.companies, *company)
	return nil
}

func (s *MemoryStorage) GetCompany(id uuid.UUID) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findCompany(func(c *models.Company) bool { return c.ID == id })
}

func (s *MemoryStorage) GetCompanyByUserID(userID uuid.UUID) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findCompany(func(c *models.Company) bool { return c.UserID == userID })
}

func (s *MemoryStorage) findCompany(match func(*models.Company) bool) (*models.Company, error) {
	for i := range s.companies {
		if match(&s.companies[i]) {
			company := s.companies[i]
			return &company, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) SaveCompany(company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.companies {
		if s.companies[i].ID == company.ID {
			company.UpdatedAt = time.Now()
			s.companies[i] = *company
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) CreateInstructor(instructor *models.Instructor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&instructor.ID, &instructor.CreatedAt, &instructor.UpdatedAt)
	s.instructors = append(s.instructors, *instructor)
	return nil
}

func (s *MemoryStorage) GetInstructor(id uuid.UUID) (*models.Instructor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findInstructor(func(i *models.Instructor) bool { return i.ID == id })
}

func (s *MemoryStorage) GetInstructorByUserID(userID uuid.UUID) (*models.Instructor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findInstructor(func(i *models.Instructor) bool { return i.UserID == userID })
}

func (s *MemoryStorage) findInstructor(match func(*models.Instructor) bool) (*models.Instructor, error) {
	for i := range s.instructors {
		if match(&s.instructors[i]) {
			instructor := s.instructors[i]
			return &instructor, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) SaveInstructor(instructor *models.Instructor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.instructors {
		if s.instructors[i].ID == instructor.ID {
			instructor.UpdatedAt = time.Now()
			s.instructors[i] = *instructor
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) GetInstructorsInBudgetRange(minBudget, maxBudget float64) ([]models.Instructor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eligibleInstructors(minBudget, maxBudget), nil
}

func (s *MemoryStorage) eligibleInstructors(minBudget, maxBudget float64) []models.Instructor {
	matched := []models.Instructor{}
	for _, instructor := range s.instructors {
		if instructor.MatchesBudget(minBudget, maxBudget) {
			matched = append(matched, instructor)
		}
	}
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].Rating > matched[b].Rating
	})
	return matched
}

func (s *MemoryStorage) CreateTrainingRequest(request *models.TrainingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if request.Status == "" {
		request.Status = models.RequestStatusOpen
	}
	s.requests = append(s.requests, *request)

	now := time.Now()
	for _, instructor := range s.eligibleInstructors(request.MinBudget, request.MaxBudget) {
		title, message := notifications.TrainingOpportunity(request.Title)
		key := notifications.MatchDedupKey(request.ID, instructor.ID)
		s.appendNotification(models.Notification{
			UserID:   instructor.UserID,
			Title:    title,
			Message:  message,
			Type:     notifications.TypeEmail,
			DedupKey: &key,
			SentAt:   &now,
		})
	}
	return nil
}

func (s *MemoryStorage) GetTrainingRequest(id uuid.UUID) (*models.TrainingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			request := s.requests[i]
			return &request, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetTrainingRequestsByCompany(companyID uuid.UUID) ([]models.TrainingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectRequests(func(r *models.TrainingRequest) bool { return r.CompanyID == companyID }), nil
}

func (s *MemoryStorage) GetOpenTrainingRequests() ([]models.TrainingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectRequests(func(r *models.TrainingRequest) bool { return r.Status == models.RequestStatusOpen }), nil
}

func (s *MemoryStorage) GetOpenTrainingRequestsCreatedBefore(cutoff time.Time) ([]models.TrainingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	requests := s.selectRequests(func(r *models.TrainingRequest) bool {
		return r.Status == models.RequestStatusOpen && r.CreatedAt.Before(cutoff)
	})
	for i := range requests {
		if company, err := s.findCompany(func(c *models.Company) bool { return c.ID == requests[i].CompanyID }); err == nil {
			requests[i].Company = *company
		}
	}
	return requests, nil
}

func (s *MemoryStorage) selectRequests(match func(*models.TrainingRequest) bool) []models.TrainingRequest {
	selected := []models.TrainingRequest{}
	for i := len(s.requests) - 1; i >= 0; i-- {
		if match(&s.requests[i]) {
			selected = append(selected, s.requests[i])
		}
	}
	return selected
}

func (s *MemoryStorage) SaveTrainingRequest(request *models.TrainingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == request.ID {
			request.UpdatedAt = time.Now()
			s.requests[i] = *request
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) CreateApplication(application *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if application.Status == "" {
		application.Status = models.ApplicationStatusPending
	}
	s.applications = append(s.applications, *application)
	return nil
}

func (s *MemoryStorage) GetApplication(id uuid.UUID) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.applications {
		if s.applications[i].ID == id {
			application := s.applications[i]
			return &application, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetApplicationsByRequest(requestID uuid.UUID) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected := []models.Application{}
	for i := len(s.applications) - 1; i >= 0; i-- {
		if s.applications[i].RequestID == requestID {
			application := s.applications[i]
			if instructor, err := s.findInstructor(func(in *models.Instructor) bool { return in.ID == application.InstructorID }); err == nil {
				application.Instructor = *instructor
			}
			selected = append(selected, application)
		}
	}
	return selected, nil
}

func (s *MemoryStorage) GetApplicationsByInstructor(instructorID uuid.UUID) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected := []models.Application{}
	for i := len(s.applications) - 1; i >= 0; i-- {
		if s.applications[i].InstructorID == instructorID {
			application := s.applications[i]
			for j := range s.requests {
				if s.requests[j].ID == application.RequestID {
					application.Request = s.requests[j]
					break
				}
			}
			selected = append(selected, application)
		}
	}
	return selected, nil
}

func (s *MemoryStorage) SaveApplication(application *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.applications {
		if s.applications[i].ID == application.ID {
			application.UpdatedAt = time.Now()
			s.applications[i] = *application
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) CreateContract(contract *models.Contract, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&contract.ID, &contract.CreatedAt, &contract.UpdatedAt)
	if contract.Status == "" {
		contract.Status = models.ContractStatusDraft
	}
	s.contracts = append(s.contracts, *contract)

	payment.ContractID = contract.ID
	stamp(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if payment.Status == "" {
		payment.Status = models.PaymentStatusHeldInEscrow
	}
	s.payments = append(s.payments, *payment)
	return nil
}

func (s *MemoryStorage) GetContract(id uuid.UUID) (*models.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			contract := s.contracts[i]
			return &contract, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetContractPayment(contractID uuid.UUID) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ContractID == contractID {
			payment := s.payments[i]
			return &payment, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetContractsByCompany(companyID uuid.UUID) ([]models.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectContracts(func(c *models.Contract) bool { return c.CompanyID == companyID }), nil
}

func (s *MemoryStorage) GetContractsByInstructor(instructorID uuid.UUID) ([]models.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectContracts(func(c *models.Contract) bool { return c.InstructorID == instructorID }), nil
}

func (s *MemoryStorage) selectContracts(match func(*models.Contract) bool) []models.Contract {
	selected := []models.Contract{}
	for i := len(s.contracts) - 1; i >= 0; i-- {
		if match(&s.contracts[i]) {
			selected = append(selected, s.contracts[i])
		}
	}
	return selected
}

func (s *MemoryStorage) SaveContract(contract *models.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveContractLocked(contract)
}

func (s *MemoryStorage) saveContractLocked(contract *models.Contract) error {
	for i := range s.contracts {
		if s.contracts[i].ID == contract.ID {
			contract.UpdatedAt = time.Now()
			s.contracts[i] = *contract
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) CompleteContract(contract *models.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveContractLocked(contract); err != nil {
		return err
	}

	var payment *models.Payment
	for i := range s.payments {
		if s.payments[i].ContractID == contract.ID {
			payment = &s.payments[i]
			break
		}
	}
	if payment == nil {
		return ErrNotFound
	}
	now := time.Now()
	payment.Status = models.PaymentStatusReleased
	payment.ReleasedAt = &now

	for i := range s.instructors {
		if s.instructors[i].ID == contract.InstructorID {
			s.instructors[i].CompletedSessions++
			s.instructors[i].TotalEarnings += payment.InstructorAmount
			break
		}
	}
	return nil
}

func (s *MemoryStorage) CreateReview(review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	s.reviews = append(s.reviews, *review)

	for i := range s.instructors {
		if s.instructors[i].UserID == review.RevieweeID {
			var sum, count float64
			for _, r := range s.reviews {
				if r.RevieweeID == review.RevieweeID {
					sum += float64(r.Rating)
					count++
				}
			}
			s.instructors[i].Rating = math.Round(sum/count*100) / 100
			break
		}
	}
	return nil
}

func (s *MemoryStorage) GetReviewsByReviewee(userID uuid.UUID) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected := []models.Review{}
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if s.reviews[i].RevieweeID == userID {
			selected = append(selected, s.reviews[i])
		}
	}
	return selected, nil
}

func (s *MemoryStorage) CreateNotification(notification *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendNotification(*notification)
	return nil
}

func (s *MemoryStorage) appendNotification(notification models.Notification) {
	if notification.DedupKey != nil {
		if s.dedupKeys[*notification.DedupKey] {
			return
		}
		s.dedupKeys[*notification.DedupKey] = true
	}
	stamp(&notification.ID, &notification.CreatedAt, nil)
	s.notifications = append(s.notifications, notification)
}

func (s *MemoryStorage) GetNotification(id uuid.UUID) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			notification := s.notifications[i]
			return &notification, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetNotificationsByUser(userID uuid.UUID) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected := []models.Notification{}
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].UserID == userID {
			selected = append(selected, s.notifications[i])
		}
	}
	return selected, nil
}

func (s *MemoryStorage) SaveNotification(notification *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == notification.ID {
			s.notifications[i] = *notification
			return nil
		}
	}
	return ErrNotFound
}
