package storage

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/notifications"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStorage) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStorage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *GormStorage) SaveUser(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *GormStorage) CreateCompany(company *models.Company) error {
	return s.db.Create(company).Error
}

func (s *GormStorage) GetCompany(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (s *GormStorage) GetCompanyByUserID(userID uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (s *GormStorage) SaveCompany(company *models.Company) error {
	return s.db.Save(company).Error
}

func (s *GormStorage) CreateInstructor(instructor *models.Instructor) error {
	return s.db.Create(instructor).Error
}

func (s *GormStorage) GetInstructor(id uuid.UUID) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := s.db.First(&instructor, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &instructor, nil
}

func (s *GormStorage) GetInstructorByUserID(userID uuid.UUID) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := s.db.First(&instructor, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &instructor, nil
}

func (s *GormStorage) SaveInstructor(instructor *models.Instructor) error {
	return s.db.Save(instructor).Error
}

func (s *GormStorage) GetInstructorsInBudgetRange(minBudget, maxBudget float64) ([]models.Instructor, error) {
	var instructors []models.Instructor
	err := s.db.
		Where("is_verified = ? AND min_hourly_rate <= ? AND desired_hourly_rate >= ?", true, maxBudget, minBudget).
		Order("rating desc").
		Find(&instructors).Error
	return instructors, err
}

func (s *GormStorage) CreateTrainingRequest(request *models.TrainingRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(request).Error; err != nil {
			return err
		}

		var eligible []models.Instructor
		if err := tx.
			Where("is_verified = ? AND min_hourly_rate <= ? AND desired_hourly_rate >= ?", true, request.MaxBudget, request.MinBudget).
			Order("rating desc").
			Find(&eligible).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, instructor := range eligible {
			title, message := notifications.TrainingOpportunity(request.Title)
			key := notifications.MatchDedupKey(request.ID, instructor.ID)
			notification := models.Notification{
				UserID:   instructor.UserID,
				Title:    title,
				Message:  message,
				Type:     notifications.TypeEmail,
				DedupKey: &key,
				SentAt:   &now,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "dedup_key"}},
				DoNothing: true,
			}).Create(&notification).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStorage) GetTrainingRequest(id uuid.UUID) (*models.TrainingRequest, error) {
	var request models.TrainingRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &request, nil
}

func (s *GormStorage) GetTrainingRequestsByCompany(companyID uuid.UUID) ([]models.TrainingRequest, error) {
	var requests []models.TrainingRequest
	err := s.db.
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&requests).Error
	return requests, err
}

func (s *GormStorage) GetOpenTrainingRequests() ([]models.TrainingRequest, error) {
	var requests []models.TrainingRequest
	err := s.db.
		Where("status = ?", models.RequestStatusOpen).
		Order("created_at desc").
		Find(&requests).Error
	return requests, err
}

func (s *GormStorage) GetOpenTrainingRequestsCreatedBefore(cutoff time.Time) ([]models.TrainingRequest, error) {
	var requests []models.TrainingRequest
	err := s.db.
		Preload("Company").
		Where("status = ? AND created_at < ?", models.RequestStatusOpen, cutoff).
		Order("created_at desc").
		Find(&requests).Error
	return requests, err
}

func (s *GormStorage) SaveTrainingRequest(request *models.TrainingRequest) error {
	return s.db.Save(request).Error
}

func (s *GormStorage) CreateApplication(application *models.Application) error {
	return s.db.Create(application).Error
}

func (s *GormStorage) GetApplication(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	if err := s.db.First(&application, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &application, nil
}

func (s *GormStorage) GetApplicationsByRequest(requestID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := s.db.
		Preload("Instructor").
		Where("request_id = ?", requestID).
		Order("created_at desc").
		Find(&applications).Error
	return applications, err
}

func (s *GormStorage) GetApplicationsByInstructor(instructorID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := s.db.
		Preload("Request").
		Where("instructor_id = ?", instructorID).
		Order("created_at desc").
		Find(&applications).Error
	return applications, err
}

func (s *GormStorage) SaveApplication(application *models.Application) error {
	return s.db.Save(application).Error
}

func (s *GormStorage) CreateContract(contract *models.Contract, payment *models.Payment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contract).Error; err != nil {
			return err
		}
		payment.ContractID = contract.ID
		return tx.Create(payment).Error
	})
}

func (s *GormStorage) GetContract(id uuid.UUID) (*models.Contract, error) {
	var contract models.Contract
	if err := s.db.First(&contract, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &contract, nil
}

func (s *GormStorage) GetContractPayment(contractID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, "contract_id = ?", contractID).Error; err != nil {
		return nil, translate(err)
	}
	return &payment, nil
}

func (s *GormStorage) GetContractsByCompany(companyID uuid.UUID) ([]models.Contract, error) {
	var contracts []models.Contract
	err := s.db.
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&contracts).Error
	return contracts, err
}

func (s *GormStorage) GetContractsByInstructor(instructorID uuid.UUID) ([]models.Contract, error) {
	var contracts []models.Contract
	err := s.db.
		Where("instructor_id = ?", instructorID).
		Order("created_at desc").
		Find(&contracts).Error
	return contracts, err
}

func (s *GormStorage) SaveContract(contract *models.Contract) error {
	return s.db.Save(contract).Error
}

func (s *GormStorage) CompleteContract(contract *models.Contract) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(contract).Error; err != nil {
			return err
		}

		var payment models.Payment
		if err := tx.First(&payment, "contract_id = ?", contract.ID).Error; err != nil {
			return translate(err)
		}
		now := time.Now()
		payment.Status = models.PaymentStatusReleased
		payment.ReleasedAt = &now
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		return tx.Model(&models.Instructor{}).
			Where("id = ?", contract.InstructorID).
			Updates(map[string]interface{}{
				"completed_sessions": gorm.Expr("completed_sessions + 1"),
				"total_earnings":     gorm.Expr("total_earnings + ?", payment.InstructorAmount),
			}).Error
	})
}

func (s *GormStorage) CreateReview(review *models.Review) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		var instructor models.Instructor
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&instructor, "user_id = ?", review.RevieweeID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Reviewee is not an instructor; nothing to recompute.
			return nil
		}
		if err != nil {
			return err
		}

		var result struct{ Avg float64 }
		if err := tx.Model(&models.Review{}).
			Where("reviewee_id = ?", review.RevieweeID).
			Select("avg(rating) as avg").
			Scan(&result).Error; err != nil {
			return err
		}

		rating := math.Round(result.Avg*100) / 100
		return tx.Model(&instructor).Update("rating", rating).Error
	})
}

func (s *GormStorage) GetReviewsByReviewee(userID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Where("reviewee_id = ?", userID).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

func (s *GormStorage) CreateNotification(notification *models.Notification) error {
	if notification.DedupKey != nil {
		return s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dedup_key"}},
			DoNothing: true,
		}).Create(notification).Error
	}
	return s.db.Create(notification).Error
}

func (s *GormStorage) GetNotification(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &notification, nil
}

func (s *GormStorage) GetNotificationsByUser(userID uuid.UUID) ([]models.Notification, error) {
	var list []models.Notification
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (s *GormStorage) SaveNotification(notification *models.Notification) error {
	return s.db.Save(notification).Error
}
