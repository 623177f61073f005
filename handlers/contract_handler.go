package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/payments"
	"github.com/instructormatch/instructor_match/storage"
)

type CreateContractRequest struct {
	RequestID    string  `json:"requestId" validate:"required,uuid"`
	CompanyID    string  `json:"companyId" validate:"required,uuid"`
	InstructorID string  `json:"instructorId" validate:"required,uuid"`
	AgreedRate   float64 `json:"agreedRate" validate:"required,gt=0"`
	TotalAmount  float64 `json:"totalAmount" validate:"gte=0"`
	Terms        *string `json:"terms"`
}

// CreateContract records a contract and its simulated escrow split. The
// payment row is held in escrow until the contract completes.
func (h *Handler) CreateContract(c *fiber.Ctx) error {
	var req CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	requestID, _ := uuid.Parse(req.RequestID)
	companyID, _ := uuid.Parse(req.CompanyID)
	instructorID, _ := uuid.Parse(req.InstructorID)

	contract := models.Contract{
		RequestID:    requestID,
		CompanyID:    companyID,
		InstructorID: instructorID,
		AgreedRate:   req.AgreedRate,
		TotalAmount:  req.TotalAmount,
		Terms:        req.Terms,
		Status:       models.ContractStatusDraft,
	}

	serviceFee, instructorAmount := payments.ComputeEscrowSplit(req.TotalAmount)
	now := time.Now()
	payment := models.Payment{
		Amount:           req.TotalAmount,
		ServiceFee:       serviceFee,
		InstructorAmount: instructorAmount,
		Status:           models.PaymentStatusHeldInEscrow,
		PaidAt:           &now,
	}

	if err := h.store.CreateContract(&contract, &payment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create contract"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"contract": contract,
		"payment":  payment,
	})
}

type UpdateContractRequest struct {
	Status string `json:"status" validate:"required,oneof=signed completed"`
}

// UpdateContract advances a contract draft -> signed -> completed. Completing
// releases the escrow payment and credits the instructor's session count and
// earnings.
func (h *Handler) UpdateContract(c *fiber.Ctx) error {
	contractID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid contract id"})
	}

	var req UpdateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	contract, err := h.store.GetContract(contractID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Contract not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch contract"})
	}

	now := time.Now()
	switch req.Status {
	case models.ContractStatusSigned:
		if contract.Status != models.ContractStatusDraft {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Only draft contracts can be signed"})
		}
		contract.Status = models.ContractStatusSigned
		contract.SignedAt = &now
		if err := h.store.SaveContract(contract); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update contract"})
		}
	case models.ContractStatusCompleted:
		if contract.Status != models.ContractStatusSigned {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Only signed contracts can be completed"})
		}
		contract.Status = models.ContractStatusCompleted
		contract.CompletedAt = &now
		if err := h.store.CompleteContract(contract); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to complete contract"})
		}
	}

	return c.JSON(contract)
}

// ListContracts lists by company or instructor id, newest first.
func (h *Handler) ListContracts(c *fiber.Ctx) error {
	if companyParam := c.Query("companyId"); companyParam != "" {
		companyID, err := uuid.Parse(companyParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid companyId"})
		}
		contracts, err := h.store.GetContractsByCompany(companyID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch contracts"})
		}
		return c.JSON(contracts)
	}

	if instructorParam := c.Query("instructorId"); instructorParam != "" {
		instructorID, err := uuid.Parse(instructorParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid instructorId"})
		}
		contracts, err := h.store.GetContractsByInstructor(instructorID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch contracts"})
		}
		return c.JSON(contracts)
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "companyId or instructorId required"})
}
