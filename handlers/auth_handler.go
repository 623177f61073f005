package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/instructormatch/instructor_match/configs"
	"github.com/instructormatch/instructor_match/middleware"
	"github.com/instructormatch/instructor_match/models"
	"github.com/instructormatch/instructor_match/storage"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileView is the tagged union attached to the current-user payload:
// exactly one of company, instructor or none, depending on userType.
type ProfileView struct {
	Kind string      `json:"kind"`
	Data interface{} `json:"data,omitempty"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if _, err := h.store.GetUserByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already exists"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to hash password"})
	}

	user := models.User{
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.store.CreateUser(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": signed})
}

// CurrentUser returns the authenticated user plus the profile for their side
// of the marketplace.
func (h *Handler) CurrentUser(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	user, err := h.store.GetUser(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch user"})
	}

	profile := ProfileView{Kind: "none"}
	if user.UserType != nil {
		switch *user.UserType {
		case models.UserTypeCompany:
			if company, err := h.store.GetCompanyByUserID(userID); err == nil {
				profile = ProfileView{Kind: models.UserTypeCompany, Data: company}
			}
		case models.UserTypeInstructor:
			if instructor, err := h.store.GetInstructorByUserID(userID); err == nil {
				profile = ProfileView{Kind: models.UserTypeInstructor, Data: instructor}
			}
		}
	}

	return c.JSON(fiber.Map{
		"id":              user.ID,
		"email":           user.Email,
		"firstName":       user.FirstName,
		"lastName":        user.LastName,
		"profileImageUrl": user.ProfileImageURL,
		"userType":        user.UserType,
		"createdAt":       user.CreatedAt,
		"profile":         profile,
	})
}

type SetupRequest struct {
	UserType string `json:"userType" validate:"required,oneof=company instructor"`
}

// SetupUserType sets the user's marketplace side. It may be set at most once;
// re-asserting the same value is a no-op.
func (h *Handler) SetupUserType(c *fiber.Ctx) error {
	userID := middleware.SubjectID(c)

	var req SetupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user type"})
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	if user.UserType != nil {
		if *user.UserType == req.UserType {
			return c.JSON(user)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User type already set"})
	}

	user.UserType = &req.UserType
	if err := h.store.SaveUser(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to setup user"})
	}

	return c.JSON(user)
}
