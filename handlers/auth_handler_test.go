package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	register := fiber.Map{
		"email":     "jane@acme.test",
		"password":  "secret123",
		"firstName": "Jane",
		"lastName":  "Doe",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", register)
	wantStatus(t, resp, http.StatusCreated)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", register)
	wantStatus(t, resp, http.StatusConflict)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "jane@acme.test",
		"password": "wrong-password",
	})
	wantStatus(t, resp, http.StatusUnauthorized)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "jane@acme.test",
		"password": "secret123",
	})
	wantStatus(t, resp, http.StatusOK)

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &login)
	if login.Token == "" {
		t.Fatal("expected a token in the login response")
	}

	// the issued token works on a protected route
	resp = doJSON(t, app, http.MethodGet, "/api/auth/user", login.Token, nil)
	wantStatus(t, resp, http.StatusOK)

	var me struct {
		Email    string  `json:"email"`
		UserType *string `json:"userType"`
		Profile  struct {
			Kind string `json:"kind"`
		} `json:"profile"`
	}
	decodeBody(t, resp, &me)
	if me.Email != "jane@acme.test" {
		t.Errorf("email = %q", me.Email)
	}
	if me.UserType != nil {
		t.Errorf("userType should be null before setup, got %q", *me.UserType)
	}
	if me.Profile.Kind != "none" {
		t.Errorf("profile kind = %q, want none", me.Profile.Kind)
	}
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":     "not-an-email",
		"password":  "secret123",
		"firstName": "Jane",
		"lastName":  "Doe",
	})
	wantStatus(t, resp, http.StatusBadRequest)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":     "short@acme.test",
		"password":  "abc",
		"firstName": "Jane",
		"lastName":  "Doe",
	})
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/auth/user", "", nil)
	wantStatus(t, resp, http.StatusBadRequest)

	resp = doJSON(t, app, http.MethodGet, "/api/auth/user", "not.a.jwt", nil)
	wantStatus(t, resp, http.StatusUnauthorized)
}

func TestSetupUserTypeIsSetOnce(t *testing.T) {
	app, store := newTestApp(t)
	user := seedUser(t, store, "setup@acme.test")
	token := tokenFor(t, user.ID)

	resp := doJSON(t, app, http.MethodPut, "/api/user/setup", token, fiber.Map{"userType": "moderator"})
	wantStatus(t, resp, http.StatusBadRequest)

	resp = doJSON(t, app, http.MethodPut, "/api/user/setup", token, fiber.Map{"userType": "company"})
	wantStatus(t, resp, http.StatusOK)

	// same value again is a no-op
	resp = doJSON(t, app, http.MethodPut, "/api/user/setup", token, fiber.Map{"userType": "company"})
	wantStatus(t, resp, http.StatusOK)

	// switching sides is not allowed
	resp = doJSON(t, app, http.MethodPut, "/api/user/setup", token, fiber.Map{"userType": "instructor"})
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestCurrentUserIncludesCompanyProfile(t *testing.T) {
	app, store := newTestApp(t)
	user := seedUser(t, store, "owner@acme.test")
	token := tokenFor(t, user.ID)

	resp := doJSON(t, app, http.MethodPut, "/api/user/setup", token, fiber.Map{"userType": "company"})
	wantStatus(t, resp, http.StatusOK)

	resp = doJSON(t, app, http.MethodPost, "/api/companies", token, fiber.Map{"companyName": "Acme Corp"})
	wantStatus(t, resp, http.StatusCreated)

	resp = doJSON(t, app, http.MethodGet, "/api/auth/user", token, nil)
	wantStatus(t, resp, http.StatusOK)

	var me struct {
		Profile struct {
			Kind string `json:"kind"`
			Data struct {
				CompanyName string `json:"companyName"`
			} `json:"data"`
		} `json:"profile"`
	}
	decodeBody(t, resp, &me)
	if me.Profile.Kind != "company" {
		t.Errorf("profile kind = %q, want company", me.Profile.Kind)
	}
	if me.Profile.Data.CompanyName != "Acme Corp" {
		t.Errorf("profile companyName = %q", me.Profile.Data.CompanyName)
	}
}
