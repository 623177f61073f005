package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/instructormatch/instructor_match/models"
)

func TestMarkNotificationRead(t *testing.T) {
	app, store := newTestApp(t)
	owner := seedUser(t, store, "owner@acme.test")
	other := seedUser(t, store, "other@acme.test")

	notification := models.Notification{
		UserID:  owner.ID,
		Title:   "New Training Opportunity",
		Message: "A request matches your rates",
		Type:    "email",
	}
	if err := store.CreateNotification(&notification); err != nil {
		t.Fatalf("CreateNotification: %v", err)
	}
	path := "/api/notifications/" + notification.ID.String() + "/read"

	resp := doJSON(t, app, http.MethodPut, path, tokenFor(t, other.ID), nil)
	wantStatus(t, resp, http.StatusForbidden)

	resp = doJSON(t, app, http.MethodPut, path, tokenFor(t, owner.ID), nil)
	wantStatus(t, resp, http.StatusOK)
	var read models.Notification
	decodeBody(t, resp, &read)
	if !read.IsRead {
		t.Error("notification was not marked read")
	}

	resp = doJSON(t, app, http.MethodPut, "/api/notifications/"+uuid.New().String()+"/read",
		tokenFor(t, owner.ID), nil)
	wantStatus(t, resp, http.StatusNotFound)

	resp = doJSON(t, app, http.MethodPut, "/api/notifications/not-a-uuid/read",
		tokenFor(t, owner.ID), nil)
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestListNotificationsIsScopedToCaller(t *testing.T) {
	app, store := newTestApp(t)
	alice := seedUser(t, store, "alice@acme.test")
	bob := seedUser(t, store, "bob@acme.test")

	for _, userID := range []uuid.UUID{alice.ID, alice.ID, bob.ID} {
		err := store.CreateNotification(&models.Notification{
			UserID:  userID,
			Title:   "Reminder",
			Message: "m",
			Type:    "reminder",
		})
		if err != nil {
			t.Fatalf("CreateNotification: %v", err)
		}
	}

	resp := doJSON(t, app, http.MethodGet, "/api/notifications", tokenFor(t, alice.ID), nil)
	wantStatus(t, resp, http.StatusOK)
	var got []models.Notification
	decodeBody(t, resp, &got)
	if len(got) != 2 {
		t.Errorf("alice: expected 2 notifications, got %d", len(got))
	}
}
