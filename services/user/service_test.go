package user

import (
	"testing"
	"time"

	"parcel-delivery/constants"
	"parcel-delivery/repository/memory"
	"parcel-delivery/types"
)

func setupService() (*Service, *memory.UserRepository) {
	users := memory.NewUserRepository()
	return NewService(users), users
}

func TestUpsert_CreatesOnFirstLogin(t *testing.T) {
	s, _ := setupService()

	u, created, err := s.Upsert("mina@example.com", "Mina")
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if !created {
		t.Error("Expected first login to create the user")
	}
	if u.Role != constants.RoleUser {
		t.Errorf("Expected default role user, got %s", u.Role)
	}
	if u.LastLogInAt.IsZero() {
		t.Error("Expected a last-login timestamp")
	}
}

func TestUpsert_RefreshesExistingUser(t *testing.T) {
	s, users := setupService()

	first, _, err := s.Upsert("mina@example.com", "Mina")
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	time.Sleep(time.Millisecond)
	second, created, err := s.Upsert("mina@example.com", "Other Name")
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	if created {
		t.Error("Expected second login to reuse the existing user")
	}
	if second.ID != first.ID {
		t.Errorf("Expected same user id, got %d and %d", first.ID, second.ID)
	}
	if second.DisplayName != "Mina" {
		t.Errorf("Display name must not be overwritten on login, got %s", second.DisplayName)
	}
	if !second.LastLogInAt.After(first.LastLogInAt) {
		t.Error("Expected last-login timestamp to move forward")
	}

	all, _ := users.Search("mina", 10)
	if len(all) != 1 {
		t.Errorf("Expected one stored user, got %d", len(all))
	}
}

func TestUpsert_RequiresEmail(t *testing.T) {
	s, _ := setupService()

	if _, _, err := s.Upsert("", "Mina"); types.StatusOf(err) != 400 {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestRoleOf_DefaultsToUser(t *testing.T) {
	s, _ := setupService()

	role, err := s.RoleOf("nobody@example.com")
	if err != nil {
		t.Fatalf("RoleOf failed: %v", err)
	}
	if role != constants.RoleUser {
		t.Errorf("Expected user for unknown email, got %s", role)
	}
}

func TestSetRole(t *testing.T) {
	s, _ := setupService()

	u, _, err := s.Upsert("mina@example.com", "Mina")
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	updated, err := s.SetRole(u.ID, constants.RoleAdmin)
	if err != nil {
		t.Fatalf("SetRole failed: %v", err)
	}
	if updated.Role != constants.RoleAdmin {
		t.Errorf("Expected admin, got %s", updated.Role)
	}

	role, _ := s.RoleOf("mina@example.com")
	if role != constants.RoleAdmin {
		t.Errorf("Expected persisted admin role, got %s", role)
	}
}

func TestSetRole_UnknownRole(t *testing.T) {
	s, _ := setupService()

	if _, err := s.SetRole(1, "superuser"); types.StatusOf(err) != 400 {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestSetRole_MissingUser(t *testing.T) {
	s, _ := setupService()

	if _, err := s.SetRole(99, constants.RoleAdmin); types.StatusOf(err) != 404 {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	s, _ := setupService()

	for _, email := range []string{"alpha@example.com", "beta@example.com", "ALPHA2@example.com"} {
		if _, _, err := s.Upsert(email, ""); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	got, err := s.Search("alpha")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 case-insensitive matches, got %d", len(got))
	}
	if got[0].Email != "ALPHA2@example.com" {
		t.Errorf("Expected newest match first, got %s", got[0].Email)
	}

	if _, err := s.Search(""); types.StatusOf(err) != 400 {
		t.Errorf("Expected validation error for empty query, got %v", err)
	}
}
