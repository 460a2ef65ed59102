package rider

import (
	"testing"

	"parcel-delivery/constants"
	riderModel "parcel-delivery/models/rider"
	userModel "parcel-delivery/models/user"
	"parcel-delivery/repository/memory"
	"parcel-delivery/types"
	riderTypes "parcel-delivery/types/rider"
)

func setupService() (*Service, *memory.RiderRepository, *memory.UserRepository) {
	users := memory.NewUserRepository()
	riders := memory.NewRiderRepository(users)
	return NewService(riders, users), riders, users
}

func TestRegister_StartsPending(t *testing.T) {
	s, _, _ := setupService()

	rd, err := s.Register(riderTypes.RiderRegisterRequest{Name: "Karim", Email: "karim@example.com", District: "Dhaka"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if rd.Status != riderModel.StatusPending {
		t.Errorf("Expected pending, got %s", rd.Status)
	}
	if rd.WorkStatus != riderModel.WorkStatusAvailable {
		t.Errorf("Expected available, got %s", rd.WorkStatus)
	}
}

func TestRegister_Validation(t *testing.T) {
	s, _, _ := setupService()

	if _, err := s.Register(riderTypes.RiderRegisterRequest{Name: "Karim"}); types.StatusOf(err) != 400 {
		t.Errorf("Expected validation error for missing email, got %v", err)
	}
}

func TestSetStatus_ApprovePromotesUser(t *testing.T) {
	s, _, users := setupService()

	u := &userModel.User{Email: "karim@example.com", Role: constants.RoleUser}
	if err := users.Create(u); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	rd, err := s.Register(riderTypes.RiderRegisterRequest{Name: "Karim", Email: "karim@example.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	approved, err := s.SetStatus(rd.ID, riderModel.StatusActive, "karim@example.com")
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if approved.Status != riderModel.StatusActive {
		t.Errorf("Expected active, got %s", approved.Status)
	}

	gotUser, _ := users.GetByEmail("karim@example.com")
	if gotUser.Role != constants.RoleRider {
		t.Errorf("Expected user promoted to rider, got %s", gotUser.Role)
	}
}

func TestSetStatus_ApproveWithoutUserFails(t *testing.T) {
	s, riders, _ := setupService()

	rd, err := s.Register(riderTypes.RiderRegisterRequest{Name: "Karim", Email: "ghost@example.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = s.SetStatus(rd.ID, riderModel.StatusActive, "")
	if types.StatusOf(err) != 404 {
		t.Errorf("Expected not found for missing user, got %v", err)
	}
	got, _ := riders.GetByID(rd.ID)
	if got.Status != riderModel.StatusPending {
		t.Error("Rider status must be unchanged when the promotion target is missing")
	}
}

func TestSetStatus_NoPartialApplication(t *testing.T) {
	s, riders, users := setupService()

	u := &userModel.User{Email: "karim@example.com", Role: constants.RoleUser}
	if err := users.Create(u); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	rd, err := s.Register(riderTypes.RiderRegisterRequest{Name: "Karim", Email: "karim@example.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	riders.FailUserWrite = true
	if _, err := s.SetStatus(rd.ID, riderModel.StatusActive, ""); err == nil {
		t.Fatal("Expected SetStatus to fail")
	}

	gotRider, _ := riders.GetByID(rd.ID)
	if gotRider.Status != riderModel.StatusPending {
		t.Error("Rider must stay pending after a failed compound update")
	}
	gotUser, _ := users.GetByEmail("karim@example.com")
	if gotUser.Role != constants.RoleUser {
		t.Error("User must keep its role after a failed compound update")
	}
}

func TestSetStatus_Reject(t *testing.T) {
	s, _, _ := setupService()

	rd, err := s.Register(riderTypes.RiderRegisterRequest{Name: "Karim", Email: "karim@example.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rejected, err := s.SetStatus(rd.ID, riderModel.StatusRejected, "")
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if rejected.Status != riderModel.StatusRejected {
		t.Errorf("Expected rejected, got %s", rejected.Status)
	}
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	s, _, _ := setupService()

	if _, err := s.SetStatus(1, "fired", ""); types.StatusOf(err) != 400 {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestListAvailable_FiltersDistrict(t *testing.T) {
	s, riders, _ := setupService()

	seed := []riderModel.Rider{
		{Name: "A", Email: "a@r.com", District: "Dhaka", Status: riderModel.StatusActive, WorkStatus: riderModel.WorkStatusAvailable},
		{Name: "B", Email: "b@r.com", District: "Dhaka", Status: riderModel.StatusActive, WorkStatus: riderModel.WorkStatusInDelivery},
		{Name: "C", Email: "c@r.com", District: "Sylhet", Status: riderModel.StatusActive, WorkStatus: riderModel.WorkStatusAvailable},
		{Name: "D", Email: "d@r.com", District: "Dhaka", Status: riderModel.StatusPending, WorkStatus: riderModel.WorkStatusAvailable},
	}
	for i := range seed {
		if err := riders.Create(&seed[i]); err != nil {
			t.Fatalf("seed rider failed: %v", err)
		}
	}

	got, err := s.ListAvailable("Dhaka")
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	if len(got) != 1 || got[0].Email != "a@r.com" {
		t.Errorf("Expected only the free active Dhaka rider, got %v", got)
	}
}
