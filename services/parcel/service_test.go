package parcel

import (
	"testing"

	parcelModel "parcel-delivery/models/parcel"
	riderModel "parcel-delivery/models/rider"
	"parcel-delivery/repository"
	"parcel-delivery/repository/memory"
	"parcel-delivery/types"
	parcelTypes "parcel-delivery/types/parcel"
)

func setupService() (*Service, *memory.ParcelRepository, *memory.RiderRepository, *memory.TrackingRepository) {
	users := memory.NewUserRepository()
	riders := memory.NewRiderRepository(users)
	parcels := memory.NewParcelRepository(riders)
	tracking := memory.NewTrackingRepository()
	return NewService(parcels, riders, tracking), parcels, riders, tracking
}

func activeRider(t *testing.T, riders *memory.RiderRepository) *riderModel.Rider {
	t.Helper()
	rd := &riderModel.Rider{
		Name:       "Karim",
		Email:      "karim@example.com",
		District:   "Dhaka",
		Status:     riderModel.StatusActive,
		WorkStatus: riderModel.WorkStatusAvailable,
	}
	if err := riders.Create(rd); err != nil {
		t.Fatalf("Create rider failed: %v", err)
	}
	return rd
}

func createParcel(t *testing.T, s *Service, owner string) *parcelModel.Parcel {
	t.Helper()
	p, err := s.Create(parcelTypes.ParcelCreateRequest{
		Title:        "Books",
		SenderName:   "Alice",
		ReceiverName: "Bob",
		CreatedBy:    owner,
		Cost:         120,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return p
}

func TestCreateParcel_InitialState(t *testing.T) {
	s, _, _, tracking := setupService()

	p := createParcel(t, s, "a@x.com")

	if p.DeliveryStatus != parcelModel.DeliveryStatusCreated {
		t.Errorf("Expected delivery status created, got %s", p.DeliveryStatus)
	}
	if p.PaymentStatus != parcelModel.PaymentStatusUnpaid {
		t.Errorf("Expected payment status unpaid, got %s", p.PaymentStatus)
	}
	if p.CashoutStatus != parcelModel.CashoutStatusNotCashedOut {
		t.Errorf("Expected cashout status not_cashed_out, got %s", p.CashoutStatus)
	}
	if p.TrackingID == "" {
		t.Error("Expected tracking id to be generated")
	}
	if p.ID == 0 {
		t.Error("Expected storage-assigned id")
	}

	events, _ := tracking.ListByTrackingID(p.TrackingID)
	if len(events) != 1 || events[0].Status != parcelModel.DeliveryStatusCreated {
		t.Errorf("Expected one created event, got %v", events)
	}
}

func TestCreateParcel_Validation(t *testing.T) {
	s, _, _, _ := setupService()

	_, err := s.Create(parcelTypes.ParcelCreateRequest{SenderName: "A", ReceiverName: "B", CreatedBy: "a@x.com"})
	if types.StatusOf(err) != 400 {
		t.Errorf("Expected validation error for missing title, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	s, _, _, _ := setupService()

	_, err := s.Get(99)
	if types.StatusOf(err) != 404 {
		t.Errorf("Expected not found, got %v", err)
	}
}

func TestAssignRider(t *testing.T) {
	s, _, riders, _ := setupService()
	rd := activeRider(t, riders)
	p := createParcel(t, s, "a@x.com")

	updated, err := s.AssignRider(p.ID, rd.ID)
	if err != nil {
		t.Fatalf("AssignRider failed: %v", err)
	}

	if updated.DeliveryStatus != parcelModel.DeliveryStatusRiderAssigned {
		t.Errorf("Expected status rider_assigned, got %s", updated.DeliveryStatus)
	}
	if updated.AssignedRiderEmail == nil || *updated.AssignedRiderEmail != rd.Email {
		t.Error("Expected rider email to be set on the parcel")
	}

	got, _ := riders.GetByID(rd.ID)
	if got.WorkStatus != riderModel.WorkStatusInDelivery {
		t.Errorf("Expected rider work status in_delivery, got %s", got.WorkStatus)
	}
}

func TestAssignRider_RiderBusy(t *testing.T) {
	s, _, riders, _ := setupService()
	rd := activeRider(t, riders)
	p1 := createParcel(t, s, "a@x.com")
	p2 := createParcel(t, s, "a@x.com")

	if _, err := s.AssignRider(p1.ID, rd.ID); err != nil {
		t.Fatalf("first AssignRider failed: %v", err)
	}
	_, err := s.AssignRider(p2.ID, rd.ID)
	if types.StatusOf(err) != 409 {
		t.Errorf("Expected conflict for busy rider, got %v", err)
	}
}

func TestAssignRider_NoPartialApplication(t *testing.T) {
	s, parcels, riders, _ := setupService()
	rd := activeRider(t, riders)
	p := createParcel(t, s, "a@x.com")

	parcels.FailRiderWrite = true
	if _, err := s.AssignRider(p.ID, rd.ID); err == nil {
		t.Fatal("Expected AssignRider to fail")
	}

	got, _ := parcels.GetByID(p.ID)
	if got.DeliveryStatus != parcelModel.DeliveryStatusCreated || got.AssignedRiderID != nil {
		t.Error("Parcel must be unchanged after a failed compound update")
	}
	gotRider, _ := riders.GetByID(rd.ID)
	if gotRider.WorkStatus != riderModel.WorkStatusAvailable {
		t.Error("Rider must stay available after a failed compound update")
	}
}

func TestUpdateDeliveryStatus_Timestamps(t *testing.T) {
	s, _, riders, _ := setupService()
	rd := activeRider(t, riders)
	p := createParcel(t, s, "a@x.com")
	if _, err := s.AssignRider(p.ID, rd.ID); err != nil {
		t.Fatalf("AssignRider failed: %v", err)
	}

	updated, err := s.UpdateDeliveryStatus(p.ID, parcelModel.DeliveryStatusInTransit, rd.Email)
	if err != nil {
		t.Fatalf("UpdateDeliveryStatus failed: %v", err)
	}
	if updated.PickedAt == nil {
		t.Error("Expected picked_at to be stamped on in_transit")
	}
	if updated.DeliveredAt != nil {
		t.Error("Expected delivered_at to stay unset on in_transit")
	}

	updated, err = s.UpdateDeliveryStatus(p.ID, parcelModel.DeliveryStatusDelivered, rd.Email)
	if err != nil {
		t.Fatalf("UpdateDeliveryStatus failed: %v", err)
	}
	if updated.DeliveredAt == nil {
		t.Error("Expected delivered_at to be stamped on delivered")
	}

	gotRider, _ := riders.GetByID(rd.ID)
	if gotRider.WorkStatus != riderModel.WorkStatusAvailable {
		t.Errorf("Expected rider released on delivered, got %s", gotRider.WorkStatus)
	}
}

func TestUpdateDeliveryStatus_UnknownStatus(t *testing.T) {
	s, _, _, _ := setupService()
	p := createParcel(t, s, "a@x.com")

	_, err := s.UpdateDeliveryStatus(p.ID, "lost_in_space", "")
	if types.StatusOf(err) != 400 {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestCashOut_OneTime(t *testing.T) {
	s, _, _, _ := setupService()
	p := createParcel(t, s, "a@x.com")

	first, err := s.CashOut(p.ID)
	if err != nil {
		t.Fatalf("CashOut failed: %v", err)
	}
	if first.CashoutStatus != parcelModel.CashoutStatusCashedOut || first.CashedOutAt == nil {
		t.Error("Expected cashed_out with timestamp")
	}

	_, err = s.CashOut(p.ID)
	if types.StatusOf(err) != 409 {
		t.Errorf("Expected conflict on second cashout, got %v", err)
	}

	got, _ := s.Get(p.ID)
	if !got.CashedOutAt.Equal(*first.CashedOutAt) {
		t.Error("Second cashout must not re-stamp cashed_out_at")
	}
}

func TestList_FilterByOwnerNewestFirst(t *testing.T) {
	s, _, _, _ := setupService()
	createParcel(t, s, "a@x.com")
	second := createParcel(t, s, "a@x.com")
	createParcel(t, s, "b@y.com")

	parcels, err := s.List(repository.ParcelFilter{CreatedBy: "a@x.com"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(parcels) != 2 {
		t.Fatalf("Expected 2 parcels, got %d", len(parcels))
	}
	for _, p := range parcels {
		if p.CreatedBy != "a@x.com" {
			t.Errorf("Expected only a@x.com parcels, got %s", p.CreatedBy)
		}
	}
	if parcels[0].ID != second.ID {
		t.Error("Expected newest parcel first")
	}
}

func TestDelete(t *testing.T) {
	s, _, _, _ := setupService()
	p := createParcel(t, s, "a@x.com")

	if err := s.Delete(p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(p.ID); types.StatusOf(err) != 404 {
		t.Errorf("Expected not found on second delete, got %v", err)
	}
}

func TestStatusCounts(t *testing.T) {
	s, _, riders, _ := setupService()
	rd := activeRider(t, riders)
	createParcel(t, s, "a@x.com")
	p := createParcel(t, s, "a@x.com")
	if _, err := s.AssignRider(p.ID, rd.ID); err != nil {
		t.Fatalf("AssignRider failed: %v", err)
	}

	counts, err := s.StatusCounts()
	if err != nil {
		t.Fatalf("StatusCounts failed: %v", err)
	}
	got := make(map[string]int64)
	for _, c := range counts {
		got[c.Status] = c.Count
	}
	if got[parcelModel.DeliveryStatusCreated] != 1 || got[parcelModel.DeliveryStatusRiderAssigned] != 1 {
		t.Errorf("Unexpected counts: %v", got)
	}
}

func TestRiderParcels_ActiveAndCompleted(t *testing.T) {
	s, _, riders, _ := setupService()
	rd := activeRider(t, riders)

	active := createParcel(t, s, "a@x.com")
	if _, err := s.AssignRider(active.ID, rd.ID); err != nil {
		t.Fatalf("AssignRider failed: %v", err)
	}

	done := createParcel(t, s, "a@x.com")
	if _, err := s.AssignRider(done.ID, rd.ID); err == nil {
		t.Fatal("rider should be busy")
	}
	// Finish the first delivery, then take and finish the second.
	if _, err := s.UpdateDeliveryStatus(active.ID, parcelModel.DeliveryStatusDelivered, rd.Email); err != nil {
		t.Fatalf("UpdateDeliveryStatus failed: %v", err)
	}
	if _, err := s.AssignRider(done.ID, rd.ID); err != nil {
		t.Fatalf("AssignRider failed: %v", err)
	}

	current, err := s.RiderParcels(rd.Email)
	if err != nil {
		t.Fatalf("RiderParcels failed: %v", err)
	}
	if len(current) != 1 || current[0].ID != done.ID {
		t.Errorf("Expected one active parcel %d, got %v", done.ID, current)
	}

	completed, err := s.RiderCompletedParcels(rd.Email, "")
	if err != nil {
		t.Fatalf("RiderCompletedParcels failed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != active.ID {
		t.Errorf("Expected one completed parcel %d, got %v", active.ID, completed)
	}

	today, err := s.RiderCompletedParcels(rd.Email, "today")
	if err != nil {
		t.Fatalf("RiderCompletedParcels(today) failed: %v", err)
	}
	if len(today) != 1 {
		t.Errorf("Expected today's window to include the delivery, got %d", len(today))
	}

	if _, err := s.RiderCompletedParcels(rd.Email, "fortnight"); types.StatusOf(err) != 400 {
		t.Errorf("Expected validation error for unknown period, got %v", err)
	}
}

func TestUpdateDeliveryStatus_RiderLookupFailureSurfaces(t *testing.T) {
	s, parcels, riders, _ := setupService()

	rd := activeRider(t, riders)
	p := createParcel(t, s, "a@x.com")
	if _, err := s.AssignRider(p.ID, rd.ID); err != nil {
		t.Fatalf("AssignRider failed: %v", err)
	}

	riders.FailRead = true
	if _, err := s.UpdateDeliveryStatus(p.ID, parcelModel.DeliveryStatusDelivered, "admin"); err == nil {
		t.Fatal("Expected the rider lookup failure to surface")
	}
	riders.FailRead = false

	got, err := parcels.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.DeliveryStatus != parcelModel.DeliveryStatusRiderAssigned {
		t.Errorf("Parcel must keep its status after a failed transition, got %s", got.DeliveryStatus)
	}
	gotRider, err := riders.GetByID(rd.ID)
	if err != nil {
		t.Fatalf("GetByID rider failed: %v", err)
	}
	if gotRider.WorkStatus != riderModel.WorkStatusInDelivery {
		t.Errorf("Rider must stay in_delivery, got %s", gotRider.WorkStatus)
	}
}
