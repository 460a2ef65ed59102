package payment

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	parcelModel "parcel-delivery/models/parcel"
	"parcel-delivery/repository/memory"
	paymentService "parcel-delivery/services/payment"
	"parcel-delivery/types"
	paymentTypes "parcel-delivery/types/payment"

	"github.com/gofiber/fiber/v2"
)

// asUser simulates the verified-email local normally set by the auth
// middleware.
func asUser(email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_email", email)
		return c.Next()
	}
}

func setupApp(t *testing.T) (*fiber.App, *memory.ParcelRepository) {
	t.Helper()

	users := memory.NewUserRepository()
	riders := memory.NewRiderRepository(users)
	parcels := memory.NewParcelRepository(riders)
	tracking := memory.NewTrackingRepository()
	payments := memory.NewPaymentRepository()

	svc := paymentService.NewService(payments, parcels, tracking, nil)
	pc := NewPaymentController(svc, nil)

	app := fiber.New()
	app.Post("/payments", asUser("mina@example.com"), pc.Store)
	return app, parcels
}

func postPayment(t *testing.T, app *fiber.App, req paymentTypes.RecordPaymentRequest) (*http.Response, types.ApiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		t.Fatalf("failed to encode body: %v", err)
	}
	httpReq := httptest.NewRequest(http.MethodPost, "/payments", &buf)
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(httpReq)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	var envelope types.ApiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("failed to decode envelope %q: %v", raw, err)
	}
	return resp, envelope
}

func TestStore_RejectsOtherCallersEmail(t *testing.T) {
	app, _ := setupApp(t)

	resp, envelope := postPayment(t, app, paymentTypes.RecordPaymentRequest{
		ParcelID: 1,
		Email:    "other@example.com",
		Amount:   120,
	})
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("Expected 403, got %d (%s)", resp.StatusCode, envelope.Message)
	}
	if envelope.Status != fiber.StatusForbidden {
		t.Errorf("Expected the envelope to carry 403, got %d", envelope.Status)
	}
}

func TestStore_RecordsOwnPayment(t *testing.T) {
	app, parcels := setupApp(t)

	p := &parcelModel.Parcel{
		TrackingID:     "PCL-20260901-ABC123",
		Title:          "Books",
		SenderName:     "Mina",
		ReceiverName:   "Rafi",
		CreatedBy:      "mina@example.com",
		DeliveryStatus: parcelModel.DeliveryStatusCreated,
		PaymentStatus:  parcelModel.PaymentStatusUnpaid,
		CashoutStatus:  parcelModel.CashoutStatusNotCashedOut,
	}
	if err := parcels.Create(p); err != nil {
		t.Fatalf("seed parcel failed: %v", err)
	}

	resp, envelope := postPayment(t, app, paymentTypes.RecordPaymentRequest{
		ParcelID: p.ID,
		Email:    "mina@example.com",
		Amount:   120,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d (%s)", resp.StatusCode, envelope.Message)
	}

	got, err := parcels.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.PaymentStatus != parcelModel.PaymentStatusPaid {
		t.Errorf("Expected the parcel flipped to paid, got %s", got.PaymentStatus)
	}
}
