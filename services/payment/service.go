package payment

import (
	"errors"
	"fmt"
	"time"

	"parcel-delivery/logger"
	parcelModel "parcel-delivery/models/parcel"
	paymentModel "parcel-delivery/models/payment"
	trackingModel "parcel-delivery/models/tracking"
	"parcel-delivery/repository"
	"parcel-delivery/types"
	paymentTypes "parcel-delivery/types/payment"
	"parcel-delivery/utils"
)

// IntentCreator is the payment gateway collaborator.
type IntentCreator interface {
	CreatePaymentIntent(amountInCents int64, currency string) (clientSecret string, err error)
}

// Service is the payment recorder. It exclusively owns payment rows and
// the payment_status field of parcels.
type Service struct {
	Payments repository.PaymentRepo
	Parcels  repository.ParcelRepo
	Tracking repository.TrackingRepo
	Gateway  IntentCreator
}

func NewService(payments repository.PaymentRepo, parcels repository.ParcelRepo, tracking repository.TrackingRepo, gateway IntentCreator) *Service {
	return &Service{
		Payments: payments,
		Parcels:  parcels,
		Tracking: tracking,
		Gateway:  gateway,
	}
}

// Record flips the parcel to paid and writes the payment row. The parcel
// is looked up first so a missing parcel and an already-paid parcel get
// distinct errors; the guarded MarkPaid update still decides races, so two
// concurrent calls produce exactly one payment row.
func (s *Service) Record(req paymentTypes.RecordPaymentRequest) (*paymentModel.Payment, error) {
	if req.ParcelID == 0 {
		return nil, types.ErrValidation("parcelId is required")
	}
	if req.Email == "" {
		return nil, types.ErrValidation("email is required")
	}

	p, err := s.Parcels.GetByID(req.ParcelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, types.ErrNotFound("parcel")
		}
		return nil, err
	}
	if p.PaymentStatus == parcelModel.PaymentStatusPaid {
		return nil, types.ErrConflict("parcel already paid")
	}

	changed, err := s.Parcels.MarkPaid(req.ParcelID)
	if err != nil {
		return nil, err
	}
	if !changed {
		// A concurrent payment won the conditional update.
		return nil, types.ErrConflict("parcel already paid")
	}

	txID := req.TransactionID
	if txID == "" {
		txID = utils.GenerateTransactionID()
	}

	record := &paymentModel.Payment{
		ParcelID:      req.ParcelID,
		Email:         req.Email,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: txID,
		PaidAt:        time.Now(),
	}
	if err := s.Payments.Create(record); err != nil {
		return nil, err
	}

	ev := &trackingModel.TrackingEvent{
		TrackingID: p.TrackingID,
		Status:     "payment_received",
		Message:    fmt.Sprintf("Payment of %.2f received", req.Amount),
		Time:       time.Now(),
		UpdatedBy:  req.Email,
	}
	if err := s.Tracking.Append(ev); err != nil {
		logger.Error("Failed to write tracking event (payment_received)", err)
	}

	return record, nil
}

// List returns payments, filtered by owner email when given, most recent
// first.
func (s *Service) List(email string) ([]paymentModel.Payment, error) {
	return s.Payments.List(email)
}

// CreateIntent asks the gateway for a client-side confirmation token and
// returns it verbatim.
func (s *Service) CreateIntent(amountInCents int64) (string, error) {
	if amountInCents <= 0 {
		return "", types.ErrValidation("amountInCents must be positive")
	}
	secret, err := s.Gateway.CreatePaymentIntent(amountInCents, "usd")
	if err != nil {
		return "", fmt.Errorf("payment gateway: %w", err)
	}
	return secret, nil
}
