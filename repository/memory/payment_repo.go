package memory

import (
	"sort"
	"sync"

	paymentModel "parcel-delivery/models/payment"
)

// PaymentRepository is an in-memory repository.PaymentRepo used by tests.
type PaymentRepository struct {
	mu       sync.RWMutex
	nextID   uint
	payments []paymentModel.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(p *paymentModel.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.payments = append(r.payments, *p)
	return nil
}

func (r *PaymentRepository) List(email string) ([]paymentModel.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []paymentModel.Payment
	for _, p := range r.payments {
		if email != "" && p.Email != email {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}
