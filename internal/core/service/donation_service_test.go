package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/givebridge/donation-platform/internal/core/domain"
	"github.com/givebridge/donation-platform/internal/core/ports"
)

type stubDonationRepo struct {
	donations []domain.Donation
	monthly   []domain.MonthlyDonation
	insertErr error
}

func (r *stubDonationRepo) Insert(_ context.Context, d *domain.Donation) (*domain.Donation, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	copy := *d
	copy.ID = fmt.Sprintf("don-%d", len(r.donations)+1)
	r.donations = append(r.donations, copy)
	return &copy, nil
}

func (r *stubDonationRepo) ListByUser(_ context.Context, userID string) ([]domain.Donation, error) {
	var out []domain.Donation
	for i := len(r.donations) - 1; i >= 0; i-- {
		if r.donations[i].UserID == userID {
			out = append(out, r.donations[i])
		}
	}
	return out, nil
}

func (r *stubDonationRepo) InsertMonthly(_ context.Context, m *domain.MonthlyDonation) (*domain.MonthlyDonation, error) {
	copy := *m
	copy.ID = fmt.Sprintf("pledge-%d", len(r.monthly)+1)
	r.monthly = append(r.monthly, copy)
	return &copy, nil
}

func (r *stubDonationRepo) SetMonthlyActive(_ context.Context, id, userID string, active bool) error {
	for i := range r.monthly {
		if r.monthly[i].ID == id && r.monthly[i].UserID == userID {
			r.monthly[i].IsActive = active
			return nil
		}
	}
	return domain.ErrDonationNotFound
}

type stubDedup struct {
	seen     map[string]bool
	checkErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, userID, key string) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[userID+":"+key], nil
}

func (d *stubDedup) Mark(_ context.Context, userID, key string) error {
	d.seen[userID+":"+key] = true
	return nil
}

func TestDonationService_Submit_Success(t *testing.T) {
	repo := &stubDonationRepo{}
	svc := NewDonationService(repo, newStubDedup(), zerolog.Nop())

	d, err := svc.Submit(context.Background(), ports.DonationInput{
		UserID: "u1", RecipientID: "r1", Amount: 50, Currency: "USD", Type: domain.DonationCash,
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if d.Status != domain.DonationPending {
		t.Fatalf("expected pending status, got %s", d.Status)
	}
	if d.ID == "" || d.CreatedAt.IsZero() {
		t.Fatalf("incomplete donation: %+v", d)
	}
}

func TestDonationService_Submit_Validation(t *testing.T) {
	svc := NewDonationService(&stubDonationRepo{}, newStubDedup(), zerolog.Nop())

	cases := []ports.DonationInput{
		{UserID: "u1", RecipientID: "r1", Amount: 10, Currency: "USD", Type: "stocks"},
		{UserID: "u1", RecipientID: "r1", Amount: 0, Currency: "USD", Type: domain.DonationCash},
		{UserID: "u1", RecipientID: "r1", Amount: 10, Type: domain.DonationCash},
		{UserID: "u1", Amount: 10, Currency: "USD", Type: domain.DonationCash},
	}
	for i, in := range cases {
		if _, err := svc.Submit(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestDonationService_Submit_NonCashWithoutAmount(t *testing.T) {
	svc := NewDonationService(&stubDonationRepo{}, newStubDedup(), zerolog.Nop())

	if _, err := svc.Submit(context.Background(), ports.DonationInput{
		UserID: "u1", RecipientID: "r1", Type: domain.DonationClothes,
	}); err != nil {
		t.Fatalf("clothes donation without amount should pass, got %v", err)
	}
}

func TestDonationService_Submit_Idempotency(t *testing.T) {
	repo := &stubDonationRepo{}
	svc := NewDonationService(repo, newStubDedup(), zerolog.Nop())

	in := ports.DonationInput{
		UserID: "u1", RecipientID: "r1", Amount: 25, Currency: "EUR",
		Type: domain.DonationCash, IdempotencyKey: "req-abc",
	}
	if _, err := svc.Submit(context.Background(), in); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := svc.Submit(context.Background(), in); !errors.Is(err, domain.ErrDuplicateDonation) {
		t.Fatalf("expected ErrDuplicateDonation, got %v", err)
	}
	if len(repo.donations) != 1 {
		t.Fatalf("duplicate was persisted, have %d donations", len(repo.donations))
	}
}

func TestDonationService_Submit_DedupOutage(t *testing.T) {
	repo := &stubDonationRepo{}
	dedup := newStubDedup()
	dedup.checkErr = errors.New("redis down")
	svc := NewDonationService(repo, dedup, zerolog.Nop())

	// Dedup store failures degrade to processing, never to rejection.
	if _, err := svc.Submit(context.Background(), ports.DonationInput{
		UserID: "u1", RecipientID: "r1", Amount: 5, Currency: "USD",
		Type: domain.DonationCash, IdempotencyKey: "req-x",
	}); err != nil {
		t.Fatalf("expected submit to proceed past dedup outage, got %v", err)
	}
}

func TestDonationService_Monthly(t *testing.T) {
	repo := &stubDonationRepo{}
	svc := NewDonationService(repo, newStubDedup(), zerolog.Nop())

	pledge, err := svc.CreateMonthly(context.Background(), ports.MonthlyDonationInput{
		UserID: "u1", Amount: 20, Currency: "GBP", RecipientType: "education",
	})
	if err != nil {
		t.Fatalf("CreateMonthly failed: %v", err)
	}
	if !pledge.IsActive {
		t.Fatalf("new pledge should be active")
	}
	if !pledge.NextPayment.After(pledge.CreatedAt) {
		t.Fatalf("next payment not scheduled ahead: %+v", pledge)
	}

	if err := svc.CancelMonthly(context.Background(), pledge.ID, "u1"); err != nil {
		t.Fatalf("CancelMonthly failed: %v", err)
	}
	if repo.monthly[0].IsActive {
		t.Fatalf("pledge still active after cancel")
	}

	if err := svc.CancelMonthly(context.Background(), "missing", "u1"); !errors.Is(err, domain.ErrDonationNotFound) {
		t.Fatalf("expected ErrDonationNotFound, got %v", err)
	}
}
