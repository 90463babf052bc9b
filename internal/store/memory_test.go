package store

import (
	"context"
	"sync"
	"testing"

	"github.com/govtec-events/backend/internal/models"
)

var testCodes = []string{"GOVTEC2025", "COMP001", "REG123", "EVENT2025"}

func newTestStore() *MemStore {
	return NewMemStore(testCodes, nil)
}

func TestCreateRegistrationAssignsMonotonicIDs(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		reg := &models.Registration{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "123", DataConsent: true}
		if err := s.CreateRegistration(ctx, reg); err != nil {
			t.Fatalf("create registration %d: %v", i, err)
		}
		if reg.ID != int64(i) {
			t.Fatalf("expected id %d, got %d", i, reg.ID)
		}
		if reg.CreatedAt.IsZero() {
			t.Fatal("expected createdAt to be set")
		}
	}
}

func TestCreateRegistrationAppliesDefaults(t *testing.T) {
	s := newTestStore()
	reg := &models.Registration{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "123", DataConsent: true}
	if err := s.CreateRegistration(context.Background(), reg); err != nil {
		t.Fatalf("create registration: %v", err)
	}
	if reg.CommunicationMethod != models.CommunicationEmail {
		t.Errorf("expected default communication method email, got %q", reg.CommunicationMethod)
	}
	if reg.Company != nil || reg.JobTitle != nil || reg.RegistrationCode != nil {
		t.Error("expected absent optional fields to stay nil")
	}
	if reg.MarketingConsent {
		t.Error("expected marketing consent to default to false")
	}
}

func TestGetRegistrationMissingIsNotAFault(t *testing.T) {
	s := newTestStore()
	reg, err := s.GetRegistration(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected no error for missing registration, got %v", err)
	}
	if reg != nil {
		t.Fatalf("expected nil registration, got %+v", reg)
	}
}

func TestGetAllRegistrationsInsertionOrder(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	names := []string{"Ada", "Grace", "Edsger"}
	for _, n := range names {
		reg := &models.Registration{FirstName: n, LastName: "Tester", Email: n + "@example.com", Phone: "123", DataConsent: true}
		if err := s.CreateRegistration(ctx, reg); err != nil {
			t.Fatalf("create registration: %v", err)
		}
	}
	all, err := s.GetAllRegistrations(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("expected %d registrations, got %d", len(names), len(all))
	}
	for i, reg := range all {
		if reg.FirstName != names[i] {
			t.Errorf("position %d: expected %q, got %q", i, names[i], reg.FirstName)
		}
		if reg.ID != int64(i+1) {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, reg.ID)
		}
	}
}

func TestStoredRegistrationIsACopy(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	reg := &models.Registration{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "123", DataConsent: true}
	if err := s.CreateRegistration(ctx, reg); err != nil {
		t.Fatalf("create registration: %v", err)
	}
	reg.FirstName = "Mutated"

	stored, err := s.GetRegistration(ctx, reg.ID)
	if err != nil {
		t.Fatalf("get registration: %v", err)
	}
	if stored.FirstName != "Ada" {
		t.Errorf("stored record changed through caller's pointer: %q", stored.FirstName)
	}
}

func TestVerifyRegistrationCodeExactCase(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	valid, err := s.VerifyRegistrationCode(ctx, "GOVTEC2025")
	if err != nil || !valid {
		t.Errorf("expected GOVTEC2025 valid, got valid=%v err=%v", valid, err)
	}
	// The store does exact-case membership; normalization is the caller's job.
	valid, err = s.VerifyRegistrationCode(ctx, "govtec2025")
	if err != nil || valid {
		t.Errorf("expected lowercase code invalid at the store, got valid=%v err=%v", valid, err)
	}
	valid, err = s.VerifyRegistrationCode(ctx, "NOPE")
	if err != nil || valid {
		t.Errorf("expected NOPE invalid, got valid=%v err=%v", valid, err)
	}
}

func TestConcurrentCreatesGetDistinctContiguousIDs(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	const n = 50

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg := &models.Registration{FirstName: "C", LastName: "C", Email: "c@example.com", Phone: "1", DataConsent: true}
			if err := s.CreateRegistration(ctx, reg); err != nil {
				t.Errorf("create registration: %v", err)
				return
			}
			ids <- reg.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d ids, got %d", n, len(seen))
	}
	for i := int64(1); i <= n; i++ {
		if !seen[i] {
			t.Fatalf("missing id %d; ids are not contiguous", i)
		}
	}
}

func TestCreateUserUniqueUsername(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	u := &models.User{Username: "ada"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.ID != 1 {
		t.Fatalf("expected user id 1, got %d", u.ID)
	}

	dup := &models.User{Username: "ada"}
	if err := s.CreateUser(ctx, dup); err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	found, err := s.GetUserByUsername(ctx, "ada")
	if err != nil || found == nil || found.ID != 1 {
		t.Fatalf("expected to find ada with id 1, got %+v err=%v", found, err)
	}
	missing, err := s.GetUser(ctx, 42)
	if err != nil || missing != nil {
		t.Fatalf("expected (nil, nil) for missing user, got %+v err=%v", missing, err)
	}
}
