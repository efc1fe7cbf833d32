package servicerequest

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/eztechpal/eztech-portal/internal/audit"
	domain "github.com/eztechpal/eztech-portal/internal/domain/servicerequest"
	"github.com/eztechpal/eztech-portal/internal/ids"
	infraRepo "github.com/eztechpal/eztech-portal/internal/infra/repository"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/store"
	"github.com/eztechpal/eztech-portal/internal/timezone"
)

func newFixture(t *testing.T) (*Submit, *ListForCustomer, func()) {
	t.Helper()

	s := store.NewMemory()
	repo := infraRepo.NewServiceRequestStoreRepository(s)
	dispatcher := audit.NewDispatcher(audit.New(s), zap.NewNop())

	return NewSubmit(repo, ids.NewGenerator(), dispatcher, timezone.DefaultTimezone),
		NewListForCustomer(repo),
		dispatcher.Close
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	ctx := context.Background()
	submit, _, closeFn := newFixture(t)
	defer closeFn()

	req, err := submit.Execute(ctx, SubmitInput{
		Name:  "Siti Rahma",
		Phone: "0812333",
		Issue: "Cracked screen",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if req.ID == "" {
		t.Error("request has no id")
	}
	if req.Status != string(domain.StatusPending) {
		t.Errorf("status = %q, want pending", req.Status)
	}
	if req.CustomerName != "Siti Rahma" || req.Phone != "0812333" || req.Issue != "Cracked screen" {
		t.Errorf("request = %+v", req)
	}
}

func TestSubmitBatchGetsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	submit, list, closeFn := newFixture(t)
	defer closeFn()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		req, err := submit.Execute(ctx, SubmitInput{Name: "Siti", Phone: "0812", Issue: "issue"})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if seen[req.ID] {
			t.Fatalf("duplicate id %q", req.ID)
		}
		seen[req.ID] = true
	}

	got, err := list.Execute(ctx, &models.User{Name: "Siti", Phone: "0812"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 20 {
		t.Errorf("list returned %d requests, want 20", len(got))
	}
}

func TestListForCustomerMatchesPhoneOrName(t *testing.T) {
	ctx := context.Background()
	submit, list, closeFn := newFixture(t)
	defer closeFn()

	inputs := []SubmitInput{
		{Name: "Siti Rahma", Phone: "0812333", Issue: "a"},
		{Name: "Siti Rahma", Phone: "0899999", Issue: "b"},
		{Name: "Andi", Phone: "0812333", Issue: "c"},
		{Name: "Andi", Phone: "0877777", Issue: "d"},
	}
	for _, in := range inputs {
		if _, err := submit.Execute(ctx, in); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	user := &models.User{ID: "9", Name: "Siti Rahma", Phone: "0812333", Role: models.RoleCustomer}
	got, err := list.Execute(ctx, user)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	// Requests a, b (name) and c (phone), not d.
	if len(got) != 3 {
		t.Fatalf("list returned %d requests, want 3: %+v", len(got), got)
	}
	for _, r := range got {
		if r.Issue == "d" {
			t.Error("unrelated request leaked into the list")
		}
	}
}

func TestListForNilUserIsEmpty(t *testing.T) {
	ctx := context.Background()
	submit, list, closeFn := newFixture(t)
	defer closeFn()

	if _, err := submit.Execute(ctx, SubmitInput{Name: "Siti", Phone: "0812", Issue: "x"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	got, err := list.Execute(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("anonymous list = %+v, want empty", got)
	}
}
