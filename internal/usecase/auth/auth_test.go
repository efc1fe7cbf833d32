package auth

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/eztechpal/eztech-portal/internal/audit"
	authpkg "github.com/eztechpal/eztech-portal/internal/auth"
	"github.com/eztechpal/eztech-portal/internal/httperr"
	"github.com/eztechpal/eztech-portal/internal/ids"
	infraRepo "github.com/eztechpal/eztech-portal/internal/infra/repository"
	"github.com/eztechpal/eztech-portal/internal/models"
	"github.com/eztechpal/eztech-portal/internal/session"
	"github.com/eztechpal/eztech-portal/internal/store"
)

const (
	adminEmail = "admin@eztech.com"
	adminName  = "Admin User"
)

type fixture struct {
	store     *store.Memory
	employees *infraRepo.UserStoreRepository
	customers *infraRepo.UserStoreRepository
	session   *session.Manager

	employeeLogin    *EmployeeLogin
	customerLogin    *CustomerLogin
	customerRegister *CustomerRegister
	logout           *Logout

	close func()
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s := store.NewMemory()
	employees := infraRepo.NewEmployeeDirectory(s)
	customers := infraRepo.NewCustomerDirectory(s)
	sess := session.NewManager(s)
	verifier := authpkg.NewAcceptAny()
	dispatcher := audit.NewDispatcher(audit.New(s), zap.NewNop())
	gen := ids.NewGenerator()

	return &fixture{
		store:     s,
		employees: employees,
		customers: customers,
		session:   sess,

		employeeLogin:    NewEmployeeLogin(employees, verifier, sess, dispatcher, adminEmail, adminName),
		customerLogin:    NewCustomerLogin(customers, verifier, sess, dispatcher),
		customerRegister: NewCustomerRegister(customers, verifier, gen, sess, dispatcher),
		logout:           NewLogout(sess, dispatcher),

		close: dispatcher.Close,
	}
}

func TestEmployeeLoginKnownEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	defer f.close()

	stored := models.User{ID: "7", Name: "Dewi", Email: "dewi@eztech.com", Role: models.RoleEmployee}
	if err := f.employees.Append(ctx, stored); err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	user, err := f.employeeLogin.Execute(ctx, "dewi@eztech.com", "anything")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "7" || user.Name != "Dewi" {
		t.Errorf("user = %+v", user)
	}

	current, ok, err := f.session.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("session after login: ok=%v err=%v", ok, err)
	}
	if current.ID != "7" {
		t.Errorf("session holds %+v", current)
	}
}

func TestEmployeeLoginUnknownEmailFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	defer f.close()

	_, err := f.employeeLogin.Execute(ctx, "stranger@eztech.com", "pw")
	if !httperr.IsBusiness(err, httperr.CodeAuthFailed) {
		t.Fatalf("login = %v, want %s", err, httperr.CodeAuthFailed)
	}

	if _, ok, _ := f.session.Current(ctx); ok {
		t.Error("failed login left a session behind")
	}
}

func TestEmployeeLoginAdminFallback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	defer f.close()

	user, err := f.employeeLogin.Execute(ctx, adminEmail, "any password at all")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if user.ID != "1" || user.Name != adminName || user.Role != models.RoleEmployee {
		t.Errorf("synthesized admin = %+v", user)
	}

	// The fallback account lives in the session only.
	all, err := f.employees.List(ctx)
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("admin fallback was persisted to the directory: %+v", all)
	}
}

func TestAdminFallbackYieldsToStoredRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	defer f.close()

	stored := models.User{ID: "55", Name: "Real Admin", Email: adminEmail, Role: models.RoleEmployee}
	if err := f.employees.Append(ctx, stored); err != nil {
		t.Fatalf("seed: %v", err)
	}

	user, err := f.employeeLogin.Execute(ctx, adminEmail, "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "55" {
		t.Errorf("got synthesized admin %+v, want the stored record", user)
	}
}

func TestCustomerRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	defer f.close()

	created, err := f.customerRegister.Execute(ctx, RegisterCustomerInput{
		Name:     "Siti Rahma",
		Email:    "siti@example.com",
		Phone:    "0812333",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.ID == "" || created.Role != models.RoleCustomer {
		t.Errorf("created = %+v", created)
	}

	logged, err := f.customerLogin.Execute(ctx, "siti@example.com", "different pw")
	if err != nil {
		t.Fatalf("login after register: %v", err)
	}
	if logged.ID != created.ID {
		t.Errorf("login found %+v, want id %s", logged, created.ID)
	}
}

func TestCustomerLoginUnknownEmailFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	defer f.close()

	_, err := f.customerLogin.Execute(ctx, "nobody@example.com", "pw")
	if !httperr.IsBusiness(err, httperr.CodeAccountNotFound) {
		t.Fatalf("login = %v, want %s", err, httperr.CodeAccountNotFound)
	}
}

func TestDuplicateRegistrationLoginFindsFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	defer f.close()

	first, err := f.customerRegister.Execute(ctx, RegisterCustomerInput{
		Name: "Siti", Email: "siti@example.com", Phone: "0811", Password: "a",
	})
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := f.customerRegister.Execute(ctx, RegisterCustomerInput{
		Name: "Siti Again", Email: "siti@example.com", Phone: "0822", Password: "b",
	}); err != nil {
		t.Fatalf("second register: %v", err)
	}

	logged, err := f.customerLogin.Execute(ctx, "siti@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != first.ID {
		t.Errorf("login found %+v, want the first record %s", logged, first.ID)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	defer f.close()

	if _, err := f.customerRegister.Execute(ctx, RegisterCustomerInput{
		Name: "Siti", Email: "siti@example.com", Phone: "0811", Password: "a",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := f.logout.Execute(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := f.session.Current(ctx); ok {
		t.Error("session survived logout")
	}

	// Logging out with nobody logged in is a no-op.
	if err := f.logout.Execute(ctx); err != nil {
		t.Fatalf("idempotent logout: %v", err)
	}
}
