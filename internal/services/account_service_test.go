package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/pkg/utils"
)

type fakeUserRepo struct {
	byEmail map[string]*db_models.User
	inserts []*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*db_models.User)}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	f.inserts = append(f.inserts, user)
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return f.byEmail[email], nil
}

func testJWTMaker() *utils.JWTMaker {
	return utils.NewJWTMaker("test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(repo, testJWTMaker())

	err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if len(repo.inserts) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserts))
	}
	if repo.inserts[0].PasswordHash == "hunter22" {
		t.Errorf("password stored in plain text")
	}

	result, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "asha@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Name != "Asha" || result.Email != "asha@example.com" {
		t.Errorf("result = %+v", result)
	}
	if result.Token == "" {
		t.Errorf("expected a session token")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(repo, testJWTMaker())

	req := request_models.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "hunter22"}
	if err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	err := svc.Register(context.Background(), req)
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAccountService(repo, testJWTMaker())

	if err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := []request_models.LoginRequest{
		{Email: "asha@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "hunter22"},
	}
	for _, req := range cases {
		if _, err := svc.Login(context.Background(), req); !errors.Is(err, utils.ErrInvalidCredentials) {
			t.Errorf("login %q: expected ErrInvalidCredentials, got %v", req.Email, err)
		}
	}
}
