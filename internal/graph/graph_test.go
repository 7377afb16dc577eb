package graph_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/miteshrathod09/sick-fits/internal/client"
	"github.com/miteshrathod09/sick-fits/internal/graph"
	"github.com/miteshrathod09/sick-fits/internal/model"
	"github.com/miteshrathod09/sick-fits/internal/repository"
	"github.com/miteshrathod09/sick-fits/internal/service"
)

type nopMail struct{}

func (nopMail) Send(context.Context, string, string, string) error { return nil }

type nopPayment struct{}

func (nopPayment) Charge(_ context.Context, amount int64, _, _ string) (*client.ChargeResult, error) {
	return &client.ChargeResult{ChargeID: "ch_test", Amount: amount}, nil
}

func newTestSchema(t *testing.T) (*graphql.Schema, service.AuthService) {
	t.Helper()

	dsn := fmt.Sprintf("file:graph_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := client.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := zerolog.Nop()
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	authService := service.NewAuthService(userRepo, sessionRepo, nopMail{}, "test-secret", "http://localhost", log)
	resolver := graph.NewResolver(
		authService,
		service.NewUserService(userRepo, log),
		service.NewItemService(itemRepo, log),
		service.NewCartService(cartRepo, itemRepo, log),
		service.NewOrderService(db, orderRepo, cartRepo, nopPayment{}, nopMail{}, "USD", log),
		log,
	)

	schema, err := graph.ParseSchema(resolver)
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return schema, authService
}

func exec(t *testing.T, schema *graphql.Schema, ctx context.Context, query string) map[string]interface{} {
	t.Helper()

	resp := schema.Exec(ctx, query, "", nil)
	if len(resp.Errors) > 0 {
		t.Fatalf("query %q errors: %v", query, resp.Errors)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return data
}

func TestSchemaParses(t *testing.T) {
	newTestSchema(t)
}

func TestMeIsNullWhenAnonymous(t *testing.T) {
	schema, _ := newTestSchema(t)

	data := exec(t, schema, context.Background(), `{ me { id } }`)
	if data["me"] != nil {
		t.Errorf("me = %v, want null", data["me"])
	}
}

func TestSignupThroughSchema(t *testing.T) {
	schema, _ := newTestSchema(t)

	data := exec(t, schema, context.Background(),
		`mutation { signup(email: "Wes@Example.com", name: "Wes", password: "secret123") { email permissions } }`)

	signup, ok := data["signup"].(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected signup payload: %v", data)
	}
	if signup["email"] != "wes@example.com" {
		t.Errorf("email = %v, want lowercased", signup["email"])
	}
	perms, _ := signup["permissions"].([]interface{})
	if len(perms) != 1 || perms[0] != model.PermissionUser {
		t.Errorf("permissions = %v, want [USER]", perms)
	}
}

func TestGatedMutationSurfacesAuthError(t *testing.T) {
	schema, _ := newTestSchema(t)

	resp := schema.Exec(context.Background(),
		`mutation { createItem(title: "Hat", description: "d", price: 500) { id } }`, "", nil)
	if len(resp.Errors) == 0 {
		t.Fatal("anonymous createItem succeeded")
	}
	if !strings.Contains(resp.Errors[0].Error(), "signed in") {
		t.Errorf("error %q does not mention signin requirement", resp.Errors[0].Error())
	}
}

func TestItemLookupMissIsNull(t *testing.T) {
	schema, _ := newTestSchema(t)

	data := exec(t, schema, context.Background(), `{ item(id: "missing") { id } }`)
	if data["item"] != nil {
		t.Errorf("item = %v, want null", data["item"])
	}
}

func TestAuthenticatedQueryThroughContext(t *testing.T) {
	schema, authService := newTestSchema(t)

	user, _, err := authService.Signup(context.Background(), "Wes", "wes@example.com", "secret123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	ctx := graph.WithUser(context.Background(), user)
	data := exec(t, schema, ctx, `{ me { id name cart { id } orders { id } } }`)

	me, ok := data["me"].(map[string]interface{})
	if !ok {
		t.Fatalf("me payload: %v", data)
	}
	if me["id"] != user.ID || me["name"] != "Wes" {
		t.Errorf("me = %v", me)
	}
}
