package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/miteshrathod09/sick-fits/internal/client"
	"github.com/miteshrathod09/sick-fits/internal/model"
	"github.com/miteshrathod09/sick-fits/internal/repository"
	"github.com/miteshrathod09/sick-fits/internal/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := client.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

type sentMail struct {
	to      string
	subject string
	html    string
}

type fakeMailClient struct {
	sent     []sentMail
	failWith error
}

func (f *fakeMailClient) Send(_ context.Context, to, subject, html string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

type fakePaymentClient struct {
	charged  []int64
	failWith error
}

func (f *fakePaymentClient) Charge(_ context.Context, amount int64, _, _ string) (*client.ChargeResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.charged = append(f.charged, amount)
	return &client.ChargeResult{
		ChargeID: fmt.Sprintf("ch_test_%d", len(f.charged)),
		Amount:   amount,
	}, nil
}

type fixture struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
	cartRepo repository.CartRepository

	mail    *fakeMailClient
	payment *fakePaymentClient

	auth   service.AuthService
	users  service.UserService
	items  service.ItemService
	carts  service.CartService
	orders service.OrderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	log := zerolog.Nop()

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	mail := &fakeMailClient{}
	payment := &fakePaymentClient{}

	return &fixture{
		db:       db,
		userRepo: userRepo,
		itemRepo: itemRepo,
		cartRepo: cartRepo,
		mail:     mail,
		payment:  payment,
		auth:     service.NewAuthService(userRepo, sessionRepo, mail, "test-secret", "http://localhost:7777", log),
		users:    service.NewUserService(userRepo, log),
		items:    service.NewItemService(itemRepo, log),
		carts:    service.NewCartService(cartRepo, itemRepo, log),
		orders:   service.NewOrderService(db, orderRepo, cartRepo, payment, mail, "USD", log),
	}
}

func (f *fixture) signup(t *testing.T, name, email string) *model.User {
	t.Helper()

	user, _, err := f.auth.Signup(context.Background(), name, email, "secret123")
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	return user
}

func (f *fixture) createItem(t *testing.T, owner *model.User, title string, price int64) *model.Item {
	t.Helper()

	item, err := f.items.Create(context.Background(), owner, service.ItemInput{
		Title:       title,
		Description: title + " description",
		Price:       price,
	})
	if err != nil {
		t.Fatalf("create item %s: %v", title, err)
	}
	return item
}
