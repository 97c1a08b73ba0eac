package handlers

import (
	"context"

	"github.com/arnavk09/quickkart-backend/internal/config"
	"github.com/arnavk09/quickkart-backend/internal/models"
)

// UserStore is the slice of the data-access layer the handlers need.
// store.Users is the production implementation; tests swap in a mock.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	EmailTakenByOther(ctx context.Context, email, excludeID string) (bool, error)
	Insert(ctx context.Context, user *models.User) (string, error)
	UpdateProfile(ctx context.Context, id string, p models.ProfileUpdate) (bool, error)

	AddToCart(ctx context.Context, id string, item models.CartItem) error
	RemoveFromCart(ctx context.Context, id, productID string) (bool, error)
	EmptyCart(ctx context.Context, id string) (bool, error)
	SetCartQuantities(ctx context.Context, id string, items []models.CartItem) ([]string, error)

	AppendOrder(ctx context.Context, id string, order models.Order) (bool, error)
	CancelOrder(ctx context.Context, id, orderID, cancelDate string) (bool, error)

	AddAddress(ctx context.Context, id string, addr models.Address) (bool, error)
	EditAddress(ctx context.Context, id, addressID string, addr models.Address) (bool, error)
	DeleteAddress(ctx context.Context, id, addressID string) (bool, error)

	DumpAll(ctx context.Context) ([]models.User, error)
	RawInsert(ctx context.Context, doc map[string]interface{}) (string, error)
}

// Handler carries the dependencies shared by every route handler.
type Handler struct {
	store UserStore
	cfg   *config.Config
}

func New(store UserStore, cfg *config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}
