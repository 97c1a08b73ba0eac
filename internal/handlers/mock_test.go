package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arnavk09/quickkart-backend/internal/config"
	"github.com/arnavk09/quickkart-backend/internal/middleware"
	"github.com/arnavk09/quickkart-backend/internal/models"
)

// mockStore implements UserStore with overridable function fields. Methods
// without an override return zero values.
type mockStore struct {
	findByEmailFn       func(ctx context.Context, email string) (*models.User, error)
	findByIDFn          func(ctx context.Context, id string) (*models.User, error)
	emailTakenFn        func(ctx context.Context, email string) (bool, error)
	emailTakenByOtherFn func(ctx context.Context, email, excludeID string) (bool, error)
	insertFn            func(ctx context.Context, user *models.User) (string, error)
	updateProfileFn     func(ctx context.Context, id string, p models.ProfileUpdate) (bool, error)
	addToCartFn         func(ctx context.Context, id string, item models.CartItem) error
	removeFromCartFn    func(ctx context.Context, id, productID string) (bool, error)
	emptyCartFn         func(ctx context.Context, id string) (bool, error)
	setCartQuantitiesFn func(ctx context.Context, id string, items []models.CartItem) ([]string, error)
	appendOrderFn       func(ctx context.Context, id string, order models.Order) (bool, error)
	cancelOrderFn       func(ctx context.Context, id, orderID, cancelDate string) (bool, error)
	addAddressFn        func(ctx context.Context, id string, addr models.Address) (bool, error)
	editAddressFn       func(ctx context.Context, id, addressID string, addr models.Address) (bool, error)
	deleteAddressFn     func(ctx context.Context, id, addressID string) (bool, error)
	dumpAllFn           func(ctx context.Context) ([]models.User, error)
	rawInsertFn         func(ctx context.Context, doc map[string]interface{}) (string, error)
}

func (m *mockStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return &models.User{}, nil
}

func (m *mockStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	if m.emailTakenFn != nil {
		return m.emailTakenFn(ctx, email)
	}
	return false, nil
}

func (m *mockStore) EmailTakenByOther(ctx context.Context, email, excludeID string) (bool, error) {
	if m.emailTakenByOtherFn != nil {
		return m.emailTakenByOtherFn(ctx, email, excludeID)
	}
	return false, nil
}

func (m *mockStore) Insert(ctx context.Context, user *models.User) (string, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, user)
	}
	return "64f0c2a1b3d4e5f601234567", nil
}

func (m *mockStore) UpdateProfile(ctx context.Context, id string, p models.ProfileUpdate) (bool, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, id, p)
	}
	return true, nil
}

func (m *mockStore) AddToCart(ctx context.Context, id string, item models.CartItem) error {
	if m.addToCartFn != nil {
		return m.addToCartFn(ctx, id, item)
	}
	return nil
}

func (m *mockStore) RemoveFromCart(ctx context.Context, id, productID string) (bool, error) {
	if m.removeFromCartFn != nil {
		return m.removeFromCartFn(ctx, id, productID)
	}
	return true, nil
}

func (m *mockStore) EmptyCart(ctx context.Context, id string) (bool, error) {
	if m.emptyCartFn != nil {
		return m.emptyCartFn(ctx, id)
	}
	return true, nil
}

func (m *mockStore) SetCartQuantities(ctx context.Context, id string, items []models.CartItem) ([]string, error) {
	if m.setCartQuantitiesFn != nil {
		return m.setCartQuantitiesFn(ctx, id, items)
	}
	return nil, nil
}

func (m *mockStore) AppendOrder(ctx context.Context, id string, order models.Order) (bool, error) {
	if m.appendOrderFn != nil {
		return m.appendOrderFn(ctx, id, order)
	}
	return true, nil
}

func (m *mockStore) CancelOrder(ctx context.Context, id, orderID, cancelDate string) (bool, error) {
	if m.cancelOrderFn != nil {
		return m.cancelOrderFn(ctx, id, orderID, cancelDate)
	}
	return true, nil
}

func (m *mockStore) AddAddress(ctx context.Context, id string, addr models.Address) (bool, error) {
	if m.addAddressFn != nil {
		return m.addAddressFn(ctx, id, addr)
	}
	return true, nil
}

func (m *mockStore) EditAddress(ctx context.Context, id, addressID string, addr models.Address) (bool, error) {
	if m.editAddressFn != nil {
		return m.editAddressFn(ctx, id, addressID, addr)
	}
	return true, nil
}

func (m *mockStore) DeleteAddress(ctx context.Context, id, addressID string) (bool, error) {
	if m.deleteAddressFn != nil {
		return m.deleteAddressFn(ctx, id, addressID)
	}
	return true, nil
}

func (m *mockStore) DumpAll(ctx context.Context) ([]models.User, error) {
	if m.dumpAllFn != nil {
		return m.dumpAllFn(ctx)
	}
	return nil, nil
}

func (m *mockStore) RawInsert(ctx context.Context, doc map[string]interface{}) (string, error) {
	if m.rawInsertFn != nil {
		return m.rawInsertFn(ctx, doc)
	}
	return "64f0c2a1b3d4e5f601234567", nil
}

const testUserID = "64f0c2a1b3d4e5f601234567"

func newTestHandler(s UserStore) *Handler {
	return New(s, &config.Config{JWTSecret: "test-secret", Environment: "development"})
}

// authedRequest builds a request that looks like it passed the auth gate.
func authedRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middleware.ContextWithIdentity(req.Context(), middleware.Identity{
		UserID: testUserID,
		Email:  "a@x.com",
	}))
}
