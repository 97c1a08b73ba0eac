// Package store is the data-access layer for the single Userdata collection.
// Every mutation here is a single-document update; the positional-array
// conventions (push/pull, $-positional $set and $inc) that the route handlers
// share all live in this package.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arnavk09/quickkart-backend/internal/models"
)

// ErrNotFound is returned when no user document matches a lookup.
var ErrNotFound = errors.New("user not found")

const collectionName = "Userdata"

type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection(collectionName)}
}

// EnsureIndexes configures indexes for the Userdata collection. Called on
// startup from main after Mongo has connected. Email is indexed for lookup
// speed only; uniqueness stays a write-time check in the signup path, so the
// narrow race between two concurrent signups is accepted.
func (u *Users) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "Email", Value: 1}},
		Options: options.Index().SetName("idx_email"),
	}
	_, err := u.col.Indexes().CreateOne(ctx, model)
	return err
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.col.FindOne(ctx, bson.M{"Email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user document with the password hash projected out.
func (u *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOne().SetProjection(bson.M{"Password": 0})
	var user models.User
	err = u.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTaken reports whether any user already registered this email.
func (u *Users) EmailTaken(ctx context.Context, email string) (bool, error) {
	n, err := u.col.CountDocuments(ctx, bson.M{"Email": email})
	return n > 0, err
}

// EmailTakenByOther reports whether some user other than excludeID holds the
// email; used before a profile update changes the address.
func (u *Users) EmailTakenByOther(ctx context.Context, email, excludeID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(excludeID)
	if err != nil {
		return false, fmt.Errorf("invalid user id: %w", err)
	}
	n, err := u.col.CountDocuments(ctx, bson.M{"Email": email, "_id": bson.M{"$ne": oid}})
	return n > 0, err
}

// Insert stores a new user document and returns its hex id.
func (u *Users) Insert(ctx context.Context, user *models.User) (string, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	res, err := u.col.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// UpdateProfile sets the editable profile fields on the user document.
func (u *Users) UpdateProfile(ctx context.Context, id string, p models.ProfileUpdate) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}
	res, err := u.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"Name":         p.Name,
			"Email":        p.Email,
			"Gender":       p.Gender,
			"Phone_Number": p.PhoneNumber,
		},
	})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// AddToCart increments the quantity of an existing cart line or appends a new
// one with quantity 1. Two single-document atomic updates: the positional $inc
// runs first, and the fallback $push is guarded by a $ne filter on productId
// so a concurrent double-add cannot produce a duplicate line.
func (u *Users) AddToCart(ctx context.Context, id string, item models.CartItem) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := u.col.UpdateOne(ctx,
		bson.M{"_id": oid, "addToCart.productId": item.ProductID},
		bson.M{"$inc": bson.M{"addToCart.$.quantity": 1}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount > 0 {
		return nil
	}

	item.Quantity = 1
	res, err = u.col.UpdateOne(ctx,
		bson.M{"_id": oid, "addToCart.productId": bson.M{"$ne": item.ProductID}},
		bson.M{"$push": bson.M{"addToCart": item}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the user is gone or a concurrent add won the push; retry the
		// increment once so the losing request still counts.
		res, err = u.col.UpdateOne(ctx,
			bson.M{"_id": oid, "addToCart.productId": item.ProductID},
			bson.M{"$inc": bson.M{"addToCart.$.quantity": 1}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// RemoveFromCart pulls the cart line with the given productId. Returns false
// when nothing was removed.
func (u *Users) RemoveFromCart(ctx context.Context, id, productID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}
	res, err := u.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"addToCart": bson.M{"productId": productID}}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// EmptyCart replaces the cart array wholesale with an empty one.
func (u *Users) EmptyCart(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}
	res, err := u.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"addToCart": []models.CartItem{}}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// SetCartQuantities sets each supplied line's quantity absolutely, one
// positional update per item. No transaction wraps the loop; items whose
// productId matched no cart line are returned so the caller can report them
// instead of hiding a partial failure.
func (u *Users) SetCartQuantities(ctx context.Context, id string, items []models.CartItem) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var failed []string
	for _, item := range items {
		res, err := u.col.UpdateOne(ctx,
			bson.M{"_id": oid, "addToCart.productId": item.ProductID},
			bson.M{"$set": bson.M{"addToCart.$.quantity": item.Quantity}},
		)
		if err != nil {
			return failed, err
		}
		if res.MatchedCount == 0 {
			failed = append(failed, item.ProductID)
		}
	}
	return failed, nil
}

// AppendOrder pushes a new order record onto the user's Orders array.
func (u *Users) AppendOrder(ctx context.Context, id string, order models.Order) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}
	res, err := u.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"Orders": order}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// CancelOrder flips the matched order to Cancelled and stamps the cancel
// date, in place. The order element must already exist; there is no upsert.
// Returns false when no order matched or it was already cancelled with the
// same date.
func (u *Users) CancelOrder(ctx context.Context, id, orderID, cancelDate string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}
	res, err := u.col.UpdateOne(ctx,
		bson.M{"_id": oid, "Orders.OrderId": orderID},
		bson.M{"$set": bson.M{
			"Orders.$.OrderStatus":   models.OrderStatusCancelled,
			"Orders.$.CancelledDate": cancelDate,
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// AddAddress appends an address record to the user's Address array.
func (u *Users) AddAddress(ctx context.Context, id string, addr models.Address) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}
	res, err := u.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"Address": addr}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// EditAddress replaces the address element matching addressID in place.
// Duplicate or missing ids degrade to "not found" (false), nothing stronger.
func (u *Users) EditAddress(ctx context.Context, id, addressID string, addr models.Address) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}
	addr.ID = addressID
	res, err := u.col.UpdateOne(ctx,
		bson.M{"_id": oid, "Address.id": addressID},
		bson.M{"$set": bson.M{"Address.$": addr}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// DeleteAddress pulls the address element matching addressID.
func (u *Users) DeleteAddress(ctx context.Context, id, addressID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}
	res, err := u.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"Address": bson.M{"id": addressID}}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// DumpAll returns every document in the collection. Diagnostic only; the
// route serving it is not registered in production.
func (u *Users) DumpAll(ctx context.Context) ([]models.User, error) {
	cur, err := u.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// RawInsert stores an arbitrary document. Diagnostic only.
func (u *Users) RawInsert(ctx context.Context, doc map[string]interface{}) (string, error) {
	res, err := u.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}
