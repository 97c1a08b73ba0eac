package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus values stored on order records. An order moves Ordered -> Cancelled
// and never back. DeliveredDate exists on the record but no transition sets it yet.
const (
	OrderStatusOrdered   = "Ordered"
	OrderStatusCancelled = "Cancelled"
)

// User is the single document kept per registered account in the Userdata
// collection. The bson/json keys match the documents already in production
// (mixed-case, Phone_Number etc.), so they are preserved verbatim.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username    string             `bson:"Username" json:"Username"`
	Name        string             `bson:"Name" json:"Name"`
	Email       string             `bson:"Email" json:"Email"`
	Password    string             `bson:"Password,omitempty" json:"Password,omitempty"`
	Gender      string             `bson:"Gender" json:"Gender"`
	PhoneNumber string             `bson:"Phone_Number" json:"Phone_Number"`
	Address     []Address          `bson:"Address" json:"Address"`
	Cart        []CartItem         `bson:"addToCart" json:"addToCart"`
	Orders      []Order            `bson:"Orders" json:"Orders"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Sanitized returns a copy safe to send to clients: the password hash is
// dropped and nil arrays become empty so the frontend always sees lists.
func (u User) Sanitized() User {
	u.Password = ""
	if u.Address == nil {
		u.Address = []Address{}
	}
	if u.Cart == nil {
		u.Cart = []CartItem{}
	}
	if u.Orders == nil {
		u.Orders = []Order{}
	}
	return u
}

// CartItem is one line in a user's cart. productId is matched by exact string
// equality, never coerced to a number.
type CartItem struct {
	ProductID  string  `bson:"productId" json:"productId"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	ProductImg string  `bson:"productImg" json:"productImg"`
	Quantity   int     `bson:"quantity" json:"quantity"`
}

// Order is one element of a user's Orders array. Dates travel as strings the
// way the frontend already formats them.
type Order struct {
	OrderID            string     `bson:"OrderId" json:"OrderId"`
	Address            Address    `bson:"Address" json:"Address"`
	TotalAmount        float64    `bson:"TotalAmount" json:"TotalAmount"`
	ProductData        []CartItem `bson:"ProductData" json:"ProductData"`
	PhoneNumber        string     `bson:"Phone_number" json:"Phone_number"`
	BaseAmount         float64    `bson:"BaseAmount" json:"BaseAmount"`
	CashHandlingCharge float64    `bson:"CashHandlingCharge" json:"CashHandlingCharge"`
	DeliveryCharge     float64    `bson:"DeliveryCharge" json:"DeliveryCharge"`
	Tax                float64    `bson:"Tax" json:"Tax"`
	DeliveredDate      string     `bson:"DeliveredDate" json:"DeliveredDate"`
	OrderedDate        string     `bson:"OrderedDate" json:"OrderedDate"`
	CancelledDate      string     `bson:"CancelledDate" json:"CancelledDate"`
	OrderStatus        string     `bson:"OrderStatus" json:"OrderStatus"`
}

// Address is one element of a user's Address array. The id field is the match
// key for edit/delete; it is client-visible, not a database key.
type Address struct {
	ID                   string `bson:"id" json:"id"`
	Name                 string `bson:"Name" json:"Name"`
	Email                string `bson:"Email" json:"Email"`
	PhoneNumber          string `bson:"Phone_number" json:"Phone_number"`
	PINCode              string `bson:"PIN_Code" json:"PIN_Code"`
	Locality             string `bson:"Locality" json:"Locality"`
	Address              string `bson:"Address" json:"Address"`
	City                 string `bson:"City" json:"City"`
	State                string `bson:"State" json:"State"`
	Landmark             string `bson:"Landmark" json:"Landmark"`
	AlternatePhoneNumber string `bson:"Alternate_Phone_Number" json:"Alternate_Phone_Number"`
	AddressType          string `bson:"Address_Type" json:"Address_Type"`
}

// ProfileUpdate carries the fields a user may change on /updateprofile.
type ProfileUpdate struct {
	Name        string `json:"Name"`
	Email       string `json:"Email"`
	Gender      string `json:"Gender"`
	PhoneNumber string `json:"Phone_Number"`
}
