package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSanitizedStripsPasswordAndFillsArrays(t *testing.T) {
	u := User{Username: "ava", Password: "$argon2id$..."}

	safe := u.Sanitized()

	if safe.Password != "" {
		t.Error("Sanitized() kept the password hash")
	}
	if safe.Address == nil || safe.Cart == nil || safe.Orders == nil {
		t.Error("Sanitized() left nil arrays")
	}

	out, err := json.Marshal(safe)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "Password") {
		t.Errorf("sanitized JSON still carries a Password key: %s", out)
	}
	if !strings.Contains(string(out), `"addToCart":[]`) {
		t.Errorf("sanitized JSON cart is not an empty array: %s", out)
	}
}

func TestLegacyWireKeys(t *testing.T) {
	out, err := json.Marshal(Order{OrderID: "ORD-1", PhoneNumber: "123"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"OrderId":"ORD-1"`, `"Phone_number":"123"`, `"OrderStatus"`} {
		if !strings.Contains(string(out), key) {
			t.Errorf("order JSON missing %s: %s", key, out)
		}
	}

	out, err = json.Marshal(CartItem{ProductID: "P1", Quantity: 2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"productId":"P1"`, `"quantity":2`} {
		if !strings.Contains(string(out), key) {
			t.Errorf("cart item JSON missing %s: %s", key, out)
		}
	}
}
