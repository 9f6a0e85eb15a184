package stash

import (
	"errors"
	"fmt"
	"time"
)

const (
	CollectionCoffeeInventory = "user_coffee_inventory"
	CollectionCoffeeWishlist  = "user_coffee_wishlist"
	CollectionEquipmentOwned  = "user_equipment_owned"
)

// ErrNotOwner is returned when a write targets a stash entry created by a
// different user.
var ErrNotOwner = errors.New("stash entry belongs to another user")

const defaultWishPriority = 3

// CoffeeEntry is one bag of beans in a user's personal stash. Quantity is in
// grams; PersonalRating is the user's own 1-10 score, independent of the
// catalog rating.
type CoffeeEntry struct {
	ID             string    `firestore:"-" json:"id,omitempty"`
	UserID         string    `firestore:"userId" json:"userId"`
	CoffeeBeanID   string    `firestore:"coffeeBeanId" json:"coffeeBeanId"`
	PurchaseDate   time.Time `firestore:"purchaseDate" json:"purchaseDate"`
	Quantity       float64   `firestore:"quantity" json:"quantity"`
	Price          float64   `firestore:"price,omitempty" json:"price,omitempty"`
	PersonalRating int       `firestore:"personalRating,omitempty" json:"personalRating,omitempty"`
	PersonalNotes  string    `firestore:"personalNotes,omitempty" json:"personalNotes,omitempty"`
	IsFinished     bool      `firestore:"isFinished" json:"isFinished"`
	CreatedAt      time.Time `firestore:"createdAt" json:"createdAt"`
}

func (e CoffeeEntry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("userId is required")
	}
	if e.CoffeeBeanID == "" {
		return fmt.Errorf("coffeeBeanId is required")
	}
	if e.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if !validPersonalRating(e.PersonalRating) {
		return fmt.Errorf("personalRating must be between 1 and 10")
	}
	return nil
}

// WishEntry is a coffee bean the user wants to try. Priority runs 1 (low)
// to 5 (very high).
type WishEntry struct {
	ID           string    `firestore:"-" json:"id,omitempty"`
	UserID       string    `firestore:"userId" json:"userId"`
	CoffeeBeanID string    `firestore:"coffeeBeanId" json:"coffeeBeanId"`
	Priority     int       `firestore:"priority" json:"priority"`
	Notes        string    `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
}

func (e WishEntry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("userId is required")
	}
	if e.CoffeeBeanID == "" {
		return fmt.Errorf("coffeeBeanId is required")
	}
	if e.Priority < 1 || e.Priority > 5 {
		return fmt.Errorf("priority must be between 1 and 5")
	}
	return nil
}

// EquipmentEntry is a piece of catalog equipment the user owns.
type EquipmentEntry struct {
	ID               string     `firestore:"-" json:"id,omitempty"`
	UserID           string     `firestore:"userId" json:"userId"`
	EquipmentID      string     `firestore:"equipmentId" json:"equipmentId"`
	PurchaseDate     *time.Time `firestore:"purchaseDate,omitempty" json:"purchaseDate,omitempty"`
	Price            float64    `firestore:"price,omitempty" json:"price,omitempty"`
	PersonalRating   int        `firestore:"personalRating,omitempty" json:"personalRating,omitempty"`
	PersonalNotes    string     `firestore:"personalNotes,omitempty" json:"personalNotes,omitempty"`
	IsCurrentlyUsing bool       `firestore:"isCurrentlyUsing" json:"isCurrentlyUsing"`
	CreatedAt        time.Time  `firestore:"createdAt" json:"createdAt"`
}

func (e EquipmentEntry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("userId is required")
	}
	if e.EquipmentID == "" {
		return fmt.Errorf("equipmentId is required")
	}
	if !validPersonalRating(e.PersonalRating) {
		return fmt.Errorf("personalRating must be between 1 and 10")
	}
	return nil
}

// Zero means unrated.
func validPersonalRating(r int) bool { return r == 0 || (r >= 1 && r <= 10) }
