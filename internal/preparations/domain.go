package preparations

import (
	"errors"
	"fmt"
	"time"
)

const Collection = "preparations"

// ErrNotOwner is returned when a write targets a preparation created by a
// different user.
var ErrNotOwner = errors.New("preparation belongs to another user")

type Measurements struct {
	GrindSize          string `firestore:"grindSize" json:"grindSize"`
	GrindingTime       string `firestore:"grindingTime" json:"grindingTime"`
	GroundCoffeeWeight string `firestore:"groundCoffeeWeight" json:"groundCoffeeWeight"`
	PreInfusionTime    string `firestore:"preInfusionTime" json:"preInfusionTime"`
	ExtractionTime     string `firestore:"extractionTime" json:"extractionTime"`
	YieldWeight        string `firestore:"yieldWeight" json:"yieldWeight"`
	WaterTemperature   string `firestore:"waterTemperature,omitempty" json:"waterTemperature,omitempty"`
	Pressure           string `firestore:"pressure,omitempty" json:"pressure,omitempty"`
}

// Characteristics are seven 0-10 taste scores.
type Characteristics struct {
	Bitterness int `firestore:"bitterness" json:"bitterness"`
	Acidity    int `firestore:"acidity" json:"acidity"`
	Sweetness  int `firestore:"sweetness" json:"sweetness"`
	Body       int `firestore:"body" json:"body"`
	Crema      int `firestore:"crema" json:"crema"`
	Aroma      int `firestore:"aroma" json:"aroma"`
	Aftertaste int `firestore:"aftertaste" json:"aftertaste"`
}

func (c Characteristics) AverageScore() float64 {
	total := c.Bitterness + c.Acidity + c.Sweetness + c.Body + c.Crema + c.Aroma + c.Aftertaste
	return float64(total) / 7.0
}

func (c Characteristics) inRange() bool {
	for _, v := range []int{c.Bitterness, c.Acidity, c.Sweetness, c.Body, c.Crema, c.Aroma, c.Aftertaste} {
		if v < 0 || v > 10 {
			return false
		}
	}
	return true
}

// Preparation is one logged brewing session. CoffeeBeanID and
// BrewingMethodID are mandatory references; SetupID is optional and, when
// absent, the preparation contributes no equipment to aggregation.
type Preparation struct {
	ID                string          `firestore:"-" json:"id,omitempty"`
	UserID            string          `firestore:"userId" json:"userId"`
	SetupID           string          `firestore:"setupId,omitempty" json:"setupId,omitempty"`
	CoffeeBeanID      string          `firestore:"coffeeBeanId" json:"coffeeBeanId"`
	BrewingMethodID   string          `firestore:"brewingMethodId" json:"brewingMethodId"`
	Date              time.Time       `firestore:"date" json:"date"`
	Measurements      Measurements    `firestore:"measurements" json:"measurements"`
	PreparationRating int             `firestore:"preparationRating" json:"preparationRating"`
	CoffeeBeanRating  int             `firestore:"coffeeBeanRating" json:"coffeeBeanRating"`
	Characteristics   Characteristics `firestore:"characteristics" json:"characteristics"`
	Notes             string          `firestore:"notes" json:"notes"`
	ImageURL          string          `firestore:"imageURL,omitempty" json:"imageURL,omitempty"`
	IsPublic          bool            `firestore:"isPublic" json:"isPublic"`
	CreatedAt         time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time       `firestore:"updatedAt" json:"updatedAt"`
}

func (p Preparation) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("userId is required")
	}
	if p.CoffeeBeanID == "" {
		return fmt.Errorf("coffeeBeanId is required")
	}
	if p.BrewingMethodID == "" {
		return fmt.Errorf("brewingMethodId is required")
	}
	if !validRating(p.PreparationRating) {
		return fmt.Errorf("preparationRating must be between 1 and 10")
	}
	if !validRating(p.CoffeeBeanRating) {
		return fmt.Errorf("coffeeBeanRating must be between 1 and 10")
	}
	if !p.Characteristics.inRange() {
		return fmt.Errorf("characteristics must be between 0 and 10")
	}
	return nil
}

// Decodable reports whether a stored document carries the required
// references; aggregation drops documents that do not.
func (p Preparation) Decodable() bool {
	return p.UserID != "" && p.CoffeeBeanID != "" && p.BrewingMethodID != ""
}

// Zero means unrated.
func validRating(r int) bool { return r == 0 || (r >= 1 && r <= 10) }
