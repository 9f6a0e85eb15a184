package catalog

import "time"

// Collection names in the document store.
const (
	CollectionCoffeeBeans    = "coffee_beans"
	CollectionEquipment      = "equipment"
	CollectionBrewingMethods = "brewing_methods"
)

type RoastLevel string

const (
	RoastLight       RoastLevel = "light"
	RoastMediumLight RoastLevel = "medium_light"
	RoastMedium      RoastLevel = "medium"
	RoastMediumDark  RoastLevel = "medium_dark"
	RoastDark        RoastLevel = "dark"
	RoastFrench      RoastLevel = "french"
)

type ProcessingMethod string

const (
	ProcessingWashed        ProcessingMethod = "washed"
	ProcessingNatural       ProcessingMethod = "natural"
	ProcessingHoney         ProcessingMethod = "honey"
	ProcessingPulpedNatural ProcessingMethod = "pulped_natural"
	ProcessingAnaerobic     ProcessingMethod = "anaerobic"
	ProcessingCarbonic      ProcessingMethod = "carbonic"
)

type EquipmentType string

const (
	EquipmentEspressoMachine EquipmentType = "espresso_machine"
	EquipmentGrinder         EquipmentType = "grinder"
	EquipmentPortafilter     EquipmentType = "portafilter"
	EquipmentScale           EquipmentType = "scale"
	EquipmentKettle          EquipmentType = "kettle"
	EquipmentDripper         EquipmentType = "dripper"
	EquipmentFrenchPress     EquipmentType = "french_press"
	EquipmentAeropress       EquipmentType = "aeropress"
	EquipmentChemex          EquipmentType = "chemex"
	EquipmentV60             EquipmentType = "v60"
	EquipmentKalita          EquipmentType = "kalita"
	EquipmentOther           EquipmentType = "other"
)

type BrewingCategory string

const (
	CategoryEspresso  BrewingCategory = "espresso"
	CategoryPourOver  BrewingCategory = "pour_over"
	CategoryImmersion BrewingCategory = "immersion"
	CategoryPressure  BrewingCategory = "pressure"
	CategoryCold      BrewingCategory = "cold"
)

// CoffeeBean is a shared reference-catalog entry. Preparations point at it by
// id, never embed it, so later edits show through every preparation.
type CoffeeBean struct {
	ID               string           `firestore:"-" json:"id,omitempty"`
	Brand            string           `firestore:"brand" json:"brand"`
	Name             string           `firestore:"name" json:"name"`
	Origin           string           `firestore:"origin" json:"origin"`
	RoastLevel       RoastLevel       `firestore:"roastLevel" json:"roastLevel"`
	ProcessingMethod ProcessingMethod `firestore:"processingMethod,omitempty" json:"processingMethod,omitempty"`
	TastingNotes     []string         `firestore:"tastingNotes" json:"tastingNotes"`
	Price            float64          `firestore:"price,omitempty" json:"price,omitempty"`
	AverageRating    float64          `firestore:"averageRating" json:"averageRating"`
	RatingCount      int              `firestore:"ratingCount" json:"ratingCount"`
	CreatedBy        string           `firestore:"createdBy" json:"createdBy"`
	CreatedAt        time.Time        `firestore:"createdAt" json:"createdAt"`
	IsVerified       bool             `firestore:"isVerified" json:"isVerified"`
}

// Key is the natural composite key used for reconciliation, independent of
// the store-assigned document id.
func (b CoffeeBean) Key() string { return b.Brand + "|" + b.Name }

func (b CoffeeBean) Valid() bool { return b.Brand != "" && b.Name != "" }

type EquipmentSpecifications struct {
	Size            string   `firestore:"size,omitempty" json:"size,omitempty"`
	Capacity        string   `firestore:"capacity,omitempty" json:"capacity,omitempty"`
	Features        []string `firestore:"features,omitempty" json:"features,omitempty"`
	PortafilterSize string   `firestore:"portafilterSize,omitempty" json:"portafilterSize,omitempty"`
	PortafilterType string   `firestore:"portafilterType,omitempty" json:"portafilterType,omitempty"`
	GrinderType     string   `firestore:"grinderType,omitempty" json:"grinderType,omitempty"`
	BoilerType      string   `firestore:"boilerType,omitempty" json:"boilerType,omitempty"`
}

type Equipment struct {
	ID             string                   `firestore:"-" json:"id,omitempty"`
	Type           EquipmentType            `firestore:"type" json:"type"`
	Brand          string                   `firestore:"brand" json:"brand"`
	Model          string                   `firestore:"model" json:"model"`
	Specifications *EquipmentSpecifications `firestore:"specifications,omitempty" json:"specifications,omitempty"`
	Category       string                   `firestore:"category,omitempty" json:"category,omitempty"`
	AverageRating  float64                  `firestore:"averageRating" json:"averageRating"`
	RatingCount    int                      `firestore:"ratingCount" json:"ratingCount"`
	CreatedBy      string                   `firestore:"createdBy" json:"createdBy"`
	CreatedAt      time.Time                `firestore:"createdAt" json:"createdAt"`
	IsVerified     bool                     `firestore:"isVerified" json:"isVerified"`
}

func (e Equipment) Key() string { return e.Brand + "|" + e.Model }

func (e Equipment) Valid() bool { return e.Brand != "" && e.Model != "" }

type BrewingParameters struct {
	GrindSize string  `firestore:"grindSize,omitempty" json:"grindSize,omitempty"`
	WaterTemp float64 `firestore:"waterTemp,omitempty" json:"waterTemp,omitempty"`
	BrewTime  string  `firestore:"brewTime,omitempty" json:"brewTime,omitempty"`
	Ratio     string  `firestore:"ratio,omitempty" json:"ratio,omitempty"`
	Pressure  string  `firestore:"pressure,omitempty" json:"pressure,omitempty"`
	BloomTime string  `firestore:"bloomTime,omitempty" json:"bloomTime,omitempty"`
}

type BrewingMethod struct {
	ID                string             `firestore:"-" json:"id,omitempty"`
	Name              string             `firestore:"name" json:"name"`
	Description       string             `firestore:"description" json:"description"`
	Category          BrewingCategory    `firestore:"category" json:"category"`
	DefaultParameters *BrewingParameters `firestore:"defaultParameters,omitempty" json:"defaultParameters,omitempty"`
}

func (m BrewingMethod) Key() string { return m.Name }

func (m BrewingMethod) Valid() bool { return m.Name != "" }
