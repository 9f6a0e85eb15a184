package setups

import "time"

const Collection = "user_setups"

// SetupEquipment holds the six named equipment slots of a setup. Slots are
// independent; nothing stops the same equipment id from occupying more than
// one slot.
type SetupEquipment struct {
	EspressoMachine string `firestore:"espressoMachine,omitempty" json:"espressoMachine,omitempty"`
	Grinder         string `firestore:"grinder,omitempty" json:"grinder,omitempty"`
	Portafilter     string `firestore:"portafilter,omitempty" json:"portafilter,omitempty"`
	Scale           string `firestore:"scale,omitempty" json:"scale,omitempty"`
	Kettle          string `firestore:"kettle,omitempty" json:"kettle,omitempty"`
	Dripper         string `firestore:"dripper,omitempty" json:"dripper,omitempty"`
}

// IDs returns the non-empty slot values in slot order. Duplicates are
// returned as-is; deduplication is the aggregation layer's concern.
func (e SetupEquipment) IDs() []string {
	slots := []string{e.EspressoMachine, e.Grinder, e.Portafilter, e.Scale, e.Kettle, e.Dripper}
	out := make([]string, 0, len(slots))
	for _, id := range slots {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

func (e SetupEquipment) Count() int { return len(e.IDs()) }

// UserSetup is a named bundle of equipment a user brews with.
type UserSetup struct {
	ID              string         `firestore:"-" json:"id,omitempty"`
	UserID          string         `firestore:"userId" json:"userId"`
	Name            string         `firestore:"name" json:"name"`
	BrewingMethodID string         `firestore:"brewingMethodId,omitempty" json:"brewingMethodId,omitempty"`
	EquipmentIDs    SetupEquipment `firestore:"equipmentIds" json:"equipmentIds"`
	IsDefault       bool           `firestore:"isDefault" json:"isDefault"`
	IsPublic        bool           `firestore:"isPublic" json:"isPublic"`
	CreatedAt       time.Time      `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `firestore:"updatedAt" json:"updatedAt"`
}

func (s UserSetup) Valid() bool { return s.UserID != "" && s.Name != "" }
