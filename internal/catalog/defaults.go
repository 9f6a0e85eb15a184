package catalog

// Seed is the default reference catalog handed to the Seeder. It is plain
// injected data so it can be versioned and tested apart from the
// reconciliation algorithm.
type Seed struct {
	BrewingMethods []BrewingMethod
	CoffeeBeans    []CoffeeBean
	Equipment      []Equipment
}

// Defaults returns the stock catalog. createdBy is recorded as the author of
// the seeded bean and equipment documents.
func Defaults(createdBy string) Seed {
	return Seed{
		BrewingMethods: defaultBrewingMethods(),
		CoffeeBeans:    defaultCoffeeBeans(createdBy),
		Equipment:      defaultEquipment(createdBy),
	}
}

func defaultBrewingMethods() []BrewingMethod {
	return []BrewingMethod{
		{
			Name:        "Espresso",
			Description: "Traditional Italian coffee brewing method using pressure",
			Category:    CategoryEspresso,
			DefaultParameters: &BrewingParameters{
				GrindSize: "Fine",
				WaterTemp: 93.0,
				BrewTime:  "25-30 seconds",
				Ratio:     "1:2",
				Pressure:  "9 bars",
			},
		},
		{
			Name:        "Hario V60",
			Description: "Japanese pour-over dripper with spiral ridges",
			Category:    CategoryPourOver,
			DefaultParameters: &BrewingParameters{
				GrindSize: "Medium-fine",
				WaterTemp: 96.0,
				BrewTime:  "2:30-3:30",
				Ratio:     "1:16",
				BloomTime: "30 seconds",
			},
		},
		{
			Name:        "French Press",
			Description: "Full immersion brewing with metal filter",
			Category:    CategoryImmersion,
			DefaultParameters: &BrewingParameters{
				GrindSize: "Coarse",
				WaterTemp: 96.0,
				BrewTime:  "4 minutes",
				Ratio:     "1:15",
			},
		},
		{
			Name:        "AeroPress",
			Description: "Pressure-assisted brewing device",
			Category:    CategoryPressure,
			DefaultParameters: &BrewingParameters{
				GrindSize: "Medium-fine",
				WaterTemp: 85.0,
				BrewTime:  "1:30-2:30",
				Ratio:     "1:16",
			},
		},
		{
			Name:        "Chemex",
			Description: "Pour-over with thick paper filters",
			Category:    CategoryPourOver,
			DefaultParameters: &BrewingParameters{
				GrindSize: "Medium-coarse",
				WaterTemp: 96.0,
				BrewTime:  "4-6 minutes",
				Ratio:     "1:17",
				BloomTime: "45 seconds",
			},
		},
	}
}

func defaultCoffeeBeans(createdBy string) []CoffeeBean {
	verified := func(brand, name, origin string, roast RoastLevel, processing ProcessingMethod, notes []string, price, rating float64, ratings int) CoffeeBean {
		return CoffeeBean{
			Brand:            brand,
			Name:             name,
			Origin:           origin,
			RoastLevel:       roast,
			ProcessingMethod: processing,
			TastingNotes:     notes,
			Price:            price,
			AverageRating:    rating,
			RatingCount:      ratings,
			CreatedBy:        createdBy,
			IsVerified:       true,
		}
	}

	return []CoffeeBean{
		// Specialty roasters.
		verified("Blue Bottle", "Giant Steps", "Ethiopia", RoastMedium, ProcessingWashed,
			[]string{"Chocolate", "Citrus", "Floral"}, 18.00, 4.5, 127),
		verified("Intelligentsia", "Black Cat Classic", "Blend", RoastDark, ProcessingWashed,
			[]string{"Dark Chocolate", "Caramel", "Smoky"}, 16.50, 4.3, 89),
		verified("Counter Culture", "Hologram", "Colombia", RoastLight, ProcessingWashed,
			[]string{"Bright", "Citrus", "Clean"}, 17.00, 4.6, 156),
		verified("Stumptown", "Hair Bender", "Blend", RoastMedium, ProcessingWashed,
			[]string{"Balanced", "Chocolate", "Citrus"}, 15.00, 4.4, 203),
		verified("Onyx Coffee Lab", "Geometry", "Guatemala", RoastMediumLight, ProcessingHoney,
			[]string{"Honey", "Apple", "Cinnamon"}, 19.50, 4.7, 78),

		// Starbucks whole bean range.
		verified("Starbucks", "Pike Place Roast", "Latin America", RoastMedium, ProcessingWashed,
			[]string{"Smooth", "Balanced", "Rich"}, 12.95, 4.1, 1250),
		verified("Starbucks", "House Blend", "Latin America", RoastMedium, ProcessingWashed,
			[]string{"Lively", "Balanced", "Nutty"}, 12.95, 4.0, 980),
		verified("Starbucks", "Breakfast Blend", "Latin America", RoastMedium, ProcessingWashed,
			[]string{"Bright", "Tangy", "Crisp"}, 12.95, 4.2, 756),
		verified("Starbucks", "Veranda Blend", "Latin America", RoastLight, ProcessingWashed,
			[]string{"Mellow", "Soft", "Approachable"}, 12.95, 3.9, 634),
		verified("Starbucks", "French Roast", "Multi-region", RoastDark, ProcessingWashed,
			[]string{"Intense", "Smoky", "Bold"}, 12.95, 4.3, 1120),
		verified("Starbucks", "Italian Roast", "Multi-region", RoastDark, ProcessingWashed,
			[]string{"Rich", "Deep", "Caramelized"}, 12.95, 4.1, 892),
		verified("Starbucks", "Espresso Roast", "Multi-region", RoastDark, ProcessingWashed,
			[]string{"Rich", "Caramelly", "Sweet"}, 12.95, 4.4, 1456),
		verified("Starbucks", "Sumatra", "Indonesia", RoastDark, ProcessingNatural,
			[]string{"Earthy", "Herbal", "Full-bodied"}, 13.95, 4.2, 567),
		verified("Starbucks", "Guatemala Antigua", "Guatemala", RoastMedium, ProcessingWashed,
			[]string{"Spicy", "Smoky", "Full-bodied"}, 13.95, 4.3, 423),
		verified("Starbucks", "Kenya", "Kenya", RoastMedium, ProcessingWashed,
			[]string{"Wine-like", "Black currant", "Bright"}, 13.95, 4.5, 345),
		verified("Starbucks", "Ethiopia", "Ethiopia", RoastMedium, ProcessingWashed,
			[]string{"Bright", "Floral", "Citrusy"}, 13.95, 4.4, 289),
		verified("Starbucks", "Colombia", "Colombia", RoastMedium, ProcessingWashed,
			[]string{"Balanced", "Nutty", "Cocoa"}, 13.95, 4.2, 512),
		verified("Starbucks", "Blonde Espresso Roast", "Latin America & East Africa", RoastLight, ProcessingWashed,
			[]string{"Sweet", "Smooth", "Balanced"}, 12.95, 4.0, 678),
	}
}

func defaultEquipment(createdBy string) []Equipment {
	item := func(t EquipmentType, brand, model, category string, spec EquipmentSpecifications, rating float64, ratings int) Equipment {
		s := spec
		return Equipment{
			Type:           t,
			Brand:          brand,
			Model:          model,
			Specifications: &s,
			Category:       category,
			AverageRating:  rating,
			RatingCount:    ratings,
			CreatedBy:      createdBy,
			IsVerified:     true,
		}
	}

	return []Equipment{
		// Breville espresso machines.
		item(EquipmentEspressoMachine, "Breville", "Barista Express", "Semi-Automatic",
			EquipmentSpecifications{
				Size:       `12.5" x 13.2" x 15.8"`,
				Capacity:   "2L water tank",
				Features:   []string{"Built-in conical burr grinder", "15 bar pressure", "Pre-infusion", "Dual wall filter baskets", "360° swivel steam wand"},
				BoilerType: "Thermocoil",
			}, 4.5, 1250),
		item(EquipmentEspressoMachine, "Breville", "Barista Pro", "Semi-Automatic",
			EquipmentSpecifications{
				Size:       `13.1" x 15.5" x 16.0"`,
				Capacity:   "2L water tank",
				Features:   []string{"Built-in conical burr grinder", "ThermoJet heating system", "3-second heat up", "LCD display", "30 grind settings"},
				BoilerType: "ThermoJet",
			}, 4.6, 890),
		item(EquipmentEspressoMachine, "Breville", "Bambino Plus", "Automatic Milk",
			EquipmentSpecifications{
				Size:       `7.6" x 12.2" x 12.1"`,
				Capacity:   "1.4L water tank",
				Features:   []string{"ThermoJet heating system", "3-second heat up", "Automatic milk frother", "4 milk temperatures", "3 milk textures"},
				BoilerType: "ThermoJet",
			}, 4.4, 670),
		item(EquipmentEspressoMachine, "Breville", "Oracle Touch", "Super-Automatic",
			EquipmentSpecifications{
				Size:       `17.5" x 15.5" x 18.1"`,
				Capacity:   "2.5L water tank",
				Features:   []string{"Touchscreen display", "Automatic grinding & tamping", "Dual boiler", "Auto milk texturing", "My Menu customization"},
				BoilerType: "Dual boiler",
			}, 4.7, 320),
		item(EquipmentEspressoMachine, "Breville", "Dual Boiler", "Professional",
			EquipmentSpecifications{
				Size:       `16.0" x 14.2" x 15.8"`,
				Capacity:   "2.5L water tank",
				Features:   []string{"Dual stainless steel boilers", "PID temperature control", "Pre-infusion", "Shot clock", "Dry puck feature"},
				BoilerType: "Dual boiler",
			}, 4.8, 450),

		// Baratza grinders.
		item(EquipmentGrinder, "Baratza", "Encore", "Entry Level",
			EquipmentSpecifications{
				Size:        `5.3" x 6.3" x 13.8"`,
				Capacity:    "8oz bean hopper",
				Features:    []string{"40mm conical burrs", "40 grind settings", "Gear reduction motor", "Thermal protection", "Easy calibration"},
				GrinderType: "Conical burr",
			}, 4.3, 2100),
		item(EquipmentGrinder, "Baratza", "Virtuoso+", "Mid-Range",
			EquipmentSpecifications{
				Size:        `5.3" x 6.3" x 13.8"`,
				Capacity:    "8oz bean hopper",
				Features:    []string{"40mm conical burrs", "40 grind settings", "Digital timer", "LED light", "Anti-static technology"},
				GrinderType: "Conical burr",
			}, 4.5, 1450),
		item(EquipmentGrinder, "Baratza", "Sette 270", "Espresso Focused",
			EquipmentSpecifications{
				Size:        `5.0" x 6.2" x 13.5"`,
				Capacity:    "10oz bean hopper",
				Features:    []string{"40mm conical burrs", "270 grind settings", "Macro/micro adjustments", "Programmable dosing", "Grounds bin"},
				GrinderType: "Conical burr",
			}, 4.4, 890),
		item(EquipmentGrinder, "Baratza", "Vario", "Professional",
			EquipmentSpecifications{
				Size:        `5.1" x 6.5" x 15.0"`,
				Capacity:    "8oz bean hopper",
				Features:    []string{"54mm ceramic flat burrs", "230 grind settings", "Digital display", "Programmable dosing", "Portafilter hook"},
				GrinderType: "Flat burr",
			}, 4.6, 560),
		item(EquipmentGrinder, "Baratza", "Forte BG", "Commercial",
			EquipmentSpecifications{
				Size:        `6.3" x 9.8" x 16.5"`,
				Capacity:    "10oz bean hopper",
				Features:    []string{"54mm ceramic flat burrs", "260 grind settings", "All-purpose grinding", "Digital display", "Commercial motor"},
				GrinderType: "Flat burr",
			}, 4.7, 340),

		// De'Longhi machines.
		item(EquipmentEspressoMachine, "De'Longhi", "Magnifica Start", "Entry Automatic",
			EquipmentSpecifications{
				Size:       `9.4" x 17.0" x 13.8"`,
				Capacity:   "1.8L water tank",
				Features:   []string{"Built-in burr grinder", "Manual milk frother", "13 grind settings", "Removable brewing unit", "Energy saving"},
				BoilerType: "Single boiler",
			}, 4.2, 780),
		item(EquipmentEspressoMachine, "De'Longhi", "Magnifica Evo", "Automatic",
			EquipmentSpecifications{
				Size:       `9.4" x 17.0" x 13.8"`,
				Capacity:   "1.8L water tank",
				Features:   []string{"Built-in burr grinder", "LatteCrema system", "Bean-to-cup", "My Menu", "SoftTouch control panel"},
				BoilerType: "Single boiler",
			}, 4.4, 920),
		item(EquipmentEspressoMachine, "De'Longhi", "La Specialista Arte Evo", "Manual",
			EquipmentSpecifications{
				Size:       `9.2" x 13.8" x 16.9"`,
				Capacity:   "1.4L water tank",
				Features:   []string{"Smart tamping station", "Active temperature control", "Cold brew function", "Manual milk frother", "Sensor grinding"},
				BoilerType: "Thermoblock",
			}, 4.5, 650),
		item(EquipmentEspressoMachine, "De'Longhi", "Eletta Explore", "Premium Automatic",
			EquipmentSpecifications{
				Size:       `9.6" x 17.3" x 14.8"`,
				Capacity:   "2L water tank",
				Features:   []string{"Color touch display", "Cold brew technology", "LatteCrema system", "Bean Adapt technology", "My Menu"},
				BoilerType: "Single boiler",
			}, 4.6, 420),
		item(EquipmentEspressoMachine, "De'Longhi", "PrimaDonna Elite", "Elite Automatic",
			EquipmentSpecifications{
				Size:       `9.4" x 17.3" x 15.4"`,
				Capacity:   "2L water tank",
				Features:   []string{"Color touch display", "LatteCrema system", "Bean-to-cup", "Doppio+ function", "Smart One Touch"},
				BoilerType: "Single boiler",
			}, 4.7, 280),
	}
}
