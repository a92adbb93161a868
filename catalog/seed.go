package catalog

import "concession-stand-api/models"

// Demo reference data for the Wilson High homecoming game.

var demoEvent = models.Event{
	ID:              "evt_001",
	Name:            "Homecoming Game",
	Date:            "Sept 15",
	Time:            "7:00 PM",
	Venue:           "Wilson High School Stadium",
	DeliveryEnabled: true,
	PickupLocation:  "Concessions Stand A - North Gate",
	Status:          "active",
}

var demoSeatSections = []string{
	"Home Side",
	"Visitor Side",
	"North End Zone",
	"South End Zone",
	"Student Section",
}

var demoSeatRows = []string{"A", "B", "C", "D", "E", "F", "G", "H", "J", "K"}

var demoPickupPoints = []models.PickupPoint{
	{
		ID:          "pickup_001",
		Name:        "Concessions Stand A",
		Location:    "North Gate",
		Description: "Main concessions near the north entrance",
	},
	{
		ID:          "pickup_002",
		Name:        "Concessions Stand B",
		Location:    "South Gate",
		Description: "Secondary stand near visitor section",
	},
}

var demoMenu = []models.MenuItem{
	// Food
	{
		ID:          "item_001",
		Category:    models.CategoryFood,
		Name:        "Stadium Hot Dog",
		Description: "All-beef hot dog with your choice of toppings",
		Price:       5.50,
		StockStatus: models.StockInStock,
		Allergens:   []string{"gluten"},
		Modifiers: []models.Modifier{
			{
				ID:       "mod_001",
				Name:     "Toppings",
				Required: false,
				Options: []models.ModifierOption{
					{ID: "top_001", Name: "Ketchup", Price: 0},
					{ID: "top_002", Name: "Mustard", Price: 0},
					{ID: "top_003", Name: "Onions", Price: 0},
					{ID: "top_004", Name: "Relish", Price: 0},
					{ID: "top_005", Name: "Chili", Price: 1.50},
					{ID: "top_006", Name: "Cheese", Price: 1.00},
				},
			},
		},
	},
	{
		ID:          "item_002",
		Category:    models.CategoryFood,
		Name:        "Loaded Nachos",
		Description: "Crispy tortilla chips with melted cheese, jalapeños, and salsa",
		Price:       7.00,
		StockStatus: models.StockLowStock,
		Allergens:   []string{"dairy", "gluten"},
		Modifiers: []models.Modifier{
			{
				ID:       "mod_002",
				Name:     "Add-ons",
				Required: false,
				Options: []models.ModifierOption{
					{ID: "add_001", Name: "Extra Cheese", Price: 1.50},
					{ID: "add_002", Name: "Sour Cream", Price: 0.75},
					{ID: "add_003", Name: "Guacamole", Price: 2.00},
					{ID: "add_004", Name: "Ground Beef", Price: 2.50},
				},
			},
		},
	},
	{
		ID:          "item_003",
		Category:    models.CategoryFood,
		Name:        "Chicken Tenders",
		Description: "Crispy chicken tenders with your choice of sauce",
		Price:       8.50,
		StockStatus: models.StockInStock,
		Allergens:   []string{"gluten"},
		Modifiers: []models.Modifier{
			{
				ID:            "mod_003",
				Name:          "Sauce",
				Required:      true,
				MaxSelections: 2,
				Options: []models.ModifierOption{
					{ID: "sauce_001", Name: "BBQ", Price: 0},
					{ID: "sauce_002", Name: "Ranch", Price: 0},
					{ID: "sauce_003", Name: "Honey Mustard", Price: 0},
					{ID: "sauce_004", Name: "Buffalo", Price: 0},
				},
			},
		},
	},
	{
		ID:          "item_004",
		Category:    models.CategoryFood,
		Name:        "Soft Pretzel",
		Description: "Warm, salted soft pretzel",
		Price:       4.50,
		StockStatus: models.StockInStock,
		Allergens:   []string{"gluten"},
		Modifiers: []models.Modifier{
			{
				ID:            "mod_004",
				Name:          "Dipping Sauce",
				Required:      false,
				MaxSelections: 1,
				Options: []models.ModifierOption{
					{ID: "dip_001", Name: "Cheese Sauce", Price: 1.50},
					{ID: "dip_002", Name: "Mustard", Price: 0},
				},
			},
		},
	},
	{
		ID:          "item_005",
		Category:    models.CategoryFood,
		Name:        "Popcorn",
		Description: "Fresh popped popcorn",
		Price:       3.50,
		StockStatus: models.StockInStock,
		Modifiers: []models.Modifier{
			{
				ID:            "mod_005",
				Name:          "Size",
				Required:      true,
				MaxSelections: 1,
				Options: []models.ModifierOption{
					{ID: "size_001", Name: "Small", Price: 0},
					{ID: "size_002", Name: "Large", Price: 2.00},
				},
			},
		},
	},
	// Drinks
	{
		ID:          "item_006",
		Category:    models.CategoryDrinks,
		Name:        "Fountain Soda",
		Description: "Ice-cold fountain drink",
		Price:       3.50,
		StockStatus: models.StockInStock,
		Modifiers: []models.Modifier{
			{
				ID:            "mod_006",
				Name:          "Size",
				Required:      true,
				MaxSelections: 1,
				Options: []models.ModifierOption{
					{ID: "drink_size_001", Name: "Small (16oz)", Price: 0},
					{ID: "drink_size_002", Name: "Medium (24oz)", Price: 1.00},
					{ID: "drink_size_003", Name: "Large (32oz)", Price: 2.00},
				},
			},
			{
				ID:            "mod_007",
				Name:          "Flavor",
				Required:      true,
				MaxSelections: 1,
				Options: []models.ModifierOption{
					{ID: "flavor_001", Name: "Coca-Cola", Price: 0},
					{ID: "flavor_002", Name: "Sprite", Price: 0},
					{ID: "flavor_003", Name: "Orange Fanta", Price: 0},
					{ID: "flavor_004", Name: "Root Beer", Price: 0},
					{ID: "flavor_005", Name: "Lemonade", Price: 0},
				},
			},
		},
	},
	{
		ID:          "item_007",
		Category:    models.CategoryDrinks,
		Name:        "Bottled Water",
		Description: "Ice-cold bottled water",
		Price:       2.50,
		StockStatus: models.StockInStock,
	},
	{
		ID:          "item_008",
		Category:    models.CategoryDrinks,
		Name:        "Sports Drink",
		Description: "Gatorade or Powerade",
		Price:       4.00,
		StockStatus: models.StockInStock,
		Modifiers: []models.Modifier{
			{
				ID:            "mod_008",
				Name:          "Flavor",
				Required:      true,
				MaxSelections: 1,
				Options: []models.ModifierOption{
					{ID: "sport_001", Name: "Fruit Punch", Price: 0},
					{ID: "sport_002", Name: "Blue", Price: 0},
					{ID: "sport_003", Name: "Lemon-Lime", Price: 0},
				},
			},
		},
	},
	{
		ID:          "item_009",
		Category:    models.CategoryDrinks,
		Name:        "Hot Chocolate",
		Description: "Rich, creamy hot chocolate with marshmallows",
		Price:       3.50,
		StockStatus: models.StockInStock,
	},
	// Combos
	{
		ID:          "item_010",
		Category:    models.CategoryCombos,
		Name:        "Game Day Combo",
		Description: "Hot dog, nachos, and a medium drink",
		Price:       12.99,
		StockStatus: models.StockInStock,
		ComboDeal: &models.ComboDeal{
			Items:   []string{"Hot Dog", "Nachos", "Medium Drink"},
			Savings: 2.51,
		},
		Modifiers: []models.Modifier{
			{
				ID:            "mod_combo_001",
				Name:          "Drink Choice",
				Required:      true,
				MaxSelections: 1,
				Options: []models.ModifierOption{
					{ID: "combo_drink_001", Name: "Coca-Cola", Price: 0},
					{ID: "combo_drink_002", Name: "Sprite", Price: 0},
					{ID: "combo_drink_003", Name: "Lemonade", Price: 0},
				},
			},
		},
	},
	{
		ID:          "item_011",
		Category:    models.CategoryCombos,
		Name:        "Family Pack",
		Description: "4 Hot dogs, 2 large popcorns, 4 drinks",
		Price:       29.99,
		StockStatus: models.StockInStock,
		ComboDeal: &models.ComboDeal{
			Items:   []string{"4 Hot Dogs", "2 Large Popcorns", "4 Drinks"},
			Savings: 8.00,
		},
	},
}
