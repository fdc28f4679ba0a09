package restaurant

import "lamaison/models"

// DefaultMenu returns the built-in La Maison menu catalog.
func DefaultMenu() []models.MenuCategory {
	return []models.MenuCategory{
		{
			Category: "Starters - Vegetarian",
			Items: []models.MenuItem{
				{Name: "Paneer Tikka", Price: "₹350", Tags: []string{"bestseller"}},
				{Name: "Hara Bhara Kebab", Price: "₹280", Tags: []string{"vegan"}},
				{Name: "Mushroom Galouti", Price: "₹320"},
				{Name: "Corn & Cheese Balls", Price: "₹260"},
			},
		},
		{
			Category: "Starters - Non-Vegetarian",
			Items: []models.MenuItem{
				{Name: "Chicken Tikka", Price: "₹420", Tags: []string{"bestseller"}},
				{Name: "Mutton Seekh Kebab", Price: "₹480"},
				{Name: "Tandoori Prawns", Price: "₹550"},
				{Name: "Fish Amritsari", Price: "₹450"},
			},
		},
		{
			Category: "Main Course",
			Items: []models.MenuItem{
				{Name: "Dal Makhani", Price: "₹380", Tags: []string{"bestseller", "vegetarian"}},
				{Name: "Butter Chicken", Price: "₹450", Tags: []string{"bestseller"}},
				{Name: "Lamb Rogan Josh", Price: "₹520"},
				{Name: "Paneer Butter Masala", Price: "₹400", Tags: []string{"vegetarian"}},
				{Name: "Grilled Salmon", Price: "₹680", Tags: []string{"gluten-free"}},
				{Name: "Vegetable Biryani", Price: "₹350", Tags: []string{"vegetarian"}},
				{Name: "Chicken Biryani", Price: "₹420", Tags: []string{"bestseller"}},
			},
		},
		{
			Category: "Desserts",
			Items: []models.MenuItem{
				{Name: "Gulab Jamun", Price: "₹220", Tags: []string{"vegetarian"}},
				{Name: "Rasmalai", Price: "₹250", Tags: []string{"bestseller"}},
				{Name: "Chocolate Fondant", Price: "₹320"},
				{Name: "Mango Sorbet", Price: "₹200", Tags: []string{"vegan", "gluten-free"}},
			},
		},
		{
			Category: "Beverages",
			Items: []models.MenuItem{
				{Name: "Mango Lassi", Price: "₹180"},
				{Name: "Masala Chai", Price: "₹120"},
				{Name: "Fresh Lime Soda", Price: "₹150"},
				{Name: "House Red Wine (glass)", Price: "₹450"},
				{Name: "Craft Beer", Price: "₹380"},
			},
		},
	}
}

func slot(timeStr string, status models.SlotStatus, t2, t4, t6, t8 int) models.TimeSlot {
	return models.TimeSlot{
		Time:   timeStr,
		Status: status,
		Tables: []models.TableAvailability{
			{Size: 2, Available: t2},
			{Size: 4, Available: t4},
			{Size: 6, Available: t6},
			{Size: 8, Available: t8},
		},
	}
}

// DefaultSchedule returns the built-in weekly availability schedule.
func DefaultSchedule() []models.DaySchedule {
	return []models.DaySchedule{
		{
			Day: "Monday",
			Lunch: []models.TimeSlot{
				slot("12:00 PM", models.SlotAvailable, 4, 3, 2, 1),
				slot("1:00 PM", models.SlotAvailable, 3, 2, 2, 1),
				slot("2:00 PM", models.SlotAvailable, 5, 3, 2, 1),
			},
			Dinner: []models.TimeSlot{
				slot("7:00 PM", models.SlotAvailable, 3, 2, 1, 1),
				slot("8:00 PM", models.SlotLimited, 1, 1, 0, 0),
				slot("9:00 PM", models.SlotAvailable, 3, 2, 1, 1),
			},
		},
		{
			Day: "Tuesday",
			Lunch: []models.TimeSlot{
				slot("12:00 PM", models.SlotAvailable, 4, 3, 2, 1),
				slot("1:00 PM", models.SlotLimited, 1, 1, 0, 0),
				slot("2:00 PM", models.SlotAvailable, 4, 3, 2, 1),
			},
			Dinner: []models.TimeSlot{
				slot("7:00 PM", models.SlotLimited, 2, 1, 0, 0),
				slot("8:00 PM", models.SlotFull, 0, 0, 0, 0),
				slot("9:00 PM", models.SlotLimited, 1, 1, 1, 0),
			},
		},
		{
			Day: "Wednesday",
			Lunch: []models.TimeSlot{
				slot("12:00 PM", models.SlotAvailable, 5, 3, 2, 1),
				slot("1:00 PM", models.SlotAvailable, 4, 3, 1, 1),
				slot("2:00 PM", models.SlotAvailable, 5, 4, 2, 1),
			},
			Dinner: []models.TimeSlot{
				slot("7:00 PM", models.SlotAvailable, 3, 2, 1, 1),
				slot("8:00 PM", models.SlotLimited, 1, 0, 1, 0),
				slot("9:00 PM", models.SlotAvailable, 4, 2, 1, 1),
			},
		},
		{
			Day: "Thursday",
			Lunch: []models.TimeSlot{
				slot("12:00 PM", models.SlotAvailable, 4, 3, 2, 1),
				slot("1:00 PM", models.SlotAvailable, 3, 2, 1, 1),
				slot("2:00 PM", models.SlotAvailable, 5, 3, 2, 1),
			},
			Dinner: []models.TimeSlot{
				slot("7:00 PM", models.SlotAvailable, 3, 2, 1, 1),
				slot("8:00 PM", models.SlotLimited, 2, 1, 0, 0),
				slot("9:00 PM", models.SlotAvailable, 3, 2, 1, 1),
			},
		},
		{
			Day: "Friday",
			Lunch: []models.TimeSlot{
				slot("12:00 PM", models.SlotAvailable, 3, 2, 1, 1),
				slot("1:00 PM", models.SlotLimited, 1, 1, 0, 0),
				slot("2:00 PM", models.SlotAvailable, 3, 2, 1, 1),
			},
			Dinner: []models.TimeSlot{
				slot("7:00 PM", models.SlotLimited, 1, 1, 0, 0),
				slot("8:00 PM", models.SlotFull, 0, 0, 0, 0),
				slot("8:30 PM", models.SlotFull, 0, 0, 0, 0),
				slot("9:00 PM", models.SlotLimited, 2, 1, 0, 0),
			},
		},
		{
			Day: "Saturday",
			Lunch: []models.TimeSlot{
				slot("12:00 PM", models.SlotLimited, 2, 1, 0, 0),
				slot("1:00 PM", models.SlotFull, 0, 0, 0, 0),
				slot("2:00 PM", models.SlotLimited, 1, 1, 0, 0),
			},
			Dinner: []models.TimeSlot{
				slot("7:00 PM", models.SlotLimited, 1, 1, 0, 0),
				slot("8:00 PM", models.SlotFull, 0, 0, 0, 0),
				slot("9:00 PM", models.SlotLimited, 1, 0, 0, 0),
			},
		},
		{
			Day: "Sunday",
			Lunch: []models.TimeSlot{
				slot("12:00 PM", models.SlotLimited, 2, 1, 1, 0),
				slot("1:00 PM", models.SlotLimited, 1, 1, 0, 0),
				slot("2:00 PM", models.SlotAvailable, 3, 2, 1, 1),
			},
			Dinner: []models.TimeSlot{
				slot("7:00 PM", models.SlotAvailable, 3, 2, 1, 1),
				slot("8:00 PM", models.SlotLimited, 2, 1, 0, 0),
				slot("9:00 PM", models.SlotAvailable, 3, 2, 1, 1),
			},
		},
	}
}
