// Package menu holds the static menu reference data and decides which menu
// a restaurant serves.
package menu

import (
	"github.com/chrisdamba/dronedash/internal/models"
)

// Rule maps any of its keywords to a category. Rules are evaluated in
// order; the first hit wins.
type Rule struct {
	Category models.MenuCategory `yaml:"category"`
	Keywords []string            `yaml:"keywords"`
}

// Brand is a chain-specific menu that overrides the cuisine lookup.
type Brand struct {
	Name     string            `yaml:"name"`
	Keywords []string          `yaml:"keywords"`
	Items    []models.MenuItem `yaml:"items"`
}

type Catalog struct {
	Categories map[models.MenuCategory][]models.MenuItem `yaml:"categories"`
	Brands     []Brand                                   `yaml:"brands"`
	Rules      []Rule                                    `yaml:"rules"`
	Amenities  map[string]models.MenuCategory            `yaml:"amenities"`
}

func item(name string, price, prep float64) models.MenuItem {
	return models.MenuItem{Name: name, Price: price, PrepMinutes: prep}
}

// Default returns the built-in catalog. Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Categories: defaultCategories(),
		Brands:     defaultBrands(),
		Rules:      defaultRules(),
		Amenities: map[string]models.MenuCategory{
			"cafe":   models.MenuCafe,
			"bakery": models.MenuBakery,
		},
	}
}

func defaultRules() []Rule {
	return []Rule{
		{models.MenuPizza, []string{"pizza", "pizzeria"}},
		{models.MenuBurger, []string{"burger", "shake shack", "five guys", "wendy"}},
		{models.MenuMexican, []string{"taco", "chipotle", "qdoba", "mexican", "burrito", "cantina"}},
		{models.MenuChinese, []string{"chinese", "panda", "wok", "dumpling", "szechuan"}},
		{models.MenuJapanese, []string{"sushi", "japanese", "ramen", "teriyaki"}},
		{models.MenuKorean, []string{"korean", "bibimbap", "kbbq"}},
		{models.MenuThai, []string{"thai"}},
		{models.MenuVietnamese, []string{"vietnamese", "pho", "banh mi"}},
		{models.MenuIndian, []string{"indian", "curry", "tikka", "tandoor"}},
		{models.MenuItalian, []string{"italian", "pasta", "olive garden", "trattoria"}},
		{models.MenuMediterranean, []string{"mediterranean", "greek", "falafel", "lebanese", "gyro", "kebab"}},
		{models.MenuCafe, []string{"starbucks", "dunkin", "coffee", "cafe", "espresso"}},
		{models.MenuBakery, []string{"bakery", "bagel", "donut", "doughnut", "patisserie"}},
		{models.MenuBBQ, []string{"bbq", "barbecue", "smokehouse"}},
		{models.MenuSeafood, []string{"seafood", "fish", "lobster", "crab", "oyster"}},
		{models.MenuBreakfast, []string{"breakfast", "ihop", "denny", "waffle", "pancake", "brunch"}},
		{models.MenuAmerican, []string{"wing", "chicken", "diner", "grill", "american"}},
	}
}

func defaultCategories() map[models.MenuCategory][]models.MenuItem {
	return map[models.MenuCategory][]models.MenuItem{
		models.MenuBurger: {
			item("Classic Cheeseburger", 8.99, 5),
			item("Double Bacon Burger", 12.99, 7),
			item("Veggie Burger", 9.99, 6),
			item("Mushroom Swiss Burger", 11.99, 6),
			item("Spicy Jalapeño Burger", 10.99, 6),
			item("Chicken Sandwich", 9.99, 5),
			item("Large Fries", 4.99, 3),
			item("Onion Rings", 5.99, 4),
			item("Milkshake", 5.99, 3),
			item("Soft Drink", 2.99, 1),
		},
		models.MenuPizza: {
			item("Pepperoni Pizza (Large)", 18.99, 15),
			item("Margherita Pizza", 16.99, 12),
			item("Meat Lovers Pizza", 21.99, 18),
			item("Veggie Supreme Pizza", 17.99, 15),
			item("BBQ Chicken Pizza", 19.99, 15),
			item("Buffalo Wings (12pc)", 14.99, 12),
			item("Garlic Knots", 6.99, 8),
			item("Cheesy Bread", 7.99, 8),
			item("2-Liter Soda", 3.99, 1),
		},
		models.MenuMexican: {
			item("Burrito Bowl", 11.99, 8),
			item("Chicken Burrito", 10.99, 7),
			item("Steak Tacos (3)", 12.99, 8),
			item("Carnitas Tacos (3)", 11.99, 8),
			item("Quesadilla", 9.99, 6),
			item("Nachos Supreme", 13.99, 10),
			item("Guacamole & Chips", 7.99, 5),
			item("Churros", 5.99, 5),
			item("Horchata", 3.99, 2),
		},
		models.MenuChinese: {
			item("Orange Chicken", 13.99, 12),
			item("Kung Pao Chicken", 14.99, 12),
			item("Beef & Broccoli", 15.99, 12),
			item("Sweet & Sour Pork", 14.99, 12),
			item("Fried Rice", 10.99, 8),
			item("Lo Mein", 11.99, 10),
			item("Egg Rolls (4)", 6.99, 6),
			item("Crab Rangoon (6)", 7.99, 6),
			item("Hot & Sour Soup", 5.99, 5),
		},
		models.MenuJapanese: {
			item("California Roll (8pc)", 12.99, 10),
			item("Spicy Tuna Roll", 14.99, 10),
			item("Dragon Roll", 18.99, 12),
			item("Salmon Sashimi", 16.99, 8),
			item("Chicken Teriyaki", 14.99, 12),
			item("Ramen Bowl", 15.99, 15),
			item("Miso Soup", 3.99, 3),
			item("Edamame", 5.99, 4),
			item("Gyoza (6pc)", 7.99, 6),
		},
		models.MenuKorean: {
			item("Bibimbap", 14.99, 12),
			item("Bulgogi Plate", 17.99, 14),
			item("Korean Fried Chicken", 15.99, 14),
			item("Kimchi Jjigae", 13.99, 12),
			item("Japchae", 12.99, 10),
			item("Tteokbokki", 10.99, 8),
			item("Kimchi Pancake", 9.99, 8),
		},
		models.MenuThai: {
			item("Pad Thai", 14.99, 12),
			item("Green Curry", 15.99, 12),
			item("Red Curry", 15.99, 12),
			item("Tom Yum Soup", 8.99, 8),
			item("Massaman Curry", 16.99, 15),
			item("Spring Rolls (4)", 6.99, 5),
			item("Mango Sticky Rice", 7.99, 5),
			item("Thai Iced Tea", 4.99, 3),
		},
		models.MenuVietnamese: {
			item("Pho Tai", 13.99, 10),
			item("Banh Mi", 9.99, 6),
			item("Bun Cha", 14.99, 12),
			item("Summer Rolls (3)", 7.99, 5),
			item("Lemongrass Chicken", 14.99, 12),
			item("Vietnamese Iced Coffee", 4.99, 3),
		},
		models.MenuIndian: {
			item("Chicken Tikka Masala", 16.99, 15),
			item("Butter Chicken", 17.99, 15),
			item("Lamb Vindaloo", 19.99, 18),
			item("Palak Paneer", 14.99, 12),
			item("Biryani", 15.99, 15),
			item("Naan Bread", 3.99, 4),
			item("Samosas (2)", 5.99, 5),
			item("Mango Lassi", 4.99, 3),
		},
		models.MenuItalian: {
			item("Spaghetti & Meatballs", 16.99, 15),
			item("Fettuccine Alfredo", 15.99, 12),
			item("Chicken Parmesan", 18.99, 18),
			item("Lasagna", 17.99, 15),
			item("Ravioli", 15.99, 12),
			item("Caprese Salad", 10.99, 5),
			item("Garlic Bread", 5.99, 5),
			item("Tiramisu", 8.99, 3),
			item("Cannoli", 6.99, 3),
		},
		models.MenuMediterranean: {
			item("Chicken Shawarma Plate", 15.99, 12),
			item("Falafel Wrap", 10.99, 7),
			item("Lamb Gyro", 12.99, 8),
			item("Hummus & Pita", 7.99, 4),
			item("Greek Salad", 10.99, 5),
			item("Tabbouleh", 6.99, 4),
			item("Baklava", 5.99, 2),
		},
		models.MenuCafe: {
			item("Latte", 5.99, 4),
			item("Cappuccino", 5.49, 4),
			item("Iced Coffee", 4.99, 3),
			item("Caramel Macchiato", 6.49, 5),
			item("Croissant", 3.99, 2),
			item("Blueberry Muffin", 3.49, 2),
			item("Avocado Toast", 9.99, 6),
			item("Breakfast Sandwich", 7.99, 6),
		},
		models.MenuBakery: {
			item("Sourdough Loaf", 7.99, 2),
			item("Almond Croissant", 4.49, 2),
			item("Cinnamon Roll", 4.99, 3),
			item("Glazed Donuts (6)", 8.99, 2),
			item("Everything Bagel", 2.99, 2),
			item("Fruit Tart", 5.99, 2),
		},
		models.MenuBBQ: {
			item("Pulled Pork Sandwich", 13.99, 8),
			item("Beef Brisket (1/2 lb)", 18.99, 10),
			item("BBQ Ribs (Half Rack)", 22.99, 15),
			item("Smoked Chicken", 14.99, 12),
			item("Burnt Ends", 16.99, 10),
			item("Coleslaw", 4.99, 3),
			item("Cornbread", 3.99, 3),
			item("Banana Pudding", 5.99, 3),
		},
		models.MenuSeafood: {
			item("Fish & Chips", 15.99, 12),
			item("Grilled Salmon", 22.99, 15),
			item("Shrimp Scampi", 19.99, 12),
			item("Lobster Roll", 24.99, 10),
			item("Crab Cakes", 18.99, 12),
			item("Fried Calamari", 12.99, 8),
			item("Clam Chowder", 8.99, 6),
			item("Key Lime Pie", 7.99, 3),
		},
		models.MenuBreakfast: {
			item("Pancakes (Stack of 3)", 10.99, 10),
			item("Belgian Waffle", 11.99, 10),
			item("Eggs Benedict", 14.99, 12),
			item("Omelette", 12.99, 10),
			item("French Toast", 10.99, 8),
			item("Breakfast Burrito", 10.99, 8),
			item("Hash Browns", 4.99, 5),
			item("Orange Juice", 3.99, 2),
		},
		models.MenuAmerican: {
			item("Club Sandwich", 12.99, 8),
			item("Philly Cheesesteak", 14.99, 10),
			item("Buffalo Wings (10pc)", 13.99, 12),
			item("Chicken Tenders", 11.99, 8),
			item("Mac & Cheese", 9.99, 8),
			item("Hot Dog", 6.99, 4),
			item("Apple Pie", 6.99, 3),
			item("Chocolate Shake", 5.99, 4),
		},
		models.MenuDefault: {
			item("House Special", 15.99, 12),
			item("Chef's Salad", 11.99, 6),
			item("Grilled Chicken", 14.99, 12),
			item("Steak Dinner", 24.99, 18),
			item("Pasta Primavera", 13.99, 10),
			item("Soup & Sandwich", 10.99, 8),
			item("Dessert of the Day", 7.99, 4),
			item("Soft Drink", 2.99, 1),
		},
	}
}

func defaultBrands() []Brand {
	return []Brand{
		{Name: "McDonald's", Keywords: []string{"mcdonald"}, Items: []models.MenuItem{
			item("Big Mac", 5.99, 4),
			item("Quarter Pounder with Cheese", 6.49, 5),
			item("10pc Chicken McNuggets", 5.49, 4),
			item("Filet-O-Fish", 5.29, 4),
			item("Large Fries", 3.79, 3),
			item("McFlurry", 4.29, 2),
		}},
		{Name: "Starbucks", Keywords: []string{"starbucks"}, Items: []models.MenuItem{
			item("Caffè Latte (Grande)", 5.45, 4),
			item("Caramel Frappuccino", 5.95, 5),
			item("Pumpkin Spice Latte", 6.25, 5),
			item("Bacon & Gouda Sandwich", 5.75, 4),
			item("Cake Pop", 3.25, 1),
			item("Butter Croissant", 3.45, 2),
		}},
		{Name: "Chipotle", Keywords: []string{"chipotle"}, Items: []models.MenuItem{
			item("Chicken Burrito", 10.45, 6),
			item("Steak Bowl", 11.95, 6),
			item("Barbacoa Tacos", 10.95, 6),
			item("Chips & Guacamole", 5.45, 2),
			item("Sofritas Salad", 9.95, 5),
		}},
		{Name: "Subway", Keywords: []string{"subway"}, Items: []models.MenuItem{
			item("Italian B.M.T. Footlong", 9.49, 4),
			item("Turkey Breast 6-inch", 6.79, 3),
			item("Meatball Marinara Footlong", 8.99, 4),
			item("Chocolate Chip Cookies (3)", 2.99, 1),
		}},
		{Name: "Domino's", Keywords: []string{"domino"}, Items: []models.MenuItem{
			item("Pepperoni Pizza (Large)", 15.99, 14),
			item("ExtravaganZZa Pizza", 19.99, 16),
			item("Stuffed Cheesy Bread", 7.99, 10),
			item("Boneless Wings (8pc)", 8.99, 10),
			item("Chocolate Lava Crunch Cake", 5.99, 6),
		}},
		{Name: "Taco Bell", Keywords: []string{"taco bell"}, Items: []models.MenuItem{
			item("Crunchwrap Supreme", 5.49, 4),
			item("Chalupa Supreme", 4.79, 4),
			item("Nachos BellGrande", 5.99, 4),
			item("Cheesy Gordita Crunch", 5.19, 4),
			item("Baja Blast (Large)", 2.79, 1),
		}},
		{Name: "Panda Express", Keywords: []string{"panda express"}, Items: []models.MenuItem{
			item("Orange Chicken Plate", 10.90, 4),
			item("Beijing Beef Bowl", 9.40, 4),
			item("Honey Walnut Shrimp", 11.40, 5),
			item("Chow Mein", 4.40, 3),
			item("Cream Cheese Rangoon (3)", 2.40, 3),
		}},
		{Name: "Chick-fil-A", Keywords: []string{"chick-fil-a", "chick fil a"}, Items: []models.MenuItem{
			item("Chick-fil-A Chicken Sandwich", 5.29, 4),
			item("Spicy Deluxe Sandwich", 6.29, 4),
			item("12ct Nuggets", 6.95, 4),
			item("Waffle Potato Fries", 2.89, 3),
			item("Frosted Lemonade", 5.09, 2),
		}},
		{Name: "Dunkin'", Keywords: []string{"dunkin"}, Items: []models.MenuItem{
			item("Iced Coffee (Medium)", 3.49, 2),
			item("Glazed Donut", 1.49, 1),
			item("Munchkins (25ct)", 8.99, 1),
			item("Sausage Egg & Cheese", 4.99, 4),
			item("Hash Browns", 1.99, 2),
		}},
		{Name: "KFC", Keywords: []string{"kfc", "kentucky fried"}, Items: []models.MenuItem{
			item("8pc Bucket", 24.99, 10),
			item("Famous Bowl", 6.49, 5),
			item("Chicken Pot Pie", 6.99, 6),
			item("Mashed Potatoes & Gravy", 3.49, 2),
			item("Biscuit", 1.29, 1),
		}},
	}
}
