package catalog

// Meals builds the static meal catalog. Callers receive a fresh value and own
// it for the lifetime of the process.
func Meals() MealCatalog {
	return MealCatalog{
		MealBreakfast: {
			{
				Name:         "Oatmeal with Protein Powder and Berries",
				Calories:     400,
				Protein:      30,
				Restrictions: []string{},
				Cuisine:      []string{"Any"},
				Link:         "https://www.bodybuilding.com/recipes/protein-oatmeal",
			},
			{
				Name:         "Greek Yogurt Parfait",
				Calories:     350,
				Protein:      25,
				Restrictions: []string{"Vegan"},
				Cuisine:      []string{"Any"},
				Link:         "https://www.eatingwell.com/recipe/269947/greek-yogurt-parfait",
			},
			{
				Name:         "Tofu Scramble",
				Calories:     300,
				Protein:      20,
				Restrictions: []string{},
				Cuisine:      []string{"Asian", "Any"},
				Link:         "https://minimalistbaker.com/tofu-scramble/",
			},
			{
				Name:         "Spinach and Feta Omelette",
				Calories:     380,
				Protein:      28,
				Restrictions: []string{"Vegan"},
				Cuisine:      []string{"Mediterranean"},
				Link:         "https://www.eatingwell.com/recipe/spinach-feta-omelette",
			},
		},
		MealLunch: {
			{
				Name:         "Chicken Caesar Salad",
				Calories:     450,
				Protein:      40,
				Restrictions: []string{"Vegetarian", "Vegan"},
				Cuisine:      []string{"American"},
				Link:         "https://www.foodnetwork.com/recipes/chicken-caesar-salad",
			},
			{
				Name:         "Mediterranean Quinoa Bowl",
				Calories:     400,
				Protein:      15,
				Restrictions: []string{},
				Cuisine:      []string{"Mediterranean"},
				Link:         "https://www.cookinglight.com/recipes/mediterranean-quinoa-bowl",
			},
			{
				Name:         "Lentil Curry",
				Calories:     350,
				Protein:      18,
				Restrictions: []string{},
				Cuisine:      []string{"Indian"},
				Link:         "https://www.indianhealthyrecipes.com/dal-recipe-how-to-make-dal-curry/",
			},
			{
				Name:         "Turkey Avocado Wrap",
				Calories:     480,
				Protein:      35,
				Restrictions: []string{"Vegetarian", "Vegan"},
				Cuisine:      []string{"American", "Any"},
				Link:         "https://www.foodnetwork.com/recipes/turkey-avocado-wrap",
			},
		},
		MealDinner: {
			{
				Name:         "Grilled Salmon with Vegetables",
				Calories:     500,
				Protein:      45,
				Restrictions: []string{"Vegetarian", "Vegan"},
				Cuisine:      []string{"Any"},
				Link:         "https://www.foodnetwork.com/recipes/grilled-salmon",
			},
			{
				Name:         "Black Bean Buddha Bowl",
				Calories:     450,
				Protein:      20,
				Restrictions: []string{},
				Cuisine:      []string{"Mexican"},
				Link:         "https://minimalistbaker.com/sweet-potato-black-bean-burger/",
			},
			{
				Name:         "Stir-Fried Tofu with Rice",
				Calories:     400,
				Protein:      25,
				Restrictions: []string{},
				Cuisine:      []string{"Asian"},
				Link:         "https://www.budgetbytes.com/pan-fried-sesame-tofu/",
			},
			{
				Name:         "Chicken Tikka Masala with Brown Rice",
				Calories:     550,
				Protein:      42,
				Restrictions: []string{"Vegetarian", "Vegan"},
				Cuisine:      []string{"Indian"},
				Link:         "https://www.indianhealthyrecipes.com/chicken-tikka-masala/",
			},
		},
	}
}
