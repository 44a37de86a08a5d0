package catalog

// builtinFoods is the reference food database shipped with the product.
// The first record doubles as the reconciler's fallback substitute.
var builtinFoods = []FoodRecord{
	{
		ID:       "moringa",
		Name:     "Drumstick Leaves (Moringa)",
		Category: "vegetables",
		Emoji:    "🌿",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Bitter", "Pungent"},
			Effect:  "Vata",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 64, ProteinG: 9.4, CarbsG: 8.3, FiberG: 2.0,
			KeyNutrients: []string{"Iron", "Calcium", "Vitamin C", "Vitamin A"},
		},
		HealthBenefits: []string{"Rich in Iron", "Combats Anemia", "Boosts Immunity", "Anti-inflammatory"},
		Description:    "Excellent source of iron and vitamins, helps balance Vata dosha",
	},
	{
		ID:       "jaggery",
		Name:     "Jaggery (Gur)",
		Category: "sweeteners",
		Emoji:    "🍯",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Kapha",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 383, ProteinG: 0.4, CarbsG: 98.0, FiberG: 0,
			KeyNutrients: []string{"Iron", "Potassium", "Magnesium"},
		},
		HealthBenefits: []string{"Natural Iron Source", "Digestive Aid", "Blood Purifier", "Energy Booster"},
		Description:    "Natural sweetener rich in iron, helps in treating anemia",
	},
	{
		ID:       "dates",
		Name:     "Dates (Khajur)",
		Category: "fruits",
		Emoji:    "🌴",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Vata",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 277, ProteinG: 1.8, CarbsG: 75.0, FiberG: 6.7,
			KeyNutrients: []string{"Iron", "Potassium", "Fiber", "Antioxidants"},
		},
		HealthBenefits: []string{"High Iron Content", "Natural Energy", "Digestive Health", "Heart Health"},
		Description:    "Sweet fruit that balances Vata and provides natural iron",
	},
	{
		ID:       "spinach",
		Name:     "Spinach (Palak)",
		Category: "vegetables",
		Emoji:    "🥬",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Astringent", "Sweet"},
			Effect:  "Kapha",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 23, ProteinG: 2.9, CarbsG: 3.6, FiberG: 2.2,
			KeyNutrients: []string{"Iron", "Folate", "Vitamin K", "Vitamin A"},
		},
		HealthBenefits: []string{"Iron Rich", "Blood Formation", "Eye Health", "Bone Strength"},
		Description:    "Leafy green vegetable excellent for blood formation and iron deficiency",
	},
	{
		ID:       "turmeric",
		Name:     "Turmeric (Haldi)",
		Category: "spices",
		Emoji:    "🟡",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Bitter", "Pungent"},
			Effect:  "Kapha",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 312, ProteinG: 9.7, CarbsG: 67.1, FiberG: 22.7,
			KeyNutrients: []string{"Curcumin", "Iron", "Manganese", "Vitamin B6"},
		},
		HealthBenefits: []string{"Anti-inflammatory", "Antioxidant", "Digestive Aid", "Immune Booster"},
		Description:    "Golden spice with powerful healing properties, reduces inflammation",
	},
	{
		ID:       "ginger",
		Name:     "Ginger (Adrak)",
		Category: "spices",
		Emoji:    "🫚",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Pungent", "Sweet"},
			Effect:  "Vata",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 80, ProteinG: 1.8, CarbsG: 18.0, FiberG: 2.0,
			KeyNutrients: []string{"Gingerol", "Vitamin C", "Magnesium", "Potassium"},
		},
		HealthBenefits: []string{"Digestive Fire", "Nausea Relief", "Anti-inflammatory", "Circulation"},
		Description:    "Warming spice that ignites digestive fire and balances Vata",
	},
	{
		ID:       "almonds",
		Name:     "Almonds (Badam)",
		Category: "nuts",
		Emoji:    "🌰",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Vata",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 579, ProteinG: 21.2, CarbsG: 21.6, FiberG: 12.5,
			KeyNutrients: []string{"Vitamin E", "Magnesium", "Protein", "Healthy Fats"},
		},
		HealthBenefits: []string{"Brain Health", "Heart Health", "Skin Health", "Energy"},
		Description:    "Nutrient-dense nuts that nourish the brain and balance Vata",
	},
	{
		ID:       "ghee",
		Name:     "Ghee",
		Category: "dairy",
		Emoji:    "🧈",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Vata",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 902, ProteinG: 0.3, CarbsG: 0, FiberG: 0,
			KeyNutrients: []string{"Vitamin A", "Vitamin E", "Healthy Fats", "Butyric Acid"},
		},
		HealthBenefits: []string{"Digestive Health", "Brain Function", "Immunity", "Nutrient Absorption"},
		Description:    "Clarified butter that enhances digestion and balances all doshas",
	},
	{
		ID:       "cucumber",
		Name:     "Cucumber (Kheera)",
		Category: "vegetables",
		Emoji:    "🥒",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet", "Astringent"},
			Effect:  "Pitta",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 16, ProteinG: 0.7, CarbsG: 4.0, FiberG: 0.5,
			KeyNutrients: []string{"Vitamin K", "Potassium", "Vitamin C", "Water"},
		},
		HealthBenefits: []string{"Hydration", "Cooling", "Skin Health", "Detox"},
		Description:    "Cooling vegetable that pacifies Pitta and provides hydration",
	},
	{
		ID:       "coconut_water",
		Name:     "Coconut Water",
		Category: "beverages",
		Emoji:    "🥥",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Pitta",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 19, ProteinG: 0.7, CarbsG: 3.7, FiberG: 1.1,
			KeyNutrients: []string{"Potassium", "Magnesium", "Sodium", "Electrolytes"},
		},
		HealthBenefits: []string{"Natural Electrolytes", "Hydration", "Cooling", "Energy"},
		Description:    "Natural isotonic drink that cools the body and balances Pitta",
	},
	{
		ID:       "fennel",
		Name:     "Fennel Seeds (Saunf)",
		Category: "spices",
		Emoji:    "🌾",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet", "Pungent"},
			Effect:  "Pitta",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 345, ProteinG: 15.8, CarbsG: 52.3, FiberG: 39.8,
			KeyNutrients: []string{"Fiber", "Calcium", "Iron", "Anethole"},
		},
		HealthBenefits: []string{"Digestive Aid", "Breath Freshener", "Anti-inflammatory", "Cooling"},
		Description:    "Sweet and cooling spice that aids digestion and pacifies Pitta",
	},
	{
		ID:       "sweet_potato",
		Name:     "Sweet Potato (Shakarkand)",
		Category: "vegetables",
		Emoji:    "🍠",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Vata",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 86, ProteinG: 1.6, CarbsG: 20.1, FiberG: 3.0,
			KeyNutrients: []string{"Vitamin A", "Potassium", "Vitamin C", "Fiber"},
		},
		HealthBenefits: []string{"Grounding", "Energy", "Eye Health", "Immunity"},
		Description:    "Naturally sweet root vegetable that grounds Vata and provides sustained energy",
	},
	{
		ID:       "warm_lemon_water",
		Name:     "Warm Water with Lemon",
		Category: "beverages",
		Emoji:    "🍋",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sour"},
			Effect:  "Vata",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 5, ProteinG: 0, CarbsG: 1, FiberG: 0,
			KeyNutrients: []string{"Vitamin C"},
		},
		HealthBenefits: []string{"Detoxifies", "Aids Digestion", "Balances Vata"},
		Description:    "Start the day with warm water to balance Vata",
	},
	{
		ID:       "oatmeal",
		Name:     "Oatmeal",
		Category: "grains",
		Emoji:    "🥣",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Vata",
			Potency: "Neutral",
		},
		Nutrition: Nutrition{
			Calories: 350, ProteinG: 12, CarbsG: 58, FiberG: 8,
			KeyNutrients: []string{"Iron", "Fiber"},
		},
		HealthBenefits: []string{"Grounding for Vata", "Iron Rich", "Sustained Energy"},
		Description:    "Warm, nourishing breakfast grain for Vata-Pitta constitutions",
	},
	{
		ID:       "green_tea",
		Name:     "Green Tea",
		Category: "beverages",
		Emoji:    "🍵",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Bitter", "Astringent"},
			Effect:  "Kapha",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 2, ProteinG: 0, CarbsG: 0, FiberG: 0,
			KeyNutrients: []string{"Antioxidants", "Catechins"},
		},
		HealthBenefits: []string{"Antioxidant", "Metabolism", "Mental Clarity"},
		Description:    "Light, stimulating tea that reduces Kapha heaviness",
	},
	{
		ID:       "basmati_rice",
		Name:     "Basmati Rice",
		Category: "grains",
		Emoji:    "🍚",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Vata",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 200, ProteinG: 4, CarbsG: 45, FiberG: 1,
			KeyNutrients: []string{"Carbohydrates"},
		},
		HealthBenefits: []string{"Easy to Digest", "Grounding", "Energy"},
		Description:    "Light, easily digestible grain",
	},
	{
		ID:       "moong_dal",
		Name:     "Dal (Lentils)",
		Category: "legumes",
		Emoji:    "🥘",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Vata",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 150, ProteinG: 12, CarbsG: 25, FiberG: 8,
			KeyNutrients: []string{"Protein", "Iron"},
		},
		HealthBenefits: []string{"High Protein", "Easy Digestion", "Balances Vata"},
		Description:    "Protein-rich yellow moong dal that is easy on digestion",
	},
	{
		ID:       "herbal_tea",
		Name:     "Herbal Tea",
		Category: "beverages",
		Emoji:    "☕",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Pungent", "Sweet"},
			Effect:  "Vata",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 10, ProteinG: 0, CarbsG: 2, FiberG: 0,
			KeyNutrients: []string{"Antioxidants"},
		},
		HealthBenefits: []string{"Digestive Aid", "Warming", "Calming"},
		Description:    "Ginger cardamom tea to aid digestion and balance Vata",
	},
	{
		ID:       "vegetable_soup",
		Name:     "Vegetable Soup",
		Category: "combination",
		Emoji:    "🍲",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet", "Astringent"},
			Effect:  "Vata",
			Potency: "Neutral",
		},
		Nutrition: Nutrition{
			Calories: 120, ProteinG: 4, CarbsG: 20, FiberG: 5,
			KeyNutrients: []string{"Vitamins", "Minerals"},
		},
		HealthBenefits: []string{"Light Dinner", "Nutrient Dense", "Easy Digestion"},
		Description:    "Light seasonal vegetable soup suited to an evening meal",
	},
	{
		ID:       "golden_milk",
		Name:     "Warm Milk with Turmeric",
		Category: "beverages",
		Emoji:    "🥛",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet", "Bitter"},
			Effect:  "Vata",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 150, ProteinG: 8, CarbsG: 12, FiberG: 0,
			KeyNutrients: []string{"Calcium", "Curcumin"},
		},
		HealthBenefits: []string{"Sleep Aid", "Anti-inflammatory", "Nourishing"},
		Description:    "Golden milk taken before bed to settle Vata and promote sleep",
	},
	{
		ID:       "khichdi",
		Name:     "Khichdi",
		Category: "combination",
		Emoji:    "🍛",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Vata",
			Potency: "Neutral",
		},
		Nutrition: Nutrition{
			Calories: 280, ProteinG: 10, CarbsG: 50, FiberG: 6,
			KeyNutrients: []string{"Complete Protein"},
		},
		HealthBenefits: []string{"Complete Nutrition", "Easy Digestion", "Comfort Food"},
		Description:    "Moong dal khichdi, the classic tridoshic one-pot meal",
	},
	{
		ID:       "chapati",
		Name:     "Chapati",
		Category: "grains",
		Emoji:    "🫓",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet"},
			Effect:  "Kapha",
			Potency: "Neutral",
		},
		Nutrition: Nutrition{
			Calories: 104, ProteinG: 3.5, CarbsG: 20, FiberG: 2.5,
			KeyNutrients: []string{"Fiber", "B Vitamins"},
		},
		HealthBenefits: []string{"Sustained Energy", "Fiber Rich"},
		Description:    "Whole wheat flatbread, a staple accompaniment",
	},
	{
		ID:       "idli",
		Name:     "Idli",
		Category: "grains",
		Emoji:    "🍘",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet", "Sour"},
			Effect:  "Pitta",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 58, ProteinG: 2, CarbsG: 12, FiberG: 0.8,
			KeyNutrients: []string{"Carbohydrates", "Probiotics"},
		},
		HealthBenefits: []string{"Fermented", "Light", "Easy Digestion"},
		Description:    "Steamed fermented rice cake, gentle on the stomach",
	},
	{
		ID:       "buttermilk",
		Name:     "Buttermilk",
		Category: "dairy",
		Emoji:    "🥛",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sour", "Astringent"},
			Effect:  "Pitta",
			Potency: "Cooling",
		},
		Nutrition: Nutrition{
			Calories: 40, ProteinG: 3.3, CarbsG: 4.8, FiberG: 0,
			KeyNutrients: []string{"Calcium", "Probiotics"},
		},
		HealthBenefits: []string{"Probiotic", "Cooling", "Digestive"},
		Description:    "Spiced churned buttermilk, a cooling digestive drink",
	},
	{
		ID:       "quinoa",
		Name:     "Quinoa",
		Category: "grains",
		Emoji:    "🌾",
		Ayurvedic: AyurvedicProperties{
			Tastes:  []string{"Sweet", "Astringent"},
			Effect:  "Kapha",
			Potency: "Heating",
		},
		Nutrition: Nutrition{
			Calories: 120, ProteinG: 4.4, CarbsG: 21.3, FiberG: 2.8,
			KeyNutrients: []string{"Complete Protein", "Magnesium", "Iron"},
		},
		HealthBenefits: []string{"Complete Protein", "Light", "Energy"},
		Description:    "Light protein-rich grain that suits Kapha constitutions",
	},
}
