// Package catalog holds the static reference data the planning engines
// consume: the meal catalog and the exercise library. Both are constructed
// once at startup and passed into the generators; they are never mutated.
package catalog

// Meal type names used as catalog keys and plan slot labels.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
)

// MealTypes lists the meal slots of a day in serving order.
func MealTypes() []string {
	return []string{MealBreakfast, MealLunch, MealDinner}
}

// Days lists the day keys of a weekly plan, Monday first.
func Days() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

// Fitness levels recognised by the exercise library.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Equipment categories recognised by the exercise library.
const (
	EquipmentBodyweight = "None/Bodyweight"
	EquipmentDumbbells  = "Dumbbells"
	EquipmentFullGym    = "Full Gym Access"
)

// Meal is a single catalog entry with its nutritional profile.
//
// Restrictions lists the diet tags this meal is NOT suitable for.
// Cuisine may contain the wildcard "Any".
type Meal struct {
	Name         string   `json:"name"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Restrictions []string `json:"restrictions"`
	Cuisine      []string `json:"cuisine"`
	Link         string   `json:"link,omitempty"`
}

// MealCatalog maps a meal type to its catalog entries.
type MealCatalog map[string][]Meal

// For returns the catalog entries for the given meal type.
func (c MealCatalog) For(mealType string) []Meal {
	return c[mealType]
}

// All returns every entry across all meal types, in catalog order.
func (c MealCatalog) All() []Meal {
	var all []Meal
	for _, mealType := range MealTypes() {
		all = append(all, c[mealType]...)
	}
	return all
}

// EquipmentSets maps an equipment category to its ordered exercise names.
type EquipmentSets map[string][]string

// LevelSets maps a fitness level to its equipment sets.
type LevelSets map[string]EquipmentSets

// SubgroupSets maps a subgroup name (e.g. "Lats") to its level sets.
type SubgroupSets map[string]LevelSets

// ExerciseLibrary is the four-level exercise reference:
// muscle group -> subgroup -> fitness level -> equipment -> exercise names.
type ExerciseLibrary map[string]SubgroupSets

// MuscleGroups returns the muscle group names present in the library.
func (l ExerciseLibrary) MuscleGroups() []string {
	groups := make([]string, 0, len(l))
	for name := range l {
		groups = append(groups, name)
	}
	return groups
}
