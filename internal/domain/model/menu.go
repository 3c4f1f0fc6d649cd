package model

// Weekdays lists the canonical keys a WeeklyMenu must always carry, in
// display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type Meal struct {
	Menu string `json:"menu"`
	Time string `json:"time"`
}

type DayMenu struct {
	Breakfast Meal `json:"breakfast"`
	Lunch     Meal `json:"lunch"`
	Dinner    Meal `json:"dinner"`
}

// WeeklyMenu maps weekday name to the day's three meals. It is replaced
// wholesale on save; there are no partial-merge semantics.
type WeeklyMenu map[string]DayMenu

// Complete reports whether every canonical weekday is present.
func (m WeeklyMenu) Complete() bool {
	for _, day := range Weekdays {
		if _, ok := m[day]; !ok {
			return false
		}
	}
	return true
}

// Normalize returns a menu with exactly the seven canonical weekday keys.
// Missing days are filled from the built-in default; unknown keys are
// dropped. Safe to call on a nil map.
func (m WeeklyMenu) Normalize() WeeklyMenu {
	defaults := DefaultWeeklyMenu()
	out := make(WeeklyMenu, len(Weekdays))
	for _, day := range Weekdays {
		if dm, ok := m[day]; ok {
			out[day] = dm
		} else {
			out[day] = defaults[day]
		}
	}
	return out
}

// DefaultWeeklyMenu is the menu seeded when the server has none stored or a
// stored one is missing days.
func DefaultWeeklyMenu() WeeklyMenu {
	return WeeklyMenu{
		"Monday": {
			Breakfast: Meal{Menu: "Idli, Sambar", Time: "08:00 AM - 09:30 AM"},
			Lunch:     Meal{Menu: "Rice, Dal", Time: "01:00 PM - 02:30 PM"},
			Dinner:    Meal{Menu: "Roti, Sabzi", Time: "08:00 PM - 09:30 PM"},
		},
		"Tuesday": {
			Breakfast: Meal{Menu: "Poha", Time: "08:00 AM - 09:30 AM"},
			Lunch:     Meal{Menu: "Rajma Chawal", Time: "01:00 PM - 02:30 PM"},
			Dinner:    Meal{Menu: "Mixed Veg", Time: "08:00 PM - 09:30 PM"},
		},
		"Wednesday": {
			Breakfast: Meal{Menu: "Paratha", Time: "08:00 AM - 09:30 AM"},
			Lunch:     Meal{Menu: "Pulao", Time: "01:00 PM - 02:30 PM"},
			Dinner:    Meal{Menu: "Dal Tadka", Time: "08:00 PM - 09:30 PM"},
		},
		"Thursday": {
			Breakfast: Meal{Menu: "Toast", Time: "08:00 AM - 09:30 AM"},
			Lunch:     Meal{Menu: "Kadhi Pakora", Time: "01:00 PM - 02:30 PM"},
			Dinner:    Meal{Menu: "Chana Masala", Time: "08:00 PM - 09:30 PM"},
		},
		"Friday": {
			Breakfast: Meal{Menu: "Upma", Time: "08:00 AM - 09:30 AM"},
			Lunch:     Meal{Menu: "Sambhar Rice", Time: "01:00 PM - 02:30 PM"},
			Dinner:    Meal{Menu: "Paneer", Time: "08:00 PM - 09:30 PM"},
		},
		"Saturday": {
			Breakfast: Meal{Menu: "Poori Sabzi", Time: "08:00 AM - 10:00 AM"},
			Lunch:     Meal{Menu: "Chole Bhature", Time: "01:30 PM - 03:00 PM"},
			Dinner:    Meal{Menu: "Veg Biryani", Time: "08:00 PM - 10:00 PM"},
		},
		"Sunday": {
			Breakfast: Meal{Menu: "Pancakes", Time: "08:30 AM - 10:30 AM"},
			Lunch:     Meal{Menu: "Special Thali", Time: "01:30 PM - 03:30 PM"},
			Dinner:    Meal{Menu: "Pasta", Time: "08:00 PM - 10:00 PM"},
		},
	}
}
