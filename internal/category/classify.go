// Package category assigns grocery categories to item names using an
// ordered keyword table. It is a static lookup, not a scoring model: the
// first declared category with a matching keyword wins.
package category

import "strings"

// Other is the fallback bucket callers use when Classify finds no match.
// History filtering resolves an absent category to this label before
// comparing against filter chips.
const Other = "Other"

// Names lists the closed category vocabulary in declaration order,
// ending with the fallback bucket.
func Names() []string {
	names := make([]string, 0, len(table)+1)
	for _, entry := range table {
		names = append(names, entry.category)
	}
	return append(names, Other)
}

// Classify returns the category for an item name by case-insensitive
// substring containment. Table order is the tie-break: an item matching
// keywords in several categories gets the earliest declared one. The second
// return value is false when no keyword matches.
func Classify(itemName string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return "", false
	}
	for _, entry := range table {
		for _, keyword := range entry.keywords {
			if strings.Contains(name, keyword) {
				return entry.category, true
			}
		}
	}
	return "", false
}

type tableEntry struct {
	category string
	keywords []string
}

// table is ordered: Frozen comes first so "frozen chicken" is not claimed
// by Meat & Seafood. Declaration order is the only tie-break.
var table = []tableEntry{
	{"Frozen", []string{
		"frozen", "ice cream", "es krim", "nugget", "sosis beku", "popsicle",
	}},
	{"Produce", []string{
		"apple", "apel", "banana", "pisang", "orange", "jeruk", "mango", "mangga",
		"tomato", "tomat", "potato", "kentang", "onion", "bawang", "garlic",
		"cabai", "chili", "lettuce", "selada", "spinach", "bayam", "kangkung",
		"wortel", "carrot", "broccoli", "brokoli", "cucumber", "timun", "jahe",
		"ginger", "grape", "anggur", "semangka", "watermelon", "sayur", "buah",
	}},
	{"Dairy", []string{
		"milk", "susu", "cheese", "keju", "yogurt", "yoghurt", "butter", "mentega",
		"cream", "krim",
	}},
	{"Meat & Seafood", []string{
		"chicken", "ayam", "beef", "sapi", "daging", "pork", "fish", "ikan",
		"shrimp", "udang", "cumi", "squid", "telur", "egg", "bakso",
	}},
	{"Bakery", []string{
		"bread", "roti", "cake", "kue", "donut", "donat", "croissant", "bagel",
	}},
	{"Pantry", []string{
		"rice", "beras", "flour", "tepung", "sugar", "gula", "salt", "garam",
		"oil", "minyak", "kecap", "sauce", "saus", "sambal", "pasta", "mie",
		"indomie", "noodle", "bumbu", "santan", "cereal", "sereal",
	}},
	{"Beverages", []string{
		"water", "air mineral", "coffee", "kopi", "tea", "teh", "juice", "jus",
		"soda", "sirup", "syrup",
	}},
	{"Snacks", []string{
		"chips", "keripik", "snack", "biskuit", "biscuit", "cookie", "coklat",
		"chocolate", "candy", "permen", "kacang",
	}},
	{"Household", []string{
		"tissue", "tisu", "detergent", "deterjen", "sabun cuci", "soap", "sponge",
		"spons", "trash bag", "kantong sampah", "pembersih", "cleaner", "baterai",
		"battery",
	}},
	{"Personal Care", []string{
		"shampoo", "sampo", "toothpaste", "pasta gigi", "sikat gigi", "sabun mandi",
		"deodorant", "skincare", "lotion", "razor",
	}},
}
