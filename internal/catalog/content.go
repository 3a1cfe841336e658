package catalog

// Brand is the wordmark shown in headers and overlays.
const Brand = "coffee flavours"

// Established is the founding year shown in the nav menu footer.
const Established = 2024

// Location is a store listed on the locations page.
type Location struct {
	Name    string
	Address string
	Hours   string
}

// Locations are the stores in display order. The first one is the
// flagship used by the booking modal.
var Locations = []Location{
	{Name: "Downtown Hub", Address: "123 Coffee St, New York", Hours: "7am - 9pm"},
	{Name: "The Roastery", Address: "456 Bean Ave, Brooklyn", Hours: "8am - 10pm"},
	{Name: "Garden Terrace", Address: "789 Leaf Rd, Queens", Hours: "7am - 7pm"},
}

// MenuEntry is a single line on the menu page.
type MenuEntry struct {
	Name        string
	Ingredients string
	Price       string
}

// MenuCategory groups entries under a heading.
type MenuCategory struct {
	Name    string
	Entries []MenuEntry
}

// MenuCategories returns the menu page content. Entries are placeholders,
// four per category.
func MenuCategories() []MenuCategory {
	names := []string{"Classic Brews", "Signature Lattes", "Cold Selection"}
	out := make([]MenuCategory, len(names))
	for i, name := range names {
		entries := make([]MenuEntry, 4)
		for j := range entries {
			entries[j] = MenuEntry{
				Name:        "Coffee Name " + string(rune('1'+j)),
				Ingredients: "Espresso, steamed milk, vanilla syrup",
				Price:       "$4.50",
			}
		}
		out[i] = MenuCategory{Name: name, Entries: entries}
	}
	return out
}

// PopularSearches are the canned suggestions in the search overlay.
var PopularSearches = []string{
	"Seasonal Lattes",
	"Cold Brew Guide",
	"Vegan Pastries",
	"Whole Bean Coffee",
}

// RecentDiscoveryCount is how many catalog items the search overlay lists
// under "Recent Flavour Discoveries".
const RecentDiscoveryCount = 4

// Stat is a headline number on the story page.
type Stat struct {
	Value string
	Label string
}

// Story is the copy for the story page.
var Story = struct {
	Kicker   string
	Headline string
	Quote    string
	Body     string
	Image    string
	Stats    []Stat
}{
	Kicker:   "Our Story",
	Headline: "Crafting the perfect moment since 2024.",
	Quote:    `"We believe that coffee is more than just a drink. It's a ritual, a conversation, and a moment of peace in a busy world."`,
	Body: "Founded in the heart of the city, Coffee Flavours began with a simple mission: " +
		"to source the finest beans and roast them with precision to bring out their unique character. " +
		"Every cup we serve is a testament to our passion for quality and our commitment to the craft.",
	Image: "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?q=80&w=1000&auto=format&fit=crop",
	Stats: []Stat{
		{Value: "12k+", Label: "Happy Guests"},
		{Value: "15", Label: "Global Awards"},
	},
}

// Contact holds the contact page details.
var Contact = struct {
	Headline string
	Email    string
	Phone    string
}{
	Headline: "Get in touch.",
	Email:    "hello@coffeeflavours.com",
	Phone:    "+1 (555) 123-4567",
}

// SocialLinks are shown in the header and nav menu footer.
var SocialLinks = []string{"Facebook", "Twitter", "Instagram"}
