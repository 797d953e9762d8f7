package deliveroo

// Deliveroo gives no contract for its client-side state. Every identifier
// the scraper relies on lives in this table so a site redesign means
// updating one file, not hunting through the normalizers.

const (
	stateScriptID = "__NEXT_DATA__"

	// listing feed
	partnerCardMarker = "partner-card"
	keyBlocks         = "blocks"
	keyTemplateID     = "rooTemplateId"
	keyBlockData      = "data"
	keyPartnerName    = "partner-name.content"
	keyPartnerRating  = "partner-rating.content"
	keyDistance       = "distance-presentational.content"
	keyOnTap          = "partner-card.on-tap"
	keyAction         = "action"
	keyParameters     = "parameters"
	keyRestaurantHref = "restaurant_href"

	// menu page
	keyMenu           = "menu"
	keyMetas          = "metas"
	keyRoot           = "root"
	keyCategories     = "categories"
	keyID             = "id"
	keyItems          = "items"
	keyCategoryID     = "categoryId"
	keyCategoryName   = "name"
	keyItemName       = "name"
	keyItemDesc       = "description"
	keyItemPrice      = "price"
	keyPriceFormatted = "formatted"

	defaultName     = "Unknown"
	defaultDistance = "-"
	defaultCategory = "Altro"
	missingPrice    = "?"
)

var (
	listingFeedPath = []string{"props", "initialState", "home", "feed", "results", "data"}
	menuPagePath    = []string{"props", "initialState", "menuPage"}
)
