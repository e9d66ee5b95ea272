package inventory

// USDToINR converts generated base prices into the display currency.
const USDToINR = 80

// CurrencyINR is the display currency of every generated offer.
const CurrencyINR = "INR"

// priceRange is an inclusive USD range a base price is drawn from.
type priceRange struct {
	Min int
	Max int
}

// tier picks a price range by matching brand substrings. Premium is checked
// before budget.
type tier struct {
	Premium      []string
	PremiumRange priceRange
	Budget       []string
	BudgetRange  priceRange
	Default      priceRange
}

// Hotels.

const (
	minHotelResults  = 10
	minHotelAmenity  = 3
	maxHotelAmenity  = 6
	placeholderImage = "https://via.placeholder.com/300x200/2563eb/ffffff?text="
)

// Largest party a hotel search accepts. Keeps base*guests*rooms well inside int.
const (
	MaxHotelGuests = 50
	MaxHotelRooms  = 20
)

// cityHotels are curated names returned first for known cities. Keys are
// lower-case and trimmed.
var cityHotels = map[string][]string{
	"pune": {
		"JW Marriott Pune", "The Westin Pune Koregaon Park", "Hyatt Pune", "Conrad Pune", "Marriott Suites Pune",
		"Novotel Pune", "Sheraton Grand Pune", "Radisson Blu Pune", "The Corinthians Resort & Club", "Oakwood Residence Pune",
	},
	"mumbai": {
		"The Taj Mahal Palace", "The Oberoi Mumbai", "Trident Nariman Point", "ITC Grand Central", "JW Marriott Mumbai Juhu",
		"Sofitel Mumbai BKC", "The St. Regis Mumbai", "Grand Hyatt Mumbai", "Taj Lands End", "Four Seasons Hotel Mumbai",
	},
	"goa": {
		"Taj Exotica Resort & Spa", "The Leela Goa", "Park Hyatt Goa Resort", "Grand Hyatt Goa", "W Goa",
		"The Zuri White Sands", "Holiday Inn Resort Goa", "Radisson Blu Resort Goa", "Cidade de Goa", "Vivanta Goa, Panaji",
	},
	"mahabaleshwar": {
		"Le Meridien Mahabaleshwar", "Evershine Resort", "Brightland Resort & Spa", "Ramsukh Resorts & Spa", "Bella Vista Resort",
		"Regenta MPG Club", "Citrus Chambers Mahabaleshwar", "Lake View Resort", "Valley View Resort", "Saj Resort",
	},
	"new york": {
		"The Plaza Hotel", "The Ritz-Carlton New York", "The Peninsula New York", "Four Seasons Hotel New York", "The Langham New York",
		"Park Hyatt New York", "Conrad New York Downtown", "The Knickerbocker", "Lotte New York Palace", "Waldorf Astoria New York",
	},
	"san francisco": {
		"Fairmont San Francisco", "Hotel Nikko San Francisco", "The Ritz-Carlton San Francisco", "Palace Hotel", "Hotel Drisco Pacific Heights",
		"InterContinental San Francisco", "Grand Hyatt San Francisco", "Hotel Kabuki", "The Marker San Francisco", "Argonaut Hotel",
	},
	"london": {
		"The Savoy", "The Ritz London", "The Langham London", "Shangri-La The Shard", "The Dorchester",
		"Rosewood London", "The Connaught", "Corinthia London", "The Berkeley", "Claridge's",
	},
	"punjab": {
		"Hyatt Regency Ludhiana", "Radisson Blu Hotel Amritsar", "JW Marriott Chandigarh", "The Lalit Chandigarh", "Park Plaza Ludhiana",
		"Hotel Mountview Chandigarh", "Best Western Merrion Amritsar", "Ramada Amritsar", "Hotel Cabbana", "Hotel City Heart Premium",
	},
	"bangalore": {
		"The Leela Palace Bengaluru", "Taj West End", "ITC Gardenia", "The Oberoi Bengaluru", "JW Marriott Hotel Bengaluru",
		"Shangri-La Hotel Bengaluru", "The Ritz-Carlton Bangalore", "Vivanta Bengaluru", "Radisson Blu Atria Bengaluru", "Conrad Bengaluru",
	},
}

var hotelChains = []string{
	"Marriott", "Hilton", "Hyatt", "InterContinental", "Sheraton",
	"Radisson", "Best Western", "Holiday Inn", "Comfort Inn", "Quality Inn",
}

var hotelTypes = []string{
	"Hotel", "Resort", "Inn", "Lodge", "Suites", "Plaza", "Tower", "Palace",
}

var hotelAmenities = []string{
	"Free WiFi", "Pool", "Gym", "Restaurant", "Spa",
	"Business Center", "Free Breakfast", "Parking", "Room Service",
}

var curatedStreets = []string{"Main St", "Park Ave", "Broadway", "Central Rd", "Queen St"}

var genericStreets = []string{"Main St", "Oak Ave", "Park Blvd", "Central Rd"}

// curatedHotelPrice applies to every curated name.
var curatedHotelPrice = priceRange{Min: 120, Max: 400}

var hotelTier = tier{
	Premium:      []string{"Marriott", "Hilton"},
	PremiumRange: priceRange{Min: 150, Max: 400},
	Budget:       []string{"Best Western", "Comfort"},
	BudgetRange:  priceRange{Min: 60, Max: 150},
	Default:      priceRange{Min: 80, Max: 300},
}

// Transport.

const (
	minTransportResults = 4
	maxTransportResults = 8
	minTransportFeature = 2
	maxTransportFeature = 4
)

// transportTypes lists the known transport types in a fixed order.
var transportTypes = []string{"taxi", "cab", "auto", "bus", "train", "rental"}

var transportProviders = map[string][]string{
	"taxi":   {"Meru Cabs", "Mega Cabs", "Yellow Cab", "City Taxi"},
	"cab":    {"Uber Go", "Uber Premier", "Uber XL", "Ola Mini", "Ola Prime"},
	"auto":   {"Ola Auto", "Uber Auto", "Rapido Auto"},
	"bus":    {"RedBus Express", "VRL Travels", "Neeta Volvo", "State Transport"},
	"train":  {"Indian Railways", "Metro Rail"},
	"rental": {"Zoomcar", "Revv", "Myles Luxury"},
}

var vehicleTypes = map[string][]string{
	"taxi":   {"Sedan", "Hatchback", "SUV"},
	"cab":    {"Hatchback", "Sedan", "SUV"},
	"auto":   {"Auto Rickshaw"},
	"bus":    {"AC Sleeper", "AC Seater", "Non-AC Seater"},
	"train":  {"AC Chair Car", "Sleeper Class"},
	"rental": {"Hatchback", "Sedan", "SUV"},
}

var vehicleCapacity = map[string]int{
	"Hatchback":     4,
	"Sedan":         4,
	"SUV":           6,
	"Auto Rickshaw": 3,
	"AC Sleeper":    36,
	"AC Seater":     45,
	"Non-AC Seater": 50,
	"AC Chair Car":  78,
	"Sleeper Class": 72,
}

// transportDurations bounds the trip length in minutes per type.
var transportDurations = map[string]priceRange{
	"taxi":   {Min: 15, Max: 90},
	"cab":    {Min: 15, Max: 90},
	"auto":   {Min: 10, Max: 45},
	"bus":    {Min: 60, Max: 480},
	"train":  {Min: 45, Max: 600},
	"rental": {Min: 30, Max: 180},
}

var transportFeatures = []string{
	"Air Conditioning", "GPS Tracking", "Professional Driver", "Free Cancellation",
	"Onboard WiFi", "Luggage Space", "Child Seat", "24/7 Support",
}

// transportDefaultPrice is the default tier range per transport type.
var transportDefaultPrice = map[string]priceRange{
	"taxi":   {Min: 6, Max: 15},
	"cab":    {Min: 5, Max: 14},
	"auto":   {Min: 2, Max: 5},
	"bus":    {Min: 3, Max: 10},
	"train":  {Min: 2, Max: 8},
	"rental": {Min: 20, Max: 45},
}

var transportPremium = []string{"Premier", "Prime", "XL", "Luxury", "Volvo"}

var transportPremiumRange = priceRange{Min: 12, Max: 30}

var transportBudget = []string{"Auto", "Mini", "State Transport", "Metro"}

var transportBudgetRange = priceRange{Min: 2, Max: 6}

// Flights.

const (
	minFlightResults = 6
	maxFlightResults = 10
	minFlightAmenity = 2
	maxFlightAmenity = 4
)

type airline struct {
	Name string
	Code string
}

var airlines = []airline{
	{Name: "IndiGo", Code: "6E"},
	{Name: "Air India", Code: "AI"},
	{Name: "Vistara", Code: "UK"},
	{Name: "SpiceJet", Code: "SG"},
	{Name: "Akasa Air", Code: "QP"},
	{Name: "AirAsia India", Code: "I5"},
	{Name: "Emirates", Code: "EK"},
	{Name: "Singapore Airlines", Code: "SQ"},
	{Name: "Lufthansa", Code: "LH"},
	{Name: "British Airways", Code: "BA"},
}

var flightTier = tier{
	Premium:      []string{"Vistara", "Emirates", "Singapore", "Lufthansa", "British"},
	PremiumRange: priceRange{Min: 180, Max: 450},
	Budget:       []string{"IndiGo", "SpiceJet", "Akasa", "AirAsia"},
	BudgetRange:  priceRange{Min: 50, Max: 150},
	Default:      priceRange{Min: 90, Max: 300},
}

var flightAmenities = []string{
	"In-flight Meals", "Onboard WiFi", "Extra Legroom", "Seatback Entertainment",
	"Priority Boarding", "Checked Baggage", "USB Charging",
}

// PlaceholderFlightPrice is used for upstream flights, which carry no fares.
const PlaceholderFlightPrice = 5000

// NotAvailable fills fields absent from upstream payloads.
const NotAvailable = "N/A"
