package models

// Hotel is one residence record as returned by the hotel search. It doubles
// as the denormalized snapshot saved before opening the details screen.
type Hotel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CountryID     string `json:"country_id"`
	CountryName   string `json:"country_name"`
	RegionID      string `json:"region_id"`
	RegionName    string `json:"region_name"`
	TypeID        string `json:"resd_type_id"`
	TypeName      string `json:"resd_type_name"`
	DistanceName  string `json:"distance_name"`
	AgencyID      string `json:"agency_id"`
	AgencyName    string `json:"agency_name"`
	Description   string `json:"description"`
	ImageID       string `json:"resd_image_id"`
	PriceImageID  string `json:"price_image_id"`
	SearchCounter int    `json:"search_counter"`
}

// Agency is a travel agency record; the profile screen renders it from the
// snapshot saved at navigation time.
type Agency struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Website      string `json:"website"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
	LogoID       string `json:"logo_id"`
}

// EuroTripLeg is one leg of a Euro-trip package.
type EuroTripLeg struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	TransportationType string `json:"transportation_type"`
	NumberOfDays       string `json:"no_of_days"`
}

// EuroTrip groups trip legs under a destination country.
type EuroTrip struct {
	ID          string        `json:"id"`
	CountryName string        `json:"country_name"`
	Legs        []EuroTripLeg `json:"detail_records"`
}

// Category is a typed lookup constant (country, region, hotel type).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"category_name"`
}

// Filter is a searchable hotel attribute. Filters whose name contains
// "Distance" form a separate single-choice group on the search screen.
type Filter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
