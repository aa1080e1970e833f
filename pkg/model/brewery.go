package model

// Brewery is a single record as returned by the Open Brewery DB API. The v1
// API encodes coordinates as strings and leaves most address fields nullable,
// so everything beyond the identifying fields is a pointer.
type Brewery struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	BreweryType   string  `json:"brewery_type"`
	Address1      *string `json:"address_1"`
	Address2      *string `json:"address_2"`
	Address3      *string `json:"address_3"`
	City          *string `json:"city"`
	StateProvince *string `json:"state_province"`
	PostalCode    *string `json:"postal_code"`
	Country       *string `json:"country"`
	Longitude     *string `json:"longitude"`
	Latitude      *string `json:"latitude"`
	Phone         *string `json:"phone"`
	WebsiteURL    *string `json:"website_url"`
	State         *string `json:"state"`
	Street        *string `json:"street"`
}

// RawPage is the result of one paginated API call. A page with no breweries
// is the terminal condition for a fetch loop.
type RawPage struct {
	Number    int
	Breweries []Brewery
}
