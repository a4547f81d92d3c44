package entity

// MenuItem is an entry of the site navigation menu.
type MenuItem struct {
	ID   string `json:"id"`
	Href string `json:"href"`
}
