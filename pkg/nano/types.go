package nano

// LoginResponse is the body of a successful sign-in: the token to present
// on authenticated requests.
type LoginResponse struct {
	AuthToken string `json:"auth_token"`
}

// Fundometer is the site-wide fundraising tracker.
type Fundometer struct {
	// Goal is the fundraising target in dollars.
	Goal uint64 `json:"goal"`
	// Raised is the running total, stringified on the wire.
	Raised StringFloat `json:"raised"`
	// DonorCount is the number of donors so far.
	DonorCount uint64 `json:"donorCount"`
}

// StoreItem is one item in the merchandise store.
type StoreItem struct {
	// Handle is the item's unique slug.
	Handle string `json:"handle"`
	// Image is the item's picture, unwrapped from the API's {"src": ...}
	// form.
	Image ImageURL `json:"image"`
	// Title is the user-facing name.
	Title string `json:"title"`
}
