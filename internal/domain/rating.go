package domain

// Rating is an append-only record of a borrower rating a completed
// checkout. Ratings run 1 (worst) to 5 (best).
type Rating struct {
	ID         int    `json:"id"`
	CheckoutID int    `json:"checkoutID"`
	BorrowerID int    `json:"borrowerID"`
	LenderID   int    `json:"lenderID"`
	Rating     int    `json:"rating"`
	Timestamp  string `json:"timestamp"`
}
