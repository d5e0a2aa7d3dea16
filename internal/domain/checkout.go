package domain

type CheckoutStatus string

const (
	CheckoutStatusActive          CheckoutStatus = "Active"
	CheckoutStatusReturned        CheckoutStatus = "Returned"
	CheckoutStatusReturnedLate    CheckoutStatus = "Returned_Late"
	CheckoutStatusReturnedDamaged CheckoutStatus = "Returned_Damaged"
)

// Checkout records one borrow transaction. ToolName and QRToken are
// denormalized from the tool at checkout time. Status is the only field
// that changes after creation; the three Returned_* states are terminal.
type Checkout struct {
	ID           int            `json:"id"`
	ToolID       int            `json:"toolID"`
	ToolName     string         `json:"toolName"`
	BorrowerID   int            `json:"borrowerID"`
	LenderID     int            `json:"lenderID"`
	QRToken      string         `json:"qrToken"`
	CheckoutTime string         `json:"checkoutTime"`
	Status       CheckoutStatus `json:"status"`
}

// ScoreAction selects an UpdateScore transition.
type ScoreAction string

const (
	ActionReturnOnTime ScoreAction = "return_on_time"
	ActionReturnLate   ScoreAction = "return_late"
	ActionDamage       ScoreAction = "damage"
	ActionRate         ScoreAction = "rate"
)

// ScoreResult reports the trust scores after an UpdateScore transition.
// ScoreChange is the delta applied to the borrower; the lender's delta
// for a rate action is always zero and is not reported separately.
type ScoreResult struct {
	BorrowerScore int `json:"borrowerScore"`
	LenderScore   int `json:"lenderScore"`
	ScoreChange   int `json:"scoreChange"`
}
