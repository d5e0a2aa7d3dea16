package domain

// Document is the entire persisted state: one JSON object holding every
// collection. The store reads and writes it whole; there is no
// finer-grained query surface.
type Document struct {
	Users     []User     `json:"users"`
	Tools     []Tool     `json:"tools"`
	Checkouts []Checkout `json:"checkouts"`
	Ratings   []Rating   `json:"ratings"`
}

// Finder methods return pointers into the document's slices so callers
// can mutate records in place before the document is saved back.

func (d *Document) FindUserByID(id int) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) FindToolByID(id int) *Tool {
	for i := range d.Tools {
		if d.Tools[i].ID == id {
			return &d.Tools[i]
		}
	}
	return nil
}

func (d *Document) FindToolByQRToken(token string) *Tool {
	for i := range d.Tools {
		if d.Tools[i].QRToken == token {
			return &d.Tools[i]
		}
	}
	return nil
}

func (d *Document) FindCheckoutByID(id int) *Checkout {
	for i := range d.Checkouts {
		if d.Checkouts[i].ID == id {
			return &d.Checkouts[i]
		}
	}
	return nil
}

// NextUserID, NextCheckoutID and NextRatingID assign identifiers as
// max(existing)+1. One scheme is used uniformly across all collections.

func (d *Document) NextUserID() int {
	max := 0
	for i := range d.Users {
		if d.Users[i].ID > max {
			max = d.Users[i].ID
		}
	}
	return max + 1
}

func (d *Document) NextCheckoutID() int {
	max := 0
	for i := range d.Checkouts {
		if d.Checkouts[i].ID > max {
			max = d.Checkouts[i].ID
		}
	}
	return max + 1
}

func (d *Document) NextRatingID() int {
	max := 0
	for i := range d.Ratings {
		if d.Ratings[i].ID > max {
			max = d.Ratings[i].ID
		}
	}
	return max + 1
}
