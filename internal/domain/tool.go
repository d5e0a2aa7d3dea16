package domain

type ToolStatus string

const (
	ToolStatusAvailable ToolStatus = "Available"
	ToolStatusRented    ToolStatus = "Rented"
)

type Tool struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	OwnerID  int        `json:"ownerID"`
	Status   ToolStatus `json:"status"`
	QRToken  string     `json:"qrToken"`
	Location Location   `json:"location"`
}

// NearbyTool is the directory projection of a Tool: the stored entity
// joined with owner metadata and the distance from the query point.
type NearbyTool struct {
	Tool
	OwnerName       string  `json:"ownerName"`
	OwnerTrustScore int     `json:"ownerTrustScore"`
	Distance        float64 `json:"distance"`
}

// Defaults used when a tool's owner record is missing from the store.
const (
	UnknownOwnerName       = "Unknown"
	UnknownOwnerTrustScore = DefaultTrustScore
)
