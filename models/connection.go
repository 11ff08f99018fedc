package models

// RelationState is the state of one directed edge in the relation store.
type RelationState string

const (
	// RelationPending on edge (owner, peer) means peer asked owner to connect.
	RelationPending RelationState = "pending"
	// RelationConnected edges always exist in both directions.
	RelationConnected RelationState = "connected"
)

// ConnectionRequest is the body of the send/accept/decline endpoints.
// From is the requester and To is the target. The authenticated caller
// fills in whichever side it owns when the field is omitted.
type ConnectionRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// PendingRequests lists who is waiting for the user's answer.
type PendingRequests struct {
	UserID string   `json:"user_id"`
	From   []string `json:"from"`
}
