// Package queue defines message payloads exchanged over the message broker.
package queue

// SignupConfirmedEvent is published when a registration succeeds.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.
type SignupConfirmedEvent struct {
	ClassName       string `json:"className"`
	Day             string `json:"day"`
	Time            string `json:"time"`
	ChildFirstName  string `json:"childFirstName"`
	ChildLastName   string `json:"childLastName"`
	ParentFirstName string `json:"parentFirstName"`
	ParentLastName  string `json:"parentLastName"`
	ConfirmedAt     string `json:"confirmedAt"`
}
