// Package friends, as part of the friends module.
// This file, `models.go`, defines the friend edge as persisted in the store.
package friends

import "time"

// Friend is one edge of the viewer's friends list. Edges are a locally-mutated
// sample collection: removal deletes the entry outright, it is not tombstoned.
type Friend struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar"`
	Since       time.Time `json:"since"`
}
