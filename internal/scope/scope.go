// Package scope resolves which disaster a request may see. Admin requests
// carry a per-session pointer kept in Redis; public requests always follow
// the single globally-active disaster row. Every repository call takes the
// resolved DisasterScope explicitly instead of reading ambient state.
package scope

// DisasterScope identifies the disaster a request is working inside.
// The zero value means "no disaster selected": scoped queries fail closed
// and return nothing rather than falling back to all disasters.
type DisasterScope struct {
	DisasterID int64  `json:"disaster_id"`
	Name       string `json:"name"`
}

// Valid reports whether the scope points at a disaster.
func (s DisasterScope) Valid() bool {
	return s.DisasterID > 0
}
