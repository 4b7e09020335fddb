package model

// UserParties is the party service's view of one user.
type UserParties struct {
	Current []Party `json:"current"`
	Pending []Party `json:"pending"`
}

// Party is a multiplayer group.
type Party struct {
	ID       string        `json:"id"`
	Revision int64         `json:"revision"`
	Members  []PartyMember `json:"members"`
}

// PartyMember is one account's entry in a party.
type PartyMember struct {
	AccountID string            `json:"account_id"`
	Revision  int64             `json:"revision"`
	Role      string            `json:"role"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// Member returns the entry matching accountID, or nil.
func (p *Party) Member(accountID string) *PartyMember {
	for i := range p.Members {
		if p.Members[i].AccountID == accountID {
			return &p.Members[i]
		}
	}
	return nil
}

// PartyMembership locates the caller inside their current party.
type PartyMembership struct {
	PartyID   string
	AccountID string
	Revision  int64
}

// MemberMetaPatch is a conditional update of a member's metadata.
type MemberMetaPatch struct {
	Delete   []string          `json:"delete"`
	Revision int64             `json:"revision"`
	Update   map[string]string `json:"update"`
}
