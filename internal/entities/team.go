package entities

type Team struct {
	ID         string
	Name       string
	LeadUserID string
	MemberIDs  []string
	IsActive   bool
}

func (t Team) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
