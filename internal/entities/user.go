package entities

type Role string

const (
	RoleDeveloper Role = "DEVELOPER"
	RoleTeamLead  Role = "TEAM LEAD"
	RoleITLead    Role = "IT LEAD"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDeveloper, RoleTeamLead, RoleITLead, RoleAdmin:
		return true
	}
	return false
}

type Classification string

const (
	ClassificationCore    Classification = "Core"
	ClassificationNonCore Classification = "Non-Core"
)

func (c Classification) Valid() bool {
	return c == ClassificationCore || c == ClassificationNonCore
}

type User struct {
	ID             string
	Username       string
	DisplayName    string
	Email          string
	Classification Classification
	Roles          []Role
}

func (u User) HasRole(roles ...Role) bool {
	for _, have := range u.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
