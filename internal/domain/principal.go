package domain

type Role string

const (
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleTrainer, RoleAdmin:
		return true
	}
	return false
}

// Principal is the server-verified caller of a command. SubjectID is the
// member id for members and the trainer id for trainers.
type Principal struct {
	Role      Role   `json:"role"`
	SubjectID string `json:"subject_id"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsMember reports whether p acts as the given member.
func (p Principal) IsMember(memberID string) bool {
	return p.Role == RoleMember && p.SubjectID == memberID
}

// IsTrainer reports whether p acts as the given trainer.
func (p Principal) IsTrainer(trainerID string) bool {
	return p.Role == RoleTrainer && p.SubjectID == trainerID
}
