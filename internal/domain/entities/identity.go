package entities

// Role is the caller's shop role as resolved by the identity provider.

type Role string

const (
	RoleTechnician    Role = "TECHNICIAN"
	RoleOfficeManager Role = "OFFICE_MANAGER"
	RoleAdmin         Role = "ADMIN"
)

// Identity is the resolved caller passed into every engine operation. The
// service never stores or validates credentials itself.
type Identity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	TechnicianID string `json:"technician_id,omitempty"`
}

// IsAssignedTo reports whether this caller is the technician assigned to the card.
func (i Identity) IsAssignedTo(card JobCard) bool {
	return i.TechnicianID != "" && i.TechnicianID == card.AssignedTechnicianID
}
