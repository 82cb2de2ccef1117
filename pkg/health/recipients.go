package health

// Lab role labels. Matching is exact — recipient selection compares the
// stored role string against these labels verbatim.
const (
	RolePI            = "PI"
	RoleLabManager    = "Lab Manager"
	RoleAdministrator = "Administrator"
	RoleResearcher    = "Researcher"
)

// PersonProfile is the roster view used for recipient selection.
type PersonProfile struct {
	ID    uint
	Name  string
	Email string
	Role  string
}

// AlertRecipients filters a roster down to the people eligible to receive
// operational alerts: PIs, lab managers, and administrators. Input order is
// preserved; researchers and any other roles are excluded.
func AlertRecipients(profiles []PersonProfile) []PersonProfile {
	out := make([]PersonProfile, 0, len(profiles))
	for _, p := range profiles {
		switch p.Role {
		case RolePI, RoleLabManager, RoleAdministrator:
			out = append(out, p)
		}
	}
	return out
}
