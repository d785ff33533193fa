package constants

// Predefined team names. Seeded by migration; the gate only authorizes
// production for teams present in its table.
const (
	TeamWing     = "Wing Team"
	TeamBody     = "Body Team"
	TeamTail     = "Tail Team"
	TeamAvionics = "Avionics Team"
	TeamAssembly = "Assembly Team"
)

// DefaultTeamCategories is the static production mapping handed to the
// authorization gate at construction. The Assembly Team is deliberately
// absent: it installs components but manufactures none.
func DefaultTeamCategories() map[string]ComponentCategory {
	return map[string]ComponentCategory{
		TeamWing:     CategoryWing,
		TeamBody:     CategoryBody,
		TeamTail:     CategoryTail,
		TeamAvionics: CategoryAvionics,
	}
}

// Personnel roles
const (
	RoleTechnician = "technician"
	RoleStaff      = "staff"
)
