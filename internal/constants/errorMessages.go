package constants

const (
	MsgTeamNotFound       = "Team not found"
	MsgUsernameTaken      = "Username already registered"
	MsgInvalidCredentials = "Invalid username or password"
	MsgSerialTaken        = "Serial number already in use"
)

const (
	StatusCreated       = "Component registered"
	StatusInstalled     = "Component installed"
	StatusUninstalled   = "Component removed"
	StatusRecycled      = "Components recycled"
	StatusRegistered    = "Personnel registered"
	StatusAircraftAdded = "Aircraft added to the line"
)
