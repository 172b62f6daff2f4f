package consoles

// Console shows messages meant for the person running the tool, as opposed to
// diagnostic logs.
type Console interface {
	Printf(format string, a ...any)
}
