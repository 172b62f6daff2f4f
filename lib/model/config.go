package model

type NumberMode int

const (
	NumberNone NumberMode = iota
	NumberAll
	NumberNonBlank
)

func (m NumberMode) String() string {
	switch m {
	case NumberNone:
		return "none"
	case NumberAll:
		return "all"
	case NumberNonBlank:
		return "non-blank"
	default:
		return "<unknown>"
	}
}

// Config is the set of transformations applied to every source. It is built
// once from the command line and never modified afterwards.
type Config struct {
	Number       NumberMode
	SqueezeBlank bool
	ShowEnds     bool
}
