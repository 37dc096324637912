package person

// Gender of a person. GenderNone is the zero value and is rejected by the
// Person factory and mutators.
type Gender string

const (
	GenderNone   Gender = "none"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsDefined() bool {
	switch g {
	case GenderNone, GenderMale, GenderFemale:
		return true
	}
	return false
}

func (g Gender) String() string { return string(g) }
