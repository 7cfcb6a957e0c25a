package types

// Enum для типа тренировки, тег приходит вместе с пакетом датчика
type Discipline string

func (d Discipline) String() string {
	return string(d)
}

const (
	Swimming    Discipline = "SWM"
	Running     Discipline = "RUN"
	RaceWalking Discipline = "WLK"
)

// Disciplines returns every supported tag in a stable order.
func Disciplines() []Discipline {
	return []Discipline{Running, RaceWalking, Swimming}
}

// IsValid reports whether d is one of the supported tags.
func (d Discipline) IsValid() bool {
	switch d {
	case Running, RaceWalking, Swimming:
		return true
	default:
		return false
	}
}
