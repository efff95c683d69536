package room

type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
	StatusInactive    Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusInactive:
		return true
	default:
		return false
	}
}

func (s Status) IsBookable() bool {
	return s == StatusAvailable
}
