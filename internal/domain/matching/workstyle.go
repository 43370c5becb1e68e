package matching

import "strings"

type WorkStyle string

const (
	WorkStyleRemote WorkStyle = "remote"
	WorkStyleHybrid WorkStyle = "hybrid"
	WorkStyleOnsite WorkStyle = "onsite"
)

func ParseWorkStyle(s string) (WorkStyle, bool) {
	switch WorkStyle(strings.ToLower(strings.TrimSpace(s))) {
	case WorkStyleRemote:
		return WorkStyleRemote, true
	case WorkStyleHybrid:
		return WorkStyleHybrid, true
	case WorkStyleOnsite:
		return WorkStyleOnsite, true
	default:
		return "", false
	}
}

func (w WorkStyle) Valid() bool {
	_, ok := ParseWorkStyle(string(w))
	return ok
}
