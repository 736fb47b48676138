package models

import "strings"

// Status is the lifecycle label of a record. Free text is tolerated in
// storage; these are the values the program itself writes.
type Status string

const (
	StatusAdded    Status = "Added"
	StatusInUse    Status = "In use"
	StatusDepleted Status = "Depleted"
)

var Statuses = []Status{StatusAdded, StatusInUse, StatusDepleted}

var legacyStatuses = map[string]Status{
	"добавлен":     StatusAdded,
	"используется": StatusInUse,
	"израсходован": StatusDepleted,
}

// NormalizeStatus maps known labels (any case, legacy spellings included)
// to their canonical form. Unknown text is returned trimmed but otherwise
// unchanged.
func NormalizeStatus(s string) string {
	t := strings.TrimSpace(s)
	for _, st := range Statuses {
		if strings.EqualFold(t, string(st)) {
			return string(st)
		}
	}
	if st, ok := legacyStatuses[strings.ToLower(t)]; ok {
		return string(st)
	}
	return t
}
