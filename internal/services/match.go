package services

import "github.com/dmitrijs2005/stockkeeper/internal/models"

// MatchRule selects how a target record is located in a list.
type MatchRule int

const (
	// MatchByID compares the stable identifier only.
	MatchByID MatchRule = iota
	// MatchByValues compares every schema field.
	MatchByValues
	// MatchByIdentity compares IdentityFields only, ignoring status and
	// remaining quantity.
	MatchByIdentity
)

// MatchExact reports whether a and b agree on every schema field. IDs are
// not compared.
func MatchExact(a, b models.Record) bool {
	return matchOn(a, b, models.Fields)
}

// MatchIdentity reports whether a and b agree on the identifying fields.
func MatchIdentity(a, b models.Record) bool {
	return matchOn(a, b, models.IdentityFields)
}

func matchOn(a, b models.Record, fields []models.Field) bool {
	for _, f := range fields {
		if a.Get(f) != b.Get(f) {
			return false
		}
	}
	return true
}

// FindByID returns the index of the record with id, or -1.
func FindByID(list []models.Record, id string) int {
	if id == "" {
		return -1
	}
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// FindExact returns the index of the first record equal to target on every
// schema field, or -1.
func FindExact(list []models.Record, target models.Record) int {
	for i := range list {
		if MatchExact(list[i], target) {
			return i
		}
	}
	return -1
}

// FindByIdentity returns the index of the first record sharing target's
// identifying fields, or -1. With several such records the first wins.
func FindByIdentity(list []models.Record, target models.Record) int {
	for i := range list {
		if MatchIdentity(list[i], target) {
			return i
		}
	}
	return -1
}

// Find locates target in list using rule.
func Find(list []models.Record, target models.Record, rule MatchRule) int {
	switch rule {
	case MatchByValues:
		return FindExact(list, target)
	case MatchByIdentity:
		return FindByIdentity(list, target)
	default:
		return FindByID(list, target.ID)
	}
}
