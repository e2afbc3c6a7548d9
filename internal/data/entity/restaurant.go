package entity

// TableType is the seating category a table belongs to
type TableType string

const (
	TableTypeTwoSeater  TableType = "twoSeater"
	TableTypeFourSeater TableType = "fourSeater"
)

// Default table counts for a new restaurant
const (
	DefaultTwoSeaterCount  = 5
	DefaultFourSeaterCount = 3
)

// IsValid reports whether t is one of the known seating categories
func (t TableType) IsValid() bool {
	return t == TableTypeTwoSeater || t == TableTypeFourSeater
}

type Restaurant struct {
	Base
	Name        string `db:"name"`
	Description string `db:"description"`
	Image       string `db:"image"`
	TwoSeater   int    `db:"two_seater"`
	FourSeater  int    `db:"four_seater"`
}
