package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cafe is a single row of the cafe table.
// Field order is the column declaration order and therefore the JSON key order.
type Cafe struct {
	ID           int64   `json:"id" gorm:"column:id;primaryKey"`
	Name         string  `json:"name" gorm:"column:name;size:250;not null;uniqueIndex"`
	MapURL       string  `json:"map_url" gorm:"column:map_url;size:500;not null"`
	ImgURL       string  `json:"img_url" gorm:"column:img_url;size:500;not null"`
	Location     string  `json:"location" gorm:"column:location;size:250;not null;index"`
	Seats        string  `json:"seats" gorm:"column:seats;size:250;not null"`
	HasToilet    bool    `json:"has_toilet" gorm:"column:has_toilet;not null"`
	HasWifi      bool    `json:"has_wifi" gorm:"column:has_wifi;not null"`
	HasSockets   bool    `json:"has_sockets" gorm:"column:has_sockets;not null"`
	CanTakeCalls bool    `json:"can_take_calls" gorm:"column:can_take_calls;not null"`
	CoffeePrice  *string `json:"coffee_price" gorm:"column:coffee_price;size:250"`
}

// TableName keeps compatibility with databases created by the first version of the service.
func (Cafe) TableName() string {
	return "cafe"
}

// CafeDraft holds the values of a cafe that has not been stored yet.
// A nil string means the value was not submitted at all.
type CafeDraft struct {
	Name         *string
	MapURL       *string
	ImgURL       *string
	Location     *string
	Seats        *string
	HasToilet    bool
	HasWifi      bool
	HasSockets   bool
	CanTakeCalls bool
	CoffeePrice  *string
}

// CapitalizeLocation upper-cases the first letter of a location search term
// and lower-cases the rest, so "peckham" and "PECKHAM" both become "Peckham".
func CapitalizeLocation(loc string) string {
	if loc == "" {
		return loc
	}
	first, size := utf8.DecodeRuneInString(loc)
	return string(unicode.ToTitle(first)) + strings.ToLower(loc[size:])
}
