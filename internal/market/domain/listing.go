package domain

import "time"

// Categories a listing can be filed under. The order here is the order the
// categories endpoint returns them in.
var ListingCategories = []string{
	"action-figures",
	"building-sets",
	"dolls",
	"educational",
	"games-puzzles",
	"outdoor",
	"plush",
	"vehicles",
	"other",
}

// Conditions a listed toy can be in.
var ListingConditions = []string{
	"new",
	"like-new",
	"good",
	"fair",
}

type Listing struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Category    string
	Condition   string
	PriceCents  int64 // 0 means free / swap
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidCategory reports whether c is one of ListingCategories.
func ValidCategory(c string) bool {
	for _, v := range ListingCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidCondition reports whether c is one of ListingConditions.
func ValidCondition(c string) bool {
	for _, v := range ListingConditions {
		if v == c {
			return true
		}
	}
	return false
}
