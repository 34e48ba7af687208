package utils

import (
	"strconv"
	"time"
)

// YearsInBusiness returns the number of whole years between the founding year
// and now. A founding year in the future or zero yields 0.
func YearsInBusiness(foundingYear int, now time.Time) int {
	if foundingYear <= 0 {
		return 0
	}
	years := now.Year() - foundingYear
	if years < 0 {
		return 0
	}
	return years
}

// YearsInBusinessText renders the years-in-business phrase used in authored
// copy, e.g. "over 25 years".
func YearsInBusinessText(foundingYear int, now time.Time) string {
	years := YearsInBusiness(foundingYear, now)
	if years <= 0 {
		return ""
	}
	return "over " + strconv.Itoa(years) + " years"
}
