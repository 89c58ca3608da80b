package catalog

import (
	"fmt"
	"strconv"
)

const imageBaseURL = "https://image.tmdb.org/t/p"

// ImageURL builds a provider image URL for a poster or backdrop path.
// A nil path yields the placeholder.
func ImageURL(path *string, size string) string {
	if path == nil || *path == "" {
		return "/placeholder.svg?height=750&width=500&text=No+Image"
	}
	if size == "" {
		size = "w500"
	}
	return imageBaseURL + "/" + size + *path
}

// FormatRating converts the provider's 10-point vote average to a
// 5-point display scale.
func FormatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating/2)
}

// FormatCurrency renders a budget or revenue amount as whole US dollars
// with thousands separators, e.g. "$160,000,000".
func FormatCurrency(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}
	return sign + "$" + string(grouped)
}

// FormatRuntime renders minutes as "2h 22m"; unknown runtime is "N/A".
func FormatRuntime(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dh %dm", *minutes/60, *minutes%60)
}
