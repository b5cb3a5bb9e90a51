// Package rating maps the remote backend's raw five-digit rating scale onto
// the 1-5 star scale shown to users.
package rating

import (
	"github.com/Charles0825/product-review-app-fs/internal/data/entity"

	"github.com/shopspring/decimal"
)

// Raw values written for each star band. The low sentinel sits inside the
// fallback band, so any raw value below 30000 still reads back as one star.
const (
	rawOneStar    = 12925
	rawTwoStars   = 30000
	rawThreeStars = 50000
	rawFourStars  = 70000
	rawFiveStars  = 92139
)

// Normalize converts a raw rating to a 1-5 star value. Total over all ints.
func Normalize(raw int) int {
	switch {
	case raw >= 90000:
		return 5
	case raw >= 70000:
		return 4
	case raw >= 50000:
		return 3
	case raw >= 30000:
		return 2
	default:
		return 1
	}
}

// Denormalize converts a 1-5 star value back to the raw value the backend
// stores. Unrecognized input falls back to the one-star sentinel.
func Denormalize(star int) int {
	switch star {
	case 1:
		return rawOneStar
	case 2:
		return rawTwoStars
	case 3:
		return rawThreeStars
	case 4:
		return rawFourStars
	case 5:
		return rawFiveStars
	default:
		return rawOneStar
	}
}

// Average returns the mean star rating over the reviews, formatted with two
// fraction digits. An empty review set yields "0".
func Average(reviews []entity.Review) string {
	if len(reviews) == 0 {
		return "0"
	}

	sum := 0
	for _, review := range reviews {
		sum += Normalize(review.Rating)
	}

	mean := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(reviews))))
	return mean.StringFixed(2)
}

// Distribution counts reviews per star band.
func Distribution(reviews []entity.Review) map[int]int {
	counts := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, review := range reviews {
		counts[Normalize(review.Rating)]++
	}
	return counts
}
