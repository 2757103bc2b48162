package web

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	vm "github.com/ericfisherdev/tajmahal/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/tajmahal/internal/domain/model"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// toDetailsViewModel combines the restaurant record and rating summary into
// the details page view model.
func toDetailsViewModel(r model.Restaurant, today string, summary model.RatingSummary) vm.DetailsViewModel {
	return vm.DetailsViewModel{
		Name:             r.Name,
		TypeLabel:        "Restaurant " + r.Type,
		Today:            today,
		Hours:            r.Hours,
		Address:          r.Address,
		Website:          r.Website,
		Phone:            r.Phone,
		DineIn:           r.DineIn,
		TakeAway:         r.TakeAway,
		ReviewCountLabel: fmt.Sprintf("(%d)", summary.Count),
		AverageLabel:     fmt.Sprintf("%.1f", summary.Average),
		AverageStars:     int(math.Round(summary.Average)),
		Distribution:     toDistributionRows(summary),
		MapURL:           mapsSearchURL + url.QueryEscape(r.Address),
		PhoneURL:         phoneURL(r.Phone),
		ReviewsPath:      "/reviews",
	}
}

// toDistributionRows lists the rating buckets from MaxRating down to MinRating.
func toDistributionRows(summary model.RatingSummary) []vm.DistributionRowViewModel {
	rows := make([]vm.DistributionRowViewModel, 0, model.MaxRating)
	for rating := model.MaxRating; rating >= model.MinRating; rating-- {
		n := summary.Distribution[rating-1]
		percent := 0
		if summary.Count > 0 {
			percent = n * 100 / summary.Count
		}
		rows = append(rows, vm.DistributionRowViewModel{Rating: rating, Count: n, Percent: percent})
	}
	return rows
}

// toReviewViewModels converts domain Reviews to ReviewViewModels.
func toReviewViewModels(reviews []model.Review) []vm.ReviewViewModel {
	vms := make([]vm.ReviewViewModel, 0, len(reviews))
	for _, r := range reviews {
		vms = append(vms, vm.ReviewViewModel{
			Author:      r.Author,
			AvatarURL:   r.AvatarURL,
			Comment:     r.Comment,
			CommentHTML: RenderMarkdown(r.Comment),
			Rating:      r.Rating,
			Stars:       RenderStars(r.Rating),
		})
	}
	return vms
}

// phoneURL builds a tel: link, keeping only digits and a leading plus.
func phoneURL(phone string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for i, ch := range phone {
		if (ch >= '0' && ch <= '9') || (ch == '+' && i == 0) {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
