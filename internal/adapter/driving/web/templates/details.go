package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/tajmahal/internal/adapter/driving/web/viewmodel"
)

// Details renders the restaurant details page body.
func Details(d vm.DetailsViewModel) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<section class="restaurant"><h1 class="restaurant-name">`)
		hw.text(d.Name)
		hw.raw(`</h1><p class="restaurant-type">`)
		hw.text(d.TypeLabel)
		hw.raw(`</p><p class="restaurant-hours"><span class="restaurant-day">`)
		hw.text(d.Today)
		hw.raw(`</span> `)
		hw.text(d.Hours)
		hw.raw(`</p><div class="chips">`)
		if d.DineIn {
			hw.raw(`<span class="chip chip-on-premise">Sur place</span>`)
		}
		if d.TakeAway {
			hw.raw(`<span class="chip chip-take-away">À emporter</span>`)
		}
		hw.raw(`</div>`)

		hw.raw(`<ul class="contact">`)
		hw.raw(`<li><a class="button-address" href="`)
		hw.text(d.MapURL)
		hw.raw(`" target="_blank" rel="noopener">`)
		hw.text(d.Address)
		hw.raw(`</a></li><li><a class="button-phone" href="`)
		hw.text(d.PhoneURL)
		hw.raw(`">`)
		hw.text(d.Phone)
		hw.raw(`</a></li><li><a class="button-website" href="`)
		hw.text(d.Website)
		hw.raw(`" target="_blank" rel="noopener">`)
		hw.text(d.Website)
		hw.raw(`</a></li></ul></section>`)

		hw.raw(`<section class="rating"><span class="average-rating">`)
		hw.text(d.AverageLabel)
		hw.raw(`</span> <span class="stars" aria-hidden="true">`)
		for i := 1; i <= 5; i++ {
			if i <= d.AverageStars {
				hw.raw(`★`)
			} else {
				hw.raw(`☆`)
			}
		}
		hw.raw(`</span> <span class="number-of-rating">`)
		hw.text(d.ReviewCountLabel)
		hw.raw(`</span><table class="distribution">`)
		for _, row := range d.Distribution {
			hw.raw(`<tr><th>`)
			hw.raw(strconv.Itoa(row.Rating))
			hw.raw(`</th><td><span class="bar" style="width:`)
			hw.raw(strconv.Itoa(row.Percent))
			hw.raw(`%"></span></td><td>`)
			hw.raw(strconv.Itoa(row.Count))
			hw.raw(`</td></tr>`)
		}
		hw.raw(`</table><a class="leave-review" href="`)
		hw.text(d.ReviewsPath)
		hw.raw(`">Laisser un avis</a></section>`)

		return hw.err
	})
}
