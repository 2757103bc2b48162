package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/tajmahal/internal/adapter/driving/web/viewmodel"
)

// Reviews renders the review list and submission form.
func Reviews(p vm.ReviewsPageViewModel) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<header class="toolbar"><a class="back" href="`)
		hw.text(p.BackPath)
		hw.raw(`">←</a><h1>`)
		hw.text(p.RestaurantName)
		hw.raw(`</h1></header>`)

		writeReviewForm(hw, p.Form)

		hw.raw(`<ul class="reviews">`)
		for _, r := range p.Reviews {
			hw.raw(`<li class="review"><img class="avatar" src="`)
			hw.text(r.AvatarURL)
			hw.raw(`" alt=""><div><p class="author">`)
			hw.text(r.Author)
			hw.raw(`</p><p class="stars" title="`)
			hw.raw(strconv.Itoa(r.Rating))
			hw.raw(`/5">`)
			hw.text(r.Stars)
			// CommentHTML is sanitized by RenderMarkdown.
			hw.raw(`</p><div class="comment">`)
			hw.raw(r.CommentHTML)
			hw.raw(`</div></div></li>`)
		}
		hw.raw(`</ul>`)

		return hw.err
	})
}

func writeReviewForm(hw *htmlWriter, f vm.ReviewFormViewModel) {
	hw.raw(`<form class="review-form" method="post" action="`)
	hw.text(f.ActionURL)
	hw.raw(`"><input type="hidden" name="csrf_token" value="`)
	hw.text(f.CSRFToken)
	hw.raw(`">`)
	if f.Error != "" {
		hw.raw(`<p class="form-error" role="alert">`)
		hw.text(f.Error)
		hw.raw(`</p>`)
	}
	hw.raw(`<label>Nom <input type="text" name="author" value="`)
	hw.text(f.Author)
	hw.raw(`"></label><fieldset class="rating-input"><legend>Note</legend>`)
	for i := 1; i <= 5; i++ {
		n := strconv.Itoa(i)
		hw.raw(`<label><input type="radio" name="rating" value="`)
		hw.raw(n)
		hw.raw(`"`)
		if f.Rating == i {
			hw.raw(` checked`)
		}
		hw.raw(`>`)
		hw.raw(n)
		hw.raw(`</label>`)
	}
	hw.raw(`</fieldset><label>Avis <textarea name="comment" rows="4">`)
	hw.text(f.Comment)
	hw.raw(`</textarea></label><button type="submit" class="validate-review">Valider</button></form>`)
}
