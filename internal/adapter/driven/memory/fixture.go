package memory

import "github.com/ericfisherdev/tajmahal/internal/domain/model"

// tajMahal is the compiled-in restaurant record.
var tajMahal = model.Restaurant{
	Name:     "Taj Mahal",
	Type:     "Indien",
	Hours:    "11h30 - 14h30・18h30 - 22h00",
	Address:  "12 Avenue de la Brique - 75010 Paris",
	Website:  "http://www.tajmahal.fr",
	Phone:    "06 12 34 56 78",
	DineIn:   true,
	TakeAway: true,
}

// seedReviews is the initial review list, in display order.
var seedReviews = []model.Review{
	{
		Author:    "Ranjit Singh",
		AvatarURL: "https://xsgames.co/randomusers/assets/avatars/male/71.jpg",
		Comment:   "Service très rapide et nourriture délicieuse, nous mangeons ici chaque week-end, c'est très rapide et savoureux. Continuez ainsi!",
		Rating:    5,
	},
	{
		Author:    "Martyna Siddeswara",
		AvatarURL: "https://xsgames.co/randomusers/assets/avatars/female/31.jpg",
		Comment:   "Un service excellent et des plats incroyablement savoureux. Nous sommes vraiment satisfaits de notre expérience au restaurant.",
		Rating:    4,
	},
	{
		Author:    "Komala Alanazi",
		AvatarURL: "https://xsgames.co/randomusers/assets/avatars/male/46.jpg",
		Comment:   "La cuisine est délicieuse et le service est également excellent. Le propriétaire est très sympathique et veille toujours à ce que votre repas soit satisfaisant. Cet endroit est un choix sûr!",
		Rating:    5,
	},
	{
		Author:    "David John",
		AvatarURL: "https://xsgames.co/randomusers/assets/avatars/male/67.jpg",
		Comment:   "Les currys manquaient de diversité de saveurs et semblaient tous à base de tomates. Malgré les évaluations élevées que nous avons vues et nos attentes, nous avons été déçus.",
		Rating:    2,
	},
	{
		Author:    "Emilie Hood",
		AvatarURL: "https://xsgames.co/randomusers/assets/avatars/female/20.jpg",
		Comment:   "Très bon restaurant Indien ! Je recommande.",
		Rating:    4,
	},
}

// SeedReviews returns a copy of the initial reviews in display order
// (first element is shown first).
func SeedReviews() []model.Review {
	out := make([]model.Review, len(seedReviews))
	copy(out, seedReviews)
	return out
}
