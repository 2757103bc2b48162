package httphandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ericfisherdev/tajmahal/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// RestaurantResponse is the JSON representation of the restaurant record.
type RestaurantResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Hours    string `json:"hours"`
	Today    string `json:"today"`
	Address  string `json:"address"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
	DineIn   bool   `json:"dine_in"`
	TakeAway bool   `json:"take_away"`
}

// ReviewResponse is the JSON representation of a single review.
type ReviewResponse struct {
	Author    string `json:"author"`
	AvatarURL string `json:"avatar_url"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"`
}

// SubmitReviewRequest is the JSON body for the submit review endpoint.
type SubmitReviewRequest struct {
	Author    string `json:"author"`
	AvatarURL string `json:"avatar_url"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"`
}

// SummaryResponse is the JSON representation of the rating summary.
// Distribution is keyed by rating ("1".."5").
type SummaryResponse struct {
	Count        int            `json:"count"`
	Average      float64        `json:"average"`
	AverageLabel string         `json:"average_label"`
	Distribution map[string]int `json:"distribution"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toRestaurantResponse converts the domain Restaurant to its JSON representation.
func toRestaurantResponse(r model.Restaurant, today string) RestaurantResponse {
	return RestaurantResponse{
		Name:     r.Name,
		Type:     r.Type,
		Hours:    r.Hours,
		Today:    today,
		Address:  r.Address,
		Website:  r.Website,
		Phone:    r.Phone,
		DineIn:   r.DineIn,
		TakeAway: r.TakeAway,
	}
}

// toReviewResponse converts a domain Review to its JSON representation.
func toReviewResponse(r model.Review) ReviewResponse {
	return ReviewResponse{
		Author:    r.Author,
		AvatarURL: r.AvatarURL,
		Comment:   r.Comment,
		Rating:    r.Rating,
	}
}

// toSummaryResponse converts a RatingSummary to its JSON representation.
func toSummaryResponse(s model.RatingSummary) SummaryResponse {
	dist := make(map[string]int, len(s.Distribution))
	for i, n := range s.Distribution {
		dist[strconv.Itoa(i+1)] = n
	}

	return SummaryResponse{
		Count:        s.Count,
		Average:      s.Average,
		AverageLabel: fmt.Sprintf("%.1f", s.Average),
		Distribution: dist,
	}
}
