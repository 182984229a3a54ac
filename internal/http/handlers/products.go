package handlers

import (
	"fmt"
	"net/http"
	"time"

	"videoserver/internal/domain"
)

// productView mirrors the shape the mobile client already consumes, so the
// field names stay camelCase unlike the video views.
type productView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Currency    *string  `json:"currency"`
	Amount      *float64 `json:"amount"`
	ImageURL    *string  `json:"imageUrl"`
	Images      []string `json:"images"`
	URL         string   `json:"url"`
	Platform    string   `json:"platform"`
	CreatedAt   *string  `json:"createdAt"`
	UpdatedAt   *string  `json:"updatedAt"`
}

func newProductView(p domain.Product) productView {
	return productView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Amount:      p.Amount,
		ImageURL:    p.ImageURL,
		Images:      p.Images,
		URL:         p.URL,
		Platform:    p.Platform,
		CreatedAt:   isoProductTime(p.CreatedAt),
		UpdatedAt:   isoProductTime(p.UpdatedAt),
	}
}

func isoProductTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// ProductsList returns the caller's saved products newest first.
func (a *App) ProductsList(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	products, err := a.Products.ListByOwner(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("list products failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load products")
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": views,
		"count":    len(views),
		"message":  fmt.Sprintf("Found %d product(s)", len(views)),
	})
}
