package http

import (
	"net/http"

	"github.com/toynest/toynest/internal/market/domain"
	"github.com/toynest/toynest/pkg/httpx"
	"github.com/toynest/toynest/pkg/nestsdk"
)

func accountView(a domain.Account) nestsdk.Account {
	return nestsdk.Account{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Nickname:  a.Nickname,
		ZipCode:   a.ZipCode,
		Federated: a.IsFederated(),
		CreatedAt: a.CreatedAt,
	}
}

func listingView(l domain.Listing) nestsdk.Listing {
	return nestsdk.Listing{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Title:       l.Title,
		Description: l.Description,
		Category:    l.Category,
		Condition:   l.Condition,
		PriceCents:  l.PriceCents,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	httpx.WriteJSON(w, status, nestsdk.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
