package recharge

import "mobile-recharge-client/internal/pkg/models"

// Offers is the static client-side discount catalog. The backend receives
// the already-discounted amount plus the code for record keeping; it does
// not re-derive the discount.
var Offers = []models.Offer{
	{ID: 1, Code: "FIRST10", Discount: 10, MinAmount: 100},
	{ID: 2, Code: "SAVE20", Discount: 20, MinAmount: 300},
	{ID: 3, Code: "CASHBACK50", Discount: 50, MinAmount: 500},
}

// OfferByCode looks up a catalog offer.
func OfferByCode(code string) (models.Offer, bool) {
	for _, offer := range Offers {
		if offer.Code == code {
			return offer, true
		}
	}
	return models.Offer{}, false
}

// ApplyOffer computes the payable amount. An offer the price does not
// qualify for contributes nothing.
func ApplyOffer(price int, offer *models.Offer) (amount, discount int) {
	if offer == nil || !offer.QualifiesFor(price) {
		return price, 0
	}
	return price - offer.Discount, offer.Discount
}
