package cartControllers

import "github.com/adilkhan-dev/storefront-api/models"

// Read shapes for the cart endpoints. Carts embed their items, each with an
// abbreviated product.

type ProductSummary struct {
	ID      uint    `json:"id"`
	Title   string  `json:"title"`
	Price   float64 `json:"price"`
	Summary string  `json:"summary"`
	Picture string  `json:"picture"`
}

type CartItemResponse struct {
	ID       uint           `json:"id"`
	Product  ProductSummary `json:"product"`
	Quantity int            `json:"quantity"`
	Price    float64        `json:"price"`
}

type CartResponse struct {
	ID     uint               `json:"id"`
	Status models.CartStatus  `json:"status"`
	Items  []CartItemResponse `json:"items"`
}

func newCartResponse(cart models.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemResponse{
			ID: item.ID,
			Product: ProductSummary{
				ID:      item.Product.ID,
				Title:   item.Product.Title,
				Price:   item.Product.Price,
				Summary: item.Product.Summary,
				Picture: item.Product.Picture,
			},
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return CartResponse{ID: cart.ID, Status: cart.Status, Items: items}
}
