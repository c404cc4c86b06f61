// Package orders turns a build into platform shopping-cart links. Items
// without a listing on the requested platform are skipped, not failed.
package orders

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nerabuild/NeraBuild-API/internal/models"
)

const sourceTag = "nerabuild"

// OrderItem is one line of a generated cart.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Platform string  `json:"platform"`
	URL      string  `json:"url"`
}

// OrderResult reports the outcome of a cart generation.
type OrderResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	CartURL string      `json:"cartUrl,omitempty"`
	Items   []OrderItem `json:"items,omitempty"`
}

// TaobaoCartURL builds the Taobao cart link for the items that have a
// Taobao listing.
func TaobaoCartURL(items []models.HardwareItem) string {
	var itemIDs, shopIDs []string
	for _, item := range items {
		if item.Platform.Taobao != nil {
			itemIDs = append(itemIDs, item.Platform.Taobao.ItemID)
			shopIDs = append(shopIDs, item.Platform.Taobao.ShopID)
		}
	}

	params := url.Values{}
	params.Set("items", strings.Join(itemIDs, ","))
	params.Set("shops", strings.Join(shopIDs, ","))
	params.Set("source", sourceTag)

	return "https://cart.taobao.com/cart.htm?" + params.Encode()
}

// JDCartURL builds the JD cart link for the items that have a JD listing.
func JDCartURL(items []models.HardwareItem) string {
	var skuIDs []string
	for _, item := range items {
		if item.Platform.JD != nil {
			skuIDs = append(skuIDs, item.Platform.JD.SkuID)
		}
	}

	params := url.Values{}
	params.Set("skus", strings.Join(skuIDs, ","))
	params.Set("source", sourceTag)

	return "https://cart.jd.com/cart.action?" + params.Encode()
}

// PlaceTaobaoOrder prepares a Taobao cart for the build.
func PlaceTaobaoOrder(items []models.HardwareItem) OrderResult {
	valid := []models.HardwareItem{}
	for _, item := range items {
		if item.Platform.Taobao != nil {
			valid = append(valid, item)
		}
	}

	if len(valid) == 0 {
		return OrderResult{Success: false, Message: "no items available on Taobao"}
	}

	total := 0.0
	orderItems := make([]OrderItem, 0, len(valid))
	for _, item := range valid {
		total += item.Price
		orderItems = append(orderItems, OrderItem{
			ID:       item.Platform.Taobao.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
			Platform: "taobao",
			URL:      item.Platform.Taobao.URL,
		})
	}

	return OrderResult{
		Success: true,
		Message: fmt.Sprintf("added %d items to the Taobao cart, total ¥%.2f", len(valid), total),
		CartURL: TaobaoCartURL(valid),
		Items:   orderItems,
	}
}

// PlaceJDOrder prepares a JD cart for the build.
func PlaceJDOrder(items []models.HardwareItem) OrderResult {
	valid := []models.HardwareItem{}
	for _, item := range items {
		if item.Platform.JD != nil {
			valid = append(valid, item)
		}
	}

	if len(valid) == 0 {
		return OrderResult{Success: false, Message: "no items available on JD"}
	}

	total := 0.0
	orderItems := make([]OrderItem, 0, len(valid))
	for _, item := range valid {
		total += item.Price
		orderItems = append(orderItems, OrderItem{
			ID:       item.Platform.JD.SkuID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
			Platform: "jd",
			URL:      item.Platform.JD.URL,
		})
	}

	return OrderResult{
		Success: true,
		Message: fmt.Sprintf("added %d items to the JD cart, total ¥%.2f", len(valid), total),
		CartURL: JDCartURL(valid),
		Items:   orderItems,
	}
}
