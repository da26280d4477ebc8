// Package queries contains read operations over the last committed store.
// Handlers never mutate state; they project ports.ReadModel snapshots into
// response types shaped for a specific view.
package queries

import (
	"time"

	"speedial/internal/core/domain/model/catalogue"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID              string
	CustomerName    string
	PickupAddress   string
	DeliveryAddress string
	Pickup          kernel.Location
	Delivery        kernel.Location
	Status          order.Status
	Progress        int
	CreatedAt       time.Time
	CourierID       string
	Weight          string
	Priority        order.Priority
	ETA             string
	Type            order.Type
	Items           []string
}

func newOrderResponse(s order.State) OrderResponse {
	return OrderResponse{
		ID:              s.ID,
		CustomerName:    s.CustomerName,
		PickupAddress:   s.Route.PickupAddress,
		DeliveryAddress: s.Route.DeliveryAddress,
		Pickup:          s.Route.Pickup,
		Delivery:        s.Route.Delivery,
		Status:          s.Status,
		Progress:        s.Status.Progress(),
		CreatedAt:       s.CreatedAt,
		CourierID:       s.CourierID,
		Weight:          s.Weight,
		Priority:        s.Priority,
		ETA:             s.ETA,
		Type:            s.Type,
		Items:           s.Items,
	}
}

// CourierResponse is the read model of a courier. Hub is empty for couriers
// seeded without one.
type CourierResponse struct {
	ID       string
	Name     string
	Phone    string
	Vehicle  courier.Vehicle
	Hub      kernel.Hub
	Location kernel.Location
	Status   courier.Status
	Rating   float64
}

func newCourierResponse(s courier.State) CourierResponse {
	return CourierResponse(s)
}

// ProductResponse is a marketplace listing.
type ProductResponse struct {
	ID            string
	Name          string
	Price         int
	Category      catalogue.Category
	Image         string
	JointName     string
	JointLocation string
}

func newProductResponse(p catalogue.Product) ProductResponse {
	return ProductResponse(p)
}

func newProductResponses(products []catalogue.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return out
}
