package http

import (
	"speedial/internal/adapters/in/http/api"
	"speedial/internal/core/application/usecases/queries"
	"speedial/internal/core/domain/model/kernel"
)

func toCoordinates(l kernel.Location) api.Coordinates {
	return api.Coordinates{Lat: l.Lat(), Lng: l.Lng()}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toOrder(o queries.OrderResponse) api.Order {
	return api.Order{
		Id:              o.ID,
		CustomerName:    o.CustomerName,
		PickupAddress:   o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress,
		PickupCoords:    toCoordinates(o.Pickup),
		DeliveryCoords:  toCoordinates(o.Delivery),
		Status:          o.Status.String(),
		Progress:        o.Progress,
		CreatedAt:       o.CreatedAt,
		CourierId:       optional(o.CourierID),
		Weight:          o.Weight,
		Priority:        string(o.Priority),
		Eta:             optional(o.ETA),
		OrderType:       string(o.Type),
		Items:           o.Items,
	}
}

func toOrders(orders []queries.OrderResponse) []api.Order {
	out := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toCourier(c queries.CourierResponse) api.Courier {
	return api.Courier{
		Id:          c.ID,
		Name:        c.Name,
		Phone:       optional(c.Phone),
		VehicleType: string(c.Vehicle),
		Hub:         optional(string(c.Hub)),
		Location:    toCoordinates(c.Location),
		Status:      string(c.Status),
		Rating:      c.Rating,
	}
}

func toProducts(products []queries.ProductResponse) []api.Product {
	out := make([]api.Product, 0, len(products))
	for _, p := range products {
		out = append(out, api.Product{
			Id:            p.ID,
			Name:          p.Name,
			Price:         p.Price,
			Category:      string(p.Category),
			Image:         p.Image,
			JointName:     p.JointName,
			JointLocation: p.JointLocation,
		})
	}
	return out
}
