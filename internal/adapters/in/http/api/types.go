// Package api holds the wire contract of the HTTP API: the embedded OpenAPI
// document, the request and response bodies, and the echo routing glue that
// binds path and query parameters before calling a ServerInterface.
package api

import (
	"time"

	"github.com/google/uuid"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Created struct {
	Id string `json:"id"` //nolint:revive,stylecheck // matches the OpenAPI field
}

type Order struct {
	Id              string      `json:"id"` //nolint:revive,stylecheck // matches the OpenAPI field
	CustomerName    string      `json:"customerName"`
	PickupAddress   string      `json:"pickupAddress"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PickupCoords    Coordinates `json:"pickupCoords"`
	DeliveryCoords  Coordinates `json:"deliveryCoords"`
	Status          string      `json:"status"`
	Progress        int         `json:"progress"`
	CreatedAt       time.Time   `json:"createdAt"`
	CourierId       *string     `json:"courierId,omitempty"` //nolint:revive,stylecheck // matches the OpenAPI field
	Weight          string      `json:"weight"`
	Priority        string      `json:"priority"`
	Eta             *string     `json:"eta,omitempty"`
	OrderType       string      `json:"orderType"`
	Items           []string    `json:"items,omitempty"`
}

type NewBooking struct {
	Hub      string  `json:"hub"`
	Pickup   string  `json:"pickup"`
	Delivery string  `json:"delivery"`
	Weight   *string `json:"weight,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

type Cart struct {
	ProductIds []string `json:"productIds"` //nolint:revive,stylecheck // matches the OpenAPI field
}

type AssignCourierJSONBody struct {
	CourierId string `json:"courierId"` //nolint:revive,stylecheck // matches the OpenAPI field
}

type UpdateOrderStatusJSONBody struct {
	Status string `json:"status"`
}

type ToggleAvailabilityJSONBody struct {
	Online bool `json:"online"`
}

type Courier struct {
	Id          string      `json:"id"` //nolint:revive,stylecheck // matches the OpenAPI field
	Name        string      `json:"name"`
	Phone       *string     `json:"phone,omitempty"`
	VehicleType string      `json:"vehicleType"`
	Hub         *string     `json:"hub,omitempty"`
	Location    Coordinates `json:"location"`
	Status      string      `json:"status"`
	Rating      float64     `json:"rating"`
}

type NewCourier struct {
	Name        string  `json:"name"`
	Phone       *string `json:"phone,omitempty"`
	VehicleType string  `json:"vehicleType"`
	Hub         *string `json:"hub,omitempty"`
}

type RiderTask struct {
	Rider      Courier `json:"rider"`
	Task       *Order  `json:"task,omitempty"`
	NextStatus *string `json:"nextStatus,omitempty"`
}

type FleetStats struct {
	LiveOrders  int `json:"liveOrders"`
	Available   int `json:"available"`
	ActiveFleet int `json:"activeFleet"`
}

type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

type TrafficReport struct {
	Abuja  string `json:"ABUJA"`
	Kaduna string `json:"KADUNA"`
	Kano   string `json:"KANO"`
}

type ETAPrediction struct {
	Prediction string `json:"prediction"`
	Context    string `json:"context"`
}

type OrderMessage struct {
	Message string `json:"message"`
}

type Product struct {
	Id            string `json:"id"` //nolint:revive,stylecheck // matches the OpenAPI field
	Name          string `json:"name"`
	Price         int    `json:"price"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	JointName     string `json:"jointName"`
	JointLocation string `json:"jointLocation"`
}

type CartQuote struct {
	Items       []Product `json:"items"`
	ItemCount   int       `json:"itemCount"`
	Subtotal    int       `json:"subtotal"`
	DispatchFee int       `json:"dispatchFee"`
	Total       int       `json:"total"`
}

type Notification struct {
	Id        uuid.UUID `json:"id"` //nolint:revive,stylecheck // matches the OpenAPI field
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Hub   *string `form:"hub,omitempty" json:"hub,omitempty"`
	Phase *string `form:"phase,omitempty" json:"phase,omitempty"`
}

// GetCouriersParams defines parameters for GetCouriers.
type GetCouriersParams struct {
	Hub    *string `form:"hub,omitempty" json:"hub,omitempty"`
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// GetMarketplaceParams defines parameters for GetMarketplace.
type GetMarketplaceParams struct {
	Category *string `form:"category,omitempty" json:"category,omitempty"`
}
