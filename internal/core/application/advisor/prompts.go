package advisor

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"
)

const (
	insightsInstruction = "You are a logistics expert for Northern Nigeria. Consider local factors like Abuja " +
		"city gate traffic, Kaduna bypass routing, and Kano market congestion. Provide concise, high-impact " +
		"strategy tips in English."

	trafficInstruction = "You are an AI traffic monitor. For each city, determine if major routes are 'light', " +
		"'moderate', or 'heavy'. Consider peak hours (morning/evening rush in Abuja, market hours in Kano). " +
		"Return JSON: { 'ABUJA': 'density', 'KADUNA': 'density', 'KANO': 'density' }."

	etaInstruction = "You are a logistics AI for SpeeDial Express. Predict the remaining time in minutes. " +
		"Factor in local context: Garki/Maitama traffic in Abuja, Sabon Gari market density in Kano, or Kaduna " +
		"bypass flow. Return exactly one JSON object: { 'prediction': 'X mins', 'context': 'short reason' }."
)

type promptOrder struct {
	ID        string `json:"id"`
	Customer  string `json:"customerName"`
	Pickup    string `json:"pickupAddress"`
	Delivery  string `json:"deliveryAddress"`
	Status    string `json:"status"`
	CourierID string `json:"courierId,omitempty"`
	Priority  string `json:"priority"`
	Type      string `json:"type"`
}

type promptCourier struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	Vehicle  string  `json:"vehicleType"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Rating   float64 `json:"rating"`
	Hub      string  `json:"hub,omitempty"`
}

func insightsRequest(orders []order.State, couriers []courier.State) (ports.GenerateRequest, error) {
	po := make([]promptOrder, 0, len(orders))
	for _, o := range orders {
		po = append(po, promptOrder{
			ID:        o.ID,
			Customer:  o.CustomerName,
			Pickup:    o.Route.PickupAddress,
			Delivery:  o.Route.DeliveryAddress,
			Status:    o.Status.String(),
			CourierID: o.CourierID,
			Priority:  string(o.Priority),
			Type:      string(o.Type),
		})
	}
	pc := make([]promptCourier, 0, len(couriers))
	for _, c := range couriers {
		pc = append(pc, promptCourier{
			ID:      c.ID,
			Name:    c.Name,
			Status:  c.Status.String(),
			Vehicle: string(c.Vehicle),
			Lat:     c.Location.Lat(),
			Lng:     c.Location.Lng(),
			Rating:  c.Rating,
			Hub:     c.Hub.String(),
		})
	}

	ordersJSON, err := json.Marshal(po)
	if err != nil {
		return ports.GenerateRequest{}, err
	}
	couriersJSON, err := json.Marshal(pc)
	if err != nil {
		return ports.GenerateRequest{}, err
	}

	return ports.GenerateRequest{
		SystemInstruction: insightsInstruction,
		Prompt: fmt.Sprintf("Analyze the following Nigerian logistics data (Abuja, Kaduna, Kano) and provide "+
			"3 actionable insights.\nOrders: %s\nRiders: %s", ordersJSON, couriersJSON),
		Schema: &ports.Schema{
			Type: ports.SchemaObject,
			Properties: map[string]*ports.Schema{
				"insights": {
					Type: ports.SchemaArray,
					Items: &ports.Schema{
						Type: ports.SchemaObject,
						Properties: map[string]*ports.Schema{
							"title":       {Type: ports.SchemaString},
							"description": {Type: ports.SchemaString},
							"impact":      {Type: ports.SchemaString, Enum: impacts()},
						},
						Required: []string{"title", "description", "impact"},
					},
				},
			},
			Required: []string{"insights"},
		},
	}, nil
}

func trafficRequest(now time.Time) ports.GenerateRequest {
	density := func() *ports.Schema {
		return &ports.Schema{Type: ports.SchemaString, Enum: densities()}
	}
	return ports.GenerateRequest{
		SystemInstruction: trafficInstruction,
		Prompt: fmt.Sprintf("Generate a real-time traffic density report for major routes in Abuja, Kaduna, "+
			"and Kano. Current time is %s.", now.Format(time.Kitchen)),
		Schema: &ports.Schema{
			Type: ports.SchemaObject,
			Properties: map[string]*ports.Schema{
				"ABUJA":  density(),
				"KADUNA": density(),
				"KANO":   density(),
			},
			Required: []string{"ABUJA", "KADUNA", "KANO"},
		},
	}
}

func etaRequest(o order.State, c *courier.State, now time.Time) ports.GenerateRequest {
	courierInfo := "Assigning rider"
	if c != nil {
		courierInfo = fmt.Sprintf("%s at {\"lat\":%g,\"lng\":%g}", c.Vehicle, c.Location.Lat(), c.Location.Lng())
	}

	var b strings.Builder
	b.WriteString("Predict ETA for this delivery in Nigeria.\n")
	fmt.Fprintf(&b, "Order Status: %s\n", o.Status)
	fmt.Fprintf(&b, "Hub: %s\n", hubName(o.ID))
	fmt.Fprintf(&b, "Pickup: %s\n", o.Route.PickupAddress)
	fmt.Fprintf(&b, "Delivery: %s\n", o.Route.DeliveryAddress)
	fmt.Fprintf(&b, "Courier Info: %s\n", courierInfo)
	fmt.Fprintf(&b, "Current Time: %s", now.Format(time.Kitchen))

	return ports.GenerateRequest{
		SystemInstruction: etaInstruction,
		Prompt:            b.String(),
		Schema: &ports.Schema{
			Type: ports.SchemaObject,
			Properties: map[string]*ports.Schema{
				"prediction": {Type: ports.SchemaString},
				"context":    {Type: ports.SchemaString},
			},
			Required: []string{"prediction", "context"},
		},
	}
}

func messageRequest(orderID string, status order.Status) ports.GenerateRequest {
	return ports.GenerateRequest{
		Prompt: fmt.Sprintf("Write a friendly professional message for a customer in Nigeria whose order %s is now %s.",
			orderID, status),
	}
}

// hubName guesses the city from the locality code in the order id. Food
// orders carry no code and are delivered in Abuja.
func hubName(orderID string) string {
	for _, hub := range kernel.Hubs() {
		if strings.Contains(orderID, "-"+hub.Code()+"-") {
			return cityName(hub)
		}
	}
	return cityName(kernel.HubAbuja)
}

func cityName(hub kernel.Hub) string {
	s := hub.String()
	return s[:1] + strings.ToLower(s[1:])
}
