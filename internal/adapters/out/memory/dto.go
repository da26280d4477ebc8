package memory

import (
	"errors"
	"fmt"
	"time"

	"speedial/internal/core/domain/model/catalogue"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"
)

// SeedDTO is the YAML layout of the seed document.
type SeedDTO struct {
	Orders   []OrderDTO   `yaml:"orders"`
	Couriers []CourierDTO `yaml:"couriers"`
	Products []ProductDTO `yaml:"products"`
}

type LocationDTO struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// OrderDTO uses the upper snake status key. A missing createdAt is filled
// with the load time.
type OrderDTO struct {
	ID              string      `yaml:"id"`
	CustomerName    string      `yaml:"customerName"`
	PickupAddress   string      `yaml:"pickupAddress"`
	DeliveryAddress string      `yaml:"deliveryAddress"`
	Pickup          LocationDTO `yaml:"pickup"`
	Delivery        LocationDTO `yaml:"delivery"`
	Status          string      `yaml:"status"`
	CreatedAt       *time.Time  `yaml:"createdAt,omitempty"`
	CourierID       string      `yaml:"courierId,omitempty"`
	Weight          string      `yaml:"weight"`
	Priority        string      `yaml:"priority"`
	ETA             string      `yaml:"eta,omitempty"`
	Type            string      `yaml:"type,omitempty"`
	Items           []string    `yaml:"items,omitempty"`
}

type CourierDTO struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Phone    string      `yaml:"phone,omitempty"`
	Vehicle  string      `yaml:"vehicle"`
	Hub      string      `yaml:"hub,omitempty"`
	Location LocationDTO `yaml:"location"`
	Status   string      `yaml:"status"`
	Rating   float64     `yaml:"rating"`
}

type ProductDTO struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Price         int    `yaml:"price"`
	Category      string `yaml:"category"`
	Image         string `yaml:"image"`
	JointName     string `yaml:"jointName"`
	JointLocation string `yaml:"jointLocation"`
}

func (dto LocationDTO) toDomain() (kernel.Location, error) {
	return kernel.NewLocation(dto.Lat, dto.Lng)
}

func (dto OrderDTO) toDomain(loadedAt time.Time) (*order.Order, error) {
	pickup, pickupErr := dto.Pickup.toDomain()
	delivery, deliveryErr := dto.Delivery.toDomain()
	status, statusErr := order.ParseStatus(dto.Status)
	priority, priorityErr := order.ParsePriority(dto.Priority)
	if err := errors.Join(pickupErr, deliveryErr, statusErr, priorityErr); err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}

	createdAt := loadedAt
	if dto.CreatedAt != nil {
		createdAt = *dto.CreatedAt
	}

	o, err := order.RestoreOrder(order.State{
		ID:           dto.ID,
		CustomerName: dto.CustomerName,
		Route: order.Route{
			PickupAddress:   dto.PickupAddress,
			DeliveryAddress: dto.DeliveryAddress,
			Pickup:          pickup,
			Delivery:        delivery,
		},
		Status:    status,
		CreatedAt: createdAt,
		CourierID: dto.CourierID,
		Weight:    dto.Weight,
		Priority:  priority,
		ETA:       dto.ETA,
		Type:      order.Type(dto.Type),
		Items:     dto.Items,
	})
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}
	return o, nil
}

func (dto CourierDTO) toDomain() (*courier.Courier, error) {
	loc, locErr := dto.Location.toDomain()
	status, statusErr := courier.ParseStatus(dto.Status)
	if err := errors.Join(locErr, statusErr); err != nil {
		return nil, fmt.Errorf("courier %s: %w", dto.ID, err)
	}

	c, err := courier.RestoreCourier(courier.State{
		ID:       dto.ID,
		Name:     dto.Name,
		Phone:    dto.Phone,
		Vehicle:  courier.Vehicle(dto.Vehicle),
		Hub:      kernel.Hub(dto.Hub),
		Location: loc,
		Status:   status,
		Rating:   dto.Rating,
	})
	if err != nil {
		return nil, fmt.Errorf("courier %s: %w", dto.ID, err)
	}
	return c, nil
}

func (dto ProductDTO) toDomain() (catalogue.Product, error) {
	p := catalogue.Product{
		ID:            dto.ID,
		Name:          dto.Name,
		Price:         dto.Price,
		Category:      catalogue.Category(dto.Category),
		Image:         dto.Image,
		JointName:     dto.JointName,
		JointLocation: dto.JointLocation,
	}
	if err := p.Validate(); err != nil {
		return catalogue.Product{}, fmt.Errorf("product %s: %w", dto.ID, err)
	}
	return p, nil
}
