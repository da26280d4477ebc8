package memory

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"speedial/internal/core/domain/model/catalogue"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the decoded start-up data set.
type Seed struct {
	Orders   []*order.Order
	Couriers []*courier.Courier
	Products []catalogue.Product
}

// DefaultSeed decodes the embedded seed document.
func DefaultSeed(loadedAt time.Time) (Seed, error) {
	return LoadSeed(defaultSeed, loadedAt)
}

// LoadSeed decodes a YAML seed document. Unknown fields are rejected.
func LoadSeed(data []byte, loadedAt time.Time) (Seed, error) {
	var dto SeedDTO
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}

	var (
		seed    Seed
		errList []error
	)
	for _, o := range dto.Orders {
		aggregate, err := o.toDomain(loadedAt)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		seed.Orders = append(seed.Orders, aggregate)
	}
	for _, c := range dto.Couriers {
		aggregate, err := c.toDomain()
		if err != nil {
			errList = append(errList, err)
			continue
		}
		seed.Couriers = append(seed.Couriers, aggregate)
	}
	for _, p := range dto.Products {
		product, err := p.toDomain()
		if err != nil {
			errList = append(errList, err)
			continue
		}
		seed.Products = append(seed.Products, product)
	}

	if err := errors.Join(errList...); err != nil {
		return Seed{}, err
	}
	return seed, nil
}
