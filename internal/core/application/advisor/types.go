package advisor

import (
	"fmt"
	"slices"

	"speedial/internal/core/domain/model/kernel"
)

// Impact grades an insight.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

func impacts() []string {
	return []string{string(ImpactLow), string(ImpactMedium), string(ImpactHigh)}
}

// Insight is one fleet strategy tip.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
}

func (i Insight) validate() error {
	if i.Title == "" || i.Description == "" {
		return fmt.Errorf("insight %q is incomplete", i.Title)
	}
	if !slices.Contains(impacts(), string(i.Impact)) {
		return fmt.Errorf("insight impact %q is not allowed", i.Impact)
	}
	return nil
}

// Density is the traffic level on a hub's major routes.
type Density string

const (
	DensityLight    Density = "light"
	DensityModerate Density = "moderate"
	DensityHeavy    Density = "heavy"
)

func densities() []string {
	return []string{string(DensityLight), string(DensityModerate), string(DensityHeavy)}
}

// TrafficReport holds one density per hub.
type TrafficReport struct {
	Abuja  Density `json:"ABUJA"`
	Kaduna Density `json:"KADUNA"`
	Kano   Density `json:"KANO"`
}

// For returns the density reported for hub.
func (r TrafficReport) For(hub kernel.Hub) Density {
	switch hub {
	case kernel.HubKaduna:
		return r.Kaduna
	case kernel.HubKano:
		return r.Kano
	default:
		return r.Abuja
	}
}

func (r TrafficReport) validate() error {
	for _, d := range []Density{r.Abuja, r.Kaduna, r.Kano} {
		if !slices.Contains(densities(), string(d)) {
			return fmt.Errorf("traffic density %q is not allowed", d)
		}
	}
	return nil
}

// ETAPrediction is a generated arrival estimate with a short reason.
type ETAPrediction struct {
	Prediction string `json:"prediction"`
	Context    string `json:"context"`
}

func (p ETAPrediction) validate() error {
	if p.Prediction == "" {
		return fmt.Errorf("eta prediction is empty")
	}
	return nil
}

// Fallbacks used whenever the generator fails or is disabled.
var (
	FallbackInsights = []Insight{{
		Title:       "NETWORK STABLE",
		Description: "All riders active across northern hubs.",
		Impact:      ImpactMedium,
	}}

	// InitialTraffic is served until the first refresh completes.
	InitialTraffic = TrafficReport{Abuja: DensityModerate, Kaduna: DensityLight, Kano: DensityModerate}
	// EmptyTraffic replaces an empty generator response.
	EmptyTraffic = TrafficReport{Abuja: DensityModerate, Kaduna: DensityLight, Kano: DensityHeavy}
	// FailedTraffic replaces a failed or malformed generator response.
	FailedTraffic = TrafficReport{Abuja: DensityModerate, Kaduna: DensityLight, Kano: DensityModerate}

	EmptyETA  = ETAPrediction{Prediction: "15-20 mins", Context: "Standard routing"}
	FailedETA = ETAPrediction{Prediction: "Calculating...", Context: "Refining GPS data"}
)
