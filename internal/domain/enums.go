package domain

import "fmt"

// PlantStatus is the health state of a single plant.
type PlantStatus string

const (
	PlantStatusHealthy        PlantStatus = "HEALTHY"
	PlantStatusDiseased       PlantStatus = "DISEASED"
	PlantStatusNeedsAttention PlantStatus = "NEEDSATTENTION"
)

func (s PlantStatus) String() string { return string(s) }

func (s PlantStatus) IsValid() bool {
	switch s {
	case PlantStatusHealthy, PlantStatusDiseased, PlantStatusNeedsAttention:
		return true
	}
	return false
}

// CSSClass returns the badge class used to render the status.
func (s PlantStatus) CSSClass() string {
	switch s {
	case PlantStatusHealthy:
		return "status-healthy"
	case PlantStatusDiseased:
		return "status-diseased"
	case PlantStatusNeedsAttention:
		return "status-needs-attention"
	}
	return ""
}

// PlantStatuses lists every valid status in display order.
func PlantStatuses() []PlantStatus {
	return []PlantStatus{PlantStatusHealthy, PlantStatusDiseased, PlantStatusNeedsAttention}
}

// ParsePlantStatus converts s into a PlantStatus, rejecting unknown values.
func ParsePlantStatus(s string) (PlantStatus, error) {
	status := PlantStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid plant status %q", s)
	}
	return status, nil
}

// TargetType identifies which level of the hierarchy an Action is logged against.
type TargetType string

const (
	TargetPlot  TargetType = "plot"
	TargetRow   TargetType = "row"
	TargetPlant TargetType = "plant"
)

func (t TargetType) String() string { return string(t) }

func (t TargetType) IsValid() bool {
	switch t {
	case TargetPlot, TargetRow, TargetPlant:
		return true
	}
	return false
}
