package model

import (
	"time"
)

// PollutionType is the fixed set of incident categories the classifier
// can produce.
type PollutionType string

const (
	TypeSolidWaste PollutionType = "Residuos Sólidos"
	TypeWater      PollutionType = "Contaminación del Agua"
	TypeAir        PollutionType = "Contaminación del Aire"
	TypeNoise      PollutionType = "Contaminación Acústica"
	TypeVisual     PollutionType = "Contaminación Visual"
	TypeSoil       PollutionType = "Contaminación del Suelo"
)

// PollutionTypes returns the full enumeration in declaration order.
func PollutionTypes() []PollutionType {
	return []PollutionType{
		TypeSolidWaste,
		TypeWater,
		TypeAir,
		TypeNoise,
		TypeVisual,
		TypeSoil,
	}
}

func (t PollutionType) Valid() bool {
	switch t {
	case TypeSolidWaste, TypeWater, TypeAir, TypeNoise, TypeVisual, TypeSoil:
		return true
	}
	return false
}

// SeverityLevel is an ordinal enum: Bajo < Moderado < Alto < Crítico.
type SeverityLevel string

const (
	LevelLow      SeverityLevel = "Bajo"
	LevelModerate SeverityLevel = "Moderado"
	LevelHigh     SeverityLevel = "Alto"
	LevelCritical SeverityLevel = "Crítico"
)

func SeverityLevels() []SeverityLevel {
	return []SeverityLevel{LevelLow, LevelModerate, LevelHigh, LevelCritical}
}

func (l SeverityLevel) Valid() bool {
	switch l {
	case LevelLow, LevelModerate, LevelHigh, LevelCritical:
		return true
	}
	return false
}

// Rank orders severities for dashboard sorting. Unknown levels rank
// below Bajo.
func (l SeverityLevel) Rank() int {
	switch l {
	case LevelLow:
		return 1
	case LevelModerate:
		return 2
	case LevelHigh:
		return 3
	case LevelCritical:
		return 4
	}
	return 0
}

// Status is the triage state of a report. Any transition is allowed,
// but only through an explicit authority action.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// DisplayName is the Spanish label dashboards show for the status.
func (s Status) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusInProgress:
		return "En Proceso"
	case StatusResolved:
		return "Resuelto"
	}
	return string(s)
}

type Location struct {
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lng" validate:"longitude"`
	Address   string  `json:"address"`
}

// Report is a stored pollution incident. Everything except Status is
// immutable after creation.
type Report struct {
	ID            string        `json:"id"`
	Type          PollutionType `json:"type"`
	Level         SeverityLevel `json:"level"`
	Description   string        `json:"description"`
	Location      Location      `json:"location"`
	Image         []byte        `json:"image,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
	Status        Status        `json:"status"`
	StatusDisplay string        `json:"status_display"`
}

// SubmitReportRequest is a submission draft. Type and Level come from a
// completed classification; a draft without them is rejected. When
// ClassificationToken is set the server resolves Type/Level from that
// classification instead.
type SubmitReportRequest struct {
	Type                PollutionType `json:"type"`
	Level               SeverityLevel `json:"level"`
	Description         string        `json:"description"`
	Location            Location      `json:"location"`
	Image               []byte        `json:"image"`
	ClassificationToken string        `json:"classification_token,omitempty"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

type AssignTeamRequest struct {
	TeamName    string `json:"team_name" validate:"required"`
	TeamContact string `json:"team_contact" validate:"required"`
}

type AssignTeamResponse struct {
	ReportID    string `json:"report_id"`
	TeamName    string `json:"team_name"`
	TeamContact string `json:"team_contact"`
	Message     string `json:"message"`
}
