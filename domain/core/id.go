package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	ProjectID    ID
	SweepID      ID
	ParameterKey ID
)

func (id ProjectID) String() string     { return ID(id).String() }
func (id SweepID) String() string       { return ID(id).String() }
func (key ParameterKey) String() string { return ID(key).String() }

// ParseParameterKey parses a string into ParameterKey
func ParseParameterKey(s string) (ParameterKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("parameter key cannot be empty")
	}
	return ParameterKey(s), nil
}

// Artifact represents any output of an analysis sweep
type Artifact struct {
	ID        ID           `json:"id"`
	Kind      ArtifactKind `json:"kind"`
	Parameter ParameterKey `json:"parameter"`
	Payload   interface{}  `json:"payload"`
	CreatedAt Timestamp    `json:"created_at"`
}

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	ArtifactDescriptive  ArtifactKind = "descriptive"
	ArtifactAnova        ArtifactKind = "anova"
	ArtifactTwoWayAnova  ArtifactKind = "two_way_anova"
	ArtifactLSD          ArtifactKind = "lsd_posthoc"
	ArtifactTreatmentSum ArtifactKind = "treatment_summary"
)
