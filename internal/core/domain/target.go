package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DeploymentTarget names the environment a render is published to.
// The zero value means no deployment is in progress.
type DeploymentTarget string

const (
	// TargetNone is used outside of a deploy, for local preview renders.
	TargetNone DeploymentTarget = ""
	// TargetDevelopment is the development environment.
	TargetDevelopment DeploymentTarget = "development"
	// TargetStaging is the staging environment.
	TargetStaging DeploymentTarget = "staging"
	// TargetProduction is the production environment.
	TargetProduction DeploymentTarget = "production"
)

// DeploymentTargets lists every known deployment target.
var DeploymentTargets = []DeploymentTarget{TargetDevelopment, TargetStaging, TargetProduction}

// Valid reports whether t is one of the known deployment targets.
// TargetNone is not valid.
func (t DeploymentTarget) Valid() bool {
	switch t {
	case TargetDevelopment, TargetStaging, TargetProduction:
		return true
	default:
		return false
	}
}

// String returns the target name.
func (t DeploymentTarget) String() string {
	return string(t)
}

// ParseDeploymentTarget parses a target name. An empty string yields TargetNone.
func ParseDeploymentTarget(s string) (DeploymentTarget, error) {
	t := DeploymentTarget(strings.ToLower(strings.TrimSpace(s)))
	if t == TargetNone || t.Valid() {
		return t, nil
	}
	return TargetNone, zerr.With(zerr.Wrap(ErrInvalidDeploymentTarget, "unknown target"), "target", s)
}
