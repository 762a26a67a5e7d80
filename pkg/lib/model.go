package lib

import (
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/scheduler"
)

var (
	// ErrNotFound is returned when a demo address does not exist.
	ErrNotFound = model.ErrNotFound
	// ErrNotValid is returned on invalid configuration or operations.
	ErrNotValid = model.ErrNotValid
	// ErrStopped is returned when the client loop is not running.
	ErrStopped = scheduler.ErrLoopStopped
)

// Outcome is the fixed risk classification of a demo address.
type Outcome = model.Outcome

const (
	OutcomeNone  = model.OutcomeNone
	OutcomeClean = model.OutcomeClean
	OutcomeRisky = model.OutcomeRisky
)

// ScanPhase is the scan simulator lifecycle position.
//
//	idle -> scanning -> resolved -> scanning -> ...
type ScanPhase = model.ScanPhase

const (
	ScanPhaseIdle     = model.ScanPhaseIdle
	ScanPhaseScanning = model.ScanPhaseScanning
	ScanPhaseResolved = model.ScanPhaseResolved
)

// DemoAddress is a pre-scripted wallet address.
type DemoAddress = model.DemoAddress

// ScanState is a snapshot of a scanner state.
type ScanState = model.ScanState

// ScanReport is the synthetic report of a resolved scan.
type ScanReport = model.ScanReport

// WorkflowState is a snapshot of a workflow state.
type WorkflowState = model.WorkflowState

// WorkflowStage is a step of the workflow narrative.
type WorkflowStage = model.WorkflowStage

// RiskDistribution is the static risk distribution.
type RiskDistribution = model.RiskDistribution
