package models

// Stage names the pipeline step a diagnostic belongs to.
type Stage string

const (
	StageLocate   Stage = "locate"
	StageResolve  Stage = "resolve"
	StageMerge    Stage = "merge"
	StageQuality  Stage = "quality"
	StageRemote   Stage = "remote"
	StageAlign    Stage = "align"
	StageResample Stage = "resample"
	StageTrim     Stage = "trim"
)

// Reason classifies a stage failure. Empty means success.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonDataUnavailable Reason = "DataUnavailable"
	ReasonMergeFailed     Reason = "MergeFailed"
	ReasonNaN             Reason = "NaNContamination"
	ReasonFillMarker      Reason = "FillMarkerPresent"
	ReasonLengthMismatch  Reason = "LengthMismatch"
	ReasonTooShort        Reason = "TooShort"
	ReasonTrimFailed      Reason = "TrimFailed"
	ReasonNetworkError    Reason = "NetworkError"
	// ReasonZeroAmbiguity is advisory only: sentinel samples were replaced
	// with zero and genuine zeros remain indistinguishable.
	ReasonZeroAmbiguity Reason = "ZeroAmbiguity"
)

// Diagnostic is a structured per-stage event accumulated on the acquisition
// result instead of being printed.
type Diagnostic struct {
	Stage      Stage       `json:"stage"`
	Component  string      `json:"component,omitempty"`
	Tier       ResolveTier `json:"tier,omitempty"`
	Candidates int         `json:"candidates,omitempty"`
	Reason     Reason      `json:"reason,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// Status is the terminal state of one acquisition.
type Status string

const (
	StatusDone   Status = "done"
	StatusFailed Status = "failed"
)
