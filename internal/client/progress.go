package client

// Milestone is one fixed checkpoint of the submission flow. Percent is
// a display value, not a measurement; the sequence is always the same
// five steps.
type Milestone struct {
	// Key indexes the localized label in internal/i18n.
	Key     string
	Percent int
}

var (
	MilestonePreparing       = Milestone{Key: "submit.preparing", Percent: 10}
	MilestoneProcessingFiles = Milestone{Key: "submit.processing_files", Percent: 30}
	MilestoneGenerating      = Milestone{Key: "submit.generating", Percent: 60}
	MilestoneFinalizing      = Milestone{Key: "submit.finalizing", Percent: 90}
	MilestoneDone            = Milestone{Key: "submit.done", Percent: 100}
)
