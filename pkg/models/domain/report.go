package domain

import "time"

// Report is the renderable form of any analysis result. Engines stay typed;
// commands flatten their output into a Report before handing it to a
// reporter.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Sections    []ReportSection
}

type ReportSection struct {
	Title   string
	Summary map[string]string
	Details []ReportRow
}

type ReportRow struct {
	Name        string
	Value       string
	Unit        string
	Description string
}
