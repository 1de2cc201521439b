package commands

import "github.com/de-tools/spot-atlas/pkg/models/domain"

// ReportHandler renders a report to the command output.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

// ReporterFactory picks a renderer at run time so output flags set on the
// root command apply to every subcommand.
type ReporterFactory func() ReportHandler
