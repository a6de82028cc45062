package ports

import "github.com/taurgis/aegis-docsite/internal/domain"

// ReportStore persists link-check reports for later inspection.
type ReportStore interface {
	SaveLinkReport(report domain.LinkReport) (id string, err error)
}
