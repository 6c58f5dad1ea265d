package metrics

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	alumniRegistered  metric.Int64Counter
	directorySearches metric.Int64Counter
	csvExports        metric.Int64Counter
	profileSaves      metric.Int64Counter
	memoriesUploaded  metric.Int64Counter
}

func New(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.alumniRegistered, err = meter.Int64Counter(
		"alumni_portal.alumni.registered",
		metric.WithDescription("Total number of alumni accounts registered"),
		metric.WithUnit("{account}"),
	)
	if err != nil {
		return nil, err
	}

	m.directorySearches, err = meter.Int64Counter(
		"alumni_portal.directory.searches",
		metric.WithDescription("Total number of directory filter/search requests"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, err
	}

	m.csvExports, err = meter.Int64Counter(
		"alumni_portal.directory.csv_exports",
		metric.WithDescription("Total number of directory CSV exports"),
		metric.WithUnit("{export}"),
	)
	if err != nil {
		return nil, err
	}

	m.profileSaves, err = meter.Int64Counter(
		"alumni_portal.profile.saves",
		metric.WithDescription("Total number of profile saves"),
		metric.WithUnit("{save}"),
	)
	if err != nil {
		return nil, err
	}

	m.memoriesUploaded, err = meter.Int64Counter(
		"alumni_portal.memories.uploaded",
		metric.WithDescription("Total number of memory lane uploads"),
		metric.WithUnit("{memory}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) RecordAlumniRegistration(ctx context.Context) {
	if m != nil && m.alumniRegistered != nil {
		m.alumniRegistered.Add(ctx, 1)
	}
}

func (m *Metrics) RecordDirectorySearch(ctx context.Context) {
	if m != nil && m.directorySearches != nil {
		m.directorySearches.Add(ctx, 1)
	}
}

func (m *Metrics) RecordCSVExport(ctx context.Context) {
	if m != nil && m.csvExports != nil {
		m.csvExports.Add(ctx, 1)
	}
}

func (m *Metrics) RecordProfileSave(ctx context.Context) {
	if m != nil && m.profileSaves != nil {
		m.profileSaves.Add(ctx, 1)
	}
}

func (m *Metrics) RecordMemoryUpload(ctx context.Context) {
	if m != nil && m.memoriesUploaded != nil {
		m.memoriesUploaded.Add(ctx, 1)
	}
}

// NewMock creates a no-op Metrics instance for testing
// The returned Metrics will safely ignore all Record* calls
func NewMock() *Metrics {
	return &Metrics{}
}
