package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/wellvoice/clinic-ops/internal/appointments"
	"github.com/wellvoice/clinic-ops/internal/observability/metrics"
	"github.com/wellvoice/clinic-ops/internal/patients"
	"github.com/wellvoice/clinic-ops/internal/tasks"
	"github.com/wellvoice/clinic-ops/pkg/logging"
)

// Importer drives spreadsheet rows through patient upsert and the
// appointment/task side-effect writers. Rows are processed sequentially in
// file order; a failing row never aborts the batch.
type Importer struct {
	patients     *patients.Service
	appointments *appointments.Writer
	tasks        *tasks.Writer
	logger       *logging.Logger
	metrics      *metrics.ImportMetrics
}

// New constructs an Importer. metrics may be nil.
func New(p *patients.Service, a *appointments.Writer, t *tasks.Writer, logger *logging.Logger, m *metrics.ImportMetrics) *Importer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Importer{
		patients:     p,
		appointments: a,
		tasks:        t,
		logger:       logger.WithComponent("importer"),
		metrics:      m,
	}
}

// Import decodes data and processes every row, accumulating counts and
// row-scoped errors. Only a wholesale unparseable file forces success=false
// with a single row-0 error.
func (im *Importer) Import(ctx context.Context, data []byte) *Result {
	start := time.Now()
	res := newResult()

	rows, err := ParseWorkbook(data)
	if err != nil {
		im.logger.Error("import file unparseable", "error", err)
		res.addError(0, "Failed to parse file: "+err.Error())
		return res
	}

	res.TotalRows = len(rows)
	for _, row := range rows {
		before := len(res.Errors)
		im.processRow(ctx, row, res)
		outcome := "ok"
		if len(res.Errors) > before {
			outcome = "error"
		}
		im.metrics.ObserveRow(outcome)
	}

	res.Success = res.PatientsCreated+res.PatientsUpdated > 0
	im.metrics.ObserveImport(time.Since(start).Seconds(), res.PatientsCreated, res.PatientsUpdated)

	im.logger.Info("import finished",
		"total_rows", res.TotalRows,
		"patients_created", res.PatientsCreated,
		"patients_updated", res.PatientsUpdated,
		"appointments_created", res.AppointmentsCreated,
		"tasks_created", res.TasksCreated,
		"errors", len(res.Errors),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res
}

// processRow runs one row end to end. Row steps share no transaction: a
// later failure leaves earlier writes in place.
func (im *Importer) processRow(ctx context.Context, row Row, res *Result) {
	defer func() {
		if rec := recover(); rec != nil {
			im.logger.Error("row processing panicked", "row", row.Num, "panic", rec)
			res.addError(row.Num, fmt.Sprintf("unexpected error: %v", rec))
		}
	}()

	if missing := row.MissingRequired(); missing != "" {
		res.addError(row.Num, "Missing required field: "+missing)
		return
	}

	patient, created, err := im.patients.Upsert(ctx, patients.UpsertInput{
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
		DOB:       row.DOB,
	})
	if err != nil {
		res.addError(row.Num, err.Error())
		return
	}
	if created {
		res.PatientsCreated++
	} else {
		res.PatientsUpdated++
	}

	if row.VisitDateErr != nil {
		// Malformed date skips the appointment but the rest of the row runs.
		res.addError(row.Num, row.VisitDateErr.Error())
	} else if row.VisitDate != "" {
		written, err := im.appointments.RecordVisit(ctx, patient.ID, row.VisitDate)
		if err != nil {
			res.addError(row.Num, err.Error())
		} else if written {
			res.AppointmentsCreated++
		}
	}

	written, err := im.tasks.CreateForRow(ctx, patient.ID, tasks.RowInput{
		CreateTaskCell: row.CreateTaskCell,
		TaskTypeCell:   row.TaskTypeCell,
		AgentRef:       row.AgentName,
		Provider:       row.AgentName,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
	})
	if err != nil {
		res.addError(row.Num, err.Error())
	} else if written {
		res.TasksCreated++
	}
}
