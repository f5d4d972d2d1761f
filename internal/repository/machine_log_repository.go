package repository

import (
	"context"
	"fmt"
	"time"

	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/stitchworks/machine-log-backend/internal/entity"
)

type MachineLogRepository interface {
	Create(ctx context.Context, machineLog *entity.MachineLog) error
	Exists(ctx context.Context, machineID int, operatorID, startTime, endTime, date string) (bool, error)
	RecordDuplicate(ctx context.Context, payload []byte) error
	GetByDateRange(ctx context.Context, fromDate, toDate *string) ([]entity.MachineLog, error)
	GetConsolidated(ctx context.Context, fromDate, toDate *string, limit int) ([]entity.MachineLog, error)
	GetByFilter(ctx context.Context, filter entity.MachineLogFilter) ([]entity.MachineLog, error)
	GetOperatorLogs(ctx context.Context, operatorID string, fromDate, toDate *string) ([]entity.MachineLog, error)
	GetLineLogs(ctx context.Context, lineNumber *int, validOperators []string, fromDate, toDate *string) ([]entity.MachineLog, error)
	GetMachineLogs(ctx context.Context, machineID *int, validOperators []string, fromDate, toDate *string) ([]entity.MachineLog, error)
	DistinctLineNumbers(ctx context.Context, fromDate, toDate string) ([]int, error)
	DistinctMachineIDs(ctx context.Context, fromDate, toDate string) ([]int, error)
	DistinctOperatorIDs(ctx context.Context, fromDate, toDate string) ([]string, error)
	CountDistinctMachines(ctx context.Context) (int, error)
	CountDistinctLines(ctx context.Context) (int, error)
	CountUnderperformingOperators(ctx context.Context) (int, error)
	LineRuntimeStats(ctx context.Context) ([]LineRuntimeStat, error)
	TimeSpans(ctx context.Context) ([]TimeSpan, error)
}

// LineRuntimeStat backs the line runtime-efficiency view; sums computed in
// SQL since no window/break policy applies there.
type LineRuntimeStat struct {
	LineNumber    int     `db:"line_number"`
	TotalMachines int     `db:"total_machines"`
	TotalRuntime  float64 `db:"total_runtime"`
	TotalStoptime float64 `db:"total_stoptime"`
}

// TimeSpan is the minimal projection used by the standalone operator
// efficiency metric.
type TimeSpan struct {
	OperatorID string `db:"operator_id"`
	StartTime  string `db:"start_time"`
	EndTime    string `db:"end_time"`
}

type machineLogRepository struct {
	db *DB
}

func NewMachineLogRepository(db *DB) MachineLogRepository {
	return &machineLogRepository{db: db}
}

// machineLogColumns renders dates and times back to the canonical string
// forms the computation layer expects.
const machineLogColumns = `
	id, machine_id, line_number, operator_id,
	to_char(log_date, 'YYYY-MM-DD') AS log_date,
	to_char(start_time, 'HH24:MI:SS') AS start_time,
	to_char(end_time, 'HH24:MI:SS') AS end_time,
	mode, operation_count, skip_count, tx_log_id, stored_log_id, device_id,
	reserve, needle_stoptime, created_at`

func (r *machineLogRepository) Create(ctx context.Context, machineLog *entity.MachineLog) error {
	machineLog.ID = uuid2.UUID(uuid.New())
	machineLog.CreatedAt = time.Now()

	query := `
		INSERT INTO machine_logs (id, machine_id, line_number, operator_id, log_date, start_time, end_time,
			mode, operation_count, skip_count, tx_log_id, stored_log_id, device_id, reserve, needle_stoptime, created_at)
		VALUES (:id, :machine_id, :line_number, :operator_id, :log_date, :start_time, :end_time,
			:mode, :operation_count, :skip_count, :tx_log_id, :stored_log_id, :device_id, :reserve, :needle_stoptime, :created_at)`

	_, err := r.db.Primary().NamedExecContext(ctx, query, machineLog)
	return err
}

func (r *machineLogRepository) Exists(ctx context.Context, machineID int, operatorID, startTime, endTime, date string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM machine_logs
			WHERE machine_id = $1 AND operator_id = $2 AND start_time = $3 AND end_time = $4 AND log_date = $5
		)`

	var exists bool
	err := r.db.Read().GetContext(ctx, &exists, query, machineID, operatorID, startTime, endTime, date)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate log: %w", err)
	}

	return exists, nil
}

func (r *machineLogRepository) RecordDuplicate(ctx context.Context, payload []byte) error {
	query := `INSERT INTO duplicate_logs (id, payload, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.Primary().ExecContext(ctx, query, uuid.New(), payload, time.Now())
	return err
}

func (r *machineLogRepository) GetByDateRange(ctx context.Context, fromDate, toDate *string) ([]entity.MachineLog, error) {
	query := "SELECT " + machineLogColumns + " FROM machine_logs WHERE 1=1"
	args := []interface{}{}

	query, args = appendDateRange(query, args, fromDate, toDate)
	query += " ORDER BY created_at DESC"

	var logs []entity.MachineLog
	if err := r.db.Read().SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get machine logs: %w", err)
	}

	return logs, nil
}

func (r *machineLogRepository) GetConsolidated(ctx context.Context, fromDate, toDate *string, limit int) ([]entity.MachineLog, error) {
	query := "SELECT " + machineLogColumns + " FROM machine_logs WHERE 1=1"
	args := []interface{}{}

	query, args = appendDateRange(query, args, fromDate, toDate)
	query += fmt.Sprintf(" ORDER BY log_date DESC LIMIT $%d", len(args)+1)
	args = append(args, limit)

	var logs []entity.MachineLog
	if err := r.db.Read().SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get consolidated logs: %w", err)
	}

	return logs, nil
}

func (r *machineLogRepository) GetByFilter(ctx context.Context, filter entity.MachineLogFilter) ([]entity.MachineLog, error) {
	query := "SELECT " + machineLogColumns + " FROM machine_logs WHERE 1=1"
	args := []interface{}{}

	if filter.LineNumber != nil {
		query += fmt.Sprintf(" AND line_number = $%d", len(args)+1)
		args = append(args, *filter.LineNumber)
	}
	if filter.MachineID != nil {
		query += fmt.Sprintf(" AND machine_id = $%d", len(args)+1)
		args = append(args, *filter.MachineID)
	}
	if filter.OperatorID != nil {
		query += fmt.Sprintf(" AND operator_id = $%d", len(args)+1)
		args = append(args, *filter.OperatorID)
	}
	query, args = appendDateRange(query, args, filter.FromDate, filter.ToDate)

	query += " ORDER BY created_at ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, filter.Limit)
	}

	var logs []entity.MachineLog
	if err := r.db.Read().SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to filter machine logs: %w", err)
	}

	return logs, nil
}

func (r *machineLogRepository) GetOperatorLogs(ctx context.Context, operatorID string, fromDate, toDate *string) ([]entity.MachineLog, error) {
	query := "SELECT " + machineLogColumns + " FROM machine_logs WHERE operator_id = $1"
	args := []interface{}{operatorID}

	query, args = appendDateRange(query, args, fromDate, toDate)
	query += " ORDER BY created_at ASC"

	var logs []entity.MachineLog
	if err := r.db.Read().SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get operator logs: %w", err)
	}

	return logs, nil
}

func (r *machineLogRepository) GetLineLogs(ctx context.Context, lineNumber *int, validOperators []string, fromDate, toDate *string) ([]entity.MachineLog, error) {
	query := "SELECT " + machineLogColumns + " FROM machine_logs WHERE operator_id = ANY($1)"
	args := []interface{}{pq.Array(validOperators)}

	if lineNumber != nil {
		query += fmt.Sprintf(" AND line_number = $%d", len(args)+1)
		args = append(args, *lineNumber)
	}
	query, args = appendDateRange(query, args, fromDate, toDate)
	query += " ORDER BY created_at ASC"

	var logs []entity.MachineLog
	if err := r.db.Read().SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get line logs: %w", err)
	}

	return logs, nil
}

func (r *machineLogRepository) GetMachineLogs(ctx context.Context, machineID *int, validOperators []string, fromDate, toDate *string) ([]entity.MachineLog, error) {
	query := "SELECT " + machineLogColumns + " FROM machine_logs WHERE operator_id = ANY($1)"
	args := []interface{}{pq.Array(validOperators)}

	if machineID != nil {
		query += fmt.Sprintf(" AND machine_id = $%d", len(args)+1)
		args = append(args, *machineID)
	}
	query, args = appendDateRange(query, args, fromDate, toDate)
	query += " ORDER BY created_at ASC"

	var logs []entity.MachineLog
	if err := r.db.Read().SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get machine logs: %w", err)
	}

	return logs, nil
}

func (r *machineLogRepository) DistinctLineNumbers(ctx context.Context, fromDate, toDate string) ([]int, error) {
	query := `
		SELECT DISTINCT line_number FROM machine_logs
		WHERE log_date >= $1 AND log_date <= $2
		ORDER BY line_number ASC`

	var lines []int
	if err := r.db.Read().SelectContext(ctx, &lines, query, fromDate, toDate); err != nil {
		return nil, fmt.Errorf("failed to get line numbers: %w", err)
	}

	return lines, nil
}

func (r *machineLogRepository) DistinctMachineIDs(ctx context.Context, fromDate, toDate string) ([]int, error) {
	query := `
		SELECT DISTINCT machine_id FROM machine_logs
		WHERE log_date >= $1 AND log_date <= $2
		ORDER BY machine_id ASC`

	var machines []int
	if err := r.db.Read().SelectContext(ctx, &machines, query, fromDate, toDate); err != nil {
		return nil, fmt.Errorf("failed to get machine ids: %w", err)
	}

	return machines, nil
}

func (r *machineLogRepository) DistinctOperatorIDs(ctx context.Context, fromDate, toDate string) ([]string, error) {
	query := `
		SELECT DISTINCT operator_id FROM machine_logs
		WHERE log_date >= $1 AND log_date <= $2 AND operator_id <> '0'
		ORDER BY operator_id ASC`

	var operators []string
	if err := r.db.Read().SelectContext(ctx, &operators, query, fromDate, toDate); err != nil {
		return nil, fmt.Errorf("failed to get operator ids: %w", err)
	}

	return operators, nil
}

func (r *machineLogRepository) CountDistinctMachines(ctx context.Context) (int, error) {
	var count int
	err := r.db.Read().GetContext(ctx, &count, `SELECT COUNT(DISTINCT machine_id) FROM machine_logs`)
	if err != nil {
		return 0, fmt.Errorf("failed to count machines: %w", err)
	}

	return count, nil
}

func (r *machineLogRepository) CountDistinctLines(ctx context.Context) (int, error) {
	var count int
	err := r.db.Read().GetContext(ctx, &count, `SELECT COUNT(DISTINCT line_number) FROM machine_logs`)
	if err != nil {
		return 0, fmt.Errorf("failed to count lines: %w", err)
	}

	return count, nil
}

func (r *machineLogRepository) CountUnderperformingOperators(ctx context.Context) (int, error) {
	query := `SELECT COUNT(DISTINCT operator_id) FROM machine_logs WHERE mode IN (3, 4, 5)`

	var count int
	if err := r.db.Read().GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count underperforming operators: %w", err)
	}

	return count, nil
}

func (r *machineLogRepository) LineRuntimeStats(ctx context.Context) ([]LineRuntimeStat, error) {
	query := `
		SELECT line_number,
			COUNT(DISTINCT machine_id) AS total_machines,
			COALESCE(SUM(skip_count), 0) AS total_runtime,
			COALESCE(SUM(needle_stoptime), 0) AS total_stoptime
		FROM machine_logs
		GROUP BY line_number
		ORDER BY line_number ASC`

	var stats []LineRuntimeStat
	if err := r.db.Read().SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get line runtime stats: %w", err)
	}

	return stats, nil
}

func (r *machineLogRepository) TimeSpans(ctx context.Context) ([]TimeSpan, error) {
	query := `
		SELECT operator_id,
			to_char(start_time, 'HH24:MI:SS') AS start_time,
			to_char(end_time, 'HH24:MI:SS') AS end_time
		FROM machine_logs
		ORDER BY created_at ASC`

	var spans []TimeSpan
	if err := r.db.Read().SelectContext(ctx, &spans, query); err != nil {
		return nil, fmt.Errorf("failed to get time spans: %w", err)
	}

	return spans, nil
}

func appendDateRange(query string, args []interface{}, fromDate, toDate *string) (string, []interface{}) {
	if fromDate != nil && *fromDate != "" {
		query += fmt.Sprintf(" AND log_date >= $%d", len(args)+1)
		args = append(args, *fromDate)
	}
	if toDate != nil && *toDate != "" {
		query += fmt.Sprintf(" AND log_date <= $%d", len(args)+1)
		args = append(args, *toDate)
	}
	return query, args
}
