package machinelog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/internal/repository"
	"github.com/stitchworks/machine-log-backend/internal/service/report"
	"github.com/stitchworks/machine-log-backend/pkg/utils"
)

// consolidatedLimit caps the consolidated listing; field devices replay
// aggressively after connectivity gaps.
const consolidatedLimit = 10000

// storedLogIDWrap: device counters above 1000 carry a retransmission offset
// that has to be stripped before storage.
const storedLogIDWrap = 1000

type Service struct {
	logs      repository.MachineLogRepository
	operators repository.OperatorRepository
}

func NewMachineLogService(logs repository.MachineLogRepository, operators repository.OperatorRepository) *Service {
	return &Service{logs: logs, operators: operators}
}

// Create validates and stores one ingest payload. The bool result reports a
// duplicate: the record is not stored again, but its raw payload is kept in
// duplicate_logs for inspection.
func (s *Service) Create(ctx context.Context, request *entity.CreateMachineLogRequest) (*entity.MachineLog, bool, error) {
	date, err := utils.NormalizeDate(request.Date)
	if err != nil {
		return nil, false, err
	}
	startTime, err := utils.NormalizeClock(request.StartTime)
	if err != nil {
		return nil, false, fmt.Errorf("START_TIME: %w", err)
	}
	endTime, err := utils.NormalizeClock(request.EndTime)
	if err != nil {
		return nil, false, fmt.Errorf("END_TIME: %w", err)
	}

	storedLogID := request.StoredLogID
	if storedLogID > storedLogIDWrap {
		storedLogID -= storedLogIDWrap
	}

	exists, err := s.logs.Exists(ctx, request.MachineID, request.OperatorID, startTime, endTime, date)
	if err != nil {
		return nil, false, err
	}
	if exists {
		payload, err := json.Marshal(request)
		if err != nil {
			return nil, false, fmt.Errorf("failed to marshal duplicate payload: %w", err)
		}
		if err := s.logs.RecordDuplicate(ctx, payload); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	machineLog := &entity.MachineLog{
		MachineID:      request.MachineID,
		LineNumber:     request.LineNumber,
		OperatorID:     request.OperatorID,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Mode:           *request.Mode,
		OperationCount: request.OperationCount,
		SkipCount:      request.SkipCount,
		TxLogID:        request.TxLogID,
		StoredLogID:    storedLogID,
		DeviceID:       request.DeviceID,
		Reserve:        request.Reserve,
		NeedleStoptime: request.NeedleStoptime,
	}

	if err := s.logs.Create(ctx, machineLog); err != nil {
		return nil, false, err
	}

	return machineLog, false, nil
}

// List returns date-filtered logs with 1-based display indexes.
func (s *Service) List(ctx context.Context, fromDate, toDate *string) ([]entity.IndexedMachineLog, error) {
	logs, err := s.logs.GetByDateRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	indexed := make([]entity.IndexedMachineLog, 0, len(logs))
	for i, machineLog := range logs {
		indexed = append(indexed, entity.IndexedMachineLog{Index: i + 1, MachineLog: machineLog})
	}

	return indexed, nil
}

func (s *Service) Consolidated(ctx context.Context, fromDate, toDate *string) ([]entity.MachineLog, error) {
	return s.logs.GetConsolidated(ctx, fromDate, toDate, consolidatedLimit)
}

// Filter returns logs matching the filter, annotated with the mode label and
// the operator's display name. Ids missing from the directory annotate as an
// empty name.
func (s *Service) Filter(ctx context.Context, filter entity.MachineLogFilter) ([]entity.AnnotatedMachineLog, error) {
	logs, err := s.logs.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	names, err := s.operators.Directory(ctx)
	if err != nil {
		return nil, err
	}

	annotated := make([]entity.AnnotatedMachineLog, 0, len(logs))
	for _, machineLog := range logs {
		annotated = append(annotated, entity.AnnotatedMachineLog{
			MachineLog:      machineLog,
			ModeDescription: report.ModeDescription(machineLog.Mode),
			OperatorName:    names[machineLog.OperatorID],
		})
	}

	return annotated, nil
}

func (s *Service) LineNumbers(ctx context.Context, fromDate, toDate string) ([]int, error) {
	return s.logs.DistinctLineNumbers(ctx, fromDate, toDate)
}

func (s *Service) MachineIDs(ctx context.Context, fromDate, toDate string) ([]int, error) {
	return s.logs.DistinctMachineIDs(ctx, fromDate, toDate)
}

func (s *Service) OperatorIDs(ctx context.Context, fromDate, toDate string) ([]string, error) {
	return s.logs.DistinctOperatorIDs(ctx, fromDate, toDate)
}
