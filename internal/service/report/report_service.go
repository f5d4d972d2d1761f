package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/internal/repository"
	"github.com/stitchworks/machine-log-backend/internal/service/cache"
)

var ErrOperatorNotFound = errors.New("operator not found")

// reportCacheTTL keeps report responses fresh enough for dashboard polling
// while absorbing repeated range queries.
const reportCacheTTL = 5 * time.Minute

// Service selects log snapshots from the repository and hands them to the
// pure assemblers. All policy decisions live in the assemblers; this layer
// only fetches, caches and fans out.
type Service struct {
	logs      repository.MachineLogRepository
	operators repository.OperatorRepository
	cache     *cache.Service
}

func NewReportService(logs repository.MachineLogRepository, operators repository.OperatorRepository, cacheService *cache.Service) *Service {
	return &Service{logs: logs, operators: operators, cache: cacheService}
}

func (s *Service) OperatorReport(ctx context.Context, operatorName string, fromDate, toDate *string) (*entity.OperatorReport, error) {
	cacheKey := fmt.Sprintf("report:operator:%s:%s:%s", operatorName, deref(fromDate), deref(toDate))
	var cached entity.OperatorReport
	if hit := s.fromCache(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	operator, err := s.operators.GetByName(ctx, operatorName)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, ErrOperatorNotFound
	}

	names, err := s.operators.Directory(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.GetOperatorLogs(ctx, operator.RFIDCardNo, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	operatorReport, err := BuildOperatorReport(logs, operator.RFIDCardNo, names, OperatorPolicy)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, operatorReport)
	return operatorReport, nil
}

func (s *Service) OperatorsRollup(ctx context.Context, fromDate, toDate *string) (*entity.OperatorsRollup, error) {
	cacheKey := fmt.Sprintf("report:operators:all:%s:%s", deref(fromDate), deref(toDate))
	var cached entity.OperatorsRollup
	if hit := s.fromCache(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	operators, names, err := s.operatorDirectory(ctx)
	if err != nil {
		return nil, err
	}

	logsByOperator, err := s.operatorLogs(ctx, operators, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	rollup, err := BuildOperatorsRollup(operators, logsByOperator, names, OperatorPolicy)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, rollup)
	return rollup, nil
}

func (s *Service) OperatorSummaries(ctx context.Context, fromDate, toDate *string) ([]entity.OperatorSummaryRow, error) {
	cacheKey := fmt.Sprintf("report:operators:summary:%s:%s", deref(fromDate), deref(toDate))
	var cached []entity.OperatorSummaryRow
	if hit := s.fromCache(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	operators, err := s.operators.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	logsByOperator, err := s.operatorLogs(ctx, operators, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	rows, err := BuildOperatorSummaries(operators, logsByOperator, OperatorPolicy)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, rows)
	return rows, nil
}

func (s *Service) LineReport(ctx context.Context, lineNumber int, fromDate, toDate *string) (*entity.LineReport, error) {
	cacheKey := fmt.Sprintf("report:line:%d:%s:%s", lineNumber, deref(fromDate), deref(toDate))
	var cached entity.LineReport
	if hit := s.fromCache(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	validOperators, err := s.registeredOperatorIDs(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.GetLineLogs(ctx, &lineNumber, validOperators, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	lineReport, err := BuildLineReport(logs, strconv.Itoa(lineNumber), LinePolicy)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, lineReport)
	return lineReport, nil
}

func (s *Service) LinesRollup(ctx context.Context, fromDate, toDate *string) (*entity.LinesRollup, error) {
	cacheKey := fmt.Sprintf("report:lines:all:%s:%s", deref(fromDate), deref(toDate))
	var cached entity.LinesRollup
	if hit := s.fromCache(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	validOperators, err := s.registeredOperatorIDs(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.GetLineLogs(ctx, nil, validOperators, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	byLine := make(map[int][]entity.MachineLog)
	for _, machineLog := range logs {
		byLine[machineLog.LineNumber] = append(byLine[machineLog.LineNumber], machineLog)
	}
	lineNumbers := make([]int, 0, len(byLine))
	for lineNumber := range byLine {
		lineNumbers = append(lineNumbers, lineNumber)
	}
	sort.Ints(lineNumbers)

	reports := make([]entity.LineReport, 0, len(lineNumbers))
	for _, lineNumber := range lineNumbers {
		lineReport, err := BuildLineReport(byLine[lineNumber], strconv.Itoa(lineNumber), LinePolicy)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *lineReport)
	}

	rollup := BuildLinesRollup(reports)
	s.toCache(ctx, cacheKey, rollup)
	return rollup, nil
}

func (s *Service) MachineReport(ctx context.Context, machineID int, fromDate, toDate *string) (*entity.MachineReport, error) {
	cacheKey := fmt.Sprintf("report:machine:%d:%s:%s", machineID, deref(fromDate), deref(toDate))
	var cached entity.MachineReport
	if hit := s.fromCache(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	validOperators, err := s.registeredOperatorIDs(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.GetMachineLogs(ctx, &machineID, validOperators, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	machineReport, err := BuildMachineReport(logs, machineID, MachinePolicy)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, cacheKey, machineReport)
	return machineReport, nil
}

// MachinesRollup is both the "all machines" report and the plant-wide global
// report over a date range.
func (s *Service) MachinesRollup(ctx context.Context, fromDate, toDate *string) (*entity.MachinesRollup, error) {
	cacheKey := fmt.Sprintf("report:machines:all:%s:%s", deref(fromDate), deref(toDate))
	var cached entity.MachinesRollup
	if hit := s.fromCache(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	validOperators, err := s.registeredOperatorIDs(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.GetMachineLogs(ctx, nil, validOperators, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	byMachine := make(map[int][]entity.MachineLog)
	for _, machineLog := range logs {
		byMachine[machineLog.MachineID] = append(byMachine[machineLog.MachineID], machineLog)
	}
	machineIDs := make([]int, 0, len(byMachine))
	for machineID := range byMachine {
		machineIDs = append(machineIDs, machineID)
	}
	sort.Ints(machineIDs)

	reports := make([]entity.MachineReport, 0, len(machineIDs))
	for _, machineID := range machineIDs {
		machineReport, err := BuildMachineReport(byMachine[machineID], machineID, MachinePolicy)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *machineReport)
	}

	rollup := BuildMachinesRollup(reports, deref(fromDate), deref(toDate))
	s.toCache(ctx, cacheKey, rollup)
	return rollup, nil
}

func (s *Service) operatorDirectory(ctx context.Context) ([]entity.Operator, map[string]string, error) {
	operators, err := s.operators.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	names := make(map[string]string, len(operators))
	for _, operator := range operators {
		names[operator.RFIDCardNo] = operator.OperatorName
	}

	return operators, names, nil
}

func (s *Service) registeredOperatorIDs(ctx context.Context) ([]string, error) {
	operators, err := s.operators.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(operators))
	for _, operator := range operators {
		ids = append(ids, operator.RFIDCardNo)
	}

	return ids, nil
}

func (s *Service) operatorLogs(ctx context.Context, operators []entity.Operator, fromDate, toDate *string) (map[string][]entity.MachineLog, error) {
	logsByOperator := make(map[string][]entity.MachineLog, len(operators))
	for _, operator := range operators {
		logs, err := s.logs.GetOperatorLogs(ctx, operator.RFIDCardNo, fromDate, toDate)
		if err != nil {
			return nil, err
		}
		logsByOperator[operator.RFIDCardNo] = logs
	}

	return logsByOperator, nil
}

func (s *Service) fromCache(ctx context.Context, key string, dest interface{}) bool {
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("report cache read failed for %s: %v", key, err)
	}
	return false
}

func (s *Service) toCache(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, reportCacheTTL); err != nil {
		log.Printf("report cache write failed for %s: %v", key, err)
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
