package machinelog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/internal/repository"
)

type fakeLogRepo struct {
	repository.MachineLogRepository
	existing   bool
	created    *entity.MachineLog
	duplicates [][]byte
}

func (f *fakeLogRepo) Exists(ctx context.Context, machineID int, operatorID, startTime, endTime, date string) (bool, error) {
	return f.existing, nil
}

func (f *fakeLogRepo) Create(ctx context.Context, machineLog *entity.MachineLog) error {
	f.created = machineLog
	return nil
}

func (f *fakeLogRepo) RecordDuplicate(ctx context.Context, payload []byte) error {
	f.duplicates = append(f.duplicates, payload)
	return nil
}

func intPtr(n int) *int { return &n }

func ingestRequest() *entity.CreateMachineLogRequest {
	return &entity.CreateMachineLogRequest{
		MachineID:  7,
		LineNumber: 1,
		OperatorID: "1001",
		Date:       "2024:05:01",
		StartTime:  "9:5",
		EndTime:    "10:15:30",
		Mode:       intPtr(1),
	}
}

func TestCreateNormalizesPayload(t *testing.T) {
	repo := &fakeLogRepo{}
	srv := NewMachineLogService(repo, nil)

	request := ingestRequest()
	request.StoredLogID = 1042

	machineLog, duplicate, err := srv.Create(context.Background(), request)
	require.NoError(t, err)
	assert.False(t, duplicate)
	require.NotNil(t, machineLog)

	assert.Equal(t, "2024-05-01", machineLog.Date)
	assert.Equal(t, "09:05:00", machineLog.StartTime)
	assert.Equal(t, "10:15:30", machineLog.EndTime)
	// Retransmission offset stripped.
	assert.Equal(t, 42, machineLog.StoredLogID)
	assert.Same(t, machineLog, repo.created)
}

func TestCreateSmallStoredLogIDUntouched(t *testing.T) {
	repo := &fakeLogRepo{}
	srv := NewMachineLogService(repo, nil)

	request := ingestRequest()
	request.StoredLogID = 950

	machineLog, _, err := srv.Create(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 950, machineLog.StoredLogID)
}

func TestCreateDuplicateRecordsPayload(t *testing.T) {
	repo := &fakeLogRepo{existing: true}
	srv := NewMachineLogService(repo, nil)

	machineLog, duplicate, err := srv.Create(context.Background(), ingestRequest())
	require.NoError(t, err)

	assert.True(t, duplicate)
	assert.Nil(t, machineLog)
	assert.Nil(t, repo.created)
	require.Len(t, repo.duplicates, 1)
	assert.Contains(t, string(repo.duplicates[0]), "1001")
}

func TestCreateRejectsMalformedInput(t *testing.T) {
	srv := NewMachineLogService(&fakeLogRepo{}, nil)

	badDate := ingestRequest()
	badDate.Date = "2024-05-01"
	_, _, err := srv.Create(context.Background(), badDate)
	assert.Error(t, err)

	badTime := ingestRequest()
	badTime.StartTime = "25:00"
	_, _, err = srv.Create(context.Background(), badTime)
	assert.Error(t, err)
}
