package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

// MachineLog is one operational segment reported by a sewing machine: what
// the machine was doing (Mode), who was at it, and the wall-clock span.
// StartTime/EndTime are clock-of-day strings ("HH:MM:SS"); Date is ISO
// "YYYY-MM-DD". Reserve carries a raw sewing-speed sample as free text and
// may be non-numeric.
type MachineLog struct {
	ID             uuid.UUID `json:"id" db:"id"`
	MachineID      int       `json:"machineId" db:"machine_id"`
	LineNumber     int       `json:"lineNumber" db:"line_number"`
	OperatorID     string    `json:"operatorId" db:"operator_id"`
	Date           string    `json:"date" db:"log_date"`
	StartTime      string    `json:"startTime" db:"start_time"`
	EndTime        string    `json:"endTime" db:"end_time"`
	Mode           int       `json:"mode" db:"mode"`
	OperationCount int       `json:"operationCount" db:"operation_count"`
	SkipCount      float64   `json:"skipCount" db:"skip_count"`
	TxLogID        int       `json:"txLogId" db:"tx_log_id"`
	StoredLogID    int       `json:"storedLogId" db:"stored_log_id"`
	DeviceID       int       `json:"deviceId" db:"device_id"`
	Reserve        *string   `json:"reserve" db:"reserve"`
	NeedleStoptime float64   `json:"needleStoptime" db:"needle_stoptime"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// CreateMachineLogRequest is the raw ingest payload. Date arrives as
// "YYYY:MM:DD" and times may be loosely padded; the ingest service
// normalizes both before storage.
type CreateMachineLogRequest struct {
	MachineID      int     `json:"MACHINE_ID" binding:"required"`
	LineNumber     int     `json:"LINE_NUMBER"`
	OperatorID     string  `json:"OPERATOR_ID"`
	Date           string  `json:"DATE" binding:"required"`
	StartTime      string  `json:"START_TIME" binding:"required"`
	EndTime        string  `json:"END_TIME" binding:"required"`
	Mode           *int    `json:"MODE" binding:"required"`
	OperationCount int     `json:"OPERATION_COUNT"`
	SkipCount      float64 `json:"SKIP_COUNT"`
	TxLogID        int     `json:"Tx_LOG_ID"`
	StoredLogID    int     `json:"STORED_LOG_ID"`
	DeviceID       int     `json:"DEVICE_ID"`
	Reserve        *string `json:"RESERVE"`
	NeedleStoptime float64 `json:"NEEDLE_STOPTIME"`
}

// MachineLogFilter narrows log queries. Dates are inclusive ISO strings.
type MachineLogFilter struct {
	FromDate   *string `form:"from_date"`
	ToDate     *string `form:"to_date"`
	LineNumber *int    `form:"line_number"`
	MachineID  *int    `form:"machine_id"`
	OperatorID *string `form:"operator_id"`
	Limit      int     `form:"limit"`
}

// IndexedMachineLog wraps a log with its 1-based position in the result set.
type IndexedMachineLog struct {
	Index int `json:"index"`
	MachineLog
}

// AnnotatedMachineLog is the log-filter response row: the stored record plus
// resolved display fields. Explicit struct, no runtime field merging.
type AnnotatedMachineLog struct {
	MachineLog
	ModeDescription string `json:"modeDescription"`
	OperatorName    string `json:"operatorName"`
}

// DuplicateLog keeps the raw payload of a rejected duplicate submission for
// later inspection.
type DuplicateLog struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Payload   []byte    `json:"payload" db:"payload"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
