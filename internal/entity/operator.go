package entity

import "github.com/gofrs/uuid"

// Operator maps an RFID card number (the OPERATOR_ID seen in machine logs)
// to a display name. OPERATOR_ID "0" means the machine ran unassigned.
type Operator struct {
	ID           uuid.UUID `json:"id" db:"id"`
	RFIDCardNo   string    `json:"rfidCardNo" db:"rfid_card_no"`
	OperatorName string    `json:"operatorName" db:"operator_name"`
	Remarks      *string   `json:"remarks,omitempty" db:"remarks"`
}

// UnassignedOperatorID denotes a log segment with nobody badged in.
const UnassignedOperatorID = "0"
