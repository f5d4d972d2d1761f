package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stitchworks/machine-log-backend/internal/entity"
)

type OperatorRepository interface {
	GetAll(ctx context.Context) ([]entity.Operator, error)
	GetByName(ctx context.Context, operatorName string) (*entity.Operator, error)
	Directory(ctx context.Context) (map[string]string, error)
}

type operatorRepository struct {
	db *DB
}

func NewOperatorRepository(db *DB) OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) GetAll(ctx context.Context) ([]entity.Operator, error) {
	query := `SELECT id, rfid_card_no, operator_name, remarks FROM operators ORDER BY rfid_card_no ASC`

	var operators []entity.Operator
	if err := r.db.Read().SelectContext(ctx, &operators, query); err != nil {
		return nil, fmt.Errorf("failed to get operators: %w", err)
	}

	return operators, nil
}

func (r *operatorRepository) GetByName(ctx context.Context, operatorName string) (*entity.Operator, error) {
	query := `SELECT id, rfid_card_no, operator_name, remarks FROM operators WHERE operator_name = $1`

	var operator entity.Operator
	err := r.db.Read().GetContext(ctx, &operator, query, operatorName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	return &operator, nil
}

// Directory returns the rfid-card-no → display-name lookup consumed by the
// report layer. Lookups against the returned map fail softly: an id absent
// here renders as "Unknown" or "" downstream, never as an error.
func (r *operatorRepository) Directory(ctx context.Context) (map[string]string, error) {
	operators, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	directory := make(map[string]string, len(operators))
	for _, operator := range operators {
		directory[operator.RFIDCardNo] = operator.OperatorName
	}

	return directory, nil
}
