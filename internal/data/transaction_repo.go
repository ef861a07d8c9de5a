package data

import (
	"context"
	"errors"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paras-gg/belajarbareng-fin/internal/biz"
	"github.com/paras-gg/belajarbareng-fin/internal/constants"
	"github.com/paras-gg/belajarbareng-fin/internal/data/model"
	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

// transactionRepo writes the payment ledger.
type transactionRepo struct {
	data *Data
	log  *log.Helper
}

// NewTransactionRepo creates the transaction repository.
func NewTransactionRepo(data *Data, logger log.Logger) biz.TransactionRepo {
	return &transactionRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// CreatePending inserts the ledger row with status pending, whatever the
// caller set, and fills the row's id and timestamps back in. A duplicate
// order id is reported distinctly so the caller knows the id itself is the
// problem; it must not be retried as-is.
func (r *transactionRepo) CreatePending(ctx context.Context, tx *biz.Transaction) error {
	m := &model.Transaction{
		ID:              uuid.NewString(),
		UserID:          tx.UserID,
		Paket:           tx.Paket,
		Amount:          tx.Amount,
		MidtransOrderID: tx.MidtransOrderID,
		Status:          constants.StatusPending,
	}
	if err := r.data.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Errorf("duplicate order id on ledger insert: order_id=%s", tx.MidtransOrderID)
			return svcerrors.DuplicateOrder("order id already exists")
		}
		r.log.Errorf("failed to insert pending transaction: order_id=%s err=%v", tx.MidtransOrderID, err)
		return svcerrors.LedgerWriteFailed("could not record transaction")
	}

	tx.ID = m.ID
	tx.Status = m.Status
	tx.CreatedAt = m.CreatedAt
	tx.UpdatedAt = m.UpdatedAt
	return nil
}
