package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{DB: db}
}

// CreateEntry races on the transaction_id unique index. The losing writer
// observes the conflict, reads the existing row and returns it, so a
// duplicate webhook delivery never surfaces as an error.
func (r *DefaultLedgerRepository) CreateEntry(entry *domain.CommissionLedgerEntry) (*domain.CommissionLedgerEntry, bool, error) {
	entryModel := mappers.ToGORMLedgerEntry(entry)
	entryModel.ID = uuid.New().String()

	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_id"}},
		DoNothing: true,
	}).Create(entryModel)
	if res.Error != nil {
		return nil, false, res.Error
	}

	if res.RowsAffected == 0 {
		existing, err := r.GetEntryByTransactionID(entry.TransactionID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	return mappers.ToDomainLedgerEntry(entryModel), true, nil
}

func (r *DefaultLedgerRepository) GetEntryByTransactionID(transactionID string) (*domain.CommissionLedgerEntry, error) {
	var entryModel models.LedgerEntryModel
	if err := r.DB.Where("transaction_id = ?", transactionID).First(&entryModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainLedgerEntry(&entryModel), nil
}

// UpdateTransferStatus is guarded by the current status so concurrent
// transitions cannot skip a state.
func (r *DefaultLedgerRepository) UpdateTransferStatus(
	transactionID string,
	from, to domain.TransferStatus,
	transferID *string,
	reversalOwed bool) error {

	updateData := map[string]interface{}{
		"transfer_status": string(to),
		"updated_at":      time.Now(),
	}
	if transferID != nil {
		updateData["transfer_id"] = *transferID
	}
	if reversalOwed {
		updateData["reversal_owed"] = true
	}

	res := r.DB.Model(&models.LedgerEntryModel{}).
		Where("transaction_id = ? AND transfer_status = ?", transactionID, string(from)).
		Updates(updateData)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.DB.Model(&models.LedgerEntryModel{}).
			Where("transaction_id = ?", transactionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidTransferState
	}
	return nil
}

// SumCommission totals earned commission for a referrer. Voided entries are
// kept in history but excluded from earnings.
func (r *DefaultLedgerRepository) SumCommission(referrerID string, from, to time.Time) (int64, error) {
	var total int64
	err := r.DB.Model(&models.LedgerEntryModel{}).
		Select("COALESCE(SUM(commission_amount), 0)").
		Where("referrer_id = ?", referrerID).
		Where("transfer_status <> ?", string(domain.TransferVoided)).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
