package repository

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
	"github.com/LavaJover/shvark-referral-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

// UpsertTransaction stores the processor's view of a transaction. A record
// in terminal status is frozen, with one exception: SUCCEEDED -> REFUNDED.
func (r *DefaultTransactionRepository) UpsertTransaction(tx *domain.Transaction) error {
	var existing models.TransactionModel
	err := r.DB.First(&existing, "id = ?", tx.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		txModel := toGORMTransaction(tx)
		txModel.CreatedAt = tx.CreatedAt
		txModel.UpdatedAt = time.Now()
		return r.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(txModel).Error
	}
	if err != nil {
		return err
	}

	existingStatus := domain.TransactionStatus(existing.Status)
	if existingStatus.Terminal() {
		if existingStatus == domain.TxStatusSucceeded && tx.Status == domain.TxStatusRefunded {
			return r.DB.Model(&models.TransactionModel{}).
				Where("id = ?", tx.ID).
				Updates(map[string]interface{}{
					"status":     string(tx.Status),
					"updated_at": time.Now(),
				}).Error
		}
		return domain.ErrTerminalTransaction
	}

	return r.DB.Model(&models.TransactionModel{}).
		Where("id = ?", tx.ID).
		Updates(map[string]interface{}{
			"amount":      tx.Amount,
			"currency":    tx.Currency,
			"customer_id": tx.CustomerID,
			"product_id":  tx.ProductID,
			"referrer_id": tx.ReferrerID,
			"status":      string(tx.Status),
			"updated_at":  time.Now(),
		}).Error
}

func (r *DefaultTransactionRepository) GetTransactionByID(transactionID string) (*domain.Transaction, error) {
	var txModel models.TransactionModel
	if err := r.DB.First(&txModel, "id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &domain.Transaction{
		ID:          txModel.ID,
		Amount:      txModel.Amount,
		Currency:    txModel.Currency,
		CustomerID:  txModel.CustomerID,
		ProductID:   txModel.ProductID,
		ReferrerID:  txModel.ReferrerID,
		Status:      domain.TransactionStatus(txModel.Status),
		NeedsReview: txModel.NeedsReview,
		CreatedAt:   txModel.CreatedAt,
	}, nil
}

func (r *DefaultTransactionRepository) MarkNeedsReview(transactionID string) error {
	res := r.DB.Model(&models.TransactionModel{}).
		Where("id = ?", transactionID).
		Updates(map[string]interface{}{
			"needs_review": true,
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toGORMTransaction(tx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:         tx.ID,
		Amount:     tx.Amount,
		Currency:   tx.Currency,
		CustomerID: tx.CustomerID,
		ProductID:  tx.ProductID,
		ReferrerID: tx.ReferrerID,
		Status:     string(tx.Status),
	}
}
