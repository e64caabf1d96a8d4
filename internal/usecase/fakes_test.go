package usecase

import (
	"sync"
	"time"

	"github.com/LavaJover/shvark-referral-service/internal/domain"
)

// In-memory repositories mirroring the postgres repositories' contracts,
// including the conflict semantics the usecases rely on.

type fakeAttributionRepo struct {
	mu        sync.Mutex
	byVisitor map[string]*domain.Attribution
}

func newFakeAttributionRepo() *fakeAttributionRepo {
	return &fakeAttributionRepo{byVisitor: make(map[string]*domain.Attribution)}
}

func (f *fakeAttributionRepo) CreateIfAbsent(attribution *domain.Attribution) (*domain.Attribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.byVisitor[attribution.VisitorID]; ok && existing.ExpiresAt.After(attribution.CapturedAt) {
		cp := *existing
		return &cp, nil
	}
	cp := *attribution
	f.byVisitor[attribution.VisitorID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeAttributionRepo) GetByVisitorID(visitorID string) (*domain.Attribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.byVisitor[visitorID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *existing
	return &cp, nil
}

func (f *fakeAttributionRepo) CountByReferrer(referrerCode string, from, to time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, a := range f.byVisitor {
		if a.ReferrerCode == referrerCode && !a.CapturedAt.Before(from) && !a.CapturedAt.After(to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttributionRepo) expire(visitorID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.byVisitor[visitorID]; ok {
		a.ExpiresAt = time.Now().Add(-time.Hour)
	}
}

type fakeRuleRepo struct {
	mu    sync.Mutex
	rules []*domain.CommissionRule
}

func newFakeRuleRepo() *fakeRuleRepo { return &fakeRuleRepo{} }

func (f *fakeRuleRepo) CreateRule(rule *domain.CommissionRule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rule
	f.rules = append(f.rules, &cp)
	return nil
}

func (f *fakeRuleRepo) UpdateRule(rule *domain.CommissionRule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rules {
		if r.ID == rule.ID {
			cp := *rule
			cp.CreatedAt = r.CreatedAt
			f.rules[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRuleRepo) DeleteRule(ruleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rules {
		if r.ID == ruleID {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRuleRepo) GetRuleByID(ruleID string) (*domain.CommissionRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rules {
		if r.ID == ruleID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRuleRepo) GetRulesByReferrerID(referrerID string, page, limit int32) ([]*domain.CommissionRule, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.CommissionRule
	for _, r := range f.rules {
		if r.ReferrerID == referrerID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRuleRepo) GetActiveRules(referrerID string, at time.Time) ([]*domain.CommissionRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.CommissionRule
	for _, r := range f.rules {
		if r.ReferrerID == referrerID && r.ActiveAt(at) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeLedgerRepo struct {
	mu      sync.Mutex
	entries map[string]*domain.CommissionLedgerEntry
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{entries: make(map[string]*domain.CommissionLedgerEntry)}
}

func (f *fakeLedgerRepo) CreateEntry(entry *domain.CommissionLedgerEntry) (*domain.CommissionLedgerEntry, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.entries[entry.TransactionID]; ok {
		cp := *existing
		return &cp, false, nil
	}
	cp := *entry
	f.entries[entry.TransactionID] = &cp
	out := cp
	return &out, true, nil
}

func (f *fakeLedgerRepo) GetEntryByTransactionID(transactionID string) (*domain.CommissionLedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.entries[transactionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *existing
	return &cp, nil
}

func (f *fakeLedgerRepo) UpdateTransferStatus(
	transactionID string,
	from, to domain.TransferStatus,
	transferID *string,
	reversalOwed bool) error {

	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.entries[transactionID]
	if !ok {
		return domain.ErrNotFound
	}
	if existing.TransferStatus != from {
		return domain.ErrInvalidTransferState
	}
	existing.TransferStatus = to
	if transferID != nil {
		existing.TransferID = transferID
	}
	if reversalOwed {
		existing.ReversalOwed = true
	}
	existing.UpdatedAt = time.Now()
	return nil
}

func (f *fakeLedgerRepo) SumCommission(referrerID string, from, to time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total int64
	for _, e := range f.entries {
		if e.ReferrerID != referrerID || e.TransferStatus == domain.TransferVoided {
			continue
		}
		if e.CreatedAt.Before(from) || e.CreatedAt.After(to) {
			continue
		}
		total += e.CommissionAmount
	}
	return total, nil
}

type fakeTransactionRepo struct {
	mu  sync.Mutex
	txs map[string]*domain.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txs: make(map[string]*domain.Transaction)}
}

func (f *fakeTransactionRepo) UpsertTransaction(tx *domain.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.txs[tx.ID]
	if !ok {
		cp := *tx
		f.txs[tx.ID] = &cp
		return nil
	}
	if existing.Status.Terminal() {
		if existing.Status == domain.TxStatusSucceeded && tx.Status == domain.TxStatusRefunded {
			existing.Status = domain.TxStatusRefunded
			return nil
		}
		return domain.ErrTerminalTransaction
	}
	cp := *tx
	cp.NeedsReview = existing.NeedsReview
	f.txs[tx.ID] = &cp
	return nil
}

func (f *fakeTransactionRepo) GetTransactionByID(transactionID string) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.txs[transactionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *existing
	return &cp, nil
}

func (f *fakeTransactionRepo) MarkNeedsReview(transactionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.txs[transactionID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.NeedsReview = true
	return nil
}

type fakeClickRepo struct {
	mu     sync.Mutex
	clicks []*domain.Click
}

func newFakeClickRepo() *fakeClickRepo { return &fakeClickRepo{} }

func (f *fakeClickRepo) CreateClick(click *domain.Click) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *click
	f.clicks = append(f.clicks, &cp)
	return nil
}

func (f *fakeClickRepo) CountByReferrer(referrerCode string, from, to time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, c := range f.clicks {
		if c.ReferrerCode == referrerCode && !c.CreatedAt.Before(from) && !c.CreatedAt.After(to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeClickRepo) CountByPlatform(referrerCode string, from, to time.Time) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, c := range f.clicks {
		if c.ReferrerCode == referrerCode && !c.CreatedAt.Before(from) && !c.CreatedAt.After(to) {
			counts[c.PlatformKey]++
		}
	}
	return counts, nil
}

type fakeLinkRepo struct {
	mu    sync.Mutex
	links map[string]*domain.ReferralLink
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[string]*domain.ReferralLink)}
}

func linkKey(userID, platformKey string) string { return userID + "/" + platformKey }

func (f *fakeLinkRepo) UpsertLink(link *domain.ReferralLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *link
	f.links[linkKey(link.UserID, link.PlatformKey)] = &cp
	return nil
}

func (f *fakeLinkRepo) GetLink(userID, platformKey string) (*domain.ReferralLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.links[linkKey(userID, platformKey)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *existing
	return &cp, nil
}

func (f *fakeLinkRepo) GetLinksByUserID(userID string) ([]*domain.ReferralLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.ReferralLink
	for _, l := range f.links {
		if l.UserID == userID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProgramRepo struct {
	mu       sync.Mutex
	programs map[string]*domain.ReferralProgram
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: make(map[string]*domain.ReferralProgram)}
}

func (f *fakeProgramRepo) CreateProgram(program *domain.ReferralProgram) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *program
	f.programs[program.PlatformKey] = &cp
	return nil
}

func (f *fakeProgramRepo) UpdateProgram(program *domain.ReferralProgram) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.programs[program.PlatformKey]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = program.Name
	existing.LinkTemplate = program.LinkTemplate
	existing.IsActive = program.IsActive
	return nil
}

func (f *fakeProgramRepo) GetProgramByPlatformKey(platformKey string) (*domain.ReferralProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.programs[platformKey]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *existing
	return &cp, nil
}

func (f *fakeProgramRepo) GetPrograms(page, limit int32) ([]*domain.ReferralProgram, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.ReferralProgram
	for _, p := range f.programs {
		cp := *p
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}
