package scheduler

import (
	"context"
	"fmt"
	"log"

	"mybudget/internal/domain/wallet"
)

// ReconcileJob verifies the wallet balance invariant: every wallet's cached
// balance must equal the signed sum of its transactions. Drift can only come
// from writes that bypassed the API; the job reports it and never mutates
// data.
type ReconcileJob struct {
	wallets wallet.Repository
}

// NewReconcileJob creates a balance reconciliation job.
func NewReconcileJob(wallets wallet.Repository) *ReconcileJob {
	return &ReconcileJob{wallets: wallets}
}

// Execute finds and logs wallets whose balance has drifted.
func (j *ReconcileJob) Execute(ctx context.Context) error {
	drifts, err := j.wallets.FindBalanceDrift(ctx)
	if err != nil {
		return fmt.Errorf("balance drift check failed: %w", err)
	}

	if len(drifts) == 0 {
		log.Println("Balance reconciliation: all wallet balances consistent")
		return nil
	}

	for _, d := range drifts {
		log.Printf("Balance drift: wallet %d (user %d) stored=%.2f computed=%.2f",
			d.WalletID, d.UserID, d.Balance, d.Computed)
	}

	return fmt.Errorf("found %d wallets with balance drift", len(drifts))
}

// Description returns a human-readable description of the job.
func (j *ReconcileJob) Description() string {
	return "wallet balance reconciliation"
}
