package scheduler

import (
	"context"
	"errors"
	"testing"

	"mybudget/internal/domain/wallet"
)

type mockWalletRepo struct {
	driftFunc func(ctx context.Context) ([]wallet.BalanceDrift, error)
}

func (m *mockWalletRepo) Create(ctx context.Context, userID int64, name string) (*wallet.Wallet, error) {
	return nil, errors.New("not implemented")
}

func (m *mockWalletRepo) ListByUserID(ctx context.Context, userID int64) ([]*wallet.Wallet, error) {
	return nil, errors.New("not implemented")
}

func (m *mockWalletRepo) Delete(ctx context.Context, walletID int64) error {
	return errors.New("not implemented")
}

func (m *mockWalletRepo) FindBalanceDrift(ctx context.Context) ([]wallet.BalanceDrift, error) {
	return m.driftFunc(ctx)
}

func TestReconcileJobNoDrift(t *testing.T) {
	job := NewReconcileJob(&mockWalletRepo{
		driftFunc: func(ctx context.Context) ([]wallet.BalanceDrift, error) {
			return nil, nil
		},
	})

	if err := job.Execute(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReconcileJobReportsDrift(t *testing.T) {
	job := NewReconcileJob(&mockWalletRepo{
		driftFunc: func(ctx context.Context) ([]wallet.BalanceDrift, error) {
			return []wallet.BalanceDrift{
				{WalletID: 1, UserID: 5, Balance: 100, Computed: 70},
			}, nil
		},
	})

	if err := job.Execute(context.Background()); err == nil {
		t.Error("expected error when drift is found")
	}
}

func TestReconcileJobQueryFailure(t *testing.T) {
	job := NewReconcileJob(&mockWalletRepo{
		driftFunc: func(ctx context.Context) ([]wallet.BalanceDrift, error) {
			return nil, errors.New("connection refused")
		},
	})

	if err := job.Execute(context.Background()); err == nil {
		t.Error("expected error when the drift query fails")
	}
}

func TestReconcileJobDescription(t *testing.T) {
	job := NewReconcileJob(&mockWalletRepo{})
	if job.Description() == "" {
		t.Error("description must not be empty")
	}
}
