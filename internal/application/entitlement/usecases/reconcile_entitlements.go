package usecases

import (
	"context"
	"fmt"

	"mirrorly/internal/domain/entitlement"
	"mirrorly/internal/domain/mirror"
	vo "mirrorly/internal/domain/mirror/valueobjects"
	"mirrorly/internal/domain/subscription"
	"mirrorly/internal/shared/db"
	"mirrorly/internal/shared/logger"
)

// ReconcileEntitlementsUseCase recomputes and persists the admission
// state of all of a user's mirror paths for a tier. The read of the
// user's configs and the batch write of the decisions happen in one
// transaction, so concurrent readers never observe a half-updated set.
type ReconcileEntitlementsUseCase struct {
	configRepo mirror.Repository
	policies   subscription.PolicyTable
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewReconcileEntitlementsUseCase(
	configRepo mirror.Repository,
	policies subscription.PolicyTable,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *ReconcileEntitlementsUseCase {
	return &ReconcileEntitlementsUseCase{
		configRepo: configRepo,
		policies:   policies,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute runs a full reconciliation for the user under the given tier.
// Rerunning with identical inputs performs the same (idempotent)
// writes, which is what makes gateway retries safe.
func (uc *ReconcileEntitlementsUseCase) Execute(ctx context.Context, userID string, tier subscription.Tier) error {
	policy, err := uc.policies.ForTier(tier)
	if err != nil {
		return fmt.Errorf("failed to load policy for tier %s: %w", tier, err)
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		configs, err := uc.configRepo.ListByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to load mirror configs: %w", err)
		}

		if len(configs) == 0 {
			uc.logger.Debugw("no mirror configs to reconcile", "user_id", userID, "tier", tier)
			return nil
		}

		decisions := entitlement.Reconcile(policy, configs)

		updates := make([]mirror.AdmissionUpdate, len(decisions))
		var admitted, planRestricted, overLimit int
		for i, d := range decisions {
			updates[i] = mirror.AdmissionUpdate{
				ID:     d.ConfigID,
				Active: d.Active,
				Status: d.Status,
			}
			switch d.Status {
			case vo.MirrorStatusActive:
				admitted++
			case vo.MirrorStatusPlanRestriction:
				planRestricted++
			case vo.MirrorStatusPathLimitReached:
				overLimit++
			}
		}

		if err := uc.configRepo.BatchUpdateAdmission(txCtx, updates); err != nil {
			return fmt.Errorf("failed to persist admission decisions: %w", err)
		}

		uc.logger.Infow("entitlements reconciled",
			"user_id", userID,
			"tier", tier,
			"policy_version", uc.policies.Version,
			"admitted", admitted,
			"plan_restricted", planRestricted,
			"over_limit", overLimit)

		return nil
	})
}
