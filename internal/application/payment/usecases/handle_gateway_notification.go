package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	entitlementUsecases "mirrorly/internal/application/entitlement/usecases"
	gatewayPort "mirrorly/internal/application/payment/gateway"
	"mirrorly/internal/domain/payment"
	vo "mirrorly/internal/domain/payment/valueobjects"
	"mirrorly/internal/domain/subscription"
	"mirrorly/internal/domain/user"
	"mirrorly/internal/shared/biztime"
	"mirrorly/internal/shared/db"
	apperrors "mirrorly/internal/shared/errors"
	"mirrorly/internal/shared/logger"
)

// Gateway-reported transaction states. The scheme is dictated by the
// payment gateway and treated as a fixed external protocol.
const (
	gatewayStatusPending    = "pending"
	gatewayStatusCapture    = "capture"
	gatewayStatusSettlement = "settlement"
	gatewayStatusCancel     = "cancel"
	gatewayStatusDeny       = "deny"
	gatewayStatusExpire     = "expire"

	fraudStatusChallenge = "challenge"
)

// GatewayNotification is the decoded webhook payload.
type GatewayNotification struct {
	OrderID           string
	TransactionStatus string
	FraudStatus       string
	GrossAmount       string
	SignatureKey      string
	StatusCode        string
}

// HandleGatewayNotificationUseCase runs the transaction status machine
// for one gateway notification: authenticate, decode the order id,
// resolve the purchased tier, persist the payment state, and - on
// success states - grant the tier and reconcile entitlements.
//
// The gateway retries notifications, so the whole pipeline is built to
// be idempotent: re-running a successful notification performs the same
// writes again.
type HandleGatewayNotificationUseCase struct {
	verifier     gatewayPort.NotificationVerifier
	paymentRepo  payment.Repository
	userRepo     user.Repository
	tierResolver *subscription.TierResolver
	reconcileUC  *entitlementUsecases.ReconcileEntitlementsUseCase
	txManager    *db.TransactionManager
	tierDuration time.Duration
	logger       logger.Interface
}

func NewHandleGatewayNotificationUseCase(
	verifier gatewayPort.NotificationVerifier,
	paymentRepo payment.Repository,
	userRepo user.Repository,
	tierResolver *subscription.TierResolver,
	reconcileUC *entitlementUsecases.ReconcileEntitlementsUseCase,
	txManager *db.TransactionManager,
	tierDurationDays int,
	logger logger.Interface,
) *HandleGatewayNotificationUseCase {
	if tierDurationDays <= 0 {
		tierDurationDays = 30
	}
	return &HandleGatewayNotificationUseCase{
		verifier:     verifier,
		paymentRepo:  paymentRepo,
		userRepo:     userRepo,
		tierResolver: tierResolver,
		reconcileUC:  reconcileUC,
		txManager:    txManager,
		tierDuration: time.Duration(tierDurationDays) * 24 * time.Hour,
		logger:       logger,
	}
}

// Execute processes one notification. Authentication and parsing
// failures return 4xx-class AppErrors before any store access; store
// failures surface as-is so the handler answers 500 and the gateway
// retries.
func (uc *HandleGatewayNotificationUseCase) Execute(ctx context.Context, pathSecret string, n GatewayNotification) error {
	if err := uc.verifier.VerifyPathSecret(pathSecret); err != nil {
		return err
	}
	if err := uc.verifier.VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, n.SignatureKey); err != nil {
		return err
	}

	order, err := payment.DecodeOrderID(n.OrderID)
	if err != nil {
		uc.logger.Warnw("rejected notification with malformed order id", "order_id", n.OrderID, "error", err)
		return apperrors.NewMalformedOrderIDError(n.OrderID)
	}

	switch n.TransactionStatus {
	case gatewayStatusPending:
		return uc.persistStatus(ctx, n.OrderID, vo.PaymentStatusPending, n)

	case gatewayStatusCapture:
		if n.FraudStatus == fraudStatusChallenge {
			// Not yet a final state; the fraud review resolves it
			// with a later notification.
			return uc.persistStatus(ctx, n.OrderID, vo.PaymentStatusChallenge, n)
		}
		return uc.handleSuccess(ctx, order, n)

	case gatewayStatusSettlement:
		return uc.handleSuccess(ctx, order, n)

	case gatewayStatusCancel, gatewayStatusDeny, gatewayStatusExpire:
		return uc.persistStatus(ctx, n.OrderID, vo.PaymentStatusFailed, n)

	default:
		// Unknown-but-benign statuses must not break the gateway's
		// retry contract.
		uc.logger.Infow("ignoring unhandled transaction status",
			"order_id", n.OrderID,
			"transaction_status", n.TransactionStatus)
		return nil
	}
}

// handleSuccess grants the purchased tier and reconciles the user's
// mirror paths. All reads and writes share one transaction.
func (uc *HandleGatewayNotificationUseCase) handleSuccess(ctx context.Context, order payment.OrderID, n GatewayNotification) error {
	amount, err := vo.ParseGrossAmount(n.GrossAmount)
	if err != nil {
		uc.logger.Warnw("rejected notification with unparseable amount", "order_id", n.OrderID, "error", err)
		return apperrors.NewUnknownAmountError(n.GrossAmount)
	}

	tier, err := uc.tierResolver.Resolve(amount.AmountInCents())
	if err != nil {
		if errors.Is(err, subscription.ErrUnknownAmount) {
			uc.logger.Warnw("rejected notification with unknown amount",
				"order_id", n.OrderID,
				"gross_amount", n.GrossAmount)
			return apperrors.NewUnknownAmountError(n.GrossAmount)
		}
		return fmt.Errorf("failed to resolve tier: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		record, err := uc.paymentRepo.GetByOrderID(txCtx, n.OrderID)
		if err != nil {
			if errors.Is(err, payment.ErrPaymentNotFound) {
				return apperrors.NewPaymentRecordNotFoundError(n.OrderID)
			}
			return fmt.Errorf("failed to load payment record: %w", err)
		}

		if err := record.MarkSuccess(); err != nil {
			return fmt.Errorf("failed to mark payment as success: %w", err)
		}
		if err := uc.paymentRepo.Update(txCtx, record); err != nil {
			return fmt.Errorf("failed to update payment record: %w", err)
		}

		account, err := uc.userRepo.GetByID(txCtx, order.UserID)
		if err != nil {
			return fmt.Errorf("failed to load user %s: %w", order.UserID, err)
		}

		expiresAt := biztime.NowUTC().Add(uc.tierDuration)
		if err := account.ChangeTier(tier, expiresAt); err != nil {
			return fmt.Errorf("failed to change tier: %w", err)
		}
		if err := uc.userRepo.Update(txCtx, account); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		return uc.reconcileUC.Execute(txCtx, order.UserID, tier)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("payment settled and entitlements reconciled",
		"order_id", n.OrderID,
		"user_id", order.UserID,
		"tier", tier)
	return nil
}

// persistStatus records a non-success state transition for the payment
// record without touching the user or their mirror paths.
func (uc *HandleGatewayNotificationUseCase) persistStatus(ctx context.Context, orderID string, status vo.PaymentStatus, n GatewayNotification) error {
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		record, err := uc.paymentRepo.GetByOrderID(txCtx, orderID)
		if err != nil {
			if errors.Is(err, payment.ErrPaymentNotFound) {
				return apperrors.NewPaymentRecordNotFoundError(orderID)
			}
			return fmt.Errorf("failed to load payment record: %w", err)
		}

		switch status {
		case vo.PaymentStatusPending:
			err = record.MarkPending()
		case vo.PaymentStatusChallenge:
			err = record.MarkChallenge(n.FraudStatus)
		case vo.PaymentStatusFailed:
			err = record.MarkFailed()
		default:
			err = fmt.Errorf("unexpected target status %s", status)
		}
		if err != nil {
			return fmt.Errorf("failed to transition payment to %s: %w", status, err)
		}

		return uc.paymentRepo.Update(txCtx, record)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("payment status recorded",
		"order_id", orderID,
		"status", status,
		"transaction_status", n.TransactionStatus)
	return nil
}
