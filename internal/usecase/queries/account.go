package queries

import (
	"context"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type AccountReadStore interface {
	FindByID(ctx context.Context, role account.Role, id uuid.UUID) (*AccountView, error)
}

type AccountQueries interface {
	Me(ctx context.Context, subject account.Subject) (*AccountView, error)
	UserDetails(ctx context.Context, userID uuid.UUID) (*UserDetailsView, error)
}

type accountQueriesImpl struct {
	accounts      AccountReadStore
	subscriptions SubscriptionReadStore
	clock         clock.Clock
}

func NewAccountQueries(accounts AccountReadStore, subscriptions SubscriptionReadStore, clk clock.Clock) AccountQueries {
	return &accountQueriesImpl{
		accounts:      accounts,
		subscriptions: subscriptions,
		clock:         clk,
	}
}

func (q *accountQueriesImpl) Me(ctx context.Context, subject account.Subject) (*AccountView, error) {
	// the API key principal has no stored account
	if subject.IsAdmin() {
		return &AccountView{ID: subject.ID, Role: account.RoleAdmin.String(), Name: "admin"}, nil
	}
	view, err := q.accounts.FindByID(ctx, subject.Role, subject.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *accountQueriesImpl) UserDetails(ctx context.Context, userID uuid.UUID) (*UserDetailsView, error) {
	view, err := q.accounts.FindByID(ctx, account.RoleStudent, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	subs, err := q.subscriptions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	details := &UserDetailsView{AccountView: *view, Subscriptions: make([]SubscriptionView, 0, len(subs))}
	for _, s := range subs {
		details.Subscriptions = append(details.Subscriptions, withRemainingDays(*s, now))
	}
	return details, nil
}
