package auction

import (
	"testing"
	"time"

	"dkp-auctioneer/internal/auctionerrors"
	model "dkp-auctioneer/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestAuctionService_Settlement(t *testing.T) {
	t.Parallel()

	t.Run("winner_debited_losers_untouched", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t, ctrl, 0)

		h.audit.EXPECT().
			RecordCreation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(1, nil)
		h.ledger.EXPECT().GetBalance("alice").Return(1000)
		h.ledger.EXPECT().GetBalance("bob").Return(600)

		_, err := h.service.StartAuction("sword-run", "Thunderfury", "", time.Hour)
		require.NoError(t, err)
		_, err = h.service.PlaceBid(1, model.User{UserID: "alice", DisplayName: "Alice"}, 400)
		require.NoError(t, err)
		// bob can bid his full balance; funds are held, not escrowed
		_, err = h.service.PlaceBid(1, model.User{UserID: "bob", DisplayName: "Bob"}, 600)
		require.NoError(t, err)

		// Only the winner is debited, clamped at zero by the ledger
		h.ledger.EXPECT().Debit("bob", "Bob", 600).Return(0, nil)
		h.audit.EXPECT().
			Append("bob", "Bob", "debit", 600, "winner of auction ID 1 (Thunderfury)").
			Return(nil)
		h.audit.EXPECT().
			RecordResult(1, h.clock.Now(), []model.TopBid{
				{UserID: "bob", Amount: 600},
				{UserID: "alice", Amount: 400},
			}).
			Return(nil)

		outcome, err := h.service.ForceClose(1)
		require.NoError(t, err)
		require.NotNil(t, outcome.Winner)
		require.Equal(t, "bob", outcome.Winner.UserID)
		require.Equal(t, 600, outcome.Winner.Amount)
		require.Len(t, outcome.TopBids, 2)

		require.Contains(t, h.timers.canceled, 1)
		require.Len(t, h.notifier.outcomes, 1)
		require.Empty(t, h.service.ListActiveAuctions())
	})

	t.Run("no_bids_settles_without_ledger_mutation", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t, ctrl, 0)

		h.audit.EXPECT().
			RecordCreation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(1, nil)
		h.audit.EXPECT().RecordResult(1, h.clock.Now(), nil).Return(nil)

		_, err := h.service.StartAuction("sword-run", "Thunderfury", "", time.Hour)
		require.NoError(t, err)

		outcome, err := h.service.ForceClose(1)
		require.NoError(t, err)
		require.Nil(t, outcome.Winner)
		require.Empty(t, outcome.TopBids)
		require.Len(t, h.notifier.outcomes, 1)
	})

	t.Run("second_close_sees_auction_gone", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t, ctrl, 0)

		h.audit.EXPECT().
			RecordCreation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(1, nil)
		h.audit.EXPECT().RecordResult(1, gomock.Any(), nil).Return(nil).Times(1)

		_, err := h.service.StartAuction("sword-run", "Thunderfury", "", time.Hour)
		require.NoError(t, err)

		_, err = h.service.ForceClose(1)
		require.NoError(t, err)

		_, err = h.service.ForceClose(1)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

		// The racing expiry callback is a silent no-op
		h.service.HandleExpiry(1)
		require.Len(t, h.notifier.outcomes, 1)
	})

	t.Run("stale_timer_cannot_settle_before_extended_deadline", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t, ctrl, 0)

		h.audit.EXPECT().
			RecordCreation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(1, nil)
		h.ledger.EXPECT().GetBalance("alice").Return(1000)

		// Two-minute auction; the bid lands inside the snipe threshold
		// and pushes the deadline to now+5m
		_, err := h.service.StartAuction("sword-run", "Thunderfury", "", 2*time.Minute)
		require.NoError(t, err)
		_, err = h.service.PlaceBid(1, model.User{UserID: "alice", DisplayName: "Alice"}, 500)
		require.NoError(t, err)
		extendedEnd := h.clock.Now().Add(5 * time.Minute)

		// The timer armed at creation fires at the original deadline
		h.clock.Advance(2 * time.Minute)
		h.service.HandleExpiry(1)

		// The auction survives and the timer chases the extended deadline
		require.Len(t, h.service.ListActiveAuctions(), 1)
		require.Empty(t, h.notifier.outcomes)
		armedEnd, ok := h.timers.armedAt(1)
		require.True(t, ok)
		require.Equal(t, extendedEnd, armedEnd)

		// At the extended deadline the expiry settles normally
		h.ledger.EXPECT().Debit("alice", "Alice", 500).Return(500, nil)
		h.audit.EXPECT().Append("alice", "Alice", "debit", 500, gomock.Any()).Return(nil)
		h.audit.EXPECT().RecordResult(1, gomock.Any(), gomock.Any()).Return(nil)

		h.clock.Advance(3 * time.Minute)
		h.service.HandleExpiry(1)
		require.Empty(t, h.service.ListActiveAuctions())
		require.Len(t, h.notifier.outcomes, 1)
	})

	t.Run("expiry_settles_like_force_close", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t, ctrl, 0)

		h.audit.EXPECT().
			RecordCreation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(1, nil)
		h.ledger.EXPECT().GetBalance("alice").Return(1000)

		_, err := h.service.StartAuction("sword-run", "Thunderfury", "", time.Hour)
		require.NoError(t, err)
		_, err = h.service.PlaceBid(1, model.User{UserID: "alice", DisplayName: "Alice"}, 500)
		require.NoError(t, err)

		h.ledger.EXPECT().Debit("alice", "Alice", 500).Return(500, nil)
		h.audit.EXPECT().
			Append("alice", "Alice", "debit", 500, gomock.Any()).
			Return(nil)
		h.audit.EXPECT().RecordResult(1, gomock.Any(), gomock.Any()).Return(nil)

		h.clock.Advance(time.Hour)
		h.service.HandleExpiry(1)
		require.Len(t, h.notifier.outcomes, 1)
		require.Empty(t, h.service.ListActiveAuctions())
	})

	t.Run("losing_deposit_fraction", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t, ctrl, 0.1)

		h.audit.EXPECT().
			RecordCreation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(1, nil)
		h.ledger.EXPECT().GetBalance("alice").Return(1000)
		h.ledger.EXPECT().GetBalance("bob").Return(1000)

		_, err := h.service.StartAuction("sword-run", "Thunderfury", "", time.Hour)
		require.NoError(t, err)
		_, err = h.service.PlaceBid(1, model.User{UserID: "alice", DisplayName: "Alice"}, 400)
		require.NoError(t, err)
		_, err = h.service.PlaceBid(1, model.User{UserID: "bob", DisplayName: "Bob"}, 600)
		require.NoError(t, err)

		h.ledger.EXPECT().Debit("bob", "Bob", 600).Return(400, nil)
		h.audit.EXPECT().Append("bob", "Bob", "debit", 600, gomock.Any()).Return(nil)
		// Ten percent of the losing 400 bid
		h.ledger.EXPECT().Debit("alice", "Alice", 40).Return(960, nil)
		h.audit.EXPECT().
			Append("alice", "Alice", "debit", 40, "bid deposit, auction ID 1 (Thunderfury)").
			Return(nil)
		h.audit.EXPECT().RecordResult(1, gomock.Any(), gomock.Any()).Return(nil)

		_, err = h.service.ForceClose(1)
		require.NoError(t, err)
	})
}

func TestTopBids(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	bid := func(userID string, amount int, offset time.Duration) model.Bid {
		return model.Bid{UserID: userID, Amount: amount, PlacedAt: base.Add(offset)}
	}

	tests := []struct {
		name string
		bids []model.Bid
		n    int
		want []model.TopBid
	}{
		{
			name: "empty",
			bids: nil,
			n:    3,
			want: []model.TopBid{},
		},
		{
			name: "fewer_than_n",
			bids: []model.Bid{bid("alice", 500, 0)},
			n:    3,
			want: []model.TopBid{{UserID: "alice", Amount: 500}},
		},
		{
			name: "ranked_by_amount_desc",
			bids: []model.Bid{
				bid("alice", 300, 0),
				bid("bob", 900, time.Minute),
				bid("carol", 600, 2*time.Minute),
				bid("dave", 100, 3*time.Minute),
			},
			n: 3,
			want: []model.TopBid{
				{UserID: "bob", Amount: 900},
				{UserID: "carol", Amount: 600},
				{UserID: "alice", Amount: 300},
			},
		},
		{
			name: "ties_broken_by_earliest_placement",
			bids: []model.Bid{
				bid("bob", 500, time.Minute),
				bid("alice", 500, 0),
				bid("carol", 500, 2*time.Minute),
			},
			n: 2,
			want: []model.TopBid{
				{UserID: "alice", Amount: 500},
				{UserID: "bob", Amount: 500},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, topBids(tc.bids, tc.n))
		})
	}
}
