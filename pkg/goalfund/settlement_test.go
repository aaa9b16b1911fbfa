package goalfund

import (
	"testing"

	"github.com/chitieu-app/chitieu/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func member(name string, contributed, target string) models.GoalMember {
	return models.GoalMember{
		UserId:            uuid.New(),
		UserName:          name,
		ContributedAmount: dec(contributed),
		TargetAmount:      dec(target),
	}
}

func TestCalculateSettlements(t *testing.T) {
	t.Run("Single Transfer", func(t *testing.T) {
		alice := member("alice", "800", "600") // ahead by 200
		bob := member("bob", "200", "400")     // behind by 200

		settlements := CalculateSettlements([]models.GoalMember{alice, bob})

		assert.Len(t, settlements, 1)
		assert.Equal(t, bob.UserId, settlements[0].FromUserId)
		assert.Equal(t, alice.UserId, settlements[0].ToUserId)
		assert.True(t, settlements[0].Amount.Equal(dec("200")), "got %s", settlements[0].Amount)
	})

	t.Run("Everyone On Target", func(t *testing.T) {
		settlements := CalculateSettlements([]models.GoalMember{
			member("alice", "500", "500"),
			member("bob", "300", "300"),
		})
		assert.Empty(t, settlements)
	})

	t.Run("Largest Balances Matched First", func(t *testing.T) {
		bigDebtor := member("bigDebtor", "0", "300")
		smallDebtor := member("smallDebtor", "0", "100")
		bigCreditor := member("bigCreditor", "250", "0")
		smallCreditor := member("smallCreditor", "150", "0")

		settlements := CalculateSettlements([]models.GoalMember{smallDebtor, bigCreditor, bigDebtor, smallCreditor})

		assert.Len(t, settlements, 3)

		assert.Equal(t, bigDebtor.UserId, settlements[0].FromUserId)
		assert.Equal(t, bigCreditor.UserId, settlements[0].ToUserId)
		assert.True(t, settlements[0].Amount.Equal(dec("250")))

		assert.Equal(t, bigDebtor.UserId, settlements[1].FromUserId)
		assert.Equal(t, smallCreditor.UserId, settlements[1].ToUserId)
		assert.True(t, settlements[1].Amount.Equal(dec("50")))

		assert.Equal(t, smallDebtor.UserId, settlements[2].FromUserId)
		assert.Equal(t, smallCreditor.UserId, settlements[2].ToUserId)
		assert.True(t, settlements[2].Amount.Equal(dec("100")))
	})

	t.Run("Bounded By Participant Count", func(t *testing.T) {
		members := []models.GoalMember{
			member("d1", "0", "100"),
			member("d2", "0", "200"),
			member("c1", "150", "0"),
			member("c2", "150", "0"),
		}

		settlements := CalculateSettlements(members)

		assert.LessOrEqual(t, len(settlements), len(members)-1)

		// The plan zeroes every balance.
		net := make(map[uuid.UUID]decimal.Decimal)
		for _, m := range members {
			net[m.UserId] = m.ContributedAmount.Sub(m.TargetAmount)
		}
		for _, s := range settlements {
			net[s.FromUserId] = net[s.FromUserId].Add(s.Amount)
			net[s.ToUserId] = net[s.ToUserId].Sub(s.Amount)
		}
		for id, balance := range net {
			assert.True(t, balance.IsZero(), "member %s left with %s", id, balance)
		}
	})

	t.Run("Deterministic For Equal Balances", func(t *testing.T) {
		members := []models.GoalMember{
			member("d1", "0", "100"),
			member("d2", "0", "100"),
			member("c1", "100", "0"),
			member("c2", "100", "0"),
		}

		first := CalculateSettlements(members)
		second := CalculateSettlements([]models.GoalMember{members[3], members[1], members[2], members[0]})

		assert.Equal(t, first, second)
	})

	t.Run("No Members", func(t *testing.T) {
		assert.Empty(t, CalculateSettlements(nil))
	})
}
