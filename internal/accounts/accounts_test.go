package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/activity-export/internal/models"
	"fjacquet/activity-export/internal/normalizer"
)

func testBook() *Book {
	return NewBook([]models.Account{
		{ID: "tfsa-1", Name: "TFSA", Type: "TFSA", Currency: "CAD"},
		{ID: " card-1 ", Name: "Visa Infinite", Type: "Credit card", Currency: "CAD"},
		{ID: "usd-1", Name: "", Type: "Cash savings", Currency: "USD"},
		{ID: "", Name: "ignored"},
	})
}

func TestBook_ResolveName(t *testing.T) {
	b := testBook()

	name, ok := b.ResolveName("tfsa-1")
	assert.True(t, ok)
	assert.Equal(t, "TFSA", name)

	_, ok = b.ResolveName("usd-1")
	assert.False(t, ok, "blank names do not resolve")

	_, ok = b.ResolveName("nope")
	assert.False(t, ok)
}

func TestBook_IsCreditCard(t *testing.T) {
	b := testBook()
	assert.True(t, b.IsCreditCard("card-1"))
	assert.False(t, b.IsCreditCard("tfsa-1"))
	assert.False(t, b.IsCreditCard("unknown"))
}

func TestBook_ExportOptions(t *testing.T) {
	b := testBook()
	inst := Institution{Org: "Wealthsimple", FID: "1234"}

	opts := b.ExportOptions("usd-1", inst)
	assert.Equal(t, models.ExportOptions{
		AccountID:   "usd-1",
		AccountType: "Cash savings",
		Currency:    "USD",
		Org:         "Wealthsimple",
		FID:         "1234",
	}, opts)

	unknown := b.ExportOptions("x", inst)
	assert.Equal(t, "x", unknown.AccountID)
	assert.Empty(t, unknown.AccountType)
}

func TestBook_List(t *testing.T) {
	list := testBook().List()
	require.Len(t, list, 3)
	assert.Equal(t, "usd-1", list[0].ID)
	assert.Equal(t, "tfsa-1", list[1].ID)
	assert.Equal(t, "card-1", list[2].ID)
}

func TestBook_NilIsEmpty(t *testing.T) {
	var b *Book
	_, ok := b.ResolveName("a")
	assert.False(t, ok)
	assert.False(t, b.IsCreditCard("a"))
	assert.Nil(t, b.List())
}

func TestBook_DrivesNormalizer(t *testing.T) {
	b := testBook()
	n := normalizer.NewNormalizer(b.ResolveName, b.IsCreditCard, nil)

	tx := n.NormalizeActivity(models.RawActivity{
		Type: "INTERNAL_TRANSFER", SubType: "SOURCE", Amount: "10", OpposingAccountID: "tfsa-1",
	})
	assert.Equal(t, "Transfer to TFSA", tx.Description)

	payment := n.NormalizeActivity(models.RawActivity{
		Type: "CREDIT_CARD_PAYMENT", Amount: "10", AccountID: "card-1",
	})
	assert.True(t, payment.Amount.IsPositive())
}
