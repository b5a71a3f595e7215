package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/inventory"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/kvstore"
)

type fakeMailer struct {
	to      string
	subject string
	body    string
	sent    int
}

func (m *fakeMailer) Send(toEmail, subject, body string) error {
	m.sent++
	m.to = toEmail
	m.subject = subject
	m.body = body
	return nil
}

func newDigestFixture(t *testing.T) (NotifyService, inventory.InventoryRepository, *fakeMailer) {
	t.Helper()
	repo := inventory.NewInventoryRepository(kvstore.NewMemoryStore())
	mailer := &fakeMailer{}
	return NewNotifyService(inventory.NewInventoryService(repo), mailer), repo, mailer
}

func TestSendExpiryDigest(t *testing.T) {
	t.Parallel()

	service, repo, mailer := newDigestFixture(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.SaveAll(ctx, []entities.FoodItem{
		{ID: "1", Name: "Old Yogurt", Category: entities.CategoryDairyEggs, Quantity: "2", Unit: "pcs", ExpiryDate: now.AddDate(0, 0, -1)},
		{ID: "2", Name: "Rice", Category: entities.CategoryOther, Quantity: "5", Unit: "kg", ExpiryDate: now.AddDate(0, 0, 60)},
	}))

	err := service.SendExpiryDigest(ctx, domain.SendDigestRequest{Recipient: "home@example.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "home@example.com", mailer.to)
	assert.Contains(t, mailer.body, "Old Yogurt")
	assert.Contains(t, mailer.body, string(entities.TierExpired))
	assert.NotContains(t, mailer.body, "Rice")
}

func TestSendExpiryDigestNothingExpiring(t *testing.T) {
	t.Parallel()

	service, repo, mailer := newDigestFixture(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, []entities.FoodItem{
		{ID: "1", Name: "Rice", ExpiryDate: time.Now().AddDate(0, 0, 60)},
	}))

	err := service.SendExpiryDigest(ctx, domain.SendDigestRequest{Recipient: "home@example.com"})
	assert.ErrorIs(t, err, domain.ErrNothingExpiring)
	assert.Zero(t, mailer.sent)
}

func TestSendExpiryDigestNoRecipient(t *testing.T) {
	t.Parallel()

	service, _, mailer := newDigestFixture(t)

	err := service.SendExpiryDigest(context.Background(), domain.SendDigestRequest{})
	assert.ErrorIs(t, err, domain.ErrNoDigestRecipient)
	assert.Zero(t, mailer.sent)
}
