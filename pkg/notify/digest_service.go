package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/domain"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/entities"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/utils"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/utils/mailing"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/pkg/inventory"
)

const digestWindowDays = 3

type (
	Mailer interface {
		Send(toEmail, subject, body string) error
	}

	NotifyService interface {
		// SendExpiryDigest mails a summary of everything expiring
		// within the next three days.
		SendExpiryDigest(ctx context.Context, req domain.SendDigestRequest) error
	}

	smtpMailer struct{}

	notifyService struct {
		inventoryService inventory.InventoryService
		mailer           Mailer
	}
)

func NewSMTPMailer() Mailer {
	return smtpMailer{}
}

func (smtpMailer) Send(toEmail, subject, body string) error {
	return mailing.SendMail(toEmail, subject, body)
}

func NewNotifyService(inventoryService inventory.InventoryService, mailer Mailer) NotifyService {
	return &notifyService{
		inventoryService: inventoryService,
		mailer:           mailer,
	}
}

func (s *notifyService) SendExpiryDigest(ctx context.Context, req domain.SendDigestRequest) error {
	recipient := req.Recipient
	if recipient == "" {
		recipient = utils.GetConfig("DIGEST_RECIPIENT")
	}
	if recipient == "" {
		return domain.ErrNoDigestRecipient
	}

	now := time.Now()
	expiring, err := s.inventoryService.ExpiringWithin(ctx, digestWindowDays, now)
	if err != nil {
		return err
	}
	if len(expiring) == 0 {
		return domain.ErrNothingExpiring
	}

	return s.mailer.Send(recipient, "Fridge expiry digest", buildDigestBody(expiring, now))
}

func buildDigestBody(items []entities.FoodItem, now time.Time) string {
	var b strings.Builder
	b.WriteString("<h3>Items that need attention</h3><ul>")
	for _, item := range items {
		classification := entities.ClassifyExpiry(item.ExpiryDate, now)
		b.WriteString(fmt.Sprintf(
			"<li>%s %s (%s %s): %s, %d day(s) left</li>",
			item.DisplayIcon(), item.Name, item.Quantity, item.Unit,
			classification.Tier, classification.DaysLeft,
		))
	}
	b.WriteString("</ul>")
	return b.String()
}
