package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"jecati/internal/adapters/email"
	"jecati/internal/domain/transaction"
)

// TransactionStoreForInquiry defines the store interface needed by SubmitInquiry.
type TransactionStoreForInquiry interface {
	Save(ctx context.Context, t transaction.Transaction) error
}

// SubmitInquiryInput carries a customer inquiry from the contact page.
type SubmitInquiryInput struct {
	ContactPerson string
	ContactNumber string
	Email         string
	Services      []transaction.Line
	DueDate       time.Time
	Location      string
}

// SubmitInquiryDeps holds dependencies for SubmitInquiry.
type SubmitInquiryDeps struct {
	TransactionStore TransactionStoreForInquiry
	Sender           email.Sender
	BusinessInbox    string
	EmailFrom        string
	GenerateID       func() string
	Now              func() time.Time
}

// ExecuteSubmitInquiry records a customer inquiry as an unpaid transaction
// and notifies the business inbox. The notification is best-effort: a
// failed send is logged but the persisted transaction stands, since the
// admin dashboard lists it either way.
// PRE: Input passed handler-level validation
// POST: Transaction persisted with status unpaid
func ExecuteSubmitInquiry(ctx context.Context, input SubmitInquiryInput, deps SubmitInquiryDeps) (transaction.Transaction, error) {
	t := transaction.Transaction{
		ID:            deps.GenerateID(),
		ContactPerson: input.ContactPerson,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Services:      input.Services,
		StartingDate:  deps.Now(),
		DueDate:       input.DueDate,
		Location:      input.Location,
		Status:        transaction.StatusUnpaid,
	}

	if err := t.Validate(); err != nil {
		return transaction.Transaction{}, err
	}

	if err := deps.TransactionStore.Save(ctx, t); err != nil {
		return transaction.Transaction{}, err
	}

	slog.Info("inquiry_event", "event", "inquiry_received", "contact", t.ContactPerson, "lines", len(t.Services))

	var lines []string
	for _, l := range t.Services {
		lines = append(lines, fmt.Sprintf("<li>%s × %d</li>", l.Unit, l.Quantity))
	}
	req := email.SendRequest{
		To:      []string{deps.BusinessInbox},
		From:    deps.EmailFrom,
		Subject: "New Customer Inquiry",
		HTML: fmt.Sprintf(
			`<p>Inquiry from %s (%s, %s)</p><p>Location: %s</p><p>Due: %s</p><ul>%s</ul>`,
			t.ContactPerson, t.Email, t.ContactNumber, t.Location,
			t.DueDate.Format("2006-01-02"), strings.Join(lines, ""),
		),
		ReplyTo: t.Email,
	}
	if _, err := deps.Sender.Send(ctx, req); err != nil {
		slog.Error("inquiry_event", "event", "notify_failed", "error", err.Error())
	}

	return t, nil
}
