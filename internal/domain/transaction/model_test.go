package transaction_test

import (
	"testing"
	"time"

	"jecati/internal/domain/transaction"
)

func validTransaction() transaction.Transaction {
	return transaction.Transaction{
		ID:            "1",
		ContactPerson: "R. Santos",
		ContactNumber: "+63 917 000 0000",
		Email:         "r.santos@example.com",
		Services:      []transaction.Line{{Unit: "Backhoe Loader", Quantity: 2}},
		StartingDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		Location:      "Quezon City",
		Status:        transaction.StatusUnpaid,
	}
}

// TestTransaction_Validate tests validation of Transaction.
func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*transaction.Transaction)
		wantErr bool
	}{
		{name: "valid transaction", mutate: func(*transaction.Transaction) {}, wantErr: false},
		{name: "empty contact person", mutate: func(tr *transaction.Transaction) { tr.ContactPerson = "" }, wantErr: true},
		{name: "empty contact number", mutate: func(tr *transaction.Transaction) { tr.ContactNumber = "" }, wantErr: true},
		{name: "empty email", mutate: func(tr *transaction.Transaction) { tr.Email = "" }, wantErr: true},
		{name: "empty location", mutate: func(tr *transaction.Transaction) { tr.Location = "" }, wantErr: true},
		{name: "no service lines", mutate: func(tr *transaction.Transaction) { tr.Services = nil }, wantErr: true},
		{
			name:    "zero quantity",
			mutate:  func(tr *transaction.Transaction) { tr.Services[0].Quantity = 0 },
			wantErr: true,
		},
		{name: "unknown status", mutate: func(tr *transaction.Transaction) { tr.Status = "pending" }, wantErr: true},
		{name: "paid status", mutate: func(tr *transaction.Transaction) { tr.Status = transaction.StatusPaid }, wantErr: false},
		{name: "on-going status", mutate: func(tr *transaction.Transaction) { tr.Status = transaction.StatusOngoing }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := validTransaction()
			tt.mutate(&tr)
			err := tr.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestTransaction_IsOverdue tests overdue detection.
func TestTransaction_IsOverdue(t *testing.T) {
	tr := validTransaction()
	before := tr.DueDate.Add(-24 * time.Hour)
	after := tr.DueDate.Add(24 * time.Hour)

	if tr.IsOverdue(before) {
		t.Error("transaction before due date must not be overdue")
	}
	if !tr.IsOverdue(after) {
		t.Error("unpaid transaction past due date must be overdue")
	}

	tr.Status = transaction.StatusPaid
	if tr.IsOverdue(after) {
		t.Error("paid transaction is never overdue")
	}
}
