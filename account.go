package acctbatch

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const defaultAcctNo = "00000000"

// Account is a checking account built from an opening request. Every setter
// validates before it writes, and a failed setter leaves the account as it
// was. The balances always satisfy
//
//	present   >= -overdraft
//	available <= present + overdraft
type Account struct {
	acctNo    string
	ssn       string
	firstName string
	lastName  string
	email     string
	present   decimal.Decimal
	available decimal.Decimal
	overdraft decimal.Decimal
}

// NewAccount returns an account in its default state that allows the given
// overdraft.
func NewAccount(overdraft decimal.Decimal) *Account {
	return &Account{
		acctNo:    defaultAcctNo,
		overdraft: overdraft,
	}
}

func (a *Account) AcctNo() string             { return a.acctNo }
func (a *Account) SSN() string                { return a.ssn }
func (a *Account) FirstName() string          { return a.firstName }
func (a *Account) LastName() string           { return a.lastName }
func (a *Account) Email() string              { return a.email }
func (a *Account) Present() decimal.Decimal   { return a.present }
func (a *Account) Available() decimal.Decimal { return a.available }
func (a *Account) Overdraft() decimal.Decimal { return a.overdraft }

func (a *Account) SetAcctNo(no string) {
	a.acctNo = no
}

func (a *Account) SetSSN(ssn string) error {
	if !ValidSSN(ssn) {
		return ErrInvalidSSN
	}
	a.ssn = ssn
	return nil
}

func (a *Account) SetName(first, last string) error {
	if !ValidName(first) || !ValidName(last) {
		return ErrInvalidName
	}
	a.firstName = first
	a.lastName = last
	return nil
}

func (a *Account) SetEmail(e string) error {
	if !ValidEmail(e) {
		return ErrInvalidEmail
	}
	a.email = e
	return nil
}

// SetPresentBalance rejects values below -overdraft. When the new present
// balance is accepted, available is lowered to present+overdraft if it would
// otherwise exceed it.
func (a *Account) SetPresentBalance(v decimal.Decimal) error {
	if v.LessThan(a.overdraft.Neg()) {
		return ErrInvalidPresent
	}
	a.present = v
	if ceil := a.present.Add(a.overdraft); a.available.GreaterThan(ceil) {
		a.available = ceil
	}
	return nil
}

func (a *Account) SetAvailableBalance(v decimal.Decimal) error {
	if v.GreaterThan(a.present.Add(a.overdraft)) {
		return ErrInvalidAvailable
	}
	a.available = v
	return nil
}

// SetAccount sets every request field and both balances, or none of them.
// Checks run in order SSN, name, email, present, available and the first
// failure is returned as a RejectionError.
func (a *Account) SetAccount(ssn, first, last, email string, present, available decimal.Decimal) error {
	next := *a
	if err := next.SetSSN(ssn); err != nil {
		return err
	}
	if err := next.SetName(first, last); err != nil {
		return err
	}
	if err := next.SetEmail(email); err != nil {
		return err
	}
	if err := next.SetPresentBalance(present); err != nil {
		return err
	}
	if err := next.SetAvailableBalance(available); err != nil {
		return err
	}
	*a = next
	return nil
}

// Reset clears the account back to its default state. The overdraft limit is
// kept.
func (a *Account) Reset() {
	*a = Account{
		acctNo:    defaultAcctNo,
		overdraft: a.overdraft,
	}
}

type accountJSON struct {
	AcctNo    string          `json:"acct_no"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Present   decimal.Decimal `json:"present_balance"`
	Available decimal.Decimal `json:"available_balance"`
}

// MarshalJSON leaves out the SSN.
func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(accountJSON{
		AcctNo:    a.acctNo,
		FirstName: a.firstName,
		LastName:  a.lastName,
		Email:     a.email,
		Present:   a.present,
		Available: a.available,
	})
}
