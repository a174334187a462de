package domain

// ChequeStatus is the lifecycle state of a cheque.
type ChequeStatus string

const (
	ChequeReceived  ChequeStatus = "RECEIVED"
	ChequeDeposited ChequeStatus = "DEPOSITED"
	ChequeCleared   ChequeStatus = "CLEARED"
	ChequeBounced   ChequeStatus = "BOUNCED"
)

// ChequeStatuses lists every status in lifecycle order.
var ChequeStatuses = []ChequeStatus{ChequeReceived, ChequeDeposited, ChequeCleared, ChequeBounced}

func (s ChequeStatus) Valid() bool {
	switch s {
	case ChequeReceived, ChequeDeposited, ChequeCleared, ChequeBounced:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s ChequeStatus) Terminal() bool {
	switch s {
	case ChequeCleared, ChequeBounced:
		return true
	case ChequeReceived, ChequeDeposited:
		return false
	}
	return false
}

// Pending reports whether the cheque still awaits an outcome.
func (s ChequeStatus) Pending() bool {
	return s == ChequeReceived || s == ChequeDeposited
}

type ChequeType string

const (
	ChequeAtSight   ChequeType = "AT_SIGHT"
	ChequePostDated ChequeType = "POST_DATED"
)

func (t ChequeType) Valid() bool {
	switch t {
	case ChequeAtSight, ChequePostDated:
		return true
	}
	return false
}

type ChequeDirection string

const (
	DirectionReceivable ChequeDirection = "RECEIVABLE"
	DirectionPayable    ChequeDirection = "PAYABLE"
)

func (d ChequeDirection) Valid() bool {
	switch d {
	case DirectionReceivable, DirectionPayable:
		return true
	}
	return false
}

// TransactionType: CREDIT is money received, DEBIT is money paid.
type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionCredit, TransactionDebit:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "CASH"
	PaymentUPI   PaymentMethod = "UPI"
	PaymentNEFT  PaymentMethod = "NEFT"
	PaymentRTGS  PaymentMethod = "RTGS"
	PaymentIMPS  PaymentMethod = "IMPS"
	PaymentCard  PaymentMethod = "CARD"
	PaymentOther PaymentMethod = "OTHER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentNEFT, PaymentRTGS, PaymentIMPS, PaymentCard, PaymentOther:
		return true
	}
	return false
}

// Activity event types pushed on the live feed.
const (
	EventChequeCreated       = "cheque.created"
	EventChequeStatusChanged = "cheque.status_changed"
	EventChequeDeleted       = "cheque.deleted"
	EventTransactionCreated  = "transaction.created"
	EventTransactionDeleted  = "transaction.deleted"
	EventCustomerCreated     = "customer.created"
	EventCustomerDeleted     = "customer.deleted"
)

// Audit log actions.
const (
	AuditRegister      = "register"
	AuditLogin         = "login"
	AuditLogout        = "logout"
	AuditStatusChanged = "status_changed"
)
