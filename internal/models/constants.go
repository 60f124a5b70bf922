package models

// Spending categories
const (
	TagFood          = "Food"
	TagTransport     = "Transport"
	TagShopping      = "Shopping"
	TagEntertainment = "Entertainment"
	TagBills         = "Bills"
	TagHousing       = "Housing"
	TagIncome        = "Income"
	TagCash          = "Cash"
	TagTransfer      = "Transfer"
	TagHealthcare    = "Healthcare"
	TagEducation     = "Education"
	TagUntagged      = "Untagged"
)

// Account types
const (
	AccountTypeSavings      = "Savings Account"
	AccountTypeCurrent      = "Current Account"
	AccountTypeCard         = "Card"
	AccountTypeLoan         = "Loan Account"
	AccountTypeFixedDeposit = "Fixed Deposit"
)

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
)
