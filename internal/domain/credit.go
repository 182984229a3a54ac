package domain

import "time"

// Credit constants exposed to clients through the config endpoint. Gift and
// paid credit are separate balances: gift credit is replenished on a weekly
// cadence for entitled users, paid credit only ever grows through purchases.
const (
	// ActivationGiftCredit is granted once when a membership activates.
	ActivationGiftCredit = 2
	// WeeklyGiftCredit is granted by the scheduled refresh run.
	WeeklyGiftCredit = 2
	// GiftRegrantDays is the minimum number of whole days between gift grants.
	GiftRegrantDays = 7
	// VideoGenerationCost is the credit price of one generation.
	VideoGenerationCost = 1
	// CreditUseAmount is the fixed debit used by test flows.
	CreditUseAmount = 5
	// VideoMaxDurationSeconds caps the length of a generated video.
	VideoMaxDurationSeconds = 15
	// VideoMaxScriptWords caps the script length for the duration above.
	VideoMaxScriptWords = 35
	// PaidCreditsPerDollar converts a payment amount into paid credit.
	PaidCreditsPerDollar = 10
)

// Gift grant reasons recorded on credit transactions.
const (
	GiftReasonWeeklyReset = "weekly_reset"
	GiftReasonActivation  = "entitlement_activation"
)

// PurchaseCreditAmounts maps store product identifiers to the paid credit
// they unlock.
var PurchaseCreditAmounts = map[string]int{
	"com.sawell.creative.credit.single": 1,
	"com.sawell.creative.credit.10pack": 6,
	"com.sawell.creative.credit.30pack": 13,
}

// CreditAccount is the per-user balance document. LastGiftReset is nil until
// the first gift grant; the refresh run derives eligibility from it alone.
type CreditAccount struct {
	UserID        string
	GiftCredit    int
	PaidCredit    int
	LastGiftReset *time.Time
	UpdatedAt     time.Time
}

// Total returns the spendable balance across both buckets.
func (a CreditAccount) Total() int {
	return a.GiftCredit + a.PaidCredit
}
