package models

// Brand identifies the card scheme of a validated payment card. Card
// validation and brand detection happen upstream of this client; the
// gateway only needs the brand to decide whether the UK debit issue
// fields apply.
type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "master"
	BrandAmex       Brand = "american_express"
	BrandDiscover   Brand = "discover"
	BrandJCB        Brand = "jcb"
	BrandSwitch     Brand = "switch"
	BrandSolo       Brand = "solo"
	BrandMaestro    Brand = "maestro"
	BrandDinersClub Brand = "diners_club"
)

// UKDebit reports whether the brand belongs to the UK debit families
// that carry card issue date and issue number fields on the wire.
func (b Brand) UKDebit() bool {
	return b == BrandSwitch || b == BrandSolo
}

// PaymentMethod is either a full Card or a gateway-issued Token.
type PaymentMethod interface {
	paymentMethod()
}

// Card contains already-validated payment card details.
type Card struct {
	// Number is the full card number (PAN).
	Number string

	// Month is the expiry month (1-12). Encoded zero-padded on the wire.
	Month int

	// Year is the four-digit expiry year. Only the last two digits are sent.
	Year int

	// CVV is the card verification value. Omitted from the request when empty.
	CVV string

	// Brand is the card scheme, as detected by the caller's card validation.
	Brand Brand

	// IssueMonth, IssueYear and IssueNumber apply to the UK debit schemes
	// (switch/solo) only and are ignored for every other brand.
	IssueMonth  int
	IssueYear   int
	IssueNumber string
}

func (Card) paymentMethod() {}

// Token references card data previously stored with the gateway, as
// returned on Result.CardToken.
type Token struct {
	// ID is the gateway-issued token identifier.
	ID string

	// CVV optionally re-supplies the verification value for this payment.
	CVV string
}

func (Token) paymentMethod() {}

// Address is a customer billing address. Blank fields are omitted from
// the request entirely; the gateway rejects empty elements.
type Address struct {
	Name     string
	Company  string
	Address1 string
	Address2 string
	Address3 string
	Town     string
	County   string
	Country  string
	Postcode string
}

// TransactionOptions carries the per-call parameters shared by every
// gateway operation.
type TransactionOptions struct {
	// OrderID is the merchant's reference for the transaction. Required
	// for every operation except 3-D Secure completion.
	OrderID string

	// BillingAddress is emitted only when present.
	BillingAddress *Address

	// Email is the customer contact address, emitted when non-empty.
	Email string

	// SkipThreeDSecure suppresses the 3-D Secure opt-in markers for this
	// call even when the client has 3-D Secure enabled.
	SkipThreeDSecure bool
}
