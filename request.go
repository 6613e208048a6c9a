package axiar

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/beevik/etree"

	"github.com/axiarpayments/axiar-go/models"
)

// Gateway operation type codes (request > options > type).
const (
	typeRegister      = "REGISTER"
	typePreauth       = "PREAUTH"
	typeAuth          = "AUTH"
	typePreauthSettle = "PREAUTH_SETTLE"
	typeReversal      = "REVERSAL"
	typeRefund        = "REFUND"
)

// currencyGBP is the ISO 4217 numeric code for pounds sterling. The
// gateway serves a single market and accepts no other currency.
const currencyGBP = "826"

// transactionRequest collects everything the builder needs to emit one
// XML transaction document.
type transactionRequest struct {
	opType       string
	amount       int64
	method       models.PaymentMethod // nil for capture/void
	parentTrxID  string               // capture/void only
	threeDSecure bool                 // emit the 3-D Secure opt-in markers
	opts         models.TransactionOptions
}

// buildTransactionXML produces the gateway XML document for one
// transaction. The builder performs no I/O and is deterministic for
// identical inputs.
func buildTransactionXML(login, password string, r transactionRequest) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("request")
	addAuthorisation(root, login, password)
	addOptions(root, r)

	payment := root.CreateElement("payment")
	addCustomerInformation(payment, r.opts)
	if r.method != nil {
		addCard(payment, r.method)
	}
	payment.CreateElement("total").SetText(strconv.FormatInt(r.amount, 10))
	payment.CreateElement("currency").SetText(currencyGBP)

	cart := payment.CreateElement("cart")
	cart.CreateElement("items")
	cart.CreateElement("cart_id").SetText(r.opts.OrderID)

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serialize request: %w", err)
	}
	return out, nil
}

func addAuthorisation(root *etree.Element, login, password string) {
	auth := root.CreateElement("authorisation")
	auth.CreateElement("username").SetText(login)
	auth.CreateElement("password").SetText(password)
}

func addOptions(root *etree.Element, r transactionRequest) {
	opts := root.CreateElement("options")
	opts.CreateElement("type").SetText(r.opType)
	if r.parentTrxID != "" {
		opts.CreateElement("parent_transaction").SetText(r.parentTrxID)
	}
	if r.threeDSecure {
		// td_description is a required placeholder whenever td_secure is set.
		opts.CreateElement("td_secure").SetText("true")
		opts.CreateElement("td_description")
	}
}

// addCustomerInformation emits the card holder name, contact and address
// fields. The whole block is skipped without a billing address, and each
// sub-field is skipped when blank; the gateway treats empty elements as
// invalid data rather than absent data.
func addCustomerInformation(payment *etree.Element, opts models.TransactionOptions) {
	addr := opts.BillingAddress
	if addr == nil {
		return
	}

	setText(payment, "name", addr.Name)
	setText(payment, "company", addr.Company)
	setText(payment, "email", opts.Email)

	address := payment.CreateElement("address")
	setText(address, "address1", addr.Address1)
	setText(address, "address2", addr.Address2)
	setText(address, "address3", addr.Address3)
	setText(address, "town", addr.Town)
	setText(address, "county", addr.County)
	setText(address, "country", addr.Country)
	setText(address, "postcode", addr.Postcode)
}

// addCard emits either the stored-card token or the full card details,
// never both. Issue data rides along only for the UK debit schemes.
func addCard(payment *etree.Element, method models.PaymentMethod) {
	card := payment.CreateElement("card")

	switch m := method.(type) {
	case models.Token:
		card.CreateElement("tokenid").SetText(m.ID)
		setText(card, "cvv", m.CVV)

	case models.Card:
		card.CreateElement("number").SetText(m.Number)
		expiry := card.CreateElement("expiry")
		expiry.CreateElement("month").SetText(fmt.Sprintf("%02d", m.Month))
		expiry.CreateElement("year").SetText(fmt.Sprintf("%02d", m.Year%100))

		if m.Brand.UKDebit() {
			if m.IssueMonth != 0 || m.IssueYear != 0 {
				issue := card.CreateElement("issue")
				if m.IssueMonth != 0 {
					issue.CreateElement("month").SetText(fmt.Sprintf("%02d", m.IssueMonth))
				}
				if m.IssueYear != 0 {
					issue.CreateElement("year").SetText(fmt.Sprintf("%02d", m.IssueYear%100))
				}
			}
			setText(card, "issue_number", m.IssueNumber)
		}
		setText(card, "cvv", m.CVV)
	}
}

// setText creates a child element with the given text, or nothing when
// the value is blank.
func setText(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).SetText(value)
}

// buildCompletionBody URL-encodes the 3-D Secure completion parameters.
// The completion endpoint takes a form body, not XML: MD is the merchant
// data token from the challenge, PaRes the payer authentication response
// posted back by the cardholder's bank.
func buildCompletionBody(md, paRes string) string {
	v := url.Values{}
	v.Set("MD", md)
	v.Set("PaRes", paRes)
	return v.Encode()
}
