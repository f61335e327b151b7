// Package payment is the checkout collaborator: it validates card
// details and confirms charges.  The core only needs the boolean
// outcome; the receipt reference is a courtesy for the response body.
package payment

import (
    "errors"
    "fmt"
    "regexp"

    "github.com/google/uuid"
)

// ErrDeclined is returned when a charge cannot be confirmed.
var ErrDeclined = errors.New("payment declined")

var (
    holderPattern = regexp.MustCompile(`^[a-zA-Z ]+$`)
    numberPattern = regexp.MustCompile(`^\d{16}$`)
    cvvPattern    = regexp.MustCompile(`^\d{3}$`)
    expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

// Card carries the details collected for a checkout charge.
type Card struct {
    HolderName string `json:"holder_name"`
    Number     string `json:"number"`
    CVV        string `json:"cvv"`
    Expiry     string `json:"expiry"` // MM/YY
}

// Receipt is the confirmation of a successful charge.
type Receipt struct {
    Reference string  `json:"reference"`
    Amount    float64 `json:"amount"`
}

// Processor confirms charges.  Implementations must either confirm
// the full amount or return an error; partial captures do not exist.
type Processor interface {
    Charge(card Card, amount float64) (Receipt, error)
}

// CardValidator is the default Processor.  It accepts any
// syntactically valid card and issues a fresh receipt reference; there
// is no real payment gateway behind it.
type CardValidator struct{}

// NewCardValidator returns the default processor.
func NewCardValidator() *CardValidator { return &CardValidator{} }

// Charge validates the card fields and, when they pass, confirms the
// charge with a generated receipt reference.
func (p *CardValidator) Charge(card Card, amount float64) (Receipt, error) {
    if err := validateCard(card); err != nil {
        return Receipt{}, err
    }
    return Receipt{Reference: uuid.NewString(), Amount: amount}, nil
}

func validateCard(card Card) error {
    if l := len(card.HolderName); l < 2 || l > 50 || !holderPattern.MatchString(card.HolderName) {
        return fmt.Errorf("%w: card holder name must be 2-50 letters and spaces", ErrDeclined)
    }
    if !numberPattern.MatchString(card.Number) {
        return fmt.Errorf("%w: card number must be 16 digits", ErrDeclined)
    }
    if !cvvPattern.MatchString(card.CVV) {
        return fmt.Errorf("%w: CVV must be 3 digits", ErrDeclined)
    }
    if !expiryPattern.MatchString(card.Expiry) {
        return fmt.Errorf("%w: expiry date must be in MM/YY format", ErrDeclined)
    }
    return nil
}
