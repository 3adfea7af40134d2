package feed

import (
	"fmt"

	"github.com/zamwe/zamwe-web/app/money"
	"github.com/zamwe/zamwe-web/app/notify"
)

type Action string

const (
	ActionRegister   Action = "register"
	ActionReadMore   Action = "read_more"
	ActionContribute Action = "contribute"
	ActionPay        Action = "pay"
)

// Offer is what the gate decides on: anything with a kind and an optional price.
type Offer struct {
	Subject         string
	Kind            Kind
	PaymentRequired bool
	Amount          float64
}

// Affordance is the primary call-to-action for an offer.
type Affordance struct {
	Action     Action  `json:"action"`
	Label      string  `json:"label"`
	Amount     float64 `json:"amount,omitempty"`
	AmountText string  `json:"amount_text,omitempty"`
	Payment    bool    `json:"payment"`
}

// FollowUp is called after a membership payment fires so the caller can
// schedule the delayed "payment processing" notice.
type FollowUp func(offer Offer)

type Gate struct {
	money *money.Formatter
}

func NewGate(formatter *money.Formatter) *Gate {
	return &Gate{money: formatter}
}

func (g *Gate) Formatter() *money.Formatter {
	return g.money
}

func (g *Gate) Decide(o Offer) Affordance {
	if !o.PaymentRequired {
		if o.Kind == KindEvent {
			return Affordance{Action: ActionRegister, Label: "Register for Event"}
		}
		return Affordance{Action: ActionReadMore, Label: "Read More"}
	}

	amount := g.money.Format(o.Amount)
	a := Affordance{
		Amount:     o.Amount,
		AmountText: amount,
		Payment:    true,
	}

	switch o.Kind {
	case KindContribution:
		a.Action = ActionContribute
		a.Label = "Contribute " + amount
	case KindEvent:
		a.Action = ActionPay
		a.Label = "Register & Pay " + amount
	default:
		a.Action = ActionPay
		a.Label = "Pay Now " + amount
	}

	return a
}

// Invoke performs the affordance's side effect: a notification only. The
// offer itself is never changed.
func (g *Gate) Invoke(o Offer, n notify.Notifier, followUp FollowUp) Affordance {
	a := g.Decide(o)

	switch a.Action {
	case ActionRegister:
		n.Emit("Registration Successful",
			"You have been registered for this event. Check your email for details.",
			notify.SeverityNormal)
	case ActionContribute, ActionPay:
		if o.Kind == KindMembership {
			n.Emit("Redirecting to Payment",
				fmt.Sprintf("Processing payment for %s membership (%s)", o.Subject, a.AmountText),
				notify.SeverityNormal)
			if followUp != nil {
				followUp(o)
			}
		} else {
			n.Emit("Payment Processing",
				fmt.Sprintf("Redirecting to payment gateway for %s...", a.AmountText),
				notify.SeverityNormal)
		}
	}

	return a
}
