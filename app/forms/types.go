// Package forms validates the site's form submissions before anything is
// acted on.
package forms

import "fmt"

// Message is a notification title and description pair.
type Message struct {
	Title       string
	Description string
}

// ValidationError is a rejected submission. It is shown to the visitor as a
// destructive notification.
type ValidationError Message

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Description)
}

var (
	RegisterSuccess = Message{"Registration Successful!", "Welcome to ZAMWE! Please check your email for verification."}
	LoginSuccess    = Message{"Login Successful!", "Welcome back to ZAMWE!"}
	ContactSuccess  = Message{"Message Sent!", "Thank you for reaching out. We'll get back to you soon."}
	UpdateCreated   = Message{"Update Created", "Your update has been published successfully."}
	UpdateDeleted   = Message{"Update Deleted", "The update has been removed."}
)

type Registration struct {
	Name             string `form:"name" json:"name" label:"Full Name" validate:"required"`
	Email            string `form:"email" json:"email" label:"Email Address" validate:"required,email"`
	Phone            string `form:"phone" json:"phone" label:"Phone Number" validate:"required"`
	Address          string `form:"address" json:"address" label:"Address" validate:"required"`
	BusinessType     string `form:"business_type" json:"business_type" label:"Business Type" validate:"required"`
	ReasonForJoining string `form:"reason_for_joining" json:"reason_for_joining" label:"Reason for Joining" validate:"required"`
	AccountNumber    string `form:"account_number" json:"account_number" label:"Account Number" validate:"omitempty,numeric"`
	AccountName      string `form:"account_name" json:"account_name" label:"Account Name"`
	Password         string `form:"password" json:"password" label:"Password" validate:"required"`
	ConfirmPassword  string `form:"confirm_password" json:"confirm_password" label:"Confirm Password" validate:"required"`
	AgreeToTerms     bool   `form:"agree_to_terms" json:"agree_to_terms"`
}

type Login struct {
	Email      string `form:"email" json:"email" label:"Email Address" validate:"required,email"`
	Password   string `form:"password" json:"password" label:"Password" validate:"required"`
	RememberMe bool   `form:"remember_me" json:"remember_me"`
}

type Contact struct {
	Name    string `form:"name" json:"name" label:"Name" validate:"required"`
	Email   string `form:"email" json:"email" label:"Email" validate:"required,email"`
	Subject string `form:"subject" json:"subject" label:"Subject" validate:"required"`
	Message string `form:"message" json:"message" label:"Message" validate:"required"`
}

// UpdateDraft is the admin "create update" form.
type UpdateDraft struct {
	Title           string  `form:"title" json:"title"`
	Content         string  `form:"content" json:"content"`
	Kind            string  `form:"kind" json:"kind"`
	RequiresPayment bool    `form:"requires_payment" json:"requires_payment"`
	Amount          float64 `form:"amount" json:"amount"`
	HasImage        bool    `form:"has_image" json:"has_image"`
	HasVideo        bool    `form:"has_video" json:"has_video"`
	Featured        bool    `form:"featured" json:"featured"`
}
