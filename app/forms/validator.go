package forms

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/notify"
)

var settingsSections = []string{"site", "payment", "admin"}

type Validator struct {
	validate      *validator.Validate
	businessTypes []string
}

// NewValidator accepts any business type when businessTypes is empty.
func NewValidator(businessTypes []string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		return field.Name
	})

	return &Validator{
		validate:      v,
		businessTypes: businessTypes,
	}
}

func (v *Validator) Register(r Registration) error {
	if err := v.check(r); err != nil {
		return err
	}

	if len(v.businessTypes) > 0 && !slices.Contains(v.businessTypes, r.BusinessType) {
		return &ValidationError{
			Title:       "Invalid Business Type",
			Description: "Please select your business type from the list.",
		}
	}

	if r.Password != r.ConfirmPassword {
		return &ValidationError{
			Title:       "Password Mismatch",
			Description: "Passwords do not match. Please check and try again.",
		}
	}

	if !r.AgreeToTerms {
		return &ValidationError{
			Title:       "Terms Required",
			Description: "Please accept the terms and conditions to continue.",
		}
	}

	return nil
}

func (v *Validator) Login(l Login) error {
	return v.check(l)
}

func (v *Validator) Contact(c Contact) error {
	return v.check(c)
}

// CreateUpdate turns a draft into a feed item ready to be added to a session.
// The item has no ID yet.
func (v *Validator) CreateUpdate(d UpdateDraft) (feed.Item, error) {
	title := strings.TrimSpace(d.Title)
	content := strings.TrimSpace(d.Content)
	if title == "" || content == "" {
		return feed.Item{}, &ValidationError{
			Title:       "Missing Information",
			Description: "Please provide both title and content for the update.",
		}
	}

	kind := feed.KindUpdate
	if d.Kind != "" {
		parsed, err := feed.ParseKind(d.Kind)
		if err != nil {
			return feed.Item{}, &ValidationError{
				Title:       "Invalid Type",
				Description: "Please choose event, update, contribution or announcement.",
			}
		}
		kind = parsed
	}

	if d.RequiresPayment && d.Amount <= 0 {
		return feed.Item{}, &ValidationError{
			Title:       "Invalid Amount",
			Description: "Please provide an amount greater than zero for paid updates.",
		}
	}

	item := feed.Item{
		Kind:            kind,
		Title:           title,
		Description:     content,
		PaymentRequired: d.RequiresPayment,
		Featured:        d.Featured,
		Media:           feed.Media{HasImage: d.HasImage, HasVideo: d.HasVideo},
	}
	if d.RequiresPayment {
		item.Amount = d.Amount
	}

	return item, nil
}

// Settings validates a settings section name and returns the confirmation to
// show. Nothing is persisted.
func (v *Validator) Settings(section string) (Message, error) {
	section = strings.ToLower(strings.TrimSpace(section))
	if !slices.Contains(settingsSections, section) {
		return Message{}, &ValidationError{
			Title:       "Unknown Settings",
			Description: fmt.Sprintf("There are no %q settings to save.", section),
		}
	}

	label := cases.Title(language.English).String(section)
	return Message{
		Title:       "Settings Saved",
		Description: fmt.Sprintf("%s settings have been updated successfully.", label),
	}, nil
}

func (v *Validator) check(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate form: %w", err)
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return &ValidationError{
			Title:       "Missing Information",
			Description: fmt.Sprintf("Please fill in the required fields: %s.", strings.Join(missing, ", ")),
		}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "email":
		return &ValidationError{
			Title:       "Invalid Email",
			Description: "Please enter a valid email address.",
		}
	default:
		return &ValidationError{
			Title:       "Invalid " + fe.Field(),
			Description: fmt.Sprintf("Please check the %s field and try again.", strings.ToLower(fe.Field())),
		}
	}
}

// Report emits either the validation failure or the success message and
// reports whether the submission was accepted. Errors that are not
// validation failures are returned unchanged.
func Report(n notify.Notifier, err error, success Message) (bool, error) {
	if err == nil {
		n.Emit(success.Title, success.Description, notify.SeverityNormal)
		return true, nil
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		slog.Debug("Form rejected", "title", verr.Title)
		n.Emit(verr.Title, verr.Description, notify.SeverityDestructive)
		return false, nil
	}

	return false, err
}
