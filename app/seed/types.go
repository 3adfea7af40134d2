package seed

import (
	"github.com/zamwe/zamwe-web/app/feed"
)

// Catalog is the read-only mock data every session starts from.
type Catalog struct {
	Site          Site
	Items         []feed.Item
	Notices       []Notice
	Tiers         []Tier
	Member        Member
	Transactions  []Transaction
	Admin         Admin
	BusinessTypes []string
}

type Site struct {
	Name     string   `yaml:"name"`
	FullName string   `yaml:"full_name"`
	Tagline  string   `yaml:"tagline"`
	Email    string   `yaml:"email"`
	Address  string   `yaml:"address"`
	Features []Card   `yaml:"features"`
	Stories  []Story  `yaml:"stories"`
	Promises []string `yaml:"promises"`
	Benefits []Card   `yaml:"benefits"`
}

type Card struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Story struct {
	Name        string `yaml:"name"`
	Business    string `yaml:"business"`
	Story       string `yaml:"story"`
	Achievement string `yaml:"achievement"`
}

// Notice is a dashboard notification; it goes through the same payment gate
// as feed items.
type Notice struct {
	feed.Item
	Read bool
}

type Tier struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Price       float64  `yaml:"price"`
	Period      string   `yaml:"period"`
	Popular     bool     `yaml:"popular"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

func (t Tier) Offer() feed.Offer {
	return feed.Offer{
		Subject:         t.Name,
		Kind:            feed.KindMembership,
		PaymentRequired: true,
		Amount:          t.Price,
	}
}

type Member struct {
	Name            string `yaml:"name"`
	Email           string `yaml:"email"`
	Phone           string `yaml:"phone"`
	Address         string `yaml:"address"`
	MembershipType  string `yaml:"membership_type"`
	JoinDate        string `yaml:"join_date"`
	BusinessType    string `yaml:"business_type"`
	ProfileComplete int    `yaml:"profile_complete"`
}

type Transaction struct {
	ID     int64   `yaml:"id"`
	Type   string  `yaml:"type"`
	Amount float64 `yaml:"amount"`
	Date   string  `yaml:"date"`
	Status string  `yaml:"status"`
}

type Admin struct {
	Stats    AdminStats      `yaml:"stats"`
	Users    []User          `yaml:"users"`
	Admins   []User          `yaml:"admins"`
	Payment  PaymentSettings `yaml:"payment"`
	Branding SiteSettings    `yaml:"branding"`
}

type AdminStats struct {
	TotalUsers        int     `yaml:"total_users"`
	NewUsersThisMonth int     `yaml:"new_users_this_month"`
	TotalRevenue      float64 `yaml:"total_revenue"`
	PendingPayments   int     `yaml:"pending_payments"`
	ActiveEvents      int     `yaml:"active_events"`
	TotalUpdates      int     `yaml:"total_updates"`
}

type User struct {
	ID         int64  `yaml:"id"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Membership string `yaml:"membership"`
	Status     string `yaml:"status"`
	JoinDate   string `yaml:"join_date"`
}

type PaymentSettings struct {
	AccountNumber string `yaml:"account_number"`
	AccountName   string `yaml:"account_name"`
	BankName      string `yaml:"bank_name"`
	PhoneNumber   string `yaml:"phone_number"`
}

type SiteSettings struct {
	SiteName       string `yaml:"site_name"`
	PrimaryColor   string `yaml:"primary_color"`
	SecondaryColor string `yaml:"secondary_color"`
}
