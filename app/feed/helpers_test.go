package feed

import (
	"time"

	"github.com/zamwe/zamwe-web/app/money"
	"github.com/zamwe/zamwe-web/app/notify"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestGate() *Gate {
	return NewGate(money.Naira())
}

// sampleItems mirrors the public updates page catalog.
func sampleItems() []Item {
	return []Item{
		{
			ID:              1,
			Kind:            KindEvent,
			Title:           "Digital Marketing Workshop for SMEs",
			Description:     "Learn advanced digital marketing strategies to grow your small business online.",
			OccursOn:        date("2024-09-15"),
			Time:            "10:00 AM",
			Location:        "ZAMWE Training Center, Gusau",
			PaymentRequired: true,
			Amount:          2500,
			Capacity:        intPtr(50),
			RegisteredCount: intPtr(32),
			Featured:        true,
			Media:           Media{HasImage: true},
		},
		{
			ID:          2,
			Kind:        KindUpdate,
			Title:       "New Business Directory Feature Launch",
			Description: "We are excited to announce the launch of our new online business directory.",
			OccursOn:    date("2024-08-28"),
			Media:       Media{HasImage: true},
		},
		{
			ID:              3,
			Kind:            KindContribution,
			Title:           "Q3 Community Development Project",
			Description:     "Support our quarterly community development initiative in remote areas.",
			OccursOn:        date("2024-09-01"),
			PaymentRequired: true,
			Amount:          5000,
			TargetAmount:    floatPtr(500000),
			CurrentAmount:   floatPtr(127500),
			Featured:        true,
			Media:           Media{HasImage: true, HasVideo: true},
		},
		{
			ID:              4,
			Kind:            KindEvent,
			Title:           "Monthly Networking Meetup",
			Description:     "Join fellow ZAMWE members for our monthly networking meetup.",
			OccursOn:        date("2024-09-20"),
			Time:            "6:00 PM",
			Location:        "Grand Hotel, Gusau",
			Capacity:        intPtr(100),
			RegisteredCount: intPtr(78),
			Media:           Media{HasImage: true},
		},
		{
			ID:          5,
			Kind:        KindAnnouncement,
			Title:       "Micro-Loan Program Now Available",
			Description: "Our micro-loan program is now available for eligible ZAMWE members.",
			OccursOn:    date("2024-08-20"),
			Featured:    true,
			Media:       Media{HasImage: true, HasVideo: true},
		},
	}
}

type recordedNotification struct {
	title       string
	description string
	severity    string
}

type recordingNotifier struct {
	emitted []recordedNotification
}

func (r *recordingNotifier) Emit(title, description string, severity notify.Severity) {
	r.emitted = append(r.emitted, recordedNotification{title, description, string(severity)})
}
