package feed

import (
	"errors"
	"testing"
)

func TestItem_ValidateSampleItems(t *testing.T) {
	for _, item := range sampleItems() {
		if err := item.Validate(); err != nil {
			t.Errorf("Item %d should be valid: %v", item.ID, err)
		}
	}
}

func TestItem_ValidateRejectsBrokenInvariants(t *testing.T) {
	cases := map[string]Item{
		"unknown kind":           {Kind: "podcast", Title: "x"},
		"membership kind":        {Kind: KindMembership, Title: "x"},
		"missing title":          {Kind: KindUpdate, Title: "  "},
		"paid without amount":    {Kind: KindEvent, Title: "x", PaymentRequired: true},
		"capacity on update":     {Kind: KindUpdate, Title: "x", Capacity: intPtr(10), RegisteredCount: intPtr(1)},
		"capacity without count": {Kind: KindEvent, Title: "x", Capacity: intPtr(10)},
		"overbooked":             {Kind: KindEvent, Title: "x", Capacity: intPtr(10), RegisteredCount: intPtr(11)},
		"target on event":        {Kind: KindEvent, Title: "x", TargetAmount: floatPtr(10)},
		"negative current":       {Kind: KindContribution, Title: "x", TargetAmount: floatPtr(10), CurrentAmount: floatPtr(-1)},
		"zero target":            {Kind: KindContribution, Title: "x", TargetAmount: floatPtr(0)},
		"location on update":     {Kind: KindUpdate, Title: "x", Location: "Gusau"},
	}

	for name, item := range cases {
		if err := item.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Announcement ")
	if err != nil || k != KindAnnouncement {
		t.Errorf("Expected announcement, got %q (%v)", k, err)
	}

	_, err = ParseKind("all")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestItem_Date(t *testing.T) {
	item := sampleItems()[0]
	if item.Date() != "2024-09-15" {
		t.Errorf("Expected '2024-09-15', got %q", item.Date())
	}
	if (Item{}).Date() != "" {
		t.Error("Zero date should render empty")
	}
}
