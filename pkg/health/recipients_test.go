package health

import "testing"

func TestAlertRecipients(t *testing.T) {
	roster := []PersonProfile{
		{ID: 1, Name: "Ada", Role: RolePI},
		{ID: 2, Name: "Ben", Role: RoleResearcher},
		{ID: 3, Name: "Cam", Role: RoleLabManager},
		{ID: 4, Name: "Dee", Role: RoleAdministrator},
		{ID: 5, Name: "Eli", Role: "Visitor"},
		{ID: 6, Name: "pi lowercase", Role: "pi"}, // labels match exactly
	}

	got := AlertRecipients(roster)

	wantIDs := []uint{1, 3, 4}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d recipients, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("recipient[%d].ID = %d, want %d (order must be preserved)", i, got[i].ID, id)
		}
	}
}

func TestAlertRecipientsEmpty(t *testing.T) {
	if got := AlertRecipients(nil); len(got) != 0 {
		t.Errorf("AlertRecipients(nil) = %v, want empty", got)
	}
	onlyResearchers := []PersonProfile{{Role: RoleResearcher}, {Role: RoleResearcher}}
	if got := AlertRecipients(onlyResearchers); len(got) != 0 {
		t.Errorf("researchers-only roster yielded %v", got)
	}
}
