package durability

import (
	"testing"

	"github.com/Eldorabotpy/eldora-engine/internal/model"
)

func newItem(t *testing.T, durability, max int32) *model.Item {
	t.Helper()
	item, err := model.NewItem("espada_ferro", model.RarityComum, model.SlotWeapon, durability, max)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	return item
}

func TestConsumeReportsBrokenExactlyOnce(t *testing.T) {
	item := newItem(t, 1, 20)

	if !Consume(item, 1) {
		t.Fatal("transition 1→0 must report brokenNow=true")
	}
	if item.Durability != 0 {
		t.Fatalf("Durability = %d, want 0", item.Durability)
	}

	// Already broken: stays at 0, no second report.
	if Consume(item, 1) {
		t.Fatal("consuming a broken item must report brokenNow=false")
	}
	if item.Durability != 0 {
		t.Fatalf("Durability = %d, want 0 (never below)", item.Durability)
	}
}

func TestConsumeNeverBelowZero(t *testing.T) {
	item := newItem(t, 3, 20)

	if !Consume(item, 10) {
		t.Fatal("over-consume must still report the broken transition")
	}
	if item.Durability != 0 {
		t.Fatalf("Durability = %d, want 0", item.Durability)
	}
}

func TestConsumeIgnoresNonPositiveAmount(t *testing.T) {
	item := newItem(t, 5, 20)
	if Consume(item, 0) || Consume(item, -3) {
		t.Fatal("non-positive amount must be a no-op")
	}
	if item.Durability != 5 {
		t.Fatalf("Durability = %d, want 5", item.Durability)
	}
}

func TestRestoreToMaxIdempotent(t *testing.T) {
	item := newItem(t, 4, 20)

	if !RestoreToMax(item) {
		t.Fatal("first restore must report a change")
	}
	if item.Durability != 20 {
		t.Fatalf("Durability = %d, want 20", item.Durability)
	}
	if RestoreToMax(item) {
		t.Fatal("second restore in a row must report no change")
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		durability int32
		want       State
	}{
		{20, StateFull},
		{10, StateWorn},
		{0, StateBroken},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			item := newItem(t, tt.durability, 20)
			if got := StateOf(item); got != tt.want {
				t.Errorf("StateOf(dur=%d) = %v, want %v", tt.durability, got, tt.want)
			}
		})
	}
}

func TestApplyBattleWear(t *testing.T) {
	weapon := newItem(t, 1, 20)
	chest := newItem(t, 10, 20)
	equipment := map[string]*model.Item{
		model.SlotWeapon: weapon,
		model.SlotChest:  chest,
		model.SlotBoots:  nil,
	}

	broken := ApplyBattleWear(equipment, 1)

	if len(broken) != 1 || broken[0] != model.SlotWeapon {
		t.Errorf("broken slots = %v, want [weapon]", broken)
	}
	if weapon.Durability != 0 || chest.Durability != 9 {
		t.Errorf("durabilities = %d, %d; want 0, 9", weapon.Durability, chest.Durability)
	}

	// Broken item stays in the equipment map; it is not auto-unequipped.
	if equipment[model.SlotWeapon] != weapon {
		t.Error("broken weapon must remain equipped")
	}
}

func TestIsBrokenNil(t *testing.T) {
	if IsBroken(nil) {
		t.Error("nil item must not report broken")
	}
}
