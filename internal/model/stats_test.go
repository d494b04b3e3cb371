package model

import "testing"

func TestNormalizeStats(t *testing.T) {
	tests := []struct {
		name string
		in   CombatantStats
		want CombatantStats
	}{
		{
			name: "zero value gets baselines",
			in:   CombatantStats{},
			want: CombatantStats{Luck: 5, MaxHP: 1, CurrentHP: 1},
		},
		{
			name: "negative attack and defense coerced to 0",
			in:   CombatantStats{Attack: -10, Defense: -3, Luck: 7, MaxHP: 100},
			want: CombatantStats{Attack: 0, Defense: 0, Luck: 7, MaxHP: 100, CurrentHP: 100},
		},
		{
			name: "current hp clamped to max",
			in:   CombatantStats{Luck: 5, MaxHP: 50, CurrentHP: 80},
			want: CombatantStats{Luck: 5, MaxHP: 50, CurrentHP: 50},
		},
		{
			name: "valid stats pass through",
			in:   CombatantStats{Attack: 50, Defense: 10, Initiative: 20, Luck: 30, MaxHP: 200, CurrentHP: 150},
			want: CombatantStats{Attack: 50, Defense: 10, Initiative: 20, Luck: 30, MaxHP: 200, CurrentHP: 150},
		},
		{
			name: "negative initiative coerced",
			in:   CombatantStats{Initiative: -5, Luck: 5, MaxHP: 10},
			want: CombatantStats{Initiative: 0, Luck: 5, MaxHP: 10, CurrentHP: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStats(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRoleString(t *testing.T) {
	if RolePlayer.String() != "player" || RoleMonster.String() != "monster" {
		t.Errorf("unexpected role names: %q, %q", RolePlayer, RoleMonster)
	}
	if Role(99).String() != "unknown" {
		t.Errorf("Role(99).String() = %q, want unknown", Role(99).String())
	}
}
