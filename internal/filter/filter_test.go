package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLeavesReceiverUntouched(t *testing.T) {
	base := State{KeyYear: "2021", KeyTheme: "castle"}
	next := base.With(KeyStyle, "smw")

	if diff := cmp.Diff(State{KeyYear: "2021", KeyTheme: "castle"}, base); diff != "" {
		t.Fatalf("receiver mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(State{KeyYear: "2021", KeyTheme: "castle", KeyStyle: "smw"}, next); diff != "" {
		t.Fatalf("unexpected state (-want +got):\n%s", diff)
	}
}

func TestWithEmptyValueUnsetsKey(t *testing.T) {
	next := State{KeyYear: "2021", KeyTag: "music"}.With(KeyTag, "")
	if _, ok := next.Get(KeyTag); ok {
		t.Fatalf("expected tag unset, got %#v", next)
	}
	if v, _ := next.Get(KeyYear); v != "2021" {
		t.Fatalf("expected sibling retained, got %q", v)
	}
}

func TestGetTreatsEmptyAsUnset(t *testing.T) {
	s := State{KeyTag: ""}
	_, ok := s.Get(KeyTag)
	assert.False(t, ok)
	assert.Empty(t, s.Keys())
	assert.True(t, s.Equal(State{}))
}

func TestValuesEncodesSortedQuery(t *testing.T) {
	s := State{KeyYear: "2023", KeyMinAttempts: "50", KeyTag: ""}
	assert.Equal(t, "min_attempts=50&year=2023", s.Values().Encode())
}

func TestBuiltinRegistriesAreConsistent(t *testing.T) {
	for _, game := range Games() {
		reg, err := Lookup(game)
		require.NoError(t, err)
		require.Equal(t, game, reg.Game)
		for _, def := range reg.Definitions() {
			assert.NotEmpty(t, def.Options, "%s/%s", game, def.Key)
			assert.True(t, def.Contains(reg.Default(def.Key)), "%s/%s default", game, def.Key)
		}
	}
	_, err := Lookup("smm3")
	assert.Error(t, err)
}

func TestNewRegistryRejectsDefaultOutsideOptions(t *testing.T) {
	defs := []Definition{{Key: KeyYear, Caption: "Year", Options: []Option{{Value: "2020", Label: "2020"}}}}

	_, err := NewRegistry(GameSMM2, "/x", defs, State{KeyYear: "1999"})
	require.Error(t, err)

	// no explicit default means "" which is not an option here
	_, err = NewRegistry(GameSMM2, "/x", defs, nil)
	require.Error(t, err)

	_, err = NewRegistry(GameSMM2, "/x", defs, State{KeyTag: "art", KeyYear: "2020"})
	require.Error(t, err)

	_, err = NewRegistry(GameSMM2, "/x", append(defs, defs[0]), State{KeyYear: "2020"})
	require.Error(t, err)

	_, err = NewRegistry(GameSMM2, "/x", []Definition{{Key: KeyTag}}, nil)
	require.Error(t, err)
}

func TestCleanOverlaysNonEmptyValuesOnDefaults(t *testing.T) {
	cleaned := SMM2.Clean(State{KeyTheme: "castle", KeyTag: "", KeyYear: ""})
	want := State{KeyYear: "2023", KeyTheme: "castle"}
	if diff := cmp.Diff(want, cleaned); diff != "" {
		t.Fatalf("unexpected cleaned state (-want +got):\n%s", diff)
	}
	for k, v := range cleaned {
		if v == "" {
			t.Fatalf("cleaned state carries empty value for %s", k)
		}
	}

	cleaned = SMM1.Clean(nil)
	assert.Equal(t, State{KeyYear: "2017"}, cleaned)
}

func TestSanitizeReplacesInvalidValues(t *testing.T) {
	got := SMM2.Sanitize(State{KeyYear: "1985", KeyStyle: "smw", KeyTag: "not-a-tag", "bogus": "x"})
	want := State{KeyYear: "2023", KeyStyle: "smw"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected sanitized state (-want +got):\n%s", diff)
	}
}

func TestSelectedFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "2023", SMM2.Selected(State{}, KeyYear))
	assert.Equal(t, "", SMM2.Selected(State{}, KeyTheme))
	assert.Equal(t, "2021", SMM2.Selected(State{KeyYear: "2021"}, KeyYear))
}

func TestLabelAndSummary(t *testing.T) {
	assert.Equal(t, "Ghost House", SMM2.Label(KeyTheme, "ghost_house"))
	assert.Equal(t, "2 minutes", SMM2.Label(KeyMaxClearcheckMs, "120000"))
	assert.Equal(t, "zzz", SMM2.Label(KeyTheme, "zzz"))
	assert.Equal(t, "Year: 2023, Theme: Castle", SMM2.Summary(State{KeyYear: "2023", KeyTheme: "castle"}))
}
