package keymap_test

import (
	"reflect"
	"testing"

	"collegehub/internal/keymap"
)

func TestCamelKeys(t *testing.T) {
	in := map[string]any{
		"club_avatar": "a.png",
		"social_links": map[string]any{
			"instagram": "url",
		},
		"members": []any{
			map[string]any{"first_name": "Dana"},
		},
		"alreadyCamel": 1,
	}

	want := map[string]any{
		"clubAvatar": "a.png",
		"socialLinks": map[string]any{
			"instagram": "url",
		},
		"members": []any{
			map[string]any{"firstName": "Dana"},
		},
		"alreadyCamel": 1,
	}

	if got := keymap.CamelKeys(in); !reflect.DeepEqual(got, want) {
		t.Errorf("CamelKeys = %#v, want %#v", got, want)
	}
}

func TestSnakeKeys(t *testing.T) {
	in := map[string]any{
		"backgroundUrl": "b.png",
		"startTime":     "10:00",
		"groupName":     "MAN-28",
	}

	want := map[string]any{
		"background_url": "b.png",
		"start_time":     "10:00",
		"group_name":     "MAN-28",
	}

	if got := keymap.SnakeKeys(in); !reflect.DeepEqual(got, want) {
		t.Errorf("SnakeKeys = %#v, want %#v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	in := map[string]any{
		"clubAvatar": "a.png",
		"creatorId":  float64(9),
		"nested": map[string]any{
			"avatarUrl": "x",
		},
	}

	got := keymap.CamelKeys(keymap.SnakeKeys(in))
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %#v, want %#v", got, in)
	}
}

func TestScalarsPassThrough(t *testing.T) {
	if got := keymap.CamelKeys("plain"); got != "plain" {
		t.Errorf("CamelKeys(string) = %v, want unchanged", got)
	}
	if got := keymap.SnakeKeys(nil); got != nil {
		t.Errorf("SnakeKeys(nil) = %v, want nil", got)
	}
}
