package trend

import "testing"

func TestTimeTableKnownPlatform(t *testing.T) {
	table := NewTimeTable(nil)
	times := table.BestTimes("instagram")
	if len(times) == 0 {
		t.Fatalf("expected times for instagram")
	}
}

func TestTimeTableCaseInsensitive(t *testing.T) {
	table := NewTimeTable(nil)
	a := table.BestTimes("YouTube")
	b := table.BestTimes("youtube")
	if len(a) != len(b) {
		t.Fatalf("lookup must be case-insensitive")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("lookup must be case-insensitive: %v vs %v", a, b)
		}
	}
}

func TestTimeTableUnknownPlatformDefault(t *testing.T) {
	table := NewTimeTable(nil)
	times := table.BestTimes("twitter")
	want := []string{"12:00", "18:00"}
	if len(times) != len(want) {
		t.Fatalf("unexpected default %v", times)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("unexpected default %v, want %v", times, want)
		}
	}
}

func TestTimeTableOverrides(t *testing.T) {
	table := NewTimeTable(map[string][]string{
		"Instagram": {"08:00"},
		"tiktok":    {"21:00", "23:00"},
	})
	if got := table.BestTimes("instagram"); len(got) != 1 || got[0] != "08:00" {
		t.Fatalf("override not applied: %v", got)
	}
	if got := table.BestTimes("TikTok"); len(got) != 2 || got[0] != "21:00" {
		t.Fatalf("new platform not applied: %v", got)
	}
}

func TestTimeTableReturnsCopy(t *testing.T) {
	table := NewTimeTable(nil)
	times := table.BestTimes("facebook")
	times[0] = "mutated"
	if table.BestTimes("facebook")[0] == "mutated" {
		t.Fatalf("BestTimes must not expose internal state")
	}
}
