package units

import "testing"

func TestBytesString(t *testing.T) {
	cases := []struct {
		value    int64
		expected string
	}{
		{0, "0B"},
		{1, "1B"},
		{512, "512B"},
		{1023, "1023B"},
		{1024, "1.0K"},
		{1280, "1.3K"}, // 1.25K rounds half up
		{1536, "1.5K"},
		{1587, "1.5K"},
		{1588, "1.6K"},
		{10 * 1024 * 1024, "10.0M"},
		{1073741824, "1.0G"},
		{1<<40 - 1, "1024.0G"},
		{1 << 40, "1.0T"},
		{5 << 42, "20.0T"},
		{1 << 50, "1024.0T"},
	}

	for i, c := range cases {
		if actual := BytesString(c.value); actual != c.expected {
			t.Errorf("case #%v failed, expected: '%v', got '%v'", i, c.expected, actual)
		}
	}
}
