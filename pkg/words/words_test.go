package words

import "testing"

func TestCount(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"blank", "   \n\t ", 0},
		{"single latin word", "hello", 1},
		{"latin sentence", "The quick brown fox jumps", 5},
		{"extra whitespace", "  one   two\nthree ", 3},
		{"punctuation separates", "well-known, right? yes.", 4},
		{"pure punctuation", "... --- !!!", 0},
		{"digits count", "call 911 now", 3},
		{"cjk chars count individually", "你好世界", 4},
		{"mixed cjk and latin", "我的 video is ready 了", 6},
		{"cjk adjacent to latin", "开始recording啦", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Count(tc.text); got != tc.want {
				t.Fatalf("Count(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}
