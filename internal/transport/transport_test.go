package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		want Command
		ok   bool
	}{
		{"/start", Command{Name: "start", Args: []string{}}, true},
		{"/promocode SAVE10", Command{Name: "promocode", Args: []string{"SAVE10"}}, true},
		{"/Admin@shop_bot", Command{Name: "admin", Args: []string{}}, true},
		{"hello", Command{}, false},
		{"/", Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseCommand(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInlineColumn(t *testing.T) {
	rows := InlineColumn(Button{Text: "a", Data: "1"}, Button{Text: "b", Data: "2"})
	assert.Equal(t, [][]Button{{{Text: "a", Data: "1"}}, {{Text: "b", Data: "2"}}}, rows)
}
