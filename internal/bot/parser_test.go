package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	p := NewCommandParser("Beautive_Bot")

	tests := []struct {
		name      string
		text      string
		wantCmd   string
		wantArgs  []string
		isCommand bool
	}{
		{"simple", "/streak", "streak", nil, true},
		{"args", "/air +2", "air", []string{"+2"}, true},
		{"upper case", "/MOOD 4", "mood", []string{"4"}, true},
		{"bang prefix", "!latihan 30", "latihan", []string{"30"}, true},
		{"mention self", "/streak@beautive_bot", "streak", nil, true},
		{"mention other", "/streak@other_bot", "", nil, false},
		{"plain text", "halo TIVA", "", nil, false},
		{"only prefix", "/", "", nil, false},
		{"spaces", "  /siklus   hari ini ", "siklus", []string{"hari", "ini"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, ok := p.ParseCommand(tt.text)
			assert.Equal(t, tt.isCommand, ok)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestRest(t *testing.T) {
	p := NewCommandParser("")

	assert.Equal(t, "Kenapa perut sakit\nsaat haid?", p.Rest("/tanya Kenapa perut sakit\nsaat haid?"))
	assert.Equal(t, "", p.Rest("/tanya"))
	assert.Equal(t, "", p.Rest("bukan perintah"))
}
