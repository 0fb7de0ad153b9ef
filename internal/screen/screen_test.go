// Package screen wraps the GNU screen terminal multiplexer.
package screen

import (
	"reflect"
	"testing"
)

// TestParseSessionList verifies parsing of real-world `screen -ls` output
// shapes, including the no-sessions case and unrelated noise lines.
func TestParseSessionList(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []Session
	}{
		{
			name: "two sessions",
			out: "There are screens on:\n" +
				"\t12345.mc-alpha\t(Detached)\n" +
				"\t23456.mc-beta\t(Attached)\n" +
				"2 Sockets in /run/screen/S-user.\n",
			want: []Session{
				{Name: "mc-alpha", PID: 12345},
				{Name: "mc-beta", PID: 23456},
			},
		},
		{
			name: "no sessions",
			out:  "No Sockets found in /run/screen/S-user.\n",
			want: nil,
		},
		{
			name: "single session with date column",
			out: "There is a screen on:\n" +
				"\t7042.mc-survival\t(01/02/26 10:11:12)\t(Detached)\n" +
				"1 Socket in /run/screen/S-user.\n",
			want: []Session{{Name: "mc-survival", PID: 7042}},
		},
		{
			name: "name containing dots",
			out:  "\t99.mc-1.20.4\t(Detached)\n",
			want: []Session{{Name: "mc-1.20.4", PID: 99}},
		},
		{
			name: "non-numeric pid ignored",
			out:  "\tgarbage.line\t(Detached)\n",
			want: nil,
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSessionList(tt.out)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSessionList() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSessionString verifies the pid.name addressing form.
func TestSessionString(t *testing.T) {
	s := Session{Name: "mc-alpha", PID: 12345}
	if got := s.String(); got != "12345.mc-alpha" {
		t.Errorf("String() = %q, want %q", got, "12345.mc-alpha")
	}
}
