package main

import (
        "reflect"
        "testing"
)

func TestRewriteAssignmentArgs(t *testing.T) {
        t.Parallel()

        tests := []struct {
                name string
                in   []string
                want []string
        }{
                {
                        name: "no args",
                        in:   []string{"ghostconfig"},
                        want: []string{"ghostconfig"},
                },
                {
                        name: "assignment first token",
                        in:   []string{"ghostconfig", "font-size=14"},
                        want: []string{"ghostconfig", "set", "font-size", "14"},
                },
                {
                        name: "assignment after value flag",
                        in:   []string{"ghostconfig", "--server", "http://127.0.0.1:9999", "font-size=14"},
                        want: []string{"ghostconfig", "--server", "http://127.0.0.1:9999", "set", "font-size", "14"},
                },
                {
                        name: "assignment after equals flag",
                        in:   []string{"ghostconfig", "--server=http://x", "background=0000ff"},
                        want: []string{"ghostconfig", "--server=http://x", "set", "background", "0000ff"},
                },
                {
                        name: "assignment after bool flag",
                        in:   []string{"ghostconfig", "--pretty", "theme=dracula"},
                        want: []string{"ghostconfig", "--pretty", "set", "theme", "dracula"},
                },
                {
                        name: "value keeps spaces and equals",
                        in:   []string{"ghostconfig", "font-family=Fira Code=x"},
                        want: []string{"ghostconfig", "set", "font-family", "Fira Code=x"},
                },
                {
                        name: "empty value clears",
                        in:   []string{"ghostconfig", "font-family="},
                        want: []string{"ghostconfig", "set", "font-family", ""},
                },
                {
                        name: "assignment after double dash",
                        in:   []string{"ghostconfig", "--", "font-size=14"},
                        want: []string{"ghostconfig", "--", "set", "font-size", "14"},
                },
                {
                        name: "normal subcommand not rewritten",
                        in:   []string{"ghostconfig", "set", "font-size", "14"},
                        want: []string{"ghostconfig", "set", "font-size", "14"},
                },
                {
                        name: "non option key not rewritten",
                        in:   []string{"ghostconfig", "Font Size=14"},
                        want: []string{"ghostconfig", "Font Size=14"},
                },
        }

        for _, tt := range tests {
                tt := tt
                t.Run(tt.name, func(t *testing.T) {
                        t.Parallel()
                        got := rewriteAssignmentArgs(tt.in)
                        if !reflect.DeepEqual(got, tt.want) {
                                t.Fatalf("got %v, want %v", got, tt.want)
                        }
                })
        }
}
