package main

import (
        "os"
        "strings"

        "ghostconfig/internal/cli"
)

// splitAssignment recognizes "key=value" where key looks like a Ghostty
// option name.
func splitAssignment(s string) (key, value string, ok bool) {
        i := strings.IndexByte(s, '=')
        if i <= 0 {
                return "", "", false
        }
        key = s[:i]
        for _, r := range key {
                if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
                        return "", "", false
                }
        }
        return key, s[i+1:], true
}

func rewriteAssignmentArgs(argv []string) []string {
        // Convenience: `ghostconfig font-size=14` works like `ghostconfig set font-size 14`.
        //
        // Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
        // Persistent flags may come first, so look for the first positional token.
        if len(argv) < 2 {
                return argv
        }

        valueFlags := map[string]bool{
                "--server":      true,
                "--state-dir":   true,
                "--config-file": true,
                "--ghostty":     true,
                "--format":      true,
                "--log-level":   true,
                "--log-file":    true,
        }

        rewrite := func(i int) []string {
                key, value, ok := splitAssignment(strings.TrimSpace(argv[i]))
                if !ok {
                        return argv
                }
                out := make([]string, 0, len(argv)+2)
                out = append(out, argv[:i]...)
                out = append(out, "set", key, value)
                out = append(out, argv[i+1:]...)
                return out
        }

        for i := 1; i < len(argv); i++ {
                a := strings.TrimSpace(argv[i])
                if a == "" {
                        continue
                }
                if a == "--" {
                        if i+1 < len(argv) {
                                return rewrite(i + 1)
                        }
                        return argv
                }
                if strings.HasPrefix(a, "-") {
                        if !strings.Contains(a, "=") && valueFlags[a] {
                                i++ // skip value if present
                        }
                        continue
                }
                // First positional token.
                return rewrite(i)
        }

        return argv
}

func main() {
        os.Args = rewriteAssignmentArgs(os.Args)

        cmd := cli.NewRootCmd()
        if err := cmd.Execute(); err != nil {
                os.Exit(1)
        }
}
