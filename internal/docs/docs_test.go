package docs

import (
        "strings"
        "testing"
)

func TestTopics(t *testing.T) {
        got := strings.Join(Topics(), ",")
        if got != "api,config,editor" {
                t.Fatalf("unexpected topics: %s", got)
        }
}

func TestGet(t *testing.T) {
        md, ok := Get(" API ")
        if !ok || !strings.HasPrefix(md, "# ghostconfig API") {
                t.Fatalf("expected api topic, got ok=%v %q", ok, md)
        }
        for _, bad := range []string{"", "nope", "../docs", "content/api"} {
                if _, ok := Get(bad); ok {
                        t.Fatalf("expected %q to be rejected", bad)
                }
        }
}
